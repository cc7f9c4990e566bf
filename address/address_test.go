// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package address_test

import (
	"strings"
	"testing"

	"github.com/blinklabs-io/gopoh/address"
	"github.com/blinklabs-io/gopoh/internal/test"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTronRoundTrip(t *testing.T) {
	testDefs := []struct {
		hex  string
		tron string
	}{
		{hex: test.SenderAddress, tron: test.SenderTron},
		{hex: test.ValidatorAddress, tron: test.ValidatorTron},
		{hex: test.SomeoneAddress, tron: test.SomeoneTron},
		{hex: test.ZeroAddress, tron: test.ZeroTron},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.tron, func(t *testing.T) {
			addr := common.HexToAddress(testDef.hex)
			assert.Equal(t, testDef.tron, address.Tron(addr))
			parsed, err := address.Parse(testDef.tron)
			require.NoError(t, err)
			assert.Equal(t, addr, parsed)
		})
	}
}

func TestParseHexForms(t *testing.T) {
	expected := common.HexToAddress(test.ValidatorAddress)
	for _, s := range []string{
		test.ValidatorAddress,
		strings.ToLower(test.ValidatorAddress),
		strings.TrimPrefix(test.ValidatorAddress, "0x"),
		"41" + strings.TrimPrefix(test.ValidatorAddress, "0x"),
		"  " + test.ValidatorAddress + "\n",
	} {
		parsed, err := address.Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, expected, parsed, s)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"0x1234",
		"not an address",
		// checksum broken by the last character
		test.ValidatorTron[:len(test.ValidatorTron)-1] + "u",
		// bitcoin-style address with the wrong version byte
		"1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",
	} {
		_, err := address.Parse(s)
		assert.ErrorIs(t, err, address.ErrInvalidAddress, s)
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, address.IsZero(common.Address{}))
	assert.True(t, address.IsZero(common.HexToAddress(test.ZeroAddress)))
	assert.False(t, address.IsZero(common.HexToAddress(test.ValidatorAddress)))
}

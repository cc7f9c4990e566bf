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

// Package address converts between the textual forms of 20-byte account
// identifiers: 0x-prefixed hex as used by EVM tooling, and the base58check
// form used by TRON wallets (version byte 0x41, addresses starting with T).
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// TronVersion is the version byte of TRON mainnet addresses
	TronVersion byte = 0x41

	// Size is the length of an account identifier
	Size = common.AddressLength
)

var ErrInvalidAddress = errors.New("invalid address")

// Parse accepts 0x-prefixed (or bare) hex, TRON hex with a leading 41 byte, or
// TRON base58check
func Parse(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return common.Address{}, fmt.Errorf("%w: empty string", ErrInvalidAddress)
	case common.IsHexAddress(s):
		return common.HexToAddress(s), nil
	case len(s) == 2*(Size+1) && strings.HasPrefix(s, "41"):
		// TRON hex form
		if !common.IsHexAddress(s[2:]) {
			return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
		return common.HexToAddress(s[2:]), nil
	case strings.HasPrefix(s, "T"):
		return parseTron(s)
	default:
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
}

func parseTron(s string) (common.Address, error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %q: %w", ErrInvalidAddress, s, err)
	}
	if version != TronVersion {
		return common.Address{}, fmt.Errorf(
			"%w: unexpected version byte 0x%02x",
			ErrInvalidAddress,
			version,
		)
	}
	if len(payload) != Size {
		return common.Address{}, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidAddress,
			Size,
			len(payload),
		)
	}
	return common.BytesToAddress(payload), nil
}

// Tron renders addr in TRON base58check form
func Tron(addr common.Address) string {
	return base58.CheckEncode(addr.Bytes(), TronVersion)
}

// IsZero reports whether addr is the zero address, which means "no validator
// configured"
func IsZero(addr common.Address) bool {
	return addr == (common.Address{})
}

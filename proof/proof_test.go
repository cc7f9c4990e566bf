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

package proof_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/blinklabs-io/gopoh/internal/test"
	"github.com/blinklabs-io/gopoh/proof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBasic(t *testing.T) {
	challenge, timestamp, sig, err := proof.SplitBasic(test.ValidBasicProof())
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString(test.Challenge), challenge.Bytes())
	assert.Equal(t, test.DecodeHexString(test.Timestamp), timestamp.Bytes())
	assert.Equal(
		t,
		test.DecodeHexString(test.ValidatorBasicSignature),
		sig.Bytes(),
	)
}

func TestSplitSovereign(t *testing.T) {
	challenge, senderSig, timestamp, validatorSig, err := proof.SplitSovereign(
		test.ValidSovereignProof(),
	)
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString(test.Challenge), challenge.Bytes())
	assert.Equal(
		t,
		test.DecodeHexString(test.SenderChallengeSignature),
		senderSig.Bytes(),
	)
	assert.Equal(t, test.DecodeHexString(test.Timestamp), timestamp.Bytes())
	assert.Equal(
		t,
		test.DecodeHexString(test.ValidatorSovereignSignature),
		validatorSig.Bytes(),
	)
}

func TestBasicRoundTrip(t *testing.T) {
	var p proof.BasicProof
	for i := range p.Challenge {
		p.Challenge[i] = byte(i)
	}
	p.Timestamp = proof.TimestampFromUint32(0xdeadbeef)
	for i := range p.ValidatorSignature {
		p.ValidatorSignature[i] = byte(0xff - i)
	}
	raw := p.Bytes()
	require.Len(t, raw, proof.BasicProofSize)
	parsed, err := proof.ParseBasic(raw)
	require.NoError(t, err)
	assert.Equal(t, p, parsed)
}

func TestSovereignRoundTrip(t *testing.T) {
	raw := test.ValidSovereignProof()
	parsed, err := proof.ParseSovereign(raw)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(raw, parsed.Bytes()))
}

func TestSplitDoesNotAlias(t *testing.T) {
	raw := test.ValidBasicProof()
	challenge, _, _, err := proof.SplitBasic(raw)
	require.NoError(t, err)
	raw[0] ^= 0xff
	assert.Equal(t, test.DecodeHexString(test.Challenge), challenge.Bytes())
}

func TestInvalidProofLength(t *testing.T) {
	testDefs := []struct {
		name    string
		variant proof.Variant
		data    []byte
	}{
		{name: "basic empty", variant: proof.VariantBasic, data: nil},
		{
			name:    "basic challenge only",
			variant: proof.VariantBasic,
			data:    test.DecodeHexString(test.Challenge),
		},
		{
			name:    "basic one short",
			variant: proof.VariantBasic,
			data:    test.ValidBasicProof()[:proof.BasicProofSize-1],
		},
		{
			name:    "basic one long",
			variant: proof.VariantBasic,
			data:    append(test.ValidBasicProof(), 0x00),
		},
		{
			name:    "basic given sovereign",
			variant: proof.VariantBasic,
			data:    test.ValidSovereignProof(),
		},
		{
			name:    "sovereign challenge only",
			variant: proof.VariantSovereign,
			data:    test.DecodeHexString(test.Challenge),
		},
		{
			name:    "sovereign given basic",
			variant: proof.VariantSovereign,
			data:    test.ValidBasicProof(),
		},
		{
			name:    "sovereign one long",
			variant: proof.VariantSovereign,
			data:    append(test.ValidSovereignProof(), 0x00),
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			var err error
			switch testDef.variant {
			case proof.VariantBasic:
				_, _, _, err = proof.SplitBasic(testDef.data)
			case proof.VariantSovereign:
				_, _, _, _, err = proof.SplitSovereign(testDef.data)
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, proof.ErrInvalidProofLength)
			var lenErr proof.InvalidProofLengthError
			require.True(t, errors.As(err, &lenErr))
			assert.Equal(t, testDef.variant, lenErr.Variant)
			assert.Equal(t, testDef.variant.Size(), lenErr.Expected)
			assert.Equal(t, len(testDef.data), lenErr.Got)
		})
	}
}

func TestLayouts(t *testing.T) {
	assert.Equal(t, 101, proof.VariantBasic.Size())
	assert.Equal(t, 166, proof.VariantSovereign.Size())
	for _, variant := range []proof.Variant{proof.VariantBasic, proof.VariantSovereign} {
		offset := 0
		for _, field := range variant.Layout() {
			assert.Equal(t, offset, field.Offset, "%s %s", variant, field.Name)
			offset = field.End()
		}
		assert.Equal(t, variant.Size(), offset)
	}
	f := proof.VariantSovereign.Layout().Field(proof.FieldTimestamp)
	assert.Equal(t, 97, f.Offset)
	assert.Equal(t, 101, f.End())
	assert.Panics(t, func() {
		proof.VariantBasic.Layout().Field(proof.FieldSenderSignature)
	})
}

func TestVariantNames(t *testing.T) {
	for _, variant := range []proof.Variant{proof.VariantBasic, proof.VariantSovereign} {
		parsed, err := proof.ParseVariant(variant.String())
		require.NoError(t, err)
		assert.Equal(t, variant, parsed)
	}
	_, err := proof.ParseVariant("fancy")
	assert.Error(t, err)
	assert.Equal(t, 0, proof.Variant(9).Size())
}

func TestChallengeAndTimestamp(t *testing.T) {
	challenge, timestamp, err := proof.ChallengeAndTimestamp(
		proof.VariantSovereign,
		test.ValidSovereignProof(),
	)
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString(test.Challenge), challenge.Bytes())
	assert.Equal(t, test.DecodeHexString(test.Timestamp), timestamp.Bytes())
	_, _, err = proof.ChallengeAndTimestamp(proof.Variant(0), nil)
	assert.ErrorIs(t, err, proof.ErrUnknownVariant)
}

func TestTimestamp(t *testing.T) {
	ts, err := proof.ParseTimestamp("0x" + test.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x623d0600), ts.Uint32())
	assert.Equal(
		t,
		time.Date(2022, time.March, 25, 0, 0, 0, 0, time.UTC),
		ts.Time(),
	)
	assert.Equal(t, ts, proof.NewTimestamp(ts.Time()))
	assert.Equal(t, uint32(0), proof.NewTimestamp(time.Unix(-5, 0)).Uint32())
}

func TestHex(t *testing.T) {
	raw := test.ValidBasicProof()
	decoded, err := proof.DecodeHex(proof.EncodeHex(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
	_, err = proof.DecodeHex("0xzz")
	assert.Error(t, err)
	_, err = proof.ParseChallenge("0x" + test.Timestamp)
	assert.Error(t, err)
	challenge, err := proof.ParseChallenge(test.Challenge)
	require.NoError(t, err)
	assert.Equal(t, "0x"+test.Challenge, challenge.String())
}

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

// Package validator checks proof-of-humanity tokens against an expected
// validator address. Everything here is stateless; replay protection lives
// in the gate package.
package validator

import (
	"errors"

	"github.com/blinklabs-io/gopoh/address"
	"github.com/blinklabs-io/gopoh/proof"
	"github.com/blinklabs-io/gopoh/signature"
	"github.com/ethereum/go-ethereum/common"
)

var ErrValidatorNotSet = errors.New("PoH: Validator is not set")

// BasicDigest is the message a validator signs for a basic proof:
// keccak256(challenge || timestamp)
func BasicDigest(challenge proof.Challenge, timestamp proof.Timestamp) [32]byte {
	return signature.Keccak256(challenge[:], timestamp[:])
}

// SovereignDigest is the message a validator signs for a sovereign proof:
// keccak256(challenge || senderSignature || timestamp)
func SovereignDigest(
	challenge proof.Challenge,
	senderSig proof.Signature,
	timestamp proof.Timestamp,
) [32]byte {
	return signature.Keccak256(challenge[:], senderSig[:], timestamp[:])
}

// ValidateBasicPoH reports whether the validator signature in a basic proof
// recovers to expected. A mismatch is a false result, not an error. Errors
// are reserved for a zero expected address, a bad proof length and a
// malformed signature.
func ValidateBasicPoH(data []byte, expected common.Address) (bool, error) {
	if address.IsZero(expected) {
		return false, ErrValidatorNotSet
	}
	challenge, timestamp, validatorSig, err := proof.SplitBasic(data)
	if err != nil {
		return false, err
	}
	signer, err := signature.RecoverMessage(
		BasicDigest(challenge, timestamp),
		validatorSig,
	)
	if err != nil {
		return false, err
	}
	return signer == expected, nil
}

// ValidateSovereignPoH reports whether the validator signature in a sovereign
// proof recovers to expected.
//
// Only the validator's attestation is checked. The sender signature is hashed
// into the attested message as an opaque blob and is not verified here; use
// SovereignSender when the sender identity matters.
func ValidateSovereignPoH(data []byte, expected common.Address) (bool, error) {
	if address.IsZero(expected) {
		return false, ErrValidatorNotSet
	}
	challenge, senderSig, timestamp, validatorSig, err := proof.SplitSovereign(
		data,
	)
	if err != nil {
		return false, err
	}
	signer, err := signature.RecoverMessage(
		SovereignDigest(challenge, senderSig, timestamp),
		validatorSig,
	)
	if err != nil {
		return false, err
	}
	return signer == expected, nil
}

// Validate dispatches on variant
func Validate(
	variant proof.Variant,
	data []byte,
	expected common.Address,
) (bool, error) {
	switch variant {
	case proof.VariantBasic:
		return ValidateBasicPoH(data, expected)
	case proof.VariantSovereign:
		return ValidateSovereignPoH(data, expected)
	default:
		return false, proof.ErrUnknownVariant
	}
}

// SovereignSender recovers the address that produced the sender signature
// over the challenge of a sovereign proof
func SovereignSender(data []byte) (common.Address, error) {
	challenge, senderSig, _, _, err := proof.SplitSovereign(data)
	if err != nil {
		return common.Address{}, err
	}
	return signature.RecoverMessage(challenge, senderSig)
}

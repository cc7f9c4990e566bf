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

// Package signature implements the TRON signed-message scheme used by
// proof-of-humanity tokens.
//
// A 32-byte message is never signed directly. It is first wrapped as
//
//	keccak256("\x19TRON Signed Message:\n32" || message)
//
// and the resulting digest is signed with a secp256k1 key. The prefix keeps a
// signature produced here from being valid for a generic message-signing flow
// on the same key, and the other way round. The byte layout is a wire-format
// contract shared with the on-chain verifier and the off-chain signer.
package signature

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gopoh/proof"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// MessagePrefix is prepended to every 32-byte message before hashing. The
// trailing "32" is the decimal length of the message.
const MessagePrefix = "\x19TRON Signed Message:\n32"

const (
	// RecoveryIDOffset is added to the raw 0/1 recovery id on the wire
	RecoveryIDOffset = 27
)

var ErrInvalidSignature = errors.New("PoH: Invalid signature")

// Keccak256 hashes the plain concatenation of parts
func Keccak256(parts ...[]byte) [32]byte {
	return [32]byte(crypto.Keccak256Hash(parts...))
}

// PrefixedHash returns keccak256(MessagePrefix || message)
func PrefixedHash(message [32]byte) [32]byte {
	return Keccak256([]byte(MessagePrefix), message[:])
}

// Recover returns the address whose key produced sig over the already
// prefixed digest.
//
// The recovery id must be 27 or 28, r and s must lie in [1, n-1] and s must
// be in the lower half of the curve order. Anything else fails with
// ErrInvalidSignature instead of recovering some unrelated address.
func Recover(prefixedDigest [32]byte, sig proof.Signature) (common.Address, error) {
	v := sig.V()
	if v != RecoveryIDOffset && v != RecoveryIDOffset+1 {
		return common.Address{}, fmt.Errorf(
			"%w: recovery id %d is not %d or %d",
			ErrInvalidSignature,
			v,
			RecoveryIDOffset,
			RecoveryIDOffset+1,
		)
	}
	recID := v - RecoveryIDOffset
	if !crypto.ValidateSignatureValues(recID, sig.R(), sig.S(), true) {
		return common.Address{}, fmt.Errorf(
			"%w: r or s out of range",
			ErrInvalidSignature,
		)
	}
	rawSig := make([]byte, proof.SignatureSize)
	copy(rawSig, sig[:64])
	rawSig[64] = recID
	pubKey, err := crypto.SigToPub(prefixedDigest[:], rawSig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

// RecoverMessage applies the message prefix and recovers the signer
func RecoverMessage(message [32]byte, sig proof.Signature) (common.Address, error) {
	return Recover(PrefixedHash(message), sig)
}

// Sign signs the prefixed hash of message. The recovery id on the returned
// signature is 27 or 28 and s is always in the lower half of the curve order.
func Sign(message [32]byte, key *ecdsa.PrivateKey) (proof.Signature, error) {
	var ret proof.Signature
	if key == nil {
		return ret, errors.New("signing key is nil")
	}
	digest := PrefixedHash(message)
	rawSig, err := crypto.Sign(digest[:], key)
	if err != nil {
		return ret, fmt.Errorf("sign message: %w", err)
	}
	copy(ret[:], rawSig)
	ret[64] += RecoveryIDOffset
	return ret, nil
}

// ParsePrivateKey parses a hex-encoded secp256k1 private key. A leading 0x is
// accepted.
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	data, err := proof.DecodeHex(hexKey)
	if err != nil {
		return nil, err
	}
	key, err := crypto.ToECDSA(data)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return key, nil
}

// AddressOf returns the account address of key
func AddressOf(key *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(key.PublicKey)
}

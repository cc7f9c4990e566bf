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

// Package issuer assembles proof-of-humanity tokens on the off-chain side:
// random challenges, sender signatures over a challenge and validator
// attestations.
package issuer

import (
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/blinklabs-io/gopoh/proof"
	"github.com/blinklabs-io/gopoh/signature"
	"github.com/blinklabs-io/gopoh/validator"
)

// NewChallenge returns a challenge read from a cryptographically secure
// source
func NewChallenge() (proof.Challenge, error) {
	var ret proof.Challenge
	if _, err := rand.Read(ret[:]); err != nil {
		return ret, fmt.Errorf("generate challenge: %w", err)
	}
	return ret, nil
}

// Now returns the current time as a proof timestamp
func Now() proof.Timestamp {
	return proof.NewTimestamp(time.Now())
}

// NewBasicProof has the validator attest to (challenge, timestamp)
func NewBasicProof(
	challenge proof.Challenge,
	timestamp proof.Timestamp,
	validatorKey *ecdsa.PrivateKey,
) (proof.BasicProof, error) {
	sig, err := signature.Sign(
		validator.BasicDigest(challenge, timestamp),
		validatorKey,
	)
	if err != nil {
		return proof.BasicProof{}, fmt.Errorf("validator signature: %w", err)
	}
	return proof.BasicProof{
		Challenge:          challenge,
		Timestamp:          timestamp,
		ValidatorSignature: sig,
	}, nil
}

// SignChallenge is the sender's half of a sovereign proof
func SignChallenge(
	challenge proof.Challenge,
	senderKey *ecdsa.PrivateKey,
) (proof.Signature, error) {
	sig, err := signature.Sign(challenge, senderKey)
	if err != nil {
		return sig, fmt.Errorf("sender signature: %w", err)
	}
	return sig, nil
}

// AttestSovereign is the validator's half of a sovereign proof. The sender
// signature is taken as given.
func AttestSovereign(
	challenge proof.Challenge,
	senderSig proof.Signature,
	timestamp proof.Timestamp,
	validatorKey *ecdsa.PrivateKey,
) (proof.SovereignProof, error) {
	sig, err := signature.Sign(
		validator.SovereignDigest(challenge, senderSig, timestamp),
		validatorKey,
	)
	if err != nil {
		return proof.SovereignProof{}, fmt.Errorf("validator signature: %w", err)
	}
	return proof.SovereignProof{
		Challenge:          challenge,
		SenderSignature:    senderSig,
		Timestamp:          timestamp,
		ValidatorSignature: sig,
	}, nil
}

// NewSovereignProof runs both halves with keys held locally
func NewSovereignProof(
	challenge proof.Challenge,
	timestamp proof.Timestamp,
	senderKey *ecdsa.PrivateKey,
	validatorKey *ecdsa.PrivateKey,
) (proof.SovereignProof, error) {
	senderSig, err := SignChallenge(challenge, senderKey)
	if err != nil {
		return proof.SovereignProof{}, err
	}
	return AttestSovereign(challenge, senderSig, timestamp, validatorKey)
}

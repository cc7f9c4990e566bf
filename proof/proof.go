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

// Package proof implements the fixed-offset wire format of proof-of-humanity
// tokens.
//
// Two variants exist. A basic proof is a validator attestation over a
// challenge and a timestamp:
//
//	challenge (32) | timestamp (4) | validator signature (65)
//
// A sovereign proof additionally binds the attestation to a signature made by
// the sender over the challenge:
//
//	challenge (32) | sender signature (65) | timestamp (4) | validator signature (65)
//
// There is no framing, length prefix or general-purpose serialization around
// these fields. A byte string whose length does not match its variant is
// rejected with ErrInvalidProofLength before anything else is looked at.
package proof

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"time"
)

const (
	// ChallengeSize is the size of the caller-supplied random challenge
	ChallengeSize = 32

	// TimestampSize is the size of the big-endian seconds-since-epoch timestamp
	TimestampSize = 4

	// SignatureSize is the size of an r || s || v signature
	SignatureSize = 65

	// BasicProofSize is the total size of a basic proof: 32 + 4 + 65
	BasicProofSize = ChallengeSize + TimestampSize + SignatureSize

	// SovereignProofSize is the total size of a sovereign proof: 32 + 65 + 4 + 65
	SovereignProofSize = ChallengeSize + SignatureSize + TimestampSize + SignatureSize
)

type Challenge [ChallengeSize]byte

func (c Challenge) Bytes() []byte {
	return c[:]
}

func (c Challenge) String() string {
	return fmt.Sprintf("0x%x", c[:])
}

// Timestamp holds seconds since epoch in big-endian order. The core never
// checks it against the current time; it is only carried inside the signed
// message.
type Timestamp [TimestampSize]byte

// NewTimestamp truncates t to whole seconds. Times outside the uint32 range
// are clamped.
func NewTimestamp(t time.Time) Timestamp {
	secs := t.Unix()
	if secs < 0 {
		secs = 0
	}
	if secs > int64(^uint32(0)) {
		secs = int64(^uint32(0))
	}
	return TimestampFromUint32(uint32(secs)) // #nosec G115 -- clamped above
}

func TimestampFromUint32(secs uint32) Timestamp {
	var ret Timestamp
	binary.BigEndian.PutUint32(ret[:], secs)
	return ret
}

func (t Timestamp) Uint32() uint32 {
	return binary.BigEndian.Uint32(t[:])
}

func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t.Uint32()), 0).UTC()
}

func (t Timestamp) Bytes() []byte {
	return t[:]
}

func (t Timestamp) String() string {
	return fmt.Sprintf("0x%x", t[:])
}

// Signature is an ECDSA signature laid out as r (32) || s (32) || v (1)
type Signature [SignatureSize]byte

func (s Signature) R() *big.Int {
	return new(big.Int).SetBytes(s[0:32])
}

func (s Signature) S() *big.Int {
	return new(big.Int).SetBytes(s[32:64])
}

// V returns the recovery id byte as it appears on the wire (27 or 28 for a
// well-formed signature)
func (s Signature) V() byte {
	return s[64]
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) String() string {
	return fmt.Sprintf("0x%x", s[:])
}

// BasicProof is the decoded form of a basic proof
type BasicProof struct {
	Challenge          Challenge
	Timestamp          Timestamp
	ValidatorSignature Signature
}

// Bytes assembles the 101-byte wire form
func (p BasicProof) Bytes() []byte {
	ret := make([]byte, 0, BasicProofSize)
	ret = append(ret, p.Challenge[:]...)
	ret = append(ret, p.Timestamp[:]...)
	ret = append(ret, p.ValidatorSignature[:]...)
	return ret
}

// SovereignProof is the decoded form of a sovereign proof
type SovereignProof struct {
	Challenge          Challenge
	SenderSignature    Signature
	Timestamp          Timestamp
	ValidatorSignature Signature
}

// Bytes assembles the 166-byte wire form
func (p SovereignProof) Bytes() []byte {
	ret := make([]byte, 0, SovereignProofSize)
	ret = append(ret, p.Challenge[:]...)
	ret = append(ret, p.SenderSignature[:]...)
	ret = append(ret, p.Timestamp[:]...)
	ret = append(ret, p.ValidatorSignature[:]...)
	return ret
}

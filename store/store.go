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

// Package store holds the set of consumed proofs. Entries are only ever
// added; there is no removal operation.
package store

import (
	"encoding/hex"
	"errors"
	"time"

	"github.com/blinklabs-io/gopoh/cbor"
	"github.com/blinklabs-io/gopoh/proof"
	"golang.org/x/crypto/blake2b"
)

const KeySize = blake2b.Size256

var ErrStoreClosed = errors.New("store is closed")

// Key identifies a consumed proof. It is the Blake2b-256 hash of the full raw
// proof bytes, so two byte strings differing anywhere map to different keys.
type Key [KeySize]byte

// KeyFor computes the store key of a raw proof
func KeyFor(rawProof []byte) Key {
	return Key(blake2b.Sum256(rawProof))
}

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// Record is what is kept for each consumed proof
type Record struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Variant    uint8
	Challenge  []byte
	Timestamp  uint32
	ConsumedAt int64
}

func NewRecord(
	variant proof.Variant,
	challenge proof.Challenge,
	timestamp proof.Timestamp,
	consumedAt time.Time,
) Record {
	return Record{
		Variant:    uint8(variant),
		Challenge:  append([]byte(nil), challenge[:]...),
		Timestamp:  timestamp.Uint32(),
		ConsumedAt: consumedAt.Unix(),
	}
}

func (r *Record) UnmarshalCBOR(data []byte) error {
	return r.UnmarshalCborGeneric(data, r)
}

func (r Record) ProofVariant() proof.Variant {
	return proof.Variant(r.Variant)
}

func (r Record) ConsumedTime() time.Time {
	return time.Unix(r.ConsumedAt, 0).UTC()
}

// Store is a grow-only set of consumed proofs. Implementations are safe for
// concurrent use, but Has followed by Put is not atomic; callers that need
// check-and-insert semantics must serialize them.
type Store interface {
	Has(key Key) (bool, error)
	Get(key Key) (Record, bool, error)
	Put(key Key, rec Record) error
	Count() (uint64, error)
	Close() error
}

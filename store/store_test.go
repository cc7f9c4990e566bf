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

package store_test

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/blinklabs-io/gopoh/cbor"
	"github.com/blinklabs-io/gopoh/internal/test"
	"github.com/blinklabs-io/gopoh/proof"
	"github.com/blinklabs-io/gopoh/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var testConsumedAt = time.Date(2022, time.March, 25, 12, 0, 0, 0, time.UTC)

func testRecord(t *testing.T) (store.Key, store.Record) {
	t.Helper()
	raw := test.ValidBasicProof()
	p, err := proof.ParseBasic(raw)
	require.NoError(t, err)
	return store.KeyFor(raw), store.NewRecord(
		proof.VariantBasic,
		p.Challenge,
		p.Timestamp,
		testConsumedAt,
	)
}

func TestKeyFor(t *testing.T) {
	a := store.KeyFor(test.ValidBasicProof())
	b := store.KeyFor(test.ValidBasicProof())
	c := store.KeyFor(test.InvalidBasicProof())
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a.String(), store.KeySize*2)
	// blake2b-256 of the empty string
	assert.Equal(
		t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		store.KeyFor(nil).String(),
	)
}

func TestRecordCbor(t *testing.T) {
	_, rec := testRecord(t)
	data, err := cbor.Encode(&rec)
	require.NoError(t, err)
	var decoded store.Record
	_, err = cbor.Decode(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded.Cbor())
	assert.Equal(t, proof.VariantBasic, decoded.ProofVariant())
	assert.Equal(t, test.DecodeHexString(test.Challenge), decoded.Challenge)
	assert.Equal(t, rec.Timestamp, decoded.Timestamp)
	assert.Equal(t, testConsumedAt, decoded.ConsumedTime())
}

func TestNewRecordCopiesChallenge(t *testing.T) {
	var challenge proof.Challenge
	challenge[0] = 0xaa
	rec := store.NewRecord(
		proof.VariantSovereign,
		challenge,
		proof.TimestampFromUint32(1),
		testConsumedAt,
	)
	challenge[0] = 0xbb
	assert.Equal(t, byte(0xaa), rec.Challenge[0])
	assert.Equal(t, proof.VariantSovereign, rec.ProofVariant())
}

type storeFactory func(t *testing.T) store.Store

func storeFactories() map[string]storeFactory {
	return map[string]storeFactory{
		"memory": func(t *testing.T) store.Store {
			return store.NewMemoryStore()
		},
		"pebble": func(t *testing.T) store.Store {
			s, err := store.NewPebbleStore(
				filepath.Join(t.TempDir(), "db"),
			)
			require.NoError(t, err)
			return s
		},
		"pebble-nocache": func(t *testing.T) store.Store {
			s, err := store.NewPebbleStore(
				"db",
				store.WithInMemory(),
				store.WithCacheSize(0),
			)
			require.NoError(t, err)
			return s
		},
	}
}

func TestStore(t *testing.T) {
	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			key, rec := testRecord(t)

			ok, err := s.Has(key)
			require.NoError(t, err)
			assert.False(t, ok)
			_, ok, err = s.Get(key)
			require.NoError(t, err)
			assert.False(t, ok)
			count, err := s.Count()
			require.NoError(t, err)
			assert.Zero(t, count)

			require.NoError(t, s.Put(key, rec))

			ok, err = s.Has(key)
			require.NoError(t, err)
			assert.True(t, ok)
			got, ok, err := s.Get(key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, rec.Variant, got.Variant)
			assert.Equal(t, rec.Challenge, got.Challenge)
			assert.Equal(t, rec.Timestamp, got.Timestamp)
			assert.Equal(t, rec.ConsumedAt, got.ConsumedAt)

			other := store.KeyFor(test.ValidSovereignProof())
			ok, err = s.Has(other)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Put(other, rec))
			// Putting the same key twice does not grow the set
			require.NoError(t, s.Put(other, rec))
			count, err = s.Count()
			require.NoError(t, err)
			assert.Equal(t, uint64(2), count)

			require.NoError(t, s.Close())
			_, err = s.Has(store.KeyFor([]byte("unseen")))
			assert.ErrorIs(t, err, store.ErrStoreClosed)
			assert.ErrorIs(t, s.Put(key, rec), store.ErrStoreClosed)
			_, err = s.Count()
			assert.ErrorIs(t, err, store.ErrStoreClosed)
			assert.NoError(t, s.Close())
		})
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	defer goleak.VerifyNone(t)
	s := store.NewMemoryStore()
	defer s.Close()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := store.KeyFor([]byte{byte(i)})
			assert.NoError(t, s.Put(key, store.Record{Variant: 1}))
			ok, err := s.Has(key)
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(16), count)
}

func TestPebbleStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consumed")
	key, rec := testRecord(t)

	s, err := store.NewPebbleStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(key, rec))
	require.NoError(t, s.Close())

	s, err = store.NewPebbleStore(path)
	require.NoError(t, err)
	defer s.Close()
	got, ok, err := s.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testConsumedAt, got.ConsumedTime())
	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

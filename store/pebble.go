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

package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/blinklabs-io/gopoh/cbor"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// DefaultCacheSize is the number of positive lookups kept in memory
const DefaultCacheSize = 4096

var consumedPrefix = []byte("consumed/")

// PebbleStore keeps consumed proofs on disk. Every write is synced before
// Put returns, so a proof reported as consumed stays consumed across a crash.
type PebbleStore struct {
	mu     sync.RWMutex
	db     *pebble.DB
	logger *slog.Logger
	// Only positive lookups are cached. Entries are never removed from the
	// store, so a cached hit can never go stale.
	cache  *lru.Cache[Key, struct{}]
	closed bool
}

type pebbleConfig struct {
	cacheSize int
	inMemory  bool
	logger    *slog.Logger
}

// PebbleOptionFunc modifies the configuration of a PebbleStore
type PebbleOptionFunc func(*pebbleConfig)

// WithCacheSize sets the number of cached positive lookups. Zero disables
// the cache.
func WithCacheSize(size int) PebbleOptionFunc {
	return func(c *pebbleConfig) {
		c.cacheSize = size
	}
}

// WithInMemory backs the store with an in-memory filesystem. The path is
// still used as the database directory name.
func WithInMemory() PebbleOptionFunc {
	return func(c *pebbleConfig) {
		c.inMemory = true
	}
}

// WithLogger specifies the logger used for pebble's own messages
func WithLogger(logger *slog.Logger) PebbleOptionFunc {
	return func(c *pebbleConfig) {
		c.logger = logger
	}
}

// NewPebbleStore opens (creating if needed) the database at path
func NewPebbleStore(path string, opts ...PebbleOptionFunc) (*PebbleStore, error) {
	cfg := pebbleConfig{
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	pebbleOpts := &pebble.Options{
		Logger: pebbleLogger{logger: cfg.logger},
	}
	if cfg.inMemory {
		pebbleOpts.FS = vfs.NewMem()
	}
	db, err := pebble.Open(path, pebbleOpts)
	if err != nil {
		return nil, errors.Wrap(err, "open pebble store")
	}
	s := &PebbleStore{
		db:     db,
		logger: cfg.logger,
	}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[Key, struct{}](cfg.cacheSize)
		if err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "create lookup cache")
		}
		s.cache = cache
	}
	return s, nil
}

func dbKey(key Key) []byte {
	ret := make([]byte, 0, len(consumedPrefix)+KeySize)
	ret = append(ret, consumedPrefix...)
	ret = append(ret, key[:]...)
	return ret
}

func (s *PebbleStore) Has(key Key) (bool, error) {
	if s.cache != nil && s.cache.Contains(key) {
		return true, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, ErrStoreClosed
	}
	_, closer, err := s.db.Get(dbKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "has consumed record")
	}
	if err := closer.Close(); err != nil {
		return false, errors.Wrap(err, "has consumed record")
	}
	if s.cache != nil {
		s.cache.Add(key, struct{}{})
	}
	return true, nil
}

func (s *PebbleStore) Get(key Key) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Record{}, false, ErrStoreClosed
	}
	val, closer, err := s.db.Get(dbKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Record{}, false, nil
		}
		return Record{}, false, errors.Wrap(err, "get consumed record")
	}
	defer closer.Close()
	var rec Record
	if _, err := cbor.Decode(val, &rec); err != nil {
		return Record{}, false, errors.Wrapf(err, "decode consumed record %s", key)
	}
	if s.cache != nil {
		s.cache.Add(key, struct{}{})
	}
	return rec, true, nil
}

func (s *PebbleStore) Put(key Key, rec Record) error {
	data, err := cbor.Encode(&rec)
	if err != nil {
		return errors.Wrap(err, "encode consumed record")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	if err := s.db.Set(dbKey(key), data, pebble.Sync); err != nil {
		return errors.Wrap(err, "put consumed record")
	}
	if s.cache != nil {
		s.cache.Add(key, struct{}{})
	}
	return nil
}

// Count walks every consumed record, so it is linear in the size of the set
func (s *PebbleStore) Count() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	upper := append([]byte(nil), consumedPrefix...)
	upper[len(upper)-1]++
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: consumedPrefix,
		UpperBound: upper,
	})
	if err != nil {
		return 0, errors.Wrap(err, "count consumed records")
	}
	var count uint64
	for iter.First(); iter.Valid(); iter.Next() {
		count++
	}
	if err := iter.Close(); err != nil {
		return 0, errors.Wrap(err, "count consumed records")
	}
	return count, nil
}

func (s *PebbleStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return errors.Wrap(s.db.Close(), "close pebble store")
}

var _ Store = (*PebbleStore)(nil)

// pebbleLogger routes pebble's messages through slog
type pebbleLogger struct {
	logger *slog.Logger
}

func (l pebbleLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "pebble")
}

func (l pebbleLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...), "component", "pebble")
}

func (l pebbleLogger) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.logger.Error(msg, "component", "pebble")
	panic(msg)
}

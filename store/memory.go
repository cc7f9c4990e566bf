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
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	records map[Key]Record
	closed  bool
}

// NewMemoryStore returns a store that lives only as long as the process
func NewMemoryStore() Store {
	return &memoryStore{
		records: make(map[Key]Record),
	}
}

func (s *memoryStore) Has(key Key) (bool, error) {
	_, ok, err := s.Get(key)
	return ok, err
}

func (s *memoryStore) Get(key Key) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Record{}, false, ErrStoreClosed
	}
	rec, ok := s.records[key]
	return rec, ok, nil
}

func (s *memoryStore) Put(key Key, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.records[key] = rec
	return nil
}

func (s *memoryStore) Count() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	return uint64(len(s.records)), nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

/*
 * Copyright 2025 Simon Binom.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package settings holds the repeater settings storage shared between the
// SNMP walker and its consumers.
package settings

// Store is an insertion-ordered map keyed by OID string. It serves both as
// the long-lived settings storage owned by the caller and as the in-progress
// snapshot a walk accumulates before committing.
//
// Store is not safe for concurrent use; callers running walks against
// overlapping keys must serialize their merges.
type Store struct {
	order   []string
	entries map[string]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]any),
	}
}

// Set records value under oid, appending oid to the iteration order on first
// insertion. Overwriting an existing key keeps its original position.
func (s *Store) Set(oid string, value any) {
	if _, ok := s.entries[oid]; !ok {
		s.order = append(s.order, oid)
	}

	s.entries[oid] = value
}

// Get returns the value stored under oid.
func (s *Store) Get(oid string) (any, bool) {
	value, ok := s.entries[oid]
	return value, ok
}

// OIDs returns the stored keys in insertion order.
func (s *Store) OIDs() []string {
	oids := make([]string, len(s.order))
	copy(oids, s.order)

	return oids
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Merge copies every entry of src into s, preserving src's insertion order
// for keys s has not seen yet. Merge never removes or rewinds entries.
func (s *Store) Merge(src *Store) {
	if src == nil {
		return
	}

	for _, oid := range src.order {
		s.Set(oid, src.entries[oid])
	}
}

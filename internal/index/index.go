// Copyright 2025 The wotdict Authors
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

// Package index implements a generic sorted in-memory search index.
package index

import (
	"slices"
	"sort"
)

// Entry is a keyed index value.
type Entry[V any] struct {
	Key   string
	Value V
}

// Index is a sorted array index over keyed values.
type Index[V any] struct {
	entries []Entry[V]
	cmp     func(string, string) int
}

// New creates an index from the given entries and comparison function.
// cmp(a, b) must return a negative number when a < b, a positive
// number when a > b, and zero when the keys are equal or incomparable
// in the sense of a strict weak ordering.
func New[V any](entries []Entry[V], cmp func(string, string) int) *Index[V] {
	sorted := make([]Entry[V], len(entries))
	copy(sorted, entries)
	slices.SortStableFunc(sorted, func(a, b Entry[V]) int {
		return cmp(a.Key, b.Key)
	})

	return &Index[V]{
		entries: sorted,
		cmp:     cmp,
	}
}

// Search performs a binary search over the index and returns the
// values for all entries matching the query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.entries), func(i int) int {
		return idx.cmp(query, idx.entries[i].Key)
	})
	if !found {
		return nil
	}

	var values []V
	for ; i < len(idx.entries) && idx.cmp(query, idx.entries[i].Key) == 0; i++ {
		values = append(values, idx.entries[i].Value)
	}
	return values
}

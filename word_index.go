// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cybrota/adskit/trie"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// WordIndex answers membership and completion queries over a trie. A bloom
// filter rejects most absent words before the trie is walked, and prefix
// completions are cached until the next Add.
type WordIndex struct {
	words       *trie.Trie
	mu          sync.RWMutex // guards filter and completions; Add holds it exclusively
	filter      *bloom.BloomFilter
	completions *cache.Cache
	filterSkips atomic.Int64
}

func NewWordIndex(config TrieConfig) *WordIndex {
	return &WordIndex{
		words:       trie.New(),
		filter:      bloom.New(config.BloomSize, config.BloomHashes),
		completions: NewCompletionCache(time.Duration(config.CacheMinutes) * time.Minute),
	}
}

// Add inserts words, ignoring empty strings, and drops cached completions.
func (w *WordIndex) Add(words ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, word := range words {
		if word == "" {
			continue
		}
		w.words.Insert(word)
		w.filter.AddString(word)
	}
	w.completions.Flush()
}

// Contains reports whether word is indexed.
func (w *WordIndex) Contains(word string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.filter.TestString(word) {
		w.filterSkips.Add(1)
		return false
	}
	return w.words.Search(word)
}

// Complete lists every indexed word starting with prefix, sorted.
func (w *WordIndex) Complete(prefix string) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if cached, ok := GetCompletions(w.completions, prefix); ok {
		return slices.Clone(cached)
	}

	words := w.words.Prefix(prefix)
	CacheCompletions(w.completions, prefix, words)
	return slices.Clone(words)
}

func (w *WordIndex) Len() int {
	return w.words.Len()
}

// FilterSkips counts Contains calls answered by the bloom filter alone.
func (w *WordIndex) FilterSkips() int {
	return int(w.filterSkips.Load())
}

func (w *WordIndex) String() string {
	return fmt.Sprintf("%d words, %d cached prefixes, bloom filter %d bits/%d hashes",
		w.Len(), w.completions.ItemCount(), w.filter.Cap(), w.filter.K())
}

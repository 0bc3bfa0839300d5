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

// Package trie implements a concurrent prefix tree over runes.
package trie

import (
	"sort"
	"strings"
	"sync"
)

type node struct {
	children map[rune]*node
	word     bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie stores a set of words. The zero value is not usable; call New.
type Trie struct {
	mu    sync.RWMutex
	root  *node
	words int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds text as a word. Empty strings are ignored.
func (t *Trie) Insert(text string) {
	if text == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	current := t.root
	for _, r := range text {
		child, ok := current.children[r]
		if !ok {
			child = newNode()
			current.children[r] = child
		}
		current = child
	}
	if !current.word {
		current.word = true
		t.words++
	}
}

// find walks text from the root. Callers hold the read lock.
func (t *Trie) find(text string) *node {
	current := t.root
	for _, r := range text {
		child, ok := current.children[r]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

// Search reports whether text was inserted as a whole word.
func (t *Trie) Search(text string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.find(text)
	return n != nil && n.word
}

// Prefix returns every word beginning with text, sorted. text itself is
// included when it is a word.
func (t *Trie) Prefix(text string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	words := []string{}
	start := t.find(text)
	if start == nil {
		return words
	}

	var sb strings.Builder
	sb.WriteString(text)
	collect(start, &sb, &words)
	sort.Strings(words)
	return words
}

func collect(n *node, sb *strings.Builder, words *[]string) {
	if n.word {
		*words = append(*words, sb.String())
	}
	prefix := sb.String()
	for r, child := range n.children {
		sb.Reset()
		sb.WriteString(prefix)
		sb.WriteRune(r)
		collect(child, sb, words)
	}
}

// Len is the number of distinct words stored.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.words
}

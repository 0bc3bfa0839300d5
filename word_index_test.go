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
	"reflect"
	"sync"
	"testing"
)

func newTestIndex(words ...string) *WordIndex {
	index := NewWordIndex(defaultConfig.Trie)
	index.Add(words...)
	return index
}

func TestWordIndexContains(t *testing.T) {
	index := newTestIndex("ab", "a", "acd")

	tests := []struct {
		word     string
		expected bool
	}{
		{"abb", false},
		{"a", true},
		{"acd", true},
		{"ab", true},
		{"acdx", false},
	}
	for _, tc := range tests {
		if got := index.Contains(tc.word); got != tc.expected {
			t.Errorf("Contains(%q) = %t; want %t", tc.word, got, tc.expected)
		}
	}
}

func TestWordIndexBloomShortCircuit(t *testing.T) {
	index := newTestIndex("alpha", "beta")

	for i := 0; i < 100; i++ {
		index.Contains(fmt.Sprintf("absent-%d", i))
	}
	// a 64Ki bit filter holding two words rejects nearly every absent word
	if skips := index.FilterSkips(); skips < 90 {
		t.Errorf("FilterSkips() = %d; want most of 100 lookups answered by the filter", skips)
	}
}

func TestWordIndexComplete(t *testing.T) {
	index := newTestIndex("a", "abc", "bd")

	if got := index.Complete("a"); !reflect.DeepEqual(got, []string{"a", "abc"}) {
		t.Errorf("Complete(a) = %v; want [a abc]", got)
	}
	if got := index.Complete("z"); len(got) != 0 {
		t.Errorf("Complete(z) = %v; want empty", got)
	}
	if got := index.Complete(""); !reflect.DeepEqual(got, []string{"a", "abc", "bd"}) {
		t.Errorf("Complete(\"\") = %v; want every word", got)
	}
}

func TestWordIndexAddInvalidatesCompletions(t *testing.T) {
	index := newTestIndex("car")

	if got := index.Complete("ca"); !reflect.DeepEqual(got, []string{"car"}) {
		t.Fatalf("Complete(ca) = %v; want [car]", got)
	}

	index.Add("cat")
	if got := index.Complete("ca"); !reflect.DeepEqual(got, []string{"car", "cat"}) {
		t.Errorf("Complete(ca) after Add = %v; want [car cat]", got)
	}
}

func TestWordIndexCompletionsAreCopies(t *testing.T) {
	index := newTestIndex("one", "only")

	got := index.Complete("o")
	got[0] = "mutated"
	if again := index.Complete("o"); again[0] != "one" {
		t.Errorf("cached completions changed to %v", again)
	}
}

func TestWordIndexLenIgnoresEmptyAndDuplicates(t *testing.T) {
	index := newTestIndex("go", "go", "", "gopher")
	if got := index.Len(); got != 2 {
		t.Errorf("Len() = %d; want 2", got)
	}
}

func TestWordIndexConcurrentUse(t *testing.T) {
	index := newTestIndex()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				w := fmt.Sprintf("w%d-%d", g, i)
				index.Add(w)
				if !index.Contains(w) {
					t.Errorf("Contains(%q) = false right after Add", w)
				}
				index.Complete("w")
			}
		}(g)
	}
	wg.Wait()

	if got := index.Len(); got != 400 {
		t.Errorf("Len() = %d; want 400", got)
	}
}

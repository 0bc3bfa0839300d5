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
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	config := defaultConfig
	config.Ring.Capacity = 3
	s, err := NewSession(&config, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// TestSplitCommand verifies that splitCommand correctly tokenizes a script line.
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"avl insert 1 2", []string{"avl", "insert", "1", "2"}},
		{`trie insert "new york" boston`, []string{"trie", "insert", "new york", "boston"}},
		{"ring   write  a", []string{"ring", "write", "a"}},
		{`ring write 'hello world'`, []string{"ring", "write", "hello world"}},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if strings.Join(parts, "|") != strings.Join(tc.expected, "|") {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
		}
	}
}

func TestSessionExec(t *testing.T) {
	s := newTestSession(t)

	steps := []struct {
		line     string
		expected string
	}{
		{"avl insert 5 3 8 3", "inserted 4"},
		{"avl size", "4"},
		{"avl height", "3"},
		{"avl exist 8", "true"},
		{"avl exist 4", "false"},
		{"ring write a b c d", "written 4"},
		{"ring size", "3"},
		{"ring read", "b"},
		{"ring read", "c"},
		{"ring read", "d"},
		{"ring read", "(empty)"},
		{`trie insert ab a acd "a b"`, "inserted 4"},
		{"trie search ab", "true"},
		{"trie search abb", "false"},
		{"trie prefix ac", "acd"},
		{"trie prefix a", "a a b ab acd"},
		{"trie prefix zz", ""},
		{"segment build sum 1 1 1 1", "built 4"},
		{"segment query 0 3", "4"},
		{"segment query 1 2", "2"},
		{"segment build max 4 9 2", "built 3"},
		{"segment query 0 2", "9"},
	}

	for _, step := range steps {
		got, err := s.Exec(step.line)
		if err != nil {
			t.Fatalf("Exec(%q) returned error: %v", step.line, err)
		}
		if got != step.expected {
			t.Errorf("Exec(%q) = %q; want %q", step.line, got, step.expected)
		}
	}
}

func TestSessionExecErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"heap push 1", ErrUnknownCommand},
		{"avl", ErrUnknownCommand},
		{"avl delete 1", ErrUnknownCommand},
		{"avl insert", ErrBadArguments},
		{"avl insert one", ErrMalformedValue},
		{"avl exist 1 2", ErrBadArguments},
		{"ring write", ErrBadArguments},
		{"trie search", ErrBadArguments},
		{"segment query 0 1", ErrNoSegmentTree},
		{"segment build median 1 2", ErrUnknownAggregator},
		{"segment build sum", ErrBadArguments},
	}

	for _, tc := range tests {
		s := newTestSession(t)
		_, err := s.Exec(tc.line)
		if !errors.Is(err, tc.want) {
			t.Errorf("Exec(%q): err = %v; want %v", tc.line, err, tc.want)
		}
	}
}

func TestSessionSegmentQueryRange(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Exec("segment build sum 1 2 3"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Exec("segment query 2 1"); err == nil {
		t.Error("Expected error for from > to, got nil")
	}
	if _, err := s.Exec("segment query 0 3"); err == nil {
		t.Error("Expected error for out of range query, got nil")
	}
}

func TestSessionRun(t *testing.T) {
	script := `# build a small tree
avl insert 0 1 2

avl size
avl height
trie insert car cat
trie prefix ca
`
	var out bytes.Buffer
	if err := newTestSession(t).Run(strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	expected := "inserted 3\n3\n2\ninserted 2\ncar cat\n"
	if out.String() != expected {
		t.Errorf("Run output = %q; want %q", out.String(), expected)
	}
}

func TestSessionRunReportsLine(t *testing.T) {
	script := "avl insert 1\n\n# comment\navl frobnicate\navl size\n"

	var out bytes.Buffer
	err := newTestSession(t).Run(strings.NewReader(script), &out)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err = %v; want ErrUnknownCommand", err)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("error %q does not name line 4", err)
	}
	if out.String() != "inserted 1\n" {
		t.Errorf("output before the failure = %q", out.String())
	}
}

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

	"github.com/rs/zerolog"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tc := range tests {
		log, err := newLoggerTo(&bytes.Buffer{}, tc.level)
		if err != nil {
			t.Errorf("newLoggerTo(%q) returned error: %v", tc.level, err)
			continue
		}
		if got := log.GetLevel(); got != tc.expected {
			t.Errorf("newLoggerTo(%q) level = %v; want %v", tc.level, got, tc.expected)
		}
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := newLoggerTo(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("Expected error for level loud, got nil")
	}
}

func TestNewLoggerFilters(t *testing.T) {
	var out bytes.Buffer
	log, err := newLoggerTo(&out, "warn")
	if err != nil {
		t.Fatal(err)
	}

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	if strings.Contains(out.String(), "hidden") || !strings.Contains(out.String(), "shown") {
		t.Errorf("warn logger wrote %q", out.String())
	}
}

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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrMalformedValue = errors.New("malformed integer")

// scanLines calls fn with every meaningful line of r and its 1-based line
// number. Blank lines and lines starting with # are skipped.
func scanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long word lists
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// readValues reads whitespace separated integers, any number per line.
func readValues(r io.Reader) ([]int, error) {
	var values []int
	err := scanLines(r, func(lineNo int, line string) error {
		for _, field := range strings.Fields(line) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return errors.Wrapf(ErrMalformedValue, "line %d: %q", lineNo, field)
			}
			values = append(values, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// readWords reads one word per line.
func readWords(r io.Reader) ([]string, error) {
	var words []string
	err := scanLines(r, func(_ int, line string) error {
		words = append(words, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// parseValues converts command-line arguments to integers.
func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedValue, "argument %d: %q", i+1, arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// openInput opens path for reading; "-" is stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("input file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	return file, nil
}

func readValuesFile(path string) ([]int, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	values, err := readValues(in)
	return values, errors.Wrap(err, path)
}

func readWordsFile(path string) ([]string, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	words, err := readWords(in)
	return words, errors.Wrap(err, path)
}

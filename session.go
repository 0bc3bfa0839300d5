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
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/adskit/avl"
	"github.com/cybrota/adskit/ringbuffer"
	"github.com/cybrota/adskit/segtree"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
	ErrNoSegmentTree  = errors.New("no segment tree built yet")
)

// Session holds one of each container for a script to drive.
type Session struct {
	tree    *avl.Tree[int]
	ring    *ringbuffer.Buffer[string]
	words   *WordIndex
	segment *segtree.Tree[int]
	log     zerolog.Logger
}

func NewSession(config *Config, log zerolog.Logger) (*Session, error) {
	ring, err := ringbuffer.New[string](config.Ring.Capacity)
	if err != nil {
		return nil, err
	}
	return &Session{
		tree:  avl.New[int](),
		ring:  ring,
		words: NewWordIndex(config.Trie),
		log:   log,
	}, nil
}

// splitCommand splits a script line into shell words.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse line %q", line)
	}
	return args, nil
}

// Run executes every line of r, writing each command's output to w. The
// first failing line stops the script.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	executed := 0
	err := scanLines(r, func(lineNo int, line string) error {
		out, err := s.Exec(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		executed++
		if out != "" {
			fmt.Fprintln(w, out)
		}
		return nil
	})
	s.log.Debug().Int("commands", executed).Msg("script finished")
	return err
}

// Exec runs one command line and returns its printable result.
func (s *Session) Exec(line string) (string, error) {
	args, err := splitCommand(line)
	if err != nil {
		return "", err
	}
	if len(args) < 2 {
		return "", errors.Wrapf(ErrUnknownCommand, "%q", line)
	}

	s.log.Debug().Strs("args", args).Msg("exec")
	target, op, rest := args[0], args[1], args[2:]
	switch target {
	case "avl":
		return s.execAVL(op, rest)
	case "ring":
		return s.execRing(op, rest)
	case "trie":
		return s.execTrie(op, rest)
	case "segment":
		return s.execSegment(op, rest)
	}
	return "", errors.Wrapf(ErrUnknownCommand, "%q", target)
}

func (s *Session) execAVL(op string, args []string) (string, error) {
	switch op {
	case "insert":
		values, err := atLeastOneValue(args)
		if err != nil {
			return "", err
		}
		for _, v := range values {
			s.tree.Insert(v)
		}
		return fmt.Sprintf("inserted %d", len(values)), nil
	case "exist":
		values, err := exactlyValues(args, 1)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(s.tree.Exist(values[0])), nil
	case "size":
		return strconv.Itoa(s.tree.Size()), nil
	case "height":
		return strconv.Itoa(s.tree.Height()), nil
	}
	return "", errors.Wrapf(ErrUnknownCommand, "avl %s", op)
}

func (s *Session) execRing(op string, args []string) (string, error) {
	switch op {
	case "write":
		if len(args) == 0 {
			return "", errors.Wrap(ErrBadArguments, "ring write needs a value")
		}
		for _, v := range args {
			s.ring.Write(v)
		}
		return fmt.Sprintf("written %d", len(args)), nil
	case "read":
		v, ok := s.ring.Read()
		if !ok {
			return "(empty)", nil
		}
		return v, nil
	case "size":
		return strconv.Itoa(s.ring.Size()), nil
	}
	return "", errors.Wrapf(ErrUnknownCommand, "ring %s", op)
}

func (s *Session) execTrie(op string, args []string) (string, error) {
	switch op {
	case "insert":
		if len(args) == 0 {
			return "", errors.Wrap(ErrBadArguments, "trie insert needs a word")
		}
		s.words.Add(args...)
		return fmt.Sprintf("inserted %d", len(args)), nil
	case "search":
		if len(args) != 1 {
			return "", errors.Wrap(ErrBadArguments, "trie search needs one word")
		}
		return strconv.FormatBool(s.words.Contains(args[0])), nil
	case "prefix":
		prefix := ""
		if len(args) > 1 {
			return "", errors.Wrap(ErrBadArguments, "trie prefix takes at most one prefix")
		} else if len(args) == 1 {
			prefix = args[0]
		}
		return strings.Join(s.words.Complete(prefix), " "), nil
	}
	return "", errors.Wrapf(ErrUnknownCommand, "trie %s", op)
}

func (s *Session) execSegment(op string, args []string) (string, error) {
	switch op {
	case "build":
		if len(args) < 2 {
			return "", errors.Wrap(ErrBadArguments, "segment build needs an aggregator and values")
		}
		combine, err := combinerFor(args[0])
		if err != nil {
			return "", err
		}
		values, err := parseValues(args[1:])
		if err != nil {
			return "", err
		}
		tree, err := segtree.New(values, combine)
		if err != nil {
			return "", err
		}
		s.segment = tree
		return fmt.Sprintf("built %d", tree.Len()), nil
	case "query":
		if s.segment == nil {
			return "", ErrNoSegmentTree
		}
		bounds, err := exactlyValues(args, 2)
		if err != nil {
			return "", err
		}
		v, err := s.segment.Query(bounds[0], bounds[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	}
	return "", errors.Wrapf(ErrUnknownCommand, "segment %s", op)
}

func atLeastOneValue(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(ErrBadArguments, "need at least one value")
	}
	return parseValues(args)
}

func exactlyValues(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, errors.Wrapf(ErrBadArguments, "need %d value(s), got %d", n, len(args))
	}
	return parseValues(args)
}

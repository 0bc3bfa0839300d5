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

// Package segtree implements a static segment tree: built once from a
// slice and an associative combining function, it answers aggregate
// queries over any inclusive index range in O(log n).
//
// A Tree is immutable after New returns, so concurrent queries need no
// locking.
package segtree

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidRange is returned by Query when from > to.
	ErrInvalidRange = errors.New("invalid range: from > to")
	// ErrOutOfRange is returned by Query for bounds outside the values.
	ErrOutOfRange = errors.New("range outside tree bounds")
	// ErrEmpty is returned by New when there are no values.
	ErrEmpty = errors.New("segment tree needs at least one value")
	// ErrNilCombine is returned by New without a combining function.
	ErrNilCombine = errors.New("segment tree needs a combining function")
)

// Tree aggregates a fixed sequence of n values.
type Tree[T any] struct {
	nodes   []T // 1-based heap layout, children of i at 2i and 2i+1
	n       int
	combine func(a, b T) T
}

// New builds a tree over values. combine must be associative; it is
// called with the left operand covering lower indices.
func New[T any](values []T, combine func(a, b T) T) (*Tree[T], error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	if combine == nil {
		return nil, ErrNilCombine
	}

	tree := &Tree[T]{
		nodes:   make([]T, 4*len(values)),
		n:       len(values),
		combine: combine,
	}
	tree.build(values, 1, 0, len(values)-1)
	return tree, nil
}

func (tree *Tree[T]) build(values []T, index, start, end int) {
	if start == end {
		tree.nodes[index] = values[start]
		return
	}
	mid := (start + end) / 2
	tree.build(values, 2*index, start, mid)
	tree.build(values, 2*index+1, mid+1, end)
	tree.nodes[index] = tree.combine(tree.nodes[2*index], tree.nodes[2*index+1])
}

// Len is the number of values the tree was built from.
func (tree *Tree[T]) Len() int {
	return tree.n
}

// Query returns the aggregate of the values at indices from..to inclusive.
func (tree *Tree[T]) Query(from, to int) (T, error) {
	var zero T
	if from > to {
		return zero, errors.Wrapf(ErrInvalidRange, "from %d, to %d", from, to)
	}
	if from < 0 || to >= tree.n {
		return zero, errors.Wrapf(ErrOutOfRange, "[%d, %d] with %d values", from, to, tree.n)
	}
	return tree.query(1, 0, tree.n-1, from, to), nil
}

func (tree *Tree[T]) query(index, start, end, from, to int) T {
	if from == start && to == end {
		return tree.nodes[index]
	}

	mid := (start + end) / 2
	if from > mid {
		return tree.query(2*index+1, mid+1, end, from, to)
	}
	if to <= mid {
		return tree.query(2*index, start, mid, from, to)
	}

	left := tree.query(2*index, start, mid, from, mid)
	right := tree.query(2*index+1, mid+1, end, mid+1, to)
	return tree.combine(left, right)
}

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

package avl

import (
	"cmp"
	"sync"
	"sync/atomic"
)

// source of lock-ordering ids, see Tree.lockOrder
var treeIDs atomic.Uint64

// Tree is an AVL tree of values of type T. The zero value is an empty
// tree ready to use. A Tree must not be copied after first use.
type Tree[T cmp.Ordered] struct {
	mu   sync.Mutex
	root *node[T]
	id   atomic.Uint64
}

// New returns an empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// NewOf returns a tree holding the given values, inserted in argument order.
func NewOf[T cmp.Ordered](first, second T, rest ...T) *Tree[T] {
	tree := New[T]()
	tree.Insert(first)
	tree.Insert(second)
	for _, value := range rest {
		tree.Insert(value)
	}
	return tree
}

// Insert adds value to the tree. Duplicates are kept, so every call adds
// exactly one node.
func (tree *Tree[T]) Insert(value T) {
	tree.mu.Lock()
	defer tree.mu.Unlock()

	tree.root, _ = tree.root.insert(value)
}

// Exist reports whether a value equal to value is stored in the tree.
func (tree *Tree[T]) Exist(value T) bool {
	tree.mu.Lock()
	defer tree.mu.Unlock()

	return tree.root.exist(value)
}

// Size counts the nodes in the tree. The count is not cached: each call
// walks the whole tree.
func (tree *Tree[T]) Size() int {
	tree.mu.Lock()
	defer tree.mu.Unlock()

	return tree.root.size()
}

// Height is the number of levels in the tree: 0 when empty, 1 for a
// single node. Like Size it walks the whole tree.
func (tree *Tree[T]) Height() int {
	tree.mu.Lock()
	defer tree.mu.Unlock()

	return tree.root.height()
}

// lockOrder returns a process-unique id used to lock pairs of trees in a
// fixed order. Ids are handed out lazily so the zero Tree works too.
func (tree *Tree[T]) lockOrder() uint64 {
	if id := tree.id.Load(); id != 0 {
		return id
	}
	tree.id.CompareAndSwap(0, treeIDs.Add(1))
	return tree.id.Load()
}

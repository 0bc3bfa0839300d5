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

// Equal reports whether tree and other have the same shape and values.
//
// Two empty trees are equal. Otherwise nodes are compared pairwise from the
// roots. Where one of the two nodes lacks a left child (or a right child),
// that side is not descended into: if both sides are short of a child the
// children are compared by identity, otherwise only the opposite side is
// compared. As a result a left (or right) subtree present on only one side
// goes unnoticed when the other side of both nodes has children, e.g. the
// trees built from {2, 1, 3} and {2, 3} compare equal.
//
// A nil other is treated as an empty tree.
func (tree *Tree[T]) Equal(other *Tree[T]) bool {
	if other == nil {
		tree.mu.Lock()
		defer tree.mu.Unlock()
		return tree.root == nil
	}
	if tree == other {
		return true
	}

	first, second := tree, other
	if first.lockOrder() > second.lockOrder() {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if tree.root == nil || other.root == nil {
		return tree.root == other.root
	}
	return tree.root.equal(other.root)
}

// equal compares two non-nil nodes.
func (p *node[T]) equal(q *node[T]) bool {
	if p.value != q.value {
		return false
	}

	leftMissing := p.left == nil || q.left == nil
	rightMissing := p.right == nil || q.right == nil

	switch {
	case leftMissing && rightMissing:
		return p.left == q.left && p.right == q.right
	case leftMissing:
		return p.right.equal(q.right)
	case rightMissing:
		return p.left.equal(q.left)
	}
	return p.left.equal(q.left) && p.right.equal(q.right)
}

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

import "cmp"

// node is owned by exactly one parent, or by the tree when it is the root.
type node[T cmp.Ordered] struct {
	value   T
	balance int // height(right) - height(left), always -1, 0 or +1 between inserts
	left    *node[T]
	right   *node[T]
}

func newNode[T cmp.Ordered](value T) *node[T] {
	return &node[T]{value: value}
}

// insert adds value to the subtree rooted at p. It returns the new subtree
// root and whether the subtree got taller.
func (p *node[T]) insert(value T) (*node[T], bool) {
	if p == nil {
		return newNode(value), true
	}

	grew := false
	if value > p.value {
		p.right, grew = p.right.insert(value)
		if grew {
			p.balance++
		}
	} else {
		// equal values go left
		p.left, grew = p.left.insert(value)
		if grew {
			p.balance--
		}
	}

	if !grew {
		return p, false
	}

	switch p.balance {
	case 0:
		// the shorter side caught up
		return p, false
	case -1, +1:
		return p, true
	}

	// a rotation after an insert restores the height the subtree had before
	return rebalance(p), false
}

func (p *node[T]) exist(value T) bool {
	if p == nil {
		return false
	}
	if value == p.value {
		return true
	}
	if value > p.value {
		return p.right.exist(value)
	}
	return p.left.exist(value)
}

func (p *node[T]) size() int {
	if p == nil {
		return 0
	}
	return 1 + p.left.size() + p.right.size()
}

func (p *node[T]) height() int {
	if p == nil {
		return 0
	}
	return 1 + max(p.left.height(), p.right.height())
}

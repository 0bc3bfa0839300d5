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

// rotateLeft lifts the right child of p into p's place and returns it.
//
//	  p                r
//	 / \              / \
//	a   r     =>     p   c
//	   / \          / \
//	  b   c        a   b
//
// Only the balances of p and r change; both are derived from their
// previous values so no subtree height is ever recomputed.
func rotateLeft[T cmp.Ordered](p *node[T]) *node[T] {
	r := p.right
	p.right = r.left
	r.left = p

	p.balance = p.balance - 1 - max(r.balance, 0)
	r.balance = r.balance - 1 + min(p.balance, 0)
	return r
}

// rotateRight is the mirror image of rotateLeft.
func rotateRight[T cmp.Ordered](p *node[T]) *node[T] {
	l := p.left
	p.left = l.right
	l.right = p

	p.balance = p.balance + 1 - min(l.balance, 0)
	l.balance = l.balance + 1 + max(p.balance, 0)
	return l
}

// rotateRightLeft straightens a right child that leans left, then rotates p left.
func rotateRightLeft[T cmp.Ordered](p *node[T]) *node[T] {
	p.right = rotateRight(p.right)
	return rotateLeft(p)
}

// rotateLeftRight straightens a left child that leans right, then rotates p right.
func rotateLeftRight[T cmp.Ordered](p *node[T]) *node[T] {
	p.left = rotateLeft(p.left)
	return rotateRight(p)
}

// rebalance returns the root of p's subtree after any rotation that a
// balance of ±2 at p calls for.
func rebalance[T cmp.Ordered](p *node[T]) *node[T] {
	switch p.balance {
	case +2:
		if p.right.balance <= 0 {
			return rotateRightLeft(p)
		}
		return rotateLeft(p)
	case -2:
		if p.left.balance >= 0 {
			return rotateLeftRight(p)
		}
		return rotateRight(p)
	}
	return p
}

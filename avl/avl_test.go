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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// heightBound is the AVL worst case height for a tree of size nodes.
func heightBound(size int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(size+1))))
}

// checkShape walks the subtree and fails if a stored balance is out of
// range or disagrees with the real heights. It returns the subtree height.
func checkShape[T cmp.Ordered](t require.TestingT, p *node[T]) int {
	if p == nil {
		return 0
	}
	lh := checkShape(t, p.left)
	rh := checkShape(t, p.right)
	require.Contains(t, []int{-1, 0, 1}, p.balance, "balance of %v", p.value)
	require.Equal(t, rh-lh, p.balance, "stored balance of %v", p.value)
	return 1 + max(lh, rh)
}

func inOrder[T cmp.Ordered](p *node[T], out []T) []T {
	if p == nil {
		return out
	}
	out = inOrder(p.left, out)
	out = append(out, p.value)
	return inOrder(p.right, out)
}

func TestEmptyTree(t *testing.T) {
	tree := New[int]()

	require.Equal(t, 0, tree.Size())
	require.Equal(t, 0, tree.Height())
	require.False(t, tree.Exist(0))
}

func TestZeroValueTree(t *testing.T) {
	var tree Tree[string]
	tree.Insert("b")
	tree.Insert("a")

	require.Equal(t, 2, tree.Size())
	require.True(t, tree.Exist("a"))
	require.True(t, tree.Equal(NewOf("b", "a")))
}

func TestSingleNode(t *testing.T) {
	tree := New[int]()
	tree.Insert(0)

	alias := tree
	require.True(t, alias.Exist(0))
	require.False(t, alias.Exist(1))
	require.Equal(t, 1, tree.Height())
}

func TestInsertRotations(t *testing.T) {
	testCases := []struct {
		name       string
		values     []int
		wantSize   int
		wantHeight int
		wantRoot   int
	}{
		{name: "single left rotation", values: []int{0, 1, 2}, wantSize: 3, wantHeight: 2, wantRoot: 1},
		{name: "no rotation", values: []int{0, -1, 2}, wantSize: 3, wantHeight: 2, wantRoot: 0},
		{name: "single right rotation", values: []int{2, 1, 0}, wantSize: 3, wantHeight: 2, wantRoot: 1},
		{name: "right-left double rotation", values: []int{1, 3, 2}, wantSize: 3, wantHeight: 2, wantRoot: 2},
		{name: "left-right double rotation", values: []int{0, -3, -1}, wantSize: 3, wantHeight: 2, wantRoot: -1},
		{name: "ascending run", values: []int{1, 2, 3, 4, 5}, wantSize: 5, wantHeight: 3, wantRoot: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := NewOf(tc.values[0], tc.values[1], tc.values[2:]...)

			require.Equal(t, tc.wantSize, tree.Size())
			require.Equal(t, tc.wantHeight, tree.Height())
			require.LessOrEqual(t, tree.Height(), heightBound(tree.Size()))
			require.Equal(t, tc.wantRoot, tree.root.value)
			checkShape(t, tree.root)
		})
	}
}

func TestRotationBalances(t *testing.T) {
	// p leans right by two, r by one: a plain left rotation levels both
	p := &node[int]{value: 1, balance: 2}
	p.right = &node[int]{value: 2, balance: 1}
	p.right.right = newNode(3)

	root := rebalance(p)
	require.Equal(t, 2, root.value)
	require.Equal(t, 0, root.balance)
	require.Equal(t, 0, root.left.balance)
	require.Equal(t, 0, root.right.balance)

	// right child leaning left takes the double rotation
	p = &node[int]{value: 1, balance: 2}
	p.right = &node[int]{value: 3, balance: -1}
	p.right.left = newNode(2)

	root = rebalance(p)
	require.Equal(t, 2, root.value)
	require.Equal(t, []int{1, 2, 3}, inOrder(root, nil))
	checkShape(t, root)
}

func TestExist(t *testing.T) {
	testCases := []struct {
		name    string
		values  []int
		present []int
		absent  []int
	}{
		{name: "ascending", values: []int{0, 1, 2, 3}, present: []int{3}, absent: []int{100}},
		{name: "duplicates", values: []int{5, 4, 3, 2, 1, 0, 1, 2, 3}, present: []int{5, 0, 1, 2, 3}, absent: []int{100, -1}},
		{name: "mixed", values: []int{5, 10, 2, 4}, present: []int{4, 5, 10, 2}, absent: []int{3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := NewOf(tc.values[0], tc.values[1], tc.values[2:]...)
			for _, v := range tc.present {
				require.True(t, tree.Exist(v), "value %d", v)
			}
			for _, v := range tc.absent {
				require.False(t, tree.Exist(v), "value %d", v)
			}
		})
	}
}

func TestDuplicatesAreCounted(t *testing.T) {
	tree := NewOf(1, 1, 1, 1, 1)

	require.Equal(t, 5, tree.Size())
	require.Equal(t, []int{1, 1, 1, 1, 1}, inOrder(tree.root, nil))
	checkShape(t, tree.root)
}

func TestDuplicatesCanEndUpOnTheRight(t *testing.T) {
	// rotations move equal values across, only the in-order sequence is
	// guaranteed to stay sorted
	tree := NewOf(5, 4, 3, 2, 1, 0, 1, 2, 3)

	require.Equal(t, []int{0, 1, 1, 2, 2, 3, 3, 4, 5}, inOrder(tree.root, nil))
	require.Equal(t, 2, tree.root.value)
	require.Equal(t, 2, tree.root.left.right.right.value)
	for _, v := range []int{0, 1, 2, 3, 4, 5} {
		require.True(t, tree.Exist(v))
	}
}

func TestInsertProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.IntRange(-50, 50)).Draw(t, "values")

		tree := New[int]()
		for _, v := range values {
			tree.Insert(v)
		}

		require.Equal(t, len(values), tree.Size())
		height := checkShape(t, tree.root)
		require.Equal(t, height, tree.Height())
		if len(values) > 0 {
			require.LessOrEqual(t, tree.Height(), heightBound(tree.Size()))
		}
		require.IsNonDecreasing(t, inOrder(tree.root, nil))

		for _, v := range values {
			require.True(t, tree.Exist(v))
		}
		absent := rapid.IntRange(51, 1000).Draw(t, "absent")
		require.False(t, tree.Exist(absent))
		require.False(t, tree.Exist(-absent))
	})
}

func TestSortedInsertProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 2000).Draw(t, "n")
		descending := rapid.Bool().Draw(t, "descending")

		tree := New[int]()
		for i := 0; i < n; i++ {
			if descending {
				tree.Insert(n - i)
			} else {
				tree.Insert(i)
			}
		}

		require.Equal(t, n, tree.Size())
		checkShape(t, tree.root)
		require.LessOrEqual(t, tree.Height(), heightBound(n))
	})
}

func TestStringTreeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringN(0, 6, -1), 2, 100).Draw(t, "words")

		tree := NewOf(words[0], words[1], words[2:]...)

		require.Equal(t, len(words), tree.Size())
		checkShape(t, tree.root)
		for _, w := range words {
			require.True(t, tree.Exist(w))
		}
		require.False(t, tree.Exist("this word is too long to be drawn"))
	})
}

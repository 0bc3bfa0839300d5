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

package segtree

import "cmp"

// Number is any integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds two values.
func Sum[T Number](a, b T) T { return a + b }

// Product multiplies two values.
func Product[T Number](a, b T) T { return a * b }

// Min keeps the smaller value.
func Min[T cmp.Ordered](a, b T) T { return min(a, b) }

// Max keeps the larger value.
func Max[T cmp.Ordered](a, b T) T { return max(a, b) }

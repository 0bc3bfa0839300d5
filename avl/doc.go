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

// Package avl provides a generic AVL balanced tree that is safe for
// concurrent use.
//
// The tree stores a multiset: inserting a value that is already present
// adds another node. Values that compare equal are routed to the left
// subtree on insertion.
//
// Every exported method takes the tree's single mutex for its whole
// duration. Readers and writers are not distinguished, so Exist blocks
// behind Insert and the other way round.
//
// The balance of each node is kept incrementally, as in the algorithm
// described by Niklaus Wirth in Algorithms + Data Structures = Programs:
// an insertion adjusts a node's balance by one only when the subtree it
// descended into grew taller.
package avl

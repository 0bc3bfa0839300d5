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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **adskit %s**

Concurrent, generic data structures for Go with a command line to play with them.

Built with Go %s

# 1. Containers
* **avl**: self-balancing binary search tree that keeps duplicates (a multiset)
* **ringbuffer**: fixed-capacity FIFO that overwrites the oldest value when full
* **segtree**: static range-aggregate tree over any associative function
* **trie**: prefix tree over runes with sorted completions

# 2. Commands
* **adskit avl 5 3 8 --exist 3** bulk-loads values through a worker pool and answers membership
* **adskit avl --file values.txt --dashboard** plots tree height against the AVL bound
* **adskit ring 1 2 3 4 --capacity 3 --read 2** writes from a producer and reads from a consumer
* **adskit segment 1 1 1 1 --from 0 --to 3 --op sum** answers one range query
* **adskit trie --file words.txt --prefix ca** lists completions
* **adskit trie --file words.txt --explore** opens the interactive prefix explorer
* **adskit script session.txt** runs a script of container commands
* **adskit config** shows the settings in ~/.adskit.yaml

# 3. Script lines
* avl insert|exist|size|height
* ring write|read|size
* trie insert|search|prefix
* segment build <sum|product|min|max> values... and segment query <from> <to>

Lines starting with # are comments. Words may be quoted like in a shell.

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

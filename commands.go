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
	"os"
	"strings"

	"github.com/cybrota/adskit/avl"
	"github.com/cybrota/adskit/ringbuffer"
	"github.com/cybrota/adskit/segtree"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAVLCmd(a *app) *cobra.Command {
	var (
		file      string
		exist     []int
		workers   int
		dashboard bool
	)

	cmd := &cobra.Command{
		Use:   "avl [values...]",
		Short: "Bulk-load integers into an AVL tree and report its shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}
			if file != "" {
				fromFile, err := readValuesFile(file)
				if err != nil {
					return err
				}
				values = append(values, fromFile...)
			}

			if !cmd.Flags().Changed("workers") {
				workers = a.config.AVL.Workers
			}
			opts := loadOptions{
				Workers:      workers,
				ShowProgress: a.config.AVL.ShowProgress && !dashboard,
				Log:          a.log,
			}

			tree := avl.New[int]()
			if dashboard {
				samples, err := sampleHeights(cmd.Context(), tree, values, dashboardBatches, opts)
				if err != nil {
					return err
				}
				return runDashboard(samples)
			}

			if _, err := bulkInsert(cmd.Context(), tree, values, opts); err != nil {
				return err
			}

			fmt.Printf("🌳 %sAVL tree%s\n", Green, Reset)
			fmt.Printf("  • size:   %s\n", humanize.Comma(int64(tree.Size())))
			fmt.Printf("  • height: %d (bound %.2f)\n", tree.Height(), heightBound(tree.Size()))
			for _, v := range exist {
				fmt.Printf("  • exist(%d): %t\n", v, tree.Exist(v))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read whitespace separated integers from a file (- for stdin)")
	cmd.Flags().IntSliceVar(&exist, "exist", nil, "values to look up after loading")
	cmd.Flags().IntVar(&workers, "workers", defaultConfig.AVL.Workers, "goroutines inserting concurrently; defaults to avl.workers")
	cmd.Flags().BoolVar(&dashboard, "dashboard", false, "plot tree height per batch in a terminal dashboard")
	return cmd
}

func newRingCmd(a *app) *cobra.Command {
	var capacity, reads int

	cmd := &cobra.Command{
		Use:   "ring [values...]",
		Short: "Write values into a ring buffer from a producer and read some back",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("capacity") {
				capacity = a.config.Ring.Capacity
			}
			buffer, err := ringbuffer.New[string](capacity)
			if err != nil {
				return err
			}

			done := make(chan struct{})
			go func() {
				defer close(done)
				for _, v := range args {
					buffer.Write(v)
				}
			}()
			<-done
			a.log.Debug().Int("written", len(args)).Int("capacity", capacity).Msg("producer finished")

			if reads < 0 {
				reads = buffer.Size()
			}
			var read []string
			for i := 0; i < reads; i++ {
				v, ok := buffer.Read()
				if !ok {
					break
				}
				read = append(read, v)
			}

			fmt.Printf("🔁 %sRing buffer%s\n", Green, Reset)
			fmt.Printf("  • read:     %s\n", strings.Join(read, " "))
			fmt.Printf("  • size:     %d/%d\n", buffer.Size(), buffer.Cap())
			fmt.Printf("  • full:     %t\n", buffer.IsFull())
			fmt.Printf("  • empty:    %t\n", buffer.IsEmpty())
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", defaultConfig.Ring.Capacity, "buffer capacity; defaults to ring.capacity")
	cmd.Flags().IntVar(&reads, "read", -1, "values to read back (all when negative)")
	return cmd
}

func newSegmentCmd(a *app) *cobra.Command {
	var from, to int
	var op string

	cmd := &cobra.Command{
		Use:   "segment values...",
		Short: "Answer a range query with a segment tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("op") {
				op = a.config.Segment.Aggregator
			}
			combine, err := combinerFor(op)
			if err != nil {
				return err
			}
			values, err := parseValues(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("to") {
				to = len(values) - 1
			}

			tree, err := segtree.New(values, combine)
			if err != nil {
				return err
			}
			result, err := tree.Query(from, to)
			if err != nil {
				return errors.Wrap(err, "query")
			}
			fmt.Printf("📐 %s[%d, %d] = %d\n", op, from, to, result)
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "first index of the range")
	cmd.Flags().IntVar(&to, "to", 0, "last index of the range (default last value)")
	cmd.Flags().StringVar(&op, "op", defaultConfig.Segment.Aggregator, "aggregator: "+aggregatorNames())
	return cmd
}

func newTrieCmd(a *app) *cobra.Command {
	var (
		file    string
		search  []string
		prefix  string
		explore bool
	)

	cmd := &cobra.Command{
		Use:   "trie [words...]",
		Short: "Index words in a trie and answer search and prefix queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			index := NewWordIndex(a.config.Trie)
			index.Add(args...)
			if file != "" {
				words, err := readWordsFile(file)
				if err != nil {
					return err
				}
				index.Add(words...)
			}
			a.log.Info().Msgf("indexed %s words", humanize.Comma(int64(index.Len())))

			if explore {
				return runExplorer(index)
			}

			fmt.Printf("🔤 %sTrie%s: %s\n", Green, Reset, index)
			for _, w := range search {
				fmt.Printf("  • search(%q): %t\n", w, index.Contains(w))
			}
			if cmd.Flags().Changed("prefix") {
				fmt.Printf("  • prefix(%q): %s\n", prefix, strings.Join(index.Complete(prefix), " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read one word per line from a file (- for stdin)")
	cmd.Flags().StringSliceVar(&search, "search", nil, "words to look up")
	cmd.Flags().StringVar(&prefix, "prefix", "", "list words starting with this prefix")
	cmd.Flags().BoolVar(&explore, "explore", false, "open the interactive prefix explorer")
	return cmd
}

func newScriptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "script [file]",
		Short: "Run a script of container commands (stdin when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			in, err := openInput(path)
			if err != nil {
				return err
			}
			defer in.Close()

			session, err := NewSession(a.config, a.log)
			if err != nil {
				return err
			}
			return session.Run(in, os.Stdout)
		},
	}
}

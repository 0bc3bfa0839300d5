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
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cybrota/adskit/avl"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

type loadOptions struct {
	Workers      int
	ShowProgress bool
	Progress     io.Writer // defaults to stderr
	Log          zerolog.Logger
}

type loadStats struct {
	Inserted int
	Elapsed  time.Duration
}

// bulkInsert inserts values into tree from a pool of opts.Workers
// goroutines. On cancellation it stops submitting, waits for the inserts
// already queued and returns the context error.
func bulkInsert(ctx context.Context, tree *avl.Tree[int], values []int, opts loadOptions) (loadStats, error) {
	workers := max(opts.Workers, 1)
	since := time.Now()

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		out := opts.Progress
		if out == nil {
			out = os.Stderr
		}
		bar = progressbar.NewOptions(len(values),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("🌳 Inserting values..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(out, "\n✅ Load completed!\n")
			}),
		)
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()
	group := pool.NewGroup()

	submitted := 0
	var cancelled error
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		value := v
		group.Submit(func() {
			tree.Insert(value)
			if bar != nil {
				bar.Add(1)
			}
		})
		submitted++
	}

	if err := group.Wait(); err != nil {
		return loadStats{}, errors.Wrap(err, "bulk insert")
	}
	if bar != nil && cancelled == nil {
		bar.Finish()
	}

	stats := loadStats{Inserted: submitted, Elapsed: time.Since(since)}
	rate := float64(submitted) / math.Max(stats.Elapsed.Seconds(), 1e-9)
	opts.Log.Info().Msgf("inserted %s values in %s with %d workers; %s inserts/s",
		humanize.Comma(int64(submitted)),
		stats.Elapsed,
		workers,
		humanize.Comma(int64(rate)))

	if cancelled != nil {
		return stats, errors.Wrapf(cancelled, "bulk insert stopped after %d of %d values", submitted, len(values))
	}
	return stats, nil
}

// heightBound is the worst-case AVL height for n values.
func heightBound(n int) float64 {
	if n == 0 {
		return 0
	}
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}

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

	"github.com/cybrota/adskit/avl"
	"github.com/dustin/go-humanize"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const dashboardBatches = 40

type heightSample struct {
	Size   int
	Height int
	Bound  float64
}

// sampleHeights loads values in batches and records the tree height after
// each one. The first sample is the empty tree.
func sampleHeights(ctx context.Context, tree *avl.Tree[int], values []int, batches int, opts loadOptions) ([]heightSample, error) {
	samples := []heightSample{{}}
	step := max(len(values)/max(batches, 1), 1)

	for start := 0; start < len(values); start += step {
		end := min(start+step, len(values))
		if _, err := bulkInsert(ctx, tree, values[start:end], opts); err != nil {
			return samples, err
		}
		size := tree.Size()
		samples = append(samples, heightSample{
			Size:   size,
			Height: tree.Height(),
			Bound:  heightBound(size),
		})
	}
	return samples, nil
}

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// runDashboard plots tree height against the AVL bound until q, esc or
// ctrl+c is pressed.
func runDashboard(samples []heightSample) error {
	if err := ui.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize termui")
	}
	DisableMouseInput()
	defer ui.Close()

	InitializeColors()
	scheme := GetDashboardScheme()

	heights := make([]float64, len(samples))
	bounds := make([]float64, len(samples))
	for i, s := range samples {
		heights[i] = float64(s.Height)
		bounds[i] = s.Bound
	}
	// termui plots need two points per line
	if len(samples) == 1 {
		heights = append(heights, heights[0])
		bounds = append(bounds, bounds[0])
	}

	plot := widgets.NewPlot()
	plot.Title = " Height per batch "
	plot.Data = [][]float64{heights, bounds}
	plot.LineColors = []ui.Color{scheme.Height, scheme.Bound}
	plot.AxesColor = scheme.Axes
	plot.BorderStyle = ui.NewStyle(scheme.Border)
	plot.Marker = widgets.MarkerBraille

	last := samples[len(samples)-1]
	stats := widgets.NewParagraph()
	stats.Title = " Tree "
	stats.Text = fmt.Sprintf("[size](fg:green)   %s\n[height](fg:cyan) %d\n[bound](fg:red)  %.2f\n\n[q](fg:green) or [<esc>](fg:green) to quit",
		humanize.Comma(int64(last.Size)), last.Height, last.Bound)
	stats.TextStyle = ui.NewStyle(scheme.Text)
	stats.BorderStyle = ui.NewStyle(scheme.Border)

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(1.0,
			ui.NewCol(0.75, plot),
			ui.NewCol(0.25, stats),
		),
	)
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(grid)
		}
	}
	return nil
}

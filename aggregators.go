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
	"sort"
	"strings"

	"github.com/cybrota/adskit/segtree"
	"github.com/pkg/errors"
)

var ErrUnknownAggregator = errors.New("unknown aggregator")

var aggregators = map[string]func(a, b int) int{
	"sum":     segtree.Sum[int],
	"product": segtree.Product[int],
	"min":     segtree.Min[int],
	"max":     segtree.Max[int],
}

// combinerFor maps an aggregator name to its segment tree combiner.
func combinerFor(name string) (func(a, b int) int, error) {
	combine, ok := aggregators[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAggregator, "%q (want one of %s)", name, aggregatorNames())
	}
	return combine, nil
}

func aggregatorNames() string {
	names := make([]string, 0, len(aggregators))
	for name := range aggregators {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

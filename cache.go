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
	"time"

	"github.com/patrickmn/go-cache"
)

// Clean up expired entries every 5 minutes
const completionCacheCleanup = 5 * time.Minute

// NewCompletionCache creates a cache for prefix completions that expire
// after the given lifetime.
func NewCompletionCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, completionCacheCleanup)
}

func CacheCompletions(c *cache.Cache, prefix string, words []string) {
	c.SetDefault(prefix, words)
}

// GetCompletions returns the cached completions of prefix. The boolean
// separates a cached empty result from a miss.
func GetCompletions(c *cache.Cache, prefix string) ([]string, bool) {
	val, ok := c.Get(prefix)
	if !ok {
		return nil, false
	}
	return val.([]string), true
}

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
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFileName = ".adskit.yaml"

type AVLConfig struct {
	Workers      int  `yaml:"workers"`
	ShowProgress bool `yaml:"show_progress"`
}

type RingConfig struct {
	Capacity int `yaml:"capacity"`
}

type SegmentConfig struct {
	Aggregator string `yaml:"aggregator"`
}

type TrieConfig struct {
	BloomSize    uint `yaml:"bloom_size"`
	BloomHashes  uint `yaml:"bloom_hashes"`
	CacheMinutes int  `yaml:"cache_minutes"`
}

type Config struct {
	LogLevel string        `yaml:"log_level"`
	AVL      AVLConfig     `yaml:"avl"`
	Ring     RingConfig    `yaml:"ring"`
	Segment  SegmentConfig `yaml:"segment"`
	Trie     TrieConfig    `yaml:"trie"`
}

var defaultConfig = Config{
	LogLevel: "info",
	AVL: AVLConfig{
		Workers:      8,
		ShowProgress: true,
	},
	Ring: RingConfig{
		Capacity: 16,
	},
	Segment: SegmentConfig{
		Aggregator: "sum",
	},
	Trie: TrieConfig{
		BloomSize:    1 << 16,
		BloomHashes:  4,
		CacheMinutes: 30,
	},
}

// LoadConfig reads ~/.adskit.yaml. Any problem finding or reading the file
// yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return config, nil
}

func loadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	return parseConfig(data)
}

// parseConfig overlays data on the defaults, so keys missing from the file
// keep their default values.
func parseConfig(data []byte) (*Config, error) {
	config := defaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if config.AVL.Workers < 1 {
		config.AVL.Workers = defaultConfig.AVL.Workers
	}
	if config.Ring.Capacity < 1 {
		config.Ring.Capacity = defaultConfig.Ring.Capacity
	}
	if config.Trie.BloomSize == 0 {
		config.Trie.BloomSize = defaultConfig.Trie.BloomSize
	}
	if config.Trie.BloomHashes == 0 {
		config.Trie.BloomHashes = defaultConfig.Trie.BloomHashes
	}
	if config.Trie.CacheMinutes < 1 {
		config.Trie.CacheMinutes = defaultConfig.Trie.CacheMinutes
	}
	if _, err := combinerFor(config.Segment.Aggregator); err != nil {
		return nil, err
	}
	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return errors.Wrap(err, "failed to get config path")
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, _ := LoadConfig()

	fmt.Printf("🔧 adskit Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")
	fmt.Printf("  • %slog_level%s: %s\n\n", Green, Reset, config.LogLevel)

	fmt.Printf("🌳 %sAVL tree:%s\n", Green, Reset)
	fmt.Printf("  • %sworkers%s: %d\n", Green, Reset, config.AVL.Workers)
	fmt.Printf("    Goroutines inserting concurrently during bulk loads\n")
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.AVL.ShowProgress)

	fmt.Printf("🔁 %sRing buffer:%s\n", Green, Reset)
	fmt.Printf("  • %scapacity%s: %d\n\n", Green, Reset, config.Ring.Capacity)

	fmt.Printf("📐 %sSegment tree:%s\n", Green, Reset)
	fmt.Printf("  • %saggregator%s: %s (one of %s)\n\n", Green, Reset, config.Segment.Aggregator, aggregatorNames())

	fmt.Printf("🔤 %sTrie word index:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_size%s: %d bits\n", Green, Reset, config.Trie.BloomSize)
	fmt.Printf("  • %sbloom_hashes%s: %d\n", Green, Reset, config.Trie.BloomHashes)
	fmt.Printf("  • %scache_minutes%s: %d\n", Green, Reset, config.Trie.CacheMinutes)
	fmt.Printf("    How long prefix completions stay cached\n\n")

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
	return nil
}

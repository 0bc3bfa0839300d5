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
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every command needs once flags are parsed.
type app struct {
	config *Config
	log    zerolog.Logger
}

func main() {
	InitializeColors()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// cobra is silenced so every error is printed once, here
		fmt.Fprintf(os.Stderr, "%s❌ %v%s\n", Error, err, Reset)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	asciiLogo := `
 █████╗ ██████╗ ███████╗██╗  ██╗██╗████████╗
██╔══██╗██╔══██╗██╔════╝██║ ██╔╝██║╚══██╔══╝
███████║██║  ██║███████╗█████╔╝ ██║   ██║
██╔══██║██║  ██║╚════██║██╔═██╗ ██║   ██║
██║  ██║██████╔╝███████║██║  ██╗██║   ██║
╚═╝  ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝   ╚═╝
Concurrent generic data structures: AVL tree, ring buffer, segment tree and trie [Version: %s%s%s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	a := &app{log: zerolog.Nop()}
	var logLevel string

	var rootCmd = &cobra.Command{
		Use:           "adskit",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			if logLevel == "" {
				logLevel = config.LogLevel
			}
			log, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			a.config, a.log = config, log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to log_level in ~/.adskit.yaml")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print adskit usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the adskit CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Show adskit settings, creating ~/.adskit.yaml if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print adskit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(
		newAVLCmd(a),
		newRingCmd(a),
		newSegmentCmd(a),
		newTrieCmd(a),
		newScriptCmd(a),
		cmdUsage,
		cmdConfig,
		cmdVersion,
	)

	return rootCmd
}

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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI escapes used by the plain-text commands. Filled in by InitializeColors.
var (
	Green, Info, Warning, Error, Reset string
)

var detectedMode TerminalMode

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, key := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(key)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// InitializeColors detects the terminal mode and sets the ANSI escapes.
// NO_COLOR disables them.
func InitializeColors() {
	detectedMode = detectTerminalMode()
	if os.Getenv("NO_COLOR") != "" {
		Green, Info, Warning, Error, Reset = "", "", "", "", ""
		return
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

// DashboardScheme holds the termui colors of the height dashboard.
type DashboardScheme struct {
	Height ui.Color
	Bound  ui.Color
	Axes   ui.Color
	Border ui.Color
	Text   ui.Color
}

func GetDashboardScheme() DashboardScheme {
	if detectedMode == TerminalModeLight {
		return DashboardScheme{
			Height: ui.Color(4), // Dark Blue
			Bound:  ui.ColorRed,
			Axes:   ui.ColorBlack,
			Border: ui.Color(8),
			Text:   ui.ColorBlack,
		}
	}
	return DashboardScheme{
		Height: ui.Color(14), // Bright Cyan
		Bound:  ui.Color(9),  // Bright Red
		Axes:   ui.ColorWhite,
		Border: ui.Color(240),
		Text:   ui.ColorWhite,
	}
}

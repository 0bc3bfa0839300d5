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
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Completions shown at once in the explorer list
const maxCompletions = 500

// Model is the prefix explorer state
type Model struct {
	ready bool

	textInput       textinput.Model
	completionsList list.Model
	detailViewport  viewport.Model

	index *WordIndex

	// State
	focusIndex  int // 0: input, 1: completions
	completions []string
	lastQuery   string
	copied      string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

type wordItem struct {
	word string
}

func (i wordItem) FilterValue() string { return i.word }
func (i wordItem) Title() string       { return i.word }
func (i wordItem) Description() string { return "" }

// InitialModel creates the explorer over index, listing every word.
func InitialModel(index *WordIndex) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a prefix..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	completionsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	completionsList.SetShowTitle(false)
	completionsList.SetShowHelp(false)
	completionsList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)
	detailViewport.SetContent("Select a word to see its details...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	model := Model{
		textInput:       ti,
		completionsList: completionsList,
		detailViewport:  detailViewport,
		index:           index,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		completions:     []string{},
	}
	model.updateCompletions("")
	return model
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		if m.focusIndex == 0 && len(m.completions) > 0 {
			m.focusIndex = 1
			m.textInput.Blur()
		} else {
			m.focusIndex = 0
			m.textInput.Focus()
		}
		return m, nil
	case "enter":
		if word, ok := m.selectedWord(); ok {
			m.copied = word
			return m, tea.Sequence(
				func() tea.Msg {
					copyToClipboard(word)
					return tea.Quit()
				},
			)
		}
		return m, nil
	case "up", "k":
		if m.focusIndex == 1 {
			m.completionsList.CursorUp()
			m.refreshDetail()
			return m, nil
		}
	case "down", "j":
		if m.focusIndex == 1 {
			m.completionsList.CursorDown()
			m.refreshDetail()
			return m, nil
		}
	case "pgup":
		m.detailViewport.LineUp(m.detailViewport.Height)
		return m, nil
	case "pgdown":
		m.detailViewport.LineDown(m.detailViewport.Height)
		return m, nil
	}

	if m.focusIndex == 0 {
		m.textInput, cmd = m.textInput.Update(msg)
		if query := m.textInput.Value(); query != m.lastQuery {
			m.updateCompletions(query)
			m.lastQuery = query
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) selectedWord() (string, bool) {
	if len(m.completions) == 0 {
		return "", false
	}
	if m.focusIndex == 0 {
		return m.completions[0], true
	}
	i := m.completionsList.Index()
	if i < 0 || i >= len(m.completions) {
		return "", false
	}
	return m.completions[i], true
}

func (m *Model) updateCompletions(prefix string) {
	matches := m.index.Complete(prefix)
	if len(matches) > maxCompletions {
		matches = matches[:maxCompletions]
	}

	items := make([]list.Item, len(matches))
	for i, word := range matches {
		items[i] = wordItem{word: word}
	}
	m.completions = matches
	m.completionsList.SetItems(items)
	m.completionsList.Select(0)
	m.refreshDetail()
}

func (m *Model) refreshDetail() {
	word, ok := m.selectedWord()
	if !ok {
		m.detailViewport.SetContent(fmt.Sprintf("No words start with %q.", m.textInput.Value()))
		return
	}

	detail := wordDetail(m.index, word)
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(detail); err == nil {
			m.detailViewport.SetContent(rendered)
			return
		}
	}
	m.detailViewport.SetContent(detail)
}

// wordDetail describes word as markdown.
func wordDetail(index *WordIndex, word string) string {
	var longer []string
	for _, w := range index.Complete(word) {
		if w != word {
			longer = append(longer, w)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", word)
	fmt.Fprintf(&sb, "* **Length:** %d runes\n", utf8.RuneCountInString(word))
	fmt.Fprintf(&sb, "* **Words extending it:** %d\n", len(longer))
	if len(longer) > 0 {
		sb.WriteString("\n## Extensions\n\n")
		for i, w := range longer {
			if i == 10 {
				fmt.Fprintf(&sb, "* ... and %d more\n", len(longer)-i)
				break
			}
			fmt.Fprintf(&sb, "* `%s`\n", w)
		}
	}
	return sb.String()
}

func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4
	m.completionsList.SetSize(leftWidth-2, listHeight-2)
	m.detailViewport.Width = rightWidth - 2
	m.detailViewport.Height = inputHeight + listHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	inputStyle, listStyle := m.styles.BorderFocused, m.styles.BorderBlurred
	inputTitle, listTitle := " 🔍 Prefix (Active)", fmt.Sprintf(" 📋 %d Completions ", len(m.completions))
	if m.focusIndex == 1 {
		inputStyle, listStyle = listStyle, inputStyle
		inputTitle, listTitle = " 🔍 Prefix", fmt.Sprintf(" 📋 %d Completions (Active) ", len(m.completions))
	}

	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(inputTitle),
			m.textInput.View(),
		))

	listBox := listStyle.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(listTitle),
			m.completionsList.View(),
		))

	detailBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(listHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(" 📖 Word Details "),
			m.detailViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		detailBox,
	)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "pgup/pgdown", "esc"}
	descs := []string{"copy word", "switch focus", "scroll details", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

// runExplorer starts the interactive prefix explorer
func runExplorer(index *WordIndex) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(index),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version is one row in the version picker.
type Version struct {
	Version     string
	Status      string
	Checksum    string
	Description string
	Updated     time.Time
}

var (
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f6be00"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// SelectVersions lets the user pick two of items. It returns nil when the
// picker is abandoned.
func SelectVersions(title string, items []Version) ([]Version, error) {
	p := tea.NewProgram(model{title: title, items: items})
	m, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("version picker: %w", err)
	}
	return m.(model).selected, nil
}

type model struct {
	title    string
	items    []Version
	cursor   int
	selected []Version
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		if ok {
			return m, tea.Quit
		}
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.selected = nil
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		cur := m.items[m.cursor]
		if i := index(m.selected, cur); i >= 0 {
			m.selected = append(m.selected[:i:i], m.selected[i+1:]...)
		} else if len(m.selected) < 2 {
			m.selected = append(m.selected, cur)
		} else {
			// A third pick drops the oldest.
			m.selected = []Version{m.selected[1], cur}
		}
	case "enter":
		if len(m.selected) == 2 {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.title)
	for i, v := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = cursorStyle.Render(">")
		}
		mark := " "
		line := fmt.Sprintf("%-8s %-10s %s %s", v.Version, v.Status, v.Updated.Format(time.RFC3339), v.Description)
		if index(m.selected, v) >= 0 {
			mark = "x"
			line = selectedStyle.Render(line)
		}
		fmt.Fprintf(&b, "%s [%s] %s\n", cursor, mark, line)
	}
	b.WriteString(helpStyle.Render("\nSPACE: toggle, ENTER: compare, Q/ESC: quit") + "\n")
	return b.String()
}

func index(versions []Version, v Version) int {
	for i, s := range versions {
		if s.Version == v.Version {
			return i
		}
	}
	return -1
}

package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/phasemap/phasemap/pkg/roadmap"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// PhaseListModel is the bubbletea model for browsing the phases of a
// plan: a scrollable table with a detail pane for the phase under the
// cursor.
type PhaseListModel struct {
	Plan   roadmap.Plan
	Phases []roadmap.Phase
	Cursor int
	Height int
	Offset int
}

// NewPhaseListModel creates a phase browser over all phases of the plan.
func NewPhaseListModel(p roadmap.Plan) PhaseListModel {
	return PhaseListModel{
		Plan:   p,
		Phases: p.Phases(),
		Height: 15,
	}
}

func (m PhaseListModel) Init() tea.Cmd {
	return nil
}

func (m PhaseListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Phases)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PhaseListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Plan.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Phases) {
		end = len(m.Phases)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		ph := m.Phases[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		methods := 0
		for _, it := range ph.Items {
			methods += len(it.Methods)
		}
		rows = append(rows, []string{
			cursor,
			ph.Title,
			string(ph.Color),
			fmt.Sprintf("%d", len(ph.Items)),
			fmt.Sprintf("%d", methods),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Phase", "Priority", "Items", "Methods").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return StyleValue
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	// Detail pane for the phase under the cursor.
	ph := m.Phases[m.Cursor]
	b.WriteString(StyleHighlight.Render(ph.Title))
	if ph.Subtitle != "" {
		b.WriteString(" " + listDimStyle.Render(ph.Subtitle))
	}
	b.WriteString("\n")
	for _, it := range ph.Items {
		b.WriteString("  " + StyleValue.Render(it.Title) + "\n")
		for _, method := range it.Methods {
			b.WriteString("    " + listDimStyle.Render("- "+method) + "\n")
		}
	}

	return b.String()
}

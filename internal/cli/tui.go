package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
	"github.com/matzehuels/eulerpath/pkg/pipeline"
)

var (
	stepDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
	stepHopStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	stepStepStyle = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// StepModel - Interactive case-by-case viewer
// =============================================================================

// StepModel is the bubbletea model that pages through solved cases.
// Enter on the last case quits, mirroring a "press enter to continue" loop.
type StepModel struct {
	Cases  []pipeline.CaseResult
	Cursor int
	Done   bool
}

func newStepModel(cases []pipeline.CaseResult) StepModel {
	return StepModel{Cases: cases}
}

func (m StepModel) Init() tea.Cmd {
	return nil
}

func (m StepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter", " ", "right", "l", "n":
		if m.Cursor >= len(m.Cases)-1 {
			m.Done = true
			return m, tea.Quit
		}
		m.Cursor++
	case "left", "h", "p":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "home", "g":
		m.Cursor = 0
	case "end", "G":
		m.Cursor = len(m.Cases) - 1
	}
	return m, nil
}

func (m StepModel) View() string {
	if len(m.Cases) == 0 {
		return ""
	}
	cr := m.Cases[m.Cursor]

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Case %d", cr.Index())))
	b.WriteString(stepDimStyle.Render(fmt.Sprintf("  %d levels · %d teleporters", cr.Case.NumLevels, len(cr.Case.Teleporters))))
	b.WriteString("\n\n")

	b.WriteString("Solution path: ")
	b.WriteString(renderPath(cr))
	b.WriteString("\n")

	if hops := hopsTable(cr); hops != nil {
		b.WriteString("\n")
		b.WriteString(hops.Render())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(stepDimStyle.Render(fmt.Sprintf("[%d/%d]  ⏎ continue  ← back  q quit", m.Cursor+1, len(m.Cases))))
	b.WriteString("\n")
	return b.String()
}

// hopsTable lists each teleporter on the path in the order it is taken.
func hopsTable(cr pipeline.CaseResult) *table.Table {
	if cr.Err != nil || !cr.Path.Found || len(cr.Path.Connections) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(cr.Path.Connections))
	for i, hop := range cr.Path.Hops() {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			fmt.Sprintf("%d %s %d", hop.From, iconArrow, hop.To),
			fmt.Sprintf("#%d", cr.Path.Connections[i]),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Step", "Teleporter", "Input").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			case col == 0:
				return stepStepStyle
			case col == 2:
				return stepDimStyle
			}
			return stepHopStyle
		})
}

// caseSummary is the plain one-line form of a result. It titles
// rendered graphs and underlies caseLine.
func caseSummary(cr pipeline.CaseResult) string {
	if cr.Err != nil {
		return fmt.Sprintf("Case %d: error: %s", cr.Index(), apperrors.UserMessage(cr.Err))
	}
	return fmt.Sprintf("Case %d: %s", cr.Index(), cr.Path)
}

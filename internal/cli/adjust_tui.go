package cli

import (
	"slices"
	"strings"

	"github.com/Arshadjaved786/umrah-calculator/internal/itinerary"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
)

const adjustHelp = "up/down select | +/- move a night | space lock | s save | q quit"

type adjustModel struct {
	stays  []itinerary.ManualStay
	cursor int
	status string
	dirty  bool
	saved  bool
}

func newAdjustModel(stays []itinerary.ManualStay) adjustModel {
	return adjustModel{stays: slices.Clone(stays)}
}

func (m adjustModel) Init() tea.Cmd {
	return nil
}

func (m adjustModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "s", "enter":
		m.saved = m.dirty
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.status = ""
	case "down", "j":
		if m.cursor < len(m.stays)-1 {
			m.cursor++
		}
		m.status = ""
	case "+", "=", "right", "l":
		m = m.move(1)
	case "-", "_", "left", "h":
		m = m.move(-1)
	case " ", "x":
		m.stays = slices.Clone(m.stays)
		m.stays[m.cursor].Locked = !m.stays[m.cursor].Locked
		m.dirty = true
		m.status = ""
		if len(m.stays) != 3 {
			m.status = "locks only take effect on plans with three stays"
		}
	}
	return m, nil
}

func (m adjustModel) move(delta int) adjustModel {
	res := itinerary.Adjust(m.stays, m.cursor, delta)
	m.status = adjustMessage(res, m.cursor)
	if !res.BalanceWarning {
		m.stays = res.Stays
		m.dirty = true
	}
	return m
}

func (m adjustModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Adjust stays"))
	b.WriteString("\n\n")
	b.WriteString(renderManualStays(m.stays, m.cursor))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(Warning(m.status))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(adjustHelp))
	b.WriteString("\n")
	return b.String()
}

// runAdjustTUI lets the user adjust stays interactively. It reports whether
// the changes should be saved.
func runAdjustTUI(cmd *cobra.Command, stays []itinerary.ManualStay) ([]itinerary.ManualStay, bool, error) {
	p := tea.NewProgram(newAdjustModel(stays), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	final, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	m := final.(adjustModel)
	return m.stays, m.saved, nil
}

package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mateusrangel/ciclo/internal/cli/formatter"
	"github.com/mateusrangel/ciclo/internal/contract"
)

// scheduleBrowser is a minimal bubbletea model: the rendered schedule in
// a scrollable viewport with a dim footer.
type scheduleBrowser struct {
	vp      viewport.Model
	content string
	ready   bool
}

func runScheduleBrowser(resp *contract.BuildScheduleResponse) error {
	m := scheduleBrowser{content: formatter.FormatSchedule(resp)}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (m scheduleBrowser) Init() tea.Cmd {
	return nil
}

func (m scheduleBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		footerHeight := 1
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-footerHeight)
			m.vp.MouseWheelEnabled = true
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - footerHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.vp.GotoTop()
			return m, nil
		case "G", "end":
			m.vp.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m scheduleBrowser) View() string {
	if !m.ready {
		return "loading…"
	}
	var b strings.Builder
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("↑/↓ scroll · g/G top/bottom · q quit"))
	return b.String()
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/danielhaas/stempel/internal/cli/formatter"
	"github.com/danielhaas/stempel/internal/domain"
	"github.com/danielhaas/stempel/internal/timer"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live timer view with pause/resume/stop controls",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch requires an interactive terminal")
			}
			p := tea.NewProgram(newWatchModel(app.Timer))
			_, err := p.Run()
			return err
		},
	}
}

type watchKeyMap struct {
	Toggle key.Binding
	Stop   key.Binding
	Start  key.Binding
	Quit   key.Binding
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Toggle, k.Stop, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var watchKeys = watchKeyMap{
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	Stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type watchTickMsg time.Time

type watchModel struct {
	timer    *timer.Timer
	state    domain.TimerState
	keys     watchKeyMap
	help     help.Model
	notice   string
	quitting bool
}

func newWatchModel(t *timer.Timer) watchModel {
	return watchModel{
		timer: t,
		state: t.State(),
		keys:  watchKeys,
		help:  help.New(),
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return watchTick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case watchTickMsg:
		m.state = m.timer.State()
		return m, watchTick()

	case tea.KeyMsg:
		ctx := context.Background()
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Start):
			if _, err := m.timer.Start(ctx); err != nil {
				m.notice = "timer already running"
			} else {
				m.notice = ""
			}

		case key.Matches(msg, m.keys.Toggle):
			if m.state.IsPaused {
				if _, err := m.timer.Resume(ctx); err != nil {
					m.notice = "nothing to resume"
				}
			} else {
				if _, err := m.timer.Pause(ctx); err != nil {
					m.notice = "nothing to pause"
				}
			}

		case key.Matches(msg, m.keys.Stop):
			if s, err := m.timer.End(ctx); err == nil {
				m.notice = fmt.Sprintf("recorded %s", formatter.HumanDuration(s.TotalSeconds))
			} else {
				m.notice = "no active session"
			}
		}
		m.state = m.timer.State()
		return m, nil
	}

	return m, nil
}

var watchClockStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(formatter.ColorFg).
	Padding(1, 4).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(formatter.ColorDim)

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	clock := watchClockStyle.Render(formatter.ClockDuration(m.state.ElapsedSeconds))
	status := formatter.FormatTimerState(m.state)

	view := clock + "\n" + status + "\n"
	if m.notice != "" {
		view += formatter.Dim(m.notice) + "\n"
	}
	view += "\n" + m.help.View(m.keys)
	return view
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for a panel's text.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// TeaModel is the principal [tea.Model] for the command-line user
// interface.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	uiHandler *UIHandler

	srcPath string
	dstPath string

	transferProgress progress.Model
	logsViewport     viewport.Model
	logs             []string

	copied int64
	total  int64

	done bool
	err  error

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *UIHandler, srcPath, dstPath string, cancel context.CancelFunc) TeaModel {
	transferProgress := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(80),
	)

	logsViewport := viewport.New(80, 12)

	return TeaModel{
		uiHandler:        uiHandler,
		srcPath:          srcPath,
		dstPath:          dstPath,
		transferProgress: transferProgress,
		logsViewport:     logsViewport,
		logs:             make([]string, 0, 100),
		cancel:           cancel,
		ready:            false,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update processes any [tea.Msg] within a [tea.Program].
//
//nolint:mnd
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.transferProgress.Width = max(10, m.width-8)
		m.logsViewport.Width = max(10, m.width-4)
		m.logsViewport.Height = max(3, m.height-12)
		m.ready = true
		m.uiHandler.Ready.Store(true)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()

			return m, tea.Quit
		}

		return m, nil

	case progressMsg:
		m.copied = msg.copied
		m.total = msg.total

		return m, nil

	case logMsg:
		m.logs = append(m.logs, strings.TrimRight(string(msg), "\n"))
		if len(m.logs) > 100 {
			m.logs = m.logs[len(m.logs)-100:]
		}
		m.logsViewport.SetContent(strings.Join(m.logs, "\n"))
		m.logsViewport.GotoBottom()

		return m, nil

	case doneMsg:
		m.done = true
		m.err = msg.err

		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.logsViewport, cmd = m.logsViewport.Update(msg)

	return m, cmd
}

// View renders the model within a [tea.Program].
func (m TeaModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.copied) / float64(m.total)
	}

	header := titleStyle.Render(" fcp ")
	transfer := infoStyle.Render(fmt.Sprintf("%s -> %s", m.srcPath, m.dstPath))
	counts := infoStyle.Render(fmt.Sprintf("%s of %s (%.1f%%)",
		humanize.Bytes(uint64(m.copied)),
		humanize.Bytes(uint64(m.total)),
		percent*100, //nolint:mnd
	))

	panel := borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		transfer,
		m.transferProgress.ViewAs(percent),
		counts,
	))

	logs := borderStyle.Render(m.logsViewport.View())
	help := helpStyle.Render("q: abort")

	return lipgloss.JoinVertical(lipgloss.Left, header, panel, logs, help)
}

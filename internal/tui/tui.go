// Package tui renders the interactive widgets in the terminal with Bubble Tea.
// Every engine mutation happens on the Bubble Tea event loop; deferred work
// such as the chatbot's reply is posted back onto it as a message.
package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skillcycle/internal/config"
	"skillcycle/internal/content"
	"skillcycle/internal/domain"
	"skillcycle/internal/engine"
)

// Deps carries what every widget model needs.
type Deps struct {
	Catalog *content.Catalog
	Config  *config.Config
	Sched   engine.Scheduler
}

// New returns the model for kind.
func New(kind domain.WidgetKind, deps Deps) (tea.Model, error) {
	switch kind {
	case domain.WidgetMathGame:
		return NewMathModel(deps), nil
	case domain.WidgetQuiz:
		return NewQuizModel(deps), nil
	case domain.WidgetChat:
		return NewChatModel(deps), nil
	case domain.WidgetTextbooks:
		return NewTextbookModel(deps), nil
	case domain.WidgetVideos:
		return NewVideoModel(deps), nil
	}
	return nil, domain.NewUnknownWidgetError(string(kind))
}

// deferredMsg runs a scheduled callback on the event loop.
type deferredMsg struct {
	run func()
}

// Scheduler fires engine callbacks by sending them to the running program.
type Scheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// NewScheduler returns an unbound scheduler; Bind must be called before the
// program starts.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Bind routes fired callbacks to send, typically (*tea.Program).Send.
func (s *Scheduler) Bind(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, func() {
		s.mu.Lock()
		send := s.send
		s.mu.Unlock()
		if send != nil {
			send(deferredMsg{run: fn})
		}
	})
	return t.Stop
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E7D32"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4A4A4A")).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// statusText turns a rejected action into a one-line hint.
func statusText(err error) string {
	if err == nil {
		return ""
	}
	switch domain.CodeOf(err) {
	case domain.CodeInvalidSelection:
		return "That choice isn't available right now."
	case domain.CodeInvalidAction:
		return "Nothing to do there yet."
	case domain.CodeInputLocked:
		return "Hang on, SkillAI is still typing."
	case domain.CodeItemNotFound:
		return "That item isn't in the library."
	}
	return err.Error()
}

func render(title, body, status, help string) string {
	out := titleStyle.Render(title) + "\n\n" + panelStyle.Render(body) + "\n"
	if status != "" {
		out += wrongStyle.Render(status) + "\n"
	}
	return out + footerStyle.Render(help)
}

func optionKey(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1'), true
	}
	return 0, false
}

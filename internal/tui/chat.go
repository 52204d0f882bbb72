package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skillcycle/internal/domain"
	"skillcycle/internal/engine"
)

// ChatModel is the SkillAI chat window.
type ChatModel struct {
	chat  *engine.Chat
	input textinput.Model
	err   error
}

func NewChatModel(deps Deps) *ChatModel {
	script := deps.Catalog.Chat
	matcher := engine.NewMatcher(script.Rules, script.Fallback)
	return newChatModel(engine.NewChat(matcher, script.Greeting, deps.Config.Chat.Timing(), deps.Sched, nil))
}

func newChatModel(chat *engine.Chat) *ChatModel {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Ask me anything..."
	input.CharLimit = 500
	input.Focus()
	return &ChatModel{chat: chat, input: input}
}

// Init implements tea.Model.
func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case deferredMsg:
		msg.run()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.chat.Close()
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.chat.Reset()
			m.err = nil
			return m, nil
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.err = m.chat.Submit(text)
			if m.err == nil {
				m.input.Reset()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *ChatModel) View() string {
	s := m.chat.Snapshot()
	var b strings.Builder
	for _, msg := range s.Messages {
		if msg.Role == domain.RoleUser {
			b.WriteString(accentStyle.Render("You: ") + msg.Content + "\n\n")
		} else {
			b.WriteString(correctStyle.Render("SkillAI: ") + msg.Content + "\n\n")
		}
	}
	if s.Pending {
		b.WriteString(subtleStyle.Render("SkillAI is thinking...") + "\n\n")
	}
	b.WriteString(m.input.View())
	return render("SkillAI Tutor", b.String(), statusText(m.err), "enter send • ctrl+r clear • esc quit")
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"skillcycle/internal/engine"
)

// QuizModel walks the quiz bank.
type QuizModel struct {
	quiz *engine.Quiz
	err  error
}

func NewQuizModel(deps Deps) *QuizModel {
	return newQuizModel(engine.NewQuiz(deps.Catalog.Quiz, deps.Config.Quiz.Quiz()))
}

func newQuizModel(quiz *engine.Quiz) *QuizModel {
	return &QuizModel{quiz: quiz}
}

// Init implements tea.Model.
func (m *QuizModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "enter", " ":
		switch m.quiz.State() {
		case engine.StateNotStarted:
			m.err = m.quiz.Start()
		case engine.StateCompleted:
			m.quiz.Reset()
			m.err = m.quiz.Start()
		default:
			m.err = m.quiz.Advance()
		}
	case "r":
		m.quiz.Reset()
		m.err = nil
	default:
		if idx, ok := optionKey(key); ok {
			m.err = m.quiz.Select(idx)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *QuizModel) View() string {
	s := m.quiz.Snapshot()
	var b strings.Builder
	help := "enter start • q quit"

	switch s.State {
	case engine.StateNotStarted:
		fmt.Fprintf(&b, "%d questions across the curriculum. Ready?", s.Total)
	case engine.StateCompleted:
		fmt.Fprintf(&b, "You got %d/%d correct · %d points\n\n", s.Correct, s.Total, s.Score)
		if s.Verdict != nil {
			b.WriteString(accentStyle.Render(s.Verdict.Message))
		}
		help = "enter try again • q quit"
	default:
		fmt.Fprintf(&b, "Question %d of %d", s.Index+1, s.Total)
		if s.Question.Subject != "" {
			b.WriteString(subtleStyle.Render("  · " + s.Question.Subject))
		}
		fmt.Fprintf(&b, "\nScore: %d pts\n\n%s\n\n", s.Score, s.Question.Prompt)
		for i, opt := range s.Question.Options {
			line := fmt.Sprintf("%d) %s", i+1, opt)
			if s.Selected != nil {
				switch {
				case i == *s.CorrectOption:
					line = correctStyle.Render(line + "  ✓")
				case i == *s.Selected:
					line = wrongStyle.Render(line + "  ✗")
				}
			}
			b.WriteString(line + "\n")
		}
		help = "1-4 answer • q quit"
		if s.Selected != nil {
			help = "enter next question • q quit"
			if s.LastQuestion {
				help = "enter see results • q quit"
			}
		}
	}
	return render("Quick Quiz", strings.TrimRight(b.String(), "\n"), statusText(m.err), help)
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"skillcycle/internal/engine"
)

// MathModel plays the streak-scored arithmetic game.
type MathModel struct {
	game *engine.MathGame
	err  error
}

func NewMathModel(deps Deps) *MathModel {
	game := deps.Config.Game
	gen := engine.NewGenerator(game.Problems(), game.Distractors(), nil)
	return newMathModel(engine.NewMathGame(gen, game.MathGame()))
}

func newMathModel(game *engine.MathGame) *MathModel {
	return &MathModel{game: game}
}

// Init implements tea.Model.
func (m *MathModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *MathModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "enter", " ":
		switch m.game.State() {
		case engine.StateNotStarted:
			m.err = m.game.Start()
		case engine.StateCompleted:
			m.game.Reset()
			m.err = m.game.Start()
		default:
			m.err = m.game.Advance()
		}
	case "r":
		m.game.Reset()
		m.err = nil
	default:
		if idx, ok := optionKey(key); ok {
			m.err = m.game.Select(idx)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *MathModel) View() string {
	s := m.game.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d   Streak: %d   Best: %d\n\n", s.Score, s.Streak, s.HighScore)

	help := "enter start • q quit"
	switch s.State {
	case engine.StateNotStarted:
		b.WriteString("Solve as many problems as you can. A wrong answer ends the run.\n")
	case engine.StateCompleted:
		fmt.Fprintf(&b, "Game over! Final score: %d\n", s.Score)
		help = "enter try again • r reset • q quit"
	default:
		fmt.Fprintf(&b, "Round %d:  %s = ?\n\n", s.Round, s.Problem.Expression)
		for i, v := range s.Options {
			line := fmt.Sprintf("%d) %d", i+1, v)
			if s.Selected != nil {
				switch {
				case v == *s.Answer:
					line = correctStyle.Render(line)
				case i == *s.Selected:
					line = wrongStyle.Render(line)
				}
			}
			b.WriteString(line + "\n")
		}
		help = "1-4 answer • q quit"
		if s.Selected != nil {
			b.WriteString("\n")
			if s.Feedback == engine.FeedbackCorrect {
				b.WriteString(correctStyle.Render(fmt.Sprintf("Correct! +%d", s.LastAward)))
				help = "enter next problem • q quit"
			} else {
				b.WriteString(wrongStyle.Render(fmt.Sprintf("Not quite. The answer was %d.", *s.Answer)))
				help = "enter finish • q quit"
			}
		}
	}
	return render("Math Challenge", strings.TrimRight(b.String(), "\n"), statusText(m.err), help)
}

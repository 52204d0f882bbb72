package engine

import (
	"fmt"

	"skillcycle/internal/domain"
)

// RoundSource supplies problems and option sets to a MathGame.
type RoundSource interface {
	Problem() ArithmeticProblem
	Options(correct int) (OptionSet, error)
}

// Scoring awards Base + StreakBonus*streak for a correct answer, where
// streak counts the correct answers immediately before it.
type Scoring struct {
	BasePoints  int
	StreakBonus int
}

func (s Scoring) Award(streak int) int {
	return s.BasePoints + s.StreakBonus*streak
}

type MathGameConfig struct {
	Scoring Scoring
	// MaxRounds completes the game after that many rounds; 0 means the game
	// runs until the first wrong answer.
	MaxRounds int
}

func DefaultMathGameConfig() MathGameConfig {
	return MathGameConfig{Scoring: Scoring{BasePoints: 10, StreakBonus: 2}}
}

// MathGame is the streak-scored arithmetic game.
type MathGame struct {
	src RoundSource
	cfg MathGameConfig

	state       State
	problem     ArithmeticProblem
	options     OptionSet
	selected    int
	lastCorrect bool
	lastAward   int
	round       int
	score       int
	streak      int
	highScore   int
}

func NewMathGame(src RoundSource, cfg MathGameConfig) *MathGame {
	g := &MathGame{src: src, cfg: cfg}
	g.Reset()
	return g
}

func (g *MathGame) State() State { return g.state }

// Start begins a fresh game. Nothing changes if the first round cannot be
// generated.
func (g *MathGame) Start() error {
	if g.state != StateNotStarted {
		return domain.NewInvalidActionError(domain.ActionStart, string(g.state))
	}
	if err := g.nextRound(); err != nil {
		return err
	}
	g.score = 0
	g.streak = 0
	g.round = 1
	g.state = StateInProgress
	return nil
}

func (g *MathGame) nextRound() error {
	p := g.src.Problem()
	opts, err := g.src.Options(p.Result())
	if err != nil {
		return err
	}
	g.problem = p
	g.options = opts
	g.selected = -1
	g.lastCorrect = false
	g.lastAward = 0
	return nil
}

// Select answers the current round. Only the first selection counts.
func (g *MathGame) Select(option int) error {
	if g.state != StateInProgress {
		return domain.NewInvalidSelectionError(fmt.Sprintf("no selection accepted in state %s", g.state))
	}
	if option < 0 || option >= len(g.options.Values) {
		return domain.NewInvalidSelectionError(fmt.Sprintf("option %d out of range [0,%d)", option, len(g.options.Values))).
			WithContext("option", option)
	}
	g.selected = option
	if option == g.options.CorrectIndex {
		g.lastCorrect = true
		g.lastAward = g.cfg.Scoring.Award(g.streak)
		g.score += g.lastAward
		g.streak++
	} else {
		g.lastCorrect = false
		g.streak = 0
		g.recordHighScore()
	}
	g.state = StateAwaitingAdvance
	return nil
}

// Advance deals the next round after a correct answer and ends the game
// after a wrong one or once MaxRounds is reached.
func (g *MathGame) Advance() error {
	if g.state != StateAwaitingAdvance {
		return domain.NewInvalidActionError(domain.ActionAdvance, string(g.state))
	}
	if !g.lastCorrect || (g.cfg.MaxRounds > 0 && g.round >= g.cfg.MaxRounds) {
		g.recordHighScore()
		g.state = StateCompleted
		return nil
	}
	if err := g.nextRound(); err != nil {
		return err
	}
	g.round++
	g.state = StateInProgress
	return nil
}

// Reset returns to StateNotStarted. The high score survives for the life of
// the game instance.
func (g *MathGame) Reset() {
	g.state = StateNotStarted
	g.problem = ArithmeticProblem{}
	g.options = OptionSet{}
	g.selected = -1
	g.lastCorrect = false
	g.lastAward = 0
	g.round = 0
	g.score = 0
	g.streak = 0
}

func (g *MathGame) recordHighScore() {
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

type ProblemView struct {
	A          int      `json:"a"`
	B          int      `json:"b"`
	Operator   Operator `json:"operator"`
	Expression string   `json:"expression"`
}

// MathSnapshot is the render-ready view of a MathGame.
type MathSnapshot struct {
	State     State        `json:"state"`
	Round     int          `json:"round"`
	Problem   *ProblemView `json:"problem,omitempty"`
	Options   []int        `json:"options,omitempty"`
	Selected  *int         `json:"selected,omitempty"`
	Feedback  string       `json:"feedback,omitempty"`
	Answer    *int         `json:"answer,omitempty"`
	LastAward int          `json:"last_award,omitempty"`
	Score     int          `json:"score"`
	Streak    int          `json:"streak"`
	HighScore int          `json:"high_score"`
}

const (
	FeedbackCorrect = "correct"
	FeedbackWrong   = "wrong"
)

func (g *MathGame) Snapshot() MathSnapshot {
	s := MathSnapshot{
		State:     g.state,
		Round:     g.round,
		Score:     g.score,
		Streak:    g.streak,
		HighScore: g.highScore,
	}
	if g.state == StateNotStarted {
		return s
	}
	s.Problem = &ProblemView{
		A:          g.problem.A,
		B:          g.problem.B,
		Operator:   g.problem.Op,
		Expression: g.problem.String(),
	}
	s.Options = append([]int(nil), g.options.Values...)
	if g.selected >= 0 {
		selected, answer := g.selected, g.options.Correct()
		s.Selected = &selected
		s.Answer = &answer
		s.Feedback = FeedbackWrong
		if g.lastCorrect {
			s.Feedback = FeedbackCorrect
			s.LastAward = g.lastAward
		}
	}
	return s
}

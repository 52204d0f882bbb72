package engine

import (
	"fmt"

	"skillcycle/internal/domain"
)

type QuizConfig struct {
	PointValue int
	Verdicts   VerdictPolicy
}

func DefaultQuizConfig() QuizConfig {
	return QuizConfig{PointValue: 1, Verdicts: DefaultVerdictPolicy()}
}

// Quiz walks a fixed question bank in order.
type Quiz struct {
	bank     []domain.Question
	cfg      QuizConfig
	state    State
	index    int
	score    int
	correct  int
	selected int
}

// NewQuiz returns a quiz in StateNotStarted. The bank is shared, not copied.
func NewQuiz(bank []domain.Question, cfg QuizConfig) *Quiz {
	q := &Quiz{bank: bank, cfg: cfg}
	q.Reset()
	return q
}

func (q *Quiz) State() State { return q.state }

// Start shows the first question.
func (q *Quiz) Start() error {
	if q.state != StateNotStarted {
		return domain.NewInvalidActionError(domain.ActionStart, string(q.state))
	}
	if len(q.bank) == 0 {
		return domain.NewInternalError("quiz bank is empty", nil)
	}
	q.state = StateInProgress
	return nil
}

// Select locks in an answer for the current question. Only the first
// selection counts; later ones are rejected without touching state.
func (q *Quiz) Select(option int) error {
	if q.state != StateInProgress {
		return domain.NewInvalidSelectionError(fmt.Sprintf("no selection accepted in state %s", q.state))
	}
	current := q.bank[q.index]
	if option < 0 || option >= len(current.Options) {
		return domain.NewInvalidSelectionError(fmt.Sprintf("option %d out of range [0,%d)", option, len(current.Options))).
			WithContext("option", option)
	}
	q.selected = option
	if option == current.Correct {
		q.score += q.cfg.PointValue
		q.correct++
	}
	q.state = StateAwaitingAdvance
	return nil
}

// Advance moves to the next question, or completes after the last one.
func (q *Quiz) Advance() error {
	if q.state != StateAwaitingAdvance {
		return domain.NewInvalidActionError(domain.ActionAdvance, string(q.state))
	}
	if q.index < len(q.bank)-1 {
		q.index++
		q.selected = -1
		q.state = StateInProgress
		return nil
	}
	q.state = StateCompleted
	return nil
}

// Reset returns to StateNotStarted from any state.
func (q *Quiz) Reset() {
	q.state = StateNotStarted
	q.index = 0
	q.score = 0
	q.correct = 0
	q.selected = -1
}

type QuestionView struct {
	Prompt  string   `json:"prompt"`
	Subject string   `json:"subject,omitempty"`
	Options []string `json:"options"`
}

// QuizSnapshot is the render-ready view of a Quiz. The final result is
// Correct out of Total questions; Score is in points (PointValue per
// correct answer).
type QuizSnapshot struct {
	State         State         `json:"state"`
	Index         int           `json:"index"`
	Total         int           `json:"total"`
	Question      *QuestionView `json:"question,omitempty"`
	Selected      *int          `json:"selected,omitempty"`
	CorrectOption *int          `json:"correct_option,omitempty"`
	Score         int           `json:"score"`   // points
	Correct       int           `json:"correct"` // questions answered correctly
	LastQuestion  bool          `json:"last_question"`
	Verdict       *Verdict      `json:"verdict,omitempty"`
}

func (q *Quiz) Snapshot() QuizSnapshot {
	s := QuizSnapshot{
		State:        q.state,
		Index:        q.index,
		Total:        len(q.bank),
		Score:        q.score,
		Correct:      q.correct,
		LastQuestion: q.index == len(q.bank)-1,
	}
	switch q.state {
	case StateInProgress, StateAwaitingAdvance:
		cur := q.bank[q.index]
		s.Question = &QuestionView{
			Prompt:  cur.Prompt,
			Subject: cur.Subject,
			Options: append([]string(nil), cur.Options...),
		}
		if q.state == StateAwaitingAdvance {
			selected, correct := q.selected, cur.Correct
			s.Selected = &selected
			s.CorrectOption = &correct
		}
	case StateCompleted:
		v := q.cfg.Verdicts.Judge(q.correct, len(q.bank))
		s.Verdict = &v
	}
	return s
}

package engine

import (
	"testing"

	"skillcycle/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBank() []domain.Question {
	return []domain.Question{
		{Prompt: "2 + 2?", Options: []string{"3", "4", "5", "6"}, Correct: 1, Subject: "Math"},
		{Prompt: "H2O is?", Options: []string{"Water", "Salt", "Air", "Gold"}, Correct: 0, Subject: "Science"},
		{Prompt: "Largest planet?", Options: []string{"Mars", "Venus", "Jupiter", "Earth"}, Correct: 2, Subject: "Science"},
		{Prompt: "Capital of France?", Options: []string{"Rome", "Paris", "Berlin", "Madrid"}, Correct: 1, Subject: "Geography"},
		{Prompt: "3 × 3?", Options: []string{"6", "8", "9", "12"}, Correct: 2, Subject: "Math"},
	}
}

func TestQuiz_HappyPath(t *testing.T) {
	bank := testBank()
	q := NewQuiz(bank, DefaultQuizConfig())
	assert.Equal(t, StateNotStarted, q.State())
	assert.Nil(t, q.Snapshot().Question)

	require.NoError(t, q.Start())
	for i, question := range bank {
		s := q.Snapshot()
		require.Equal(t, StateInProgress, s.State)
		require.Equal(t, i, s.Index)
		require.Equal(t, question.Prompt, s.Question.Prompt)
		require.Nil(t, s.Selected)

		require.NoError(t, q.Select(question.Correct))
		s = q.Snapshot()
		require.Equal(t, StateAwaitingAdvance, s.State)
		require.Equal(t, question.Correct, *s.Selected)
		require.Equal(t, question.Correct, *s.CorrectOption)
		require.Equal(t, i == len(bank)-1, s.LastQuestion)

		require.NoError(t, q.Advance())
	}

	s := q.Snapshot()
	assert.Equal(t, StateCompleted, s.State)
	assert.Equal(t, 5, s.Score)
	assert.Equal(t, 5, s.Total)
	require.NotNil(t, s.Verdict)
	assert.Equal(t, TierTop, s.Verdict.Tier)
	assert.Equal(t, "Excellent work!", s.Verdict.Message)
}

func TestQuiz_FourOfFiveIsTopTier(t *testing.T) {
	bank := testBank()
	q := NewQuiz(bank, DefaultQuizConfig())
	require.NoError(t, q.Start())
	for i, question := range bank {
		pick := question.Correct
		if i == 2 {
			pick = (question.Correct + 1) % len(question.Options)
		}
		require.NoError(t, q.Select(pick))
		require.NoError(t, q.Advance())
	}
	s := q.Snapshot()
	assert.Equal(t, 4, s.Score)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, TierTop, s.Verdict.Tier)
}

func TestQuiz_ScoreOnlyGrowsOnCorrectAnswers(t *testing.T) {
	bank := testBank()
	q := NewQuiz(bank, QuizConfig{PointValue: 3, Verdicts: DefaultVerdictPolicy()})
	require.NoError(t, q.Start())

	prev := 0
	for i, question := range bank {
		pick := question.Correct
		if i%2 == 1 {
			pick = (question.Correct + 1) % len(question.Options)
		}
		require.NoError(t, q.Select(pick))
		score := q.Snapshot().Score
		if pick == question.Correct {
			assert.Equal(t, prev+3, score)
		} else {
			assert.Equal(t, prev, score)
		}
		prev = score
		require.NoError(t, q.Advance())
	}
	assert.Equal(t, 9, q.Snapshot().Score)
	assert.Equal(t, 3, q.Snapshot().Correct)
}

func TestQuiz_SelectionIsLocked(t *testing.T) {
	bank := testBank()
	q := NewQuiz(bank, DefaultQuizConfig())
	require.NoError(t, q.Start())

	wrong := (bank[0].Correct + 1) % len(bank[0].Options)
	require.NoError(t, q.Select(wrong))
	before := q.Snapshot()

	err := q.Select(bank[0].Correct)
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidSelection, domain.CodeOf(err))
	assert.Equal(t, before, q.Snapshot())
}

func TestQuiz_RejectedActionsLeaveStateUnchanged(t *testing.T) {
	q := NewQuiz(testBank(), DefaultQuizConfig())

	err := q.Select(0)
	assert.Equal(t, domain.CodeInvalidSelection, domain.CodeOf(err))
	err = q.Advance()
	assert.Equal(t, domain.CodeInvalidAction, domain.CodeOf(err))
	assert.Equal(t, StateNotStarted, q.State())

	require.NoError(t, q.Start())
	err = q.Start()
	assert.Equal(t, domain.CodeInvalidAction, domain.CodeOf(err))

	before := q.Snapshot()
	for _, idx := range []int{-1, 4, 99} {
		err = q.Select(idx)
		assert.Equal(t, domain.CodeInvalidSelection, domain.CodeOf(err), "index %d", idx)
	}
	err = q.Advance()
	assert.Equal(t, domain.CodeInvalidAction, domain.CodeOf(err))
	assert.Equal(t, before, q.Snapshot())
}

func TestQuiz_ResetFromCompleted(t *testing.T) {
	bank := testBank()
	q := NewQuiz(bank, DefaultQuizConfig())
	require.NoError(t, q.Start())
	for _, question := range bank {
		require.NoError(t, q.Select(question.Correct))
		require.NoError(t, q.Advance())
	}
	require.Equal(t, StateCompleted, q.State())

	q.Reset()
	s := q.Snapshot()
	assert.Equal(t, StateNotStarted, s.State)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.Index)
	assert.Nil(t, s.Selected)
	assert.Nil(t, s.Verdict)

	require.NoError(t, q.Start())
	assert.Equal(t, bank[0].Prompt, q.Snapshot().Question.Prompt)
}

func TestQuiz_EmptyBank(t *testing.T) {
	q := NewQuiz(nil, DefaultQuizConfig())
	err := q.Start()
	require.Error(t, err)
	assert.Equal(t, domain.CodeInternal, domain.CodeOf(err))
	assert.Equal(t, StateNotStarted, q.State())
}

func TestVerdictPolicy_Judge(t *testing.T) {
	p := DefaultVerdictPolicy()
	tests := []struct {
		correct, total int
		want           Tier
	}{
		{5, 5, TierTop},
		{4, 5, TierTop},
		{3, 5, TierMiddle},
		{1, 2, TierMiddle},
		{2, 5, TierBottom},
		{0, 5, TierBottom},
		{0, 0, TierBottom},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Judge(tt.correct, tt.total).Tier, "%d/%d", tt.correct, tt.total)
	}
}

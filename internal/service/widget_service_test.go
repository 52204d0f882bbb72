package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"skillcycle/internal/config"
	"skillcycle/internal/domain"
	"skillcycle/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWidgetService(t *testing.T, mutate func(*config.Config)) (*widgetService, *engine.ManualScheduler) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	sched := &engine.ManualScheduler{}
	var seed uint64
	svc := newWidgetService(mustCatalog(t), cfg, sched, func() *rand.Rand {
		seed++
		return rand.New(rand.NewPCG(seed, seed))
	})
	return svc, sched
}

func TestWidgetService_OpenEveryKind(t *testing.T) {
	svc, _ := newTestWidgetService(t, nil)
	ctx := context.Background()

	for _, kind := range domain.WidgetKinds {
		resp, err := svc.Open(ctx, kind)
		require.NoError(t, err, kind)
		assert.Len(t, resp.ID, 26)
		assert.Equal(t, kind, resp.Kind)
		switch kind {
		case domain.WidgetMathGame:
			require.NotNil(t, resp.Math)
			assert.Equal(t, engine.StateNotStarted, resp.Math.State)
		case domain.WidgetQuiz:
			require.NotNil(t, resp.Quiz)
			assert.Equal(t, 5, resp.Quiz.Total)
		case domain.WidgetChat:
			require.NotNil(t, resp.Chat)
			assert.Len(t, resp.Chat.Messages, 1)
		case domain.WidgetTextbooks:
			require.NotNil(t, resp.Textbooks)
			assert.Len(t, resp.Textbooks.Books, 6)
		case domain.WidgetVideos:
			require.NotNil(t, resp.Videos)
			assert.Len(t, resp.Videos.Videos, 8)
		}
	}
	assert.Equal(t, len(domain.WidgetKinds), svc.Count())

	_, err := svc.Open(ctx, domain.WidgetKind("piano"))
	assert.Equal(t, domain.CodeUnknownWidget, domain.CodeOf(err))
	assert.Equal(t, len(domain.WidgetKinds), svc.Count())
}

func TestWidgetService_QuizFlow(t *testing.T) {
	svc, _ := newTestWidgetService(t, nil)
	ctx := context.Background()
	catalog := mustCatalog(t)

	opened, err := svc.Open(ctx, domain.WidgetQuiz)
	require.NoError(t, err)
	id := opened.ID

	_, err = svc.Act(ctx, id, domain.Action{Type: domain.ActionStart})
	require.NoError(t, err)
	for i, q := range catalog.Quiz {
		pick := q.Correct
		if i == 0 {
			pick = (q.Correct + 1) % len(q.Options)
		}
		resp, err := svc.Act(ctx, id, domain.Action{Type: domain.ActionSelect, Index: pick})
		require.NoError(t, err)
		assert.Equal(t, q.Correct, *resp.Quiz.CorrectOption)

		_, err = svc.Act(ctx, id, domain.Action{Type: domain.ActionSelect, Index: q.Correct})
		assert.Equal(t, domain.CodeInvalidSelection, domain.CodeOf(err))

		_, err = svc.Act(ctx, id, domain.Action{Type: domain.ActionAdvance})
		require.NoError(t, err)
	}

	resp, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, engine.StateCompleted, resp.Quiz.State)
	assert.Equal(t, 4, resp.Quiz.Score)
	assert.Equal(t, engine.TierTop, resp.Quiz.Verdict.Tier)

	resp, err = svc.Act(ctx, id, domain.Action{Type: domain.ActionReset})
	require.NoError(t, err)
	assert.Equal(t, engine.StateNotStarted, resp.Quiz.State)
	assert.Zero(t, resp.Quiz.Score)
}

func TestWidgetService_MathFlow(t *testing.T) {
	svc, _ := newTestWidgetService(t, nil)
	ctx := context.Background()

	opened, err := svc.Open(ctx, domain.WidgetMathGame)
	require.NoError(t, err)

	resp, err := svc.Act(ctx, opened.ID, domain.Action{Type: domain.ActionStart})
	require.NoError(t, err)
	p := resp.Math.Problem
	answer := engine.ArithmeticProblem{A: p.A, B: p.B, Op: p.Operator}.Result()
	idx := -1
	for i, v := range resp.Math.Options {
		if v == answer {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)

	resp, err = svc.Act(ctx, opened.ID, domain.Action{Type: domain.ActionSelect, Index: idx})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Math.Score)
	assert.Equal(t, 1, resp.Math.Streak)

	_, err = svc.Act(ctx, opened.ID, domain.Action{Type: domain.ActionSubmit, Text: "hi"})
	assert.Equal(t, domain.CodeInvalidAction, domain.CodeOf(err))
}

func TestWidgetService_ChatReplyIsDeferred(t *testing.T) {
	svc, sched := newTestWidgetService(t, nil)
	ctx := context.Background()

	opened, err := svc.Open(ctx, domain.WidgetChat)
	require.NoError(t, err)

	resp, err := svc.Act(ctx, opened.ID, domain.Action{Type: domain.ActionSubmit, Text: "Tell me about photosynthesis"})
	require.NoError(t, err)
	assert.True(t, resp.Chat.Pending)
	assert.Len(t, resp.Chat.Messages, 2)

	_, err = svc.Act(ctx, opened.ID, domain.Action{Type: domain.ActionSubmit, Text: "hello?"})
	assert.Equal(t, domain.CodeInputLocked, domain.CodeOf(err))

	assert.Equal(t, 1, sched.Fire())
	resp, err = svc.Get(ctx, opened.ID)
	require.NoError(t, err)
	assert.False(t, resp.Chat.Pending)
	require.Len(t, resp.Chat.Messages, 3)
	assert.Contains(t, resp.Chat.Messages[2].Content, "Photosynthesis")
}

func TestWidgetService_CloseCancelsChatReply(t *testing.T) {
	svc, sched := newTestWidgetService(t, nil)
	ctx := context.Background()

	opened, err := svc.Open(ctx, domain.WidgetChat)
	require.NoError(t, err)
	_, err = svc.Act(ctx, opened.ID, domain.Action{Type: domain.ActionSubmit, Text: "math"})
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, opened.ID))
	assert.Empty(t, sched.Pending())
	assert.Zero(t, svc.Count())

	_, err = svc.Get(ctx, opened.ID)
	assert.Equal(t, domain.CodeSessionNotFound, domain.CodeOf(err))
	err = svc.Close(ctx, opened.ID)
	assert.Equal(t, domain.CodeSessionNotFound, domain.CodeOf(err))
}

func TestWidgetService_LibraryFlow(t *testing.T) {
	svc, _ := newTestWidgetService(t, nil)
	ctx := context.Background()

	books, err := svc.Open(ctx, domain.WidgetTextbooks)
	require.NoError(t, err)
	resp, err := svc.Act(ctx, books.ID, domain.Action{Type: domain.ActionOpen, ItemID: 2})
	require.NoError(t, err)
	require.NotNil(t, resp.Textbooks.Selected)
	assert.Equal(t, 10, resp.Textbooks.Selected.MoreChapters)

	_, err = svc.Act(ctx, books.ID, domain.Action{Type: domain.ActionTogglePlay})
	assert.Equal(t, domain.CodeInvalidAction, domain.CodeOf(err))

	videos, err := svc.Open(ctx, domain.WidgetVideos)
	require.NoError(t, err)
	_, err = svc.Act(ctx, videos.ID, domain.Action{Type: domain.ActionOpen, ItemID: 99})
	assert.Equal(t, domain.CodeItemNotFound, domain.CodeOf(err))
	_, err = svc.Act(ctx, videos.ID, domain.Action{Type: domain.ActionOpen, ItemID: 3})
	require.NoError(t, err)
	resp, err = svc.Act(ctx, videos.ID, domain.Action{Type: domain.ActionTogglePlay})
	require.NoError(t, err)
	assert.True(t, resp.Videos.Playing)
}

func TestWidgetService_SessionsAreIsolated(t *testing.T) {
	svc, _ := newTestWidgetService(t, nil)
	ctx := context.Background()

	a, err := svc.Open(ctx, domain.WidgetQuiz)
	require.NoError(t, err)
	b, err := svc.Open(ctx, domain.WidgetQuiz)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	_, err = svc.Act(ctx, a.ID, domain.Action{Type: domain.ActionStart})
	require.NoError(t, err)

	resp, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, engine.StateNotStarted, resp.Quiz.State)
}

func TestWidgetService_SessionLimit(t *testing.T) {
	svc, _ := newTestWidgetService(t, func(c *config.Config) { c.Widgets.MaxSessions = 2 })
	ctx := context.Background()

	first, err := svc.Open(ctx, domain.WidgetQuiz)
	require.NoError(t, err)
	_, err = svc.Open(ctx, domain.WidgetQuiz)
	require.NoError(t, err)

	_, err = svc.Open(ctx, domain.WidgetQuiz)
	assert.Equal(t, domain.CodeSessionLimit, domain.CodeOf(err))

	require.NoError(t, svc.Close(ctx, first.ID))
	_, err = svc.Open(ctx, domain.WidgetQuiz)
	assert.NoError(t, err)
}

func TestWidgetService_Sweep(t *testing.T) {
	svc, sched := newTestWidgetService(t, func(c *config.Config) { c.Widgets.SessionTTL = time.Minute })
	ctx := context.Background()

	idle, err := svc.Open(ctx, domain.WidgetChat)
	require.NoError(t, err)
	_, err = svc.Act(ctx, idle.ID, domain.Action{Type: domain.ActionSubmit, Text: "hello"})
	require.NoError(t, err)

	assert.Zero(t, svc.Sweep(time.Now()))
	assert.Equal(t, 1, svc.Sweep(time.Now().Add(2*time.Minute)))
	assert.Zero(t, svc.Count())
	assert.Empty(t, sched.Pending())

	_, err = svc.Get(ctx, idle.ID)
	assert.Equal(t, domain.CodeSessionNotFound, domain.CodeOf(err))
}

func TestWidgetService_RunClosesSessionsOnShutdown(t *testing.T) {
	svc, _ := newTestWidgetService(t, func(c *config.Config) { c.Widgets.SweepInterval = time.Hour })
	ctx, cancel := context.WithCancel(context.Background())

	_, err := svc.Open(ctx, domain.WidgetMathGame)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Zero(t, svc.Count())
}

func TestWidgetService_ConcurrentActions(t *testing.T) {
	svc, sched := newTestWidgetService(t, nil)
	ctx := context.Background()

	opened, err := svc.Open(ctx, domain.WidgetChat)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Act(ctx, opened.ID, domain.Action{Type: domain.ActionSubmit, Text: "math"}); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Len(t, sched.Pending(), 1)
}

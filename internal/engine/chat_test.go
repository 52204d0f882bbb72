package engine

import (
	"testing"
	"time"

	"skillcycle/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChat(sched Scheduler) *Chat {
	m := NewMatcher([]domain.KeywordRule{
		{Trigger: "hello", Response: "Hi there!"},
		{Trigger: "math", Response: "Let's do math."},
	}, "Tell me more.")
	return NewChat(m, "Welcome!", DefaultChatTiming(), sched, seeded(11))
}

func TestChat_Greeting(t *testing.T) {
	c := newTestChat(&ManualScheduler{})
	s := c.Snapshot()
	require.Len(t, s.Messages, 1)
	assert.Equal(t, domain.RoleAssistant, s.Messages[0].Role)
	assert.Equal(t, "Welcome!", s.Messages[0].Content)
	assert.False(t, s.Pending)
}

func TestChat_SubmitAndDeliver(t *testing.T) {
	sched := &ManualScheduler{}
	c := newTestChat(sched)

	require.NoError(t, c.Submit("Hello bot"))
	s := c.Snapshot()
	require.Len(t, s.Messages, 2)
	assert.Equal(t, domain.Message{Role: domain.RoleUser, Content: "Hello bot"}, s.Messages[1])
	assert.True(t, s.Pending)

	delays := sched.Pending()
	require.Len(t, delays, 1)
	assert.GreaterOrEqual(t, delays[0], time.Second)
	assert.Less(t, delays[0], 2*time.Second)

	assert.Equal(t, 1, sched.Fire())
	s = c.Snapshot()
	require.Len(t, s.Messages, 3)
	assert.Equal(t, domain.Message{Role: domain.RoleAssistant, Content: "Hi there!"}, s.Messages[2])
	assert.False(t, s.Pending)

	require.NoError(t, c.Submit("what about history"))
	sched.Fire()
	assert.Equal(t, "Tell me more.", c.Snapshot().Messages[4].Content)
}

func TestChat_InputLockedWhilePending(t *testing.T) {
	sched := &ManualScheduler{}
	c := newTestChat(sched)
	require.NoError(t, c.Submit("math"))

	err := c.Submit("again")
	require.Error(t, err)
	assert.Equal(t, domain.CodeInputLocked, domain.CodeOf(err))
	assert.Len(t, c.Snapshot().Messages, 2)
	assert.Len(t, sched.Pending(), 1)
}

func TestChat_BlankInput(t *testing.T) {
	sched := &ManualScheduler{}
	c := newTestChat(sched)
	err := c.Submit("   ")
	assert.Equal(t, domain.CodeInvalidInput, domain.CodeOf(err))
	assert.Len(t, c.Snapshot().Messages, 1)
	assert.Empty(t, sched.Pending())
}

func TestChat_CloseDiscardsPendingReply(t *testing.T) {
	sched := &ManualScheduler{}
	c := newTestChat(sched)
	require.NoError(t, c.Submit("hello"))

	c.Close()
	assert.Empty(t, sched.Pending())
	assert.Equal(t, 0, sched.Fire())
	assert.Len(t, c.Snapshot().Messages, 2)

	err := c.Submit("anyone?")
	assert.Equal(t, domain.CodeInvalidAction, domain.CodeOf(err))
}

func TestChat_LateCallbackAfterCloseIsDropped(t *testing.T) {
	// Simulate a timer that already fired and is blocked before Close ran.
	var captured func()
	sched := schedulerFunc(func(d time.Duration, fn func()) func() bool {
		captured = fn
		return func() bool { return false }
	})
	c := newTestChat(sched)
	require.NoError(t, c.Submit("hello"))
	c.Close()

	captured()
	assert.Len(t, c.Snapshot().Messages, 2)
	assert.False(t, c.Pending())
}

func TestChat_ResetDropsTranscript(t *testing.T) {
	sched := &ManualScheduler{}
	c := newTestChat(sched)
	require.NoError(t, c.Submit("hello"))
	c.Reset()

	s := c.Snapshot()
	require.Len(t, s.Messages, 1)
	assert.False(t, s.Pending)
	sched.Fire()
	assert.Len(t, c.Snapshot().Messages, 1)

	require.NoError(t, c.Submit("math"))
	sched.Fire()
	assert.Len(t, c.Snapshot().Messages, 3)
}

type schedulerFunc func(d time.Duration, fn func()) func() bool

func (f schedulerFunc) AfterFunc(d time.Duration, fn func()) func() bool { return f(d, fn) }

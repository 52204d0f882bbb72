package engine

import (
	"math/rand/v2"
	"strings"
	"time"

	"skillcycle/internal/domain"
)

// ChatTiming bounds the simulated thinking delay: [MinDelay, MaxDelay).
type ChatTiming struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

func DefaultChatTiming() ChatTiming {
	return ChatTiming{MinDelay: time.Second, MaxDelay: 2 * time.Second}
}

// Chat is the scripted chatbot transcript. At most one reply is outstanding;
// input is refused until it arrives.
type Chat struct {
	matcher  *Matcher
	greeting string
	timing   ChatTiming
	sched    Scheduler
	rnd      *rand.Rand

	messages []domain.Message
	pending  bool
	gen      uint64
	stop     func() bool
	closed   bool
}

// NewChat returns a chat seeded with greeting. A nil rnd is replaced by a
// randomly seeded source.
func NewChat(matcher *Matcher, greeting string, timing ChatTiming, sched Scheduler, rnd *rand.Rand) *Chat {
	if rnd == nil {
		rnd = newRand()
	}
	c := &Chat{matcher: matcher, greeting: greeting, timing: timing, sched: sched, rnd: rnd}
	c.seed()
	return c
}

func (c *Chat) seed() {
	c.messages = c.messages[:0]
	if c.greeting != "" {
		c.messages = append(c.messages, domain.Message{Role: domain.RoleAssistant, Content: c.greeting})
	}
}

// Submit appends the user's message and schedules the reply.
func (c *Chat) Submit(text string) error {
	if c.closed {
		return domain.NewInvalidActionError(domain.ActionSubmit, "closed")
	}
	if c.pending {
		return domain.NewInputLockedError()
	}
	if strings.TrimSpace(text) == "" {
		return domain.NewInvalidInputError("message is empty")
	}

	c.messages = append(c.messages, domain.Message{Role: domain.RoleUser, Content: text})
	reply := c.matcher.Respond(text)
	c.pending = true
	c.gen++
	gen := c.gen
	c.stop = c.sched.AfterFunc(c.delay(), func() { c.deliver(gen, reply) })
	return nil
}

// deliver appends a reply unless the chat was closed or reset after the
// reply was scheduled.
func (c *Chat) deliver(gen uint64, reply string) {
	if c.closed || !c.pending || gen != c.gen {
		return
	}
	c.messages = append(c.messages, domain.Message{Role: domain.RoleAssistant, Content: reply})
	c.pending = false
	c.stop = nil
}

func (c *Chat) delay() time.Duration {
	span := c.timing.MaxDelay - c.timing.MinDelay
	if span <= 0 {
		return c.timing.MinDelay
	}
	return c.timing.MinDelay + time.Duration(c.rnd.Int64N(int64(span)))
}

func (c *Chat) cancelPending() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.pending = false
	c.gen++
}

// Reset drops the transcript back to the greeting and discards any
// outstanding reply.
func (c *Chat) Reset() {
	c.cancelPending()
	c.seed()
}

// Close discards any outstanding reply. A closed chat accepts no input.
func (c *Chat) Close() {
	c.cancelPending()
	c.closed = true
}

func (c *Chat) Pending() bool { return c.pending }

type ChatSnapshot struct {
	Messages []domain.Message `json:"messages"`
	Pending  bool             `json:"pending"`
}

func (c *Chat) Snapshot() ChatSnapshot {
	return ChatSnapshot{
		Messages: append([]domain.Message(nil), c.messages...),
		Pending:  c.pending,
	}
}

package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"skillcycle/internal/config"
	"skillcycle/internal/content"
	"skillcycle/internal/domain"
	"skillcycle/internal/dto"
	"skillcycle/internal/engine"
	"skillcycle/internal/logger"
	"skillcycle/internal/util"

	"go.uber.org/zap"
)

// WidgetService owns the open widget sessions
type WidgetService interface {
	// Open creates a fresh session of the given kind
	Open(ctx context.Context, kind domain.WidgetKind) (*dto.WidgetResponse, error)
	// Get returns the current snapshot of a session
	Get(ctx context.Context, id string) (*dto.WidgetResponse, error)
	// Act applies one action and returns the resulting snapshot
	Act(ctx context.Context, id string, action domain.Action) (*dto.WidgetResponse, error)
	// Close tears a session down, cancelling any deferred work
	Close(ctx context.Context, id string) error
	// Count returns the number of open sessions
	Count() int
	// Sweep closes sessions idle since before now-TTL and returns how many
	Sweep(now time.Time) int
	// Run sweeps periodically until ctx is done, then closes every session
	Run(ctx context.Context) error
}

// session is one open widget. mu serializes every action on it, including
// deferred chat replies.
type session struct {
	mu       sync.Mutex
	id       string
	kind     domain.WidgetKind
	widget   widget
	lastUsed time.Time
	closed   bool
}

func (s *session) response() *dto.WidgetResponse {
	resp := &dto.WidgetResponse{ID: s.id, Kind: s.kind}
	s.widget.fill(resp)
	return resp
}

// lockedScheduler runs deferred callbacks under their session's lock.
type lockedScheduler struct {
	base engine.Scheduler
	mu   *sync.Mutex
}

func (s lockedScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	return s.base.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		fn()
	})
}

type widgetService struct {
	factory *widgetFactory
	cfg     config.WidgetConfig
	sched   engine.Scheduler
	newRand func() *rand.Rand

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewWidgetService creates a WidgetService. A nil scheduler uses runtime timers.
func NewWidgetService(catalog *content.Catalog, cfg *config.Config, sched engine.Scheduler) WidgetService {
	return newWidgetService(catalog, cfg, sched, func() *rand.Rand { return nil })
}

func newWidgetService(catalog *content.Catalog, cfg *config.Config, sched engine.Scheduler, newRand func() *rand.Rand) *widgetService {
	if sched == nil {
		sched = engine.TimerScheduler{}
	}
	return &widgetService{
		factory:  newWidgetFactory(catalog, cfg),
		cfg:      cfg.Widgets,
		sched:    sched,
		newRand:  newRand,
		sessions: make(map[string]*session),
	}
}

// Open implements WidgetService
func (s *widgetService) Open(ctx context.Context, kind domain.WidgetKind) (*dto.WidgetResponse, error) {
	sess := &session{id: util.NewULID(), kind: kind, lastUsed: time.Now()}
	w, err := s.factory.build(kind, lockedScheduler{base: s.sched, mu: &sess.mu}, s.newRand())
	if err != nil {
		return nil, err
	}
	sess.widget = w

	s.mu.Lock()
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		logger.Get().Warn("WidgetService: session limit reached",
			zap.String("kind", string(kind)),
			zap.Int("limit", s.cfg.MaxSessions))
		return nil, domain.NewSessionLimitError(s.cfg.MaxSessions)
	}
	s.sessions[sess.id] = sess
	open := len(s.sessions)
	s.mu.Unlock()

	logger.Get().Info("WidgetService: session opened",
		zap.String("id", sess.id),
		zap.String("kind", string(kind)),
		zap.Int("open_sessions", open))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.response(), nil
}

// lookup returns the session locked, or a not-found error.
func (s *widgetService) lookup(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	sess.mu.Lock()
	if sess.closed {
		sess.mu.Unlock()
		return nil, domain.NewSessionNotFoundError(id)
	}
	return sess, nil
}

// Get implements WidgetService
func (s *widgetService) Get(ctx context.Context, id string) (*dto.WidgetResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	sess.lastUsed = time.Now()
	return sess.response(), nil
}

// Act implements WidgetService
func (s *widgetService) Act(ctx context.Context, id string, action domain.Action) (*dto.WidgetResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	sess.lastUsed = time.Now()

	if err := sess.widget.apply(action); err != nil {
		fields := []zap.Field{
			zap.String("id", id),
			zap.String("kind", string(sess.kind)),
			zap.String("action", string(action.Type)),
			zap.String("code", string(domain.CodeOf(err))),
		}
		switch domain.CodeOf(err) {
		case domain.CodeInternal, domain.CodeDegenerateRange:
			logger.Get().Error("WidgetService: action failed", append(fields, zap.Error(err))...)
		default:
			logger.Get().Debug("WidgetService: action rejected", fields...)
		}
		return nil, err
	}
	return sess.response(), nil
}

// Close implements WidgetService
func (s *widgetService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return domain.NewSessionNotFoundError(id)
	}
	s.teardown(sess)
	logger.Get().Info("WidgetService: session closed", zap.String("id", id))
	return nil
}

func (s *widgetService) teardown(sess *session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return
	}
	sess.closed = true
	sess.widget.close()
}

// Count implements WidgetService
func (s *widgetService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep implements WidgetService
func (s *widgetService) Sweep(now time.Time) int {
	if s.cfg.SessionTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-s.cfg.SessionTTL)

	s.mu.RLock()
	candidates := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		candidates = append(candidates, sess)
	}
	s.mu.RUnlock()

	swept := 0
	for _, sess := range candidates {
		sess.mu.Lock()
		idle := sess.lastUsed.Before(cutoff)
		sess.mu.Unlock()
		if !idle {
			continue
		}

		s.mu.Lock()
		if s.sessions[sess.id] != sess {
			s.mu.Unlock()
			continue
		}
		delete(s.sessions, sess.id)
		s.mu.Unlock()

		s.teardown(sess)
		swept++
	}
	if swept > 0 {
		logger.Get().Info("WidgetService: swept idle sessions",
			zap.Int("swept", swept),
			zap.Int("open_sessions", s.Count()))
	}
	return swept
}

// Run implements WidgetService
func (s *widgetService) Run(ctx context.Context) error {
	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return nil
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}

func (s *widgetService) closeAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*session)
	s.mu.Unlock()

	for _, sess := range sessions {
		s.teardown(sess)
	}
	logger.Get().Info("WidgetService: closed all sessions", zap.Int("closed", len(sessions)))
}

package service

import (
	"math/rand/v2"

	"skillcycle/internal/config"
	"skillcycle/internal/content"
	"skillcycle/internal/domain"
	"skillcycle/internal/dto"
	"skillcycle/internal/engine"
)

// widget adapts one engine state holder to the action protocol.
type widget interface {
	apply(action domain.Action) error
	fill(resp *dto.WidgetResponse)
	close()
}

// widgetFactory builds fresh widgets from the shared catalog and tunables.
type widgetFactory struct {
	catalog *content.Catalog
	cfg     *config.Config
	matcher *engine.Matcher
}

func newWidgetFactory(catalog *content.Catalog, cfg *config.Config) *widgetFactory {
	return &widgetFactory{
		catalog: catalog,
		cfg:     cfg,
		matcher: engine.NewMatcher(catalog.Chat.Rules, catalog.Chat.Fallback),
	}
}

func (f *widgetFactory) build(kind domain.WidgetKind, sched engine.Scheduler, rnd *rand.Rand) (widget, error) {
	switch kind {
	case domain.WidgetMathGame:
		gen := engine.NewGenerator(f.cfg.Game.Problems(), f.cfg.Game.Distractors(), rnd)
		return &mathWidget{game: engine.NewMathGame(gen, f.cfg.Game.MathGame())}, nil
	case domain.WidgetQuiz:
		return &quizWidget{quiz: engine.NewQuiz(f.catalog.Quiz, f.cfg.Quiz.Quiz())}, nil
	case domain.WidgetChat:
		chat := engine.NewChat(f.matcher, f.catalog.Chat.Greeting, f.cfg.Chat.Timing(), sched, rnd)
		return &chatWidget{chat: chat}, nil
	case domain.WidgetTextbooks:
		return &textbookWidget{browser: engine.NewTextbookBrowser(f.catalog.Textbooks)}, nil
	case domain.WidgetVideos:
		return &videoWidget{browser: engine.NewVideoBrowser(f.catalog.Videos)}, nil
	default:
		return nil, domain.NewUnknownWidgetError(string(kind))
	}
}

type mathWidget struct {
	game *engine.MathGame
}

func (w *mathWidget) apply(a domain.Action) error {
	switch a.Type {
	case domain.ActionStart:
		return w.game.Start()
	case domain.ActionSelect:
		return w.game.Select(a.Index)
	case domain.ActionAdvance:
		return w.game.Advance()
	case domain.ActionReset:
		w.game.Reset()
		return nil
	}
	return domain.NewInvalidActionError(a.Type, string(w.game.State()))
}

func (w *mathWidget) fill(resp *dto.WidgetResponse) {
	s := w.game.Snapshot()
	resp.Math = &s
}

func (w *mathWidget) close() {}

type quizWidget struct {
	quiz *engine.Quiz
}

func (w *quizWidget) apply(a domain.Action) error {
	switch a.Type {
	case domain.ActionStart:
		return w.quiz.Start()
	case domain.ActionSelect:
		return w.quiz.Select(a.Index)
	case domain.ActionAdvance:
		return w.quiz.Advance()
	case domain.ActionReset:
		w.quiz.Reset()
		return nil
	}
	return domain.NewInvalidActionError(a.Type, string(w.quiz.State()))
}

func (w *quizWidget) fill(resp *dto.WidgetResponse) {
	s := w.quiz.Snapshot()
	resp.Quiz = &s
}

func (w *quizWidget) close() {}

type chatWidget struct {
	chat *engine.Chat
}

func (w *chatWidget) apply(a domain.Action) error {
	switch a.Type {
	case domain.ActionSubmit:
		return w.chat.Submit(a.Text)
	case domain.ActionReset:
		w.chat.Reset()
		return nil
	}
	return domain.NewInvalidActionError(a.Type, "chat")
}

func (w *chatWidget) fill(resp *dto.WidgetResponse) {
	s := w.chat.Snapshot()
	resp.Chat = &s
}

func (w *chatWidget) close() { w.chat.Close() }

type textbookWidget struct {
	browser *engine.TextbookBrowser
}

func (w *textbookWidget) apply(a domain.Action) error {
	switch a.Type {
	case domain.ActionOpen:
		return w.browser.Open(a.ItemID)
	case domain.ActionBack:
		return w.browser.Back()
	case domain.ActionReset:
		w.browser.Reset()
		return nil
	}
	return domain.NewInvalidActionError(a.Type, "textbooks")
}

func (w *textbookWidget) fill(resp *dto.WidgetResponse) {
	s := w.browser.Snapshot()
	resp.Textbooks = &s
}

func (w *textbookWidget) close() {}

type videoWidget struct {
	browser *engine.VideoBrowser
}

func (w *videoWidget) apply(a domain.Action) error {
	switch a.Type {
	case domain.ActionOpen:
		return w.browser.Open(a.ItemID)
	case domain.ActionBack:
		return w.browser.Back()
	case domain.ActionTogglePlay:
		return w.browser.TogglePlay()
	case domain.ActionReset:
		w.browser.Reset()
		return nil
	}
	return domain.NewInvalidActionError(a.Type, "videos")
}

func (w *videoWidget) fill(resp *dto.WidgetResponse) {
	s := w.browser.Snapshot()
	resp.Videos = &s
}

func (w *videoWidget) close() {}

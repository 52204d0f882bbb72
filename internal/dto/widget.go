package dto

import (
	"skillcycle/internal/domain"
	"skillcycle/internal/engine"
)

// OpenWidgetRequest represents a request to open a widget session
// @Description Request body for opening a widget
type OpenWidgetRequest struct {
	Kind string `json:"kind" example:"math"`
}

// ActionRequest represents one user action against an open widget
// @Description Request body for a widget action
type ActionRequest struct {
	Type   string `json:"type" example:"select"`
	Index  *int   `json:"index,omitempty" example:"2"`
	Text   string `json:"text,omitempty" example:"hello"`
	ItemID *int   `json:"item_id,omitempty" example:"3"`
}

// ToAction converts the request into a domain action. Callers validate first.
func (r ActionRequest) ToAction() domain.Action {
	a := domain.Action{Type: domain.ActionType(r.Type), Text: r.Text}
	if r.Index != nil {
		a.Index = *r.Index
	}
	if r.ItemID != nil {
		a.ItemID = *r.ItemID
	}
	return a
}

// WidgetResponse is the current snapshot of one widget session. Exactly one
// of the kind-specific fields is set.
// @Description Widget session snapshot
type WidgetResponse struct {
	ID        string                   `json:"id"`
	Kind      domain.WidgetKind        `json:"kind"`
	Math      *engine.MathSnapshot     `json:"math,omitempty"`
	Quiz      *engine.QuizSnapshot     `json:"quiz,omitempty"`
	Chat      *engine.ChatSnapshot     `json:"chat,omitempty"`
	Textbooks *engine.TextbookSnapshot `json:"textbooks,omitempty"`
	Videos    *engine.VideoSnapshot    `json:"videos,omitempty"`
}

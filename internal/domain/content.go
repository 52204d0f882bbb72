package domain

import "fmt"

// Question is one entry of the fixed quiz bank.
type Question struct {
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Options []string `yaml:"options" json:"options"`
	Correct int      `yaml:"correct" json:"-"`
	Subject string   `yaml:"subject" json:"subject,omitempty"`
}

// Validate validates the question
func (q Question) Validate() error {
	if q.Prompt == "" {
		return NewValidationError("question prompt is required")
	}
	if len(q.Options) < 2 {
		return NewValidationError(fmt.Sprintf("question %q needs at least 2 options", q.Prompt))
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return NewValidationError(fmt.Sprintf("question %q: correct index %d out of range", q.Prompt, q.Correct))
	}
	return nil
}

// KeywordRule maps a trigger substring to a canned reply.
type KeywordRule struct {
	Trigger  string `yaml:"trigger" json:"trigger"`
	Response string `yaml:"response" json:"response"`
}

// Textbook is an entry of the textbook library.
type Textbook struct {
	ID       int    `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Subject  string `yaml:"subject" json:"subject"`
	Chapters int    `yaml:"chapters" json:"chapters"`
	Icon     string `yaml:"icon" json:"icon"`
}

// Video is an entry of the video library.
type Video struct {
	ID        int    `yaml:"id" json:"id"`
	Title     string `yaml:"title" json:"title"`
	Subject   string `yaml:"subject" json:"subject"`
	Duration  string `yaml:"duration" json:"duration"`
	Thumbnail string `yaml:"thumbnail" json:"thumbnail"`
}

// Stat is a headline figure shown on a page.
type Stat struct {
	Value  string `yaml:"value" json:"value"`
	Suffix string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	Label  string `yaml:"label" json:"label"`
}

// Item is a titled entry inside a page section.
type Item struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Points      []string `yaml:"points,omitempty" json:"points,omitempty"`
}

type Section struct {
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body,omitempty" json:"body,omitempty"`
	Items []Item `yaml:"items,omitempty" json:"items,omitempty"`
}

// Page is one informational page of the site.
type Page struct {
	Slug     string    `yaml:"slug" json:"slug"`
	Title    string    `yaml:"title" json:"title"`
	Headline string    `yaml:"headline" json:"headline"`
	Summary  string    `yaml:"summary" json:"summary"`
	Stats    []Stat    `yaml:"stats,omitempty" json:"stats,omitempty"`
	Sections []Section `yaml:"sections,omitempty" json:"sections,omitempty"`
}

// contentError reports malformed site content.
type contentError struct {
	message string
}

func (e *contentError) Error() string {
	return e.message
}

func NewValidationError(message string) error {
	return &contentError{message: message}
}

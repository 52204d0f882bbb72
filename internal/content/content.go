// Package content loads the site's fixed tables: pages, the quiz bank, the
// chatbot script, and the library catalogs. The catalog is parsed once and
// treated as read-only afterwards; every widget session shares it.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"skillcycle/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

// InquiryType is one choice of the contact form's inquiry selector.
type InquiryType struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// ChatScript is the chatbot's canned conversation material.
type ChatScript struct {
	Greeting string               `yaml:"greeting"`
	Fallback string               `yaml:"fallback"`
	Rules    []domain.KeywordRule `yaml:"rules"`
}

// Catalog holds every content table. Callers must not mutate it.
type Catalog struct {
	Pages        []domain.Page     `yaml:"pages"`
	InquiryTypes []InquiryType     `yaml:"inquiry_types"`
	Quiz         []domain.Question `yaml:"quiz"`
	Chat         ChatScript        `yaml:"chat"`
	Textbooks    []domain.Textbook `yaml:"textbooks"`
	Videos       []domain.Video    `yaml:"videos"`
}

// Load parses the embedded content document.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes and validates a content document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse content: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the widgets rely on.
func (c *Catalog) Validate() error {
	slugs := make(map[string]struct{}, len(c.Pages))
	for _, p := range c.Pages {
		if p.Slug == "" {
			return fmt.Errorf("content: page %q has no slug", p.Title)
		}
		if _, dup := slugs[p.Slug]; dup {
			return fmt.Errorf("content: duplicate page slug %q", p.Slug)
		}
		slugs[p.Slug] = struct{}{}
	}

	if len(c.Quiz) == 0 {
		return fmt.Errorf("content: quiz bank is empty")
	}
	for i, q := range c.Quiz {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("content: quiz[%d]: %w", i, err)
		}
	}

	if strings.TrimSpace(c.Chat.Fallback) == "" {
		return fmt.Errorf("content: chat fallback response is required")
	}
	for i, r := range c.Chat.Rules {
		if strings.TrimSpace(r.Trigger) == "" {
			return fmt.Errorf("content: chat rule %d has an empty trigger", i)
		}
	}

	bookIDs := make(map[int]struct{}, len(c.Textbooks))
	for _, b := range c.Textbooks {
		if _, dup := bookIDs[b.ID]; dup {
			return fmt.Errorf("content: duplicate textbook id %d", b.ID)
		}
		if b.Chapters < 1 {
			return fmt.Errorf("content: textbook %d has no chapters", b.ID)
		}
		bookIDs[b.ID] = struct{}{}
	}

	videoIDs := make(map[int]struct{}, len(c.Videos))
	for _, v := range c.Videos {
		if _, dup := videoIDs[v.ID]; dup {
			return fmt.Errorf("content: duplicate video id %d", v.ID)
		}
		videoIDs[v.ID] = struct{}{}
	}
	return nil
}

// Page returns the page with the given slug.
func (c *Catalog) Page(slug string) (domain.Page, bool) {
	for _, p := range c.Pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.Page{}, false
}

// InquiryTypeValues returns the accepted contact inquiry type values.
func (c *Catalog) InquiryTypeValues() []string {
	values := make([]string, len(c.InquiryTypes))
	for i, t := range c.InquiryTypes {
		values[i] = t.Value
	}
	return values
}

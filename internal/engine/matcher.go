package engine

import (
	"strings"

	"skillcycle/internal/domain"
)

// Matcher picks a canned reply for free text. Rules are scanned in table
// order and the first trigger contained in the input wins, so a broader
// trigger listed earlier shadows a more specific one listed later.
type Matcher struct {
	rules    []domain.KeywordRule
	fallback string
}

// NewMatcher copies rules, lower-casing each trigger.
func NewMatcher(rules []domain.KeywordRule, fallback string) *Matcher {
	m := &Matcher{rules: make([]domain.KeywordRule, len(rules)), fallback: fallback}
	for i, r := range rules {
		m.rules[i] = domain.KeywordRule{Trigger: strings.ToLower(r.Trigger), Response: r.Response}
	}
	return m
}

// Match returns the first rule whose trigger occurs in input.
func (m *Matcher) Match(input string) (domain.KeywordRule, bool) {
	lower := strings.ToLower(input)
	for _, r := range m.rules {
		if strings.Contains(lower, r.Trigger) {
			return r, true
		}
	}
	return domain.KeywordRule{}, false
}

// Respond returns the matched reply or the fallback.
func (m *Matcher) Respond(input string) string {
	if r, ok := m.Match(input); ok {
		return r.Response
	}
	return m.fallback
}

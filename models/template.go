package models

import (
	"regexp"
	"strings"
	"time"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Template is a reusable text snippet with {{name}} placeholders.
type Template struct {
	// ID is the creation timestamp in Unix milliseconds.
	ID int64 `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Content is the template body.
	Content string `json:"content"`

	// Shortcut is an optional key hint shown by front-ends.
	Shortcut string `json:"shortcut,omitempty"`

	// Created is when the template was first saved.
	Created time.Time `json:"created"`

	// Modified is set on every edit after creation.
	Modified *time.Time `json:"modified,omitempty"`

	// UsageCount counts renders.
	UsageCount int `json:"usageCount"`

	// LastUsed is the time of the latest render.
	LastUsed *time.Time `json:"lastUsed,omitempty"`
}

// EffectiveTime is the version used to resolve merge conflicts:
// Modified when present, Created otherwise.
func (t Template) EffectiveTime() time.Time {
	if t.Modified != nil {
		return *t.Modified
	}
	return t.Created
}

// Variables returns the distinct placeholder names in order of first use.
func (t Template) Variables() []string {
	return ExtractVariables(t.Content)
}

// Render substitutes every {{name}} with values[name]. Placeholders without
// a value are left untouched.
func (t Template) Render(values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(t.Content, func(m string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(m, "{{"), "}}")
		if v, ok := values[name]; ok {
			return v
		}
		return m
	})
}

// ExtractVariables lists distinct {{name}} placeholders in content.
func ExtractVariables(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}

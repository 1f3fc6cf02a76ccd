// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
	"time"
)

// SourceKind discriminates the variants of [Source].
type SourceKind string

const (
	// SourceUnknown is used when the capturer supplied nothing usable.
	SourceUnknown SourceKind = "unknown"

	// SourceWeb marks content copied from a web page.
	SourceWeb SourceKind = "web"

	// SourceManual marks content entered or captured directly by the user.
	SourceManual SourceKind = "manual"

	// SourceTemplate marks content produced by rendering a template.
	SourceTemplate SourceKind = "template"
)

// Source describes where a clipboard entry came from.
//
// It is a tagged variant: Kind selects the meaning and only [SourceWeb]
// carries URL, Hostname and Title. The value is resolved exactly once, when
// the entry is captured, by [ParseSource].
type Source struct {
	// Kind is the variant tag.
	Kind SourceKind `json:"type"`

	// URL is the page address for web sources.
	URL string `json:"url,omitempty"`

	// Hostname is the host part of URL.
	Hostname string `json:"hostname,omitempty"`

	// Title is the page title for web sources.
	Title string `json:"title,omitempty"`

	// CapturedAt is when the capturer observed the content.
	CapturedAt *time.Time `json:"timestamp,omitempty"`
}

// UnknownSource returns the zero-information source.
func UnknownSource() Source {
	return Source{Kind: SourceUnknown}
}

// ManualSource returns a source for user-entered content.
func ManualSource() Source {
	return Source{Kind: SourceManual}
}

// TemplateSource returns a source for template-rendered content.
func TemplateSource() Source {
	return Source{Kind: SourceTemplate}
}

// WebSource builds a web source, deriving Hostname from rawURL.
func WebSource(rawURL, title string) Source {
	return Source{
		Kind:     SourceWeb,
		URL:      rawURL,
		Hostname: hostnameOf(rawURL),
		Title:    title,
	}
}

// IsWeb reports whether the source is a web page.
func (s Source) IsWeb() bool {
	return s.Kind == SourceWeb
}

// Label is a short human-readable description used by front-ends.
func (s Source) Label() string {
	switch s.Kind {
	case SourceWeb:
		if s.Hostname != "" {
			return s.Hostname
		}
		return "web"
	case "":
		return string(SourceUnknown)
	default:
		return string(s.Kind)
	}
}

// ParseSource resolves the loosely typed source hint sent by capturers.
//
// Accepted shapes:
//   - null or empty: unknown;
//   - a string starting with http: web source for that URL;
//   - any other string: a source of that kind (e.g. "manual");
//   - an object with type/url/hostname/title/timestamp fields.
//
// Malformed input never fails capture; it resolves to unknown.
func ParseSource(raw json.RawMessage) Source {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return UnknownSource()
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return UnknownSource()
		}
		return sourceFromString(s)
	}

	var obj Source
	if err := json.Unmarshal(raw, &obj); err != nil {
		return UnknownSource()
	}
	return obj.normalize()
}

func sourceFromString(s string) Source {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return UnknownSource()
	case strings.HasPrefix(s, "http"):
		return WebSource(s, "")
	default:
		return Source{Kind: SourceKind(strings.ToLower(s))}
	}
}

func (s Source) normalize() Source {
	if s.Kind == "" {
		if s.URL != "" {
			s.Kind = SourceWeb
		} else {
			s.Kind = SourceUnknown
		}
	}
	if s.Kind == SourceWeb && s.Hostname == "" {
		s.Hostname = hostnameOf(s.URL)
	}
	return s
}

func hostnameOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package category derives the content type, tags and preview of captured
// clipboard text. All functions are pure and safe for concurrent use.
package category

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/clip-keeper/models"
)

// Tag values attached in addition to the content type.
const (
	TagLong      = "long"
	TagShort     = "short"
	TagSensitive = "sensitive"
	TagDate      = "date"
)

// PreviewLength is the number of characters kept by [Preview].
const PreviewLength = 100

const (
	longThreshold  = 500
	shortThreshold = 50
	minPhoneDigits = 10
)

// ErrEmptyContent is returned for input that is empty after trimming.
var ErrEmptyContent = errors.New("content is empty")

var (
	urlPattern   = regexp.MustCompile(`(?i)^https?://\S+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	datePattern  = regexp.MustCompile(`\d{4}[-/]\d{2}[-/]\d{2}`)

	// evaluated in order; the first match wins
	codePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\s*<[^>]+>`),
		regexp.MustCompile(`^\s*\{[\s\S]*\}\s*$`),
		regexp.MustCompile(`^\s*function\s+\w+`),
		regexp.MustCompile(`^\s*def\s+\w+`),
		regexp.MustCompile(`^\s*class\s+\w+`),
		regexp.MustCompile(`^\s*#include`),
		regexp.MustCompile(`^\s*import\s+`),
		regexp.MustCompile(`(?i)^\s*SELECT\s+.*FROM`),
		regexp.MustCompile(`^\s*\$\w+`),
		regexp.MustCompile(`^\s*git\s+`),
	}
)

// Result is the outcome of classifying one piece of content.
type Result struct {
	Type    models.ContentType
	Tags    []string
	Preview string
}

// Classify returns the content type and tags for text.
//
// The type is decided on the trimmed text in this order: url, email, code,
// phone, text. Length and keyword tags look at text exactly as given.
func Classify(text string) (models.ContentType, []string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil, ErrEmptyContent
	}

	ct := detectType(trimmed)
	return ct, tagsFor(text, ct), nil
}

// Analyze classifies text and also builds its preview from the trimmed form.
func Analyze(text string) (Result, error) {
	ct, tags, err := Classify(text)
	if err != nil {
		return Result{}, err
	}
	return Result{Type: ct, Tags: tags, Preview: Preview(strings.TrimSpace(text))}, nil
}

// Preview returns text unchanged when it has at most [PreviewLength]
// characters, otherwise its first [PreviewLength] characters and "...".
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text
	}

	n := 0
	for i := range text {
		if n == PreviewLength {
			return text[:i] + "..."
		}
		n++
	}
	return text
}

func detectType(text string) models.ContentType {
	if urlPattern.MatchString(text) {
		return models.TypeURL
	}

	if emailPattern.MatchString(text) {
		return models.TypeEmail
	}

	for _, p := range codePatterns {
		if p.MatchString(text) {
			return models.TypeCode
		}
	}

	if phonePattern.MatchString(text) && countDigits(text) >= minPhoneDigits {
		return models.TypePhone
	}

	return models.TypeText
}

func tagsFor(text string, ct models.ContentType) []string {
	tags := []string{string(ct)}

	switch n := utf8.RuneCountInString(text); {
	case n > longThreshold:
		tags = append(tags, TagLong)
	case n < shortThreshold:
		tags = append(tags, TagShort)
	}

	if strings.Contains(text, "password") || strings.Contains(text, "token") {
		tags = append(tags, TagSensitive)
	}

	if datePattern.MatchString(text) {
		tags = append(tags, TagDate)
	}

	return tags
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ClipboardItem is a single captured clipboard entry.
//
// JSON field names follow the snapshot format shared by every device, so an
// item written by one client decodes unchanged on another.
type ClipboardItem struct {
	// ID is the creation timestamp in Unix milliseconds. IDs are unique and
	// strictly increasing within one device.
	ID int64 `json:"id"`

	// Content is the captured text with surrounding whitespace removed.
	Content string `json:"content"`

	// Type is the category derived from Content at capture time.
	Type ContentType `json:"type"`

	// Source records where the content was captured.
	Source Source `json:"source"`

	// Timestamp is the capture time. It is also the last-writer-wins
	// version used when merging snapshots.
	Timestamp time.Time `json:"timestamp"`

	// Favorite marks pinned entries.
	Favorite bool `json:"favorite"`

	// Tags are derived labels (type, length bucket, sensitive, date).
	Tags []string `json:"tags"`

	// Preview is Content cut to 100 characters plus an ellipsis.
	Preview string `json:"preview"`

	// UsageCount counts how many times the entry was copied back.
	UsageCount int `json:"usageCount,omitempty"`

	// LastUsed is when the entry was last copied back.
	LastUsed *time.Time `json:"lastUsed,omitempty"`
}

// HasTag reports whether tag is attached to the item.
func (c ClipboardItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand out of a locked store.
func (c ClipboardItem) Clone() ClipboardItem {
	out := c
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	if c.LastUsed != nil {
		t := *c.LastUsed
		out.LastUsed = &t
	}
	if c.Source.CapturedAt != nil {
		t := *c.Source.CapturedAt
		out.Source.CapturedAt = &t
	}
	return out
}

// CloneItems deep-copies a history slice.
func CloneItems(items []ClipboardItem) []ClipboardItem {
	if items == nil {
		return nil
	}
	out := make([]ClipboardItem, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// humanizeError turns core error strings into short status lines.
func humanizeError(errText string) string {
	s := strings.ToLower(errText)
	switch {
	case strings.Contains(s, "connection refused"),
		strings.Contains(s, "dial tcp"),
		strings.Contains(s, "no such host"),
		strings.Contains(s, "network is unreachable"),
		strings.Contains(s, "i/o timeout"),
		strings.Contains(s, "context deadline exceeded"):
		return "Sync server unreachable"
	case strings.Contains(s, "sync is disabled"):
		return "Cloud sync is off"
	case strings.Contains(s, "sync already in progress"):
		return "Sync already running"
	case strings.Contains(s, "token rejected"):
		return "Sync token rejected, check ADAPTER_TOKEN"
	}
	return errText
}

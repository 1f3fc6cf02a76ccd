// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/clip-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, status *models.SyncStatus) string {
	var b strings.Builder

	b.WriteString("Application: clip-keeper\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\nDate: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\nCommit: ")
	b.WriteString(info.BuildCommit())

	if status != nil {
		b.WriteString("\n\n")
		b.WriteString(renderSyncStatus(*status))
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}

func renderSyncStatus(s models.SyncStatus) string {
	if !s.Enabled {
		return "Cloud sync: off"
	}

	var b strings.Builder
	b.WriteString("Cloud sync: ")
	b.WriteString(string(s.State))
	b.WriteString("\nDevice: ")
	b.WriteString(s.DeviceID)
	b.WriteString("\nDevices on account: ")
	b.WriteString(strconv.Itoa(s.DeviceCount))
	b.WriteString("\nLast sync: ")
	if s.LastSync != nil {
		b.WriteString(s.LastSync.Local().Format(time.DateTime))
	} else {
		b.WriteString("never")
	}
	if s.LastError != "" {
		b.WriteString("\nLast error: ")
		b.WriteString(humanizeError(s.LastError))
	}
	return b.String()
}

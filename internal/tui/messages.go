package tui

import "github.com/MKhiriev/clip-keeper/models"

type historyLoadedMsg struct {
	items []models.ClipboardItem
	err   error
}

// actionDoneMsg reports a history mutation; the list is reloaded after it.
type actionDoneMsg struct {
	status string
	err    error
}

type syncDoneMsg struct {
	report *models.SyncReport
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

type refreshTickMsg struct{}

type clearStatusMsg struct{}

type statusLoadedMsg struct {
	status *models.SyncStatus
	err    error
}

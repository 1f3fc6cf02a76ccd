package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/clip-keeper/internal/export"
	"github.com/MKhiriev/clip-keeper/models"
)

const (
	refreshInterval = 2 * time.Second
	statusLifetime  = 3 * time.Second
	defaultRows     = 15
)

type historyModel struct {
	ctx     context.Context
	handler MessageHandler
	build   models.AppBuildInfo

	items        []models.ClipboardItem
	idx          int
	loading      bool
	syncing      bool
	confirmClear bool
	showInfo     bool
	syncStatus   *models.SyncStatus

	status string
	errMsg string
	height int

	spinner   spinner.Model
	exportDir string
	now       func() time.Time
}

func newHistoryModel(ctx context.Context, handler MessageHandler, build models.AppBuildInfo) historyModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return historyModel{
		ctx:       ctx,
		handler:   handler,
		build:     build,
		loading:   true,
		spinner:   s,
		exportDir: ".",
		now:       time.Now,
	}
}

func (m historyModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadHistory(), cmdRefreshTick())
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err.Error())
			return m, nil
		}
		m.items = msg.items
		m.clampIndex()
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err.Error())
			return m, m.cmdLoadHistory()
		}
		m.errMsg = ""
		m.status = msg.status
		return m, tea.Batch(m.cmdLoadHistory(), cmdClearStatus())
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err.Error())
			return m, nil
		}
		m.errMsg = ""
		m.status = syncSummary(msg.report)
		return m, tea.Batch(m.cmdLoadHistory(), cmdClearStatus())
	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = "Export failed: " + humanizeError(msg.err.Error())
			return m, nil
		}
		m.errMsg = ""
		m.status = "Exported to " + msg.path
		return m, cmdClearStatus()
	case statusLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err.Error())
			return m, nil
		}
		m.syncStatus = msg.status
		return m, nil
	case refreshTickMsg:
		if m.loading {
			return m, cmdRefreshTick()
		}
		return m, tea.Batch(m.cmdLoadHistory(), cmdRefreshTick())
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m historyModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirmClear {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmClear = false
			return m, m.cmdAction(models.Message{Action: models.ActionClearHistory}, "History cleared")
		case key.Matches(msg, keys.no):
			m.confirmClear = false
		}
		return m, nil
	}

	if m.showInfo {
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.info):
			m.showInfo = false
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadHistory()
	case key.Matches(msg, keys.clear):
		if len(m.items) > 0 {
			m.confirmClear = true
		}
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, tea.Batch(m.cmdSync(), m.spinner.Tick)
	case key.Matches(msg, keys.export):
		return m, m.cmdExport()
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, m.cmdLoadStatus()
	}

	item, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.copy):
		return m, m.cmdAction(models.Message{Action: models.ActionCopyItem, ID: item.ID}, "Copied to clipboard")
	case key.Matches(msg, keys.favorite):
		status := "Added to favorites"
		if item.Favorite {
			status = "Removed from favorites"
		}
		return m, m.cmdAction(models.Message{Action: models.ActionToggleFavorite, ID: item.ID}, status)
	case key.Matches(msg, keys.delete):
		return m, m.cmdAction(models.Message{Action: models.ActionDeleteClipboardItem, ID: item.ID}, "Item deleted")
	}
	return m, nil
}

func (m historyModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.build, m.syncStatus))
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("No clipboard history yet. Copy something!")
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n\n")
	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.syncing:
		b.WriteString(m.spinner.View() + " Syncing...")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}

	if m.confirmClear {
		b.WriteString("\n\n")
		b.WriteString(confirmStyle.Render(fmt.Sprintf("Clear all %d items? y/n", len(m.items))))
	}

	title := fmt.Sprintf("CLIPBOARD HISTORY (%d)", len(m.items))
	hotKeys := "↑/↓: move  c/enter: copy  f: favorite  d: delete  D: clear  s: sync  x: export  i: info"
	return appStyle.Render(renderPage(title, b.String(), hotKeys))
}

func (m historyModel) renderList() string {
	rows := defaultRows
	if m.height > 12 {
		rows = m.height - 12
	}

	start := 0
	if m.idx >= rows {
		start = m.idx - rows + 1
	}
	end := min(start+rows, len(m.items))

	now := m.now()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := m.items[i]

		marker := "  "
		if item.Favorite {
			marker = favoriteStyle.Render("★ ")
		}

		line := fmt.Sprintf("%-5s %s  %s",
			item.Type,
			fitText(oneLine(item.Content), 48),
			helpStyle.Render(item.Source.Label()+", "+relativeTime(item.Timestamp, now)))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, marker+line)
	}
	return strings.Join(lines, "\n")
}

func (m historyModel) selected() (models.ClipboardItem, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.ClipboardItem{}, false
	}
	return m.items[m.idx], true
}

func (m *historyModel) clampIndex() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m historyModel) send(msg models.Message) models.MessageResponse {
	return m.handler.Handle(m.ctx, msg)
}

func (m historyModel) cmdLoadHistory() tea.Cmd {
	return func() tea.Msg {
		resp := m.send(models.Message{Action: models.ActionGetClipboardHistory})
		if resp.Error != "" {
			return historyLoadedMsg{err: errors.New(resp.Error)}
		}
		return historyLoadedMsg{items: resp.History}
	}
}

func (m historyModel) cmdAction(msg models.Message, okStatus string) tea.Cmd {
	return func() tea.Msg {
		resp := m.send(msg)
		if resp.Error != "" {
			return actionDoneMsg{err: errors.New(resp.Error)}
		}
		return actionDoneMsg{status: okStatus}
	}
}

func (m historyModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		resp := m.send(models.Message{Action: models.ActionSyncNow})
		if resp.Error != "" {
			return syncDoneMsg{err: errors.New(resp.Error)}
		}
		return syncDoneMsg{report: resp.Report}
	}
}

func (m historyModel) cmdLoadStatus() tea.Cmd {
	return func() tea.Msg {
		resp := m.send(models.Message{Action: models.ActionGetSyncStatus})
		if resp.Error != "" {
			return statusLoadedMsg{err: errors.New(resp.Error)}
		}
		return statusLoadedMsg{status: resp.Status}
	}
}

func (m historyModel) cmdExport() tea.Cmd {
	return func() tea.Msg {
		resp := m.send(models.Message{Action: models.ActionExportHistory, Format: string(export.FormatJSON)})
		if resp.Error != "" {
			return exportDoneMsg{err: errors.New(resp.Error)}
		}

		path := filepath.Join(m.exportDir, export.Filename(export.FormatJSON, m.now()))
		if err := os.WriteFile(path, []byte(resp.Data), 0o600); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func cmdRefreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshTickMsg{} })
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func syncSummary(report *models.SyncReport) string {
	if report == nil {
		return "Sync complete"
	}
	if report.Merged {
		return fmt.Sprintf("Synced and merged, %d items", report.Items)
	}
	return fmt.Sprintf("Uploaded %d items", report.Items)
}

// Package export writes the clipboard history to portable files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/clip-keeper/models"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatTXT, FormatYAML:
		return true
	}
	return false
}

// ParseFormat parses a format name. An empty name means JSON.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatJSON, nil
	}
	if s == "yml" {
		return FormatYAML, nil
	}

	f := Format(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w %q (valid: json, csv, txt, yaml)", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// Filename is the suggested file name for an export taken at now.
func Filename(f Format, now time.Time) string {
	return fmt.Sprintf("clipkeeper-export-%s.%s", now.UTC().Format(time.DateOnly), f)
}

// Document is the full export: history plus the settings in effect.
type Document struct {
	History    []models.ClipboardItem
	Settings   models.Settings
	ExportedAt time.Time
}

type exportDocument struct {
	History    []exportItem    `json:"history" yaml:"history"`
	Settings   models.Settings `json:"settings,omitempty" yaml:"settings,omitempty"`
	ExportDate string          `json:"exportDate" yaml:"exportDate"`
}

type exportItem struct {
	ID         int64    `json:"id" yaml:"id"`
	Content    string   `json:"content" yaml:"content"`
	Type       string   `json:"type" yaml:"type"`
	Source     string   `json:"source" yaml:"source"`
	URL        string   `json:"url,omitempty" yaml:"url,omitempty"`
	Timestamp  string   `json:"timestamp" yaml:"timestamp"`
	Favorite   bool     `json:"favorite" yaml:"favorite"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	UsageCount int      `json:"usageCount,omitempty" yaml:"usageCount,omitempty"`
}

func toExportItem(item models.ClipboardItem) exportItem {
	return exportItem{
		ID:         item.ID,
		Content:    item.Content,
		Type:       item.Type.String(),
		Source:     item.Source.Label(),
		URL:        item.Source.URL,
		Timestamp:  item.Timestamp.UTC().Format(time.RFC3339),
		Favorite:   item.Favorite,
		Tags:       item.Tags,
		UsageCount: item.UsageCount,
	}
}

func (d Document) export() exportDocument {
	items := make([]exportItem, len(d.History))
	for i, item := range d.History {
		items[i] = toExportItem(item)
	}
	return exportDocument{
		History:    items,
		Settings:   d.Settings,
		ExportDate: d.ExportedAt.UTC().Format(time.RFC3339),
	}
}

// Write encodes doc to w in format f.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc.export())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc.export()); err != nil {
			return err
		}
		return enc.Close()
	case FormatCSV:
		return writeCSV(w, doc.History)
	case FormatTXT:
		return writeTXT(w, doc.History)
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, f)
	}
}

var csvHeader = []string{"id", "timestamp", "type", "favorite", "source", "content"}

func writeCSV(w io.Writer, items []models.ClipboardItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, item := range items {
		record := []string{
			strconv.FormatInt(item.ID, 10),
			item.Timestamp.UTC().Format(time.RFC3339),
			item.Type.String(),
			strconv.FormatBool(item.Favorite),
			item.Source.Label(),
			item.Content,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeTXT writes one entry per block, blocks separated by a dashed line.
func writeTXT(w io.Writer, items []models.ClipboardItem) error {
	for i, item := range items {
		if i > 0 {
			if _, err := io.WriteString(w, "\n---\n\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%s] %s\n%s\n",
			item.Timestamp.UTC().Format(time.DateTime), item.Type, item.Content); err != nil {
			return err
		}
	}
	return nil
}

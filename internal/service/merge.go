// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"

	"github.com/MKhiriev/clip-keeper/models"
)

// MergeSnapshots combines the local and the remote snapshot.
//
// Items are unioned by id; when both sides hold an id the later timestamp
// wins and equal timestamps keep the local copy. The result is ordered by
// timestamp, newest first, with the larger id first on equal timestamps.
// Templates are unioned by id the same way using Modified, or Created when
// unmodified, and keep local order followed by remote-only templates.
// Settings take remote values except theme, which stays local when set.
// The result carries the local device id and the larger lastModified.
//
// MergeSnapshots does no I/O and never mutates its arguments.
func MergeSnapshots(local, remote models.SyncSnapshot) models.SyncSnapshot {
	return models.SyncSnapshot{
		ClipboardHistory: mergeItems(local.ClipboardHistory, remote.ClipboardHistory),
		Templates:        mergeTemplates(local.Templates, remote.Templates),
		Settings:         mergeSettings(local.Settings, remote.Settings),
		LastModified:     max(local.LastModified, remote.LastModified),
		DeviceID:         local.DeviceID,
	}
}

func mergeItems(local, remote []models.ClipboardItem) []models.ClipboardItem {
	byID := make(map[int64]models.ClipboardItem, len(local)+len(remote))
	for _, item := range local {
		if existing, ok := byID[item.ID]; ok && !item.Timestamp.After(existing.Timestamp) {
			continue
		}
		byID[item.ID] = item
	}
	for _, item := range remote {
		if existing, ok := byID[item.ID]; ok && !item.Timestamp.After(existing.Timestamp) {
			continue
		}
		byID[item.ID] = item
	}

	out := make([]models.ClipboardItem, 0, len(byID))
	for _, item := range byID {
		out = append(out, item.Clone())
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func mergeTemplates(local, remote []models.Template) []models.Template {
	byID := make(map[int64]models.Template, len(local)+len(remote))
	order := make([]int64, 0, len(local)+len(remote))

	for _, tpl := range local {
		if _, ok := byID[tpl.ID]; !ok {
			order = append(order, tpl.ID)
		}
		byID[tpl.ID] = tpl
	}
	for _, tpl := range remote {
		existing, ok := byID[tpl.ID]
		if !ok {
			order = append(order, tpl.ID)
			byID[tpl.ID] = tpl
			continue
		}
		if tpl.EffectiveTime().After(existing.EffectiveTime()) {
			byID[tpl.ID] = tpl
		}
	}

	out := make([]models.Template, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

func mergeSettings(local, remote models.Settings) models.Settings {
	out := make(models.Settings, len(local)+len(remote))
	for k, v := range local {
		out[k] = v
	}
	for k, v := range remote {
		out[k] = v
	}
	if theme, ok := local[models.SettingTheme]; ok && theme != nil && theme != "" {
		out[models.SettingTheme] = theme
	}
	return out
}

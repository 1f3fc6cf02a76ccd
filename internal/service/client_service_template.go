package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/models"
)

type templateService struct {
	kv           store.KeyValueStore
	clipboard    ClipboardService
	entitlements Entitlements

	mu        sync.Mutex
	templates []models.Template
	lastID    int64

	now    func() time.Time
	logger *logger.Logger
}

// NewTemplateService builds the template store. Rendered templates are
// added to clipboard with a template source.
func NewTemplateService(kv store.KeyValueStore, clipboard ClipboardService, entitlements Entitlements, logger *logger.Logger) TemplateService {
	return &templateService{
		kv:           kv,
		clipboard:    clipboard,
		entitlements: entitlements,
		now:          time.Now,
		logger:       logger,
	}
}

func (t *templateService) Load(ctx context.Context) error {
	var templates []models.Template
	found, err := loadJSON(ctx, t.kv, store.KeyTemplates, &templates)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !found || len(templates) == 0 {
		t.templates = t.defaultTemplates()
		return t.save(ctx)
	}

	t.templates = templates
	for _, tpl := range templates {
		if tpl.ID > t.lastID {
			t.lastID = tpl.ID
		}
	}

	if limit := t.entitlements.Limits().Templates; limit > 0 && len(t.templates) > limit {
		t.logger.Info().Str("func", "*templateService.Load").Int("limit", limit).Int("stored", len(t.templates)).Msg("trimming templates to plan limit")
		t.templates = t.templates[:limit]
		return t.save(ctx)
	}
	return nil
}

func (t *templateService) List() []models.Template {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Template(nil), t.templates...)
}

func (t *templateService) Save(ctx context.Context, template models.Template) (models.Template, error) {
	template.Name = strings.TrimSpace(template.Name)
	template.Description = strings.TrimSpace(template.Description)
	template.Content = strings.TrimSpace(template.Content)
	template.Shortcut = strings.TrimSpace(template.Shortcut)
	if template.Name == "" || template.Content == "" {
		return models.Template{}, ErrInvalidTemplate
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now().UTC()

	if template.ID == 0 {
		if limit := t.entitlements.Limits().Templates; limit > 0 && len(t.templates) >= limit {
			return models.Template{}, ErrTemplateLimitReached
		}
		template.ID = t.nextID(now)
		template.Created = now
		template.Modified = nil
		template.UsageCount = 0
		template.LastUsed = nil
		t.templates = append(t.templates, template)
		return template, t.save(ctx)
	}

	i := t.indexOf(template.ID)
	if i < 0 {
		return models.Template{}, ErrTemplateNotFound
	}

	existing := t.templates[i]
	existing.Name = template.Name
	existing.Description = template.Description
	existing.Content = template.Content
	existing.Shortcut = template.Shortcut
	existing.Modified = &now
	t.templates[i] = existing

	return existing, t.save(ctx)
}

func (t *templateService) Delete(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return ErrTemplateNotFound
	}
	t.templates = append(t.templates[:i:i], t.templates[i+1:]...)
	return t.save(ctx)
}

func (t *templateService) Use(ctx context.Context, id int64, values map[string]string) (string, error) {
	t.mu.Lock()
	i := t.indexOf(id)
	if i < 0 {
		t.mu.Unlock()
		return "", ErrTemplateNotFound
	}

	now := t.now().UTC()
	t.templates[i].UsageCount++
	t.templates[i].LastUsed = &now
	rendered := t.templates[i].Render(values)
	err := t.save(ctx)
	t.mu.Unlock()

	if err != nil {
		return "", err
	}

	if _, err = t.clipboard.Add(ctx, rendered, models.TemplateSource()); err != nil {
		return rendered, fmt.Errorf("add rendered template to history: %w", err)
	}
	return rendered, nil
}

func (t *templateService) Replace(ctx context.Context, templates []models.Template) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.templates = append([]models.Template(nil), templates...)
	for _, tpl := range t.templates {
		if tpl.ID > t.lastID {
			t.lastID = tpl.ID
		}
	}
	return t.save(ctx)
}

func (t *templateService) save(ctx context.Context) error {
	templates := t.templates
	if templates == nil {
		templates = []models.Template{}
	}
	return saveJSON(ctx, t.kv, store.KeyTemplates, templates)
}

func (t *templateService) indexOf(id int64) int {
	for i := range t.templates {
		if t.templates[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *templateService) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}

func (t *templateService) defaultTemplates() []models.Template {
	now := t.now().UTC()
	return []models.Template{
		{
			ID:          t.nextID(now),
			Name:        "Email Reply",
			Description: "Professional email response template",
			Content:     "Hi {{name}},\n\nThank you for your email. I'll review this and get back to you by {{date}}.\n\nBest regards,\n{{myname}}",
			Created:     now,
		},
		{
			ID:          t.nextID(now),
			Name:        "Meeting Request",
			Description: "Schedule a meeting with someone",
			Content:     "Hi {{name}},\n\nI'd like to schedule a meeting to discuss {{topic}}. Are you available on {{date}} at {{time}}?\n\nPlease let me know if this works for you.\n\nBest regards,\n{{myname}}",
			Created:     now,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/MKhiriev/go-saforia/internal/logger"
	"github.com/MKhiriev/go-saforia/models"
)

// EntriesFileName is the catalog file inside the data directory.
const EntriesFileName = "postfixes.json"

type entryCatalog struct {
	path   string
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewEntryCatalog returns an [EntryCatalog] backed by
// <dataDir>/postfixes.json. ids assigns the id of every new entry.
func NewEntryCatalog(dataDir string, ids IDGenerator, logger *logger.Logger) EntryCatalog {
	return &entryCatalog{
		path:   filepath.Join(dataDir, EntriesFileName),
		ids:    ids,
		now:    time.Now,
		logger: logger.GetChildLogger("entry_catalog"),
	}
}

func (c *entryCatalog) ListVisible(ctx context.Context, active *string) []models.Entry {
	all := c.readAll(ctx)

	visible := make([]models.Entry, 0, len(all))
	for _, e := range all {
		if e.VisibleUnder(active) {
			visible = append(visible, e)
		}
	}

	sortForDisplay(visible)
	return visible
}

func (c *entryCatalog) List(ctx context.Context) []models.Entry {
	return c.readAll(ctx)
}

func (c *entryCatalog) Add(ctx context.Context, label, postfix, methodID string, active *string) (models.Entry, error) {
	log := c.loggerFor(ctx)

	entry := models.Entry{
		ID:        c.ids.Generate(),
		Label:     label,
		Postfix:   postfix,
		MethodID:  methodID,
		CreatedAt: c.now().Unix(),
	}
	if active != nil {
		entry = entry.WithFingerprint(*active)
	}

	all := c.readAll(ctx)
	all = slices.Insert(all, 0, entry)

	if err := c.writeAll(all); err != nil {
		log.Err(err).
			Str("func", "entryCatalog.Add").
			Str("id", entry.ID).
			Msg("failed to save catalog")
		return models.Entry{}, err
	}

	log.Debug().
		Str("func", "entryCatalog.Add").
		Str("id", entry.ID).
		Str("fingerprint", entry.FingerprintValue()).
		Msg("entry added")
	return entry, nil
}

func (c *entryCatalog) Delete(ctx context.Context, id string) (bool, error) {
	log := c.loggerFor(ctx)

	all := c.readAll(ctx)
	before := len(all)
	all = slices.DeleteFunc(all, func(e models.Entry) bool { return e.ID == id })
	if len(all) == before {
		return false, nil
	}

	if err := c.writeAll(all); err != nil {
		log.Err(err).
			Str("func", "entryCatalog.Delete").
			Str("id", id).
			Msg("failed to save catalog")
		return false, err
	}

	return true, nil
}

func (c *entryCatalog) Get(ctx context.Context, id string) (models.Entry, bool) {
	all := c.readAll(ctx)
	idx := slices.IndexFunc(all, func(e models.Entry) bool { return e.ID == id })
	if idx < 0 {
		return models.Entry{}, false
	}
	return all[idx], true
}

func (c *entryCatalog) Update(ctx context.Context, id, label, postfix, methodID string) (models.Entry, error) {
	log := c.loggerFor(ctx)

	all := c.readAll(ctx)
	idx := slices.IndexFunc(all, func(e models.Entry) bool { return e.ID == id })
	if idx < 0 {
		return models.Entry{}, ErrEntryNotFound
	}

	e := &all[idx]
	if label != "" {
		e.Label = label
	}
	if postfix != "" {
		e.Postfix = postfix
	}
	if methodID != "" {
		e.MethodID = methodID
	}

	if err := c.writeAll(all); err != nil {
		log.Err(err).
			Str("func", "entryCatalog.Update").
			Str("id", id).
			Msg("failed to save catalog")
		return models.Entry{}, err
	}

	return *e, nil
}

func (c *entryCatalog) Reorder(ctx context.Context, active *string, orderedIDs []string) error {
	log := c.loggerFor(ctx)

	all := c.readAll(ctx)

	// Current display order of the visible entries, as indexes into all.
	visible := make([]int, 0, len(all))
	for i, e := range all {
		if e.VisibleUnder(active) {
			visible = append(visible, i)
		}
	}
	slices.SortStableFunc(visible, func(a, b int) int {
		return compareForDisplay(all[a], all[b])
	})

	byID := make(map[string]int, len(visible))
	for _, i := range visible {
		byID[all[i].ID] = i
	}

	var order int64
	placed := make(map[int]bool, len(visible))
	for _, id := range orderedIDs {
		i, ok := byID[id]
		if !ok || placed[i] {
			continue
		}
		order++
		all[i].Order = order
		placed[i] = true
	}
	for _, i := range visible {
		if placed[i] {
			continue
		}
		order++
		all[i].Order = order
	}

	if err := c.writeAll(all); err != nil {
		log.Err(err).
			Str("func", "entryCatalog.Reorder").
			Msg("failed to save catalog")
		return err
	}

	return nil
}

func (c *entryCatalog) BindUnboundTo(ctx context.Context, fingerprint string) (int, error) {
	log := c.loggerFor(ctx)

	all := c.readAll(ctx)
	count := 0
	for i := range all {
		if !all[i].IsBound() {
			all[i] = all[i].WithFingerprint(fingerprint)
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}

	if err := c.writeAll(all); err != nil {
		log.Err(err).
			Str("func", "entryCatalog.BindUnboundTo").
			Str("fingerprint", fingerprint).
			Msg("failed to save catalog")
		return 0, err
	}

	log.Info().
		Str("func", "entryCatalog.BindUnboundTo").
		Str("fingerprint", fingerprint).
		Int("count", count).
		Msg("unbound entries bound")
	return count, nil
}

func (c *entryCatalog) ReplaceAll(ctx context.Context, entries []models.Entry) (int, error) {
	log := c.loggerFor(ctx)

	entries = models.NormalizeEntries(entries)
	if err := c.writeAll(entries); err != nil {
		log.Err(err).
			Str("func", "entryCatalog.ReplaceAll").
			Msg("failed to save catalog")
		return 0, err
	}

	log.Info().
		Str("func", "entryCatalog.ReplaceAll").
		Int("count", len(entries)).
		Msg("catalog replaced")
	return len(entries), nil
}

func (c *entryCatalog) MergeNonConflicting(ctx context.Context, entries []models.Entry) (int, error) {
	log := c.loggerFor(ctx)

	all := c.readAll(ctx)

	seen := make(map[string]struct{}, len(all)+len(entries))
	var maxOrder int64
	for _, e := range all {
		seen[e.ID] = struct{}{}
		maxOrder = max(maxOrder, e.Order)
	}
	continueOrder := maxOrder > 0

	count := 0
	for _, e := range models.NormalizeEntries(entries) {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}

		if continueOrder {
			maxOrder++
			e.Order = maxOrder
		}
		all = append(all, e)
		count++
	}
	if count == 0 {
		return 0, nil
	}

	if err := c.writeAll(all); err != nil {
		log.Err(err).
			Str("func", "entryCatalog.MergeNonConflicting").
			Msg("failed to save catalog")
		return 0, err
	}

	log.Info().
		Str("func", "entryCatalog.MergeNonConflicting").
		Int("count", count).
		Msg("entries merged")
	return count, nil
}

func (c *entryCatalog) CountByFingerprint(ctx context.Context) []models.FingerprintCount {
	return CountByFingerprint(c.readAll(ctx))
}

// CountByFingerprint groups entries by fingerprint, "" for unbound, sorted
// by fingerprint.
func CountByFingerprint(entries []models.Entry) []models.FingerprintCount {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.FingerprintValue()]++
	}

	out := make([]models.FingerprintCount, 0, len(counts))
	for fp, n := range counts {
		out = append(out, models.FingerprintCount{Fingerprint: fp, Count: n})
	}
	slices.SortFunc(out, func(a, b models.FingerprintCount) int {
		return cmp.Compare(a.Fingerprint, b.Fingerprint)
	})
	return out
}

// readAll returns the catalog in file order. A missing file is a fresh
// install; an unreadable or malformed one is logged and treated as empty.
func (c *entryCatalog) readAll(ctx context.Context) []models.Entry {
	log := c.loggerFor(ctx)

	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Entry{}
	}
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "entryCatalog.readAll").
			Msg("failed to read catalog, treating as empty")
		return []models.Entry{}
	}

	var file models.EntriesFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Warn().
			Err(err).
			Str("func", "entryCatalog.readAll").
			Msg("malformed catalog, treating as empty")
		return []models.Entry{}
	}

	return models.NormalizeEntries(file.Entries)
}

func (c *entryCatalog) writeAll(entries []models.Entry) error {
	if entries == nil {
		entries = []models.Entry{}
	}
	return writeJSONFile(c.path, models.EntriesFile{Entries: entries})
}

// sortForDisplay puts entries with an explicit order first, ascending, then
// the unordered ones newest first. Ties keep their current relative order.
func sortForDisplay(entries []models.Entry) {
	slices.SortStableFunc(entries, compareForDisplay)
}

func compareForDisplay(a, b models.Entry) int {
	switch {
	case a.Order != 0 && b.Order != 0:
		return cmp.Compare(a.Order, b.Order)
	case a.Order != 0:
		return -1
	case b.Order != 0:
		return 1
	default:
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	}
}

// loggerFor returns the request logger from ctx, or the store's own logger
// when ctx carries none.
func (c *entryCatalog) loggerFor(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, c.logger)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-saforia/internal/logger"
	"github.com/MKhiriev/go-saforia/models"
)

type sequentialIDs struct{ n int }

func (s *sequentialIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

// newTestCatalog returns a catalog whose clock advances one second per
// entry, starting at 1000.
func newTestCatalog(t *testing.T) (*entryCatalog, string) {
	t.Helper()
	dir := t.TempDir()
	c := NewEntryCatalog(dir, &sequentialIDs{}, logger.Nop()).(*entryCatalog)

	clock := int64(1000)
	c.now = func() time.Time {
		clock++
		return time.Unix(clock, 0)
	}
	return c, dir
}

func ids(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func seed(t *testing.T, c *entryCatalog, entries ...models.Entry) {
	t.Helper()
	_, err := c.ReplaceAll(context.Background(), entries)
	require.NoError(t, err)
}

// ── reading ──

func TestEntryCatalog_MissingFileIsEmpty(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	assert.Empty(t, c.List(ctx))
	assert.Empty(t, c.ListVisible(ctx, nil))
	_, ok := c.Get(ctx, "anything")
	assert.False(t, ok)
}

func TestEntryCatalog_MalformedFileIsEmpty(t *testing.T) {
	c, dir := newTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EntriesFileName), []byte("{garbage"), 0o600))

	assert.Empty(t, c.List(ctx))

	// The next write replaces the broken file.
	_, err := c.Add(ctx, "label", "postfix", "len36_strong", nil)
	require.NoError(t, err)
	assert.Len(t, c.List(ctx), 1)
}

func TestEntryCatalog_LogsToOwnLoggerWithoutContextLogger(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()
	c := NewEntryCatalog(dir, &sequentialIDs{}, logger.NewLogger("test", &buf))
	require.NoError(t, os.WriteFile(filepath.Join(dir, EntriesFileName), []byte("{garbage"), 0o600))

	assert.Empty(t, c.List(context.Background()))

	assert.Contains(t, buf.String(), "malformed catalog")
	assert.Contains(t, buf.String(), `"component":"entry_catalog"`)
}

func TestEntryCatalog_EmptyFingerprintIsUnbound(t *testing.T) {
	c, dir := newTestCatalog(t)
	ctx := context.Background()

	raw := `{"entries":[{"id":"a","label":"l","postfix":"p","method_id":"m","created_at":1,"fingerprint":""}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, EntriesFileName), []byte(raw), 0o600))

	list := c.List(ctx)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsBound())
}

// ── Add / Get / Delete / Update ──

func TestEntryCatalog_Add(t *testing.T) {
	c, dir := newTestCatalog(t)
	ctx := context.Background()
	fp := "aaaa"

	first, err := c.Add(ctx, "first", "p1", "len20_alnum", nil)
	require.NoError(t, err)
	second, err := c.Add(ctx, "second", "p2", "legacy_v1", &fp)
	require.NoError(t, err)

	assert.Equal(t, "id-1", first.ID)
	assert.False(t, first.IsBound())
	assert.Equal(t, int64(1001), first.CreatedAt)
	assert.Zero(t, first.Order)

	assert.Equal(t, "aaaa", second.FingerprintValue())
	assert.Equal(t, int64(1002), second.CreatedAt)

	// Newest first in the file.
	assert.Equal(t, []string{"id-2", "id-1"}, ids(c.List(ctx)))

	data, err := os.ReadFile(filepath.Join(dir, EntriesFileName))
	require.NoError(t, err)
	var raw struct {
		Entries []map[string]any `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw.Entries, 2)
	assert.Equal(t, "aaaa", raw.Entries[0]["fingerprint"])
	assert.NotContains(t, raw.Entries[1], "fingerprint")
	assert.NotContains(t, raw.Entries[1], "order")
	assert.Equal(t, "len20_alnum", raw.Entries[1]["method_id"])
}

func TestEntryCatalog_GetDelete(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	e, err := c.Add(ctx, "label", "postfix", "len36_strong", nil)
	require.NoError(t, err)

	got, ok := c.Get(ctx, e.ID)
	require.True(t, ok)
	assert.Equal(t, e, got)

	deleted, err := c.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = c.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, ok = c.Get(ctx, e.ID)
	assert.False(t, ok)
}

func TestEntryCatalog_Update(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()
	fp := "aaaa"

	e, err := c.Add(ctx, "label", "postfix", "len36_strong", &fp)
	require.NoError(t, err)

	updated, err := c.Update(ctx, e.ID, "new label", "", "len10_alnum")
	require.NoError(t, err)
	assert.Equal(t, "new label", updated.Label)
	assert.Equal(t, "postfix", updated.Postfix)
	assert.Equal(t, "len10_alnum", updated.MethodID)
	assert.Equal(t, e.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "aaaa", updated.FingerprintValue())

	got, ok := c.Get(ctx, e.ID)
	require.True(t, ok)
	assert.Equal(t, updated, got)

	_, err = c.Update(ctx, "missing", "x", "y", "z")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

// ── ListVisible ──

func TestEntryCatalog_ListVisible(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()
	a, b := "aaaa", "bbbb"

	seed(t, c,
		models.Entry{ID: "old-a", CreatedAt: 10, Fingerprint: &a},
		models.Entry{ID: "new-unbound", CreatedAt: 30},
		models.Entry{ID: "ordered-2", CreatedAt: 5, Order: 2, Fingerprint: &a},
		models.Entry{ID: "b-only", CreatedAt: 40, Fingerprint: &b},
		models.Entry{ID: "ordered-1", CreatedAt: 1, Order: 1},
		models.Entry{ID: "mid-a", CreatedAt: 20, Fingerprint: &a},
	)

	assert.Equal(t,
		[]string{"ordered-1", "ordered-2", "new-unbound", "mid-a", "old-a"},
		ids(c.ListVisible(ctx, &a)),
	)
	assert.Equal(t,
		[]string{"ordered-1", "b-only", "new-unbound"},
		ids(c.ListVisible(ctx, &b)),
	)
	assert.Equal(t,
		[]string{"ordered-1", "ordered-2", "b-only", "new-unbound", "mid-a", "old-a"},
		ids(c.ListVisible(ctx, nil)),
	)
}

// ── Reorder ──

func TestEntryCatalog_ReorderPermutedSubset(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()
	a, b := "aaaa", "bbbb"

	seed(t, c,
		models.Entry{ID: "e1", CreatedAt: 50, Fingerprint: &a},
		models.Entry{ID: "e2", CreatedAt: 40, Fingerprint: &a},
		models.Entry{ID: "e3", CreatedAt: 30},
		models.Entry{ID: "e4", CreatedAt: 20, Fingerprint: &a},
		models.Entry{ID: "other", CreatedAt: 60, Fingerprint: &b, Order: 7},
	)

	// e3 is put first; e1, e2 are omitted; "other" is not visible and
	// "ghost" does not exist.
	err := c.Reorder(ctx, &a, []string{"e3", "e4", "ghost", "other", "e3"})
	require.NoError(t, err)

	assert.Equal(t, []string{"e3", "e4", "e1", "e2"}, ids(c.ListVisible(ctx, &a)))

	orders := map[string]int64{}
	for _, e := range c.List(ctx) {
		orders[e.ID] = e.Order
	}
	assert.Equal(t, map[string]int64{"e3": 1, "e4": 2, "e1": 3, "e2": 4, "other": 7}, orders)
}

func TestEntryCatalog_ReorderThenAdd(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	first, err := c.Add(ctx, "first", "p", "m", nil)
	require.NoError(t, err)
	second, err := c.Add(ctx, "second", "p", "m", nil)
	require.NoError(t, err)

	require.NoError(t, c.Reorder(ctx, nil, []string{first.ID, second.ID}))
	third, err := c.Add(ctx, "third", "p", "m", nil)
	require.NoError(t, err)

	// Unordered entries follow the ordered ones.
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, ids(c.ListVisible(ctx, nil)))
}

// ── BindUnboundTo ──

func TestEntryCatalog_BindUnboundTo(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()
	a := "aaaa"

	seed(t, c,
		models.Entry{ID: "u1"},
		models.Entry{ID: "bound", Fingerprint: &a},
		models.Entry{ID: "u2"},
	)

	n, err := c.BindUnboundTo(ctx, "cccc")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, e := range c.List(ctx) {
		require.True(t, e.IsBound(), e.ID)
		if e.ID == "bound" {
			assert.Equal(t, "aaaa", e.FingerprintValue())
		} else {
			assert.Equal(t, "cccc", e.FingerprintValue())
		}
	}

	n, err = c.BindUnboundTo(ctx, "dddd")
	require.NoError(t, err)
	assert.Zero(t, n)
}

// ── ReplaceAll / MergeNonConflicting ──

func TestEntryCatalog_ReplaceAll(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	_, err := c.Add(ctx, "old", "p", "m", nil)
	require.NoError(t, err)

	n, err := c.ReplaceAll(ctx, []models.Entry{{ID: "x"}, {ID: "y"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"x", "y"}, ids(c.List(ctx)))

	n, err = c.ReplaceAll(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, c.List(ctx))
}

func TestEntryCatalog_MergeSkipsExistingIDs(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	seed(t, c, models.Entry{ID: "a", Label: "original"}, models.Entry{ID: "b"})

	n, err := c.MergeNonConflicting(ctx, []models.Entry{
		{ID: "a", Label: "incoming"},
		{ID: "c"},
		{ID: "c", Label: "duplicate within input"},
		{ID: "d"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list := c.List(ctx)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(list))
	assert.Equal(t, "original", list[0].Label)
	for _, e := range list {
		assert.Zero(t, e.Order, e.ID)
	}
}

func TestEntryCatalog_MergeContinuesCustomOrder(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	seed(t, c, models.Entry{ID: "a", Order: 1}, models.Entry{ID: "b", Order: 4}, models.Entry{ID: "z"})

	n, err := c.MergeNonConflicting(ctx, []models.Entry{{ID: "c", Order: 1}, {ID: "d"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	orders := map[string]int64{}
	for _, e := range c.List(ctx) {
		orders[e.ID] = e.Order
	}
	assert.Equal(t, map[string]int64{"a": 1, "b": 4, "z": 0, "c": 5, "d": 6}, orders)
}

// ── CountByFingerprint ──

func TestEntryCatalog_CountByFingerprint(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()
	a, b := "aaaa", "bbbb"

	seed(t, c,
		models.Entry{ID: "1", Fingerprint: &b},
		models.Entry{ID: "2"},
		models.Entry{ID: "3", Fingerprint: &a},
		models.Entry{ID: "4", Fingerprint: &b},
	)

	assert.Equal(t, []models.FingerprintCount{
		{Fingerprint: "", Count: 1},
		{Fingerprint: "aaaa", Count: 1},
		{Fingerprint: "bbbb", Count: 2},
	}, c.CountByFingerprint(ctx))
}

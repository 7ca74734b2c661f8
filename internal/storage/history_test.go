package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
	"github.com/duncansachdeva/printlabel/internal/infrastructure/logger"
)

func newTestHistory(t *testing.T) *HistoryStore {
	t.Helper()
	s, err := NewHistoryStore(filepath.Join(t.TempDir(), "labels.db"), logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHistorySaveAndRecent(t *testing.T) {
	s := newTestHistory(t)

	for _, item := range []models.SavedItem{
		{ItemNumber: "1001", UPC: "012345678905", Title: "First", Casepack: 6},
		{ItemNumber: "1002", UPC: "036000291452", Title: "Second", Casepack: 12},
		{ItemNumber: "1003", Title: "Third"},
	} {
		id, err := s.SaveItem(item)
		require.NoError(t, err)
		assert.Greater(t, id, int64(0))
	}

	items, err := s.RecentItems(10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	// Newest first.
	assert.Equal(t, "1003", items[0].ItemNumber)
	assert.Equal(t, "1001", items[2].ItemNumber)
	assert.Equal(t, 12, items[1].Casepack)

	limited, err := s.RecentItems(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestHistorySearch(t *testing.T) {
	s := newTestHistory(t)

	_, err := s.SaveItem(models.SavedItem{ItemNumber: "A-100", Title: "Red Widget"})
	require.NoError(t, err)
	_, err = s.SaveItem(models.SavedItem{ItemNumber: "B-200", Title: "Blue Gadget"})
	require.NoError(t, err)

	byTitle, err := s.SearchItems("Widget", 10)
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "A-100", byTitle[0].ItemNumber)

	byNumber, err := s.SearchItems("B-2", 10)
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, "Blue Gadget", byNumber[0].Title)

	none, err := s.SearchItems("missing", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHistoryDelete(t *testing.T) {
	s := newTestHistory(t)

	id, err := s.SaveItem(models.SavedItem{ItemNumber: "X"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteItem(id))

	items, err := s.RecentItems(10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHistoryLastUsed(t *testing.T) {
	s := newTestHistory(t)

	_, ok, err := s.LastUsed()
	require.NoError(t, err)
	assert.False(t, ok)

	want := models.LastUsed{
		PrinterName: "Zebra LP2844",
		Override:    models.OverrideAuto,
		Size:        models.SizeTwoByOne,
	}
	require.NoError(t, s.SaveLastUsed(want))

	got, ok, err := s.LastUsed()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	// Overwrite keeps a single row.
	want.PrinterName = "Zebra ZM400"
	require.NoError(t, s.SaveLastUsed(want))
	got, ok, err = s.LastUsed()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Zebra ZM400", got.PrinterName)
}

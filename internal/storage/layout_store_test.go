package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
	"github.com/duncansachdeva/printlabel/internal/infrastructure/logger"
	"github.com/duncansachdeva/printlabel/internal/label"
)

func newTestLayoutStore(t *testing.T) (*LayoutStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layouts.json")
	s := NewLayoutStore(path, logger.NewNopLogger())
	require.NoError(t, s.Load())
	return s, path
}

func TestLayoutStoreMissingFileStartsEmpty(t *testing.T) {
	s, _ := newTestLayoutStore(t)

	got := s.Get("Zebra ZM400", models.LangZPL, models.SizeFourBySix)
	assert.Equal(t, label.DefaultLayout(models.LangZPL, models.SizeFourBySix), got)
}

func TestLayoutStoreSaveAndReload(t *testing.T) {
	s, path := newTestLayoutStore(t)

	custom := label.DefaultLayout(models.LangEPL, models.SizeTwoByOne)
	custom.BarcodeY = 95
	custom.XMargin = 30
	require.NoError(t, s.Save("Zebra LP2844", models.LangEPL, models.SizeTwoByOne, custom))

	// A fresh store reading the same file sees the override.
	reloaded := NewLayoutStore(path, logger.NewNopLogger())
	require.NoError(t, reloaded.Load())
	assert.Equal(t, custom, reloaded.Get("Zebra LP2844", models.LangEPL, models.SizeTwoByOne))

	// Other printers are untouched.
	assert.Equal(t,
		label.DefaultLayout(models.LangEPL, models.SizeTwoByOne),
		reloaded.Get("Other Printer", models.LangEPL, models.SizeTwoByOne))
}

func TestLayoutStoreResetToDefault(t *testing.T) {
	s, _ := newTestLayoutStore(t)

	custom := label.DefaultLayout(models.LangZPL, models.SizeTwoByOne)
	custom.TitleY = 99
	require.NoError(t, s.Save("P", models.LangZPL, models.SizeTwoByOne, custom))

	def, err := s.ResetToDefault("P", models.LangZPL, models.SizeTwoByOne)
	require.NoError(t, err)
	assert.Equal(t, label.DefaultLayout(models.LangZPL, models.SizeTwoByOne), def)
	assert.Equal(t, def, s.Get("P", models.LangZPL, models.SizeTwoByOne))
}

package ports

import "github.com/duncansachdeva/printlabel/internal/domain/models"

// ItemRepository stores the print history and the last-used printer
// selection. The implementation lives in the infrastructure layer.
type ItemRepository interface {
	// SaveItem appends an item to the history and returns its id
	SaveItem(item models.SavedItem) (int64, error)

	// RecentItems returns up to limit items, newest first
	RecentItems(limit int) ([]models.SavedItem, error)

	// SearchItems filters history by substring on item number or title
	SearchItems(query string, limit int) ([]models.SavedItem, error)

	// DeleteItem removes one history row
	DeleteItem(id int64) error

	// SaveLastUsed persists the printer selection between runs
	SaveLastUsed(last models.LastUsed) error

	// LastUsed returns the stored selection, or ok=false when none
	LastUsed() (models.LastUsed, bool, error)

	// Close releases the underlying database
	Close() error
}

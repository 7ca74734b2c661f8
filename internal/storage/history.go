package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
	"github.com/duncansachdeva/printlabel/internal/domain/ports"
)

// HistoryStore is the SQLite-backed item history. It implements
// ports.ItemRepository. modernc's driver keeps the build CGO-free,
// which matters for cross-compiling the Windows binary.
type HistoryStore struct {
	db  *sql.DB
	log ports.Logger
}

// NewHistoryStore opens (and if needed creates) the database at path.
func NewHistoryStore(path string, log ports.Logger) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS saved_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			item_number TEXT NOT NULL,
			upc TEXT,
			title TEXT,
			casepack INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS printer_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			printer_name TEXT,
			language TEXT,
			size TEXT,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing history schema: %w", err)
		}
	}

	log.Info("[HISTORY] database ready at %s", path)
	return &HistoryStore{db: db, log: log}, nil
}

// SaveItem appends an item to the history and returns its id.
func (s *HistoryStore) SaveItem(item models.SavedItem) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO saved_items (item_number, upc, title, casepack) VALUES (?, ?, ?, ?)`,
		item.ItemNumber, item.UPC, item.Title, item.Casepack)
	if err != nil {
		return 0, fmt.Errorf("saving item: %w", err)
	}
	return res.LastInsertId()
}

// RecentItems returns up to limit items, newest first.
func (s *HistoryStore) RecentItems(limit int) ([]models.SavedItem, error) {
	rows, err := s.db.Query(
		`SELECT id, item_number, upc, title, casepack, created_at
		 FROM saved_items ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// SearchItems filters history by substring on item number or title,
// newest first.
func (s *HistoryStore) SearchItems(query string, limit int) ([]models.SavedItem, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.Query(
		`SELECT id, item_number, upc, title, casepack, created_at
		 FROM saved_items
		 WHERE item_number LIKE ? OR title LIKE ?
		 ORDER BY id DESC LIMIT ?`, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// DeleteItem removes one history row.
func (s *HistoryStore) DeleteItem(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM saved_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting item %d: %w", id, err)
	}
	return nil
}

// SaveLastUsed persists the printer selection between runs.
func (s *HistoryStore) SaveLastUsed(last models.LastUsed) error {
	_, err := s.db.Exec(
		`INSERT INTO printer_settings (id, printer_name, language, size, updated_at)
		 VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   printer_name = excluded.printer_name,
		   language = excluded.language,
		   size = excluded.size,
		   updated_at = CURRENT_TIMESTAMP`,
		last.PrinterName, string(last.Override), string(last.Size))
	if err != nil {
		return fmt.Errorf("saving printer selection: %w", err)
	}
	return nil
}

// LastUsed returns the stored selection, or ok=false when none.
func (s *HistoryStore) LastUsed() (models.LastUsed, bool, error) {
	var last models.LastUsed
	var override, size string
	err := s.db.QueryRow(
		`SELECT printer_name, language, size FROM printer_settings WHERE id = 1`).
		Scan(&last.PrinterName, &override, &size)
	if err == sql.ErrNoRows {
		return models.LastUsed{}, false, nil
	}
	if err != nil {
		return models.LastUsed{}, false, fmt.Errorf("reading printer selection: %w", err)
	}
	last.Override = models.LanguageOverride(override)
	last.Size = models.PaperSize(size)
	return last, true, nil
}

// Close releases the database handle.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

func scanItems(rows *sql.Rows) ([]models.SavedItem, error) {
	var items []models.SavedItem
	for rows.Next() {
		var it models.SavedItem
		if err := rows.Scan(&it.ID, &it.ItemNumber, &it.UPC, &it.Title, &it.Casepack, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

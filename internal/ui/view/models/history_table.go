//go:build windows

package models

import (
	"github.com/lxn/walk"

	domain "github.com/duncansachdeva/printlabel/internal/domain/models"
)

// HistoryTableModel implements walk.TableModel over the saved-item
// history shown on the History tab.
type HistoryTableModel struct {
	walk.TableModelBase
	items []domain.SavedItem
}

// NewHistoryTableModel creates an empty model.
func NewHistoryTableModel() *HistoryTableModel {
	return &HistoryTableModel{}
}

// RowCount returns the number of rows.
func (m *HistoryTableModel) RowCount() int {
	return len(m.items)
}

// Value returns the cell value for a row and column.
func (m *HistoryTableModel) Value(row, col int) interface{} {
	if row < 0 || row >= len(m.items) {
		return nil
	}
	item := m.items[row]
	switch col {
	case 0:
		return item.ItemNumber
	case 1:
		return item.UPC
	case 2:
		return item.Title
	case 3:
		return item.Casepack
	case 4:
		return item.CreatedAt
	default:
		return nil
	}
}

// SetItems replaces the rows and notifies the view.
func (m *HistoryTableModel) SetItems(items []domain.SavedItem) {
	m.items = items
	m.PublishRowsReset()
}

// ItemAt returns the row's item, or ok=false out of range.
func (m *HistoryTableModel) ItemAt(row int) (domain.SavedItem, bool) {
	if row < 0 || row >= len(m.items) {
		return domain.SavedItem{}, false
	}
	return m.items[row], true
}

//go:build windows

package app

import (
	"fmt"
	"path/filepath"

	"github.com/lxn/walk"

	"github.com/duncansachdeva/printlabel/internal/domain/ports"
	"github.com/duncansachdeva/printlabel/internal/service/printjob"
	"github.com/duncansachdeva/printlabel/internal/storage"
)

// App aggregates the long-lived pieces of the GUI application.
type App struct {
	Log        ports.Logger
	History    ports.ItemRepository
	Layouts    *storage.LayoutStore
	Printer    *printjob.Service
	MainWindow *walk.MainWindow
}

// New wires the stores and the print service. dataDir receives the
// layout overrides and the history database, logDir the payload dumps.
func New(dataDir, logDir string, log ports.Logger, factory printjob.TransportFactory) (*App, error) {
	layouts := storage.NewLayoutStore(filepath.Join(dataDir, "label_layouts.json"), log)
	if err := layouts.Load(); err != nil {
		return nil, fmt.Errorf("loading layout overrides: %w", err)
	}

	history, err := storage.NewHistoryStore(filepath.Join(dataDir, "labels.db"), log)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}

	return &App{
		Log:     log,
		History: history,
		Layouts: layouts,
		Printer: printjob.NewService(layouts, history, log, logDir, factory),
	}, nil
}

// Close releases held resources.
func (a *App) Close() error {
	if a.History != nil {
		return a.History.Close()
	}
	return nil
}

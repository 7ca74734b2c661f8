//go:build windows

package controller

import (
	"github.com/duncansachdeva/printlabel/internal/app"
	"github.com/duncansachdeva/printlabel/internal/domain/models"
	"github.com/duncansachdeva/printlabel/internal/infrastructure/spooler"
	"github.com/duncansachdeva/printlabel/internal/service/printjob"
	"github.com/duncansachdeva/printlabel/internal/ui/viewmodel"
)

const historyLimit = 50

// MainController mediates between the main window and the print
// service. The view calls in on user events; the controller mutates
// the view model and fires onUpdate so the view can redraw.
type MainController struct {
	vm       *viewmodel.MainViewModel
	app      *app.App
	onUpdate func()
}

// NewMainController creates the controller for the main window.
func NewMainController(vm *viewmodel.MainViewModel, application *app.App) *MainController {
	return &MainController{vm: vm, app: application}
}

// ViewModel exposes the view model to the view.
func (c *MainController) ViewModel() *viewmodel.MainViewModel {
	return c.vm
}

// SetOnUpdate registers the view redraw callback.
func (c *MainController) SetOnUpdate(fn func()) {
	c.onUpdate = fn
}

// Initialize loads printers, history and the last-used selection.
// Called by the view once the window exists.
func (c *MainController) Initialize() {
	c.RefreshPrinters()
	c.RefreshHistory()

	if last, ok, err := c.app.History.LastUsed(); err == nil && ok {
		c.vm.ApplyLastUsed(last)
	}
	c.notifyUpdate()
}

// RefreshPrinters re-enumerates installed printers and keeps a sane
// selection.
func (c *MainController) RefreshPrinters() {
	printers, err := spooler.ListPrinters()
	if err != nil {
		c.app.Log.Error("[UI] printer enumeration failed: %v", err)
		c.vm.StatusText = "Failed to enumerate printers: " + err.Error()
		c.notifyUpdate()
		return
	}

	names := make([]string, 0, len(printers))
	var def string
	for _, p := range printers {
		names = append(names, p.Name)
		if p.IsDefault {
			def = p.Name
		}
	}
	c.vm.PrinterList = names

	if c.vm.SelectedPrinter == "" {
		switch {
		case def != "":
			c.vm.SelectedPrinter = def
		case len(names) > 0:
			c.vm.SelectedPrinter = names[0]
		}
	}
	c.vm.UpdateUIState()
	c.notifyUpdate()
}

// RefreshHistory reloads the recent-items list.
func (c *MainController) RefreshHistory() {
	items, err := c.app.History.RecentItems(historyLimit)
	if err != nil {
		c.app.Log.Warn("[UI] history load failed: %v", err)
		return
	}
	c.vm.RecentItems = items
	c.notifyUpdate()
}

// SearchHistory filters the history list by the given query.
func (c *MainController) SearchHistory(query string) {
	if query == "" {
		c.RefreshHistory()
		return
	}
	items, err := c.app.History.SearchItems(query, historyLimit)
	if err != nil {
		c.app.Log.Warn("[UI] history search failed: %v", err)
		return
	}
	c.vm.RecentItems = items
	c.notifyUpdate()
}

// LoadHistoryItem copies a history row into the input fields.
func (c *MainController) LoadHistoryItem(row int) {
	if row < 0 || row >= len(c.vm.RecentItems) {
		return
	}
	c.vm.LoadItem(c.vm.RecentItems[row])
	c.notifyUpdate()
}

// DeleteHistoryItem removes a history row.
func (c *MainController) DeleteHistoryItem(row int) {
	if row < 0 || row >= len(c.vm.RecentItems) {
		return
	}
	if err := c.app.History.DeleteItem(c.vm.RecentItems[row].ID); err != nil {
		c.app.Log.Warn("[UI] history delete failed: %v", err)
		return
	}
	c.RefreshHistory()
}

// Print runs one print action with the current view model state.
// Returns the resolved language so the view can report it.
func (c *MainController) Print() (models.Language, error) {
	fields, err := c.vm.Fields()
	if err != nil {
		c.vm.StatusText = err.Error()
		c.notifyUpdate()
		return "", err
	}

	req := printjob.Request{
		PrinterName: c.vm.SelectedPrinter,
		Override:    c.vm.Override,
		Size:        c.vm.Size,
		Fields:      fields,
	}

	lang, err := c.app.Printer.Print(req)
	if err != nil {
		c.vm.StatusText = err.Error()
		c.notifyUpdate()
		return lang, err
	}

	c.vm.StatusText = "Sent to " + c.vm.SelectedPrinter
	c.RefreshHistory()
	return lang, nil
}

func (c *MainController) notifyUpdate() {
	if c.onUpdate != nil {
		c.onUpdate()
	}
}

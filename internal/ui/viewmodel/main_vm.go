package viewmodel

import (
	"strconv"
	"strings"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
	"github.com/duncansachdeva/printlabel/internal/label"
)

// MainViewModel holds the state of the main window: printer selection,
// label fields and the recent-item list.
type MainViewModel struct {
	// Installed printer names as shown in the combo box
	PrinterList     []string
	SelectedPrinter string

	// Language override (Auto/ZPL/EPL) and paper size
	Override models.LanguageOverride
	Size     models.PaperSize

	// Raw field texts as typed; parsing happens in the controller
	ItemNumber string
	UPC        string
	Title      string
	Casepack   string
	Copies     int

	// History tab
	RecentItems []models.SavedItem

	// Derived UI state
	PrintEnabled bool
	StatusText   string
}

// NewMainViewModel returns a view model with defaults matching a fresh
// install: auto detection, 4x6 stock, one copy.
func NewMainViewModel() *MainViewModel {
	return &MainViewModel{
		Override:   models.OverrideAuto,
		Size:       models.SizeFourBySix,
		Copies:     1,
		StatusText: "Ready",
	}
}

// Fields assembles LabelFields from the raw texts. An empty casepack
// means zero; non-numeric text is rejected here so the user hears
// about it instead of printing a wrong label. Render still checks the
// ranges.
func (vm *MainViewModel) Fields() (models.LabelFields, error) {
	casepack := 0
	if raw := strings.TrimSpace(vm.Casepack); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.LabelFields{}, &label.ValidationError{Field: "casepack", Reason: "must be a whole number"}
		}
		casepack = n
	}
	return models.LabelFields{
		ItemNumber: strings.TrimSpace(vm.ItemNumber),
		UPC:        strings.TrimSpace(vm.UPC),
		Title:      strings.TrimSpace(vm.Title),
		Casepack:   casepack,
		Copies:     vm.Copies,
	}, nil
}

// UpdateUIState recomputes derived state after any input change.
func (vm *MainViewModel) UpdateUIState() {
	vm.PrintEnabled = vm.SelectedPrinter != ""
}

// ApplyLastUsed restores a stored printer selection if it still
// matches an installed printer.
func (vm *MainViewModel) ApplyLastUsed(last models.LastUsed) {
	for _, name := range vm.PrinterList {
		if name == last.PrinterName {
			vm.SelectedPrinter = name
			if last.Override != "" {
				vm.Override = last.Override
			}
			if last.Size != "" {
				vm.Size = last.Size
			}
			break
		}
	}
	vm.UpdateUIState()
}

// LoadItem copies a history row back into the input fields.
func (vm *MainViewModel) LoadItem(item models.SavedItem) {
	vm.ItemNumber = item.ItemNumber
	vm.UPC = item.UPC
	vm.Title = item.Title
	if item.Casepack > 0 {
		vm.Casepack = strconv.Itoa(item.Casepack)
	} else {
		vm.Casepack = ""
	}
}

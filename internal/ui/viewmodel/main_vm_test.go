package viewmodel

import (
	"errors"
	"testing"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
	"github.com/duncansachdeva/printlabel/internal/label"
)

func TestFieldsParsing(t *testing.T) {
	vm := NewMainViewModel()
	vm.ItemNumber = "  1234 "
	vm.UPC = " 012345678905"
	vm.Title = "Widget "
	vm.Casepack = "12"
	vm.Copies = 3

	f, err := vm.Fields()
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	if f.ItemNumber != "1234" || f.UPC != "012345678905" || f.Title != "Widget" {
		t.Errorf("unexpected trim result: %+v", f)
	}
	if f.Casepack != 12 {
		t.Errorf("casepack = %d, want 12", f.Casepack)
	}
	if f.Copies != 3 {
		t.Errorf("copies = %d, want 3", f.Copies)
	}
}

func TestFieldsEmptyCasepackIsZero(t *testing.T) {
	vm := NewMainViewModel()
	vm.Casepack = "  "
	f, err := vm.Fields()
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	if f.Casepack != 0 {
		t.Errorf("casepack = %d, want 0", f.Casepack)
	}
}

func TestFieldsBadCasepackRejected(t *testing.T) {
	vm := NewMainViewModel()
	vm.Casepack = "dozen"

	_, err := vm.Fields()
	if err == nil {
		t.Fatal("Fields() must reject a non-numeric casepack")
	}
	var verr *label.ValidationError
	if !errors.As(err, &verr) || verr.Field != "casepack" {
		t.Errorf("error = %v, want ValidationError on casepack", err)
	}
}

func TestUpdateUIState(t *testing.T) {
	vm := NewMainViewModel()
	vm.UpdateUIState()
	if vm.PrintEnabled {
		t.Error("print must be disabled without a printer")
	}

	vm.SelectedPrinter = "Zebra ZM400"
	vm.UpdateUIState()
	if !vm.PrintEnabled {
		t.Error("print must be enabled once a printer is selected")
	}
}

func TestApplyLastUsed(t *testing.T) {
	vm := NewMainViewModel()
	vm.PrinterList = []string{"Zebra ZM400", "Zebra LP2844"}

	vm.ApplyLastUsed(models.LastUsed{
		PrinterName: "Zebra LP2844",
		Override:    models.OverrideEPL,
		Size:        models.SizeTwoByOne,
	})
	if vm.SelectedPrinter != "Zebra LP2844" {
		t.Errorf("selected = %q", vm.SelectedPrinter)
	}
	if vm.Override != models.OverrideEPL || vm.Size != models.SizeTwoByOne {
		t.Errorf("override/size not restored: %q %q", vm.Override, vm.Size)
	}

	// A printer that no longer exists leaves the selection alone.
	vm2 := NewMainViewModel()
	vm2.PrinterList = []string{"Zebra ZM400"}
	vm2.ApplyLastUsed(models.LastUsed{PrinterName: "Removed Printer"})
	if vm2.SelectedPrinter != "" {
		t.Errorf("selection should stay empty, got %q", vm2.SelectedPrinter)
	}
}

func TestLoadItem(t *testing.T) {
	vm := NewMainViewModel()
	vm.LoadItem(models.SavedItem{ItemNumber: "1001", UPC: "012345678905", Title: "Widget", Casepack: 6})

	if vm.ItemNumber != "1001" || vm.UPC != "012345678905" || vm.Title != "Widget" || vm.Casepack != "6" {
		t.Errorf("unexpected state: %+v", vm)
	}
}

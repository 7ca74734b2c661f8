//go:build windows

package view

import (
	"fmt"

	"github.com/lxn/walk"
	d "github.com/lxn/walk/declarative"

	domain "github.com/duncansachdeva/printlabel/internal/domain/models"
	"github.com/duncansachdeva/printlabel/internal/ui/controller"
	"github.com/duncansachdeva/printlabel/internal/ui/view/models"
)

// MainWindowView renders the main window and forwards user events to
// the controller. No business logic lives here.
type MainWindowView struct {
	mw       *walk.MainWindow
	mainCtrl *controller.MainController

	printerCombo  *walk.ComboBox
	languageCombo *walk.ComboBox
	sizeCombo     *walk.ComboBox

	itemEdit     *walk.LineEdit
	upcEdit      *walk.LineEdit
	titleEdit    *walk.LineEdit
	casepackEdit *walk.LineEdit
	copiesEdit   *walk.NumberEdit

	historyTable  *walk.TableView
	historySearch *walk.LineEdit
	historyModel  *models.HistoryTableModel

	printBtn    *walk.PushButton
	statusLabel *walk.Label
}

var (
	languageOptions = []string{"Auto", "ZPL", "EPL"}
	sizeOptions     = []string{"2x1", "4x6"}
)

// NewMainWindowView creates the view for the given controller.
func NewMainWindowView(mainCtrl *controller.MainController) *MainWindowView {
	return &MainWindowView{
		mainCtrl:     mainCtrl,
		historyModel: models.NewHistoryTableModel(),
	}
}

// Create builds and initializes the main window.
func (w *MainWindowView) Create() error {
	w.mainCtrl.SetOnUpdate(w.updateUI)

	err := d.MainWindow{
		AssignTo: &w.mw,
		Title:    "PrintLabel",
		Size:     d.Size{Width: 560, Height: 640},
		MinSize:  d.Size{Width: 560, Height: 640},
		Layout:   d.VBox{MarginsZero: true, Spacing: 5},
		Children: []d.Widget{
			// --- Printer selection ---
			d.GroupBox{
				Title:  "Printer",
				Layout: d.Grid{Columns: 4, Margins: d.Margins{Left: 8, Top: 6, Right: 8, Bottom: 6}, Spacing: 6},
				Children: []d.Widget{
					d.Label{Text: "Installed:"},
					d.ComboBox{
						AssignTo:              &w.printerCombo,
						MinSize:               d.Size{Width: 320},
						ColumnSpan:            2,
						OnCurrentIndexChanged: w.onPrinterChanged,
					},
					d.PushButton{
						Text:      "Refresh",
						MaxSize:   d.Size{Width: 70},
						OnClicked: w.mainCtrl.RefreshPrinters,
					},
					d.Label{Text: "Language:"},
					d.ComboBox{
						AssignTo:              &w.languageCombo,
						Model:                 languageOptions,
						CurrentIndex:          0,
						MaxSize:               d.Size{Width: 90},
						OnCurrentIndexChanged: w.onLanguageChanged,
					},
					d.Label{Text: "Size:"},
					d.ComboBox{
						AssignTo:              &w.sizeCombo,
						Model:                 sizeOptions,
						CurrentIndex:          1, // 4x6
						MaxSize:               d.Size{Width: 90},
						OnCurrentIndexChanged: w.onSizeChanged,
					},
				},
			},
			// --- Label data ---
			d.GroupBox{
				Title:  "Label Data",
				Layout: d.Grid{Columns: 2, Margins: d.Margins{Left: 8, Top: 6, Right: 8, Bottom: 6}, Spacing: 6},
				Children: []d.Widget{
					d.Label{Text: "Item Number:"},
					d.LineEdit{AssignTo: &w.itemEdit, OnTextChanged: w.syncFields},
					d.Label{Text: "UPC (11 or 12 digits):"},
					d.LineEdit{AssignTo: &w.upcEdit, OnTextChanged: w.syncFields},
					d.Label{Text: "Title:"},
					d.LineEdit{AssignTo: &w.titleEdit, OnTextChanged: w.syncFields},
					d.Label{Text: "Casepack:"},
					d.LineEdit{AssignTo: &w.casepackEdit, OnTextChanged: w.syncFields},
					d.Label{Text: "Copies:"},
					d.NumberEdit{
						AssignTo: &w.copiesEdit,
						Decimals: 0,
						MinValue: 1,
						MaxValue: 999,
						Value:    1,
						MaxSize:  d.Size{Width: 70},
					},
				},
			},
			// --- History ---
			d.GroupBox{
				Title:  "History (double-click to load)",
				Layout: d.VBox{Margins: d.Margins{Left: 8, Top: 6, Right: 8, Bottom: 6}, Spacing: 6},
				Children: []d.Widget{
					d.Composite{
						Layout: d.HBox{MarginsZero: true, Spacing: 6},
						Children: []d.Widget{
							d.LineEdit{
								AssignTo:      &w.historySearch,
								CueBanner:     "Search item number or title...",
								OnTextChanged: w.onHistorySearch,
							},
							d.PushButton{
								Text:      "Delete",
								MaxSize:   d.Size{Width: 60},
								OnClicked: w.onHistoryDelete,
							},
						},
					},
					d.TableView{
						AssignTo: &w.historyTable,
						Model:    w.historyModel,
						Columns: []d.TableViewColumn{
							{Title: "Item", Width: 90},
							{Title: "UPC", Width: 110},
							{Title: "Title", Width: 170},
							{Title: "Casepack", Width: 60},
							{Title: "Saved", Width: 120},
						},
						MinSize:          d.Size{Height: 180},
						OnItemActivated:  w.onHistoryActivated,
						LastColumnStretched: true,
					},
				},
			},
			// --- Actions ---
			d.Composite{
				Layout: d.HBox{Margins: d.Margins{Left: 8, Top: 2, Right: 8, Bottom: 8}},
				Children: []d.Widget{
					d.Label{AssignTo: &w.statusLabel, Text: "Ready"},
					d.HSpacer{},
					d.PushButton{
						AssignTo:  &w.printBtn,
						Text:      "Print",
						MinSize:   d.Size{Width: 90},
						OnClicked: w.onPrint,
					},
				},
			},
		},
	}.Create()
	if err != nil {
		return err
	}

	w.mainCtrl.Initialize()
	return nil
}

// Run starts the window message loop.
func (w *MainWindowView) Run() {
	w.mw.Run()
}

// updateUI pushes view-model state into the widgets.
func (w *MainWindowView) updateUI() {
	if w.mw == nil {
		return
	}
	w.mw.Synchronize(func() {
		vm := w.mainCtrl.ViewModel()

		current := w.printerCombo.Text()
		w.printerCombo.SetModel(vm.PrinterList)
		if vm.SelectedPrinter != "" && vm.SelectedPrinter != current {
			w.printerCombo.SetText(vm.SelectedPrinter)
		}

		if w.itemEdit.Text() != vm.ItemNumber {
			w.itemEdit.SetText(vm.ItemNumber)
		}
		if w.upcEdit.Text() != vm.UPC {
			w.upcEdit.SetText(vm.UPC)
		}
		if w.titleEdit.Text() != vm.Title {
			w.titleEdit.SetText(vm.Title)
		}
		if w.casepackEdit.Text() != vm.Casepack {
			w.casepackEdit.SetText(vm.Casepack)
		}

		w.historyModel.SetItems(vm.RecentItems)
		w.printBtn.SetEnabled(vm.PrintEnabled)
		w.statusLabel.SetText(vm.StatusText)
	})
}

// syncFields copies widget texts into the view model. Explicit sync is
// more reliable than a DataBinder submit on every keystroke.
func (w *MainWindowView) syncFields() {
	vm := w.mainCtrl.ViewModel()
	vm.ItemNumber = w.itemEdit.Text()
	vm.UPC = w.upcEdit.Text()
	vm.Title = w.titleEdit.Text()
	vm.Casepack = w.casepackEdit.Text()
}

func (w *MainWindowView) onPrinterChanged() {
	vm := w.mainCtrl.ViewModel()
	vm.SelectedPrinter = w.printerCombo.Text()
	vm.UpdateUIState()
	w.updateUI()
}

func (w *MainWindowView) onLanguageChanged() {
	vm := w.mainCtrl.ViewModel()
	switch w.languageCombo.CurrentIndex() {
	case 1:
		vm.Override = domain.OverrideZPL
	case 2:
		vm.Override = domain.OverrideEPL
	default:
		vm.Override = domain.OverrideAuto
	}
}

func (w *MainWindowView) onSizeChanged() {
	vm := w.mainCtrl.ViewModel()
	if w.sizeCombo.CurrentIndex() == 0 {
		vm.Size = domain.SizeTwoByOne
	} else {
		vm.Size = domain.SizeFourBySix
	}
}

func (w *MainWindowView) onHistorySearch() {
	w.mainCtrl.SearchHistory(w.historySearch.Text())
}

func (w *MainWindowView) onHistoryActivated() {
	w.mainCtrl.LoadHistoryItem(w.historyTable.CurrentIndex())
}

func (w *MainWindowView) onHistoryDelete() {
	row := w.historyTable.CurrentIndex()
	if row < 0 {
		return
	}
	if walk.MsgBox(w.mw, "Confirm", "Delete the selected history item?",
		walk.MsgBoxYesNo|walk.MsgBoxIconQuestion) != walk.DlgCmdYes {
		return
	}
	w.mainCtrl.DeleteHistoryItem(row)
}

func (w *MainWindowView) onPrint() {
	w.syncFields()
	vm := w.mainCtrl.ViewModel()
	vm.Copies = int(w.copiesEdit.Value())

	if vm.SelectedPrinter == "" {
		walk.MsgBox(w.mw, "Printer", "Please select a printer.", walk.MsgBoxIconWarning)
		return
	}

	lang, err := w.mainCtrl.Print()
	if err != nil {
		walk.MsgBox(w.mw, "Error", "Failed to print: "+err.Error(), walk.MsgBoxIconError)
		return
	}
	walk.MsgBox(w.mw, "Printed",
		fmt.Sprintf("Sent %d label(s) to %s (%s).", vm.Copies, vm.SelectedPrinter, lang),
		walk.MsgBoxIconInformation)
}

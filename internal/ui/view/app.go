//go:build windows

package view

import "github.com/duncansachdeva/printlabel/internal/ui/controller"

// Run creates the main window and blocks in its message loop until
// the user closes it.
func Run(mainCtrl *controller.MainController) error {
	w := NewMainWindowView(mainCtrl)
	if err := w.Create(); err != nil {
		return err
	}
	w.Run()
	return nil
}

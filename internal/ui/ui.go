//go:build windows

package ui

import (
	"github.com/duncansachdeva/printlabel/internal/ui/controller"
	"github.com/duncansachdeva/printlabel/internal/ui/view"
)

// Run starts the GUI with the given controller.
func Run(mainCtrl *controller.MainController) error {
	return view.Run(mainCtrl)
}

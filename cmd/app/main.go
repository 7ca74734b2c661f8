//go:build windows

package main

import (
	"github.com/duncansachdeva/printlabel/internal/app"
	"github.com/duncansachdeva/printlabel/internal/domain/ports"
	"github.com/duncansachdeva/printlabel/internal/infrastructure/logger"
	"github.com/duncansachdeva/printlabel/internal/infrastructure/spooler"
	"github.com/duncansachdeva/printlabel/internal/ui"
	"github.com/duncansachdeva/printlabel/internal/ui/controller"
	"github.com/duncansachdeva/printlabel/internal/ui/viewmodel"
)

func main() {
	// 1. Initialize logger (infrastructure)
	log := logger.NewFileLogger("logs")
	log.Info("Application starting")

	// 2. Wire stores and the print service
	application, err := app.New(".", "logs", log, func(printer string) ports.Transport {
		return spooler.New(printer)
	})
	if err != nil {
		log.Fatal("Failed to initialize application: %v", err)
	}
	defer application.Close()

	// 3. Create view model and controller
	mainVM := viewmodel.NewMainViewModel()
	mainCtrl := controller.NewMainController(mainVM, application)

	// 4. Run the GUI
	log.Info("Initialization complete, starting GUI")
	if err := ui.Run(mainCtrl); err != nil {
		log.Fatal("GUI error: %v", err)
	}
}

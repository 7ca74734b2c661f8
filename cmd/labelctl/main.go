//go:build windows

// labelctl is the headless companion to the PrintLabel GUI: it can
// list printers, render a label payload for inspection and submit
// print jobs from scripts.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
	"github.com/duncansachdeva/printlabel/internal/domain/ports"
	"github.com/duncansachdeva/printlabel/internal/infrastructure/logger"
	"github.com/duncansachdeva/printlabel/internal/infrastructure/serialport"
	"github.com/duncansachdeva/printlabel/internal/infrastructure/spooler"
	"github.com/duncansachdeva/printlabel/internal/service/printjob"
	"github.com/duncansachdeva/printlabel/internal/storage"
)

var (
	flagItem     string
	flagUPC      string
	flagTitle    string
	flagCasepack int
	flagCopies   int
	flagSize     string
	flagLanguage string
	flagPrinter  string
	flagSerial   string
	flagOutput   string
)

func main() {
	root := &cobra.Command{
		Use:          "labelctl",
		Short:        "Render and print Zebra item labels (ZPL/EPL)",
		SilenceUsage: true,
	}

	root.AddCommand(printersCmd(), renderCmd(), printCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagItem, "item", "", "item number (required)")
	cmd.Flags().StringVar(&flagUPC, "upc", "", "UPC, 11 or 12 digits (required)")
	cmd.Flags().StringVar(&flagTitle, "title", "", "human-readable title")
	cmd.Flags().IntVar(&flagCasepack, "casepack", 0, "units per case")
	cmd.Flags().IntVar(&flagCopies, "copies", 1, "number of labels")
	cmd.Flags().StringVar(&flagSize, "size", "4x6", "paper size: 2x1 or 4x6")
	cmd.Flags().StringVar(&flagLanguage, "language", "Auto", "label language: Auto, ZPL or EPL")
	cmd.Flags().StringVar(&flagPrinter, "printer", "", "installed printer name")
}

func printersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "printers",
		Short: "List installed printers and serial ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			printers, err := spooler.ListPrinters()
			if err != nil {
				return fmt.Errorf("enumerating printers: %w", err)
			}
			for _, p := range printers {
				mark := " "
				if p.IsDefault {
					mark = "*"
				}
				fmt.Printf("%s %s\n", mark, p.Name)
			}

			portNames, err := serialport.ListPorts()
			if err == nil && len(portNames) > 0 {
				fmt.Println()
				for _, name := range portNames {
					fmt.Printf("  serial:%s\n", name)
				}
			}
			return nil
		},
	}
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the label payload without printing",
		Long: "Renders the payload exactly as it would be sent. With --printer the\n" +
			"saved layout override and name-based language detection apply.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService()
			job, err := svc.Render(buildRequest())
			if err != nil {
				return err
			}

			if flagOutput != "" {
				if err := os.WriteFile(flagOutput, job.Payload, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", flagOutput, err)
				}
				fmt.Printf("wrote %d bytes of %s to %s\n", len(job.Payload), job.Language, flagOutput)
				return nil
			}
			os.Stdout.Write(job.Payload)
			return nil
		},
	}
	addFieldFlags(cmd)
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write payload to file instead of stdout")
	return cmd
}

func printCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render and submit one print job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagPrinter == "" && flagSerial == "" {
				return fmt.Errorf("either --printer or --serial is required")
			}

			svc := newService()
			req := buildRequest()

			var lang models.Language
			var err error
			if flagSerial != "" {
				port, parseErr := parseSerialTarget(flagSerial)
				if parseErr != nil {
					return parseErr
				}
				lang, err = svc.PrintTo(req, port)
			} else {
				lang, err = svc.Print(req)
			}
			if err != nil {
				return err
			}

			fmt.Printf("sent %d label(s) as %s\n", flagCopies, lang)
			return nil
		},
	}
	addFieldFlags(cmd)
	cmd.Flags().StringVar(&flagSerial, "serial", "", "COM port target, e.g. COM3 or COM3:9600")
	return cmd
}

// newService builds a print service over the stores in the working
// directory, so CLI prints share layout overrides and history with
// the GUI.
func newService() *printjob.Service {
	log := logger.NewNopLogger()

	layouts := storage.NewLayoutStore("label_layouts.json", log)
	_ = layouts.Load() // missing overrides file is fine

	var history ports.ItemRepository
	if h, err := storage.NewHistoryStore("labels.db", log); err == nil {
		history = h
	} else {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
	}

	return printjob.NewService(layouts, history, log, "", func(printer string) ports.Transport {
		return spooler.New(printer)
	})
}

func buildRequest() printjob.Request {
	override := models.OverrideAuto
	switch strings.ToUpper(flagLanguage) {
	case "ZPL":
		override = models.OverrideZPL
	case "EPL":
		override = models.OverrideEPL
	}

	size := models.SizeFourBySix
	if flagSize == "2x1" {
		size = models.SizeTwoByOne
	}

	return printjob.Request{
		PrinterName: flagPrinter,
		Override:    override,
		Size:        size,
		Fields: models.LabelFields{
			ItemNumber: flagItem,
			UPC:        flagUPC,
			Title:      flagTitle,
			Casepack:   flagCasepack,
			Copies:     flagCopies,
		},
	}
}

// parseSerialTarget splits "COM3:9600" into port and baud rate.
func parseSerialTarget(target string) (*serialport.Port, error) {
	name := target
	baud := 0
	if i := strings.LastIndex(target, ":"); i > 0 {
		name = target[:i]
		b, err := strconv.Atoi(target[i+1:])
		if err != nil || b <= 0 {
			return nil, fmt.Errorf("invalid baud rate in %q", target)
		}
		baud = b
	}
	return serialport.New(name, baud), nil
}

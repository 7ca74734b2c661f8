//go:build windows

// Package spooler submits raw byte streams to Windows printers through
// winspool.drv. The datatype is always "RAW" so the driver forwards
// the payload to the printer engine untouched (no GDI rendering).
package spooler

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
)

var (
	winspool = windows.NewLazySystemDLL("winspool.drv")

	procOpenPrinter       = winspool.NewProc("OpenPrinterW")
	procClosePrinter      = winspool.NewProc("ClosePrinter")
	procStartDocPrinter   = winspool.NewProc("StartDocPrinterW")
	procEndDocPrinter     = winspool.NewProc("EndDocPrinter")
	procStartPagePrinter  = winspool.NewProc("StartPagePrinter")
	procEndPagePrinter    = winspool.NewProc("EndPagePrinter")
	procWritePrinter      = winspool.NewProc("WritePrinter")
	procEnumPrinters      = winspool.NewProc("EnumPrintersW")
	procGetDefaultPrinter = winspool.NewProc("GetDefaultPrinterW")
)

const (
	printerEnumLocal       = 0x00000002
	printerEnumConnections = 0x00000004
)

// docInfo1 mirrors DOC_INFO_1 from winspool.h.
type docInfo1 struct {
	DocName    *uint16
	OutputFile *uint16
	Datatype   *uint16
}

// printerInfo4 mirrors PRINTER_INFO_4: the lightest enumeration level
// that still carries the display name.
type printerInfo4 struct {
	PrinterName *uint16
	ServerName  *uint16
	Attributes  uint32
}

// ListPrinters enumerates locally installed printers and network
// connections, marking the current default.
func ListPrinters() ([]models.PrinterInfo, error) {
	flags := uintptr(printerEnumLocal | printerEnumConnections)

	var needed, count uint32
	// First call sizes the buffer; ERROR_INSUFFICIENT_BUFFER is expected.
	procEnumPrinters.Call(flags, 0, 4, 0, 0,
		uintptr(unsafe.Pointer(&needed)), uintptr(unsafe.Pointer(&count)))
	if needed == 0 {
		return nil, nil
	}

	buf := make([]byte, needed)
	r1, _, err := procEnumPrinters.Call(flags, 0, 4,
		uintptr(unsafe.Pointer(&buf[0])), uintptr(needed),
		uintptr(unsafe.Pointer(&needed)), uintptr(unsafe.Pointer(&count)))
	if r1 == 0 {
		return nil, fmt.Errorf("EnumPrinters: %w", err)
	}

	def, _ := DefaultPrinter()

	infos := unsafe.Slice((*printerInfo4)(unsafe.Pointer(&buf[0])), count)
	printers := make([]models.PrinterInfo, 0, count)
	for _, pi := range infos {
		name := windows.UTF16PtrToString(pi.PrinterName)
		printers = append(printers, models.PrinterInfo{
			Name:      name,
			IsDefault: name == def,
		})
	}
	return printers, nil
}

// DefaultPrinter returns the name of the default printer, or an error
// when none is configured.
func DefaultPrinter() (string, error) {
	var size uint32
	procGetDefaultPrinter.Call(0, uintptr(unsafe.Pointer(&size)))
	if size == 0 {
		return "", fmt.Errorf("no default printer configured")
	}

	buf := make([]uint16, size)
	r1, _, err := procGetDefaultPrinter.Call(
		uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size)))
	if r1 == 0 {
		return "", fmt.Errorf("GetDefaultPrinter: %w", err)
	}
	return windows.UTF16ToString(buf), nil
}

// Spooler submits jobs to one named printer. It implements
// ports.Transport.
type Spooler struct {
	PrinterName string
}

// New returns a transport bound to the named printer.
func New(printerName string) *Spooler {
	return &Spooler{PrinterName: printerName}
}

// Describe returns a short target description for logs.
func (s *Spooler) Describe() string {
	return "spooler:" + s.PrinterName
}

// SendRaw submits payload as one RAW job. The OS error text is
// preserved verbatim so the user sees exactly what the spooler said
// (printer offline, access denied, ...). No retry.
func (s *Spooler) SendRaw(jobName string, payload []byte) error {
	namePtr, err := windows.UTF16PtrFromString(s.PrinterName)
	if err != nil {
		return fmt.Errorf("printer name: %w", err)
	}

	var h windows.Handle
	r1, _, callErr := procOpenPrinter.Call(
		uintptr(unsafe.Pointer(namePtr)), uintptr(unsafe.Pointer(&h)), 0)
	if r1 == 0 {
		return fmt.Errorf("OpenPrinter %q: %w", s.PrinterName, callErr)
	}
	defer procClosePrinter.Call(uintptr(h))

	docPtr, err := windows.UTF16PtrFromString(jobName)
	if err != nil {
		return fmt.Errorf("job name: %w", err)
	}
	rawPtr, _ := windows.UTF16PtrFromString("RAW")
	di := docInfo1{DocName: docPtr, Datatype: rawPtr}

	r1, _, callErr = procStartDocPrinter.Call(uintptr(h), 1, uintptr(unsafe.Pointer(&di)))
	if r1 == 0 {
		return fmt.Errorf("StartDocPrinter: %w", callErr)
	}
	defer procEndDocPrinter.Call(uintptr(h))

	r1, _, callErr = procStartPagePrinter.Call(uintptr(h))
	if r1 == 0 {
		return fmt.Errorf("StartPagePrinter: %w", callErr)
	}
	defer procEndPagePrinter.Call(uintptr(h))

	var written uint32
	r1, _, callErr = procWritePrinter.Call(uintptr(h),
		uintptr(unsafe.Pointer(&payload[0])), uintptr(len(payload)),
		uintptr(unsafe.Pointer(&written)))
	if r1 == 0 {
		return fmt.Errorf("WritePrinter: %w", callErr)
	}
	if int(written) != len(payload) {
		return fmt.Errorf("WritePrinter: wrote %d of %d bytes", written, len(payload))
	}
	return nil
}

// Package serialport drives label printers attached directly over a
// COM port, bypassing the spooler. Useful for LP2844-class units wired
// to a till without an installed Windows driver.
package serialport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Port submits payloads to one COM port. It implements
// ports.Transport. Each SendRaw opens, writes, drains and closes; a
// label job is a one-shot transfer, keeping the port open would only
// block other applications.
type Port struct {
	Name     string // e.g. "COM3"
	BaudRate int    // 9600 is the LP2844 factory default
}

// New returns a transport for the named COM port. baud == 0 selects
// the 9600 factory default.
func New(name string, baud int) *Port {
	if baud == 0 {
		baud = 9600
	}
	return &Port{Name: name, BaudRate: baud}
}

// ListPorts returns the COM port names present on the system.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerating serial ports: %w", err)
	}
	return ports, nil
}

// Describe returns a short target description for logs.
func (p *Port) Describe() string {
	return fmt.Sprintf("serial:%s@%d", p.Name, p.BaudRate)
}

// SendRaw writes the payload to the port as-is. jobName is ignored,
// there is no spooler queue on a direct line.
func (p *Port) SendRaw(jobName string, payload []byte) error {
	mode := &serial.Mode{
		BaudRate: p.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(p.Name, mode)
	if err != nil {
		return fmt.Errorf("opening %s: %w", p.Name, err)
	}
	defer port.Close()
	port.SetReadTimeout(3 * time.Second)

	n, err := port.Write(payload)
	if err != nil {
		return fmt.Errorf("writing to %s: %w", p.Name, err)
	}
	if n != len(payload) {
		return fmt.Errorf("short write to %s: %d of %d bytes", p.Name, n, len(payload))
	}
	return port.Drain()
}

// Package printjob owns the print flow: validate, detect the
// language, render the payload, submit it as one raw job and record
// the item in the history. The UI and the CLI both go through here.
package printjob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
	"github.com/duncansachdeva/printlabel/internal/domain/ports"
	"github.com/duncansachdeva/printlabel/internal/label"
	"github.com/duncansachdeva/printlabel/internal/storage"
)

// TransportFactory builds a transport for a named spooler printer.
// Injected so the service does not depend on winspool directly.
type TransportFactory func(printerName string) ports.Transport

// Request carries everything one print action needs.
type Request struct {
	PrinterName string
	Override    models.LanguageOverride
	Size        models.PaperSize
	Fields      models.LabelFields
}

// Service coordinates rendering and submission.
type Service struct {
	layouts      *storage.LayoutStore
	history      ports.ItemRepository
	log          ports.Logger
	logDir       string
	newTransport TransportFactory
}

// NewService wires the print service. logDir receives the payload
// debug dumps; empty disables them.
func NewService(layouts *storage.LayoutStore, history ports.ItemRepository, log ports.Logger, logDir string, factory TransportFactory) *Service {
	return &Service{
		layouts:      layouts,
		history:      history,
		log:          log,
		logDir:       logDir,
		newTransport: factory,
	}
}

// Render resolves the language and produces the payload without
// submitting anything. The CLI uses this for dry runs.
func (s *Service) Render(req Request) (models.RenderedJob, error) {
	lang := label.Detect(req.PrinterName, req.Override)
	layout := s.layouts.Get(req.PrinterName, lang, req.Size)
	return label.Render(req.Fields, req.Size, lang, &layout)
}

// Print renders and submits one job. The action is atomic from the
// user's point of view: validation failures happen before any spooler
// contact, and the copy count travels inside the payload so exactly
// one job is queued regardless of copies. History bookkeeping runs
// after a successful submit and never fails the print.
func (s *Service) Print(req Request) (models.Language, error) {
	job, err := s.Render(req)
	if err != nil {
		return "", err
	}

	s.dumpPayload(job)

	transport := s.newTransport(req.PrinterName)
	jobName := fmt.Sprintf("PrintLabel (%s)", job.Language)
	s.log.Info("[PRINT] sending %s job to %s (%d bytes, %d copies)",
		job.Language, transport.Describe(), len(job.Payload), req.Fields.Copies)

	if err := transport.SendRaw(jobName, job.Payload); err != nil {
		s.log.Error("[PRINT] submission failed: %v", err)
		return job.Language, fmt.Errorf("submitting to %s: %w", transport.Describe(), err)
	}

	s.recordHistory(req)
	return job.Language, nil
}

// PrintTo renders and submits through an explicit transport (serial
// port). Detection still uses the printer name hint, if any.
func (s *Service) PrintTo(req Request, transport ports.Transport) (models.Language, error) {
	job, err := s.Render(req)
	if err != nil {
		return "", err
	}

	s.dumpPayload(job)

	jobName := fmt.Sprintf("PrintLabel (%s)", job.Language)
	s.log.Info("[PRINT] sending %s job to %s (%d bytes)", job.Language, transport.Describe(), len(job.Payload))
	if err := transport.SendRaw(jobName, job.Payload); err != nil {
		s.log.Error("[PRINT] submission failed: %v", err)
		return job.Language, fmt.Errorf("submitting to %s: %w", transport.Describe(), err)
	}

	s.recordHistory(req)
	return job.Language, nil
}

// recordHistory stores the item and the printer selection. Failures
// are logged only; the label is already on its way out.
func (s *Service) recordHistory(req Request) {
	if s.history == nil {
		return
	}
	upc12, _ := label.EnsureUPC12(req.Fields.UPC)
	_, err := s.history.SaveItem(models.SavedItem{
		ItemNumber: req.Fields.ItemNumber,
		UPC:        upc12,
		Title:      req.Fields.Title,
		Casepack:   req.Fields.Casepack,
	})
	if err != nil {
		s.log.Warn("[PRINT] failed to record item in history: %v", err)
	}
	if err := s.history.SaveLastUsed(models.LastUsed{
		PrinterName: req.PrinterName,
		Override:    req.Override,
		Size:        req.Size,
	}); err != nil {
		s.log.Warn("[PRINT] failed to record printer selection: %v", err)
	}
}

// dumpPayload writes the payload next to the log for troubleshooting,
// best effort.
func (s *Service) dumpPayload(job models.RenderedJob) {
	if s.logDir == "" {
		return
	}
	name := fmt.Sprintf("payload_%s.txt", strings.ToLower(string(job.Language)))
	if err := os.WriteFile(filepath.Join(s.logDir, name), job.Payload, 0o644); err != nil {
		s.log.Warn("[PRINT] failed to write payload dump: %v", err)
	}
}

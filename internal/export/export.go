// Package export turns the active tab into a paginated PDF file.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/exam"
	"github.com/jonathan/ihp-exam/internal/logger"
	"github.com/jonathan/ihp-exam/internal/paginate"
	"github.com/jonathan/ihp-exam/internal/projection"
	"github.com/jonathan/ihp-exam/internal/raster"
	"github.com/jonathan/ihp-exam/internal/rendering"
	"go.uber.org/zap"
)

// ErrBusy is returned when an export is requested while another one runs.
var ErrBusy = errors.New("an export is already running")

// Stages of an export, reported in Error.
const (
	StageRender   = "render"
	StageCapture  = "capture"
	StagePaginate = "paginate"
	StageWrite    = "write"
)

// Error reports the stage at which an export failed.
type Error struct {
	Stage string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export failed at %s: %v", e.Stage, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Request describes what to export. Record is ignored for the info tab.
type Request struct {
	Tab    catalog.Tab
	Header exam.Header
	Record exam.Record
}

// Result describes a finished export.
type Result struct {
	// Skipped is set when the request had nothing to render.
	Skipped  bool
	ExportID string
	FileName string
	Path     string
	Pages    int
}

// Exporter runs at most one export at a time.
type Exporter struct {
	Capturer  raster.Capturer
	OutputDir string
	Scale     float64
	Format    paginate.PageFormat
	Log       *zap.Logger

	mu   sync.Mutex
	busy bool
}

// New returns an Exporter writing A4 pages at the default scale.
func New(c raster.Capturer, outputDir string, log *zap.Logger) *Exporter {
	return &Exporter{
		Capturer:  c,
		OutputDir: outputDir,
		Scale:     raster.DefaultScale,
		Format:    paginate.A4,
		Log:       logger.OrNop(log),
	}
}

// Busy reports whether an export is running.
func (e *Exporter) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

func (e *Exporter) acquire() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return false
	}
	e.busy = true
	return true
}

func (e *Exporter) release() {
	e.mu.Lock()
	e.busy = false
	e.mu.Unlock()
}

// Export renders req to a PDF in OutputDir. A concurrent call gets
// ErrBusy without waiting.
func (e *Exporter) Export(ctx context.Context, req Request) (Result, error) {
	doc := projection.Project(req.Tab, req.Header, req.Record)
	if doc.Empty() {
		return Result{Skipped: true}, nil
	}

	if !e.acquire() {
		return Result{}, ErrBusy
	}
	defer e.release()

	res := Result{
		ExportID: uuid.New().String(),
		FileName: FileName(req.Tab, SafeName(req.Header.CandidateName)),
	}
	res.Path = filepath.Join(e.OutputDir, res.FileName)
	log := logger.OrNop(e.Log).With(zap.String("export_id", res.ExportID), zap.String("tab", string(req.Tab)))
	log.Info("export started", zap.String("file", res.FileName))

	html, err := rendering.RenderHTML(doc)
	if err != nil {
		return Result{}, e.fail(log, StageRender, err)
	}
	if html == "" {
		return Result{Skipped: true}, nil
	}

	img, err := e.Capturer.Capture(ctx, html, e.Scale)
	if err != nil {
		return Result{}, e.fail(log, StageCapture, err)
	}

	pdf := paginate.NewPDF(e.Format)
	pdf.SetTitle(doc.Meta.Title)
	res.Pages, err = paginate.Assemble(pdf, img)
	if err != nil {
		return Result{}, e.fail(log, StagePaginate, err)
	}

	if err := writeFile(res.Path, pdf); err != nil {
		return Result{}, e.fail(log, StageWrite, err)
	}

	log.Info("export finished", zap.String("path", res.Path), zap.Int("pages", res.Pages))
	return res, nil
}

func (e *Exporter) fail(log *zap.Logger, stage string, err error) error {
	log.Error("export failed", zap.String("stage", stage), zap.Error(err))
	return &Error{Stage: stage, Cause: err}
}

func writeFile(path string, doc paginate.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := doc.Output(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

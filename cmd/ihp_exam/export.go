package main

import (
	"fmt"
	"time"

	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/export"
	"github.com/jonathan/ihp-exam/internal/observability"
	"github.com/jonathan/ihp-exam/internal/paginate"
	"github.com/jonathan/ihp-exam/internal/raster"
	"github.com/jonathan/ihp-exam/internal/rendering"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a tab as a paginated PDF",
	Long:  "Renders the print view of a tab in headless Chrome and writes it as ihp03-<tab>-<name>.pdf. Requires Chrome or Chromium.",
	RunE:  runExport,
}

var (
	exportTab   string
	exportOut   string
	exportScale float64
)

// newCapturer builds the raster service; tests replace it.
var newCapturer = func(timeout time.Duration, log *zap.Logger) raster.Capturer {
	return raster.NewChromeCapturer(rendering.RootSelector, timeout, log)
}

func init() {
	exportCmd.Flags().StringVarP(&exportTab, "tab", "t", "", "Tab: fagprove, kompetanse or info (required)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output directory (default from config)")
	exportCmd.Flags().Float64Var(&exportScale, "scale", 0, "Snapshot scale (default from config)")

	if err := exportCmd.MarkFlagRequired("tab"); err != nil {
		panic(fmt.Sprintf("failed to mark tab flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

// newExporter builds an Exporter from the resolved configuration. The
// configuration is validated again since commands may override it.
func newExporter(a *app) (*export.Exporter, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	format, ok := paginate.ParsePageFormat(a.cfg.PageFormat)
	if !ok {
		return nil, fmt.Errorf("unknown page format %q", a.cfg.PageFormat)
	}
	e := export.New(newCapturer(a.cfg.Timeout(), a.log), a.cfg.OutputDir, a.log)
	e.Scale = a.cfg.Scale
	e.Format = format
	return e, nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	tab, ok := catalog.ParseTab(exportTab)
	if !ok {
		return fmt.Errorf("unknown tab %q (want fagprove, kompetanse or info)", exportTab)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if exportOut != "" {
		a.cfg.OutputDir = exportOut
	}
	if exportScale != 0 {
		a.cfg.Scale = exportScale
	}

	e, err := newExporter(a)
	if err != nil {
		return err
	}

	req := export.Request{Tab: tab, Header: a.session.Header()}
	if v, ok := catalog.Lookup(tab); ok {
		req.Record = a.session.Record(v)
	}

	res, err := e.Export(cmd.Context(), req)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintExport(res)
	return nil
}

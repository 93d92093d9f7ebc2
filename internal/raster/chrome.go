package raster

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/ihp-exam/internal/logger"
	"go.uber.org/zap"
)

// DefaultScale is the device pixel ratio used for snapshots.
const DefaultScale = 2

// ChromeCapturer renders HTML in headless Chrome. Chrome or Chromium must
// be installed.
type ChromeCapturer struct {
	// Selector is the element to capture.
	Selector string
	Timeout  time.Duration
	Log      *zap.Logger
}

// NewChromeCapturer returns a capturer for the element matched by selector.
func NewChromeCapturer(selector string, timeout time.Duration, log *zap.Logger) *ChromeCapturer {
	return &ChromeCapturer{Selector: selector, Timeout: timeout, Log: logger.OrNop(log)}
}

// Capture implements Capturer.
func (c *ChromeCapturer) Capture(ctx context.Context, html string, scale float64) (*Image, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	log := logger.OrNop(c.Log)
	log.Debug("starting headless browser", zap.Int("html_bytes", len(html)), zap.Float64("scale", scale))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("hide-scrollbars", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	if c.Timeout > 0 {
		browserCtx, cancel = context.WithTimeout(browserCtx, c.Timeout)
		defer cancel()
	}

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady(c.Selector),
		chromedp.ScreenshotScale(c.Selector, scale, &buf, chromedp.NodeVisible),
	)
	if err != nil {
		return nil, &CaptureError{Message: "browser capture failed", Cause: err}
	}

	img, err := FromPNG(buf)
	if err != nil {
		return nil, err
	}
	log.Debug("captured snapshot", zap.Int("width", img.Width), zap.Int("height", img.Height))
	return img, nil
}

// Package raster captures rendered HTML as a PNG snapshot.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"
)

// Image is a captured PNG with its pixel size.
type Image struct {
	PNG    []byte
	Width  int
	Height int
}

// Capturer renders an HTML page and returns a snapshot of its print root.
type Capturer interface {
	Capture(ctx context.Context, html string, scale float64) (*Image, error)
}

// CaptureError represents a failure to produce a snapshot.
type CaptureError struct {
	Message string
	Cause   error
}

func (e *CaptureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("capture error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("capture error: %s", e.Message)
}

func (e *CaptureError) Unwrap() error {
	return e.Cause
}

// FromPNG wraps PNG bytes, reading the pixel size from the header.
func FromPNG(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &CaptureError{Message: "failed to decode snapshot", Cause: err}
	}
	if format != "png" {
		return nil, &CaptureError{Message: fmt.Sprintf("snapshot is %s, want png", format)}
	}
	return &Image{PNG: data, Width: cfg.Width, Height: cfg.Height}, nil
}

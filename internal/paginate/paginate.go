// Package paginate splits one tall raster over fixed-size document pages.
//
// The raster is scaled to the page width and drawn in full on every page,
// shifted up by one page height per page already emitted, so each page
// shows the next slice.
package paginate

import (
	"io"

	"github.com/jonathan/ihp-exam/internal/raster"
)

// tolerance absorbs floating point residue so an exact multiple of the
// page height does not produce a trailing blank page.
const tolerance = 1e-6

// PageFormat is a portrait page size in points.
type PageFormat struct {
	Name   string
	Width  float64
	Height float64
}

var (
	A4     = PageFormat{Name: "A4", Width: 595.28, Height: 841.89}
	Letter = PageFormat{Name: "Letter", Width: 612, Height: 792}
)

// ParsePageFormat returns the page format with the given name.
func ParsePageFormat(name string) (PageFormat, bool) {
	switch name {
	case "A4", "a4":
		return A4, true
	case "Letter", "letter":
		return Letter, true
	}
	return PageFormat{}, false
}

// Placement is where the scaled raster is drawn on one page.
type Placement struct {
	Page   int
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Plan computes one placement per page for a w×h pixel raster on pages of
// pw×ph points.
func Plan(w, h int, pw, ph float64) ([]Placement, error) {
	if w <= 0 || h < 0 || pw <= 0 || ph <= 0 {
		return nil, &ConfigError{
			Message:    "raster width and page size must be positive",
			Width:      w,
			Height:     h,
			PageWidth:  pw,
			PageHeight: ph,
		}
	}

	scaled := float64(h) * pw / float64(w)
	placements := []Placement{{Page: 0, Y: 0, Width: pw, Height: scaled}}

	remaining := scaled - ph
	for remaining > tolerance {
		i := len(placements)
		placements = append(placements, Placement{
			Page:   i,
			Y:      -float64(i) * ph,
			Width:  pw,
			Height: scaled,
		})
		remaining -= ph
	}
	return placements, nil
}

// Document receives pages and images.
type Document interface {
	PageSize() (w, h float64)
	AddPage()
	RegisterImage(name string, png []byte) error
	DrawImage(name string, x, y, w, h float64)
	Output(w io.Writer) error
}

const imageName = "content"

// Assemble plans img over doc's pages and draws it. It returns the number
// of pages added.
func Assemble(doc Document, img *raster.Image) (int, error) {
	if img == nil {
		return 0, &ConfigError{Message: "no raster"}
	}
	pw, ph := doc.PageSize()
	placements, err := Plan(img.Width, img.Height, pw, ph)
	if err != nil {
		return 0, err
	}

	if err := doc.RegisterImage(imageName, img.PNG); err != nil {
		return 0, &AssembleError{Message: "failed to register image", Cause: err}
	}
	for _, p := range placements {
		doc.AddPage()
		doc.DrawImage(imageName, p.X, p.Y, p.Width, p.Height)
	}
	return len(placements), nil
}

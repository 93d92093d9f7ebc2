package paginate

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// PDF is a Document backed by fpdf.
type PDF struct {
	format PageFormat
	pdf    *fpdf.Fpdf
}

// NewPDF creates an empty portrait PDF measured in points.
func NewPDF(format PageFormat) *PDF {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: format.Width, Ht: format.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("ihp-exam", true)
	return &PDF{format: format, pdf: pdf}
}

// SetTitle sets the document title metadata.
func (p *PDF) SetTitle(title string) {
	p.pdf.SetTitle(title, true)
}

// PageSize implements Document.
func (p *PDF) PageSize() (float64, float64) {
	return p.format.Width, p.format.Height
}

// AddPage implements Document.
func (p *PDF) AddPage() {
	p.pdf.AddPage()
}

// RegisterImage implements Document.
func (p *PDF) RegisterImage(name string, png []byte) error {
	p.pdf.RegisterImageOptionsReader(name, imageOptions, bytes.NewReader(png))
	if p.pdf.Err() {
		return fmt.Errorf("register png: %w", p.pdf.Error())
	}
	return nil
}

var imageOptions = fpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}

// DrawImage implements Document.
func (p *PDF) DrawImage(name string, x, y, w, h float64) {
	p.pdf.ImageOptions(name, x, y, w, h, false, imageOptions, 0, "")
}

// PageCount returns the number of pages added so far.
func (p *PDF) PageCount() int {
	return p.pdf.PageCount()
}

// Output implements Document.
func (p *PDF) Output(w io.Writer) error {
	if err := p.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

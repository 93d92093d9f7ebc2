package paginate

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"testing"

	"github.com/jonathan/ihp-exam/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offsets(ps []Placement) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Y
	}
	return out
}

func TestPlan_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		pw, ph    float64
		wantPages int
		wantY     []float64
	}{
		{"shorter than a page", 400, 300, 400, 400, 1, []float64{0}},
		{"exactly one page", 400, 400, 400, 400, 1, []float64{0}},
		{"one pixel over", 400, 401, 400, 400, 2, []float64{0, -400}},
		{"exactly two pages", 400, 800, 400, 400, 2, []float64{0, -400}},
		{"two and a half pages", 400, 1000, 400, 400, 3, []float64{0, -400, -800}},
		{"downscaled", 800, 2000, 400, 400, 3, []float64{0, -400, -800}},
		{"upscaled", 200, 500, 400, 400, 3, []float64{0, -400, -800}},
		{"zero height", 400, 0, 400, 400, 1, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := Plan(tt.w, tt.h, tt.pw, tt.ph)
			require.NoError(t, err)
			assert.Len(t, ps, tt.wantPages)
			assert.Equal(t, tt.wantY, offsets(ps))

			scaled := float64(tt.h) * tt.pw / float64(tt.w)
			for i, p := range ps {
				assert.Equal(t, i, p.Page)
				assert.Equal(t, 0.0, p.X)
				assert.Equal(t, tt.pw, p.Width)
				assert.InDelta(t, scaled, p.Height, 1e-9)
			}
		})
	}
}

func TestPlan_PageCountMatchesCeil(t *testing.T) {
	pw, ph := A4.Width, A4.Height
	for _, h := range []int{1, 500, 1123, 1588, 2245, 2246, 3368, 10000, 33333} {
		ps, err := Plan(794, h, pw, ph)
		require.NoError(t, err)

		scaled := float64(h) * pw / 794
		want := int(math.Max(1, math.Ceil(scaled/ph-tolerance)))
		assert.Equal(t, want, len(ps), "h=%d", h)

		last := ps[len(ps)-1]
		assert.LessOrEqual(t, -last.Y, scaled, "last page must show part of the image")
	}
}

func TestPlan_ExactMultipleOfA4(t *testing.T) {
	// Scales to two A4 heights; floating point residue must not add a page.
	ps, err := Plan(59528, 168378, A4.Width, A4.Height)
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}

func TestPlan_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		pw, ph float64
	}{
		{"zero width", 0, 100, 400, 400},
		{"negative width", -1, 100, 400, 400},
		{"negative height", 100, -1, 400, 400},
		{"zero page height", 100, 100, 400, 0},
		{"negative page height", 100, 100, 400, -10},
		{"zero page width", 100, 100, 0, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := Plan(tt.w, tt.h, tt.pw, tt.ph)
			assert.Nil(t, ps)
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.w, cfgErr.Width)
			assert.Equal(t, tt.ph, cfgErr.PageHeight)
		})
	}
}

type drawCall struct {
	name       string
	x, y, w, h float64
}

type fakeDoc struct {
	pw, ph     float64
	pages      int
	registered []string
	draws      []drawCall
	regErr     error
}

func (d *fakeDoc) PageSize() (float64, float64) { return d.pw, d.ph }
func (d *fakeDoc) AddPage()                     { d.pages++ }
func (d *fakeDoc) RegisterImage(name string, _ []byte) error {
	d.registered = append(d.registered, name)
	return d.regErr
}
func (d *fakeDoc) DrawImage(name string, x, y, w, h float64) {
	d.draws = append(d.draws, drawCall{name, x, y, w, h})
}
func (d *fakeDoc) Output(io.Writer) error { return nil }

func TestAssemble(t *testing.T) {
	doc := &fakeDoc{pw: 400, ph: 400}
	n, err := Assemble(doc, &raster.Image{Width: 800, Height: 2000})
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, 3, doc.pages)
	assert.Len(t, doc.registered, 1, "image registered once")
	assert.Equal(t, []drawCall{
		{imageName, 0, 0, 400, 1000},
		{imageName, 0, -400, 400, 1000},
		{imageName, 0, -800, 400, 1000},
	}, doc.draws)
}

func TestAssemble_ConfigErrorAddsNoPages(t *testing.T) {
	doc := &fakeDoc{pw: 400, ph: 0}
	_, err := Assemble(doc, &raster.Image{Width: 800, Height: 2000})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Zero(t, doc.pages)
	assert.Empty(t, doc.registered)
}

func TestAssemble_NilImage(t *testing.T) {
	_, err := Assemble(&fakeDoc{pw: 1, ph: 1}, nil)
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestAssemble_RegisterError(t *testing.T) {
	doc := &fakeDoc{pw: 400, ph: 400, regErr: errors.New("bad png")}
	_, err := Assemble(doc, &raster.Image{Width: 10, Height: 10})

	var asmErr *AssembleError
	require.True(t, errors.As(err, &asmErr))
	assert.Zero(t, doc.pages)
}

func opaquePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: uint8(y % 256), B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPDF_AssembleAndOutput(t *testing.T) {
	data := opaquePNG(t, 40, 150)
	img, err := raster.FromPNG(data)
	require.NoError(t, err)

	doc := NewPDF(A4)
	doc.SetTitle("Fagprøve")
	n, err := Assemble(doc, img)
	require.NoError(t, err)

	// 150 * 595.28 / 40 = 2232.3pt, just under three A4 pages.
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, doc.PageCount())

	var out bytes.Buffer
	require.NoError(t, doc.Output(&out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
}

func TestPDF_RejectsBrokenPNG(t *testing.T) {
	doc := NewPDF(Letter)
	err := doc.RegisterImage("x", []byte("not a png"))
	assert.Error(t, err)
}

func TestParsePageFormat(t *testing.T) {
	f, ok := ParsePageFormat("A4")
	assert.True(t, ok)
	assert.Equal(t, A4, f)

	f, ok = ParsePageFormat("letter")
	assert.True(t, ok)
	assert.Equal(t, 612.0, f.Width)

	_, ok = ParsePageFormat("A5")
	assert.False(t, ok)
}

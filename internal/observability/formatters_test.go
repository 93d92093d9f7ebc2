package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/exam"
	"github.com/jonathan/ihp-exam/internal/export"
	"github.com/stretchr/testify/assert"
)

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintHeader(exam.Header{CandidateName: "Kari Nordmann", Date: "2026-05-04"})
	output := buf.String()

	assert.Contains(t, output, "KANDIDAT")
	assert.Contains(t, output, "Kari Nordmann")
	assert.Contains(t, output, "2026-05-04")
	assert.Contains(t, output, "Trim AS")
}

func TestPrintHeader_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHeader(exam.Header{})
	assert.Contains(t, buf.String(), "Navn:  —")
}

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := exam.Defaults(catalog.Fagprove)
	r.Answers["pitch"] = "En kort pitch\nover to linjer"
	r.AIDisclosure["pitch"] = "ChatGPT"
	r.Answers["mal"] = strings.Repeat("lang tekst ", 20)

	p.PrintRecord(catalog.Fagprove, r)
	output := buf.String()

	assert.Contains(t, output, "FAGPRØVE")
	assert.Contains(t, output, "Lys & Brød (Café)")
	assert.Contains(t, output, "Besvart: 2 av 27")
	assert.Contains(t, output, "En kort pitch over to linjer")
	assert.Contains(t, output, "KI: ChatGPT")
	assert.Contains(t, output, "Kreativ brief")
	assert.Contains(t, output, "...")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := exam.Defaults(catalog.Kompetanse)
	r.Answers["design"] = strings.Repeat("æøå ", 40)
	p.PrintRecord(catalog.Kompetanse, r)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestAnswered(t *testing.T) {
	r := exam.Defaults(catalog.Kompetanse)
	assert.Equal(t, 0, Answered(catalog.Kompetanse, r))
	r.Answers["design"] = "x"
	r.Answers["lysvalg"] = "   "
	assert.Equal(t, 1, Answered(catalog.Kompetanse, r))
}

func TestPrintQuestions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintQuestions(catalog.Kompetanse)
	output := buf.String()

	for _, k := range catalog.Kompetanse.Keys() {
		assert.Contains(t, output, k)
	}
	assert.Contains(t, output, "museum (Museum)")
	assert.NotContains(t, output, "gym")
}

func TestPrintExport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExport(export.Result{Path: "out/ihp03-info-kandidat.pdf", Pages: 2, ExportID: "abc"})
	assert.Contains(t, buf.String(), "ihp03-info-kandidat.pdf")
	assert.Contains(t, buf.String(), "Sider:  2")

	buf.Reset()
	p.PrintExport(export.Result{Skipped: true})
	assert.Contains(t, buf.String(), "Ingenting")
}

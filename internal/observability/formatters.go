// Package observability provides formatted terminal summaries for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/exam"
	"github.com/jonathan/ihp-exam/internal/export"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// previewWidth is how much of an answer is shown in a summary line
	previewWidth = 40
)

// Printer handles formatted summaries
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// preview flattens an answer to one line.
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "—"
	}
	return truncate(s, previewWidth)
}

// PrintHeader outputs the shared candidate header.
func (p *Printer) PrintHeader(h exam.Header) {
	name := h.CandidateName
	if strings.TrimSpace(name) == "" {
		name = "—"
	}
	date := h.Date
	if date == "" {
		date = "—"
	}
	p.printBox("KANDIDAT", fmt.Sprintf("Navn:  %s\nDato:  %s\nByrå:  %s", name, date, catalog.Agency))
}

// PrintRecord outputs the customer and a one-line preview of every answer.
func (p *Printer) PrintRecord(v *catalog.Variant, r exam.Record) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Kunde:   %s (%s)\n", r.CustomerName, r.CustomerType.Label()))
	sb.WriteString(fmt.Sprintf("Besvart: %d av %d\n", Answered(v, r), len(v.Keys())))

	for _, s := range v.Sections {
		sb.WriteString(fmt.Sprintf("\n%s\n", s.Heading))
		for _, q := range s.Questions {
			mark := "·"
			if strings.TrimSpace(r.Answers[q.Key]) != "" {
				mark = "✓"
			}
			sb.WriteString(fmt.Sprintf("  %s %-20s %s\n", mark, q.Key, preview(r.Answers[q.Key])))
			if v.AIDisclosure && strings.TrimSpace(r.AIDisclosure[q.Key]) != "" {
				sb.WriteString(fmt.Sprintf("    KI: %s\n", preview(r.AIDisclosure[q.Key])))
			}
		}
	}

	p.printBox(strings.ToUpper(v.ID.Label()), strings.TrimSuffix(sb.String(), "\n"))
}

// Answered counts the non-blank answers of r.
func Answered(v *catalog.Variant, r exam.Record) int {
	n := 0
	for _, k := range v.Keys() {
		if strings.TrimSpace(r.Answers[k]) != "" {
			n++
		}
	}
	return n
}

// PrintQuestions lists the question catalog of a variant.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintQuestions(v *catalog.Variant) {
	fmt.Fprintf(p.out, "%s (%s)\n", v.ID.Title(), v.ID)
	for _, s := range v.Sections {
		fmt.Fprintf(p.out, "\n## %s\n", s.Heading)
		for _, q := range s.Questions {
			fmt.Fprintf(p.out, "  %-22s %s\n", q.Key, q.Title)
			fmt.Fprintf(p.out, "  %-22s %s\n", "", q.Prompt)
		}
	}
	fmt.Fprintf(p.out, "\nKundetyper: ")
	for i, t := range v.CustomerTypes {
		if i > 0 {
			fmt.Fprint(p.out, ", ")
		}
		fmt.Fprintf(p.out, "%s (%s)", t, t.Label())
	}
	fmt.Fprintln(p.out)
}

// PrintExport outputs the result of an export.
func (p *Printer) PrintExport(res export.Result) {
	if res.Skipped {
		p.printBox("EKSPORT", "Ingenting å eksportere.")
		return
	}
	p.printBox("EKSPORT", fmt.Sprintf("Fil:    %s\nSider:  %d\nID:     %s", res.Path, res.Pages, res.ExportID))
}

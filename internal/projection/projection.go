// Package projection maps the answer state onto the print layout of one
// tab. The mapping is pure: the same input always yields the same
// Document.
package projection

import (
	"strings"

	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/exam"
)

// Placeholder replaces empty values in the printed document.
const Placeholder = "—"

// Document is the print view of one tab.
type Document struct {
	Tab       catalog.Tab `json:"tab"`
	Meta      Meta        `json:"meta"`
	Heading   string      `json:"heading,omitempty"`
	Blocks    []Block     `json:"blocks"`
	Reference []Reference `json:"reference"`
	Links     []Link      `json:"links"`
}

// Meta is the leading metadata of a printed document. Customer fields are
// empty on the info tab.
type Meta struct {
	Title         string `json:"title"`
	CandidateName string `json:"candidateName"`
	Date          string `json:"date"`
	Agency        string `json:"agency"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerLabel string `json:"customerLabel,omitempty"`
	FocusLabel    string `json:"focusLabel,omitempty"`
	Focus         string `json:"focus,omitempty"`
}

// Block is one question with its answer.
type Block struct {
	Key          string  `json:"key"`
	Prompt       string  `json:"prompt"`
	Answer       string  `json:"answer"`
	AIDisclosure *string `json:"aiDisclosure,omitempty"`
}

// Reference is a numbered list of curriculum text appended after the
// answers.
type Reference struct {
	Heading string          `json:"heading"`
	Items   []ReferenceItem `json:"items"`
}

// ReferenceItem is one entry of a Reference list. Title may be empty.
type ReferenceItem struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// Link is a footer link.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

var focusLabels = map[catalog.Tab]string{
	catalog.TabFagprove:   "Profil",
	catalog.TabKompetanse: "Fokus",
}

// Project builds the print view of tab. record is ignored for the info
// tab. An unknown tab yields a Document with an empty title.
func Project(tab catalog.Tab, header exam.Header, record exam.Record) Document {
	doc := Document{
		Tab: tab,
		Meta: Meta{
			Title:         tab.Title(),
			CandidateName: orPlaceholder(header.CandidateName),
			Date:          orPlaceholder(header.Date),
			Agency:        catalog.Agency,
		},
		Blocks:    []Block{},
		Reference: []Reference{},
		Links: []Link{
			{Label: "Kompetansemål og vurdering", URL: catalog.CompetenceAimsURL},
			{Label: "Kjerneelementer", URL: catalog.CoreElementsURL},
		},
	}

	switch tab {
	case catalog.TabFagprove:
		doc.Reference = append(doc.Reference, competenceAims("Kompetansemål (sjekkliste)"))
	case catalog.TabKompetanse:
		doc.Reference = append(doc.Reference, coreElements("Kjerneelementer (referanse)"))
	case catalog.TabInfo:
		doc.Reference = append(doc.Reference,
			coreElements("Kjerneelementer"),
			competenceAims("Kompetansemål"),
		)
		return doc
	default:
		return Document{Tab: tab, Blocks: []Block{}, Reference: []Reference{}, Links: []Link{}}
	}

	v, _ := catalog.Lookup(tab)
	doc.Heading = v.Heading
	doc.Meta.CustomerName = orPlaceholder(record.CustomerName)
	doc.Meta.CustomerLabel = record.CustomerType.Label()
	doc.Meta.FocusLabel = focusLabels[tab]
	doc.Meta.Focus = v.Focus

	for _, q := range v.Questions() {
		b := Block{
			Key:    q.Key,
			Prompt: q.Title,
			Answer: orPlaceholder(record.Answers[q.Key]),
		}
		if v.AIDisclosure {
			ai := orPlaceholder(record.AIDisclosure[q.Key])
			b.AIDisclosure = &ai
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	return doc
}

// Empty reports whether the document has nothing to print.
func (d Document) Empty() bool {
	return d.Meta.Title == ""
}

func orPlaceholder(s string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return Placeholder
}

func competenceAims(heading string) Reference {
	items := make([]ReferenceItem, len(catalog.CompetenceAims))
	for i, aim := range catalog.CompetenceAims {
		items[i] = ReferenceItem{Text: aim}
	}
	return Reference{Heading: heading, Items: items}
}

func coreElements(heading string) Reference {
	items := make([]ReferenceItem, len(catalog.CoreElements))
	for i, el := range catalog.CoreElements {
		items[i] = ReferenceItem{Title: el.Title, Text: el.Description}
	}
	return Reference{Heading: heading, Items: items}
}

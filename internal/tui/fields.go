package tui

import (
	"context"

	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/exam"
)

type fieldKind int

const (
	fieldCandidate fieldKind = iota
	fieldDate
	fieldCustomerType
	fieldCustomerName
	fieldAnswer
	fieldAI
)

// field is one editable row of an assessment tab.
type field struct {
	kind    fieldKind
	key     string
	label   string
	section string
}

// fieldsFor lists the rows of v's tab in display order: the shared header,
// the customer, then every question with its AI note when v has one.
func fieldsFor(v *catalog.Variant) []field {
	fields := []field{
		{kind: fieldCandidate, label: "Kandidatnavn"},
		{kind: fieldDate, label: "Dato (ÅÅÅÅ-MM-DD)"},
		{kind: fieldCustomerType, label: "Kundetype"},
		{kind: fieldCustomerName, label: "Kundenavn"},
	}
	for _, s := range v.Sections {
		for i, q := range s.Questions {
			f := field{kind: fieldAnswer, key: q.Key, label: q.Title}
			if i == 0 {
				f.section = s.Heading
			}
			fields = append(fields, f)
			if v.AIDisclosure {
				fields = append(fields, field{kind: fieldAI, key: q.Key, label: "↳ KI-verktøy brukt"})
			}
		}
	}
	return fields
}

func (f field) value(s *exam.Session, v *catalog.Variant) string {
	switch f.kind {
	case fieldCandidate:
		return s.Header().CandidateName
	case fieldDate:
		return s.Header().Date
	case fieldCustomerType:
		return s.Record(v).CustomerType.Label()
	case fieldCustomerName:
		return s.Record(v).CustomerName
	case fieldAnswer:
		return s.Record(v).Answers[f.key]
	case fieldAI:
		return s.Record(v).AIDisclosure[f.key]
	}
	return ""
}

// commit stores text in the field through the session, which saves it.
func (f field) commit(ctx context.Context, s *exam.Session, v *catalog.Variant, text string) error {
	switch f.kind {
	case fieldCandidate:
		h := s.Header()
		h.CandidateName = text
		return s.SetHeader(ctx, h)
	case fieldDate:
		h := s.Header()
		h.Date = text
		return s.SetHeader(ctx, h)
	case fieldCustomerName:
		return s.SetCustomerName(ctx, v, text)
	case fieldAnswer:
		return s.SetAnswer(ctx, v, f.key, text)
	case fieldAI:
		return s.SetAIDisclosure(ctx, v, f.key, text)
	}
	return nil
}

// multiline reports whether the field is edited in a multi-line editor.
func (f field) multiline() bool {
	return f.kind == fieldAnswer || f.kind == fieldAI
}

// nextCustomerType cycles to the next type v offers.
func nextCustomerType(v *catalog.Variant, current catalog.CustomerType) catalog.CustomerType {
	for i, t := range v.CustomerTypes {
		if t == current {
			return v.CustomerTypes[(i+1)%len(v.CustomerTypes)]
		}
	}
	return v.DefaultCustomerType()
}

package exam

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/schemas"
	"github.com/jonathan/ihp-exam/internal/storage"
)

// Clock returns the current local time.
type Clock func() time.Time

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// Session owns the header and the variant records for one candidate and
// saves them after every change. It is not safe for concurrent use.
type Session struct {
	adapter *storage.Adapter
	header  Header
	records map[catalog.Tab]Record
}

// RegisterSchemas attaches the JSON Schemas of the persisted values to a,
// so stored text of the wrong shape is ignored on load.
func RegisterSchemas(a *storage.Adapter) *storage.Adapter {
	return a.
		WithSchema(KeyShared, schemas.MustLoad(schemas.Header)).
		WithSchema(KeyFagprove, schemas.MustLoad(schemas.Fagprove)).
		WithSchema(KeyKompetanse, schemas.MustLoad(schemas.Kompetanse))
}

// Open builds the default state and replaces each value with its
// persisted copy when one can be read.
func Open(ctx context.Context, adapter *storage.Adapter, clock Clock) *Session {
	if clock == nil {
		clock = time.Now
	}
	s := &Session{
		adapter: adapter,
		records: make(map[catalog.Tab]Record),
	}

	defHeader := Header{Date: clock().Format(DateLayout)}
	s.header = storage.Load(ctx, adapter, KeyShared, defHeader)
	if err := s.header.Validate(); err != nil {
		s.header = defHeader
	}

	for _, v := range catalog.Variants() {
		r := storage.Load(ctx, adapter, StorageKey(v), Defaults(v))
		s.records[v.ID] = Normalize(v, r)
	}
	return s
}

// Header returns the shared header.
func (s *Session) Header() Header {
	return s.header
}

// SetHeader replaces the shared header and saves it.
func (s *Session) SetHeader(ctx context.Context, h Header) error {
	if err := h.Validate(); err != nil {
		return &ValidationError{Field: "date", Message: fmt.Sprintf("%q is not a YYYY-MM-DD date", h.Date), Cause: err}
	}
	s.header = h
	storage.Save(ctx, s.adapter, KeyShared, s.header)
	return nil
}

// Record returns a copy of the variant's record.
func (s *Session) Record(v *catalog.Variant) Record {
	return s.records[v.ID].Clone()
}

// SetRecord replaces the variant's record and saves it. When the customer
// type changed, the derived-name rule is applied first.
func (s *Session) SetRecord(ctx context.Context, v *catalog.Variant, r Record) error {
	if !v.Offers(r.CustomerType) {
		return &ValidationError{
			Field:   "customerType",
			Message: fmt.Sprintf("%q is not offered by %s", r.CustomerType, v.ID),
		}
	}
	prev := s.records[v.ID]
	if r.CustomerType != prev.CustomerType {
		r = SyncCustomerName(r)
	}
	s.records[v.ID] = Normalize(v, r)
	storage.Save(ctx, s.adapter, StorageKey(v), s.records[v.ID])
	return nil
}

// SetAnswer sets the answer to one question.
func (s *Session) SetAnswer(ctx context.Context, v *catalog.Variant, key, text string) error {
	if _, ok := v.Question(key); !ok {
		return &ValidationError{Field: "key", Message: fmt.Sprintf("%q is not a question of %s", key, v.ID)}
	}
	r := s.Record(v)
	r.Answers[key] = text
	return s.SetRecord(ctx, v, r)
}

// SetAIDisclosure sets the note about generative tools used for one
// question.
func (s *Session) SetAIDisclosure(ctx context.Context, v *catalog.Variant, key, text string) error {
	if !v.AIDisclosure {
		return &ValidationError{Field: "ai", Message: fmt.Sprintf("%s has no AI disclosure", v.ID)}
	}
	if _, ok := v.Question(key); !ok {
		return &ValidationError{Field: "key", Message: fmt.Sprintf("%q is not a question of %s", key, v.ID)}
	}
	r := s.Record(v)
	r.AIDisclosure[key] = text
	return s.SetRecord(ctx, v, r)
}

// SetCustomerType changes the customer type.
func (s *Session) SetCustomerType(ctx context.Context, v *catalog.Variant, t catalog.CustomerType) error {
	r := s.Record(v)
	r.CustomerType = t
	return s.SetRecord(ctx, v, r)
}

// SetCustomerName changes the customer name.
func (s *Session) SetCustomerName(ctx context.Context, v *catalog.Variant, name string) error {
	r := s.Record(v)
	r.CustomerName = name
	return s.SetRecord(ctx, v, r)
}

// ResetPrompt is the question asked before a variant is reset.
func ResetPrompt(v *catalog.Variant) string {
	return fmt.Sprintf("Nullstille alle svar i %s?", v.ID.Label())
}

// Reset restores the variant's defaults after the confirmer agrees. It
// reports whether the reset happened.
func (s *Session) Reset(ctx context.Context, v *catalog.Variant, c Confirmer) (bool, error) {
	ok, err := c.Confirm(ResetPrompt(v))
	if err != nil {
		return false, fmt.Errorf("confirm reset: %w", err)
	}
	if !ok {
		return false, nil
	}
	s.records[v.ID] = Defaults(v)
	storage.Save(ctx, s.adapter, StorageKey(v), s.records[v.ID])
	return true, nil
}

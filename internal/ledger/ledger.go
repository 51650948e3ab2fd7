// Package ledger holds the in-memory Ledger Store: one trip profile and the
// expense records that belong to it. It never touches storage; callers that
// need persistence compose it with a storage.KV (see services.LedgerService).
package ledger

import (
	"strings"

	"github.com/google/uuid"

	"tripspend/internal/core"
)

// Ledger owns a single core.Document exclusively. It is not safe for
// concurrent use; every operation is a single synchronous step.
type Ledger struct {
	doc   core.Document
	newID func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDGenerator replaces the identifier source for new records.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) {
		if fn != nil {
			l.newID = fn
		}
	}
}

// New creates a ledger seeded with a copy of doc.
func New(doc core.Document, opts ...Option) *Ledger {
	l := &Ledger{
		doc:   doc.Clone(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Profile returns the current trip profile.
func (l *Ledger) Profile() core.TripProfile {
	return l.doc.Trip
}

// UpdateProfile replaces the profile wholesale.
func (l *Ledger) UpdateProfile(p core.TripProfile) {
	l.doc.Trip = p
}

// AddExpense validates in and appends a new record. On a validation error
// the collection is left untouched.
func (l *Ledger) AddExpense(in core.ExpenseInput) (core.ExpenseRecord, error) {
	if err := in.Validate(); err != nil {
		return core.ExpenseRecord{}, err
	}

	r := core.ExpenseRecord{
		ID:       l.newID(),
		Date:     in.Date,
		Amount:   in.Amount,
		Currency: in.Currency,
		Category: in.Category,
		Payment:  in.Payment,
		Note:     strings.TrimSpace(in.Note),
	}
	l.doc.Expenses = append(l.doc.Expenses, r)
	return r, nil
}

// RemoveExpense deletes every record with the given id, so duplicates in a
// hand-edited document go together. It reports whether anything was
// removed; an unknown id is a no-op.
func (l *Ledger) RemoveExpense(id string) bool {
	kept := l.doc.Expenses[:0]
	for _, r := range l.doc.Expenses {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	removed := len(kept) != len(l.doc.Expenses)
	clear(l.doc.Expenses[len(kept):])
	l.doc.Expenses = kept
	return removed
}

// Reset restores the default profile and clears every record.
func (l *Ledger) Reset() {
	l.doc = core.DefaultDocument()
}

// Aggregate recomputes the summary statistics; results are never cached.
func (l *Ledger) Aggregate() core.AggregateView {
	return core.ComputeAggregate(l.doc)
}

// Tiles returns the per-currency overview for the current profile.
func (l *Ledger) Tiles() []core.CurrencyTile {
	return core.Tiles(l.doc.Trip, l.Aggregate())
}

// Expenses returns the records in display order: date descending, records
// sharing a date in insertion order.
func (l *Ledger) Expenses() []core.ExpenseRecord {
	return core.SortByDateDesc(l.doc.Expenses)
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.doc.Expenses)
}

// Document returns a deep copy suitable for serialization.
func (l *Ledger) Document() core.Document {
	return l.doc.Clone()
}

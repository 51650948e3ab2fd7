package services

import (
	"context"
	"errors"
	"fmt"

	"tripspend/internal/core"
	"tripspend/internal/ledger"
	applog "tripspend/internal/log"
	"tripspend/internal/storage"
)

// LedgerService composes the in-memory ledger with a key-value store.
// Every mutation runs against memory first and then persists the whole
// document; a persistence failure is logged and swallowed, leaving the
// in-memory state authoritative for the rest of the session.
type LedgerService struct {
	ledger *ledger.Ledger
	kv     storage.KV
	key    string
	logger *applog.Logger
}

// Open loads the document stored under key. An absent, unreadable or
// malformed blob falls back to core.DefaultDocument; Open never fails on
// persistence problems.
func Open(ctx context.Context, kv storage.KV, key string, logger *applog.Logger, opts ...ledger.Option) *LedgerService {
	if logger == nil {
		logger = applog.FromContext(ctx)
	}
	logger = logger.WithComponent(applog.ComponentLedger)

	s := &LedgerService{kv: kv, key: key, logger: logger}
	s.ledger = ledger.New(s.load(ctx), opts...)
	return s
}

func (s *LedgerService) load(ctx context.Context) core.Document {
	if s.kv == nil {
		return core.DefaultDocument()
	}

	blob, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read ledger, using default document",
			applog.NewFields().
				WithOperation(applog.OpLoad).
				WithErrorType(applog.ErrorTypePersistence).
				WithError(err).
				ToSlice()...)
		return core.DefaultDocument()
	}
	if !ok {
		s.logger.DebugContext(ctx, "No stored ledger, using default document", applog.FieldStorageKey, s.key)
		return core.DefaultDocument()
	}

	doc, dropped, err := storage.DecodeDocument(blob)
	if err != nil {
		s.logger.WarnContext(ctx, "Stored ledger is malformed, using default document",
			applog.NewFields().
				WithOperation(applog.OpLoad).
				WithErrorType(applog.ErrorTypePersistence).
				WithError(err).
				ToSlice()...)
		return core.DefaultDocument()
	}
	if dropped > 0 {
		s.logger.WarnContext(ctx, "Dropped invalid expense records from stored ledger",
			applog.FieldDropped, dropped, applog.FieldStorageKey, s.key)
	}

	s.logger.DebugContext(ctx, "Ledger loaded", applog.FieldEntryCount, len(doc.Expenses))
	return doc
}

// persist writes the full document; failures are logged, never returned.
func (s *LedgerService) persist(ctx context.Context, op string) {
	if s.kv == nil {
		return
	}
	if err := s.save(ctx); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist ledger, keeping in-memory state",
			applog.NewFields().
				WithOperation(op).
				WithErrorType(applog.ErrorTypePersistence).
				WithError(err).
				ToSlice()...)
	}
}

func (s *LedgerService) save(ctx context.Context) error {
	blob, err := storage.EncodeDocument(s.ledger.Document())
	if err != nil {
		return err
	}
	if err := s.kv.Put(ctx, s.key, blob); err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	return nil
}

// UpdateProfile replaces the trip profile wholesale and persists.
func (s *LedgerService) UpdateProfile(ctx context.Context, p core.TripProfile) {
	s.ledger.UpdateProfile(p)
	s.logger.DebugContext(ctx, "Trip profile updated", "name", p.Name, applog.FieldCurrency, p.Currency)
	s.persist(ctx, applog.OpUpdateProfile)
}

// AddExpense records a new expense. A *core.ValidationError is returned
// without touching the ledger or the store.
func (s *LedgerService) AddExpense(ctx context.Context, in core.ExpenseInput) (core.ExpenseRecord, error) {
	r, err := s.ledger.AddExpense(in)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			s.logger.DebugContext(ctx, "Expense rejected",
				applog.NewFields().
					WithOperation(applog.OpAddExpense).
					WithErrorType(applog.ErrorTypeValidation).
					WithError(err).
					ToSlice()...)
		}
		return core.ExpenseRecord{}, err
	}

	s.logger.DebugContext(ctx, "Expense added",
		applog.NewFields().
			WithOperation(applog.OpAddExpense).
			WithExpense(r.ID, r.Date, r.Amount.String(), r.Currency, r.Category).
			ToSlice()...)
	s.persist(ctx, applog.OpAddExpense)
	return r, nil
}

// RemoveExpense deletes the record with id if present and persists either
// way. It reports whether a record was removed.
func (s *LedgerService) RemoveExpense(ctx context.Context, id string) bool {
	removed := s.ledger.RemoveExpense(id)
	s.logger.DebugContext(ctx, "Expense removal", applog.FieldExpenseID, id, "removed", removed)
	s.persist(ctx, applog.OpRemoveExpense)
	return removed
}

// ResetAll restores the default profile, clears every record and persists.
func (s *LedgerService) ResetAll(ctx context.Context) {
	s.ledger.Reset()
	s.logger.InfoContext(ctx, "Ledger reset")
	s.persist(ctx, applog.OpReset)
}

func (s *LedgerService) Profile() core.TripProfile { return s.ledger.Profile() }

func (s *LedgerService) Aggregate() core.AggregateView { return s.ledger.Aggregate() }

func (s *LedgerService) Tiles() []core.CurrencyTile { return s.ledger.Tiles() }

func (s *LedgerService) Expenses() []core.ExpenseRecord { return s.ledger.Expenses() }

func (s *LedgerService) ExportRows(header []string) ([][]string, bool) {
	return s.ledger.ExportRows(header)
}

// Document returns a deep copy of the current document.
func (s *LedgerService) Document() core.Document { return s.ledger.Document() }

// Close releases the underlying store.
func (s *LedgerService) Close() error {
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Close(); err != nil {
		return fmt.Errorf("close ledger store: %w", err)
	}
	return nil
}

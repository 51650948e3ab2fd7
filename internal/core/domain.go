package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultTripName  = "比利時教育旅行"
	DefaultTripStart = "2026-03-01"
	DefaultTripEnd   = "2026-03-16"
	DefaultCurrency  = "EUR"
)

type (
	// TripProfile is descriptive metadata about the trip. Dates are ISO
	// YYYY-MM-DD strings; start <= end is not enforced.
	TripProfile struct {
		Traveler string
		Name     string
		Start    string
		End      string
		Budget   string // as entered, may be blank
		Currency string
	}

	ExpenseRecord struct {
		ID       string
		Date     string
		Amount   decimal.Decimal
		Currency string
		Category string
		Payment  string
		Note     string
	}

	// ExpenseInput carries the caller-supplied fields of a new record.
	ExpenseInput struct {
		Date     string
		Amount   decimal.Decimal
		Currency string
		Category string
		Payment  string
		Note     string
	}

	// Document is the single persisted aggregate.
	Document struct {
		Trip     TripProfile
		Expenses []ExpenseRecord
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidBudget = errors.New("invalid budget")
)

// ValidationError reports which input field was rejected.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefaultProfile returns the profile used on first start and after a reset.
func DefaultProfile() TripProfile {
	return TripProfile{
		Name:     DefaultTripName,
		Start:    DefaultTripStart,
		End:      DefaultTripEnd,
		Currency: DefaultCurrency,
	}
}

func DefaultDocument() Document {
	return Document{Trip: DefaultProfile(), Expenses: []ExpenseRecord{}}
}

// Clone returns a deep copy; the expense slice is never shared.
func (d Document) Clone() Document {
	out := Document{Trip: d.Trip, Expenses: make([]ExpenseRecord, len(d.Expenses))}
	copy(out.Expenses, d.Expenses)
	return out
}

// BudgetAmount returns the budget when one was set and parses as a
// non-negative decimal.
func (p TripProfile) BudgetAmount() (decimal.Decimal, bool) {
	b := strings.TrimSpace(p.Budget)
	if b == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(b, ",", "."))
	if err != nil || v.IsNegative() {
		return decimal.Zero, false
	}
	return v, true
}

// Validate checks the budget field only; everything else is descriptive.
func (p TripProfile) Validate() error {
	if strings.TrimSpace(p.Budget) == "" {
		return nil
	}
	if _, ok := p.BudgetAmount(); !ok {
		return &ValidationError{Field: "budget", Err: ErrInvalidBudget}
	}
	return nil
}

func (in ExpenseInput) Validate() error {
	if !in.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Err: ErrInvalidAmount}
	}
	return nil
}

// Validate applies the record invariant (amount > 0).
func (r ExpenseRecord) Validate() error {
	if !r.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Err: ErrInvalidAmount}
	}
	return nil
}

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tripspend/internal/core"
)

var ErrMalformedDocument = errors.New("malformed ledger document")

// Wire shape of the persisted document. Every leaf is a string except
// amount, which is a JSON number. Missing keys decode to zero values.
type (
	wireDocument struct {
		Trip     *wireTrip     `json:"trip"`
		Expenses []wireExpense `json:"expenses"`
	}

	// storedDocument defers record decoding so one bad record cannot
	// reject the whole blob.
	storedDocument struct {
		Trip     *wireTrip         `json:"trip"`
		Expenses []json.RawMessage `json:"expenses"`
	}

	wireTrip struct {
		Traveler string `json:"traveler"`
		Name     string `json:"name"`
		Start    string `json:"start"`
		End      string `json:"end"`
		Budget   string `json:"budget"`
		Currency string `json:"currency"`
	}

	wireExpense struct {
		ID       string          `json:"id"`
		Date     string          `json:"date"`
		Amount   json.RawMessage `json:"amount"`
		Currency string          `json:"currency"`
		Category string          `json:"category"`
		Payment  string          `json:"payment"`
		Note     string          `json:"note"`
	}
)

// EncodeDocument serializes doc in the persisted wire shape.
func EncodeDocument(doc core.Document) ([]byte, error) {
	w := wireDocument{
		Trip: &wireTrip{
			Traveler: doc.Trip.Traveler,
			Name:     doc.Trip.Name,
			Start:    doc.Trip.Start,
			End:      doc.Trip.End,
			Budget:   doc.Trip.Budget,
			Currency: doc.Trip.Currency,
		},
		Expenses: make([]wireExpense, 0, len(doc.Expenses)),
	}
	for _, e := range doc.Expenses {
		w.Expenses = append(w.Expenses, wireExpense{
			ID:       e.ID,
			Date:     e.Date,
			Amount:   json.RawMessage(e.Amount.String()),
			Currency: e.Currency,
			Category: e.Category,
			Payment:  e.Payment,
			Note:     e.Note,
		})
	}

	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return b, nil
}

// DecodeDocument parses a persisted blob. A blob that is not a JSON object
// or has no trip object is malformed. A missing expenses array decodes as
// empty. Records that are not objects, or whose amount is not a positive
// number (a numeric string is accepted), are dropped and counted in dropped.
func DecodeDocument(b []byte) (doc core.Document, dropped int, err error) {
	var w storedDocument
	if err := json.Unmarshal(b, &w); err != nil {
		return core.Document{}, 0, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if w.Trip == nil {
		return core.Document{}, 0, fmt.Errorf("%w: missing trip", ErrMalformedDocument)
	}

	doc = core.Document{
		Trip: core.TripProfile{
			Traveler: w.Trip.Traveler,
			Name:     w.Trip.Name,
			Start:    w.Trip.Start,
			End:      w.Trip.End,
			Budget:   w.Trip.Budget,
			Currency: w.Trip.Currency,
		},
		Expenses: make([]core.ExpenseRecord, 0, len(w.Expenses)),
	}
	for _, raw := range w.Expenses {
		r, ok := decodeExpense(raw)
		if !ok {
			dropped++
			continue
		}
		doc.Expenses = append(doc.Expenses, r)
	}
	return doc, dropped, nil
}

func decodeExpense(raw json.RawMessage) (core.ExpenseRecord, bool) {
	var e wireExpense
	if err := json.Unmarshal(raw, &e); err != nil {
		return core.ExpenseRecord{}, false
	}
	amount, ok := parseWireAmount(e.Amount)
	if !ok {
		return core.ExpenseRecord{}, false
	}
	r := core.ExpenseRecord{
		ID:       e.ID,
		Date:     e.Date,
		Amount:   amount,
		Currency: e.Currency,
		Category: e.Category,
		Payment:  e.Payment,
		Note:     e.Note,
	}
	if r.Validate() != nil {
		return core.ExpenseRecord{}, false
	}
	return r, true
}

// parseWireAmount accepts a JSON number or a string holding one.
func parseWireAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, false
		}
		text = strings.TrimSpace(s)
	}
	if text == "" || text == "null" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

package ledger

import "tripspend/internal/core"

// ExportRows returns header followed by one row per record in display
// order. When the ledger is empty it returns nil and false; callers treat
// that as nothing to export.
func (l *Ledger) ExportRows(header []string) ([][]string, bool) {
	if len(l.doc.Expenses) == 0 {
		return nil, false
	}

	rows := make([][]string, 0, len(l.doc.Expenses)+1)
	rows = append(rows, append([]string(nil), header...))
	for _, r := range l.Expenses() {
		rows = append(rows, row(r))
	}
	return rows, true
}

func row(r core.ExpenseRecord) []string {
	return []string{r.Date, r.Amount.String(), r.Currency, r.Category, r.Payment, r.Note}
}

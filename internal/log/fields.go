package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldErrorType  = "error_type"
	FieldBackend    = "backend"
	FieldStorageKey = "storage_key"
	FieldExpenseID  = "expense_id"
	FieldDate       = "date"
	FieldAmount     = "amount"
	FieldCurrency   = "currency"
	FieldCategory   = "category"
	FieldEntryCount = "entry_count"
	FieldDropped    = "dropped"
	FieldPath       = "path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentExport  = "export"
)

// Operations defines standard operation names
const (
	OpLoad          = "load"
	OpPersist       = "persist"
	OpUpdateProfile = "update_profile"
	OpAddExpense    = "add_expense"
	OpRemoveExpense = "remove_expense"
	OpReset         = "reset"
	OpExport        = "export"
	OpValidate      = "validate"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypePersistence   = "persistence_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithErrorType adds the error category
func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(id, date, amount, currency, category string) LogFields {
	f[FieldExpenseID] = id
	f[FieldDate] = date
	f[FieldAmount] = amount
	f[FieldCurrency] = currency
	f[FieldCategory] = category
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}

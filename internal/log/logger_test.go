package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Component: ComponentLedger, Output: &buf})

	logger.Debug("Expense added", FieldExpenseID, "abc")
	out := buf.String()
	assert.Contains(t, out, "component=ledger")
	assert.Contains(t, out, "expense_id=abc")

	buf.Reset()
	logger.WithComponent(ComponentStorage).Warn("Persist failed")
	assert.Contains(t, buf.String(), "component=storage")
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Component: ComponentApp, Output: &buf})

	logger.Info("hidden")
	assert.Empty(t, buf.String())
	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestContextRoundTrip(t *testing.T) {
	logger := Discard().WithComponent(ComponentCLI)
	ctx := NewContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
	assert.Equal(t, "unknown", FromContext(context.Background()).Component())
}

func TestLogFields(t *testing.T) {
	f := NewFields().
		WithOperation(OpPersist).
		WithErrorType(ErrorTypePersistence).
		WithError(errors.New("disk full")).
		WithError(nil)

	assert.Equal(t, OpPersist, f[FieldOperation])
	assert.Equal(t, "disk full", f[FieldError])
	assert.Len(t, f.ToSlice(), 6)

	f = NewFields().WithExpense("id", "2026-03-02", "40", "EUR", "Food")
	assert.Equal(t, "EUR", f[FieldCurrency])
}

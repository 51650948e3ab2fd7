package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripspend/internal/core"
	"tripspend/internal/storage"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for key, value := range map[string]string{
		"LEDGER_BACKEND":     "file",
		"LEDGER_STORAGE_KEY": storage.DefaultKey,
		"LEDGER_LOCALE":      "en",
		"LEDGER_EXPORT_PATH": filepath.Join(t.TempDir(), "out.csv"),
		"LOG_LEVEL":          "error",
	} {
		t.Setenv(key, value)
	}
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&appState{})
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--backend", "file", "--dir", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

func storedDocument(t *testing.T, dir string) core.Document {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, storage.DefaultKey+".json"))
	require.NoError(t, err)
	doc, _, err := storage.DecodeDocument(b)
	require.NoError(t, err)
	return doc
}

func TestAddListRemove(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	out, err := run(t, dir, "add", "--date", "2026-03-02", "--amount", "12,50", "--category", "Food", "--note", "waffles")
	require.NoError(t, err)
	assert.Contains(t, out, "Added")

	_, err = run(t, dir, "add", "--date", "2026-03-05", "--amount", "30", "--category", "Transport")
	require.NoError(t, err)

	doc := storedDocument(t, dir)
	require.Len(t, doc.Expenses, 2)
	first := doc.Expenses[0]
	assert.Equal(t, "12.5", first.Amount.String())
	assert.Equal(t, "EUR", first.Currency)
	assert.Equal(t, "Cash", first.Payment)
	assert.Equal(t, "waffles", first.Note)

	out, err = run(t, dir, "list")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("2026-03-05")), bytes.Index([]byte(out), []byte("2026-03-02")))

	out, err = run(t, dir, "rm", first.ID, "missing-id")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed "+first.ID)
	assert.Contains(t, out, "No expense with id missing-id")
	assert.Len(t, storedDocument(t, dir).Expenses, 1)
}

func TestAddRejectsInvalidAmount(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	for _, amount := range []string{"0", "-5", "abc"} {
		_, err := run(t, dir, "add", "--amount", amount)
		assert.ErrorIs(t, err, core.ErrInvalidAmount, amount)
	}
	_, err := os.Stat(filepath.Join(dir, storage.DefaultKey+".json"))
	assert.True(t, os.IsNotExist(err))
}

func TestTripSetKeepsUnchangedFields(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, err := run(t, dir, "trip", "set", "--traveler", "  Mei  ", "--budget", "100")
	require.NoError(t, err)

	trip := storedDocument(t, dir).Trip
	assert.Equal(t, "Mei", trip.Traveler)
	assert.Equal(t, "100", trip.Budget)
	assert.Equal(t, core.DefaultTripName, trip.Name)
	assert.Equal(t, core.DefaultTripStart, trip.Start)

	_, err = run(t, dir, "trip", "set", "--budget", "lots")
	assert.ErrorIs(t, err, core.ErrInvalidBudget)

	out, err := run(t, dir, "trip", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Mei")
}

func TestSummary(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	out, err := run(t, dir, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total:   —")

	_, err = run(t, dir, "trip", "set", "--budget", "100")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "--date", "2026-03-02", "--amount", "30", "--category", "Food")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "--date", "2026-03-02", "--amount", "5", "--currency", "usd", "--category", "Tickets")
	require.NoError(t, err)

	out, err = run(t, dir, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Days:    1")
	assert.Contains(t, out, "Entries: 2")
	assert.Contains(t, out, "Total (EUR)")
	assert.Contains(t, out, "Remaining:")
	assert.Contains(t, out, "Total USD")
}

func TestExport(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	path := filepath.Join(t.TempDir(), "trip.csv")

	out, err := run(t, dir, "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to export")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	_, err = run(t, dir, "add", "--date", "2026-03-02", "--amount", "3.5", "--category", "Food", "--note", `say "hi"`)
	require.NoError(t, err)

	_, err = run(t, dir, "export", "-o", path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		`"date","amount","currency","category","payment","note"`+"\n"+
			`"2026-03-02","3.5","EUR","Food","Cash","say ""hi"""`,
		string(b))
}

func TestResetRequiresConfirmation(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, err := run(t, dir, "add", "--amount", "9")
	require.NoError(t, err)

	_, err = run(t, dir, "reset")
	assert.ErrorIs(t, err, errResetNotConfirmed)
	assert.Len(t, storedDocument(t, dir).Expenses, 1)

	_, err = run(t, dir, "reset", "--yes")
	require.NoError(t, err)
	doc := storedDocument(t, dir)
	assert.Empty(t, doc.Expenses)
	assert.Equal(t, core.DefaultProfile(), doc.Trip)
}

func TestInvalidBackendFailsStartup(t *testing.T) {
	isolateEnv(t)
	_, err := run(t, t.TempDir(), "--backend", "cloud", "list")
	assert.Error(t, err)
}

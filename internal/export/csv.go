// Package export turns ledger rows into the CSV text handed to the user.
//
// The format is fixed: UTF-8, comma separated, every field double-quoted
// with embedded quotes doubled, rows joined by a single "\n" and no
// trailing newline.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is used when no output path is configured.
const DefaultFileName = "trip-expenses.csv"

var headers = map[string][]string{
	"en":    {"date", "amount", "currency", "category", "payment", "note"},
	"zh-TW": {"日期", "金額", "幣別", "分類", "付款方式", "備註"},
}

// Header returns the localized header row; unknown locales get English.
func Header(locale string) []string {
	h, ok := headers[locale]
	if !ok {
		h = headers["en"]
	}
	return append([]string(nil), h...)
}

// FormatCSV renders rows in the export format.
func FormatCSV(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}

// WriteFile writes rows to path, creating parent directories as needed.
func WriteFile(path string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(FormatCSV(rows)), 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

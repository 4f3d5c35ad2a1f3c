package csvimport

import (
	"fmt"
	"strings"

	"go-inspecta/internal/access"
)

const (
	ColumnNIK      = "nik"
	ColumnPassword = "password"
	ColumnFullName = "full_name"
	ColumnRole     = "role"
	ColumnMenus    = "menus"
	ColumnPlants   = "plants"
)

// RequiredColumns lists the header names every import file must carry.
var RequiredColumns = []string{ColumnNIK, ColumnPassword, ColumnFullName, ColumnRole, ColumnMenus, ColumnPlants}

// FormatError aborts a whole parse. Line is 0 for file-level problems.
type FormatError struct {
	Line    int
	Column  string
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// ParseLine splits on commas outside double quotes. A quote always toggles
// quoting and is dropped; there is no escaped-quote form.
func ParseLine(line string) []string {
	fields := make([]string, 0, len(RequiredColumns))
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

// Parse turns an import file into rows, in input order, skipping blank lines.
func Parse(text string) ([]Row, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	lines := nonBlankLines(text)
	if len(lines) < 2 {
		return nil, &FormatError{Message: "File CSV harus berisi header dan minimal 1 baris data"}
	}

	header := ParseLine(lines[0])
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &FormatError{
				Line:    1,
				Column:  col,
				Message: fmt.Sprintf("Kolom '%s' tidak ditemukan di header", col),
			}
		}
	}

	rows := make([]Row, 0, len(lines)-1)
	for i, line := range lines[1:] {
		lineNo := i + 2
		fields := ParseLine(line)
		if len(fields) < len(RequiredColumns) {
			return nil, &FormatError{
				Line:    lineNo,
				Message: fmt.Sprintf("Baris %d: jumlah kolom kurang dari %d", lineNo, len(RequiredColumns)),
			}
		}

		get := func(col string) string {
			if idx := index[col]; idx < len(fields) {
				return fields[idx]
			}
			return ""
		}

		row := Row{
			Line:     lineNo,
			NIK:      get(ColumnNIK),
			Password: get(ColumnPassword),
			FullName: get(ColumnFullName),
			Menus:    get(ColumnMenus),
			Plants:   get(ColumnPlants),
		}

		for _, col := range []string{ColumnNIK, ColumnPassword, ColumnFullName, ColumnRole} {
			if get(col) == "" {
				return nil, &FormatError{
					Line:    lineNo,
					Column:  col,
					Message: fmt.Sprintf("Baris %d: kolom '%s' wajib diisi", lineNo, col),
				}
			}
		}

		role, ok := access.ParseRole(get(ColumnRole))
		if !ok {
			return nil, &FormatError{
				Line:    lineNo,
				Column:  ColumnRole,
				Message: fmt.Sprintf("Baris %d: role '%s' tidak valid", lineNo, get(ColumnRole)),
			}
		}
		row.Role = role

		rows = append(rows, row)
	}

	return rows, nil
}

func nonBlankLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

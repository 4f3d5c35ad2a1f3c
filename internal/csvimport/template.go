package csvimport

import (
	"bytes"
	"encoding/csv"
)

var templateRows = [][]string{
	{"12345", "password123", "John Doe", "qc_field", "sanitasi_besar", "Plant-1"},
	{"67890", "pass456", "Jane Smith", "supervisor", "sanitasi_besar,kliping", "Plant-1,Plant-2"},
	{"11223", "admin789", "Budi Santoso", "admin", "sanitasi_besar,kliping,monitoring_area", "Plant-1,Plant-2,Plant-3"},
}

// Template returns the downloadable example file: header plus three rows.
func Template() string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(RequiredColumns)
	_ = w.WriteAll(templateRows)
	return buf.String()
}

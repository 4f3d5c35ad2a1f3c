package csvimport

import (
	"fmt"
	"unicode/utf8"
)

const (
	MinNIKLength      = 3
	MinPasswordLength = 6
	MinFullNameLength = 3
)

// Validate reports every batch problem at once; rows are never modified.
// Messages number rows from 1 in slice order.
func Validate(rows []Row) []string {
	errs := make([]string, 0)
	seen := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		n := i + 1

		if _, dup := seen[row.NIK]; dup {
			errs = append(errs, fmt.Sprintf("Baris %d: NIK '%s' duplikat", n, row.NIK))
		} else {
			seen[row.NIK] = struct{}{}
		}

		if utf8.RuneCountInString(row.NIK) < MinNIKLength {
			errs = append(errs, fmt.Sprintf("Baris %d: NIK minimal %d karakter", n, MinNIKLength))
		}
		if utf8.RuneCountInString(row.Password) < MinPasswordLength {
			errs = append(errs, fmt.Sprintf("Baris %d: Password minimal %d karakter", n, MinPasswordLength))
		}
		if utf8.RuneCountInString(row.FullName) < MinFullNameLength {
			errs = append(errs, fmt.Sprintf("Baris %d: Nama lengkap minimal %d karakter", n, MinFullNameLength))
		}
	}

	return errs
}

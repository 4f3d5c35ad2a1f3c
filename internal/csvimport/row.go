package csvimport

import (
	"strings"

	"go-inspecta/internal/access"
)

// Row is one data line of a user import file. It is never persisted itself.
type Row struct {
	// Line is the ordinal of the row among non-blank lines, header = 1.
	Line     int         `json:"line"`
	NIK      string      `json:"nik"`
	Password string      `json:"-"`
	FullName string      `json:"full_name"`
	Role     access.Role `json:"role"`
	Menus    string      `json:"menus"`
	Plants   string      `json:"plants"`
}

func (r Row) MenuList() []string {
	return splitList(r.Menus)
}

func (r Row) PlantList() []string {
	return splitList(r.Plants)
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return []string{}
	}
	return access.NormalizeSet(strings.Split(v, ","))
}

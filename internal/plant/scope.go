package plant

import (
	"strings"

	"gorm.io/gorm"
)

// Scope restricts a query to a single plant. An empty plant leaves the query
// untouched.
func Scope(plant string) func(db *gorm.DB) *gorm.DB {
	plant = strings.TrimSpace(plant)
	return func(db *gorm.DB) *gorm.DB {
		if plant == "" {
			return db
		}
		return db.Where("plant = ?", plant)
	}
}

// AllowedScope restricts a query to the given plants. No plants means no rows.
func AllowedScope(plants []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(plants) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where("plant IN ?", plants)
	}
}

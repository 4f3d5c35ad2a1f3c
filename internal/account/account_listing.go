package account

import (
	"strings"

	"go-inspecta/internal/listing"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

func statusOf(a AccountResponse) string {
	if a.IsActive {
		return StatusActive
	}
	return StatusInactive
}

var listSchema = listing.NewSchema(
	listing.Text("username", true, func(a AccountResponse) string { return a.Username }),
	listing.Text("full_name", true, func(a AccountResponse) string { return a.FullName }),
	listing.Text("role", true, func(a AccountResponse) string { return a.Role }),
	listing.Text("status", false, statusOf),
	listing.Text("created_at", false, func(a AccountResponse) string { return a.CreatedAt }),
)

func (q ListQuery) toListing() listing.Query {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "username"
	}
	scope := q.Scope
	if scope == "" {
		scope = listing.ScopeAll
	}
	return listing.Query{
		Search:   q.Search,
		Scope:    scope,
		Filters:  map[string]string{"role": q.Role, "status": q.Status},
		SortBy:   sortBy,
		Desc:     strings.EqualFold(q.Order, "desc"),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

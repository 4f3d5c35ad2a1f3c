package masterdata

import (
	"strconv"
	"strings"

	"go-inspecta/internal/listing"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

func status(active bool) string {
	if active {
		return StatusActive
	}
	return StatusInactive
}

var areaSchema = listing.NewSchema(
	listing.Text("name", true, func(a AreaResponse) string { return a.Name }),
	listing.Text("plant", true, func(a AreaResponse) string { return a.Plant }),
	listing.Text("status", false, func(a AreaResponse) string { return status(a.IsActive) }),
	listing.Numeric("display_order", func(a AreaResponse) float64 { return float64(a.DisplayOrder) }),
)

var bagianSchema = listing.NewSchema(
	listing.Text("name", true, func(b BagianResponse) string { return b.Name }),
	listing.Text("area_name", true, func(b BagianResponse) string { return b.AreaName }),
	listing.Text("area_id", false, func(b BagianResponse) string { return b.AreaID }),
	listing.Text("plant", false, func(b BagianResponse) string { return b.Plant }),
	listing.List("lines", true, func(b BagianResponse) []string {
		out := make([]string, len(b.Lines))
		for i, l := range b.Lines {
			out[i] = strconv.FormatInt(l, 10)
		}
		return out
	}),
	listing.Numeric("display_order", func(b BagianResponse) float64 { return float64(b.DisplayOrder) }),
)

var supervisorSchema = listing.NewSchema(
	listing.Text("name", true, func(s SupervisorResponse) string { return s.Name }),
	listing.Text("plant", true, func(s SupervisorResponse) string { return s.Plant }),
	listing.Text("status", false, func(s SupervisorResponse) string { return status(s.IsActive) }),
	listing.Numeric("display_order", func(s SupervisorResponse) float64 { return float64(s.DisplayOrder) }),
)

// toListing builds the engine query; filters holds the filter fields the
// target list supports.
func (q ListQuery) toListing(filters ...string) listing.Query {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "display_order"
	}
	scope := q.Scope
	if scope == "" {
		scope = listing.ScopeAll
	}

	values := map[string]string{
		"plant":   q.Plant,
		"area_id": q.AreaID,
		"status":  q.Status,
	}
	f := make(map[string]string, len(filters))
	for _, name := range filters {
		f[name] = values[name]
	}

	return listing.Query{
		Search:   q.Search,
		Scope:    scope,
		Filters:  f,
		SortBy:   sortBy,
		Desc:     strings.EqualFold(q.Order, "desc"),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

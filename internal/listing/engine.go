package listing

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Apply searches, filters, sorts and slices items. The input is not modified.
func Apply[T any](items []T, schema *Schema[T], q Query) Page[T] {
	result := Filter(items, schema, q)
	Sort(result, schema, q.SortBy, q.Desc)
	return Paginate(result, q.Page, q.PageSize)
}

// Filter returns the items matching the search and every equality filter,
// in input order.
func Filter[T any](items []T, schema *Schema[T], q Query) []T {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(q.Search))

	var scope []Field[T]
	if needle != "" {
		if f, ok := schema.Field(q.Scope); ok && q.Scope != ScopeAll {
			scope = []Field[T]{f}
		} else {
			scope = schema.searchable()
		}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !matchesSearch(item, scope, needle, fold) {
			continue
		}
		if !matchesFilters(item, schema, q.Filters, fold) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch[T any](item T, fields []Field[T], needle string, fold cases.Caser) bool {
	for _, f := range fields {
		for _, v := range f.Values(item) {
			if strings.Contains(fold.String(v), needle) {
				return true
			}
		}
	}
	return false
}

func matchesFilters[T any](item T, schema *Schema[T], filters map[string]string, fold cases.Caser) bool {
	for name, want := range filters {
		want = strings.TrimSpace(want)
		if want == "" || want == FilterAll {
			continue
		}
		f, ok := schema.Field(name)
		if !ok {
			continue
		}
		want = fold.String(want)
		matched := false
		for _, v := range f.Values(item) {
			if fold.String(v) == want {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Sort orders items in place by the named field. Equal keys keep their order.
// An unknown or empty field leaves items untouched.
func Sort[T any](items []T, schema *Schema[T], by string, desc bool) {
	f, ok := schema.Field(by)
	if by == "" || !ok {
		return
	}

	sign := 1
	if desc {
		sign = -1
	}

	if f.Number != nil {
		slices.SortStableFunc(items, func(a, b T) int {
			x, y := f.Number(a), f.Number(b)
			switch {
			case x < y:
				return -sign
			case x > y:
				return sign
			}
			return 0
		})
		return
	}

	col := collate.New(language.Indonesian, collate.IgnoreCase)
	slices.SortStableFunc(items, func(a, b T) int {
		return sign * col.CompareString(sortKey(f, a), sortKey(f, b))
	})
}

func sortKey[T any](f Field[T], item T) string {
	return strings.Join(f.Values(item), ", ")
}

// Paginate slices items into a 1-based page. Pages past the end are empty.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	page, pageSize = Query{Page: page, PageSize: pageSize}.normalizedPage()

	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/pageSize + 1
	}

	start := total
	if page-1 < totalPages {
		start = (page - 1) * pageSize
	}
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}

	return Page[T]{
		Items:      slices.Clone(items[start:end]),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

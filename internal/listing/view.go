package listing

// View keeps listing criteria between interactions. Every criterion change
// returns to page 1 and drops the selection; paging only moves the window.
type View[T any] struct {
	schema *Schema[T]
	key    func(T) string
	items  []T
	query  Query

	filtered []T
	selected map[string]struct{}
}

func NewView[T any](schema *Schema[T], key func(T) string, items []T) *View[T] {
	v := &View[T]{
		schema:   schema,
		key:      key,
		query:    Query{Scope: ScopeAll, Filters: map[string]string{}, Page: 1, PageSize: DefaultPageSize},
		selected: map[string]struct{}{},
	}
	v.SetItems(items)
	return v
}

func (v *View[T]) Query() Query {
	return v.query.clone()
}

// SetItems replaces the data set, e.g. after a reload.
func (v *View[T]) SetItems(items []T) {
	v.items = items
	v.recompute()
}

func (v *View[T]) SetSearch(search, scope string) {
	if scope == "" {
		scope = ScopeAll
	}
	v.query.Search = search
	v.query.Scope = scope
	v.recompute()
}

func (v *View[T]) SetFilter(field, value string) {
	if value == "" || value == FilterAll {
		delete(v.query.Filters, field)
	} else {
		v.query.Filters[field] = value
	}
	v.recompute()
}

func (v *View[T]) ClearFilters() {
	v.query.Filters = map[string]string{}
	v.recompute()
}

func (v *View[T]) SetSort(field string, desc bool) {
	v.query.SortBy = field
	v.query.Desc = desc
	v.recompute()
}

// ToggleSort sorts by field ascending, or flips direction if already sorted by it.
func (v *View[T]) ToggleSort(field string) {
	if v.query.SortBy == field {
		v.SetSort(field, !v.query.Desc)
		return
	}
	v.SetSort(field, false)
}

func (v *View[T]) SetPageSize(size int) {
	v.query.PageSize = size
	v.recompute()
}

func (v *View[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.query.Page = page
	v.clearSelection()
}

// Filtered returns the full filtered and sorted set.
func (v *View[T]) Filtered() []T {
	out := make([]T, len(v.filtered))
	copy(out, v.filtered)
	return out
}

func (v *View[T]) Current() Page[T] {
	return Paginate(v.filtered, v.query.Page, v.query.PageSize)
}

func (v *View[T]) Toggle(key string) {
	if _, ok := v.selected[key]; ok {
		delete(v.selected, key)
		return
	}
	for _, item := range v.Current().Items {
		if v.key(item) == key {
			v.selected[key] = struct{}{}
			return
		}
	}
}

// ToggleSelectAll selects every row of the current page, or clears the
// selection when all of them are already selected.
func (v *View[T]) ToggleSelectAll() {
	visible := v.Current().Items
	if len(visible) > 0 && v.allSelected(visible) {
		v.clearSelection()
		return
	}
	v.clearSelection()
	for _, item := range visible {
		v.selected[v.key(item)] = struct{}{}
	}
}

func (v *View[T]) IsSelected(key string) bool {
	_, ok := v.selected[key]
	return ok
}

// Selected returns selected keys in page order.
func (v *View[T]) Selected() []string {
	out := make([]string, 0, len(v.selected))
	for _, item := range v.Current().Items {
		if k := v.key(item); v.IsSelected(k) {
			out = append(out, k)
		}
	}
	return out
}

func (v *View[T]) allSelected(items []T) bool {
	if len(v.selected) != len(items) {
		return false
	}
	for _, item := range items {
		if !v.IsSelected(v.key(item)) {
			return false
		}
	}
	return true
}

func (v *View[T]) clearSelection() {
	v.selected = map[string]struct{}{}
}

func (v *View[T]) recompute() {
	v.filtered = Filter(v.items, v.schema, v.query)
	Sort(v.filtered, v.schema, v.query.SortBy, v.query.Desc)
	v.query.Page = 1
	v.clearSelection()
}

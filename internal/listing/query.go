package listing

const (
	ScopeAll        = "all"
	FilterAll       = "all"
	DefaultPageSize = 10
	// MaxPage bounds request page numbers so offsets stay far from overflow.
	MaxPage = 100000
)

type Query struct {
	Search  string
	Scope   string
	Filters map[string]string
	SortBy  string
	Desc    bool

	Page     int
	PageSize int
}

func (q Query) normalizedPage() (int, int) {
	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return page, size
}

func (q Query) clone() Query {
	out := q
	out.Filters = make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		out.Filters[k] = v
	}
	return out
}

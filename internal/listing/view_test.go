package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-inspecta/internal/listing"
)

func newView() *listing.View[user] {
	v := listing.NewView(userSchema, func(u user) string { return u.NIK }, fixtures())
	v.SetPageSize(2)
	return v
}

func TestView_CriteriaChangeResetsPage(t *testing.T) {
	v := newView()

	v.SetPage(3)
	assert.Equal(t, 3, v.Current().Page)

	v.SetFilter("status", "active")
	assert.Equal(t, 1, v.Current().Page)

	v.SetPage(2)
	v.SetSearch("a", "")
	assert.Equal(t, 1, v.Current().Page)

	v.SetPage(2)
	v.ToggleSort("full_name")
	assert.Equal(t, 1, v.Current().Page)
}

func TestView_ClearFiltersResetsPageAndSelection(t *testing.T) {
	v := newView()
	v.SetFilter("role", "admin")
	v.SetPage(2)
	v.ToggleSelectAll()
	assert.Equal(t, []string{"1005"}, v.Selected())

	v.ClearFilters()

	assert.Equal(t, 1, v.Current().Page)
	assert.Empty(t, v.Selected())
	assert.Len(t, v.Filtered(), 5)
	assert.Empty(t, v.Query().Filters)
}

func TestView_SetPageKeepsFilteredSet(t *testing.T) {
	v := newView()
	v.SetFilter("role", "admin")
	before := niks(v.Filtered())

	v.SetPage(2)
	assert.Equal(t, before, niks(v.Filtered()))
	assert.Equal(t, []string{"1005"}, niks(v.Current().Items))
}

func TestView_ToggleSelectAllCoversVisiblePageOnly(t *testing.T) {
	v := newView()

	v.ToggleSelectAll()
	assert.Equal(t, []string{"1001", "1002"}, v.Selected())
	assert.False(t, v.IsSelected("1003"))

	v.ToggleSelectAll()
	assert.Empty(t, v.Selected())

	v.ToggleSelectAll()
	v.SetPage(2)
	assert.Empty(t, v.Selected())
	assert.False(t, v.IsSelected("1001"))
}

func TestView_ToggleIgnoresRowsOffPage(t *testing.T) {
	v := newView()

	v.Toggle("1005")
	assert.False(t, v.IsSelected("1005"))

	v.Toggle("1002")
	assert.True(t, v.IsSelected("1002"))
	v.Toggle("1002")
	assert.False(t, v.IsSelected("1002"))
}

func TestView_ToggleSortFlipsDirection(t *testing.T) {
	v := newView()

	v.ToggleSort("order")
	assert.False(t, v.Query().Desc)
	v.ToggleSort("order")
	assert.True(t, v.Query().Desc)
	assert.Equal(t, "1002", v.Filtered()[0].NIK)
}

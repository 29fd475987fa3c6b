package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateBounds(t *testing.T) {
	items := namedBeers("a", "b", "c", "d", "e")

	page := Paginate(items, 1, 2)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.Pages)

	page = Paginate(items, 3, 2)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "e", page.Items[0].Name)

	// Out of range yields an empty page, not an error.
	page = Paginate(items, 10, 2)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Pages)

	// Page numbers below one clamp to the first page.
	page = Paginate(items, 0, 2)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a", page.Items[0].Name)
}

func TestPaginateEmptyDataset(t *testing.T) {
	page := Paginate(nil, 1, DefaultPageSize)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Pages)
}

func TestPaginateCoversSequenceExactly(t *testing.T) {
	items := namedBeers("a", "b", "c", "d", "e", "f", "g")

	first := Paginate(items, 1, 3)
	var got []Beer
	for n := 1; n <= first.Pages; n++ {
		page := Paginate(items, n, 3)
		assert.LessOrEqual(t, len(page.Items), 3)
		got = append(got, page.Items...)
	}
	assert.Equal(t, items, got)
}

func TestPaginateDefaultSize(t *testing.T) {
	items := namedBeers("a", "b")
	page := Paginate(items, 1, 0)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Pages)
}

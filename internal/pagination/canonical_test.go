package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize_PageOneIsBasePath(t *testing.T) {
	links, err := Canonicalize("/jobs", 1, 5, 50)
	require.NoError(t, err)
	assert.Equal(t, "/jobs", links.Canonical)
	assert.Empty(t, links.Prev)
	assert.Equal(t, "/jobs/page/2/", links.Next)
}

func TestCanonicalize_MiddlePage(t *testing.T) {
	links, err := Canonicalize("/jobs", 3, 5, 50)
	require.NoError(t, err)
	assert.Equal(t, "/jobs/page/3/", links.Canonical)
	assert.Equal(t, "/jobs/page/2/", links.Prev)
	assert.Equal(t, "/jobs/page/4/", links.Next)
}

func TestCanonicalize_PageTwoPrevIsBasePath(t *testing.T) {
	links, err := Canonicalize("/jobs", 2, 5, 50)
	require.NoError(t, err)
	assert.Equal(t, "/jobs/page/2/", links.Canonical)
	assert.Equal(t, "/jobs", links.Prev, "page 1 is never referenced as /page/1/")
}

func TestCanonicalize_LastPageHasNoNext(t *testing.T) {
	links, err := Canonicalize("/jobs", 5, 5, 50)
	require.NoError(t, err)
	assert.Equal(t, "/jobs/page/5/", links.Canonical)
	assert.Equal(t, "/jobs/page/4/", links.Prev)
	assert.Empty(t, links.Next)
}

func TestCanonicalize_SinglePage(t *testing.T) {
	links, err := Canonicalize("/tools", 1, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, "/tools", links.Canonical)
	assert.Empty(t, links.Prev)
	assert.Empty(t, links.Next)
}

func TestCanonicalize_OutOfRange(t *testing.T) {
	cases := map[string]struct {
		pageIndex  int
		totalPages int
	}{
		"zero index":       {0, 5},
		"negative index":   {-1, 5},
		"past last page":   {6, 5},
		"zero total pages": {1, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Canonicalize("/jobs", tc.pageIndex, tc.totalPages, 50)
			require.Error(t, err)

			var oor *OutOfRangeError
			assert.ErrorAs(t, err, &oor)
		})
	}
}

func TestWindow_SmallTotalShowsEverything(t *testing.T) {
	entries := Window(2, 4, 1)
	assert.Equal(t, []WindowEntry{
		{Page: 1}, {Page: 2}, {Page: 3}, {Page: 4},
	}, entries)
}

func TestWindow_GapsOnBothSides(t *testing.T) {
	entries := Window(10, 20, 1)
	assert.Equal(t, []WindowEntry{
		{Page: 1},
		{Gap: true},
		{Page: 9}, {Page: 10}, {Page: 11},
		{Gap: true},
		{Page: 20},
	}, entries)
}

func TestWindow_NoGapWhenAdjacent(t *testing.T) {
	entries := Window(2, 3, 1)
	assert.Equal(t, []WindowEntry{{Page: 1}, {Page: 2}, {Page: 3}}, entries)
}

func TestWindow_FirstPage(t *testing.T) {
	entries := Window(1, 10, 1)
	assert.Equal(t, []WindowEntry{
		{Page: 1}, {Page: 2},
		{Gap: true},
		{Page: 10},
	}, entries)
}

func TestWindow_ZeroTotal(t *testing.T) {
	assert.Nil(t, Window(1, 0, 1))
}

package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, perPage, want int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{25, 12, 3},
		{100, 10, 10},
		{101, 10, 11},
	}
	for _, tc := range cases {
		p := New(seq(tc.n), tc.perPage)
		assert.Equal(t, tc.want, p.TotalPages(), "n=%d perPage=%d", tc.n, tc.perPage)
	}
}

func TestCurrentItemsLength(t *testing.T) {
	p := New(seq(25), 12)
	for page := 1; page <= 3; page++ {
		p.GoToPage(page)
		want := 12
		if page == 3 {
			want = 1
		}
		assert.Len(t, p.CurrentItems(), want, "page %d", page)
	}
}

func TestDefaultPerPage(t *testing.T) {
	p := New(seq(30), 0)
	assert.Equal(t, DefaultPerPage, p.PerPage())
	assert.Len(t, p.CurrentItems(), 12)
}

func TestGoToPageOutOfRangeIsNoOp(t *testing.T) {
	p := New(seq(25), 12)
	p.GoToPage(2)

	p.GoToPage(0)
	assert.Equal(t, 2, p.Page())
	p.GoToPage(-1)
	assert.Equal(t, 2, p.Page())
	p.GoToPage(4)
	assert.Equal(t, 2, p.Page())
}

func TestWalkthrough25Items(t *testing.T) {
	p := New(seq(25), 12)

	require.Equal(t, 1, p.Page())
	require.Len(t, p.CurrentItems(), 12)

	p.Next()
	p.Next()
	require.Equal(t, 3, p.Page())
	require.Len(t, p.CurrentItems(), 1)
	assert.Equal(t, 25, p.CurrentItems()[0])

	// already on the last page
	p.Next()
	assert.Equal(t, 3, p.Page())
}

func TestEmptyItems(t *testing.T) {
	p := New([]int{}, 12)
	assert.Equal(t, 0, p.TotalPages())
	assert.Empty(t, p.CurrentItems())

	info := p.Info()
	assert.Equal(t, 0, info.StartItem)
	assert.Equal(t, 0, info.EndItem)
	assert.False(t, info.HasNext)
	assert.False(t, info.HasPrevious)

	// Last with no pages keeps page 1
	p.Last()
	assert.Equal(t, 1, p.Page())
}

func TestInfoClamping(t *testing.T) {
	p := New(seq(25), 12)
	p.GoToPage(3)

	info := p.Info()
	assert.Equal(t, 25, info.StartItem)
	assert.Equal(t, 25, info.EndItem)
	assert.Equal(t, 25, info.TotalItems)
	assert.True(t, info.HasPrevious)
	assert.False(t, info.HasNext)
}

func TestSetItemsDoesNotCorrectPage(t *testing.T) {
	p := New(seq(25), 12)
	p.Last()
	require.Equal(t, 3, p.Page())

	p.SetItems(seq(5))
	// the pager never self-heals; the page is stranded until Reset
	assert.Equal(t, 3, p.Page())
	assert.Empty(t, p.CurrentItems())

	p.Reset()
	assert.Equal(t, 1, p.Page())
	assert.Len(t, p.CurrentItems(), 5)
}

func TestPageNumbersWindow(t *testing.T) {
	p := New(seq(120), 12) // 10 pages

	p.GoToPage(1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.PageNumbers(5))

	p.GoToPage(5)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, p.PageNumbers(5))

	p.GoToPage(10)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, p.PageNumbers(5))

	// fewer pages than the window
	small := New(seq(25), 12)
	assert.Equal(t, []int{1, 2, 3}, small.PageNumbers(5))

	empty := New([]int{}, 12)
	assert.Nil(t, empty.PageNumbers(5))
}

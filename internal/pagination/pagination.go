// Package pagination slices an in-memory list into fixed-size pages.
//
// The pager is deliberately dumb about shrinking input: replacing the
// backing slice never moves the current page, so a caller that changes
// filters must call Reset to avoid serving an empty out-of-range slice.
package pagination

// DefaultPerPage is used when a caller passes a non-positive page size.
const DefaultPerPage = 12

type Pager[T any] struct {
	items   []T
	perPage int
	page    int
}

// Info bundles the derived numbers a listing response needs.
// StartItem/EndItem are 1-indexed and clamped to TotalItems.
type Info struct {
	Page        int  `json:"page"`
	PerPage     int  `json:"perPage"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	StartItem   int  `json:"startItem"`
	EndItem     int  `json:"endItem"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

func New[T any](items []T, perPage int) *Pager[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &Pager[T]{items: items, perPage: perPage, page: 1}
}

func (p *Pager[T]) Page() int       { return p.page }
func (p *Pager[T]) PerPage() int    { return p.perPage }
func (p *Pager[T]) TotalItems() int { return len(p.items) }

// TotalPages is zero when the list is empty.
func (p *Pager[T]) TotalPages() int {
	if len(p.items) == 0 {
		return 0
	}
	return (len(p.items) + p.perPage - 1) / p.perPage
}

// CurrentItems returns the slice for the current page, empty when the
// page is beyond the end of the list.
func (p *Pager[T]) CurrentItems() []T {
	start := (p.page - 1) * p.perPage
	if start >= len(p.items) {
		return nil
	}
	end := start + p.perPage
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// GoToPage is a no-op for targets outside [1, TotalPages].
func (p *Pager[T]) GoToPage(n int) {
	if n < 1 || n > p.TotalPages() {
		return
	}
	p.page = n
}

func (p *Pager[T]) Next() {
	if p.page < p.TotalPages() {
		p.page++
	}
}

func (p *Pager[T]) Previous() {
	if p.page > 1 {
		p.page--
	}
}

func (p *Pager[T]) First() { p.page = 1 }

func (p *Pager[T]) Last() {
	if tp := p.TotalPages(); tp > 0 {
		p.page = tp
	}
}

// Reset returns to the first page. Callers must invoke it after the
// backing list changes, the pager never self-corrects.
func (p *Pager[T]) Reset() { p.page = 1 }

// SetItems replaces the backing list without touching the current page.
func (p *Pager[T]) SetItems(items []T) { p.items = items }

func (p *Pager[T]) Info() Info {
	total := len(p.items)
	tp := p.TotalPages()

	start := (p.page-1)*p.perPage + 1
	end := p.page * p.perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	if total == 0 {
		start, end = 0, 0
	}

	return Info{
		Page:        p.page,
		PerPage:     p.perPage,
		TotalItems:  total,
		TotalPages:  tp,
		StartItem:   start,
		EndItem:     end,
		HasNext:     p.page < tp,
		HasPrevious: p.page > 1,
	}
}

// PageNumbers returns a contiguous window of up to maxVisible page
// numbers centered on the current page, shifted to stay in range.
func (p *Pager[T]) PageNumbers(maxVisible int) []int {
	tp := p.TotalPages()
	if tp == 0 || maxVisible <= 0 {
		return nil
	}

	count := maxVisible
	if tp < count {
		count = tp
	}

	start := p.page - maxVisible/2
	if start < 1 {
		start = 1
	}
	if start > tp-count+1 {
		start = tp - count + 1
	}

	nums := make([]int, count)
	for i := range nums {
		nums[i] = start + i
	}
	return nums
}

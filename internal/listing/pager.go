// Package listing carries the fetch bookkeeping every list screen shares:
// page tracking for infinite scroll and the browse-screen bootstrap.
package listing

import "sync"

// Pager tracks the current page and the has-more flag for one list. The
// flag starts true and flips false the first time a page comes back
// smaller than the page size; from then on scroll-end loads are no-ops.
type Pager struct {
	mu       sync.Mutex
	pageSize int
	page     int
	hasMore  bool
}

func NewPager(pageSize int) *Pager {
	return &Pager{pageSize: pageSize, hasMore: true}
}

// Reset rewinds to page zero, used on filter change and pull-to-refresh.
// The caller replaces its list instead of appending after a reset.
func (p *Pager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = 0
	p.hasMore = true
}

// Next returns the page number to fetch, or false when the end was
// already reached.
func (p *Pager) Next() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.hasMore {
		return 0, false
	}
	return p.page + 1, true
}

// Observe records a fetched page's result count: the page advances and a
// short page ends the list.
func (p *Pager) Observe(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page++
	if count < p.pageSize {
		p.hasMore = false
	}
}

// HasMore reports whether another page may exist.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Page returns the last fetched page number, zero before the first fetch.
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

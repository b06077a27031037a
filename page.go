package temparena

// overflowPage is one link in the arena's overflow chain. A page owns its
// buffer and its successor; the bump cursor for the active page lives on
// the Arena, since only the newest page ever receives allocations.
type overflowPage struct {
	buf  []byte
	next *overflowPage
}

// newPage appends a page able to hold an aligned request of size bytes.
// Pages normally match the arena's configured capacity; a request that
// alone exceeds it gets a page of size + pageSize instead, so the request
// never spans a page boundary.
func (a *Arena) newPage(size int) *overflowPage {
	capacity := a.pageSize
	if size > capacity {
		capacity = size + a.pageSize
	}

	p := &overflowPage{buf: a.obtain(capacity)}
	if a.tracking {
		a.stats.OverflowPages++
	}

	if a.pages == nil {
		a.pages = p
		return p
	}
	// Tail append keeps the chain in allocation order. Overflow events are
	// rare relative to in-region allocations, so the walk is acceptable.
	tail := a.pages
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = p
	return p
}

// drainPages releases every overflow page's buffer, in chain order, and
// clears the head. Each buffer is handed to the release callback exactly
// once; the page nodes themselves are left to the garbage collector.
func (a *Arena) drainPages() {
	for p := a.pages; p != nil; p = p.next {
		a.freeFn(p.buf)
		p.buf = nil
	}
	a.pages = nil
}

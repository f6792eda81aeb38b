package views

// Paginator keeps a cursor and the page of rows around it
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	total      int
}

// NewPaginator creates a new paginator with the given page size
func NewPaginator(pageSize int) *Paginator {
	p := &Paginator{}
	p.SetPageSize(pageSize)
	return p
}

// SetPageSize changes the number of visible rows
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		size = 10
	}
	p.pageSize = size
	p.follow()
}

// SetTotal sets the number of rows, clamping the cursor
func (p *Paginator) SetTotal(total int) {
	p.total = total
	p.SetCursor(p.cursor)
}

// Cursor returns the absolute cursor position
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor, clamped to the rows
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(0, min(pos, p.total-1))
	p.follow()
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.SetCursor(p.cursor - 1)
	return true
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.SetCursor(p.cursor + 1)
	return true
}

// NextPage jumps to the first row of the next page
func (p *Paginator) NextPage() bool {
	if p.pageOffset+p.pageSize >= p.total {
		return false
	}
	p.SetCursor(p.pageOffset + p.pageSize)
	return true
}

// PrevPage jumps to the first row of the previous page
func (p *Paginator) PrevPage() bool {
	if p.pageOffset == 0 {
		return false
	}
	p.SetCursor(p.pageOffset - p.pageSize)
	return true
}

// VisibleRange returns the [start, end) rows of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.total)
}

// CurrentPage returns the current page number (1-based)
func (p *Paginator) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

// TotalPages returns the total number of pages
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

func (p *Paginator) follow() {
	p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
}

package console

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"notifyconsole/internal/domain/entity"
	domainerrors "notifyconsole/internal/domain/errors"
	"notifyconsole/internal/usecase"
)

// DirectoryState is the paging state of a directory view.
type DirectoryState struct {
	Criteria entity.Criteria        `json:"criteria"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
	Current  *usecase.DirectoryPage `json:"current,omitempty"`
}

// Paginator walks the user directory one page at a time. Changing the
// search, the filter or the page size starts over at page 1.
type Paginator struct {
	mu        sync.Mutex
	directory usecase.DirectoryUsecase
	seq       Sequencer

	search   string
	filter   entity.Criteria // SearchTerm always empty; search is kept apart
	page     int
	pageSize int
	current  *usecase.DirectoryPage
}

func NewPaginator(directory usecase.DirectoryUsecase, pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = directory.DefaultPageSize()
	}

	return &Paginator{
		directory: directory,
		page:      1,
		pageSize:  pageSize,
	}
}

// reset starts over at page 1 and invalidates in-flight fetches. Callers hold mu.
func (p *Paginator) reset() {
	p.page = 1
	p.current = nil
	p.seq.Next()
}

// SetSearch changes the search term, reporting whether it changed.
func (p *Paginator) SetSearch(term string) bool {
	term = strings.TrimSpace(term)

	p.mu.Lock()
	defer p.mu.Unlock()

	if term == p.search {
		return false
	}
	p.search = term
	p.reset()

	return true
}

// SetFilter replaces the filter. A search term inside c is ignored.
func (p *Paginator) SetFilter(c entity.Criteria) bool {
	c.SearchTerm = ""
	c = c.Normalize()

	p.mu.Lock()
	defer p.mu.Unlock()

	if c == p.filter {
		return false
	}
	p.filter = c
	p.reset()

	return true
}

func (p *Paginator) SetPageSize(size int) (bool, error) {
	if size < 1 {
		return false, domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("page size must be at least 1, got %d", size))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if size == p.pageSize {
		return false, nil
	}
	p.pageSize = size
	p.reset()

	return true, nil
}

// Next moves forward when the last fetched page was full, or when nothing
// has been fetched for the current page yet.
func (p *Paginator) Next() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil && !p.current.HasNext {
		return false
	}
	p.moveTo(p.page + 1)

	return true
}

// Prev never goes below page 1.
func (p *Paginator) Prev() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.page <= 1 {
		return false
	}
	p.moveTo(p.page - 1)

	return true
}

func (p *Paginator) GoTo(page int) error {
	if page < 1 {
		return domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("page must be at least 1, got %d", page))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if page != p.page {
		p.moveTo(page)
	}

	return nil
}

func (p *Paginator) moveTo(page int) {
	p.page = page
	p.current = nil
	p.seq.Next()
}

func (p *Paginator) query() usecase.DirectoryQuery {
	criteria := p.filter
	criteria.SearchTerm = p.search

	return usecase.DirectoryQuery{Criteria: criteria, Page: p.page, PageSize: p.pageSize}
}

// Fetch loads the page for the current state. A result that comes back
// after the state changed, or after a later Fetch was issued, is dropped
// with ErrSuperseded.
func (p *Paginator) Fetch(ctx context.Context) (*usecase.DirectoryPage, error) {
	p.mu.Lock()
	token := p.seq.Next()
	q := p.query()
	p.mu.Unlock()

	page, err := p.directory.ListUsers(ctx, q)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.seq.IsCurrent(token) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	p.current = page

	return page, nil
}

// State returns a snapshot of the paging state.
func (p *Paginator) State() DirectoryState {
	p.mu.Lock()
	defer p.mu.Unlock()

	q := p.query()

	return DirectoryState{
		Criteria: q.Criteria,
		Page:     q.Page,
		PageSize: q.PageSize,
		Current:  p.current,
	}
}

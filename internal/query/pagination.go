package query

import (
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
	MinLimit     = 5
	MaxLimit     = 500

	// LimitAll disables pagination.
	LimitAll = "all"
)

// Page selects one window of a listing.
type Page struct {
	Number int
	Limit  int
}

// Offset is the number of rows skipped before the page starts.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// ParsePage reads the page and limit query values. A nil page with a nil
// error means every row was requested. Numeric limits are clamped to
// [MinLimit, MaxLimit].
func ParsePage(rawPage, rawLimit string) (*Page, Errors) {
	errs := Errors{}
	page := &Page{Number: DefaultPage, Limit: DefaultLimit}

	rawLimit = strings.TrimSpace(rawLimit)
	if strings.EqualFold(rawLimit, LimitAll) {
		page = nil
	} else if rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			errs["limit"] = "Invalid limit. Provide number 5-500 or 'all'"
		} else {
			page.Limit = clamp(limit, MinLimit, MaxLimit)
		}
	}

	rawPage = strings.TrimSpace(rawPage)
	if rawPage != "" {
		number, err := strconv.Atoi(rawPage)
		if err != nil || number < 1 {
			errs["page"] = "Page number must be greater than 0"
		} else if page != nil {
			page.Number = number
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return page, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Pagination is the pagination block of a list response.
type Pagination struct {
	CurrentPage int   `json:"currentPage,omitempty"`
	Limit       int   `json:"limit,omitempty"`
	Offset      *int  `json:"offset,omitempty"`
	Count       int64 `json:"count"`
}

// NewPagination describes page p of a listing with count matching rows.
func NewPagination(p *Page, count int64) Pagination {
	if p == nil {
		return Pagination{Count: count}
	}
	offset := p.Offset()
	return Pagination{
		CurrentPage: p.Number,
		Limit:       p.Limit,
		Offset:      &offset,
		Count:       count,
	}
}

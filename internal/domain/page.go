package domain

import "math"

// MaxOffset is the largest row offset a page may start at. It keeps
// (Number-1)*Limit inside Postgres' int4 range and clear of int overflow.
const MaxOffset = math.MaxInt32

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// InRange reports whether the page starts at or below MaxOffset.
// Non-positive numbers or limits are always in range.
func (p Page) InRange() bool {
	if p.Number < 1 || p.Limit < 1 {
		return true
	}
	return p.Number-1 <= MaxOffset/p.Limit
}

// Offset returns the number of rows skipped before this page, saturated at
// MaxOffset.
func (p Page) Offset() int {
	if p.Number < 1 || p.Limit < 1 {
		return 0
	}
	if !p.InRange() {
		return MaxOffset
	}
	return (p.Number - 1) * p.Limit
}

// TotalPages returns ceil(total/limit). A non-positive limit yields 0.
func (p Page) TotalPages(total int) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// CheckRange adds a "page" error to errs when p starts beyond MaxOffset.
func (p Page) CheckRange(errs *FieldErrors) {
	if !p.InRange() {
		errs.Add("page", "is beyond the last addressable page")
	}
}

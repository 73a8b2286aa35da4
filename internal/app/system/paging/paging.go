// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the number of rows shown in paged listings.
const PageSize = 24

// LimitPlusOne returns PageSize+1 as int64 for look-ahead pagination,
// fetch one extra row to detect whether a next page exists.
func LimitPlusOne() int64 { return int64(PageSize + 1) }

// ParseStart extracts the 1-based "start" query parameter. Returns 1
// when absent or invalid.
func ParseStart(r *http.Request) int {
	s := query.Get(r, "start")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Skip converts a 1-based start index into a Mongo skip value.
func Skip(start int) int64 { return int64(start - 1) }

// Trim trims a slice fetched with LimitPlusOne down to PageSize,
// modifying it in place, and reports whether a next page exists.
func Trim[T any](rows *[]T) (hasNext bool) {
	if len(*rows) > PageSize {
		*rows = (*rows)[:PageSize]
		return true
	}
	return false
}

// Range holds computed values for prev/next links and the "showing
// X to Y" line.
type Range struct {
	Start     int // 1-based index of the first row shown (0 if empty)
	End       int // 1-based index of the last row shown (0 if empty)
	PrevStart int // start value for the previous page link
	NextStart int // start value for the next page link
	HasPrev   bool
	HasNext   bool
}

// ComputeRange calculates display values given the current start index,
// the number of rows shown, and the look-ahead result from Trim.
func ComputeRange(start, shown int, hasNext bool) Range {
	if shown == 0 {
		return Range{PrevStart: 1, NextStart: 1}
	}

	prev := start - PageSize
	if prev < 1 {
		prev = 1
	}
	return Range{
		Start:     start,
		End:       start + shown - 1,
		PrevStart: prev,
		NextStart: start + shown,
		HasPrev:   start > 1,
		HasNext:   hasNext,
	}
}

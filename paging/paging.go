// Package paging slices ordered collections into fixed-size, 1-based pages.
//
// Asking for a page past the last one yields an empty page rather than an
// error, and an empty collection still has one (empty) page.
package paging

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Page is one window of an ordered collection plus the collection's total size
type Page[T any] struct {
	Items  []T
	Number int
	Size   int
	Total  int64
}

// Bounds returns the [lo, hi) index window of page `number` over `total` items.
// Pages past the end give an empty window at `total`, however large `number` is
func Bounds(total int64, number, size int) (lo, hi int64) {
	if size < 1 {
		size = 1
	}
	if number < 1 {
		number = 1
	}
	if total <= 0 {
		return 0, 0
	}
	if int64(number-1) > (total-1)/int64(size) {
		return total, total
	}
	lo = int64(number-1) * int64(size)
	hi = total
	if int64(size) < total-lo {
		hi = lo + int64(size)
	}
	return
}

// Paginate returns page `number` of the already ordered and filtered items
func Paginate[T any](items []T, number, size int) Page[T] {
	if size < 1 {
		size = 1
	}
	if number < 1 {
		number = 1
	}
	total := int64(len(items))
	lo, hi := Bounds(total, number, size)
	return Page[T]{
		Items:  items[lo:hi:hi],
		Number: number,
		Size:   size,
		Total:  total,
	}
}

// Scope applies the Bounds window to a gorm query over `total` rows
func Scope(total int64, number, size int) func(*gorm.DB) *gorm.DB {
	lo, hi := Bounds(total, number, size)
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(int(lo)).Limit(int(hi - lo))
	}
}

// ParseNumber reads a ?page= value. Anything that isn't a positive integer is page 1
func ParseNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (p Page[T]) Len() int {
	return len(p.Items)
}

// NumPages is never less than 1
func (p Page[T]) NumPages() int {
	if p.Size < 1 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.NumPages()
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p Page[T]) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

func (p Page[T]) NextNumber() int {
	return p.Number + 1
}

func (p Page[T]) PreviousNumber() int {
	return p.Number - 1
}

// PageRange lists 1..NumPages for the paginator links
func (p Page[T]) PageRange() []int {
	result := make([]int, p.NumPages())
	for i := range result {
		result[i] = i + 1
	}
	return result
}

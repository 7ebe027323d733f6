// 19 Oct 2026

// Package split shares a list of items out amongst workers.
package split

import "fmt"

// Range is the half open interval [Start, End) of indices.
type Range struct {
	Start, End int
}

// Len is the number of items in a range.
func (r Range) Len() int { return r.End - r.Start }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Ranges splits n items into contiguous ranges for nWorker workers.
// If there are fewer items than workers, every item gets its own range,
// so only n workers are used. Otherwise each worker gets n/nWorker items
// and the first n%nWorker of them get one extra.
// No items gives no ranges.
func Ranges(nWorker, n int) ([]Range, error) {
	if nWorker < 1 {
		return nil, fmt.Errorf("number of workers must be > 0, not %d", nWorker)
	}
	if n < 0 {
		return nil, fmt.Errorf("number of items must be >= 0, not %d", n)
	}
	if n < nWorker {
		rr := make([]Range, n)
		for i := range rr {
			rr[i] = Range{i, i + 1}
		}
		return rr, nil
	}
	each, rem := n/nWorker, n%nWorker
	rr := make([]Range, nWorker)
	start := 0
	for i := range rr {
		sz := each
		if i < rem {
			sz++
		}
		rr[i] = Range{start, start + sz}
		start += sz
	}
	return rr, nil
}

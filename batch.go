package freqtree

import (
	"errors"
	"fmt"
)

// Validation errors reported by AnswerAll.
var (
	// ErrEmptyInput is returned when the input sequence has no elements.
	ErrEmptyInput = errors.New("freqtree: empty input sequence")
	// ErrInvalidRange is returned when a query's bounds are out of
	// order or outside the sequence.
	ErrInvalidRange = errors.New("freqtree: invalid query range")
	// ErrInvalidRank is returned when a query's rank is not positive.
	ErrInvalidRank = errors.New("freqtree: rank must be positive")
	// ErrRankExceedsDistinct is returned when a query's rank exceeds
	// the number of distinct values in the queried range.
	ErrRankExceedsDistinct = errors.New("freqtree: rank exceeds distinct value count")
)

// Query is one range+rank request: the k-th most frequent value in
// seq[Left..Right], both bounds inclusive, K 1-based.
type Query struct {
	Left  int
	Right int
	K     int
}

// AnswerAll builds a FreqTree over seq and answers every query in
// order. Each query is validated before it reaches the tree; the
// first invalid query aborts the whole batch, and no partial result
// is returned. This all-or-nothing behavior is the contract, not a
// shortcut: a batch with an invalid query has no meaningful answer.
func AnswerAll(seq []int64, queries []Query) ([]int64, error) {
	ft, err := New(seq)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(queries))
	for i, q := range queries {
		if q.Left < 0 || q.Right >= ft.Num() || q.Left > q.Right {
			return nil, fmt.Errorf("%w: query %d has bounds [%d,%d] over %d values",
				ErrInvalidRange, i, q.Left, q.Right, ft.Num())
		}
		if q.K <= 0 {
			return nil, fmt.Errorf("%w: query %d has k=%d", ErrInvalidRank, i, q.K)
		}
		if d := ft.Distinct(q.Left, q.Right); q.K > d {
			return nil, fmt.Errorf("%w: query %d wants rank %d but [%d,%d] holds %d distinct values",
				ErrRankExceedsDistinct, i, q.K, q.Left, q.Right, d)
		}
		val, ok := ft.Query(q.Left, q.Right, q.K)
		if !ok {
			// Unreachable after the distinct check above.
			return nil, fmt.Errorf("%w: query %d", ErrRankExceedsDistinct, i)
		}
		out = append(out, val)
	}
	return out, nil
}

// Package freqtree provides a static frequency tree
// answering k-th most frequent element queries over arbitrary
// contiguous subranges of a fixed integer sequence.
package freqtree

import (
	"sort"

	"github.com/ugorji/go/codec"
)

// RankEntry is one row of a range ranking: a distinct value and
// its occurrence count within the range.
type RankEntry struct {
	Val   int64
	Count int
}

// FreqTree is the core of the library. It is built once over a
// sequence and is immutable afterwards; queries never write, so a
// built tree may be shared across goroutines without locks.
//
// Nodes live in a 1-indexed heap-shaped arena: the children of node
// i are 2i and 2i+1. Each node stores the ranking of its index span:
// the distinct values present there, ordered by descending count and
// ascending value on ties.
type FreqTree struct {
	vals  []int64
	nodes [][]RankEntry
	num   int
}

// Num returns the number of values in T.
func (ft *FreqTree) Num() int {
	return ft.num
}

// Lookup returns T[pos].
func (ft *FreqTree) Lookup(pos int) int64 {
	return ft.vals[pos]
}

// Query returns the k-th most frequent value in T[left..right]
// (inclusive bounds, k is 1-based). Ties in count rank the smaller
// value first. The second result is false when fewer than k distinct
// values are present in the range.
//
// Bounds are assumed valid: 0 <= left <= right < Num() and k >= 1.
// Callers with unvalidated input should go through AnswerAll.
func (ft *FreqTree) Query(left, right, k int) (int64, bool) {
	ranking := ft.ranking(left, right)
	if k < 1 || k > len(ranking) {
		return 0, false
	}
	return ranking[k-1].Val, true
}

// TopK returns the first k entries of the ranking of T[left..right].
// If fewer than k distinct values are present, all of them are
// returned. The result is a copy and may be retained or modified.
func (ft *FreqTree) TopK(left, right, k int) []RankEntry {
	ranking := ft.ranking(left, right)
	if k > len(ranking) {
		k = len(ranking)
	}
	if k < 0 {
		k = 0
	}
	out := make([]RankEntry, k)
	copy(out, ranking[:k])
	return out
}

// Count returns the number of occurrences of val in T[left..right].
func (ft *FreqTree) Count(left, right int, val int64) int {
	covered := ft.collect(1, 0, ft.num-1, left, right, nil)
	total := 0
	for _, ranking := range covered {
		for _, e := range ranking {
			if e.Val == val {
				total += e.Count
				break
			}
		}
	}
	return total
}

// Distinct returns the number of distinct values in T[left..right].
func (ft *FreqTree) Distinct(left, right int) int {
	return len(ft.ranking(left, right))
}

// ranking returns the full ranking of T[left..right]. The query range
// is decomposed into the maximal tree nodes it fully covers; a range
// aligned to a single node is answered from that node's precomputed
// ranking with no merging at all. Otherwise the covered fragments'
// rankings are merged by value and re-sorted. Membership is decided
// by index span, never by value, so the merge cost is bounded by the
// distinct counts of the fragments rather than the subrange length.
//
// The returned slice may alias a node's precomputed ranking and must
// not be modified.
func (ft *FreqTree) ranking(left, right int) []RankEntry {
	covered := ft.collect(1, 0, ft.num-1, left, right, nil)
	if len(covered) == 0 {
		return nil
	}
	if len(covered) == 1 {
		return covered[0]
	}
	counts := make(map[int64]int)
	for _, ranking := range covered {
		for _, e := range ranking {
			counts[e.Val] += e.Count
		}
	}
	return sortRanking(counts)
}

// collect appends to out the rankings of the maximal nodes whose
// spans lie entirely inside [left,right]. Standard segment tree
// decomposition: O(log n) covered nodes plus a bounded number of
// straddling ancestors per query.
func (ft *FreqTree) collect(idx, lo, hi, left, right int, out [][]RankEntry) [][]RankEntry {
	if right < lo || hi < left {
		return out
	}
	if left <= lo && hi <= right {
		return append(out, ft.nodes[idx])
	}
	mid := (lo + hi) / 2
	out = ft.collect(2*idx, lo, mid, left, right, out)
	out = ft.collect(2*idx+1, mid+1, hi, left, right, out)
	return out
}

// build fills the arena for the node idx covering [lo,hi], leaves
// first. A parent's ranking is derived from its children's rankings,
// so each level costs work proportional to the entries at that level,
// never a rescan of the underlying sequence.
func (ft *FreqTree) build(idx, lo, hi int) {
	if lo == hi {
		ft.nodes[idx] = []RankEntry{{Val: ft.vals[lo], Count: 1}}
		return
	}
	mid := (lo + hi) / 2
	ft.build(2*idx, lo, mid)
	ft.build(2*idx+1, mid+1, hi)
	counts := make(map[int64]int, len(ft.nodes[2*idx])+len(ft.nodes[2*idx+1]))
	for _, e := range ft.nodes[2*idx] {
		counts[e.Val] += e.Count
	}
	for _, e := range ft.nodes[2*idx+1] {
		counts[e.Val] += e.Count
	}
	ft.nodes[idx] = sortRanking(counts)
}

// sortRanking flattens a value->count table into ranking order:
// count descending, value ascending on ties.
func sortRanking(counts map[int64]int) []RankEntry {
	out := make([]RankEntry, 0, len(counts))
	for val, count := range counts {
		out = append(out, RankEntry{Val: val, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Val < out[j].Val
	})
	return out
}

// MarshalBinary encodes FreqTree into a binary form and returns the result.
func (ft *FreqTree) MarshalBinary() (out []byte, err error) {
	var bh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &bh)
	err = enc.Encode(ft.num)
	if err != nil {
		return
	}
	err = enc.Encode(ft.vals)
	if err != nil {
		return
	}
	return
}

// UnmarshalBinary decodes FreqTree from a binary form generated by
// MarshalBinary. The node arena is fully derived state, so the wire
// form carries only the sequence; decode rebuilds the arena.
func (ft *FreqTree) UnmarshalBinary(in []byte) (err error) {
	var bh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(in, &bh)
	num := 0
	err = dec.Decode(&num)
	if err != nil {
		return
	}
	vals := make([]int64, 0, num)
	err = dec.Decode(&vals)
	if err != nil {
		return
	}
	ft.vals = vals
	ft.num = len(vals)
	ft.nodes = nil
	if ft.num > 0 {
		ft.nodes = make([][]RankEntry, 4*ft.num)
		ft.build(1, 0, ft.num-1)
	}
	return
}

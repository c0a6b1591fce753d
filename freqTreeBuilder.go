package freqtree

// FreqTreeBuilder builds a FreqTree from an integer sequence.
// A user calls PushBack()s followed by Build().
type FreqTreeBuilder struct {
	vals []int64
}

// NewBuilder returns an empty builder.
func NewBuilder() *FreqTreeBuilder {
	return &FreqTreeBuilder{}
}

// PushBack appends val to the sequence.
func (ftb *FreqTreeBuilder) PushBack(val int64) {
	ftb.vals = append(ftb.vals, val)
}

// Build constructs the tree over everything pushed so far. It fails
// with ErrEmptyInput when nothing was pushed; the tree is undefined
// for an empty sequence.
func (ftb *FreqTreeBuilder) Build() (*FreqTree, error) {
	if len(ftb.vals) == 0 {
		return nil, ErrEmptyInput
	}
	vals := make([]int64, len(ftb.vals))
	copy(vals, ftb.vals)
	ft := &FreqTree{
		vals:  vals,
		nodes: make([][]RankEntry, 4*len(vals)),
		num:   len(vals),
	}
	ft.build(1, 0, ft.num-1)
	return ft, nil
}

// New builds a FreqTree directly from vals.
func New(vals []int64) (*FreqTree, error) {
	ftb := NewBuilder()
	for _, val := range vals {
		ftb.PushBack(val)
	}
	return ftb.Build()
}

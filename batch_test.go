package freqtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerAll(t *testing.T) {
	seq := []int64{1, 2, 3, 2, 1, 3, 1, 4, 2}

	out, err := AnswerAll(seq, []Query{
		{Left: 0, Right: 8, K: 1},
		{Left: 2, Right: 5, K: 1},
		{Left: 2, Right: 5, K: 2},
		{Left: 7, Right: 7, K: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 1, 4}, out)
}

func TestAnswerAllEmptySequence(t *testing.T) {
	_, err := AnswerAll(nil, []Query{{Left: 0, Right: 0, K: 1}})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnswerAllInvalidRange(t *testing.T) {
	seq := []int64{10, 20, 30}

	for _, q := range []Query{
		{Left: -1, Right: 2, K: 1},
		{Left: 0, Right: 3, K: 1},
		{Left: 2, Right: 1, K: 1},
	} {
		_, err := AnswerAll(seq, []Query{q})
		assert.ErrorIs(t, err, ErrInvalidRange, "query %+v", q)
	}
}

func TestAnswerAllInvalidRank(t *testing.T) {
	seq := []int64{10, 20, 30}

	_, err := AnswerAll(seq, []Query{{Left: 0, Right: 2, K: 0}})
	require.ErrorIs(t, err, ErrInvalidRank)

	_, err = AnswerAll(seq, []Query{{Left: 0, Right: 2, K: -3}})
	require.ErrorIs(t, err, ErrInvalidRank)
}

func TestAnswerAllRankExceedsDistinct(t *testing.T) {
	seq := []int64{42, 42, 42, 42, 42}

	_, err := AnswerAll(seq, []Query{{Left: 0, Right: 4, K: 2}})
	require.ErrorIs(t, err, ErrRankExceedsDistinct)

	// The check is per queried range, not per whole sequence.
	seq = []int64{1, 2, 3, 1, 1, 1}
	_, err = AnswerAll(seq, []Query{{Left: 3, Right: 5, K: 2}})
	require.ErrorIs(t, err, ErrRankExceedsDistinct)
}

func TestAnswerAllAbortsBatch(t *testing.T) {
	seq := []int64{1, 2, 3, 2, 1}

	// A later invalid query discards the answers already computed.
	out, err := AnswerAll(seq, []Query{
		{Left: 0, Right: 4, K: 1},
		{Left: 0, Right: 4, K: 99},
		{Left: 0, Right: 4, K: 2},
	})
	require.ErrorIs(t, err, ErrRankExceedsDistinct)
	assert.Nil(t, out)
}

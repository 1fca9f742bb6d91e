package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSimilarities(t *testing.T) {
	tests := map[string]struct {
		docs        []EmbeddingVector
		topics      []EmbeddingVector
		cutoff      float64
		wantMatches []SimilarityMatch
	}{
		"identical-and-orthogonal-unit-vectors": {
			docs:   []EmbeddingVector{{1, 0}},
			topics: []EmbeddingVector{{0, 1}, {1, 0}},
			cutoff: 0.0,
			wantMatches: []SimilarityMatch{
				{Doc: 0, Topic: 0, Similarity: 0.0},
				{Doc: 0, Topic: 1, Similarity: 1.0},
			},
		},
		"cutoff-equal-to-score-is-included": {
			docs:   []EmbeddingVector{{1, 0}},
			topics: []EmbeddingVector{{1, 0}, {0, 1}},
			cutoff: 1.0,
			wantMatches: []SimilarityMatch{
				{Doc: 0, Topic: 0, Similarity: 1.0},
			},
		},
		"cutoff-above-max-similarity-yields-empty": {
			docs:        []EmbeddingVector{{1, 0}, {0, 1}},
			topics:      []EmbeddingVector{{1, 0}, {0, 1}},
			cutoff:      1.1,
			wantMatches: []SimilarityMatch{},
		},
		"negative-cutoff-includes-opposite-vectors": {
			docs:   []EmbeddingVector{{1, 0}},
			topics: []EmbeddingVector{{-1, 0}},
			cutoff: -1.0,
			wantMatches: []SimilarityMatch{
				{Doc: 0, Topic: 0, Similarity: -1.0},
			},
		},
		"row-major-order": {
			docs:   []EmbeddingVector{{1, 0}, {0, 1}},
			topics: []EmbeddingVector{{0, 1}, {1, 0}},
			cutoff: 0.5,
			wantMatches: []SimilarityMatch{
				{Doc: 0, Topic: 1, Similarity: 1.0},
				{Doc: 1, Topic: 0, Similarity: 1.0},
			},
		},
		"non-unit-vectors-are-normalized": {
			docs:   []EmbeddingVector{{3, 4}},
			topics: []EmbeddingVector{{6, 8}, {4, -3}},
			cutoff: 0.5,
			wantMatches: []SimilarityMatch{
				{Doc: 0, Topic: 0, Similarity: 1.0},
			},
		},
		"empty-documents": {
			docs:        nil,
			topics:      []EmbeddingVector{{1, 0}},
			cutoff:      0.5,
			wantMatches: []SimilarityMatch{},
		},
		"empty-topics": {
			docs:        []EmbeddingVector{{1, 0}},
			topics:      []EmbeddingVector{},
			cutoff:      0.5,
			wantMatches: []SimilarityMatch{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := MatchSimilarities(tt.docs, tt.topics, tt.cutoff)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Len(t, got, len(tt.wantMatches))
			for i, want := range tt.wantMatches {
				assert.Equal(t, want.Doc, got[i].Doc)
				assert.Equal(t, want.Topic, got[i].Topic)
				assert.InDelta(t, want.Similarity, got[i].Similarity, 1e-6)
				assert.GreaterOrEqual(t, got[i].Similarity, tt.cutoff-1e-6)
			}
		})
	}
}

func TestMatchSimilarities_DimensionMismatch(t *testing.T) {
	docs := []EmbeddingVector{
		{1, 0, 0},
		{0, 1, 0},
	}
	topics := []EmbeddingVector{
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
	}

	for _, cutoff := range []float64{-1, 0, 0.75, 2} {
		matches, err := MatchSimilarities(docs, topics, cutoff)
		assert.Nil(t, matches)

		var dimErr *DimensionMismatchErr
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, 3, dimErr.Expected)
		assert.Equal(t, 5, dimErr.Actual)
	}
}

func TestMatchSimilarities_InconsistentDocumentDimensions(t *testing.T) {
	docs := []EmbeddingVector{{1, 0}, {1, 0, 0}}
	topics := []EmbeddingVector{{1, 0}}

	_, err := MatchSimilarities(docs, topics, 0.5)

	var dimErr *DimensionMismatchErr
	assert.ErrorAs(t, err, &dimErr)
}

func TestMatchSimilarities_ZeroVector(t *testing.T) {
	_, err := MatchSimilarities([]EmbeddingVector{{0, 0}}, []EmbeddingVector{{1, 0}}, 0.5)

	var validationErr *ValidationErr
	assert.ErrorAs(t, err, &validationErr)
}

func TestMatchSimilarities_DoesNotMutateInputs(t *testing.T) {
	docs := []EmbeddingVector{{3, 4}}
	topics := []EmbeddingVector{{0, 2}}

	_, err := MatchSimilarities(docs, topics, 0)
	require.NoError(t, err)

	assert.Equal(t, EmbeddingVector{3, 4}, docs[0])
	assert.Equal(t, EmbeddingVector{0, 2}, topics[0])
}

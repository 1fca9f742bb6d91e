package domain

import (
	"fmt"
	"math"

	"github.com/cleitonmarx/docexplore/internal/common"
)

// unitNormTolerance is how far a vector norm may drift from 1 before the
// vector is normalized prior to scoring.
const unitNormTolerance = 1e-4

// SimilarityMatch is a document/topic pair whose similarity cleared the cutoff.
type SimilarityMatch struct {
	Doc        int
	Topic      int
	Similarity float64
}

// MatchSimilarities scores every document vector against every topic vector and
// returns the pairs with a cosine similarity greater than or equal to cutoff,
// in row-major order (document index, then topic index).
//
// Vectors are expected to be unit length, in which case cosine similarity is the
// plain dot product. Vectors that are not unit length are normalized into a copy;
// zero vectors are rejected. Every vector in both sets must share one
// dimensionality, otherwise a *DimensionMismatchErr is returned and no score is
// computed.
//
// The comparison is exhaustive, O(D*T*K) for D documents, T topics and K
// dimensions. It is meant for taxonomy-sized inputs, not for corpus-scale search.
func MatchSimilarities(docs, topics []EmbeddingVector, cutoff float64) ([]SimilarityMatch, error) {
	matches := make([]SimilarityMatch, 0)
	if len(docs) == 0 || len(topics) == 0 {
		return matches, nil
	}

	dims := len(docs[0])
	if err := checkDimensions("document", docs, dims); err != nil {
		return nil, err
	}
	if err := checkDimensions("topic", topics, dims); err != nil {
		return nil, err
	}

	docUnits, err := unitVectors("document", docs)
	if err != nil {
		return nil, err
	}
	topicUnits, err := unitVectors("topic", topics)
	if err != nil {
		return nil, err
	}

	for i, d := range docUnits {
		for j, t := range topicUnits {
			score := common.DotProduct(d, t)
			if score >= cutoff {
				matches = append(matches, SimilarityMatch{Doc: i, Topic: j, Similarity: score})
			}
		}
	}
	return matches, nil
}

func checkDimensions(kind string, vectors []EmbeddingVector, dims int) error {
	for i, v := range vectors {
		if len(v) != dims {
			return NewDimensionMismatchErr(fmt.Sprintf("%s vector %d", kind, i), dims, len(v))
		}
	}
	return nil
}

// unitVectors converts vectors to float64, normalizing the ones that are not
// already unit length.
func unitVectors(kind string, vectors []EmbeddingVector) ([][]float64, error) {
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		if len(v) == 0 {
			return nil, NewValidationErr(fmt.Sprintf("%s vector %d is empty", kind, i))
		}
		n := common.Norm(v)
		if math.Abs(n-1) <= unitNormTolerance {
			f := make([]float64, len(v))
			for k := range v {
				f[k] = float64(v[k])
			}
			out[i] = f
			continue
		}
		unit, ok := common.Normalize(v)
		if !ok {
			return nil, NewValidationErr(fmt.Sprintf("%s vector %d has zero norm", kind, i))
		}
		out[i] = unit
	}
	return out, nil
}

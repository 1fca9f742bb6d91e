package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func exploreInput() domain.ExploreInput {
	return domain.ExploreInput{
		Documents: []domain.Document{
			{Text: "cats are great"},
			{Text: "stock market rises"},
		},
		Topics: []domain.Topic{
			{Topic: "animal", Subtopic: "pet"},
			{Topic: "finance", Subtopic: "market"},
		},
	}
}

// semanticVectors gives animal and finance texts orthogonal-ish directions.
var semanticVectors = map[string]domain.EmbeddingVector{
	"cats are great":     {0.9, 0.1},
	"stock market rises": {0.1, 0.9},
	"animal: pet":        {1, 0},
	"finance: market":    {0, 1},
}

func TestMatchDocumentsImpl_Execute_EndToEnd(t *testing.T) {
	provider := domain.NewMockEmbeddingProvider(t)
	provider.EXPECT().Model().Return(testModel)
	provider.EXPECT().Embed(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, texts []string) (domain.EmbeddingResult, error) {
			res := domain.EmbeddingResult{}
			for _, text := range texts {
				res.Vectors = append(res.Vectors, semanticVectors[text])
			}
			return res, nil
		},
	).Times(2)

	cache := NewEmbeddingCacheImpl(newMemoryStore(), provider, 0, discardLogger())
	uc := NewMatchDocumentsImpl(cache, CacheWritePolicy_Fail, discardLogger())

	matches, err := uc.Execute(context.Background(), exploreInput(), 0.5)
	require.NoError(t, err)

	pairs := map[[2]int]float64{}
	for _, m := range matches {
		pairs[[2]int{m.Doc, m.Topic}] = m.Similarity
		assert.GreaterOrEqual(t, m.Similarity, 0.5)
	}
	assert.Contains(t, pairs, [2]int{0, 0})
	assert.Contains(t, pairs, [2]int{1, 1})
	assert.NotContains(t, pairs, [2]int{0, 1})
	assert.NotContains(t, pairs, [2]int{1, 0})
}

func TestMatchDocumentsImpl_Execute(t *testing.T) {
	docTexts := []string{"cats are great", "stock market rises"}
	topicLabels := []string{"animal: pet", "finance: market"}
	docVectors := []domain.EmbeddingVector{{1, 0}, {0, 1}}
	topicVectors := []domain.EmbeddingVector{{1, 0}, {0, 1}}

	tests := map[string]struct {
		input           domain.ExploreInput
		policy          CacheWritePolicy
		setExpectations func(cache *MockEmbeddingCache)
		wantMatches     []domain.SimilarityMatch
		assertErr       func(t *testing.T, err error)
	}{
		"success": {
			input:  exploreInput(),
			policy: CacheWritePolicy_Fail,
			setExpectations: func(cache *MockEmbeddingCache) {
				cache.EXPECT().EmbedBatch(mock.Anything, docTexts).Return(docVectors, nil)
				cache.EXPECT().EmbedBatch(mock.Anything, topicLabels).Return(topicVectors, nil)
			},
			wantMatches: []domain.SimilarityMatch{
				{Doc: 0, Topic: 0, Similarity: 1},
				{Doc: 1, Topic: 1, Similarity: 1},
			},
		},
		"cache-write-error-with-warn-policy-keeps-vectors": {
			input:  exploreInput(),
			policy: CacheWritePolicy_Warn,
			setExpectations: func(cache *MockEmbeddingCache) {
				cache.EXPECT().EmbedBatch(mock.Anything, docTexts).
					Return(docVectors, domain.NewCacheWriteErr(2, errors.New("disk full")))
				cache.EXPECT().EmbedBatch(mock.Anything, topicLabels).Return(topicVectors, nil)
			},
			wantMatches: []domain.SimilarityMatch{
				{Doc: 0, Topic: 0, Similarity: 1},
				{Doc: 1, Topic: 1, Similarity: 1},
			},
		},
		"cache-write-error-with-fail-policy": {
			input:  exploreInput(),
			policy: CacheWritePolicy_Fail,
			setExpectations: func(cache *MockEmbeddingCache) {
				cache.EXPECT().EmbedBatch(mock.Anything, docTexts).
					Return(docVectors, domain.NewCacheWriteErr(2, errors.New("disk full"))).Maybe()
				cache.EXPECT().EmbedBatch(mock.Anything, topicLabels).Return(topicVectors, nil).Maybe()
			},
			assertErr: func(t *testing.T, err error) {
				var writeErr *domain.CacheWriteErr
				assert.ErrorAs(t, err, &writeErr)
			},
		},
		"provider-error": {
			input:  exploreInput(),
			policy: CacheWritePolicy_Warn,
			setExpectations: func(cache *MockEmbeddingCache) {
				cache.EXPECT().EmbedBatch(mock.Anything, docTexts).
					Return(nil, domain.NewProviderErr("embed 2 texts", errors.New("401 unauthorized"))).Maybe()
				cache.EXPECT().EmbedBatch(mock.Anything, topicLabels).Return(topicVectors, nil).Maybe()
			},
			assertErr: func(t *testing.T, err error) {
				var providerErr *domain.ProviderErr
				assert.ErrorAs(t, err, &providerErr)
			},
		},
		"dimension-mismatch": {
			input:  exploreInput(),
			policy: CacheWritePolicy_Fail,
			setExpectations: func(cache *MockEmbeddingCache) {
				cache.EXPECT().EmbedBatch(mock.Anything, docTexts).Return(docVectors, nil)
				cache.EXPECT().EmbedBatch(mock.Anything, topicLabels).
					Return([]domain.EmbeddingVector{{1, 0, 0}, {0, 1, 0}}, nil)
			},
			assertErr: func(t *testing.T, err error) {
				var dimErr *domain.DimensionMismatchErr
				assert.ErrorAs(t, err, &dimErr)
			},
		},
		"empty-document-text": {
			input: domain.ExploreInput{
				Documents: []domain.Document{{Text: "ok"}, {Text: "  "}},
				Topics:    []domain.Topic{{Topic: "animal", Subtopic: "pet"}},
			},
			policy:          CacheWritePolicy_Fail,
			setExpectations: func(cache *MockEmbeddingCache) {},
			assertErr: func(t *testing.T, err error) {
				var shapeErr *domain.InputShapeErr
				require.ErrorAs(t, err, &shapeErr)
				assert.Equal(t, "docs", shapeErr.Kind)
				assert.Equal(t, 2, shapeErr.Row)
			},
		},
		"empty-input": {
			input:  domain.ExploreInput{},
			policy: CacheWritePolicy_Fail,
			setExpectations: func(cache *MockEmbeddingCache) {
				cache.EXPECT().EmbedBatch(mock.Anything, []string{}).Return([]domain.EmbeddingVector{}, nil).Times(2)
			},
			wantMatches: []domain.SimilarityMatch{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cache := NewMockEmbeddingCache(t)
			tt.setExpectations(cache)

			uc := NewMatchDocumentsImpl(cache, tt.policy, discardLogger())
			got, err := uc.Execute(context.Background(), tt.input, 0.5)

			if tt.assertErr != nil {
				require.Error(t, err)
				tt.assertErr(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.Len(t, got, len(tt.wantMatches))
			for i, want := range tt.wantMatches {
				assert.Equal(t, want.Doc, got[i].Doc)
				assert.Equal(t, want.Topic, got[i].Topic)
				assert.InDelta(t, want.Similarity, got[i].Similarity, 1e-6)
			}
		})
	}
}

func TestCacheWritePolicy_Validate(t *testing.T) {
	assert.NoError(t, CacheWritePolicy_Fail.Validate())
	assert.NoError(t, CacheWritePolicy_Warn.Validate())

	var validationErr *domain.ValidationErr
	assert.ErrorAs(t, CacheWritePolicy("ignore").Validate(), &validationErr)
}

func TestInitMatchDocuments_Initialize(t *testing.T) {
	tests := map[string]struct {
		policy  string
		wantErr bool
	}{
		"fail-policy":    {policy: "fail"},
		"warn-policy":    {policy: "warn"},
		"unknown-policy": {policy: "retry", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := InitMatchDocuments{
				Logger:           discardLogger(),
				Cache:            NewMockEmbeddingCache(t),
				CacheWritePolicy: tt.policy,
			}

			_, err := i.Initialize(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			uc, err := depend.Resolve[MatchDocuments]()
			assert.NoError(t, err)
			assert.NotNil(t, uc)
		})
	}
}

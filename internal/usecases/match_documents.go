package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/docexplore/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// CacheWritePolicy decides how a failure to persist new embeddings is handled.
type CacheWritePolicy string

const (
	// CacheWritePolicy_Fail aborts the run when new embeddings cannot be stored.
	CacheWritePolicy_Fail CacheWritePolicy = "fail"
	// CacheWritePolicy_Warn logs the failure and keeps the freshly fetched vectors.
	CacheWritePolicy_Warn CacheWritePolicy = "warn"
)

// Validate checks that the policy is a known value.
func (p CacheWritePolicy) Validate() error {
	if p != CacheWritePolicy_Fail && p != CacheWritePolicy_Warn {
		return domain.NewValidationErr(fmt.Sprintf("cache write policy must be %q or %q, got %q", CacheWritePolicy_Fail, CacheWritePolicy_Warn, p))
	}
	return nil
}

// MatchDocuments defines the interface for matching documents against the topic taxonomy.
type MatchDocuments interface {
	Execute(ctx context.Context, input domain.ExploreInput, cutoff float64) ([]domain.SimilarityMatch, error)
}

// MatchDocumentsImpl is the implementation of the MatchDocuments use case.
type MatchDocumentsImpl struct {
	cache       EmbeddingCache
	writePolicy CacheWritePolicy
	logger      *log.Logger
}

// NewMatchDocumentsImpl creates a new instance of MatchDocumentsImpl.
func NewMatchDocumentsImpl(cache EmbeddingCache, writePolicy CacheWritePolicy, logger *log.Logger) MatchDocumentsImpl {
	return MatchDocumentsImpl{
		cache:       cache,
		writePolicy: writePolicy,
		logger:      logger,
	}
}

// Execute embeds documents and topic labels, then returns every pair whose
// similarity is at least cutoff.
func (m MatchDocumentsImpl) Execute(ctx context.Context, input domain.ExploreInput, cutoff float64) ([]domain.SimilarityMatch, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("docs", len(input.Documents)),
		attribute.Int("topics", len(input.Topics)),
		attribute.Float64("cutoff", cutoff),
	))
	defer span.End()

	if err := input.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var docVectors, topicVectors []domain.EmbeddingVector

	// Both batches are independent network round trips; matching waits for both.
	g, gCtx := errgroup.WithContext(spanCtx)
	g.Go(func() error {
		vectors, err := m.embed(gCtx, "docs", input.DocumentTexts())
		docVectors = vectors
		return err
	})
	g.Go(func() error {
		vectors, err := m.embed(gCtx, "topics", input.TopicLabels())
		topicVectors = vectors
		return err
	})
	if err := g.Wait(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	matches, err := domain.MatchSimilarities(docVectors, topicVectors, cutoff)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	RecordSimilarityMatches(spanCtx, len(matches))
	span.SetAttributes(attribute.Int("matches", len(matches)))
	return matches, nil
}

func (m MatchDocumentsImpl) embed(ctx context.Context, kind string, texts []string) ([]domain.EmbeddingVector, error) {
	vectors, err := m.cache.EmbedBatch(ctx, texts)
	if err == nil {
		return vectors, nil
	}

	var writeErr *domain.CacheWriteErr
	if errors.As(err, &writeErr) && m.writePolicy == CacheWritePolicy_Warn && vectors != nil {
		m.logger.Printf("MatchDocuments: %s embeddings were not cached: %v", kind, err)
		return vectors, nil
	}
	return nil, err
}

// InitMatchDocuments initializes the MatchDocuments use case and registers it in the dependency container.
type InitMatchDocuments struct {
	Logger           *log.Logger    `resolve:""`
	Cache            EmbeddingCache `resolve:""`
	CacheWritePolicy string         `config:"CACHE_WRITE_ERRORS" default:"fail"`
}

// Initialize initializes the MatchDocumentsImpl use case and registers it in the dependency container.
func (i InitMatchDocuments) Initialize(ctx context.Context) (context.Context, error) {
	policy := CacheWritePolicy(i.CacheWritePolicy)
	if err := policy.Validate(); err != nil {
		return ctx, err
	}
	depend.Register[MatchDocuments](NewMatchDocumentsImpl(i.Cache, policy, i.Logger))
	return ctx, nil
}

package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/cleitonmarx/docexplore/internal/common"
	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/docexplore/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultEmbeddingBatchSize = 256

// EmbeddingCache embeds texts through a content-addressed store, calling the
// embedding provider only for texts that were never embedded with its model.
type EmbeddingCache interface {
	// EmbedBatch returns one vector per text, in input order.
	//
	// A *domain.ProviderErr is returned when the provider fails. When new vectors
	// cannot be persisted a *domain.CacheWriteErr is returned together with the
	// complete, ordered vector slice.
	EmbedBatch(ctx context.Context, texts []string) ([]domain.EmbeddingVector, error)
}

// EmbeddingCacheImpl is the implementation of the EmbeddingCache use case.
type EmbeddingCacheImpl struct {
	store     domain.EmbeddingStore
	provider  domain.EmbeddingProvider
	batchSize int
	logger    *log.Logger
}

// NewEmbeddingCacheImpl creates a new instance of EmbeddingCacheImpl.
// A batchSize lower than 1 falls back to the default batch size.
func NewEmbeddingCacheImpl(store domain.EmbeddingStore, provider domain.EmbeddingProvider, batchSize int, logger *log.Logger) EmbeddingCacheImpl {
	if batchSize < 1 {
		batchSize = defaultEmbeddingBatchSize
	}
	return EmbeddingCacheImpl{
		store:     store,
		provider:  provider,
		batchSize: batchSize,
		logger:    logger,
	}
}

// EmbedBatch implements EmbeddingCache.
func (c EmbeddingCacheImpl) EmbedBatch(ctx context.Context, texts []string) ([]domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("texts", len(texts)),
	))
	defer span.End()

	vectors := make([]domain.EmbeddingVector, len(texts))
	if len(texts) == 0 {
		return vectors, nil
	}

	model := c.provider.Model()
	keys := make([]domain.CacheKey, len(texts))
	for i, text := range texts {
		keys[i] = domain.NewCacheKey(model, text)
	}

	stored, err := c.store.Get(spanCtx, uniqueKeys(keys))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("embedding cache: lookup: %w", err)
	}

	// positions of every pending key, so duplicated texts are embedded once
	pending := map[domain.CacheKey][]int{}
	var missTexts []string
	var missKeys []domain.CacheKey
	for i, key := range keys {
		if vec, ok := stored[key]; ok {
			vectors[i] = vec
			continue
		}
		if _, queued := pending[key]; !queued {
			missTexts = append(missTexts, texts[i])
			missKeys = append(missKeys, key)
		}
		pending[key] = append(pending[key], i)
	}

	hits := len(texts)
	for _, positions := range pending {
		hits -= len(positions)
	}
	RecordEmbeddingCacheLookups(spanCtx, hits, len(texts)-hits)
	span.SetAttributes(
		attribute.Int("cache.hits", hits),
		attribute.Int("cache.misses", len(texts)-hits),
	)

	var writeErr *domain.CacheWriteErr
	for start := 0; start < len(missTexts); start += c.batchSize {
		end := min(start+c.batchSize, len(missTexts))

		entries, err := c.embedMisses(spanCtx, missKeys[start:end], missTexts[start:end])
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}

		for _, entry := range entries {
			for _, pos := range pending[entry.Key] {
				vectors[pos] = entry.Vector
			}
		}

		if err := c.store.Put(spanCtx, entries); err != nil {
			c.logger.Printf("EmbeddingCache: failed to store %d entries: %v", len(entries), err)
			if writeErr == nil {
				writeErr = domain.NewCacheWriteErr(len(entries), err)
			}
		}
	}

	if writeErr != nil {
		telemetry.RecordErrorAndStatus(span, writeErr)
		return vectors, writeErr
	}
	return vectors, nil
}

// embedMisses calls the provider for one chunk of missing texts and validates
// its response before anything gets stored.
func (c EmbeddingCacheImpl) embedMisses(ctx context.Context, keys []domain.CacheKey, texts []string) ([]domain.CacheEntry, error) {
	resp, err := c.provider.Embed(ctx, texts)
	RecordEmbeddingProviderBatch(ctx, err)
	if err != nil {
		return nil, asProviderErr(err, len(texts))
	}

	if len(resp.Vectors) != len(texts) {
		return nil, domain.NewProviderErr(
			fmt.Sprintf("expected %d vectors, got %d", len(texts), len(resp.Vectors)), nil,
		)
	}

	dims := len(resp.Vectors[0])
	entries := make([]domain.CacheEntry, len(texts))
	for i, vec := range resp.Vectors {
		if len(vec) == 0 {
			return nil, domain.NewProviderErr(fmt.Sprintf("empty vector at index %d", i), nil)
		}
		if len(vec) != dims {
			return nil, domain.NewProviderErr(
				fmt.Sprintf("vector at index %d has %d dimensions, expected %d", i, len(vec), dims), nil,
			)
		}
		// stored entries never expire, so a degenerate vector would fail every later run
		if norm := common.Norm(vec); norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
			return nil, domain.NewProviderErr(fmt.Sprintf("vector at index %d has norm %v", i, norm), nil)
		}
		entries[i] = domain.CacheEntry{Key: keys[i], Vector: vec}
	}

	RecordEmbeddingTokens(ctx, resp.TotalTokens)
	return entries, nil
}

// asProviderErr keeps provider errors as they are and wraps anything else.
func asProviderErr(err error, n int) error {
	var providerErr *domain.ProviderErr
	if errors.As(err, &providerErr) {
		return err
	}
	return domain.NewProviderErr(fmt.Sprintf("embed %d texts", n), err)
}

func uniqueKeys(keys []domain.CacheKey) []domain.CacheKey {
	seen := make(map[domain.CacheKey]struct{}, len(keys))
	unique := make([]domain.CacheKey, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}
	return unique
}

// InitEmbeddingCache initializes the EmbeddingCache use case and registers it in the dependency container.
type InitEmbeddingCache struct {
	Logger    *log.Logger              `resolve:""`
	Store     domain.EmbeddingStore    `resolve:""`
	Provider  domain.EmbeddingProvider `resolve:""`
	BatchSize int                      `config:"EMBEDDING_BATCH_SIZE" default:"256"`
}

// Initialize initializes the EmbeddingCacheImpl use case and registers it in the dependency container.
func (i InitEmbeddingCache) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[EmbeddingCache](NewEmbeddingCacheImpl(i.Store, i.Provider, i.BatchSize, i.Logger))
	return ctx, nil
}

package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                    = otel.Meter("usecases")
	EmbeddingCacheLookups    metric.Int64Counter
	EmbeddingProviderBatches metric.Int64Counter
	EmbeddingTokensUsed      metric.Int64Counter
	SimilarityMatches        metric.Int64Counter
)

func init() {
	var err error
	EmbeddingCacheLookups, err = meter.Int64Counter(
		"embedding_cache_lookups_total",
		metric.WithDescription("Total embedding cache lookups by result"),
	)
	if err != nil {
		panic(err)
	}

	EmbeddingProviderBatches, err = meter.Int64Counter(
		"embedding_provider_batches_total",
		metric.WithDescription("Total batched calls to the embedding provider"),
	)
	if err != nil {
		panic(err)
	}

	// Tokens consumed by the embedding provider
	EmbeddingTokensUsed, err = meter.Int64Counter(
		"embedding_tokens_used_total",
		metric.WithDescription("Total embedding tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	SimilarityMatches, err = meter.Int64Counter(
		"similarity_matches_total",
		metric.WithDescription("Total document/topic pairs above the similarity cutoff"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEmbeddingCacheLookups records cache hits and misses of one batch.
func RecordEmbeddingCacheLookups(ctx context.Context, hits, misses int) {
	EmbeddingCacheLookups.Add(ctx, int64(hits), metric.WithAttributes(
		attribute.String("result", "hit"),
	))
	EmbeddingCacheLookups.Add(ctx, int64(misses), metric.WithAttributes(
		attribute.String("result", "miss"),
	))
}

// RecordEmbeddingProviderBatch records one provider call.
func RecordEmbeddingProviderBatch(ctx context.Context, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	EmbeddingProviderBatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
	))
}

// RecordEmbeddingTokens records the number of tokens used in an embedding operation.
func RecordEmbeddingTokens(ctx context.Context, totalTokens int) {
	EmbeddingTokensUsed.Add(ctx, int64(totalTokens))
}

// RecordSimilarityMatches records the number of matches of one run.
func RecordSimilarityMatches(ctx context.Context, matches int) {
	SimilarityMatches.Add(ctx, int64(matches))
}

package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/docexplore/internal/telemetry"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	embeddingCacheTable = "embedding_cache"
	// keeps IN lists and multi-row inserts well below the protocol parameter limit
	maxKeysPerQuery     = 1000
	maxRowsPerInsert    = 500
)

var (
	embeddingCacheFields = []string{
		"cache_key",
		"model",
		"dimensions",
		"embedding",
		"created_at",
	}
)

// EmbeddingStore implements the domain.EmbeddingStore interface using PostgreSQL
// with the pgvector extension as the storage backend.
type EmbeddingStore struct {
	sb    squirrel.StatementBuilderType
	clock domain.CurrentTimeProvider
}

// NewEmbeddingStore creates a new instance of EmbeddingStore.
func NewEmbeddingStore(br squirrel.BaseRunner, clock domain.CurrentTimeProvider) EmbeddingStore {
	return EmbeddingStore{
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		clock: clock,
	}
}

// Get implements domain.EmbeddingStore.
func (s EmbeddingStore) Get(ctx context.Context, keys []domain.CacheKey) (map[domain.CacheKey]domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("keys", len(keys)),
	))
	defer span.End()

	found := make(map[domain.CacheKey]domain.EmbeddingVector, len(keys))
	for start := 0; start < len(keys); start += maxKeysPerQuery {
		end := min(start+maxKeysPerQuery, len(keys))
		if err := s.get(spanCtx, keys[start:end], found); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
	}

	span.SetAttributes(attribute.Int("found", len(found)))
	return found, nil
}

func (s EmbeddingStore) get(ctx context.Context, keys []domain.CacheKey, found map[domain.CacheKey]domain.EmbeddingVector) error {
	byString := make(map[string]domain.CacheKey, len(keys))
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		byString[key.String()] = key
		ids = append(ids, key.String())
	}

	rows, err := s.sb.
		Select("cache_key", "embedding").
		From(embeddingCacheTable).
		Where(squirrel.Eq{"cache_key": ids}).
		QueryContext(ctx)
	if err != nil {
		return err
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var (
			id  string
			vec pgvector.Vector
		)
		if err := rows.Scan(&id, &vec); err != nil {
			return err
		}
		key, ok := byString[id]
		if !ok {
			return fmt.Errorf("unexpected cache key %q", id)
		}
		found[key] = domain.EmbeddingVector(vec.Slice())
	}

	return rows.Err()
}

// Put implements domain.EmbeddingStore. Rows that already exist are left untouched.
func (s EmbeddingStore) Put(ctx context.Context, entries []domain.CacheEntry) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("entries", len(entries)),
	))
	defer span.End()

	now := s.clock.Now()
	for start := 0; start < len(entries); start += maxRowsPerInsert {
		end := min(start+maxRowsPerInsert, len(entries))

		qry := s.sb.
			Insert(embeddingCacheTable).
			Columns(embeddingCacheFields...).
			Suffix("ON CONFLICT (cache_key) DO NOTHING")
		for _, e := range entries[start:end] {
			qry = qry.Values(
				e.Key.String(),
				e.Key.Model,
				len(e.Vector),
				pgvector.NewVector(e.Vector),
				now,
			)
		}

		if _, err := qry.ExecContext(spanCtx); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
	}
	return nil
}

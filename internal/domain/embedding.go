package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// EmbeddingVector is a fixed-length semantic vector produced by an embedding model.
type EmbeddingVector []float32

// EmbeddingResult is the output of one provider call.
type EmbeddingResult struct {
	Vectors     []EmbeddingVector
	TotalTokens int
}

// EmbeddingProvider maps texts to vectors using a single, fixed model.
type EmbeddingProvider interface {
	// Model returns the identifier of the model used by the provider.
	Model() string
	// Embed returns one vector per text, in input order.
	Embed(ctx context.Context, texts []string) (EmbeddingResult, error)
}

// CacheKey identifies a cached embedding by model and text content.
type CacheKey struct {
	Model  string
	Digest string
}

// NewCacheKey derives the cache key of text under model. The digest is the
// hex encoded SHA-256 of the UTF-8 bytes of text.
func NewCacheKey(model, text string) CacheKey {
	sum := sha256.Sum256([]byte(text))
	return CacheKey{
		Model:  model,
		Digest: hex.EncodeToString(sum[:]),
	}
}

// String returns the key in its "model:digest" form.
func (k CacheKey) String() string {
	return k.Model + ":" + k.Digest
}

// CacheEntry is a stored embedding.
type CacheEntry struct {
	Key    CacheKey
	Vector EmbeddingVector
}

// EmbeddingStore is a durable, content-addressed embedding store.
type EmbeddingStore interface {
	// Get returns the vectors stored under keys. Absent keys are omitted from the result.
	Get(ctx context.Context, keys []CacheKey) (map[CacheKey]EmbeddingVector, error)
	// Put stores entries whose keys are not present yet. Existing entries are left untouched.
	Put(ctx context.Context, entries []CacheEntry) error
}

// CurrentTimeProvider stamps stored entries with their creation time.
type CurrentTimeProvider interface {
	Now() time.Time
}

package modelrunner

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/docexplore/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EmbeddingProvider adapts DRMAPIClient to the domain.EmbeddingProvider interface.
type EmbeddingProvider struct {
	client    DRMAPIClient
	model     string
	formatter PromptFormatter
}

// NewEmbeddingProvider creates a new provider bound to model.
func NewEmbeddingProvider(client DRMAPIClient, model string) EmbeddingProvider {
	return EmbeddingProvider{
		client:    client,
		model:     model,
		formatter: promptFormatterFactory{}.Get(model),
	}
}

// Model implements domain.EmbeddingProvider.
func (p EmbeddingProvider) Model() string {
	return p.model
}

// Embed implements domain.EmbeddingProvider.
func (p EmbeddingProvider) Embed(ctx context.Context, texts []string) (domain.EmbeddingResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", p.model),
		attribute.Int("texts", len(texts)),
	))
	defer span.End()

	input := make([]string, len(texts))
	for i, text := range texts {
		input[i] = p.formatter.FormatDocument(text)
	}

	resp, err := p.client.Embeddings(spanCtx, EmbeddingsRequest{
		Model: p.model,
		Input: input,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingResult{}, domain.NewProviderErr(fmt.Sprintf("embed %d texts", len(texts)), err)
	}

	vectors, err := orderByIndex(resp.Data, len(texts))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingResult{}, err
	}

	span.SetAttributes(attribute.Int("tokens", resp.Usage.TotalTokens))
	return domain.EmbeddingResult{
		Vectors:     vectors,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// orderByIndex places every returned embedding at the position of its input.
func orderByIndex(data []EmbeddingData, n int) ([]domain.EmbeddingVector, error) {
	if len(data) != n {
		return nil, domain.NewProviderErr(fmt.Sprintf("expected %d embeddings, got %d", n, len(data)), nil)
	}
	vectors := make([]domain.EmbeddingVector, n)
	for _, d := range data {
		if d.Index < 0 || d.Index >= n {
			return nil, domain.NewProviderErr(fmt.Sprintf("embedding index %d out of range", d.Index), nil)
		}
		if vectors[d.Index] != nil {
			return nil, domain.NewProviderErr(fmt.Sprintf("duplicate embedding index %d", d.Index), nil)
		}
		vectors[d.Index] = domain.EmbeddingVector(d.Embedding)
	}
	return vectors, nil
}

// InitEmbeddingProvider initializes the EmbeddingProvider dependency.
type InitEmbeddingProvider struct {
	HttpClient     *http.Client `resolve:""`
	ModelHost      string       `config:"LLM_MODEL_HOST"`
	EmbeddingsPath string       `config:"LLM_EMBEDDINGS_PATH" default:"/engines/v1/embeddings"`
	APIKey         string       `config:"LLM_API_KEY" default:"-"`
	Model          string       `config:"LLM_EMBEDDING_MODEL"`
}

// Initialize registers the EmbeddingProvider.
func (i InitEmbeddingProvider) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	depend.Register[domain.EmbeddingProvider](NewEmbeddingProvider(
		NewDRMAPIClient(i.ModelHost, i.EmbeddingsPath, apiKey, i.HttpClient),
		i.Model,
	))
	return ctx, nil
}

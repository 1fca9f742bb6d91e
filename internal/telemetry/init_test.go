package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitOpenTelemetry_Initialize_WithEndpoints(t *testing.T) {
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		TracesEndpoint:  collector.URL + "/v1/traces",
		MetricsEndpoint: collector.URL + "/v1/metrics",
	}
	_, err := init.Initialize(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, init.tp)
	assert.NotNil(t, init.mp)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{
		Logger:   log.New(&strings.Builder{}, "", 0),
		Timeout:  15 * time.Second,
		RetryMax: 1,
	}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, client.Timeout)
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	always := func(context.Context, *http.Response, error) (bool, error) { return true, nil }
	policy := dontRetry500StatusPolicy(always)

	tests := map[string]struct {
		ctx       func() context.Context
		resp      *http.Response
		err       error
		wantRetry bool
	}{
		"internal-server-error": {
			ctx:  context.Background,
			resp: &http.Response{StatusCode: http.StatusInternalServerError},
		},
		"too-many-requests": {
			ctx:       context.Background,
			resp:      &http.Response{StatusCode: http.StatusTooManyRequests},
			wantRetry: true,
		},
		"transport-error-without-response": {
			ctx:       context.Background,
			err:       errors.New("connection reset"),
			wantRetry: true,
		},
		"canceled-context": {
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			resp: &http.Response{StatusCode: http.StatusServiceUnavailable},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			retry, _ := policy(tt.ctx(), tt.resp, tt.err)
			assert.Equal(t, tt.wantRetry, retry)
		})
	}
}

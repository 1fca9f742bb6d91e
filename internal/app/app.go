package app

import (
	"github.com/cleitonmarx/docexplore/internal/adapters/inbound/jobs"
	"github.com/cleitonmarx/docexplore/internal/adapters/outbound/config"
	"github.com/cleitonmarx/docexplore/internal/adapters/outbound/filestore"
	"github.com/cleitonmarx/docexplore/internal/adapters/outbound/log"
	"github.com/cleitonmarx/docexplore/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/docexplore/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/docexplore/internal/adapters/outbound/report"
	"github.com/cleitonmarx/docexplore/internal/adapters/outbound/spreadsheet"
	"github.com/cleitonmarx/docexplore/internal/adapters/outbound/time"
	"github.com/cleitonmarx/docexplore/internal/telemetry"
	"github.com/cleitonmarx/docexplore/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewDocExploreApp creates and returns a new instance of the DocExplore application.
func NewDocExploreApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitCurrentTimeProvider{},
			&filestore.InitEmbeddingStore{},
			&postgres.InitDB{},
			&modelrunner.InitEmbeddingProvider{},
			&spreadsheet.InitReader{},
			&report.InitJSONWriter{},

			&usecases.InitEmbeddingCache{},
			&usecases.InitMatchDocuments{},
			&usecases.InitGenerateExploreReport{},
		).
		Host(
			&jobs.ExploreJob{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

package report

import (
	"context"
	"testing"

	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter_Write(t *testing.T) {
	tests := map[string]struct {
		report   domain.ExploreReport
		expected string
	}{
		"with-matches": {
			report: domain.ExploreReport{
				Documents: []domain.Document{
					{Text: "cats are great", Fields: map[string]string{"para": "cats are great", "source": "blog"}},
				},
				Topics: []domain.Topic{
					{Topic: "animal", Subtopic: "pet", Fields: map[string]string{"topic": "animal", "subtopic": "pet"}},
				},
				Matches: []domain.SimilarityMatch{{Doc: 0, Topic: 0, Similarity: 0.875}},
			},
			expected: `{
  "docs": [
    {
      "para": "cats are great",
      "source": "blog"
    }
  ],
  "topics": [
    {
      "subtopic": "pet",
      "topic": "animal"
    }
  ],
  "matches": [
    {
      "doc": 0,
      "topic": 0,
      "similarity": 0.875
    }
  ]
}
`,
		},
		"empty-report": {
			report: domain.ExploreReport{},
			expected: `{
  "docs": [],
  "topics": [],
  "matches": []
}
`,
		},
		"records-without-fields": {
			report: domain.ExploreReport{
				Documents: []domain.Document{{Text: "cats"}},
				Topics:    []domain.Topic{{Topic: "animal", Subtopic: "pet"}},
			},
			expected: `{
  "docs": [
    {
      "para": "cats"
    }
  ],
  "topics": [
    {
      "subtopic": "pet",
      "topic": "animal"
    }
  ],
  "matches": []
}
`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, fsys.MkdirAll("/out", 0o755))

			err := NewJSONWriter(fsys).Write(context.Background(), "/out/docexplore.json", tt.report)
			require.NoError(t, err)

			data, err := afero.ReadFile(fsys, "/out/docexplore.json")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))

			leftovers, err := afero.Glob(fsys, "/out/*.tmp")
			require.NoError(t, err)
			assert.Empty(t, leftovers)
		})
	}
}

func TestJSONWriter_Write_ReplacesExistingReport(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "report.json", []byte("stale"), 0o644))

	err := NewJSONWriter(fsys).Write(context.Background(), "report.json", domain.ExploreReport{})
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "report.json")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestJSONWriter_Write_Error(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := NewJSONWriter(fsys).Write(context.Background(), "/out/docexplore.json", domain.ExploreReport{})
	assert.ErrorContains(t, err, "write report")
}

func TestInitJSONWriter_Initialize(t *testing.T) {
	_, err := InitJSONWriter{}.Initialize(context.Background())
	require.NoError(t, err)

	writer, err := depend.Resolve[domain.ReportWriter]()
	require.NoError(t, err)
	assert.IsType(t, JSONWriter{}, writer)
}

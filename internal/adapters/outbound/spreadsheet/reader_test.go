package spreadsheet

import (
	"context"
	"testing"

	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sheet is a list of rows, the first one being the header.
type sheet [][]any

// writeWorkbook builds an xlsx file holding the given sheets.
func writeWorkbook(t *testing.T, fsys afero.Fs, path string, sheets map[string]sheet) {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close() //nolint:errcheck

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, wb.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := wb.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, wb.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fsys, path, buf.Bytes(), 0o644))
}

func validSheets() map[string]sheet {
	return map[string]sheet{
		"docs": {
			{"para", "source"},
			{"cats are great", "blog"},
			{nil, nil},
			{"stock market rises", "news"},
		},
		"topics": {
			{"topic", "subtopic"},
			{"animal", "pet"},
			{"finance", "market"},
		},
	}
}

func TestReader_Load_Workbook(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeWorkbook(t, fsys, "/in/docexplore.xlsx", validSheets())

	got, err := NewReader(fsys, DefaultLayout()).Load(context.Background(), "/in/docexplore.xlsx")
	require.NoError(t, err)

	assert.Equal(t, []domain.Document{
		{Text: "cats are great", Fields: map[string]string{"para": "cats are great", "source": "blog"}},
		{Text: "stock market rises", Fields: map[string]string{"para": "stock market rises", "source": "news"}},
	}, got.Documents)
	assert.Equal(t, []string{"animal: pet", "finance: market"}, got.TopicLabels())
}

func TestReader_Load_WorkbookShapeErrors(t *testing.T) {
	tests := map[string]struct {
		sheets   map[string]sheet
		wantKind string
		wantRow  int
	}{
		"missing-topics-sheet": {
			sheets:   map[string]sheet{"docs": validSheets()["docs"]},
			wantKind: "topics",
		},
		"missing-text-column": {
			sheets: map[string]sheet{
				"docs":   {{"paragraph"}, {"cats are great"}},
				"topics": validSheets()["topics"],
			},
			wantKind: "docs",
		},
		"missing-subtopic-column": {
			sheets: map[string]sheet{
				"docs":   validSheets()["docs"],
				"topics": {{"topic"}, {"animal"}},
			},
			wantKind: "topics",
		},
		"empty-subtopic-cell": {
			sheets: map[string]sheet{
				"docs":   validSheets()["docs"],
				"topics": {{"topic", "subtopic"}, {"animal", "pet"}, {"finance", ""}},
			},
			wantKind: "topics",
			wantRow:  3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeWorkbook(t, fsys, "in.xlsx", tt.sheets)

			_, err := NewReader(fsys, DefaultLayout()).Load(context.Background(), "in.xlsx")

			var shapeErr *domain.InputShapeErr
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.wantKind, shapeErr.Kind)
			assert.Equal(t, tt.wantRow, shapeErr.Row)
		})
	}
}

func TestReader_Load_CustomLayout(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeWorkbook(t, fsys, "in.xlsx", map[string]sheet{
		"Paragraphs": {{"body"}, {"cats are great"}},
		"Taxonomy":   {{"area", "detail"}, {"animal", "pet"}},
	})

	got, err := NewReader(fsys, Layout{
		DocsSheet:      "Paragraphs",
		TopicsSheet:    "Taxonomy",
		TextColumn:     "body",
		TopicColumn:    "area",
		SubtopicColumn: "detail",
	}).Load(context.Background(), "in.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"cats are great"}, got.DocumentTexts())
	assert.Equal(t, []string{"animal: pet"}, got.TopicLabels())
}

const yamlInput = `
docs:
  - para: cats are great
    year: 2024
  - para: ""
  - para: stock market rises
topics:
  - topic: animal
    subtopic: pet
  - topic: finance
    subtopic: market
`

func TestReader_Load_YAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "in.yaml", []byte(yamlInput), 0o644))

	got, err := NewReader(fsys, DefaultLayout()).Load(context.Background(), "in.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"cats are great", "stock market rises"}, got.DocumentTexts())
	assert.Equal(t, "2024", got.Documents[0].Fields["year"])
	assert.Equal(t, []string{"animal: pet", "finance: market"}, got.TopicLabels())
}

func TestReader_Load_KeepsSurroundingWhitespace(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeWorkbook(t, fsys, "/in/docexplore.xlsx", map[string]sheet{
		"docs":   {{"para"}, {"  cats are great"}, {"cats are great "}},
		"topics": {{"topic", "subtopic"}, {" animal", "pet"}},
	})

	got, err := NewReader(fsys, DefaultLayout()).Load(context.Background(), "/in/docexplore.xlsx")
	require.NoError(t, err)

	assert.Equal(t, []string{"  cats are great", "cats are great "}, got.DocumentTexts())
	assert.Equal(t, []string{" animal: pet"}, got.TopicLabels())
}

func TestReader_Load_Errors(t *testing.T) {
	tests := map[string]struct {
		path      string
		content   string
		assertErr func(t *testing.T, err error)
	}{
		"missing-file": {
			path: "absent.xlsx",
			assertErr: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "open input")
			},
		},
		"unsupported-extension": {
			path:    "in.csv",
			content: "para\ncats",
			assertErr: func(t *testing.T, err error) {
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
			},
		},
		"yaml-missing-topics": {
			path:    "in.yml",
			content: "docs:\n  - para: cats\n",
			assertErr: func(t *testing.T, err error) {
				var shapeErr *domain.InputShapeErr
				require.ErrorAs(t, err, &shapeErr)
				assert.Equal(t, "topics", shapeErr.Kind)
			},
		},
		"yaml-missing-subtopic": {
			path:    "in.yml",
			content: "docs:\n  - para: cats\ntopics:\n  - topic: animal\n",
			assertErr: func(t *testing.T, err error) {
				var shapeErr *domain.InputShapeErr
				require.ErrorAs(t, err, &shapeErr)
				assert.Equal(t, 1, shapeErr.Row)
			},
		},
		"not-a-workbook": {
			path:    "in.xlsx",
			content: "plain text",
			assertErr: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "open workbook")
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			if tt.content != "" {
				require.NoError(t, afero.WriteFile(fsys, tt.path, []byte(tt.content), 0o644))
			}

			_, err := NewReader(fsys, DefaultLayout()).Load(context.Background(), tt.path)
			require.Error(t, err)
			tt.assertErr(t, err)
		})
	}
}

func TestInitReader_Initialize(t *testing.T) {
	i := InitReader{
		DocsSheet:      "docs",
		TopicsSheet:    "topics",
		TextColumn:     "para",
		TopicColumn:    "topic",
		SubtopicColumn: "subtopic",
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	source, err := depend.Resolve[domain.DocumentSource]()
	require.NoError(t, err)
	require.IsType(t, Reader{}, source)
	assert.Equal(t, DefaultLayout(), source.(Reader).layout)
}

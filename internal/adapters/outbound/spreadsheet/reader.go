// Package spreadsheet loads documents and topics from an .xlsx workbook or
// from an equivalent YAML file.
package spreadsheet

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/docexplore/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"
)

// Layout names the sheets and columns holding documents and topics.
type Layout struct {
	DocsSheet      string
	TopicsSheet    string
	TextColumn     string
	TopicColumn    string
	SubtopicColumn string
}

// DefaultLayout returns the layout of a docexplore workbook.
func DefaultLayout() Layout {
	return Layout{
		DocsSheet:      "docs",
		TopicsSheet:    "topics",
		TextColumn:     "para",
		TopicColumn:    "topic",
		SubtopicColumn: "subtopic",
	}
}

// record is one non-empty row keyed by column name, with its 1-based row number.
type record struct {
	row    int
	fields map[string]string
}

// Reader implements domain.DocumentSource.
type Reader struct {
	fs     afero.Fs
	layout Layout
}

// NewReader creates a new Reader.
func NewReader(fsys afero.Fs, layout Layout) Reader {
	return Reader{
		fs:     fsys,
		layout: layout,
	}
}

// Load implements domain.DocumentSource. The format is chosen by file extension.
func (r Reader) Load(ctx context.Context, path string) (domain.ExploreInput, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("path", path),
	))
	defer span.End()

	f, err := r.fs.Open(path)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ExploreInput{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var docs, topics []record
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		docs, topics, err = r.readWorkbook(f)
	case ".yaml", ".yml":
		docs, topics, err = r.readYAML(f)
	default:
		err = domain.NewValidationErr(fmt.Sprintf("unsupported input format %q", ext))
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ExploreInput{}, err
	}

	input, err := r.toInput(docs, topics)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ExploreInput{}, err
	}

	span.SetAttributes(
		attribute.Int("docs", len(input.Documents)),
		attribute.Int("topics", len(input.Topics)),
	)
	return input, nil
}

func (r Reader) toInput(docs, topics []record) (domain.ExploreInput, error) {
	input := domain.ExploreInput{
		Documents: make([]domain.Document, 0, len(docs)),
		Topics:    make([]domain.Topic, 0, len(topics)),
	}

	for _, rec := range docs {
		text, err := required(r.layout.DocsSheet, rec, r.layout.TextColumn)
		if err != nil {
			return domain.ExploreInput{}, err
		}
		input.Documents = append(input.Documents, domain.Document{Text: text, Fields: rec.fields})
	}

	for _, rec := range topics {
		topic, err := required(r.layout.TopicsSheet, rec, r.layout.TopicColumn)
		if err != nil {
			return domain.ExploreInput{}, err
		}
		subtopic, err := required(r.layout.TopicsSheet, rec, r.layout.SubtopicColumn)
		if err != nil {
			return domain.ExploreInput{}, err
		}
		input.Topics = append(input.Topics, domain.Topic{Topic: topic, Subtopic: subtopic, Fields: rec.fields})
	}

	return input, nil
}

func required(kind string, rec record, column string) (string, error) {
	value, ok := rec.fields[column]
	if !ok {
		return "", domain.NewInputShapeErr(kind, rec.row, fmt.Sprintf("missing column %q", column))
	}
	// the raw value is embedded and keyed, whitespace only counts for emptiness
	if strings.TrimSpace(value) == "" {
		return "", domain.NewInputShapeErr(kind, rec.row, fmt.Sprintf("column %q is empty", column))
	}
	return value, nil
}

// readWorkbook reads both sheets of an xlsx workbook. The first row of each
// sheet is the header.
func (r Reader) readWorkbook(src io.Reader) ([]record, []record, error) {
	wb, err := excelize.OpenReader(src)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close() //nolint:errcheck

	docs, err := readSheet(wb, r.layout.DocsSheet, r.layout.TextColumn)
	if err != nil {
		return nil, nil, err
	}
	topics, err := readSheet(wb, r.layout.TopicsSheet, r.layout.TopicColumn, r.layout.SubtopicColumn)
	if err != nil {
		return nil, nil, err
	}
	return docs, topics, nil
}

func readSheet(wb *excelize.File, sheet string, columns ...string) ([]record, error) {
	idx, err := wb.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, domain.NewInputShapeErr(sheet, 0, "missing sheet")
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, domain.NewInputShapeErr(sheet, 0, "missing header row")
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}
	if err := checkColumns(sheet, header, columns); err != nil {
		return nil, err
	}

	var records []record
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		fields := make(map[string]string, len(header))
		for col, name := range header {
			if name == "" {
				continue
			}
			if col < len(row) {
				fields[name] = row[col]
			} else {
				fields[name] = ""
			}
		}
		// header is sheet row 1
		records = append(records, record{row: i + 2, fields: fields})
	}
	return records, nil
}

// yamlWorkbook mirrors the workbook as two lists of records.
type yamlWorkbook map[string][]map[string]any

func (r Reader) readYAML(src io.Reader) ([]record, []record, error) {
	var wb yamlWorkbook
	if err := yaml.NewDecoder(src).Decode(&wb); err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("decode yaml input: %w", err)
	}

	docs, err := yamlRecords(wb, r.layout.DocsSheet)
	if err != nil {
		return nil, nil, err
	}
	topics, err := yamlRecords(wb, r.layout.TopicsSheet)
	if err != nil {
		return nil, nil, err
	}
	return docs, topics, nil
}

func yamlRecords(wb yamlWorkbook, sheet string) ([]record, error) {
	items, ok := wb[sheet]
	if !ok {
		return nil, domain.NewInputShapeErr(sheet, 0, "missing sheet")
	}

	var records []record
	for i, item := range items {
		fields := make(map[string]string, len(item))
		values := make([]string, 0, len(item))
		for name, value := range item {
			s := ""
			if value != nil {
				s = fmt.Sprint(value)
			}
			fields[name] = s
			values = append(values, s)
		}
		if blank(values) {
			continue
		}
		records = append(records, record{row: i + 1, fields: fields})
	}
	return records, nil
}

func checkColumns(sheet string, header []string, columns []string) error {
	for _, column := range columns {
		found := false
		for _, name := range header {
			if name == column {
				found = true
				break
			}
		}
		if !found {
			return domain.NewInputShapeErr(sheet, 0, fmt.Sprintf("missing column %q", column))
		}
	}
	return nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// InitReader initializes the spreadsheet Reader and registers it as the domain.DocumentSource.
type InitReader struct {
	DocsSheet      string `config:"DOCS_SHEET" default:"docs"`
	TopicsSheet    string `config:"TOPICS_SHEET" default:"topics"`
	TextColumn     string `config:"DOCS_TEXT_COLUMN" default:"para"`
	TopicColumn    string `config:"TOPICS_TOPIC_COLUMN" default:"topic"`
	SubtopicColumn string `config:"TOPICS_SUBTOPIC_COLUMN" default:"subtopic"`
}

// Initialize registers the Reader in the dependency container.
func (i InitReader) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.DocumentSource](NewReader(afero.NewOsFs(), Layout{
		DocsSheet:      i.DocsSheet,
		TopicsSheet:    i.TopicsSheet,
		TextColumn:     i.TextColumn,
		TopicColumn:    i.TopicColumn,
		SubtopicColumn: i.SubtopicColumn,
	}))
	return ctx, nil
}

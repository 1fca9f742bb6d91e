// Package report writes explore reports.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/docexplore/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const filePermissions = 0o644

type jsonMatch struct {
	Doc        int     `json:"doc"`
	Topic      int     `json:"topic"`
	Similarity float64 `json:"similarity"`
}

type jsonReport struct {
	Docs    []map[string]string `json:"docs"`
	Topics  []map[string]string `json:"topics"`
	Matches []jsonMatch         `json:"matches"`
}

// JSONWriter implements domain.ReportWriter, writing the report as indented JSON.
type JSONWriter struct {
	fs afero.Fs
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(fsys afero.Fs) JSONWriter {
	return JSONWriter{fs: fsys}
}

// Write implements domain.ReportWriter. The file at path is replaced
// atomically, so a failed run never leaves a partial report behind.
func (w JSONWriter) Write(ctx context.Context, path string, report domain.ExploreReport) error {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("path", path),
		attribute.Int("matches", len(report.Matches)),
	))
	defer span.End()

	data, err := json.MarshalIndent(toJSONReport(report), "", "  ")
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("encode report: %w", err)
	}

	err = w.writeAtomic(path, append(data, '\n'))
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func (w JSONWriter) writeAtomic(path string, data []byte) error {
	tmp, err := afero.TempFile(w.fs, filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpName)
		return err
	}
	if err := w.fs.Chmod(tmpName, filePermissions); err != nil {
		_ = w.fs.Remove(tmpName)
		return err
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		_ = w.fs.Remove(tmpName)
		return err
	}
	return nil
}

func toJSONReport(report domain.ExploreReport) jsonReport {
	out := jsonReport{
		Docs:    make([]map[string]string, len(report.Documents)),
		Topics:  make([]map[string]string, len(report.Topics)),
		Matches: make([]jsonMatch, len(report.Matches)),
	}
	for i, d := range report.Documents {
		out.Docs[i] = d.Fields
		if out.Docs[i] == nil {
			out.Docs[i] = map[string]string{"para": d.Text}
		}
	}
	for i, t := range report.Topics {
		out.Topics[i] = t.Fields
		if out.Topics[i] == nil {
			out.Topics[i] = map[string]string{"topic": t.Topic, "subtopic": t.Subtopic}
		}
	}
	for i, m := range report.Matches {
		out.Matches[i] = jsonMatch{Doc: m.Doc, Topic: m.Topic, Similarity: m.Similarity}
	}
	return out
}

// InitJSONWriter initializes the JSONWriter and registers it as the domain.ReportWriter.
type InitJSONWriter struct{}

// Initialize registers the JSONWriter in the dependency container.
func (i InitJSONWriter) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ReportWriter](NewJSONWriter(afero.NewOsFs()))
	return ctx, nil
}

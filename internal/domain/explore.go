package domain

import (
	"context"
	"strings"
)

// Document is one document paragraph read from the input workbook.
type Document struct {
	// Text is the paragraph that gets embedded.
	Text string
	// Fields holds the original record, text column included.
	Fields map[string]string
}

// Topic is one entry of the topic taxonomy.
type Topic struct {
	Topic    string
	Subtopic string
	// Fields holds the original record.
	Fields map[string]string
}

// Label returns the embeddable topic text, "<topic>: <subtopic>".
func (t Topic) Label() string {
	return t.Topic + ": " + t.Subtopic
}

// ExploreInput is the document set and the topic taxonomy to match.
type ExploreInput struct {
	Documents []Document
	Topics    []Topic
}

// Validate checks that every record carries the fields required for embedding.
func (in ExploreInput) Validate() error {
	for i, d := range in.Documents {
		if strings.TrimSpace(d.Text) == "" {
			return NewInputShapeErr("docs", i+1, "text cannot be empty")
		}
	}
	for i, t := range in.Topics {
		if strings.TrimSpace(t.Topic) == "" {
			return NewInputShapeErr("topics", i+1, "topic cannot be empty")
		}
		if strings.TrimSpace(t.Subtopic) == "" {
			return NewInputShapeErr("topics", i+1, "subtopic cannot be empty")
		}
	}
	return nil
}

// DocumentTexts returns the embeddable text of every document, in order.
func (in ExploreInput) DocumentTexts() []string {
	texts := make([]string, len(in.Documents))
	for i, d := range in.Documents {
		texts[i] = d.Text
	}
	return texts
}

// TopicLabels returns the embeddable label of every topic, in order.
func (in ExploreInput) TopicLabels() []string {
	labels := make([]string, len(in.Topics))
	for i, t := range in.Topics {
		labels[i] = t.Label()
	}
	return labels
}

// ExploreReport is the outcome of one matching run.
type ExploreReport struct {
	Documents []Document
	Topics    []Topic
	Matches   []SimilarityMatch
}

// DocumentSource loads the documents and topics to match.
type DocumentSource interface {
	Load(ctx context.Context, path string) (ExploreInput, error)
}

// ReportWriter persists an explore report.
type ReportWriter interface {
	Write(ctx context.Context, path string, report ExploreReport) error
}

package modelrunner

import (
	"fmt"
	"strings"
)

// PromptFormatter decorates a text before it is sent to a given embedding model.
type PromptFormatter interface {
	// FormatDocument returns the prompt used to embed a document or topic label.
	FormatDocument(text string) string
}

// promptFormatterFactory picks the PromptFormatter of a model by its name.
type promptFormatterFactory struct{}

func (f promptFormatterFactory) Get(model string) PromptFormatter {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaPromptFormatter{}
	}
	return defaultPromptFormatter{}
}

// gemmaPromptFormatter implements PromptFormatter for the Gemma embedding model.
type gemmaPromptFormatter struct{}

func (gemmaPromptFormatter) FormatDocument(text string) string {
	return fmt.Sprintf("title: none | text: %s", text)
}

// defaultPromptFormatter sends texts unchanged.
type defaultPromptFormatter struct{}

func (defaultPromptFormatter) FormatDocument(text string) string {
	return text
}

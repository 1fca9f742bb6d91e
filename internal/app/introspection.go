package app

import (
	"context"
	"log"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs every configuration key read at startup and
// whether its default value was used. Values are not logged since they may hold secrets.
type ReportLoggerIntrospector struct {
}

// Introspect logs the configuration accesses of the report.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger, err := depend.Resolve[*log.Logger]()
	if err != nil {
		logger = log.Default()
	}

	configs := make([]introspection.ConfigAccess, len(r.Configs))
	copy(configs, r.Configs)
	sort.SliceStable(configs, func(a, b int) bool { return configs[a].Key < configs[b].Key })

	for _, c := range configs {
		source := "provided"
		if c.UsedDefault {
			source = "default"
		}
		logger.Printf("ReportLoggerIntrospector: config %s (%s)", c.Key, source)
	}
	return nil
}

package jobs

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/docexplore/internal/usecases"
)

// ExploreJob is a runnable that generates one explore report and returns.
type ExploreJob struct {
	Logger                *log.Logger                    `resolve:""`
	GenerateExploreReport usecases.GenerateExploreReport `resolve:""`
	InputPath             string                         `config:"INPUT_PATH" default:"docexplore.xlsx"`
	OutputPath            string                         `config:"OUTPUT_PATH" default:"docexplore.json"`
	Cutoff                string                         `config:"SIMILARITY_CUTOFF" default:"0.75"`
}

// Run executes the explore report use case once.
func (j ExploreJob) Run(ctx context.Context) error {
	cutoff, err := parseCutoff(j.Cutoff)
	if err != nil {
		return err
	}

	j.Logger.Printf("ExploreJob: matching %s with cutoff %g", j.InputPath, cutoff)

	report, err := j.GenerateExploreReport.Execute(ctx, usecases.ExploreParams{
		InputPath:  j.InputPath,
		OutputPath: j.OutputPath,
		Cutoff:     cutoff,
	})
	if err != nil {
		j.Logger.Printf("ExploreJob: %v", err)
		return err
	}

	j.Logger.Printf("ExploreJob: wrote %d matches for %d docs and %d topics to %s",
		len(report.Matches), len(report.Documents), len(report.Topics), j.OutputPath)
	return nil
}

func parseCutoff(raw string) (float64, error) {
	cutoff, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		return 0, domain.NewValidationErr(fmt.Sprintf("SIMILARITY_CUTOFF must be a finite number, got %q", raw))
	}
	return cutoff, nil
}

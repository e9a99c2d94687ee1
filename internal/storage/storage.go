package storage

import (
	"time"

	"github.com/google/uuid"

	"mockcheck/internal/config"
	"mockcheck/internal/domain"
)

// Storage persists and loads run reports (e.g. for the failures viewer).
type Storage interface {
	Save(output *domain.TestResultsOutput) error
	Load() (*domain.TestResultsOutput, error)
}

// Exporter writes a run report in a format meant for people, not for reloading.
type Exporter interface {
	Export(output *domain.TestResultsOutput, path string) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// BuildOutput turns a finished run into a report with a fresh run ID
func BuildOutput(baseURL string, summary *domain.RunSummary, finishedAt time.Time) *domain.TestResultsOutput {
	return &domain.TestResultsOutput{
		Meta: domain.TestResultsMeta{
			RunID:           uuid.NewString(),
			BaseURL:         baseURL,
			Total:           summary.Total(),
			Passed:          summary.Passed,
			Failed:          summary.Failed,
			Duration:        summary.Duration.String(),
			DurationSeconds: summary.Duration.Seconds(),
			Timestamp:       finishedAt.Format(time.RFC3339),
		},
		Results: summary.Results,
	}
}

package repository

import (
	"context"

	"salarydash/internal/model"
)

// RecordRepository reads the full salary table from one source.
// Implementations are read-only and contain no filtering or aggregation logic.
type RecordRepository interface {
	// LoadAll returns every record in source order.
	// Failures wrap dataset.ErrRetrieval or dataset.ErrParse.
	LoadAll(ctx context.Context) ([]model.Record, error)

	// Source names the locator for logs and metrics, with credentials redacted.
	Source() string

	// Kind is a short label for the source type (http, s3, postgres).
	Kind() string
}

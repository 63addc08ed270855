package ports

import (
	"context"

	"pulseboard/domain/survey"
)

// SampleSourcePort produces the base survey table for a session.
// Implementations must be atomic: on failure they return an error and no
// table, never a partially generated dataset.
type SampleSourcePort interface {
	// Generate produces a complete table satisfying the survey data model.
	// Deterministic given a fixed seed.
	Generate(ctx context.Context) (survey.Table, error)
}

package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"pulseboard/domain/core"
	"pulseboard/domain/survey"
	"pulseboard/internal"
	"pulseboard/internal/analysis"
)

// DashboardService owns the immutable base table and runs one full
// recomputation pass per interaction: filter once, then derive every
// aggregate from the filtered view. The base table is never mutated, so
// concurrent derivation needs no locking.
type DashboardService struct {
	table survey.Table
	log   *internal.Logger
}

// NewDashboardService creates a service over an already generated table
func NewDashboardService(table survey.Table, log *internal.Logger) *DashboardService {
	return &DashboardService{table: table, log: log}
}

// Table returns the unfiltered base table
func (s *DashboardService) Table() survey.Table {
	return s.table
}

// Filtered applies the predicate to the base table
func (s *DashboardService) Filtered(p survey.Predicate) survey.Table {
	return survey.Filter(s.table, p)
}

// Snapshot is everything one render pass needs
type Snapshot struct {
	DatasetID    core.DatasetID             `json:"dataset_id"`
	GeneratedAt  time.Time                  `json:"generated_at"`
	TotalRows    int                        `json:"total_rows"`
	FilteredRows int                        `json:"filtered_rows"`
	Summary      analysis.Summary           `json:"summary"`
	Demographics []analysis.DemographicMean `json:"demographics"`
	Correlation  analysis.CorrelationMatrix `json:"-"`
	Platforms    []analysis.PlatformUsage   `json:"platforms"`
}

// Snapshot computes the full dashboard state for one filter selection.
// The four derivations are independent pure functions of the filtered view,
// so they run concurrently within the single recomputation pass.
func (s *DashboardService) Snapshot(ctx context.Context, p survey.Predicate) (Snapshot, error) {
	start := time.Now()
	filtered := survey.Filter(s.table, p)

	snap := Snapshot{
		DatasetID:    s.table.ID(),
		GeneratedAt:  s.table.GeneratedAt(),
		TotalRows:    s.table.Len(),
		FilteredRows: filtered.Len(),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.Summary = analysis.Summarize(filtered)
		return nil
	})
	g.Go(func() error {
		snap.Demographics = analysis.GroupedUsageMean(filtered)
		return nil
	})
	g.Go(func() error {
		snap.Correlation = analysis.Correlation(filtered)
		return nil
	})
	g.Go(func() error {
		snap.Platforms = analysis.PlatformRanking(filtered)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	s.log.Debug("snapshot computed: %d/%d rows in %s", filtered.Len(), s.table.Len(), time.Since(start))
	return snap, nil
}

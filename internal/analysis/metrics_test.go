package analysis

import (
	"math"
	"testing"
	"time"

	"pulseboard/domain/core"
	"pulseboard/domain/survey"
)

func TestSummarize_MatchesRawMeans(t *testing.T) {
	table := seededTable(t, 300, 42)

	s := Summarize(table)
	if s.Respondents != 300 {
		t.Fatalf("expected 300 respondents, got %d", s.Respondents)
	}
	if s.AvgUsage == nil || s.AvgSleep == nil || s.AvgHealth == nil {
		t.Fatal("means must be present for a non-empty table")
	}

	var usage, sleep, health float64
	for _, r := range table.Rows() {
		usage += r.DailyUsageHours
		sleep += r.SleepHours
		health += float64(r.MentalHealthScore)
	}
	n := float64(table.Len())

	if math.Abs(*s.AvgUsage-usage/n) > 1e-9 {
		t.Errorf("avg usage %f, expected %f", *s.AvgUsage, usage/n)
	}
	if math.Abs(*s.AvgSleep-sleep/n) > 1e-9 {
		t.Errorf("avg sleep %f, expected %f", *s.AvgSleep, sleep/n)
	}
	if math.Abs(*s.AvgHealth-health/n) > 1e-9 {
		t.Errorf("avg health %f, expected %f", *s.AvgHealth, health/n)
	}
}

func TestSummarize_EmptyTableUsesNoDataMarkers(t *testing.T) {
	empty := survey.NewTable(core.NewDatasetID(), time.Now(), nil)

	s := Summarize(empty)
	if s.Respondents != 0 {
		t.Errorf("expected count 0, got %d", s.Respondents)
	}
	if s.AvgUsage != nil || s.AvgSleep != nil || s.AvgHealth != nil {
		t.Error("empty table means must be nil, never zero")
	}
}

func TestSummarize_FilteredToEmptyUsesNoDataMarkers(t *testing.T) {
	table := seededTable(t, 300, 42)
	empty := survey.Filter(table, survey.Predicate{survey.FieldGender: "unknown"})

	s := Summarize(empty)
	if s.Respondents != 0 || s.AvgUsage != nil {
		t.Errorf("filter-to-empty should propagate as no data, got %+v", s)
	}
}

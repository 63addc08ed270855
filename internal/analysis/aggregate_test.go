package analysis

import (
	"context"
	"math"
	"testing"

	"pulseboard/adapters/synthetic"
	"pulseboard/domain/survey"
)

func seededTable(t *testing.T, rows int, seed int64) survey.Table {
	t.Helper()
	table, err := synthetic.New(synthetic.Config{Rows: rows, Seed: seed}).Generate(context.Background())
	if err != nil {
		t.Fatalf("failed to generate fixture table: %v", err)
	}
	return table
}

func TestGroupedUsageMean_MatchesRawRecomputation(t *testing.T) {
	table := seededTable(t, 300, 42)
	filtered := survey.Filter(table, survey.Predicate{
		survey.FieldEducation: string(survey.EducationUndergraduate),
	})

	groups := GroupedUsageMean(filtered)
	if len(groups) == 0 {
		t.Fatal("expected at least one group for undergraduates")
	}

	for _, g := range groups {
		if g.Education != survey.EducationUndergraduate {
			t.Errorf("unexpected education level in grouped output: %q", g.Education)
		}

		sum, count := 0.0, 0
		for _, r := range filtered.Rows() {
			if r.Gender == g.Gender {
				sum += r.DailyUsageHours
				count++
			}
		}
		if count != g.Respondents {
			t.Errorf("group %s/%s: expected %d respondents, got %d", g.Education, g.Gender, count, g.Respondents)
		}
		want := math.Round(sum/float64(count)*100) / 100
		if math.Abs(g.AvgUsageHours-want) > 1e-6 {
			t.Errorf("group %s/%s: expected mean %.6f, got %.6f", g.Education, g.Gender, want, g.AvgUsageHours)
		}
	}
}

func TestGroupedUsageMean_DeterministicOrder(t *testing.T) {
	table := seededTable(t, 300, 42)

	a := GroupedUsageMean(table)
	b := GroupedUsageMean(table)
	if len(a) != len(b) {
		t.Fatalf("group counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("group order not deterministic at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}

	// Education varies slower than gender, both in domain declaration order.
	eduRank := map[survey.Education]int{
		survey.EducationHighSchool:    0,
		survey.EducationUndergraduate: 1,
		survey.EducationGraduate:      2,
	}
	for i := 1; i < len(a); i++ {
		if eduRank[a[i].Education] < eduRank[a[i-1].Education] {
			t.Errorf("groups out of order at index %d: %s after %s", i, a[i].Education, a[i-1].Education)
		}
	}
}

func TestGroupedUsageMean_EmptyTable(t *testing.T) {
	table := seededTable(t, 300, 42)
	empty := survey.Filter(table, survey.Predicate{survey.FieldEducation: "doctorate"})

	if groups := GroupedUsageMean(empty); len(groups) != 0 {
		t.Fatalf("expected no groups for empty table, got %d", len(groups))
	}
}

func TestPlatformRanking_FivePlatformsSortedDescending(t *testing.T) {
	table := seededTable(t, 300, 42)

	ranking := PlatformRanking(table)
	if len(ranking) != 5 {
		t.Fatalf("expected 5 platform rows, got %d", len(ranking))
	}

	seen := map[survey.Platform]bool{}
	total := 0
	for i, p := range ranking {
		if seen[p.Platform] {
			t.Errorf("duplicate platform %q in ranking", p.Platform)
		}
		seen[p.Platform] = true
		total += p.Respondents
		if i > 0 && ranking[i-1].AvgUsageHours < p.AvgUsageHours {
			t.Errorf("ranking not descending at index %d: %.1f < %.1f", i, ranking[i-1].AvgUsageHours, p.AvgUsageHours)
		}
	}
	if total != table.Len() {
		t.Errorf("platform counts should partition the table: %d vs %d", total, table.Len())
	}
}

func TestPlatformRanking_CountsMatchFilter(t *testing.T) {
	table := seededTable(t, 300, 42)

	for _, p := range PlatformRanking(table) {
		filtered := survey.Filter(table, survey.Predicate{survey.FieldPlatform: string(p.Platform)})
		if filtered.Len() != p.Respondents {
			t.Errorf("platform %s: ranking count %d, filter count %d", p.Platform, p.Respondents, filtered.Len())
		}
	}
}

package survey

import (
	"testing"
	"time"

	"pulseboard/domain/core"
)

func fixtureTable() Table {
	rows := []Respondent{
		{Gender: GenderMale, Education: EducationHighSchool, DailyUsageHours: 2.5, Platform: PlatformTikTok, SleepHours: 7.8, MentalHealthScore: 70},
		{Gender: GenderFemale, Education: EducationUndergraduate, DailyUsageHours: 6.0, Platform: PlatformInstagram, SleepHours: 6.4, MentalHealthScore: 58},
		{Gender: GenderFemale, Education: EducationUndergraduate, DailyUsageHours: 9.1, Platform: PlatformTikTok, SleepHours: 5.2, MentalHealthScore: 44},
		{Gender: GenderMale, Education: EducationGraduate, DailyUsageHours: 3.3, Platform: PlatformYouTube, SleepHours: 7.1, MentalHealthScore: 66},
		{Gender: GenderFemale, Education: EducationHighSchool, DailyUsageHours: 11.2, Platform: PlatformX, SleepHours: 4.0, MentalHealthScore: 31},
	}
	return NewTable(core.NewDatasetID(), time.Now(), rows)
}

func TestFilter_EmptyPredicateIsIdentity(t *testing.T) {
	table := fixtureTable()

	for _, p := range []Predicate{nil, {}, {FieldGender: Wildcard, FieldEducation: ""}} {
		got := Filter(table, p)
		if got.Len() != table.Len() {
			t.Errorf("predicate %v: expected %d rows, got %d", p, table.Len(), got.Len())
		}
		if got.ID() != table.ID() {
			t.Errorf("predicate %v: dataset identity changed", p)
		}
	}
}

func TestFilter_SingleFieldCountMatchesRawCount(t *testing.T) {
	table := fixtureTable()

	want := 0
	for _, r := range table.Rows() {
		if r.Education == EducationUndergraduate {
			want++
		}
	}

	got := Filter(table, Predicate{FieldEducation: string(EducationUndergraduate)})
	if got.Len() != want {
		t.Fatalf("expected %d undergraduate rows, got %d", want, got.Len())
	}
	for _, r := range got.Rows() {
		if r.Education != EducationUndergraduate {
			t.Errorf("row leaked through filter: %+v", r)
		}
	}
}

func TestFilter_PredicatesCombineWithAND(t *testing.T) {
	table := fixtureTable()

	got := Filter(table, Predicate{
		FieldEducation: string(EducationUndergraduate),
		FieldGender:    string(GenderFemale),
	})
	if got.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", got.Len())
	}

	got = Filter(table, Predicate{
		FieldEducation: string(EducationGraduate),
		FieldGender:    string(GenderFemale),
	})
	if got.Len() != 0 {
		t.Fatalf("expected 0 rows for graduate+female, got %d", got.Len())
	}
}

func TestFilter_Idempotent(t *testing.T) {
	table := fixtureTable()
	p := Predicate{FieldGender: string(GenderFemale)}

	once := Filter(table, p)
	twice := Filter(once, p)
	if once.Len() != twice.Len() {
		t.Fatalf("filter not idempotent: %d vs %d rows", once.Len(), twice.Len())
	}
}

func TestFilter_UnknownValueYieldsEmptyTable(t *testing.T) {
	table := fixtureTable()

	got := Filter(table, Predicate{FieldEducation: "doctorate"})
	if !got.IsEmpty() {
		t.Fatalf("unknown value should match nothing, got %d rows", got.Len())
	}
	// Empty view keeps the schema and identity of its source.
	if got.ID() != table.ID() {
		t.Error("empty view lost dataset identity")
	}
	if cols := got.UsageHours(); len(cols) != 0 {
		t.Errorf("expected empty usage column, got %d values", len(cols))
	}
}

func TestFilter_UnknownFieldMatchesNothing(t *testing.T) {
	table := fixtureTable()
	got := Filter(table, Predicate{Field("favorite_color"): "blue"})
	if !got.IsEmpty() {
		t.Fatalf("unknown field should match nothing, got %d rows", got.Len())
	}
}

func TestFilter_DoesNotMutateSource(t *testing.T) {
	table := fixtureTable()
	before := table.Len()

	Filter(table, Predicate{FieldGender: string(GenderMale)})
	if table.Len() != before {
		t.Fatalf("source table mutated: %d -> %d rows", before, table.Len())
	}
}

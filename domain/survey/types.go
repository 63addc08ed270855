// Package survey holds the respondent data model for the usage survey:
// the immutable base table, its categorical domains, and the filter engine
// that narrows a table for downstream aggregation.
package survey

import (
	"time"

	"pulseboard/domain/core"
)

// Gender is the respondent's reported gender
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Genders returns the gender domain in declaration order
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// Education is the respondent's education level
type Education string

const (
	EducationHighSchool    Education = "high_school"
	EducationUndergraduate Education = "undergraduate"
	EducationGraduate      Education = "graduate"
)

// EducationLevels returns the education domain in declaration order
func EducationLevels() []Education {
	return []Education{EducationHighSchool, EducationUndergraduate, EducationGraduate}
}

// Platform is the social platform the respondent uses most
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformX         Platform = "x"
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
)

// Platforms returns the platform domain in declaration order
func Platforms() []Platform {
	return []Platform{PlatformInstagram, PlatformTikTok, PlatformX, PlatformYouTube, PlatformFacebook}
}

// Respondent is one synthetic survey row. Immutable once generated.
type Respondent struct {
	Gender            Gender    `json:"gender"`
	Education         Education `json:"education_level"`
	DailyUsageHours   float64   `json:"daily_usage_hours"`
	Platform          Platform  `json:"platform"`
	SleepHours        float64   `json:"sleep_hours"`
	MentalHealthScore int       `json:"mental_health_score"`
}

// Table is a read-only view over a set of respondents. The base table is
// generated once per process; filtering produces new views that share the
// dataset identity and never mutate the source rows.
type Table struct {
	id          core.DatasetID
	generatedAt time.Time
	rows        []Respondent
}

// NewTable builds a table over the given rows
func NewTable(id core.DatasetID, generatedAt time.Time, rows []Respondent) Table {
	return Table{id: id, generatedAt: generatedAt, rows: rows}
}

// ID returns the dataset identity shared by the base table and all of its views
func (t Table) ID() core.DatasetID { return t.id }

// GeneratedAt returns when the base dataset was generated
func (t Table) GeneratedAt() time.Time { return t.generatedAt }

// Len returns the number of rows
func (t Table) Len() int { return len(t.rows) }

// IsEmpty reports whether the table has no rows
func (t Table) IsEmpty() bool { return len(t.rows) == 0 }

// Rows returns the underlying rows. Callers must treat the slice as read-only.
func (t Table) Rows() []Respondent { return t.rows }

// UsageHours extracts the daily usage column
func (t Table) UsageHours() []float64 {
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.DailyUsageHours
	}
	return out
}

// SleepHours extracts the sleep duration column
func (t Table) SleepHours() []float64 {
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.SleepHours
	}
	return out
}

// MentalHealthScores extracts the mental health column as floats
func (t Table) MentalHealthScores() []float64 {
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = float64(r.MentalHealthScore)
	}
	return out
}

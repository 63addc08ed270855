// Package analysis is the aggregation engine: grouped means, the correlation
// matrix, the platform ranking, and the summary metrics. Every function here
// is a pure function of the table it receives; results are recomputed on each
// filter change and never cached across filter states.
package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"pulseboard/domain/survey"
)

// DemographicMean is the mean daily usage for one (education, gender) group
type DemographicMean struct {
	Education     survey.Education `json:"education_level"`
	Gender        survey.Gender    `json:"gender"`
	AvgUsageHours float64          `json:"avg_usage_hours"`
	Respondents   int              `json:"respondents"`
}

// GroupedUsageMean groups by (education_level, gender) and computes the mean
// daily usage per group, rounded to 2 decimals. Groups with no rows are
// omitted. Output order is deterministic: education then gender, both in
// domain declaration order.
func GroupedUsageMean(t survey.Table) []DemographicMean {
	type key struct {
		edu    survey.Education
		gender survey.Gender
	}
	usage := make(map[key][]float64)
	for _, r := range t.Rows() {
		k := key{r.Education, r.Gender}
		usage[k] = append(usage[k], r.DailyUsageHours)
	}

	var out []DemographicMean
	for _, edu := range survey.EducationLevels() {
		for _, gender := range survey.Genders() {
			values := usage[key{edu, gender}]
			if len(values) == 0 {
				continue
			}
			mean, err := stats.Mean(values)
			if err != nil {
				continue
			}
			out = append(out, DemographicMean{
				Education:     edu,
				Gender:        gender,
				AvgUsageHours: round(mean, 2),
				Respondents:   len(values),
			})
		}
	}
	return out
}

// PlatformUsage is the usage profile of one platform
type PlatformUsage struct {
	Platform      survey.Platform `json:"platform"`
	AvgUsageHours float64         `json:"avg_usage_hours"`
	Respondents   int             `json:"respondents"`
}

// PlatformRanking groups by platform and computes mean and count of daily
// usage, rounded to 1 decimal, sorted descending by mean. Platforms with no
// rows are omitted. Ties keep platform declaration order.
func PlatformRanking(t survey.Table) []PlatformUsage {
	usage := make(map[survey.Platform][]float64)
	for _, r := range t.Rows() {
		usage[r.Platform] = append(usage[r.Platform], r.DailyUsageHours)
	}

	var out []PlatformUsage
	for _, platform := range survey.Platforms() {
		values := usage[platform]
		if len(values) == 0 {
			continue
		}
		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		out = append(out, PlatformUsage{
			Platform:      platform,
			AvgUsageHours: round(mean, 1),
			Respondents:   len(values),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgUsageHours > out[j].AvgUsageHours
	})
	return out
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

package analysis

import (
	"github.com/montanaflynn/stats"

	"pulseboard/domain/survey"
)

// Summary reduces a filtered table to the four headline metrics. Means are
// nil when there are no rows to average; a nil mean is the explicit no-data
// marker and is never reported as zero.
type Summary struct {
	Respondents int      `json:"count"`
	AvgUsage    *float64 `json:"avg_usage"`
	AvgSleep    *float64 `json:"avg_sleep"`
	AvgHealth   *float64 `json:"avg_health"`
}

// Summarize computes the summary metrics of the given table
func Summarize(t survey.Table) Summary {
	return Summary{
		Respondents: t.Len(),
		AvgUsage:    meanOrNil(t.UsageHours()),
		AvgSleep:    meanOrNil(t.SleepHours()),
		AvgHealth:   meanOrNil(t.MentalHealthScores()),
	}
}

func meanOrNil(values []float64) *float64 {
	mean, err := stats.Mean(values)
	if err != nil {
		return nil
	}
	return &mean
}

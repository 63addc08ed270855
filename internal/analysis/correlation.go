package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"pulseboard/domain/survey"
)

// Correlation matrix column order. Indexes into CorrelationMatrix.Values.
const (
	ColUsage  = "daily_usage_hours"
	ColSleep  = "sleep_hours"
	ColHealth = "mental_health_score"
)

// CorrelationMatrix is the pairwise Pearson correlation over the three
// numeric survey columns. Symmetric with a unit diagonal whenever the input
// has at least 2 rows and nonzero variance; degenerate inputs yield NaN
// entries rather than a crash.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// Correlation computes the correlation matrix of the given table
func Correlation(t survey.Table) CorrelationMatrix {
	columns := []string{ColUsage, ColSleep, ColHealth}
	series := [][]float64{t.UsageHours(), t.SleepHours(), t.MentalHealthScores()}

	values := make([][]float64, len(columns))
	for i := range values {
		values[i] = make([]float64, len(columns))
		for j := range values[i] {
			values[i][j] = math.NaN()
		}
	}

	for i := 0; i < len(columns); i++ {
		for j := i; j < len(columns); j++ {
			r := pearson(series[i], series[j])
			values[i][j] = r
			values[j][i] = r
		}
	}
	return CorrelationMatrix{Columns: columns, Values: values}
}

// At returns the coefficient for a pair of named columns, NaN if unknown
func (m CorrelationMatrix) At(colA, colB string) float64 {
	i, j := -1, -1
	for idx, c := range m.Columns {
		if c == colA {
			i = idx
		}
		if c == colB {
			j = idx
		}
	}
	if i < 0 || j < 0 {
		return math.NaN()
	}
	return m.Values[i][j]
}

// Cells returns the matrix with NaN entries mapped to nil. JSON has no NaN
// literal, so undefined cells serialize as null.
func (m CorrelationMatrix) Cells() [][]*float64 {
	cells := make([][]*float64, len(m.Values))
	for i, row := range m.Values {
		cells[i] = make([]*float64, len(row))
		for j, v := range row {
			if !math.IsNaN(v) {
				cell := v
				cells[i][j] = &cell
			}
		}
	}
	return cells
}

// pearson guards gonum's correlation against the degenerate cases the
// filtered table can produce: fewer than 2 rows or a zero-variance column.
func pearson(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return math.NaN()
	}
	r := stat.Correlation(x, y, nil)
	if math.IsInf(r, 0) {
		return math.NaN()
	}
	return r
}

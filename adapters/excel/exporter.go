// Package excel serializes a survey table into an XLSX workbook for
// download. Export is the inverse of ingestion, which this system does not
// do: the workbook is built in memory and handed to the caller, nothing is
// stored server-side.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pulseboard/domain/survey"
	"pulseboard/internal/errors"
)

const sheetName = "Respondents"

var headers = []interface{}{
	"gender",
	"education_level",
	"daily_usage_hours",
	"platform",
	"sleep_hours",
	"mental_health_score",
}

// Exporter writes survey tables as XLSX workbooks
type Exporter struct{}

// NewExporter creates an XLSX exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders the table as a single-sheet workbook: one header row, one
// row per respondent, in table order.
func (e *Exporter) Export(t survey.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "failed to name export sheet")
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, errors.Wrap(err, "failed to write header row")
	}

	for i, r := range t.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to address row %d", i+2)
		}
		row := []interface{}{
			string(r.Gender),
			string(r.Education),
			r.DailyUsageHours,
			string(r.Platform),
			r.SleepHours,
			r.MentalHealthScore,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}
	return buf.Bytes(), nil
}

// Filename suggests a download name for the exported table
func Filename(t survey.Table) string {
	return fmt.Sprintf("survey_%s.xlsx", t.ID().String())
}

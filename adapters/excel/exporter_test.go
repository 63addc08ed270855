package excel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pulseboard/adapters/synthetic"
	"pulseboard/domain/core"
	"pulseboard/domain/survey"
)

func TestExport_RoundTripsRows(t *testing.T) {
	table, err := synthetic.New(synthetic.Config{Rows: 25, Seed: 42}).Generate(context.Background())
	require.NoError(t, err)

	data, err := NewExporter().Export(table)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, table.Len()+1, "header row plus one row per respondent")

	require.Equal(t, "gender", rows[0][0])
	require.Equal(t, "mental_health_score", rows[0][5])
	require.Equal(t, string(table.Rows()[0].Gender), rows[1][0])
	require.Equal(t, string(table.Rows()[0].Platform), rows[1][3])
}

func TestExport_EmptyTableProducesHeaderOnly(t *testing.T) {
	empty := survey.NewTable(core.NewDatasetID(), time.Now(), nil)

	data, err := NewExporter().Export(empty)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

package ports

import "pulseboard/domain/survey"

// TableExporterPort serializes a table into a downloadable document.
// Nothing is written server-side; the caller owns the returned bytes.
type TableExporterPort interface {
	Export(t survey.Table) ([]byte, error)
}

package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pulseboard/app"
	"pulseboard/domain/survey"
	"pulseboard/internal/analysis"
	"pulseboard/internal/insights"
)

// predicateFromQuery reads the two selector params. Absent or "all" means no
// constraint; any other value is passed through as an exact match, where
// unknown values simply yield zero rows.
func predicateFromQuery(r *http.Request) survey.Predicate {
	p := survey.Predicate{}
	if v := r.URL.Query().Get("education"); v != "" {
		p[survey.FieldEducation] = v
	}
	if v := r.URL.Query().Get("gender"); v != "" {
		p[survey.FieldGender] = v
	}
	return p
}

func (a *App) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error("failed to encode response: %v", err)
	}
}

// correlationJSON carries the matrix with NaN entries mapped to null, since
// JSON has no NaN literal and undefined cells must stay visibly undefined.
type correlationJSON struct {
	Columns []string     `json:"columns"`
	Values  [][]*float64 `json:"values"`
}

func toCorrelationJSON(m analysis.CorrelationMatrix) correlationJSON {
	return correlationJSON{Columns: m.Columns, Values: m.Cells()}
}

func (a *App) handleDataset(w http.ResponseWriter, r *http.Request) {
	table := a.svc.Table()
	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id":   table.ID().String(),
		"generated_at": table.GeneratedAt().Format(time.RFC3339),
		"rows":         table.Len(),
		"domains": map[string]interface{}{
			"genders":          survey.Genders(),
			"education_levels": survey.EducationLevels(),
			"platforms":        survey.Platforms(),
		},
	})
}

func (a *App) handleRespondents(w http.ResponseWriter, r *http.Request) {
	filtered := a.svc.Filtered(predicateFromQuery(r))
	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":       filtered.Len(),
		"respondents": filtered.Rows(),
	})
}

func (a *App) handleMetrics(w http.ResponseWriter, r *http.Request) {
	filtered := a.svc.Filtered(predicateFromQuery(r))
	a.respondJSON(w, http.StatusOK, analysis.Summarize(filtered))
}

func (a *App) handleDemographics(w http.ResponseWriter, r *http.Request) {
	filtered := a.svc.Filtered(predicateFromQuery(r))
	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"groups": analysis.GroupedUsageMean(filtered),
	})
}

func (a *App) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	filtered := a.svc.Filtered(predicateFromQuery(r))
	a.respondJSON(w, http.StatusOK, toCorrelationJSON(analysis.Correlation(filtered)))
}

func (a *App) handlePlatforms(w http.ResponseWriter, r *http.Request) {
	filtered := a.svc.Filtered(predicateFromQuery(r))
	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"ranking": analysis.PlatformRanking(filtered),
	})
}

// snapshotResponse re-attaches the correlation matrix in its JSON-safe form
type snapshotResponse struct {
	app.Snapshot
	Correlation correlationJSON `json:"correlation"`
}

func (a *App) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := a.svc.Snapshot(r.Context(), predicateFromQuery(r))
	if err != nil {
		a.log.Error("snapshot failed: %v", err)
		http.Error(w, "failed to compute snapshot", http.StatusInternalServerError)
		return
	}
	a.respondJSON(w, http.StatusOK, snapshotResponse{
		Snapshot:    snap,
		Correlation: toCorrelationJSON(snap.Correlation),
	})
}

func (a *App) handleInsights(w http.ResponseWriter, r *http.Request) {
	snap, err := a.svc.Snapshot(r.Context(), predicateFromQuery(r))
	if err != nil {
		a.log.Error("snapshot failed: %v", err)
		http.Error(w, "failed to compute snapshot", http.StatusInternalServerError)
		return
	}
	a.respondJSON(w, http.StatusOK, map[string]string{
		"demographics": string(insights.RenderHTML(insights.Demographics(snap.Demographics))),
		"correlation":  string(insights.RenderHTML(insights.Correlation(snap.Correlation))),
		"platforms":    string(insights.RenderHTML(insights.Platforms(snap.Platforms))),
	})
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	filtered := a.svc.Filtered(predicateFromQuery(r))

	data, err := a.exporter.Export(filtered)
	if err != nil {
		a.log.Error("export failed: %v", err)
		http.Error(w, "failed to export table", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("survey_%s.xlsx", filtered.ID().String())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		a.log.Error("failed to write export: %v", err)
	}
}

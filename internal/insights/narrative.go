// Package insights turns aggregates into the short markdown narratives shown
// beside each chart. The text interpolates live values from the current
// filter state; it never fabricates numbers for empty states.
package insights

import (
	"fmt"
	"math"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"pulseboard/internal/analysis"
)

const noDataNarrative = "No respondents match the current filter."

// Demographics narrates the grouped-mean view: which group spends the most
// time, and the spread across groups.
func Demographics(groups []analysis.DemographicMean) string {
	if len(groups) == 0 {
		return noDataNarrative
	}

	top := groups[0]
	for _, g := range groups[1:] {
		if g.AvgUsageHours > top.AvgUsageHours {
			top = g
		}
	}

	var b strings.Builder
	b.WriteString("### Usage by demographics\n\n")
	b.WriteString("Average daily social-media hours compared across education level and gender.\n\n")
	fmt.Fprintf(&b, "The heaviest users are **%s %s** respondents at **%.2f h/day** (%d respondents).\n\n",
		label(string(top.Education)), label(string(top.Gender)), top.AvgUsageHours, top.Respondents)
	for _, g := range groups {
		fmt.Fprintf(&b, "- %s / %s: %.2f h/day (%d respondents)\n",
			label(string(g.Education)), label(string(g.Gender)), g.AvgUsageHours, g.Respondents)
	}
	return b.String()
}

// Correlation narrates the heatmap view, classifying each pairwise
// coefficient by direction and strength.
func Correlation(m analysis.CorrelationMatrix) string {
	usageSleep := m.At(analysis.ColUsage, analysis.ColSleep)
	usageHealth := m.At(analysis.ColUsage, analysis.ColHealth)
	sleepHealth := m.At(analysis.ColSleep, analysis.ColHealth)

	if math.IsNaN(usageSleep) && math.IsNaN(usageHealth) && math.IsNaN(sleepHealth) {
		return noDataNarrative
	}

	var b strings.Builder
	b.WriteString("### Usage, sleep, and mental health\n\n")
	b.WriteString("Pairwise Pearson correlations over the filtered respondents.\n\n")
	b.WriteString(coefficientLine("daily usage", "mental health", usageHealth))
	b.WriteString(coefficientLine("daily usage", "sleep duration", usageSleep))
	b.WriteString(coefficientLine("sleep duration", "mental health", sleepHealth))
	return b.String()
}

// Platforms narrates the ranking view: the most time-consuming platform first.
func Platforms(ranking []analysis.PlatformUsage) string {
	if len(ranking) == 0 {
		return noDataNarrative
	}

	var b strings.Builder
	b.WriteString("### Time spent per platform\n\n")
	fmt.Fprintf(&b, "**%s** tops the ranking at **%.1f h/day** across %d respondents.\n\n",
		label(string(ranking[0].Platform)), ranking[0].AvgUsageHours, ranking[0].Respondents)
	for i, p := range ranking {
		fmt.Fprintf(&b, "%d. %s: %.1f h/day (%d respondents)\n",
			i+1, label(string(p.Platform)), p.AvgUsageHours, p.Respondents)
	}
	return b.String()
}

// RenderHTML converts a markdown narrative to HTML
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}

func coefficientLine(a, b string, r float64) string {
	if math.IsNaN(r) {
		return fmt.Sprintf("- %s vs %s: undefined for the current selection\n", a, b)
	}
	return fmt.Sprintf("- %s vs %s: **%.2f**, a %s %s association\n", a, b, r, strength(r), direction(r))
}

func direction(r float64) string {
	if r < 0 {
		return "negative"
	}
	return "positive"
}

func strength(r float64) string {
	switch abs := math.Abs(r); {
	case abs >= 0.7:
		return "strong"
	case abs >= 0.4:
		return "moderate"
	case abs >= 0.2:
		return "weak"
	default:
		return "negligible"
	}
}

// label turns a snake_case domain value into display casing
func label(v string) string {
	parts := strings.Split(v, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

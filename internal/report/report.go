// Package report renders survey aggregates as plain-text tables for the
// surveyctl inspection tool.
package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/surveydash/survey-server/internal/service"
)

// SummaryTable renders the executive summary and category averages.
func SummaryTable(summary service.SurveySummary) string {
	t := table.NewWriter()
	t.SetTitle("Executive Summary")
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Total responses", summary.TotalResponses},
		{"Highest rated", fmt.Sprintf("%s (%d%%)", summary.HighestRated.Question, summary.HighestRated.Percentage)},
		{"Lowest rated", fmt.Sprintf("%s (%d%% Disagree)", summary.LowestRated.Question, summary.LowestRated.Percentage)},
		{"Overall satisfaction", fmt.Sprintf("%d%%", summary.OverallSatisfaction)},
	})
	t.AppendSeparator()
	for _, label := range service.LikertScale {
		t.AppendRow(table.Row{label, fmt.Sprintf("%d%%", summary.CategoryAverages[label])})
	}
	t.SetStyle(table.StyleLight)
	return t.Render()
}

// DistributionTable renders one question's response breakdown.
func DistributionTable(distribution service.QuestionDistribution) string {
	t := table.NewWriter()
	t.SetTitle(distribution.Question)
	t.AppendHeader(table.Row{"Response", "Count", "Percent"})
	for _, response := range distribution.Responses {
		t.AppendRow(table.Row{response.Label, response.Count, fmt.Sprintf("%d%%", response.Percentage)})
	}
	t.SetStyle(table.StyleLight)
	return t.Render()
}

// Render produces the full report for one dataset.
func Render(summary service.SurveySummary, distributions []service.QuestionDistribution) string {
	sections := make([]string, 0, len(distributions)+1)
	sections = append(sections, SummaryTable(summary))
	for _, distribution := range distributions {
		sections = append(sections, DistributionTable(distribution))
	}
	return strings.Join(sections, "\n\n")
}

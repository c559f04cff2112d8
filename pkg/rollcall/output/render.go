package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"rollcall/pkg/rollcall/match"
	"rollcall/pkg/rollcall/roster"
)

// RenderResults renders the per-row reconciliation results as a table.
func RenderResults(report *match.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Sheet Name", "Sheet ID", "Matched", "Matched Name", "Type", "Conf", "Valid"})

	for _, r := range report.Results {
		tw.AppendRow(table.Row{
			r.RowNumber,
			r.SheetName,
			r.SheetID,
			r.MatchedID,
			r.MatchedName,
			string(r.Type),
			fmt.Sprintf("%.3f", r.Confidence),
			r.Valid,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	return tw.Render()
}

// RenderSummary renders the aggregate counts and reconciliation sets.
func RenderSummary(report *match.Report) string {
	var b strings.Builder
	s := report.Summary

	fmt.Fprintf(&b, "Total rows:              %d\n", s.TotalRows)
	fmt.Fprintf(&b, "Valid matches (>=0.90):  %d\n", s.ValidMatches)
	fmt.Fprintf(&b, "High confidence (>=0.80): %d\n", s.HighConfidence)
	fmt.Fprintf(&b, "ID matches:              %d\n", s.IDMatches)
	fmt.Fprintf(&b, "Name matches:            %d\n", s.NameMatches)
	fmt.Fprintf(&b, "No matches:              %d\n", s.NoMatches)
	fmt.Fprintf(&b, "Overall match:           %.1f%% (%d/%d)\n",
		s.MatchPercent, len(report.MatchedIDs), len(report.MatchedIDs)+len(report.UnmatchedRoster))

	if len(report.ExtraNames) > 0 {
		fmt.Fprintf(&b, "Extra names on sheet:    %s\n", strings.Join(report.ExtraNames, ", "))
	}
	if len(report.UnmatchedRoster) > 0 {
		fmt.Fprintf(&b, "Not on sheet:            %s\n", strings.Join(report.UnmatchedRoster, ", "))
	}
	return b.String()
}

// RenderRoster renders identity records as a table.
func RenderRoster(identities []roster.Identity) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Name", "Attributes"})

	for _, identity := range identities {
		tw.AppendRow(table.Row{identity.ID, identity.Name, formatAttrs(identity.Attrs)})
	}
	return tw.Render()
}

func formatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(attrs))
	for k, v := range attrs {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ogurasousui/codex-workforce-synth/internal/adapters/chart"
	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
)

var styles = struct {
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
}{
	Heading: lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
}

func writeReport(w io.Writer, in workforce.ReportInput, r *workforce.Report, showChart bool) {
	ds := r.Dataset

	fmt.Fprintln(w, styles.Heading.Render("DATASET"))
	fmt.Fprintf(w, "  records       %d\n", ds.Len())
	fmt.Fprintf(w, "  seed          %d\n", in.Seed)
	fmt.Fprintf(w, "  generated on  %s\n", workforce.FormatDate(ds.GeneratedOn))
	fmt.Fprintf(w, "  as of         %s\n\n", workforce.FormatDate(ds.AsOf()))

	fmt.Fprintln(w, styles.Heading.Render("BY GENDER"))
	for _, g := range workforce.Genders {
		n, ok := r.CountByGender[g]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-8s %6d  mean %s\n", g, n, r.MeanSalaryByGender[g])
	}
	if r.SalaryGap != nil {
		fmt.Fprintf(w, "  gap (male - female)  %s\n\n", *r.SalaryGap)
	} else {
		fmt.Fprintf(w, "  %s\n\n", styles.Muted.Render("gap unavailable: one gender has no records"))
	}

	fmt.Fprintln(w, styles.Heading.Render("BY AGE BRACKET"))
	for _, item := range r.AgeBrackets {
		fmt.Fprintf(w, "  %-12s %6d  mean %s\n", item.Bracket, item.Count, item.Mean)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, styles.Heading.Render("BY GENDER AND TENURE"))
	for _, item := range r.GenderTenure {
		fmt.Fprintf(w, "  %-8s %-5s %6d  mean %s\n", item.Gender, item.Tenure, item.Count, item.Mean)
	}
	fmt.Fprintln(w)

	if showChart {
		fmt.Fprintln(w, chart.Report(r, chart.DefaultWidth))
	}
}

func writeRunResult(w io.Writer, res *workforce.RunResult) {
	if len(res.Exported) > 0 {
		fmt.Fprintf(w, "exported: %s\n", strings.Join(res.Exported, ", "))
	}
	if res.QueryResult != nil {
		fmt.Fprintf(w, "persisted %d rows; %s\n", res.PersistedRows,
			styles.Success.Render("SQL aggregation matches in-memory aggregation"))
	}
}

func writeStoredSummary(w io.Writer, s *workforce.StoredSummary) {
	fmt.Fprintln(w, styles.Heading.Render("STORED TABLE"))
	fmt.Fprintf(w, "  rows          %d\n\n", s.Rows)

	fmt.Fprintln(w, styles.Heading.Render("BY GENDER AND TENURE (SQL)"))
	for _, item := range s.GenderTenure {
		fmt.Fprintf(w, "  %-8s %-5s %6d  mean %s\n", item.Gender, item.Tenure, item.Count, item.Mean)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, chart.Bars("Mean salary by gender and tenure", chart.GenderTenureBars(s.GenderTenure), chart.DefaultWidth))
}

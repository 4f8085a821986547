// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/timeline-engine/internal/dates"
	"github.com/pdiddy/timeline-engine/internal/media"
	"github.com/pdiddy/timeline-engine/pkg/types"
)

// maxListed bounds issue and warning listings in human output.
const maxListed = 5

// Report summarizes a row set without converting it: counts, date
// coverage, media usage, and per-row issues a conversion would trip on.
type Report struct {
	Rows       int            `json:"rows"`
	Columns    int            `json:"columns"`
	TypeCounts map[string]int `json:"type_counts"`

	// YearMin/YearMax span the parseable start dates. HasDates is false
	// when no row carried one.
	HasDates bool `json:"has_dates"`
	YearMin  int  `json:"year_min,omitempty"`
	YearMax  int  `json:"year_max,omitempty"`

	// MediaRows counts rows with a Media URL; MediaKinds tallies them by
	// detected kind display name.
	MediaRows  int            `json:"media_rows"`
	MediaKinds map[string]int `json:"media_kinds"`

	Issues []string `json:"issues"`
}

// Analyze inspects a row set and reports insights. It never fails: rows
// a conversion would reject show up as issues instead.
func Analyze(header []string, rows []types.Row) Report {
	report := Report{
		Rows:       len(rows),
		Columns:    len(header),
		TypeCounts: map[string]int{},
		MediaKinds: map[string]int{},
	}

	for i, row := range rows {
		rowNum := i + 2

		typeVal := row.Get(types.ColType)
		typ, typeOK := types.ParseRowType(typeVal)
		key := string(typ)
		if !typeOK {
			key = "invalid"
			if typeVal == "" {
				key = "empty"
			}
		}
		report.TypeCounts[key]++

		if start := row.Get(types.ColStartDate); start != "" {
			if d, err := dates.Parse(start, ""); err == nil && d != nil {
				if !report.HasDates || d.Year < report.YearMin {
					report.YearMin = d.Year
				}
				if !report.HasDates || d.Year > report.YearMax {
					report.YearMax = d.Year
				}
				report.HasDates = true
			}
		}

		if url := row.Get(types.ColMediaURL); url != "" {
			report.MediaRows++
			report.MediaKinds[media.Detect(url).Name]++
		}

		if row.Get(types.ColHeadline) == "" {
			report.Issues = append(report.Issues, fmt.Sprintf("Row %d: missing headline", rowNum))
		}
		if (typ == types.RowEvent || typ == types.RowEra) && row.Get(types.ColStartDate) == "" {
			report.Issues = append(report.Issues, fmt.Sprintf("Row %d: missing start date", rowNum))
		}
		if typ == types.RowEra && row.Get(types.ColEndDate) == "" {
			report.Issues = append(report.Issues, fmt.Sprintf("Row %d: era missing end date", rowNum))
		}
	}

	return report
}

// Format writes the report as a human-readable summary to w.
func (r Report) Format(w io.Writer) {
	fmt.Fprintf(w, "Rows:    %d\n", r.Rows)
	fmt.Fprintf(w, "Columns: %d\n", r.Columns)

	fmt.Fprintln(w, "Row types:")
	for _, name := range sortedKeys(r.TypeCounts) {
		fmt.Fprintf(w, "  %-8s %d\n", name, r.TypeCounts[name])
	}

	if r.HasDates {
		fmt.Fprintf(w, "Date range: %d - %d (%d years)\n", r.YearMin, r.YearMax, r.YearMax-r.YearMin)
	}

	if r.Rows > 0 {
		fmt.Fprintf(w, "Rows with media: %d/%d (%.1f%%)\n",
			r.MediaRows, r.Rows, float64(r.MediaRows)/float64(r.Rows)*100)
	}
	for _, name := range sortedKeys(r.MediaKinds) {
		fmt.Fprintf(w, "  %-20s %d\n", name, r.MediaKinds[name])
	}

	if len(r.Issues) == 0 {
		fmt.Fprintln(w, "No obvious issues detected.")
		return
	}
	fmt.Fprintf(w, "Potential issues (%d):\n", len(r.Issues))
	for i, issue := range r.Issues {
		if i == maxListed {
			fmt.Fprintf(w, "  ... and %d more issues\n", len(r.Issues)-maxListed)
			break
		}
		fmt.Fprintf(w, "  %s\n", issue)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

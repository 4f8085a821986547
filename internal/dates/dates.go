// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dates parses the heterogeneous date and time strings timeline
// authors put in spreadsheets into partial Timeline.js dates.
//
// Parsing is an ordered pattern list with first-match-wins semantics:
// the US slash form is tried before the EU form, so an ambiguous
// "06/07/2023" always resolves the same way. Inputs no pattern matches
// fall back to the first four-digit run anywhere in the string, treated
// as a year-only date, so a row with any recognizable year still
// produces usable output.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/timeline-engine/pkg/types"
)

// ParseError reports a date string no pattern could resolve.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse date: %q", e.Input)
}

// datePattern pairs a time layout with the fields it actually resolves.
// A bare year carries no month; a year-month carries no day. Order is
// semantically load-bearing.
type datePattern struct {
	layout   string
	hasMonth bool
	hasDay   bool
}

var datePatterns = []datePattern{
	{"2006-01-02", true, true},      // 2023-06-15
	{"2006-01", true, false},        // 2023-06
	{"2006", false, false},          // 2023
	{"01/02/2006", true, true},      // 06/15/2023 (US)
	{"02/01/2006", true, true},      // 15/06/2023 (EU)
	{"January 2, 2006", true, true}, // June 15, 2023
	{"2 January 2006", true, true},  // 15 June 2023
	{"Jan 2, 2006", true, true},     // Jun 15, 2023
	{"2 Jan 2006", true, true},      // 15 Jun 2023
}

// timeLayouts are tried in order against an upper-cased time string.
// Non-padded references accept padded values, so "02:30 PM" and
// "2:30 PM" both match the 12-hour layouts.
var timeLayouts = []string{
	"15:04:05",   // 14:30:45
	"15:04",      // 14:30
	"3:04:05 PM", // 02:30:45 PM
	"3:04 PM",    // 02:30 PM
}

// yearRun matches the first run of four digits anywhere in a string.
var yearRun = regexp.MustCompile(`\d{4}`)

// Parse resolves a date string, optionally combined with a time string,
// into a TimelineDate. An empty date string returns (nil, nil): absent,
// not an error. An unmatchable date string returns a *ParseError.
//
// The time string is consulted only when the date resolved structurally
// (not via the year fallback). A time string no layout matches is
// silently ignored; bad times never fail a row.
func Parse(dateStr, timeStr string) (*types.TimelineDate, error) {
	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.TrimSpace(timeStr)
	if dateStr == "" {
		return nil, nil
	}

	for _, p := range datePatterns {
		t, err := time.Parse(p.layout, dateStr)
		if err != nil {
			continue
		}
		d := &types.TimelineDate{Year: t.Year()}
		if p.hasMonth {
			m := int(t.Month())
			d.Month = &m
		}
		if p.hasDay {
			day := t.Day()
			d.Day = &day
		}
		if timeStr != "" {
			applyTime(d, timeStr)
		}
		return d, nil
	}

	// Year-only fallback: the first 4-digit run wins.
	if run := yearRun.FindString(dateStr); run != "" {
		year, err := strconv.Atoi(run)
		if err == nil {
			return &types.TimelineDate{Year: year}, nil
		}
	}

	return nil, &ParseError{Input: dateStr}
}

// applyTime sets hour and minute from the first matching time layout,
// and second only when nonzero. No match leaves d untouched.
func applyTime(d *types.TimelineDate, timeStr string) {
	upper := strings.ToUpper(timeStr)
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, upper)
		if err != nil {
			continue
		}
		h, m := t.Hour(), t.Minute()
		d.Hour = &h
		d.Minute = &m
		if s := t.Second(); s != 0 {
			d.Second = &s
		}
		return
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dates

import (
	"errors"
	"testing"

	"github.com/pdiddy/timeline-engine/pkg/types"
)

func ip(v int) *int { return &v }

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		want    *types.TimelineDate
		wantErr bool
	}{
		{
			name: "ISO full date",
			date: "2023-06-15",
			want: &types.TimelineDate{Year: 2023, Month: ip(6), Day: ip(15)},
		},
		{
			name: "ISO year-month",
			date: "2023-06",
			want: &types.TimelineDate{Year: 2023, Month: ip(6)},
		},
		{
			name: "bare year",
			date: "2023",
			want: &types.TimelineDate{Year: 2023},
		},
		{
			name: "US slash date",
			date: "06/15/2023",
			want: &types.TimelineDate{Year: 2023, Month: ip(6), Day: ip(15)},
		},
		{
			name: "EU slash date",
			date: "15/06/2023",
			want: &types.TimelineDate{Year: 2023, Month: ip(6), Day: ip(15)},
		},
		{
			name: "ambiguous slash date resolves US-first",
			date: "06/07/2023",
			want: &types.TimelineDate{Year: 2023, Month: ip(6), Day: ip(7)},
		},
		{
			name: "long month name",
			date: "June 15, 2023",
			want: &types.TimelineDate{Year: 2023, Month: ip(6), Day: ip(15)},
		},
		{
			name: "long month name day first",
			date: "15 June 2023",
			want: &types.TimelineDate{Year: 2023, Month: ip(6), Day: ip(15)},
		},
		{
			name: "abbreviated month name",
			date: "Jun 15, 2023",
			want: &types.TimelineDate{Year: 2023, Month: ip(6), Day: ip(15)},
		},
		{
			name: "abbreviated month name day first",
			date: "15 Jun 2023",
			want: &types.TimelineDate{Year: 2023, Month: ip(6), Day: ip(15)},
		},
		{
			name: "surrounding whitespace trimmed",
			date: "  1957-10-04  ",
			want: &types.TimelineDate{Year: 1957, Month: ip(10), Day: ip(4)},
		},
		{
			name: "year fallback from prose",
			date: "circa 1969",
			want: &types.TimelineDate{Year: 1969},
		},
		{
			name: "year fallback picks first run",
			date: "between 1914 and 1918",
			want: &types.TimelineDate{Year: 1914},
		},
		{
			name: "empty date is absent not error",
			date: "",
			want: nil,
		},
		{
			name:    "unparseable date fails",
			date:    "not a date",
			wantErr: true,
		},
		{
			name: "24-hour time with seconds",
			date: "2023-06-15",
			time: "14:30:45",
			want: &types.TimelineDate{
				Year: 2023, Month: ip(6), Day: ip(15),
				Hour: ip(14), Minute: ip(30), Second: ip(45),
			},
		},
		{
			name: "24-hour time zero second omitted",
			date: "2023-06-15",
			time: "14:30",
			want: &types.TimelineDate{
				Year: 2023, Month: ip(6), Day: ip(15),
				Hour: ip(14), Minute: ip(30),
			},
		},
		{
			name: "12-hour time",
			date: "2023-06-15",
			time: "02:30 PM",
			want: &types.TimelineDate{
				Year: 2023, Month: ip(6), Day: ip(15),
				Hour: ip(14), Minute: ip(30),
			},
		},
		{
			name: "12-hour time lowercase meridiem",
			date: "2023-06-15",
			time: "2:30 pm",
			want: &types.TimelineDate{
				Year: 2023, Month: ip(6), Day: ip(15),
				Hour: ip(14), Minute: ip(30),
			},
		},
		{
			name: "midnight keeps explicit hour",
			date: "2023-06-15",
			time: "00:30",
			want: &types.TimelineDate{
				Year: 2023, Month: ip(6), Day: ip(15),
				Hour: ip(0), Minute: ip(30),
			},
		},
		{
			name: "bad time silently ignored",
			date: "2023-06-15",
			time: "sometime after lunch",
			want: &types.TimelineDate{Year: 2023, Month: ip(6), Day: ip(15)},
		},
		{
			name: "fallback date ignores time",
			date: "circa 1969",
			time: "14:30",
			want: &types.TimelineDate{Year: 1969},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.date, tt.time)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.date)
				}
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("error type = %T, want *ParseError", err)
				}
				if pe.Input != tt.date {
					t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.date)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q, %q): %v", tt.date, tt.time, err)
			}
			assertDate(t, got, tt.want)
		})
	}
}

// assertDate compares two partial dates field by field so failures name
// the differing component.
func assertDate(t *testing.T, got, want *types.TimelineDate) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Fatalf("date presence = %v, want %v", got != nil, want != nil)
	}
	if got == nil {
		return
	}
	if got.Year != want.Year {
		t.Errorf("year = %d, want %d", got.Year, want.Year)
	}
	checkPart(t, "month", got.Month, want.Month)
	checkPart(t, "day", got.Day, want.Day)
	checkPart(t, "hour", got.Hour, want.Hour)
	checkPart(t, "minute", got.Minute, want.Minute)
	checkPart(t, "second", got.Second, want.Second)
}

func checkPart(t *testing.T, name string, got, want *int) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Errorf("%s presence = %v, want %v", name, got != nil, want != nil)
		return
	}
	if got != nil && *got != *want {
		t.Errorf("%s = %d, want %d", name, *got, *want)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the timeline-engine
// pipeline: the source row schema and the Timeline.js document model.
//
// Optional document fields are pointers (or omitempty strings) so that
// serialization omits what the source rows did not supply; Timeline.js
// treats a present-but-empty field differently from an absent one.
package types

import "strings"

// Scale is the display-granularity hint carried through to the output
// document. It is passed through, never computed.
type Scale string

const (
	ScaleHuman        Scale = "human"
	ScaleCosmological Scale = "cosmological"
)

// Valid reports whether s is one of the two Timeline.js scales.
func (s Scale) Valid() bool {
	return s == ScaleHuman || s == ScaleCosmological
}

// RowType identifies what a source row contributes to the document.
type RowType string

const (
	RowTitle RowType = "title"
	RowEvent RowType = "event"
	RowEra   RowType = "era"
)

// ParseRowType matches a Type column value case-insensitively. ok is
// false for blank or unrecognized values.
func ParseRowType(s string) (RowType, bool) {
	switch RowType(strings.ToLower(s)) {
	case RowTitle:
		return RowTitle, true
	case RowEvent:
		return RowEvent, true
	case RowEra:
		return RowEra, true
	}
	return "", false
}

// Column names of the source schema. A source may carry a superset;
// any column may be empty on a given row.
const (
	ColType            = "Type"
	ColHeadline        = "Headline"
	ColText            = "Text"
	ColStartDate       = "Start Date"
	ColEndDate         = "End Date"
	ColDisplayDate     = "Display Date"
	ColGroup           = "Group"
	ColMediaURL        = "Media URL"
	ColMediaCaption    = "Media Caption"
	ColMediaCredit     = "Media Credit"
	ColMediaAlt        = "Media Alt"
	ColMediaLink       = "Media Link"
	ColMediaLinkTarget = "Media Link Target"
	ColBackgroundColor = "Background Color"
	ColBackgroundImage = "Background Image"
	ColUniqueID        = "Unique ID"
	ColStartTime       = "Start Time"
	ColEndTime         = "End Time"
)

// Columns lists the full 18-column schema in canonical order. Template
// generation and analysis iterate this; conversion only requires the
// three RequiredColumns to be present in the header.
var Columns = []string{
	ColType, ColHeadline, ColText, ColStartDate, ColEndDate,
	ColDisplayDate, ColGroup, ColMediaURL, ColMediaCaption,
	ColMediaCredit, ColMediaAlt, ColMediaLink, ColMediaLinkTarget,
	ColBackgroundColor, ColBackgroundImage, ColUniqueID,
	ColStartTime, ColEndTime,
}

// RequiredColumns must appear in the header row for conversion to start.
var RequiredColumns = []string{ColType, ColHeadline, ColStartDate}

// Row maps column names to raw string values for one source row.
type Row map[string]string

// Get returns the whitespace-trimmed value of a column, or "" when the
// column is absent.
func (r Row) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// TimelineDate is a partial date. Year is required once a date exists at
// all; the remaining fields are present only when the source string
// resolved them. Pointer fields distinguish "midnight" from "no time".
type TimelineDate struct {
	Year   int  `json:"year" yaml:"year"`
	Month  *int `json:"month,omitempty" yaml:"month,omitempty"`
	Day    *int `json:"day,omitempty" yaml:"day,omitempty"`
	Hour   *int `json:"hour,omitempty" yaml:"hour,omitempty"`
	Minute *int `json:"minute,omitempty" yaml:"minute,omitempty"`
	Second *int `json:"second,omitempty" yaml:"second,omitempty"`
}

// SlideText is the headline/body pair shared by titles, events, and eras.
type SlideText struct {
	Headline string `json:"headline" yaml:"headline"`
	Text     string `json:"text" yaml:"text"`
}

// Media describes an attached media resource. Present on a slide only
// when the source row supplied a Media URL.
type Media struct {
	URL        string `json:"url" yaml:"url"`
	Caption    string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Credit     string `json:"credit,omitempty" yaml:"credit,omitempty"`
	Alt        string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Link       string `json:"link,omitempty" yaml:"link,omitempty"`
	LinkTarget string `json:"link_target,omitempty" yaml:"link_target,omitempty"`
}

// Background describes a slide background. At least one field is set
// whenever the object is present.
type Background struct {
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

// TitleSlide is the optional, date-less document header. At most one per
// document; a later title row replaces an earlier one.
type TitleSlide struct {
	Text       SlideText   `json:"text" yaml:"text"`
	Media      *Media      `json:"media,omitempty" yaml:"media,omitempty"`
	Background *Background `json:"background,omitempty" yaml:"background,omitempty"`
	UniqueID   string      `json:"unique_id,omitempty" yaml:"unique_id,omitempty"`
}

// EventRecord is a dated slide on the main sequence.
type EventRecord struct {
	Text        SlideText     `json:"text" yaml:"text"`
	StartDate   *TimelineDate `json:"start_date" yaml:"start_date"`
	EndDate     *TimelineDate `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	DisplayDate string        `json:"display_date,omitempty" yaml:"display_date,omitempty"`
	Group       string        `json:"group,omitempty" yaml:"group,omitempty"`
	UniqueID    string        `json:"unique_id,omitempty" yaml:"unique_id,omitempty"`
	Media       *Media        `json:"media,omitempty" yaml:"media,omitempty"`
	Background  *Background   `json:"background,omitempty" yaml:"background,omitempty"`
}

// EraRecord is a labeled background span. Both dates are required; eras
// carry no media or background.
type EraRecord struct {
	Text      SlideText     `json:"text" yaml:"text"`
	StartDate *TimelineDate `json:"start_date" yaml:"start_date"`
	EndDate   *TimelineDate `json:"end_date" yaml:"end_date"`
	UniqueID  string        `json:"unique_id,omitempty" yaml:"unique_id,omitempty"`
}

// TimelineDocument is the completed output. Events and eras preserve
// source row order; there is no implicit sorting by date. A document is
// valid only if it has a title or at least one event.
type TimelineDocument struct {
	Scale  Scale         `json:"scale" yaml:"scale"`
	Title  *TitleSlide   `json:"title,omitempty" yaml:"title,omitempty"`
	Events []EventRecord `json:"events" yaml:"events"`
	Eras   []EraRecord   `json:"eras" yaml:"eras"`
}

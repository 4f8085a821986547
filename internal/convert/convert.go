// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns validated tabular rows into a Timeline.js
// document. The pipeline is header check, per-row type dispatch, and a
// final completeness check, with two failure policies: fail-fast
// (default) aborts on the first bad row, strict mode records every bad
// row, skips it, and fails at the end with the accumulated list.
package convert

import (
	"errors"
	"fmt"

	"github.com/pdiddy/timeline-engine/pkg/types"
)

// Result holds the completed document and the advisory warnings
// gathered along the way. Warnings are returned on success too; they
// never fail a run.
type Result struct {
	Document *types.TimelineDocument
	Warnings []string
}

// run is the per-conversion accumulator: the in-progress document plus
// error and warning lists. Each run owns its state exclusively; nothing
// is shared across conversions.
type run struct {
	cfg      types.ConvertConfig
	doc      *types.TimelineDocument
	errors   []string
	warnings []string
}

// Convert builds a Timeline.js document from a header row and data
// rows. Rows are processed in order and events/eras keep that order in
// the output; there is no sorting by date.
//
// Structural failures (bad header, empty document) return a typed error
// with no document. Row failures return a *RowError immediately in
// fail-fast mode, or an *AggregateError after the full pass in strict
// mode. Warnings accompany the Result in both outcomes.
func Convert(header []string, rows []types.Row, cfg types.ConvertConfig) (Result, error) {
	scale := cfg.Scale
	if scale == "" {
		scale = types.ScaleHuman
	}

	r := &run{
		cfg: cfg,
		doc: &types.TimelineDocument{
			Scale:  scale,
			Events: []types.EventRecord{},
			Eras:   []types.EraRecord{},
		},
	}

	if err := checkHeader(header); err != nil {
		return Result{}, err
	}

	for i, row := range rows {
		rowNum := i + 2 // header is row 1
		if err := r.processRow(row, rowNum); err != nil {
			rerr := &RowError{Row: rowNum, Err: err}
			r.errors = append(r.errors, rerr.Error())
			if !cfg.Strict {
				return Result{Warnings: r.warnings}, rerr
			}
		}
	}

	if cfg.Strict && len(r.errors) > 0 {
		return Result{Warnings: r.warnings}, &AggregateError{Errors: r.errors}
	}

	if r.doc.Title == nil && len(r.doc.Events) == 0 {
		return Result{Warnings: r.warnings}, ErrEmptyDocument
	}

	return Result{Document: r.doc, Warnings: r.warnings}, nil
}

// checkHeader verifies the header row exists and carries every required
// column. Missing column names are aggregated into a single error.
func checkHeader(header []string) error {
	if len(header) == 0 {
		return &HeaderError{}
	}

	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}

	var missing []string
	for _, req := range types.RequiredColumns {
		if !have[req] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return &HeaderError{Missing: missing}
	}
	return nil
}

// processRow dispatches one row by its Type column. A later title row
// replaces an earlier one; there is no duplicate-title detection.
func (r *run) processRow(row types.Row, rowNum int) error {
	if row.Get(types.ColHeadline) == "" {
		return errors.New("headline is required")
	}

	typ, ok := types.ParseRowType(row.Get(types.ColType))
	if !ok {
		return fmt.Errorf("invalid type %q: must be title, event, or era", row.Get(types.ColType))
	}

	switch typ {
	case types.RowTitle:
		r.doc.Title = r.buildTitle(row, rowNum)

	case types.RowEvent:
		if row.Get(types.ColStartDate) == "" {
			return errors.New("start date is required for events")
		}
		event, err := r.buildEvent(row, rowNum)
		if err != nil {
			return err
		}
		r.doc.Events = append(r.doc.Events, event)

	case types.RowEra:
		if row.Get(types.ColStartDate) == "" || row.Get(types.ColEndDate) == "" {
			return errors.New("start date and end date are required for eras")
		}
		era, err := r.buildEra(row)
		if err != nil {
			return err
		}
		r.doc.Eras = append(r.doc.Eras, era)
	}

	return nil
}

func (r *run) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

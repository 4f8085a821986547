// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/pdiddy/timeline-engine/internal/dates"
	"github.com/pdiddy/timeline-engine/internal/fields"
	"github.com/pdiddy/timeline-engine/pkg/types"
)

// buildTitle assembles the title slide. Titles carry no dates; any
// Start Date on the row is ignored.
func (r *run) buildTitle(row types.Row, rowNum int) *types.TitleSlide {
	return &types.TitleSlide{
		Text: types.SlideText{
			Headline: row.Get(types.ColHeadline),
			Text:     row.Get(types.ColText),
		},
		Media:      r.mediaObject(row, rowNum),
		Background: r.backgroundObject(row, rowNum),
		UniqueID:   row.Get(types.ColUniqueID),
	}
}

// buildEvent assembles an event record. The start date is required and
// its parse failure fails the row; an end date is best-effort and a
// parse failure there downgrades to a warning with the field omitted.
func (r *run) buildEvent(row types.Row, rowNum int) (types.EventRecord, error) {
	event := types.EventRecord{
		Text: types.SlideText{
			Headline: row.Get(types.ColHeadline),
			Text:     row.Get(types.ColText),
		},
	}

	start, err := dates.Parse(row.Get(types.ColStartDate), row.Get(types.ColStartTime))
	if err != nil {
		return types.EventRecord{}, fmt.Errorf("invalid start date: %w", err)
	}
	event.StartDate = start

	if endStr := row.Get(types.ColEndDate); endStr != "" {
		end, err := dates.Parse(endStr, row.Get(types.ColEndTime))
		if err != nil {
			r.warnf("Row %d: invalid end date: %v", rowNum, err)
		} else {
			event.EndDate = end
		}
	}

	event.DisplayDate = row.Get(types.ColDisplayDate)
	event.Group = row.Get(types.ColGroup)
	event.UniqueID = row.Get(types.ColUniqueID)
	event.Media = r.mediaObject(row, rowNum)
	event.Background = r.backgroundObject(row, rowNum)

	return event, nil
}

// buildEra assembles an era record. Both dates are parsed strictly: a
// failure on either fails the whole row. Eras take no media or
// background.
func (r *run) buildEra(row types.Row) (types.EraRecord, error) {
	start, err := dates.Parse(row.Get(types.ColStartDate), "")
	if err != nil {
		return types.EraRecord{}, fmt.Errorf("invalid dates: %w", err)
	}
	end, err := dates.Parse(row.Get(types.ColEndDate), "")
	if err != nil {
		return types.EraRecord{}, fmt.Errorf("invalid dates: %w", err)
	}
	if start == nil || end == nil {
		return types.EraRecord{}, fmt.Errorf("both start date and end date are required for eras")
	}

	return types.EraRecord{
		Text: types.SlideText{
			Headline: row.Get(types.ColHeadline),
			Text:     row.Get(types.ColText),
		},
		StartDate: start,
		EndDate:   end,
		UniqueID:  row.Get(types.ColUniqueID),
	}, nil
}

// mediaObject builds the media attachment, or nil when no Media URL was
// supplied. Format checks only warn, and only in strict mode; the value
// is embedded regardless.
func (r *run) mediaObject(row types.Row, rowNum int) *types.Media {
	url := row.Get(types.ColMediaURL)
	if url == "" {
		return nil
	}

	if r.cfg.Strict && !fields.ValidURL(url) {
		r.warnf("Row %d: invalid media URL format: %s", rowNum, url)
	}

	m := &types.Media{
		URL:        url,
		Caption:    row.Get(types.ColMediaCaption),
		Credit:     row.Get(types.ColMediaCredit),
		Alt:        row.Get(types.ColMediaAlt),
		LinkTarget: row.Get(types.ColMediaLinkTarget),
	}

	if link := row.Get(types.ColMediaLink); link != "" {
		if r.cfg.Strict && !fields.ValidURL(link) {
			r.warnf("Row %d: invalid media link URL format: %s", rowNum, link)
		}
		m.Link = link
	}

	return m
}

// backgroundObject builds the background, or nil when neither color nor
// image was supplied. Each field is included independently.
func (r *run) backgroundObject(row types.Row, rowNum int) *types.Background {
	color := row.Get(types.ColBackgroundColor)
	image := row.Get(types.ColBackgroundImage)
	if color == "" && image == "" {
		return nil
	}

	bg := &types.Background{}
	if color != "" {
		if r.cfg.Strict && !fields.ValidColor(color) {
			r.warnf("Row %d: invalid background color format: %s", rowNum, color)
		}
		bg.Color = color
	}
	if image != "" {
		if r.cfg.Strict && !fields.ValidURL(image) {
			r.warnf("Row %d: invalid background image URL format: %s", rowNum, image)
		}
		bg.URL = image
	}
	return bg
}

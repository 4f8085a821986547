// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/timeline-engine/internal/convert"
	"github.com/pdiddy/timeline-engine/pkg/types"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "events only",
			doc:  `{"scale":"human","events":[{"text":{"headline":"A","text":""},"start_date":{"year":1969}}],"eras":[]}`,
		},
		{
			name: "title only",
			doc:  `{"scale":"human","title":{"text":{"headline":"T","text":""}},"events":[],"eras":[]}`,
		},
		{
			name:    "neither title nor events",
			doc:     `{"scale":"human","events":[],"eras":[]}`,
			wantErr: true,
		},
		{
			name:    "eras only is invalid",
			doc:     `{"scale":"human","events":[],"eras":[{"text":{"headline":"E","text":""},"start_date":{"year":1957},"end_date":{"year":1975}}]}`,
			wantErr: true,
		},
		{
			name:    "event missing start_date",
			doc:     `{"scale":"human","events":[{"text":{"headline":"A","text":""}}],"eras":[]}`,
			wantErr: true,
		},
		{
			name:    "start_date missing year",
			doc:     `{"scale":"human","events":[{"text":{"headline":"A","text":""},"start_date":{"month":6}}],"eras":[]}`,
			wantErr: true,
		},
		{
			name:    "era missing end_date",
			doc:     `{"scale":"human","title":{"text":{"headline":"T","text":""}},"events":[],"eras":[{"text":{"headline":"E","text":""},"start_date":{"year":1957}}]}`,
			wantErr: true,
		},
		{
			name:    "unknown scale",
			doc:     `{"scale":"galactic","title":{"text":{"headline":"T","text":""}},"events":[],"eras":[]}`,
			wantErr: true,
		},
		{
			name:    "document must be an object",
			doc:     `["not","an","object"]`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			doc:     `{"scale":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.doc))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateConvertedDocument(t *testing.T) {
	// Anything the converter produces must pass the round-trip check.
	res, err := convert.Convert(types.Columns, convert.TemplateRows(), types.ConvertConfig{Strict: true})
	require.NoError(t, err)

	data, err := json.Marshal(res.Document)
	require.NoError(t, err)
	assert.NoError(t, Validate(data))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good,
		[]byte(`{"scale":"human","title":{"text":{"headline":"T","text":""}},"events":[],"eras":[]}`), 0o644))
	assert.NoError(t, ValidateFile(good))

	assert.Error(t, ValidateFile(filepath.Join(dir, "missing.json")))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema validates Timeline.js JSON documents against an
// embedded JSON Schema. The check is independent of conversion: any
// JSON file can be validated, not just documents this tool produced.
// It enforces the structural invariants Timeline.js needs at load time:
// a title or at least one event, a year-bearing start_date on every
// event, and both dates on every era.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed timeline.schema.json
var timelineSchemaJSON string

// timelineSchema is compiled once at init; the embedded schema is
// trusted input.
var timelineSchema = jsonschema.MustCompileString("timeline.schema.json", timelineSchemaJSON)

// Validate checks raw document bytes. It returns nil for a valid
// Timeline.js document and a descriptive error otherwise.
func Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := timelineSchema.Validate(doc); err != nil {
		return describe(err)
	}
	return nil
}

// ValidateFile reads and validates the document at path.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := Validate(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// describe flattens a jsonschema validation error to its most specific
// cause, so the user sees the failing location instead of the root
// "does not validate" line.
func describe(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	loc := leaf.InstanceLocation
	if loc == "" {
		loc = "document"
	}
	return fmt.Errorf("invalid timeline document: %s: %s", loc, leaf.Message)
}

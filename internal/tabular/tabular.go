// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular loads row data for conversion: delimited text files
// (comma, tab, or semicolon, auto-detected), XLSX workbooks, and remote
// sources fetched over HTTP. The whole source is held in memory; this
// is a bounded batch loader, not a streaming reader.
package tabular

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/timeline-engine/pkg/types"
)

// Table is a decoded row source: the header row plus one Row per data
// line, in source order.
type Table struct {
	Header []string
	Rows   []types.Row

	// Delimiter is the rune the source was split on; 0 for workbooks.
	Delimiter rune
}

// Load reads a source by scheme and extension: http(s) URLs are
// downloaded with retry, .xlsx paths are decoded as workbooks, and
// everything else is read as delimited text.
func Load(ctx context.Context, source string, cfg types.HTTPConfig) (Table, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err := fetch(ctx, source, cfg)
		if err != nil {
			return Table{}, err
		}
		if strings.HasSuffix(strings.ToLower(strings.SplitN(source, "?", 2)[0]), ".xlsx") {
			return decodeWorkbook(bytes.NewReader(data))
		}
		return DecodeCSV(bytes.NewReader(data))
	}

	if strings.EqualFold(filepath.Ext(source), ".xlsx") {
		return ReadXLSX(source)
	}

	f, err := os.Open(source)
	if err != nil {
		return Table{}, fmt.Errorf("opening %s: %w", source, err)
	}
	defer f.Close()
	return DecodeCSV(f)
}

// DecodeCSV reads delimited text, sniffing the delimiter from the
// leading sample. Rows may have fewer fields than the header; missing
// trailing fields become empty strings.
func DecodeCSV(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Table{}, fmt.Errorf("reading source: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")) // UTF-8 BOM

	sample := data
	if len(sample) > sniffSample {
		sample = sample[:sniffSample]
	}
	delim := Sniff(string(sample))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing rows: %w", err)
	}

	table := fromRecords(records)
	table.Delimiter = delim
	return table, nil
}

// fromRecords maps raw records onto the header of the first record.
// Extra fields beyond the header are dropped; short rows pad with "".
func fromRecords(records [][]string) Table {
	if len(records) == 0 {
		return Table{}
	}

	header := records[0]
	rows := make([]types.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(types.Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return Table{Header: header, Rows: rows}
}

// WriteCSV writes rows under the given header to a comma-delimited
// file at path, in header column order.
func WriteCSV(path string, header []string, rows []types.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// fetchClient builds the HTTP client for remote sources.
func fetchClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &http.Client{Timeout: timeout}
}

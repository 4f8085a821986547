// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX decodes the first sheet of a workbook. The first row is the
// header, as with delimited text.
func ReadXLSX(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return tableFromWorkbook(f)
}

// decodeWorkbook decodes workbook bytes already in memory (remote
// sources).
func decodeWorkbook(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return tableFromWorkbook(f)
}

func tableFromWorkbook(f *excelize.File) (Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, errors.New("workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return fromRecords(records), nil
}

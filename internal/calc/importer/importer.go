// Package importer turns spreadsheet rows into batch calculations and
// writes annotated result workbooks.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"MMECalc/internal/calc/batch"
	"MMECalc/internal/calc/catalog"

	"github.com/xuri/excelize/v2"
)

const ResultSheet = "Results"

var ErrEmptySheet = errors.New("sheet has no data rows")

// ReadItems reads the first sheet. The header row is "formula" followed by
// parameter names; every later row is one calculation. Blank cells are
// left out so optional parameters take their defaults.
func ReadItems(r io.Reader) ([]batch.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	if len(header) == 0 || header[0] != "formula" {
		return nil, fmt.Errorf("first header cell must be \"formula\"")
	}

	var items []batch.Item
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		item, err := parseRow(header, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, ErrEmptySheet
	}
	return items, nil
}

func parseRow(header, row []string) (batch.Item, error) {
	tokens := make([]string, 0, len(row))
	for j := 1; j < len(row) && j < len(header); j++ {
		cell := strings.TrimSpace(row[j])
		if cell == "" || header[j] == "" {
			continue
		}
		tokens = append(tokens, header[j]+"="+cell)
	}
	in, err := catalog.ParseAssignments(tokens)
	if err != nil {
		return batch.Item{}, err
	}
	return batch.Item{Formula: strings.TrimSpace(row[0]), Input: in}, nil
}

// WriteResults lays out one row per output, or one row per failed item
// with the error message.
func WriteResults(w io.Writer, resp batch.Response, precision int) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), ResultSheet); err != nil {
		return err
	}
	header := []any{"#", "formula", "output", "value", "unit", "error"}
	if err := f.SetSheetRow(ResultSheet, "A1", &header); err != nil {
		return err
	}
	rowNum := 2
	put := func(vals []any) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		rowNum++
		return f.SetSheetRow(ResultSheet, cell, &vals)
	}
	for _, ir := range resp.Results {
		if ir.Result == nil {
			if err := put([]any{ir.Index + 1, ir.Formula, "", "", "", ir.Error}); err != nil {
				return err
			}
			continue
		}
		for _, o := range ir.Result.Outputs {
			if err := put([]any{ir.Index + 1, ir.Formula, o.Label, catalog.FormatValue(o.Value, precision), o.Unit, ""}); err != nil {
				return err
			}
		}
		for _, tag := range ir.Result.Tags {
			if err := put([]any{ir.Index + 1, ir.Formula, tag.Label, tag.Text, "", ""}); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

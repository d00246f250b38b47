// Package excel provides file-backed row sources for the pipeline: a
// worksheet reader built on excelize that preserves native cell types,
// and a CSV fallback for reports exported as plain text.
package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"chemload/internal/core"
)

// Source reads one worksheet (or CSV file) into a restartable row
// sequence. Rows are decoded eagerly at construction; the pipeline then
// pulls them one at a time. Fully blank rows are skipped while their
// sheet indices are preserved, so indices may have gaps.
type Source struct {
	path  string
	sheet string
	rows  []core.Row
	pos   int
}

// NewSource opens path and decodes its rows. Files ending in .csv are
// parsed as CSV; anything else is treated as a workbook and read from the
// named sheet.
func NewSource(path, sheet string) (*Source, error) {
	s := &Source{path: path, sheet: sheet}
	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		s.rows, err = readCSV(path)
	} else {
		s.rows, err = readSheet(path, sheet)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the base file name, used to tag errors in reports.
func (s *Source) Name() string { return filepath.Base(s.path) }

// Next returns the next non-blank row, or false when exhausted.
func (s *Source) Next() (core.Row, bool) {
	if s.pos >= len(s.rows) {
		return core.Row{}, false
	}
	row := s.rows[s.pos]
	s.pos++
	return row, true
}

// Reset rewinds to the first row.
func (s *Source) Reset() error {
	s.pos = 0
	return nil
}

// readSheet decodes one worksheet, keeping excelize's native cell types.
func readSheet(path, sheet string) ([]core.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	// GetRows trims trailing empty cells per row; pad every row to the
	// sheet's widest row so the reader sees a consistent shape.
	maxCols := 0
	for _, r := range raw {
		if len(r) > maxCols {
			maxCols = len(r)
		}
	}

	var rows []core.Row
	for i, r := range raw {
		cells := make([]core.Cell, maxCols)
		for j := range cells {
			if j < len(r) {
				cells[j] = decodeCell(f, sheet, i, j, r[j])
			} else {
				cells[j] = core.BlankCell()
			}
		}
		row := core.Row{Index: i, Cells: cells}
		if row.IsBlank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// decodeCell maps an excelize cell onto the pipeline's cell variants.
func decodeCell(f *excelize.File, sheet string, row, col int, raw string) core.Cell {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return core.BlankCell()
	}

	if formula, err := f.GetCellFormula(sheet, ref); err == nil && formula != "" {
		val, _ := f.GetCellValue(sheet, ref)
		return core.FormulaCell(val)
	}

	ctype, err := f.GetCellType(sheet, ref)
	if err != nil {
		ctype = excelize.CellTypeUnset
	}

	switch ctype {
	case excelize.CellTypeBool:
		return core.BoolCell(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeError:
		return core.ErrorCell(errorCode(raw))
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		if strings.TrimSpace(raw) == "" {
			return core.BlankCell()
		}
		return core.TextCell(strings.TrimSpace(raw))
	case excelize.CellTypeDate:
		return dateCell(raw)
	default:
		// Numeric cells carry no type attribute in the file; dates are
		// numbers wearing a date number format.
		if strings.TrimSpace(raw) == "" {
			return core.BlankCell()
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return core.TextCell(strings.TrimSpace(raw))
		}
		if isDateStyled(f, sheet, ref) {
			return dateCellFromSerial(v)
		}
		return core.NumberCell(v)
	}
}

func dateCell(raw string) core.Cell {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return core.TextCell(raw)
	}
	return dateCellFromSerial(v)
}

func dateCellFromSerial(serial float64) core.Cell {
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return core.NumberCell(serial)
	}
	return core.DateCell(t)
}

// isDateStyled reports whether the cell's number format is one of the
// built-in date/time formats or a custom format with date tokens.
func isDateStyled(f *excelize.File, sheet, ref string) bool {
	styleID, err := f.GetCellStyle(sheet, ref)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtInDateFormat(style.NumFmt) {
		return true
	}
	if style.CustomNumFmt != nil {
		return strings.ContainsAny(strings.ToLower(*style.CustomNumFmt), "ymdhs")
	}
	return false
}

func builtInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// errorCode maps spreadsheet error literals to their BIFF error codes.
func errorCode(raw string) byte {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "#NULL!":
		return 0x00
	case "#DIV/0!":
		return 0x07
	case "#VALUE!":
		return 0x0F
	case "#REF!":
		return 0x17
	case "#NAME?":
		return 0x1D
	case "#NUM!":
		return 0x24
	case "#N/A":
		return 0x2A
	default:
		return 0xFF
	}
}

// readCSV decodes a CSV export. Cells have no native types, so numbers
// are detected by parse and everything else stays text.
func readCSV(path string) ([]core.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	maxCols := 0
	for _, rec := range records {
		if len(rec) > maxCols {
			maxCols = len(rec)
		}
	}

	var rows []core.Row
	for i, rec := range records {
		cells := make([]core.Cell, maxCols)
		for j := range cells {
			if j < len(rec) {
				cells[j] = decodeCSVCell(rec[j])
			} else {
				cells[j] = core.BlankCell()
			}
		}
		row := core.Row{Index: i, Cells: cells}
		if row.IsBlank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeCSVCell(raw string) core.Cell {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return core.BlankCell()
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return core.NumberCell(v)
	}
	return core.TextCell(raw)
}

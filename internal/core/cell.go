package core

import (
	"fmt"
	"strconv"
	"time"
)

// CellKind identifies which variant of a Cell is active.
type CellKind int

const (
	KindBlank CellKind = iota
	KindText
	KindNumber
	KindDate
	KindBool
	KindFormula
	KindError
)

// String returns the human-readable name used in error messages.
func (k CellKind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBool:
		return "bool"
	case KindFormula:
		return "formula"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Cell is one decoded spreadsheet cell. Exactly one variant is active,
// selected by Kind; the payload fields for inactive variants are zero.
// Cells are immutable once constructed.
type Cell struct {
	Kind   CellKind
	Text   string    // KindText, KindFormula
	Number float64   // KindNumber
	Time   time.Time // KindDate
	Bool   bool      // KindBool
	Code   byte      // KindError
}

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: KindText, Text: s} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// DateCell returns a date/time cell.
func DateCell(t time.Time) Cell { return Cell{Kind: KindDate, Time: t} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// BlankCell returns an empty cell.
func BlankCell() Cell { return Cell{Kind: KindBlank} }

// FormulaCell returns a cell holding the text result of a formula.
func FormulaCell(s string) Cell { return Cell{Kind: KindFormula, Text: s} }

// ErrorCell returns a cell holding a spreadsheet error code (#DIV/0! etc).
func ErrorCell(code byte) Cell { return Cell{Kind: KindError, Code: code} }

// SameKind reports whether two cells hold the same variant.
// Payloads are ignored: two text cells with different strings match,
// a text cell and a number cell never do.
func (c Cell) SameKind(other Cell) bool { return c.Kind == other.Kind }

// IsBlank reports whether the cell is empty.
func (c Cell) IsBlank() bool { return c.Kind == KindBlank }

// String renders the cell payload for error messages and previews.
func (c Cell) String() string {
	switch c.Kind {
	case KindBlank:
		return ""
	case KindText, KindFormula:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindDate:
		return c.Time.Format("2006-01-02 15:04:05")
	case KindBool:
		return strconv.FormatBool(c.Bool)
	case KindError:
		return fmt.Sprintf("#ERR(0x%02X)", c.Code)
	default:
		return ""
	}
}

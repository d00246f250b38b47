package core

// Row is one spreadsheet row: the 0-based sheet position plus the decoded
// cells in column order. Indices increase monotonically but may have gaps
// where the source skipped fully blank rows.
type Row struct {
	Index int
	Cells []Cell
}

// IsBlank reports whether every cell in the row is empty.
func (r Row) IsBlank() bool {
	for _, c := range r.Cells {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// RowSource produces rows on demand in increasing index order.
// Next returns false when the sequence is exhausted; that is not an error.
// Reset rewinds the source so it can be read again from the start.
type RowSource interface {
	Next() (Row, bool)
	Reset() error
}

// SliceSource is an in-memory RowSource backed by a fixed slice of rows.
// It backs tests and fixtures; file-backed sources share the same interface.
type SliceSource struct {
	rows []Row
	pos  int
}

// NewSliceSource returns a source that yields the given rows in order.
func NewSliceSource(rows ...Row) *SliceSource {
	return &SliceSource{rows: rows}
}

// Rows builds a SliceSource from bare cell slices, assigning contiguous
// indices starting at 0. Convenient for test fixtures.
func Rows(cells ...[]Cell) *SliceSource {
	rows := make([]Row, len(cells))
	for i, cs := range cells {
		rows[i] = Row{Index: i, Cells: cs}
	}
	return NewSliceSource(rows...)
}

// Next returns the next row, or false when exhausted.
func (s *SliceSource) Next() (Row, bool) {
	if s.pos >= len(s.rows) {
		return Row{}, false
	}
	row := s.rows[s.pos]
	s.pos++
	return row, true
}

// Reset rewinds to the first row.
func (s *SliceSource) Reset() error {
	s.pos = 0
	return nil
}

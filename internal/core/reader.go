package core

// reader.go implements the TableReader state machine that turns a raw row
// stream into named, type-checked column maps.
//
// The first row read is the header. Every header cell must be text; any
// other kind ends the stream with an InvalidHeaderError naming all the
// offending columns at once. After the header, each row must have the same
// cell count as the header (ShapeError otherwise, also terminal).
//
// Column types are not declared up front. Each column's expected kind is
// inferred from the first non-blank cell seen in it and is fixed for the
// rest of the run; later non-blank cells of a different kind reject the row
// with a CellTypeError per conflicting column. Type errors are recoverable:
// the reader keeps producing rows after emitting them.

type readerState int

const (
	stateHeader readerState = iota // header row not yet consumed
	stateRows                      // header known, producing data rows
	stateDone                      // stream exhausted or terminally failed
)

// RowResult is one emitted row: either a validated column map or the
// errors that rejected it. Columns is nil whenever Errs is non-empty.
type RowResult struct {
	Index   int
	Columns map[string]Cell
	Errs    []error
}

// Valid reports whether the row passed validation.
func (r RowResult) Valid() bool { return len(r.Errs) == 0 }

// TableReader validates a row stream against an incrementally inferred
// per-column type template. It is single-use; construct a new reader to
// re-read a source.
type TableReader struct {
	src       RowSource
	state     readerState
	header    []string
	templates []CellKind // KindBlank means "not yet established"
}

// NewTableReader returns a reader over src. The first row produced by src
// is interpreted as the header.
func NewTableReader(src RowSource) *TableReader {
	return &TableReader{src: src}
}

// Header returns the column names, or nil before the header row has been
// consumed.
func (t *TableReader) Header() []string { return t.header }

// Next produces the next row result. It returns false when the stream is
// exhausted, including after a terminal header or shape error has been
// emitted.
func (t *TableReader) Next() (RowResult, bool) {
	switch t.state {
	case stateDone:
		return RowResult{}, false

	case stateHeader:
		row, ok := t.src.Next()
		if !ok {
			t.state = stateDone
			return RowResult{}, false
		}
		if errs := t.readHeader(row); errs != nil {
			t.state = stateDone
			return RowResult{Index: row.Index, Errs: errs}, true
		}
		t.state = stateRows
		// Fall through to produce the first data row in the same call.
		return t.Next()

	default: // stateRows
		row, ok := t.src.Next()
		if !ok {
			t.state = stateDone
			return RowResult{}, false
		}
		return t.readRow(row), true
	}
}

// readHeader extracts column names, or returns the terminal error when any
// header cell is not text.
func (t *TableReader) readHeader(row Row) []error {
	var bad []int
	names := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		if c.Kind != KindText {
			bad = append(bad, i)
			continue
		}
		names[i] = c.Text
	}
	if len(bad) > 0 {
		return []error{&InvalidHeaderError{Columns: bad}}
	}
	t.header = names
	t.templates = make([]CellKind, len(names))
	return nil
}

// readRow checks the row's shape and cell kinds against the header and the
// column templates, updating unset templates as it goes.
func (t *TableReader) readRow(row Row) RowResult {
	if len(row.Cells) != len(t.header) {
		t.state = stateDone
		return RowResult{
			Index: row.Index,
			Errs:  []error{&ShapeError{HeaderCols: len(t.header), RowCols: len(row.Cells)}},
		}
	}

	var errs []error
	for i, c := range row.Cells {
		if c.IsBlank() {
			continue
		}
		if t.templates[i] == KindBlank {
			t.templates[i] = c.Kind
			continue
		}
		if c.Kind != t.templates[i] {
			errs = append(errs, &CellTypeError{Column: t.header[i], Expected: t.templates[i].String()})
		}
	}
	if len(errs) > 0 {
		return RowResult{Index: row.Index, Errs: errs}
	}

	cols := make(map[string]Cell, len(t.header))
	for i, name := range t.header {
		cols[name] = row.Cells[i]
	}
	return RowResult{Index: row.Index, Columns: cols}
}

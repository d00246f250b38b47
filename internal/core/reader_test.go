package core

import (
	"errors"
	"testing"
)

func header(names ...string) []Cell {
	cells := make([]Cell, len(names))
	for i, n := range names {
		cells[i] = TextCell(n)
	}
	return cells
}

func TestTableReaderInvalidHeader(t *testing.T) {
	src := Rows(
		[]Cell{TextCell("Param"), NumberCell(3), TextCell("Units"), BlankCell()},
		[]Cell{TextCell("Iron"), NumberCell(0.1), TextCell("mg/L"), BlankCell()},
	)
	r := NewTableReader(src)

	res, ok := r.Next()
	if !ok {
		t.Fatal("expected one result for the bad header")
	}
	if len(res.Errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errs)
	}
	var hdrErr *InvalidHeaderError
	if !errors.As(res.Errs[0], &hdrErr) {
		t.Fatalf("expected InvalidHeaderError, got %T", res.Errs[0])
	}
	// Both the number cell and the blank cell are non-text.
	if len(hdrErr.Columns) != 2 || hdrErr.Columns[0] != 1 || hdrErr.Columns[1] != 3 {
		t.Errorf("offending columns = %v, want [1 3]", hdrErr.Columns)
	}

	// Stream is terminated: data rows are never emitted.
	if _, ok := r.Next(); ok {
		t.Error("expected no further results after an invalid header")
	}
}

func TestTableReaderFirstDataRowFollowsHeader(t *testing.T) {
	src := Rows(
		header("Param", "Value"),
		[]Cell{TextCell("Iron"), NumberCell(0.1)},
	)
	r := NewTableReader(src)

	// The first call consumes the header and already yields row 1.
	res, ok := r.Next()
	if !ok {
		t.Fatal("expected the first data row")
	}
	if !res.Valid() {
		t.Fatalf("unexpected errors: %v", res.Errs)
	}
	if res.Index != 1 {
		t.Errorf("index = %d, want 1", res.Index)
	}
	if res.Columns["Param"].Text != "Iron" {
		t.Errorf("Param = %q, want Iron", res.Columns["Param"].Text)
	}
	if _, ok := r.Next(); ok {
		t.Error("expected exhaustion after the last row")
	}
}

func TestTableReaderColumnTemplates(t *testing.T) {
	src := Rows(
		header("Param", "Value", "Note"),
		[]Cell{TextCell("Iron"), BlankCell(), BlankCell()},        // Value template still unset
		[]Cell{TextCell("Zinc"), NumberCell(1.5), TextCell("ok")}, // sets Value=number, Note=text
		[]Cell{TextCell("Lead"), TextCell("oops"), TextCell("x")}, // Value conflicts, Note fine
		[]Cell{TextCell("Boron"), NumberCell(2.0), BlankCell()},   // stream continues
	)
	r := NewTableReader(src)

	for _, wantValid := range []bool{true, true} {
		res, ok := r.Next()
		if !ok || res.Valid() != wantValid {
			t.Fatalf("early rows should validate, got ok=%v errs=%v", ok, res.Errs)
		}
	}

	res, ok := r.Next()
	if !ok {
		t.Fatal("expected the conflicting row")
	}
	if len(res.Errs) != 1 {
		t.Fatalf("expected one CellType error, got %v", res.Errs)
	}
	var typeErr *CellTypeError
	if !errors.As(res.Errs[0], &typeErr) {
		t.Fatalf("expected CellTypeError, got %T", res.Errs[0])
	}
	if typeErr.Column != "Value" || typeErr.Expected != "number" {
		t.Errorf("got %q/%q, want Value/number", typeErr.Column, typeErr.Expected)
	}

	// A recoverable error does not stop the stream.
	res, ok = r.Next()
	if !ok || !res.Valid() {
		t.Fatalf("expected the following row to validate, got ok=%v errs=%v", ok, res.Errs)
	}
	if _, ok := r.Next(); ok {
		t.Error("expected exhaustion")
	}
}

func TestTableReaderShapeMismatch(t *testing.T) {
	src := Rows(
		header("Param", "Value"),
		[]Cell{TextCell("Iron"), NumberCell(0.1)},
		[]Cell{TextCell("Zinc")},
		[]Cell{TextCell("Lead"), NumberCell(0.2)},
	)
	r := NewTableReader(src)

	if res, ok := r.Next(); !ok || !res.Valid() {
		t.Fatal("first data row should validate")
	}

	res, ok := r.Next()
	if !ok {
		t.Fatal("expected the short row")
	}
	var shapeErr *ShapeError
	if len(res.Errs) != 1 || !errors.As(res.Errs[0], &shapeErr) {
		t.Fatalf("expected a single ShapeError, got %v", res.Errs)
	}
	if shapeErr.HeaderCols != 2 || shapeErr.RowCols != 1 {
		t.Errorf("got %d/%d, want 2/1", shapeErr.HeaderCols, shapeErr.RowCols)
	}

	// Shape errors are structural: the remaining rows are not read.
	if _, ok := r.Next(); ok {
		t.Error("expected termination after a shape mismatch")
	}
}

func TestTableReaderEmptySource(t *testing.T) {
	r := NewTableReader(Rows())
	if _, ok := r.Next(); ok {
		t.Error("empty source should be exhausted immediately")
	}
	// Done state stays done.
	if _, ok := r.Next(); ok {
		t.Error("reader should remain exhausted")
	}
}

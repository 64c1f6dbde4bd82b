package tape_test

import (
	"bytes"
	"testing"

	"go.hackasm.dev/tapec/pkg/tape"
)

func TestSeek(t *testing.T) {
	var buf bytes.Buffer
	e := tape.NewEmitter(&buf)
	e.Seek(5).IncVal()
	e.Seek(2).IncValBy(3)
	e.Seek(5).IncVal()

	cells, err := run(buf.Bytes(), 6)
	if err != nil {
		t.Fatal(err)
	}
	if cells[5] != 2 || cells[2] != 3 {
		t.Fatalf("cells = %v, want [0 0 3 0 0 2]", cells)
	}
}

func TestSetOrigin(t *testing.T) {
	var buf bytes.Buffer
	e := tape.NewEmitter(&buf)
	e.Seek(4)       // physical head now at 4
	e.SetOrigin(0)  // 4 becomes the new local 0 without emitting tokens
	e.Seek(2).IncVal() // local 2 = physical 6

	cells, err := run(buf.Bytes(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if cells[6] != 1 {
		t.Fatalf("cells = %v, want cell 6 = 1", cells)
	}
}

func TestMoveCell(t *testing.T) {
	var buf bytes.Buffer
	e := tape.NewEmitter(&buf)
	e.Seek(0).IncValBy(5)
	e.MoveCell(0, 1, 2)

	cells, err := run(buf.Bytes(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if cells[0] != 0 || cells[1] != 5 || cells[2] != 5 {
		t.Fatalf("cells = %v, want [0 5 5]", cells)
	}
}

func TestCopyCell(t *testing.T) {
	var buf bytes.Buffer
	e := tape.NewEmitter(&buf)
	e.Seek(0).IncValBy(9)
	e.CopyCell(0, 1, 2, 3)

	cells, err := run(buf.Bytes(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if cells[0] != 9 || cells[1] != 0 || cells[2] != 9 || cells[3] != 9 {
		t.Fatalf("cells = %v, want [9 0 9 9]", cells)
	}
}

func TestHereMoveIntoAndSetFrom(t *testing.T) {
	var buf bytes.Buffer
	e := tape.NewEmitter(&buf)
	e.Seek(0).IncValBy(6)
	e.Seek(1)
	e.HereSetFrom(0)  // drains cell 0 into the cell under the head (cell 1)
	e.Seek(1)
	e.HereMoveInto(2) // drains cell 1 (now 6) into cell 2

	cells, err := run(buf.Bytes(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if cells[0] != 0 || cells[1] != 0 || cells[2] != 6 {
		t.Fatalf("cells = %v, want [0 0 6]", cells)
	}
}

package tape_test

import (
	"bytes"
	"testing"

	"go.hackasm.dev/tapec/pkg/tape"
)

func TestSetVal(t *testing.T) {
	t.Run("clears then sets", func(t *testing.T) {
		var buf bytes.Buffer
		e := tape.NewEmitter(&buf)
		e.IncValBy(9).SetVal(4)

		cells, err := run(buf.Bytes(), 1)
		if err != nil {
			t.Fatal(err)
		}
		if cells[0] != 4 {
			t.Fatalf("got %d, want 4", cells[0])
		}
	})

	t.Run("zero clears only", func(t *testing.T) {
		var buf bytes.Buffer
		e := tape.NewEmitter(&buf)
		e.IncValBy(200).SetVal(0)

		cells, err := run(buf.Bytes(), 1)
		if err != nil {
			t.Fatal(err)
		}
		if cells[0] != 0 {
			t.Fatalf("got %d, want 0", cells[0])
		}
	})
}

func TestChangePtrBy(t *testing.T) {
	var buf bytes.Buffer
	e := tape.NewEmitter(&buf)
	e.ChangePtrBy(3).IncVal()
	e.ChangePtrBy(-3).IncValBy(2)

	if e.Head() != 0 {
		t.Fatalf("head = %d, want 0", e.Head())
	}

	cells, err := run(buf.Bytes(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if cells[0] != 2 || cells[3] != 1 {
		t.Fatalf("cells = %v, want [2 0 0 1]", cells)
	}
}

func TestClearVal(t *testing.T) {
	var buf bytes.Buffer
	e := tape.NewEmitter(&buf)
	e.IncValBy(37).ClearVal()

	cells, err := run(buf.Bytes(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if cells[0] != 0 {
		t.Fatalf("got %d, want 0", cells[0])
	}
}

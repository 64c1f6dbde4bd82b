package tape_test

import (
	"bytes"
	"testing"

	"go.hackasm.dev/tapec/pkg/tape"
)

func TestIfMove(t *testing.T) {
	test := func(cond uint8, want uint8) {
		var buf bytes.Buffer
		e := tape.NewEmitter(&buf)
		e.Seek(0).IncValBy(cond)
		e.IfMove(0, func(e *tape.Emitter) { e.Seek(1).IncVal() })

		cells, err := run(buf.Bytes(), 2)
		if err != nil {
			t.Fatal(err)
		}
		if cells[0] != 0 {
			t.Fatalf("cond not consumed: %v", cells)
		}
		if cells[1] != want {
			t.Fatalf("cond=%d: cells[1] = %d, want %d", cond, cells[1], want)
		}
	}

	t.Run("zero skips", func(t *testing.T) { test(0, 0) })
	t.Run("nonzero runs once", func(t *testing.T) { test(1, 1) })
	t.Run("large nonzero still runs once", func(t *testing.T) { test(200, 1) })
}

func TestIfElseMove(t *testing.T) {
	test := func(cond uint8, want uint8) {
		var buf bytes.Buffer
		e := tape.NewEmitter(&buf)
		e.Seek(0).IncValBy(cond)
		e.IfElseMove(0, 1,
			func(e *tape.Emitter) { e.Seek(2).IncValBy(10) },
			func(e *tape.Emitter) { e.Seek(2).IncValBy(20) },
		)

		cells, err := run(buf.Bytes(), 3)
		if err != nil {
			t.Fatal(err)
		}
		if cells[0] != 0 || cells[1] != 0 {
			t.Fatalf("cond/flag not drained: %v", cells)
		}
		if cells[2] != want {
			t.Fatalf("cond=%d: cells[2] = %d, want %d", cond, cells[2], want)
		}
	}

	t.Run("zero takes else", func(t *testing.T) { test(0, 20) })
	t.Run("nonzero takes then", func(t *testing.T) { test(1, 10) })
}

func TestLogicalNotMove(t *testing.T) {
	test := func(src, want uint8) {
		var buf bytes.Buffer
		e := tape.NewEmitter(&buf)
		e.Seek(0).IncValBy(src)
		e.LogicalNotMove(0, 1)

		cells, err := run(buf.Bytes(), 2)
		if err != nil {
			t.Fatal(err)
		}
		if cells[1] != want {
			t.Fatalf("src=%d: got %d, want %d", src, cells[1], want)
		}
	}
	test(0, 1)
	test(1, 0)
	test(42, 0)
}

func TestLogicalOrMove(t *testing.T) {
	cases := []struct{ a, b, want uint8 }{
		{0, 0, 0}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}, {5, 7, 1},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		e := tape.NewEmitter(&buf)
		e.Seek(0).IncValBy(c.a)
		e.Seek(1).IncValBy(c.b)
		e.LogicalOrMove(0, 1, 2)

		cells, err := run(buf.Bytes(), 3)
		if err != nil {
			t.Fatal(err)
		}
		if cells[2] != c.want {
			t.Fatalf("a=%d b=%d: got %d, want %d", c.a, c.b, cells[2], c.want)
		}
	}
}

func TestLogicalAndMove(t *testing.T) {
	cases := []struct{ a, b, want uint8 }{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 1}, {5, 7, 1},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		e := tape.NewEmitter(&buf)
		e.Seek(0).IncValBy(c.a)
		e.Seek(1).IncValBy(c.b)
		e.LogicalAndMove(0, 1, 2, 3)

		cells, err := run(buf.Bytes(), 4)
		if err != nil {
			t.Fatal(err)
		}
		if cells[2] != c.want {
			t.Fatalf("a=%d b=%d: got %d, want %d", c.a, c.b, cells[2], c.want)
		}
		if cells[3] != 0 {
			t.Fatalf("a=%d b=%d: flag left dirty: %v", c.a, c.b, cells)
		}
	}
}

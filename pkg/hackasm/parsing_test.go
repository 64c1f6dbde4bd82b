package hackasm_test

import (
	"strings"
	"testing"

	"go.hackasm.dev/tapec/pkg/hackasm"
)

func parse(t *testing.T, src string) hackasm.Program {
	t.Helper()
	parser := hackasm.NewParser(strings.NewReader(src))
	program, err := parser.Parse()
	if err != nil {
		t.Fatalf("parse %q: %s", src, err)
	}
	return program
}

func TestParseAInstructions(t *testing.T) {
	program := parse(t, "@42\n@SCREEN\n@counter\n")
	want := []hackasm.Statement{
		hackasm.AInstruction{Location: "42"},
		hackasm.AInstruction{Location: "SCREEN"},
		hackasm.AInstruction{Location: "counter"},
	}
	if len(program) != len(want) {
		t.Fatalf("got %d statements, want %d", len(program), len(want))
	}
	for i := range want {
		if program[i] != want[i] {
			t.Fatalf("statement %d: got %#v, want %#v", i, program[i], want[i])
		}
	}
}

func TestParseCInstructions(t *testing.T) {
	t.Run("dest and comp only", func(t *testing.T) {
		program := parse(t, "AMD=D|M\n")
		want := hackasm.CInstruction{Comp: "D|M", Dest: "AMD"}
		if program[0] != want {
			t.Fatalf("got %#v, want %#v", program[0], want)
		}
	})

	t.Run("comp and jump only", func(t *testing.T) {
		program := parse(t, "D;JGT\n")
		want := hackasm.CInstruction{Comp: "D", Jump: "JGT"}
		if program[0] != want {
			t.Fatalf("got %#v, want %#v", program[0], want)
		}
	})

	t.Run("dest comp and jump", func(t *testing.T) {
		program := parse(t, "D=D-M;JLE\n")
		want := hackasm.CInstruction{Comp: "D-M", Dest: "D", Jump: "JLE"}
		if program[0] != want {
			t.Fatalf("got %#v, want %#v", program[0], want)
		}
	})

	t.Run("bitwise comp terms", func(t *testing.T) {
		program := parse(t, "D=D&A\nD=D&M\nD=D|A\nD=D|M\n")
		want := []string{"D&A", "D&M", "D|A", "D|M"}
		for i, w := range want {
			if program[i].(hackasm.CInstruction).Comp != w {
				t.Fatalf("instruction %d: comp = %q, want %q", i, program[i].(hackasm.CInstruction).Comp, w)
			}
		}
	})
}

func TestParseLabelsAndComments(t *testing.T) {
	program := parse(t, "// a comment\n(LOOP)\n@LOOP\n0;JMP\n")
	want := []hackasm.Statement{
		hackasm.LabelDecl{Name: "LOOP"},
		hackasm.AInstruction{Location: "LOOP"},
		hackasm.CInstruction{Comp: "0", Jump: "JMP"},
	}
	if len(program) != len(want) {
		t.Fatalf("got %d statements, want %d", len(program), len(want))
	}
	for i := range want {
		if program[i] != want[i] {
			t.Fatalf("statement %d: got %#v, want %#v", i, program[i], want[i])
		}
	}
}

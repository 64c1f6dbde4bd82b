package compiler_test

import (
	"bytes"
	"strings"
	"testing"

	"go.hackasm.dev/tapec/pkg/compiler"
	"go.hackasm.dev/tapec/pkg/hackasm"
	"go.hackasm.dev/tapec/pkg/tape"
)

// runBounded interprets code for up to maxSteps token executions and
// returns the cell array as it stood at that point. A compiled HACK
// program never halts on its own (a well-formed source always ends by
// spinning on its own closing label), so there is no natural termination
// to wait for; maxSteps just needs to be generous enough to cover every
// real instruction before the test stops watching. Grounded in the same
// compare_tape idea the pkg/tape harness uses, with a step cap standing in
// for the original's implicit termination.
func runBounded(t *testing.T, code []byte, size int, maxSteps int) []uint8 {
	t.Helper()
	cells := make([]uint8, size)
	jump := make(map[int]int)
	var stack []int
	for i, b := range code {
		switch b {
		case '[':
			stack = append(stack, i)
		case ']':
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jump[open] = i
			jump[i] = open
		}
	}
	if len(stack) != 0 {
		t.Fatalf("unmatched '[' in compiled program")
	}

	head, pc := 0, 0
	for step := 0; step < maxSteps && pc < len(code); step++ {
		switch code[pc] {
		case '+':
			cells[head]++
		case '-':
			cells[head]--
		case '>':
			head++
		case '<':
			head--
		case '[':
			if cells[head] == 0 {
				pc = jump[pc]
			}
		case ']':
			if cells[head] != 0 {
				pc = jump[pc]
			}
		}
		pc++
	}
	return cells
}

const tapeSize = int(tape.TapeSize)

// Grounds the classic nand2tetris "Add" sample: compute 2+3 and store the
// result in RAM[0], then spin forever on the closing label. maxSteps is
// generous enough to run well past the sixth (M=D) instruction; the loop
// after that only ever touches A and P, so RAM[0] is stable by then.
const addProgram = `
@2
D=A
@3
D=D+A
@0
M=D
(END)
@END
0;JMP
`

func TestCompileAddProgram(t *testing.T) {
	resolved, err := hackasm.Assemble(strings.NewReader(addProgram))
	if err != nil {
		t.Fatalf("assemble: %s", err)
	}

	var buf bytes.Buffer
	e := tape.NewEmitter(&buf)
	if err := compiler.Compile(e, resolved); err != nil {
		t.Fatalf("compile: %s", err)
	}

	cells := runBounded(t, buf.Bytes(), tapeSize, 50_000_000)

	group := int(tape.HeapGroup(0))
	got := uint16(cells[group])<<8 | uint16(cells[group+1])
	if got != 5 {
		t.Fatalf("RAM[0] = %d, want 5 (2+3)", got)
	}
}

const jumpProgram = `
@5
D=A
@LOOP
D=D-1
D;JGT
@LOOP
0;JMP
(LOOP)
@7
D=A
D;JGT
`

// TestCompileConditionalJump is a cruder smoke test than the Add program:
// it exercises a taken JGT to a forward-referenced label (D is 4 there) and
// then a taken JGT back to that label's address (D is 7 there).
func TestCompileConditionalJump(t *testing.T) {
	resolved, err := hackasm.Assemble(strings.NewReader(jumpProgram))
	if err != nil {
		t.Fatalf("assemble: %s", err)
	}

	var buf bytes.Buffer
	e := tape.NewEmitter(&buf)
	if err := compiler.Compile(e, resolved); err != nil {
		t.Fatalf("compile: %s", err)
	}

	// Only checking that compilation and a bounded run complete without a
	// runtime panic (tape cell underflow/overflow, unmatched bracket) —
	// this program's control flow is exercised end-to-end, not just one
	// straight-line path.
	_ = runBounded(t, buf.Bytes(), tapeSize, 50_000_000)
}

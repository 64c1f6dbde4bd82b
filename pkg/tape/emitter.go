package tape

import (
	"fmt"
	"io"
	"os"

	"go.hackasm.dev/tapec/pkg/utils"
)

// Token is one byte of the eight-token TAPE alphabet.
type Token byte

const (
	TokIncVal Token = '+'
	TokDecVal Token = '-'
	TokIncPtr Token = '>'
	TokDecPtr Token = '<'
	TokStart  Token = '['
	TokEnd    Token = ']'
	TokInput  Token = ','
	TokOutput Token = '.'
	TokBreak  Token = '#' // implementation-defined breakpoint byte, accepted not produced by most layers
)

// strictLoops gates the optional static check from spec.md §9's Design
// Notes: "the Emitter may snapshot head at start_loop and assert equality
// at end_loop." Mirrors the teacher's PARSEC_DEBUG-style env-var feature
// flags (pkg/hackasm/parsing.go).
func strictLoops() bool {
	return os.Getenv("TAPE_STRICT_LOOPS") != ""
}

// Emitter is the byte-level sink that appends TAPE tokens and maintains a
// signed head tracking the virtual head position after the tokens emitted
// so far. head is always the absolute cell index; origin lets higher layers
// name cells by Pos (an offset from origin) without re-deriving absolute
// indices by hand — see SetOrigin.
type Emitter struct {
	out    io.Writer
	head   Pos
	origin Pos
	loops  utils.Stack[Pos] // one entry per open loop, used by the strict-loop check
}

// NewEmitter returns an Emitter appending tokens to w, head and origin at 0.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{out: w}
}

// Head reports the absolute cell index the physical tape head occupies
// after every token emitted so far.
func (e *Emitter) Head() Pos { return e.head }

// Origin reports the current local-frame origin (see SetOrigin).
func (e *Emitter) Origin() Pos { return e.origin }

// emit appends a single token and updates head for pointer motion. The
// Emitter never inspects the semantic effect of a loop on head — callers
// that open a loop are responsible for seeking back to the condition cell
// before closing it (see Seek.While_).
func (e *Emitter) emit(tok Token) *Emitter {
	if _, err := e.out.Write([]byte{byte(tok)}); err != nil {
		panic(fmt.Sprintf("tape: write failed: %s", err))
	}
	switch tok {
	case TokIncPtr:
		e.head++
	case TokDecPtr:
		e.head--
	}
	return e
}

// IncVal appends '+'. Leaves head unchanged.
func (e *Emitter) IncVal() *Emitter { return e.emit(TokIncVal) }

// DecVal appends '-'. Leaves head unchanged.
func (e *Emitter) DecVal() *Emitter { return e.emit(TokDecVal) }

// IncPtr appends '>'. Advances head by one.
func (e *Emitter) IncPtr() *Emitter { return e.emit(TokIncPtr) }

// DecPtr appends '<'. Retreats head by one.
func (e *Emitter) DecPtr() *Emitter { return e.emit(TokDecPtr) }

// StartLoop appends '[' and, when TAPE_STRICT_LOOPS is set, records head so
// EndLoop can assert the loop left it unchanged.
func (e *Emitter) StartLoop() *Emitter {
	if strictLoops() {
		e.loops.Push(e.head)
	}
	return e.emit(TokStart)
}

// EndLoop appends ']'. The Emitter does not validate bracket matching —
// higher layers guarantee it — but under TAPE_STRICT_LOOPS it does assert
// that head returned to where it was at the matching StartLoop, since every
// primitive in this package that opens a loop re-seeks to the condition
// cell before closing it.
func (e *Emitter) EndLoop() *Emitter {
	if strictLoops() {
		entry, err := e.loops.Pop()
		if err != nil {
			panic("tape: end_loop with no matching start_loop")
		}
		if entry != e.head {
			panic(fmt.Sprintf("tape: loop imbalance: opened at head=%d, closed at head=%d", entry, e.head))
		}
	}
	return e.emit(TokEnd)
}

// Breakpoint appends the implementation-defined breakpoint byte '#'. The
// core never relies on it; it exists so collaborator front ends (e.g. the
// interpreter's optional graphical debugger) can single-step at a known
// program point. See SPEC_FULL.md, "Register-block debug dump".
func (e *Emitter) Breakpoint() *Emitter { return e.emit(TokBreak) }

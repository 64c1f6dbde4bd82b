// Package compiler implements the assembler driver: it walks a resolved
// HACK-ASM program and emits a single TAPE program that simulates it,
// fetch-decode-execute, entirely at the target's own runtime. There is no
// indirect jump on TAPE, so "fetch" means compile-time-unrolling the whole
// instruction list into one guarded block per instruction and testing,
// every pass, which one the current program counter selects.
package compiler

import (
	"fmt"
	"os"

	"go.hackasm.dev/tapec/pkg/hackasm"
	"go.hackasm.dev/tapec/pkg/tape"
)

// scratchPair is the throwaway destination CopyWord needs alongside its
// real target; reused across the driver since none of these calls overlap.
func scratchPair() tape.Word { return tape.Word{tape.T6, tape.T7} }

// probe is the scratch word used whenever Q needs a nondestructive read.
func probe() tape.Word { return tape.Word{tape.T4, tape.T5} }

// emitBreakpoints mirrors the original assembler's per-line debug marker
// (spec.md §6's implementation-defined '#' byte; see SPEC_FULL.md,
// "Register-block debug dump"): when set, the driver drops one breakpoint
// token after every compiled HACK-ASM instruction, giving a collaborator
// interpreter a place to single-step.
func emitBreakpoints() bool {
	return os.Getenv("TAPE_EMIT_BREAKPOINTS") != ""
}

// Compile emits the TAPE program simulating program, starting with every
// register and the whole heap strip at zero (the tape's natural initial
// state) and P at 0. Panics raised by pkg/tape — category-2 compile-time
// assertion failures (spec.md §7.2: scratch aliasing, malformed builder
// nesting, position overflow), never expected from well-formed input
// through the public API — are recovered here and reported as a plain
// error instead of crashing the caller.
func Compile(e *tape.Emitter, program []hackasm.Resolved) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("compiler: internal assertion failed: %v", r)
		}
	}()

	e.WhileCond(tape.FU, probeLive, func(e *tape.Emitter) {
		e.ClearCell(tape.FU)
		e.ClearWord(tape.RegQ)
		e.CopyWord(tape.RegP, tape.RegQ, scratchPair())

		for _, inst := range program {
			dispatchSlot(e, inst)
		}

		fallThrough(e)
	})
	return nil
}

// probeLive recomputes the outer loop's continuation flag. A compiled HACK
// program never halts on its own — well-formed programs spin forever on
// their own closing label loop — so this only ever comes back false if P
// overflows all 16 bits, a case real HACK-ASM programs don't hit.
func probeLive(e *tape.Emitter) {
	e.ClearWord(tape.RegQ)
	e.CopyWord(tape.RegP, tape.RegQ, scratchPair())
	e.IncWord(tape.RegQ)
	e.IsNonzeroWordMove(tape.RegQ, tape.FU)
}

// dispatchSlot emits the guarded block for one compiled instruction: a
// nondestructive zero-test of Q decides whether this is the instruction P
// currently selects, then Q is unconditionally decremented once to step
// toward the next slot.
func dispatchSlot(e *tape.Emitter, inst hackasm.Resolved) {
	e.CopyWord(tape.RegQ, probe(), scratchPair())
	e.IsZeroWordMove(probe(), tape.FL)
	e.IfMove(tape.FL, func(e *tape.Emitter) {
		compileInstruction(e, inst)
		if emitBreakpoints() {
			e.Breakpoint()
		}
	})
	e.DecWord(tape.RegQ)
}

// fallThrough runs once per outer pass after every instruction slot has
// been scanned. Q having drained to exactly zero means P pointed one past
// the last instruction (control fell off the end with no jump); anything
// else means a matching instruction ran (or none exists, which the
// resolver already rejects) and P should simply advance.
func fallThrough(e *tape.Emitter) {
	e.CopyWord(tape.RegQ, probe(), scratchPair())
	e.IsZeroWordMove(probe(), tape.FL)
	e.IfElseMove(tape.FL, tape.FU,
		func(e *tape.Emitter) { e.DecWord(tape.RegP) },
		func(e *tape.Emitter) { e.IncWord(tape.RegP) },
	)
}

func compileInstruction(e *tape.Emitter, inst hackasm.Resolved) {
	switch s := inst.(type) {
	case hackasm.ResolvedA:
		e.SetWord(tape.RegA, s.Addr)
	case hackasm.ResolvedC:
		compileC(e, s)
	}
}

func compileC(e *tape.Emitter, inst hackasm.ResolvedC) {
	if containsRune(inst.Comp, 'M') {
		e.ClearWord(tape.RegM)
		e.ReadMemory()
	}

	compileComp(e, inst.Comp)
	compileDest(e, inst.Dest)
	compileJump(e, inst.Jump)
}

func containsRune(s string, r byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == r {
			return true
		}
	}
	return false
}

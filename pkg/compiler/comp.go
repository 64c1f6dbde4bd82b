package compiler

import "go.hackasm.dev/tapec/pkg/tape"

// compileComp/compileDest/compileJump all route their temporaries through
// RegV and RegW rather than the T0-T8 scratch cells: the word-level
// combinators in package tape already claim most of those internally
// (IsGtZeroMove alone uses T1 through T8), so anything this package needs
// to hold across a call into them has to live somewhere else. V and W are
// not named by any HACK-ASM instruction, which leaves them free for this.

// compileComp emits the effect of one ALU comp term, leaving the result in
// R. Every branch clears R first.
func compileComp(e *tape.Emitter, comp string) {
	e.ClearWord(tape.RegR)

	switch comp {
	case "0":
		// R already zero.
	case "1":
		e.SetWord(tape.RegR, 1)
	case "-1":
		e.SetWord(tape.RegR, 0xFFFF)
	case "D":
		e.CopyWord(tape.RegD, tape.RegR, tape.RegV)
	case "A":
		e.CopyWord(tape.RegA, tape.RegR, tape.RegV)
	case "M":
		e.CopyWord(tape.RegM, tape.RegR, tape.RegV)
	case "!D":
		e.CopyWord(tape.RegD, tape.RegR, tape.RegV)
		compileBinaryNotWord(e, tape.RegR)
	case "!A":
		e.CopyWord(tape.RegA, tape.RegR, tape.RegV)
		compileBinaryNotWord(e, tape.RegR)
	case "!M":
		e.CopyWord(tape.RegM, tape.RegR, tape.RegV)
		compileBinaryNotWord(e, tape.RegR)
	case "-D":
		e.CopyWord(tape.RegD, tape.RegR, tape.RegV)
		compileNegateWord(e, tape.RegR)
	case "-A":
		e.CopyWord(tape.RegA, tape.RegR, tape.RegV)
		compileNegateWord(e, tape.RegR)
	case "-M":
		e.CopyWord(tape.RegM, tape.RegR, tape.RegV)
		compileNegateWord(e, tape.RegR)
	case "D+1":
		e.CopyWord(tape.RegD, tape.RegR, tape.RegV)
		e.IncWord(tape.RegR)
	case "A+1":
		e.CopyWord(tape.RegA, tape.RegR, tape.RegV)
		e.IncWord(tape.RegR)
	case "M+1":
		e.CopyWord(tape.RegM, tape.RegR, tape.RegV)
		e.IncWord(tape.RegR)
	case "D-1":
		e.CopyWord(tape.RegD, tape.RegR, tape.RegV)
		e.DecWord(tape.RegR)
	case "A-1":
		e.CopyWord(tape.RegA, tape.RegR, tape.RegV)
		e.DecWord(tape.RegR)
	case "M-1":
		e.CopyWord(tape.RegM, tape.RegR, tape.RegV)
		e.DecWord(tape.RegR)
	case "D+A":
		e.CopyWord(tape.RegD, tape.RegR, tape.RegV)
		e.AddWord(tape.RegR, tape.RegA, tape.RegV)
	case "D+M":
		e.CopyWord(tape.RegD, tape.RegR, tape.RegV)
		e.AddWord(tape.RegR, tape.RegM, tape.RegV)
	case "D-A":
		e.CopyWord(tape.RegD, tape.RegR, tape.RegV)
		e.SubWord(tape.RegR, tape.RegA, tape.RegV)
	case "D-M":
		e.CopyWord(tape.RegD, tape.RegR, tape.RegV)
		e.SubWord(tape.RegR, tape.RegM, tape.RegV)
	case "A-D":
		e.CopyWord(tape.RegA, tape.RegR, tape.RegV)
		e.SubWord(tape.RegR, tape.RegD, tape.RegV)
	case "M-D":
		e.CopyWord(tape.RegM, tape.RegR, tape.RegV)
		e.SubWord(tape.RegR, tape.RegD, tape.RegV)
	case "D&A":
		compileBinaryWord(e, tape.RegD, tape.RegA, tape.RegR, e.BinaryAnd)
	case "D&M":
		compileBinaryWord(e, tape.RegD, tape.RegM, tape.RegR, e.BinaryAnd)
	case "D|A":
		compileBinaryWord(e, tape.RegD, tape.RegA, tape.RegR, e.BinaryOr)
	case "D|M":
		compileBinaryWord(e, tape.RegD, tape.RegM, tape.RegR, e.BinaryOr)
	}
}

// compileBinaryWord applies a byte-wise bitwise combinator (BinaryAnd or
// BinaryOr, neither of which carries between bytes) to each half of a and
// b independently, preserving both and writing the combined word to dest.
func compileBinaryWord(e *tape.Emitter, a, b, dest tape.Word, op func(a, b, dest tape.Pos) *tape.Emitter) {
	op(a.U, b.U, dest.U)
	op(a.L, b.L, dest.L)
}

// compileBinaryNotWord complements both bytes of w in place via RegW.
func compileBinaryNotWord(e *tape.Emitter, w tape.Word) {
	e.CopyWord(w, tape.RegW, tape.RegV)
	e.ClearWord(w)
	e.BinaryNotMove(tape.RegW.U, w.U)
	e.BinaryNotMove(tape.RegW.L, w.L)
}

// compileNegateWord negates w in place (two's complement: ^w + 1).
func compileNegateWord(e *tape.Emitter, w tape.Word) {
	compileBinaryNotWord(e, w)
	e.IncWord(w)
}

// compileDest clears and writes R into every register dest names, and
// stores through M to the addressed heap cell if M is one of them.
func compileDest(e *tape.Emitter, dest string) {
	if dest == "" {
		return
	}

	if containsRune(dest, 'A') {
		e.ClearWord(tape.RegA)
		e.CopyWord(tape.RegR, tape.RegA, tape.RegV)
	}
	if containsRune(dest, 'D') {
		e.ClearWord(tape.RegD)
		e.CopyWord(tape.RegR, tape.RegD, tape.RegV)
	}
	if containsRune(dest, 'M') {
		e.ClearWord(tape.RegM)
		e.CopyWord(tape.RegR, tape.RegM, tape.RegV)
		e.WriteMemory()
	}
}

// compileJump tests R against the jump condition and, if it holds,
// overwrites P with A minus one: the driver's fall-through unconditionally
// advances P by one after every pass, so landing exactly on the jump
// target means pre-compensating here.
func compileJump(e *tape.Emitter, jump string) {
	if jump == "" {
		return
	}

	takeJump := func(e *tape.Emitter) {
		e.ClearWord(tape.RegP)
		e.CopyWord(tape.RegA, tape.RegP, tape.RegV)
		e.DecWord(tape.RegP)
	}

	if jump == "JMP" {
		takeJump(e)
		return
	}

	e.CopyWord(tape.RegR, tape.RegV, tape.RegW)
	switch jump {
	case "JEQ":
		e.IsZeroWordMove(tape.RegV, tape.FU)
	case "JNE":
		e.IsNonzeroWordMove(tape.RegV, tape.FU)
	case "JLT":
		e.IsLtZeroMove(tape.RegV, tape.FU)
	case "JGT":
		e.IsGtZeroMove(tape.RegV, tape.FU)
	case "JLE":
		e.IsLeZeroMove(tape.RegV, tape.FU)
	case "JGE":
		e.IsGeZeroMove(tape.RegV, tape.FU)
	}
	e.IfMove(tape.FU, takeJump)
}

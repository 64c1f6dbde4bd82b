package tape

// IfMove runs thenBody only if the cell at cond is nonzero, consuming cond
// (it is zero on exit either way). thenBody must not touch cond, but is
// free to leave the head anywhere — cond is reseeked explicitly before
// being cleared, since thenBody almost always ends somewhere else.
func (e *Emitter) IfMove(cond Pos, thenBody func(*Emitter)) *Emitter {
	return e.While_(cond, func(e *Emitter) {
		thenBody(e)
		e.Seek(cond).SetVal(0) // drain in one step: thenBody runs exactly once
	})
}

// IfElseMove runs thenBody if the cell at cond is nonzero, elseBody
// otherwise, consuming cond and a scratch flag cell. flag must be zero on
// entry and is zero again on exit; it records whether the then branch ran
// so the else branch can be skipped without a second read of cond (cond is
// destroyed by the time the flag is tested).
func (e *Emitter) IfElseMove(cond, flag Pos, thenBody, elseBody func(*Emitter)) *Emitter {
	e.Seek(flag).SetVal(1)
	e.While_(cond, func(e *Emitter) {
		thenBody(e)
		e.Seek(flag).ClearVal()
		e.Seek(cond).SetVal(0)
	})
	return e.While_(flag, func(e *Emitter) {
		elseBody(e)
		e.Seek(flag).ClearVal()
	})
}

// LogicalNotMove writes 1 to dest if the cell at src is zero, 0 otherwise,
// consuming src. dest must be zero on entry.
func (e *Emitter) LogicalNotMove(src, dest Pos) *Emitter {
	e.Seek(dest).SetVal(1)
	return e.While_(src, func(e *Emitter) {
		e.DecVal()
		e.Seek(dest).ClearVal()
		e.Seek(src)
	})
}

// LogicalNot writes the logical negation of src into dest, preserving src,
// via temp (zero on entry, zero on exit).
func (e *Emitter) LogicalNot(src, dest, temp Pos) *Emitter {
	e.CopyCell(src, dest, temp) // dest (still zero) serves as the copy's temp
	return e.LogicalNotMove(temp, dest)
}

// LogicalOrMove writes 1 to dest if either src cell is nonzero, consuming
// both. dest must be zero on entry.
func (e *Emitter) LogicalOrMove(a, b, dest Pos) *Emitter {
	e.IfMove(a, func(e *Emitter) { e.Seek(dest).SetVal(1) })
	return e.IfMove(b, func(e *Emitter) { e.Seek(dest).SetVal(1) })
}

// LogicalOr writes the logical or of a and b into dest, preserving both, via
// ta and tb (zero on entry, zero on exit). CopyCell's temp must be distinct
// from its dest, so the two copies borrow each other's destination cell
// (still zero at that point) as their temp rather than reusing their own.
func (e *Emitter) LogicalOr(a, b, dest, ta, tb Pos) *Emitter {
	e.CopyCell(a, tb, ta)
	e.CopyCell(b, dest, tb)
	return e.LogicalOrMove(ta, tb, dest)
}

// LogicalAndMove writes 1 to dest if both src cells are nonzero, consuming
// both. dest and flag must be zero on entry; flag is zero again on exit.
func (e *Emitter) LogicalAndMove(a, b, dest, flag Pos) *Emitter {
	e.IfMove(a, func(e *Emitter) { e.Seek(flag).IncVal() })
	e.IfMove(b, func(e *Emitter) {
		e.IfMove(flag, func(e *Emitter) { e.Seek(dest).SetVal(1) })
	})
	return e.ClearCell(flag) // b==0 leaves flag set from a's branch; drain unconditionally
}

// LogicalAnd writes the logical and of a and b into dest, preserving both,
// via ta, tb and flag (all zero on entry, zero again on exit). As in
// LogicalOr, each copy borrows a still-zero cell it doesn't otherwise need
// yet (flag, then dest) as its temp instead of aliasing its own dest.
func (e *Emitter) LogicalAnd(a, b, dest, ta, tb, flag Pos) *Emitter {
	e.CopyCell(a, flag, ta)
	e.CopyCell(b, dest, tb)
	return e.LogicalAndMove(ta, tb, dest, flag)
}

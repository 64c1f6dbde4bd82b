package tape

// Seek emits the minimal `<`/`>` run to reach cell p (named relative to the
// current origin) from the current head, and sets head accordingly. Emits
// nothing if already there.
func (e *Emitter) Seek(p Pos) *Emitter {
	return e.ChangePtrBy(int(e.origin+p) - int(e.head))
}

// SetOrigin re-anchors the local coordinate frame without emitting any
// tokens, so that the current physical head corresponds to logical position
// p under the new frame. This is the "re-anchor the head inside an
// uninitialized region" trick the memory protocol (memory.go) uses to walk
// forward through the heap strip while reusing the same small set of
// relative offsets on every iteration.
func (e *Emitter) SetOrigin(p Pos) *Emitter {
	e.origin = e.head - p
	return e
}

// While_ seeks to cond, opens a loop, runs body, re-seeks to cond, and
// closes the loop. Precondition: body must leave scratch clean and must not
// assume it will be re-entered from elsewhere. Postcondition: head == cond
// and the cell at cond is zero.
func (e *Emitter) While_(cond Pos, body func(*Emitter)) *Emitter {
	e.Seek(cond)
	return e.Loop(func(e *Emitter) {
		body(e)
		e.Seek(cond)
	})
}

// WhileCond wraps a loop whose continuation test is itself compiled code.
// condBuilder runs once before the loop opens (to establish the initial
// value at cond) and once more at the tail of every iteration (to recompute
// it) before the loop closes — used where the continuation is a derived
// condition rather than a single cell being drained to zero (e.g. the
// memory protocol's walk-out loop, memory.go).
func (e *Emitter) WhileCond(cond Pos, condBuilder, body func(*Emitter)) *Emitter {
	condBuilder(e)
	e.Seek(cond)
	return e.Loop(func(e *Emitter) {
		body(e)
		condBuilder(e)
		e.Seek(cond)
	})
}

// ClearCell seeks to each listed position in turn and zeroes it.
func (e *Emitter) ClearCell(positions ...Pos) *Emitter {
	for _, p := range positions {
		e.Seek(p).ClearVal()
	}
	return e
}

// MoveCell emits the canonical draining loop at src that decrements src and
// increments each dest once per iteration. Destroys src (leaves it zero);
// every dest is incremented by the original value of src.
func (e *Emitter) MoveCell(src Pos, dests ...Pos) *Emitter {
	return e.While_(src, func(e *Emitter) {
		e.DecVal()
		for _, d := range dests {
			e.Seek(d).IncVal()
		}
		e.Seek(src)
	})
}

// CopyCell copies src's value into every dest via temp, restoring src
// (non-destructive). temp must be distinct from src and every dest, and
// must be zero on entry; it is zero again on exit.
func (e *Emitter) CopyCell(src Pos, temp Pos, dests ...Pos) *Emitter {
	all := append(append([]Pos{}, dests...), temp)
	e.MoveCell(src, all...)
	return e.MoveCell(temp, src)
}

// here returns the origin-relative Pos naming the cell currently under the
// head, so it can be handed back to Seek later.
func (e *Emitter) here() Pos {
	return e.head - e.origin
}

// HereMoveInto drains the cell currently under the head into every named
// dest, leaving head back where it started. Used inside the memory
// protocol, where the target heap group has no compile-time Pos and must
// be addressed through the physical head directly.
func (e *Emitter) HereMoveInto(dests ...Pos) *Emitter {
	start := e.here()
	return e.Loop(func(e *Emitter) {
		e.DecVal()
		for _, d := range dests {
			e.Seek(d).IncVal()
		}
		e.Seek(start)
	})
}

// HereClear zeroes the cell currently under the head.
func (e *Emitter) HereClear() *Emitter {
	return e.ClearVal()
}

// HereSetFrom drains src into the cell currently under the head (the
// mirror image of HereMoveInto).
func (e *Emitter) HereSetFrom(src Pos) *Emitter {
	start := e.here()
	return e.While_(src, func(e *Emitter) {
		e.DecVal()
		e.Seek(start).IncVal()
		e.Seek(src)
	})
}

// WhileWord runs body once per unit of w (draining w to zero), re-deriving
// a single-cell nonzero flag from w at the top of every pass since a loop
// bracket can only test one cell directly. probe, scratch, flag must be
// zero on entry; all are zero again on exit. Used wherever a runtime count
// is carried as a full 16-bit word rather than a single byte (the memory
// protocol's address walk).
func (e *Emitter) WhileWord(w, probe, scratch Word, flag Pos, body func(*Emitter)) *Emitter {
	condBuilder := func(e *Emitter) {
		e.ClearCell(flag) // LogicalOrMove below needs a zero dest on every pass
		e.CopyWord(w, probe, scratch)
		e.IsNonzero(probe.U, scratch.U)
		e.IsNonzero(probe.L, scratch.L)
		e.LogicalOrMove(scratch.U, scratch.L, flag)
	}
	return e.WhileCond(flag, condBuilder, func(e *Emitter) {
		e.DecWord(w)
		body(e)
	})
}

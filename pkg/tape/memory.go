package tape

// ReadMemory and WriteMemory implement the indirect-memory "walk and
// return" protocol: the heap strip backing HACK-ASM's RAM/Screen address
// space has no random-access primitive, so reaching the group addressed by
// A means physically driving the head there one 3-cell group at a time. A
// carried copy of A is decremented once per group advanced; a second,
// independent copy is kept untouched so the same distance can be walked
// back afterwards. This mirrors the forward/backward walk in the original
// memory choreography, with the breadcrumb-trail variant simplified to a
// second counted copy of the address — cheaper to reason about at the cost
// of one extra word of scratch.

func (e *Emitter) walkToHeap(fwd Word) *Emitter {
	return e.WhileWord(fwd, Word{T6, T7}, Word{T4, T5}, T8, func(e *Emitter) {
		e.IncPtrBy(3)
	})
}

func (e *Emitter) walkFromHeap(back Word) *Emitter {
	return e.WhileWord(back, Word{T6, T7}, Word{T4, T5}, T8, func(e *Emitter) {
		e.DecPtrBy(3)
	})
}

// ReadMemory sets M to the value stored in the heap group addressed by A,
// preserving A.
func (e *Emitter) ReadMemory() *Emitter {
	fwd, back := Word{T0, T1}, Word{T2, T3}
	e.CopyCell(RegA.U, T8, fwd.U, back.U)
	e.CopyCell(RegA.L, T8, fwd.L, back.L)

	e.walkToHeap(fwd)
	// head now sits on the target group's hi cell (the group itself has no
	// compile-time Pos, so it is addressed directly through the physical
	// head rather than through Seek).
	e.ClearCell(RegM.U, RegM.L)
	e.HereMoveInto(RegM.U)
	e.IncPtr()
	e.HereMoveInto(RegM.L)
	e.DecPtr()

	return e.walkFromHeap(back)
}

// WriteMemory stores M into the heap group addressed by A, preserving A.
func (e *Emitter) WriteMemory() *Emitter {
	fwd, back := Word{T0, T1}, Word{T2, T3}
	e.CopyCell(RegA.U, T8, fwd.U, back.U)
	e.CopyCell(RegA.L, T8, fwd.L, back.L)

	hold := Word{T4, T5}
	e.MoveCell(RegM.U, hold.U)
	e.MoveCell(RegM.L, hold.L)

	e.walkToHeap(fwd)
	e.HereClear()
	e.HereSetFrom(hold.U)
	e.IncPtr()
	e.HereClear()
	e.HereSetFrom(hold.L)
	e.DecPtr()

	return e.walkFromHeap(back)
}

package tape

// Loop runs body bracketed by StartLoop/EndLoop. body must leave head
// exactly where it found it — the Emitter's strict-loop check (when
// enabled) will panic otherwise.
func (e *Emitter) Loop(body func(*Emitter)) *Emitter {
	e.StartLoop()
	body(e)
	return e.EndLoop()
}

// ClearVal zeroes the current cell with the canonical `[-]` draining loop.
func (e *Emitter) ClearVal() *Emitter {
	return e.Loop(func(e *Emitter) { e.DecVal() })
}

// IncValBy appends n '+' tokens.
func (e *Emitter) IncValBy(n uint8) *Emitter {
	for i := uint8(0); i < n; i++ {
		e.IncVal()
	}
	return e
}

// DecValBy appends n '-' tokens.
func (e *Emitter) DecValBy(n uint8) *Emitter {
	for i := uint8(0); i < n; i++ {
		e.DecVal()
	}
	return e
}

// SetVal clears the current cell then sets it to n.
func (e *Emitter) SetVal(n uint8) *Emitter {
	return e.ClearVal().IncValBy(n)
}

// IncPtrBy moves the head right by n cells.
func (e *Emitter) IncPtrBy(n int) *Emitter {
	for i := 0; i < n; i++ {
		e.IncPtr()
	}
	return e
}

// DecPtrBy moves the head left by n cells.
func (e *Emitter) DecPtrBy(n int) *Emitter {
	for i := 0; i < n; i++ {
		e.DecPtr()
	}
	return e
}

// ChangePtrBy moves the head by delta cells (either direction).
func (e *Emitter) ChangePtrBy(delta int) *Emitter {
	switch {
	case delta < 0:
		return e.DecPtrBy(-delta)
	case delta > 0:
		return e.IncPtrBy(delta)
	default:
		return e
	}
}

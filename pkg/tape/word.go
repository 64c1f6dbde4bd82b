package tape

// MoveWord drains src into dest cell-by-cell (U then L). Destroys src.
func (e *Emitter) MoveWord(src, dest Word) *Emitter {
	e.MoveCell(src.U, dest.U)
	return e.MoveCell(src.L, dest.L)
}

// CopyWord copies src into dest via temp, preserving src. temp must be zero
// on entry and is zero again on exit.
func (e *Emitter) CopyWord(src, dest, temp Word) *Emitter {
	e.CopyCell(src.U, temp.U, dest.U)
	return e.CopyCell(src.L, temp.L, dest.L)
}

// SetWord clears w then sets it to the 16-bit value n (hi byte first).
func (e *Emitter) SetWord(w Word, n uint16) *Emitter {
	e.Seek(w.U).SetVal(uint8(n >> 8))
	return e.Seek(w.L).SetVal(uint8(n))
}

// ClearWord zeroes both cells of w.
func (e *Emitter) ClearWord(w Word) *Emitter {
	return e.ClearCell(w.U, w.L)
}

// IsZero writes 1 to dest if the byte at src is zero, 0 otherwise, consuming
// src. dest must be zero on entry. Single-cell predicate, identical to a
// logical not.
func (e *Emitter) IsZero(src, dest Pos) *Emitter {
	return e.LogicalNotMove(src, dest)
}

// IsNonzero writes 1 to dest if the byte at src is nonzero, 0 otherwise,
// consuming src. dest must be zero on entry.
func (e *Emitter) IsNonzero(src, dest Pos) *Emitter {
	return e.IfMove(src, func(e *Emitter) { e.Seek(dest).SetVal(1) })
}

// IsZeroWordMove writes 1 to dest if w is the all-zero word, consuming w.
// dest must be zero on entry; uses T6, T7, T8 as scratch.
func (e *Emitter) IsZeroWordMove(w Word, dest Pos) *Emitter {
	e.IsZero(w.U, T6)
	e.IsZero(w.L, T7)
	return e.LogicalAndMove(T6, T7, dest, T8)
}

// IsNonzeroWordMove writes 1 to dest if w is nonzero, consuming w. dest
// must be zero on entry; uses T6, T7 as scratch.
func (e *Emitter) IsNonzeroWordMove(w Word, dest Pos) *Emitter {
	e.IsNonzero(w.U, T6)
	e.IsNonzero(w.L, T7)
	return e.LogicalOrMove(T6, T7, dest)
}

// IncWord increments w as a 16-bit value, carrying from L into U when L
// wraps from 255 to 0. IsZero consumes its src, so the carry test runs
// against a throwaway copy of L (CopyCell into T7, via T8 as temp) rather
// than L itself, per spec §4.4: "the carry test uses a copy-and-branch
// idiom so L is preserved."
func (e *Emitter) IncWord(w Word) *Emitter {
	e.Seek(w.L).IncVal()
	e.CopyCell(w.L, T8, T7)
	e.IsZero(T7, T8)
	return e.IfMove(T8, func(e *Emitter) { e.Seek(w.U).IncVal() })
}

// DecWord decrements w as a 16-bit value, borrowing from U into L when L
// underflows from 0 to 255. The borrow condition is tested before L is
// decremented, since afterwards the wrap has already happened; as in
// IncWord, the test runs against a throwaway copy (T7, via T8 as temp) so
// L survives the consuming IsZero.
func (e *Emitter) DecWord(w Word) *Emitter {
	e.CopyCell(w.L, T8, T7) // T7 = copy of L, L preserved, T8 restored to 0
	e.IsZero(T7, T8)        // T8 = 1 iff L == 0, consuming the probe copy
	e.Seek(w.L).DecVal()
	return e.IfMove(T8, func(e *Emitter) { e.Seek(w.U).DecVal() })
}

// byteHalf divides the byte at src by two, writing the quotient to quot and
// the remainder (0 or 1) to rem, consuming src. quot and rem must be zero on
// entry. Implemented with the classic flip-flop trick: every second unit
// drained from src bumps quot, and rem tracks which half of the current
// pair has been seen so far.
func (e *Emitter) byteHalf(src, quot, rem Pos) *Emitter {
	return e.While_(src, func(e *Emitter) {
		e.DecVal()
		e.Seek(rem)
		e.IfElseMove(rem, T8,
			func(e *Emitter) { e.Seek(quot).IncVal() }, // rem was 1: pair complete
			func(e *Emitter) { e.Seek(rem).SetVal(1) }, // rem was 0: half a pair seen
		)
		e.Seek(src)
	})
}

// signBit writes the most significant bit of the byte at src (0 or 1) to
// dest using the scratch pair (quot, rem), consuming src. dest, quot and rem
// must be zero on entry. Computed by halving seven times and keeping only
// the final quotient — v>>7 isolates bit 7 without a dedicated shift
// primitive; rem is reused as the halving remainder on every round and
// cleared between rounds.
func (e *Emitter) signBit(src, dest, quot, rem Pos) *Emitter {
	e.byteHalf(src, quot, rem)
	e.ClearCell(rem)
	for i := 0; i < 6; i++ {
		e.MoveCell(quot, rem) // rem borrowed again as this round's source
		e.byteHalf(rem, quot, dest)
		e.ClearCell(dest)
	}
	return e.MoveCell(quot, dest)
}

// IsLtZeroMove writes 1 to dest if the word at w is negative (MSB of U set)
// under two's-complement interpretation, consuming w. dest must be zero on
// entry; uses T7, T8 as scratch (and the consumed w.L as a working cell).
func (e *Emitter) IsLtZeroMove(w Word, dest Pos) *Emitter {
	e.ClearCell(w.L)
	return e.signBit(w.U, dest, w.L, T7)
}

// IsGeZeroMove writes 1 to dest if the word at w is non-negative, consuming
// w. dest must be zero on entry; uses T6, T7, T8 as scratch.
func (e *Emitter) IsGeZeroMove(w Word, dest Pos) *Emitter {
	e.IsLtZeroMove(w, T6)
	return e.LogicalNotMove(T6, dest)
}

// IsGtZeroMove writes 1 to dest if the word at w is strictly positive,
// consuming w. dest must be zero on entry; uses T1-T8 as scratch.
func (e *Emitter) IsGtZeroMove(w Word, dest Pos) *Emitter {
	probe := Word{T4, T5}
	e.CopyWord(w, probe, Word{T2, T3})
	e.IsGeZeroMove(w, T1)
	e.IsNonzeroWordMove(probe, T2)
	return e.LogicalAndMove(T1, T2, dest, T8)
}

// IsLeZeroMove writes 1 to dest if the word at w is zero or negative,
// consuming w. dest must be zero on entry; uses T0-T8 as scratch.
func (e *Emitter) IsLeZeroMove(w Word, dest Pos) *Emitter {
	e.IsGtZeroMove(w, T0)
	return e.LogicalNotMove(T0, dest)
}

// AddWordMove adds the word at b into a in place (a += b, 16-bit
// wraparound), consuming b one unit at a time via repeated IncWord. a need
// not be zero on entry.
func (e *Emitter) AddWordMove(a, b Word) *Emitter {
	return e.While_(b.L, func(e *Emitter) {
		e.DecVal()
		e.IncWord(a)
		e.Seek(b.L)
	}).subAddCarryFromHi(a, b)
}

// subAddCarryFromHi folds the high byte of b into a after AddWordMove has
// drained b.L, by repeatedly adding 256 to a (one increment of a.U) per unit
// of b.U.
func (e *Emitter) subAddCarryFromHi(a, b Word) *Emitter {
	return e.While_(b.U, func(e *Emitter) {
		e.DecVal()
		e.Seek(a.U).IncVal()
		e.Seek(b.U)
	})
}

// AddWord adds b into a in place, preserving b, via temp (a Word, both
// cells zero on entry, zero again on exit).
func (e *Emitter) AddWord(a, b, temp Word) *Emitter {
	e.CopyWord(b, temp, Word{T1, T2})
	return e.AddWordMove(a, temp)
}

// SubWordMove subtracts the word at b from a in place (a -= b, 16-bit
// wraparound), consuming b one unit at a time via repeated DecWord.
func (e *Emitter) SubWordMove(a, b Word) *Emitter {
	e.While_(b.L, func(e *Emitter) {
		e.DecVal()
		e.DecWord(a)
		e.Seek(b.L)
	})
	return e.While_(b.U, func(e *Emitter) {
		e.DecVal()
		// Subtracting one unit of the high byte is equivalent to 256 units
		// of the low byte, which collapses to a single high-byte borrow.
		e.decWordByByte(a)
		e.Seek(b.U)
	})
}

// decWordByByte subtracts 256 from w (i.e. decrements w.U by one, the
// two's-complement equivalent of 256 low-byte borrows) without touching
// w.L.
func (e *Emitter) decWordByByte(w Word) *Emitter {
	return e.Seek(w.U).DecVal()
}

// SubWord subtracts b from a in place, preserving b, via temp (a Word, both
// cells zero on entry, zero again on exit).
func (e *Emitter) SubWord(a, b, temp Word) *Emitter {
	e.CopyWord(b, temp, Word{T1, T2})
	return e.SubWordMove(a, temp)
}

package tape

// Bitwise extension: the comp-term extension (D&A, D|A and friends) needs
// byte-level and/or/not beyond the predicate-oriented logical combinators
// in branch.go, which only ever produce a 0/1 flag. Grounded in the
// original binary-arithmetic traits (mul_two_move_cell, div_mod_two_cell,
// binary_not/and/or) but reworked around this package's fixed nine-cell
// scratch budget: every helper below processes one bit at a time instead
// of decomposing a whole byte up front, so it only ever needs a handful of
// scratch cells regardless of word width.

// MulTwoMoveCell doubles the byte at src, writing the result to dest,
// consuming src. dest must be zero on entry.
func (e *Emitter) MulTwoMoveCell(src, dest Pos) *Emitter {
	return e.While_(src, func(e *Emitter) {
		e.DecVal()
		e.Seek(dest).IncValBy(2)
		e.Seek(src)
	})
}

// DivModTwoCell divides the byte at src by two, writing the quotient to
// quot and the remainder (0 or 1) to rem, consuming src. quot and rem must
// be zero on entry; uses T8 as scratch. Exposes byteHalf (word.go) as part
// of the public bitwise extension surface.
func (e *Emitter) DivModTwoCell(src, quot, rem Pos) *Emitter {
	return e.byteHalf(src, quot, rem)
}

// BinaryNotMove writes the bitwise complement of the byte at src to dest
// (255-v), consuming src. dest must be zero on entry.
func (e *Emitter) BinaryNotMove(src, dest Pos) *Emitter {
	e.Seek(dest).SetVal(255)
	return e.While_(src, func(e *Emitter) {
		e.DecVal()
		e.Seek(dest).DecVal()
		e.Seek(src)
	})
}

// BinaryNot writes the bitwise complement of src into dest, preserving src,
// via temp (zero on entry, zero on exit).
func (e *Emitter) BinaryNot(src, dest, temp Pos) *Emitter {
	e.CopyCell(src, dest, temp) // dest (still zero) serves as the copy's temp
	return e.BinaryNotMove(temp, dest)
}

// bitOf extracts bit i (0 = LSB) of the byte at src into dest via i+1
// rounds of halving, preserving src via a throwaway copy in hold. dest and
// hold must be zero on entry; both scratch cells quot/rem are cleared
// between rounds so they can be reused. The initial copy into hold needs a
// temp distinct from hold itself, so quot is cleared and borrowed for that
// one call before the round loop claims it.
func (e *Emitter) bitOf(src Pos, i int, dest, hold, quot, rem Pos) *Emitter {
	e.ClearCell(quot)
	e.CopyCell(src, quot, hold)
	for round := 0; round <= i; round++ {
		e.ClearCell(quot, rem)
		e.byteHalf(hold, quot, rem)
		if round == i {
			e.ClearCell(quot)
			return e.MoveCell(rem, dest)
		}
		e.ClearCell(rem)
		e.MoveCell(quot, hold) // the quotient is the next round's source
	}
	return e
}

// bitwiseCombine implements the shared shape behind BinaryAnd/BinaryOr: for
// each of the 8 bit positions (LSB first), extract that bit from both a and
// b (preserving both), combine the pair with combine into a 0/1 cell, and
// fold it into the accumulator weighted by the current power of two —
// doubling the weight, not the accumulator, avoids ever needing to hold
// more than one bit position's worth of state at a time, which matters
// since the whole register block only carries nine scratch cells. a and b
// are preserved; dest must be zero on entry.
func (e *Emitter) bitwiseCombine(a, b, dest Pos, combine func(e *Emitter, x, y, out Pos)) *Emitter {
	weight := T3
	e.Seek(weight).SetVal(1)
	for i := 0; i < 8; i++ {
		e.ClearCell(T8)
		e.bitOf(a, i, T8, T7, T6, T5)
		e.MoveCell(T8, T4) // a's bit, parked in T4

		e.ClearCell(T8)
		e.bitOf(b, i, T8, T7, T6, T5)
		e.MoveCell(T8, T2) // b's bit, parked in T2; T8 free again for combine's own use

		e.ClearCell(T1)
		combine(e, T4, T2, T1) // combined bit, 0 or 1

		e.IfMove(T1, func(e *Emitter) {
			e.CopyCell(weight, T0, dest) // dest += weight, weight preserved
		})

		if i < 7 {
			e.ClearCell(T4)
			e.MulTwoMoveCell(weight, T4)
			e.MoveCell(T4, weight)
		}
	}
	return e.ClearCell(weight)
}

// BinaryAnd writes the bitwise AND of the bytes at a and b to dest,
// preserving both. dest must be zero on entry.
func (e *Emitter) BinaryAnd(a, b, dest Pos) *Emitter {
	return e.bitwiseCombine(a, b, dest, func(e *Emitter, x, y, out Pos) {
		e.LogicalAndMove(x, y, out, T8)
	})
}

// BinaryOr writes the bitwise OR of the bytes at a and b to dest,
// preserving both. dest must be zero on entry.
func (e *Emitter) BinaryOr(a, b, dest Pos) *Emitter {
	return e.bitwiseCombine(a, b, dest, func(e *Emitter, x, y, out Pos) {
		e.LogicalOrMove(x, y, out)
	})
}

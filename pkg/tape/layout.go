// Package tape is a statically layered library of combinators that emit
// TAPE programs (the eight-token alphabet `+ - > < [ ] , .`) while tracking
// the virtual head position at compile time.
//
// The layers, leaves first, mirror the seven-layer design of the system
// this package implements: Emitter (this file + emitter.go), Core (core.go),
// Seek (seek.go), Branch & logic (branch.go), 16-bit arithmetic and
// predicates (word.go), indirect memory (memory.go), and an optional
// bitwise extension (binary.go). The assembler driver built on top lives in
// package compiler.
package tape

// Pos names a tape cell by offset from a compile-time origin. Positions may
// be negative inside a local frame established by Emitter.SetOrigin — the
// memory protocol re-anchors the origin inside an uninitialized region of
// the heap strip and indexes back toward the register block with negative
// offsets.
type Pos int

// Word is a pair of positions: U holds the more significant byte, L the
// less significant one. The integer value denoted is 256*cells[U] + cells[L].
type Word struct {
	U, L Pos
}

// Register block layout (spec §6). Nine named words in 3-cell groups of
// (byte, byte, gap); the gap cells are the scratch positions T0..T8.
const (
	AU Pos = 0
	AL Pos = 1
	T0 Pos = 2
	DU Pos = 3
	DL Pos = 4
	T1 Pos = 5
	MU Pos = 6
	ML Pos = 7
	T2 Pos = 8
	PU Pos = 9
	PL Pos = 10
	T3 Pos = 11
	QU Pos = 12
	QL Pos = 13
	T4 Pos = 14
	RU Pos = 15
	RL Pos = 16
	T5 Pos = 17
	FU Pos = 18
	FL Pos = 19
	T6 Pos = 20
	VU Pos = 21
	VL Pos = 22
	T7 Pos = 23
	WU Pos = 24
	WL Pos = 25
	T8 Pos = 26
)

// The nine named registers as words.
var (
	RegA = Word{AU, AL}
	RegD = Word{DU, DL}
	RegM = Word{MU, ML}
	RegP = Word{PU, PL}
	RegQ = Word{QU, QL}
	RegR = Word{RU, RL}
	RegF = Word{FU, FL}
	RegV = Word{VU, VL}
	RegW = Word{WU, WL}
)

// Scratch returns the T0..T8 reserved scratch cells in register-block order.
var Scratch = [9]Pos{T0, T1, T2, T3, T4, T5, T6, T7, T8}

// RegisterBlockSize is the fixed 27-cell prefix of the tape.
const RegisterBlockSize Pos = 27

// Heap strip sizing (spec §6). RAM is placed before the screen region so
// that the heap-group offset for a HACK-ASM address is the address itself:
// SCREEN (address 16384) immediately follows RAM (16384 words), which only
// holds if RAM occupies the low addresses physically (see SPEC_FULL.md,
// "Memory layout — resolved ambiguity").
const (
	RAMWords     = 16384
	ScreenWords  = 8192
	HeapWords    = RAMWords + ScreenWords // 24576, contiguous address space
	KeyboardSize = 3
)

// HeapStripStart is the first cell of the heap strip (first RAM group).
const HeapStripStart Pos = RegisterBlockSize

// KeyboardStart is the position of the final 3-cell keyboard group.
const KeyboardStart Pos = HeapStripStart + Pos(3*HeapWords)

// KeyboardCell holds the last injected key code (the keyboard group's lower byte).
const KeyboardCell Pos = KeyboardStart + 1

// TapeSize is the total number of cells the emitted program addresses.
const TapeSize Pos = KeyboardStart + KeyboardSize

// HeapGroup returns the position of the first (hi) cell of the 3-cell group
// backing HACK-ASM heap address addr (addr in [0, HeapWords)). The group's
// three cells are (HeapGroup(addr), HeapGroup(addr)+1, HeapGroup(addr)+2):
// (hi, lo, gap).
func HeapGroup(addr uint16) Pos {
	return HeapStripStart + Pos(3*int(addr))
}

// MaxAddressableMemory is the upper bound (exclusive) for A-instruction
// addresses: only 15 bits are available since the opcode bit is fixed to 0.
const MaxAddressableMemory uint16 = 1 << 15

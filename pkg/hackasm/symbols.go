package hackasm

// SymbolTable maps every label, built-in and lazily allocated variable
// name to its resolved address.
type SymbolTable map[string]uint16

// builtInTable lists the predefined symbols of the HACK-ASM architecture:
// the VM's calling-convention aliases, the sixteen general-purpose
// registers, and the two memory-mapped I/O bases.
var builtInTable = SymbolTable{
	"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
	"R0": 0, "R1": 1, "R2": 2, "R3": 3, "R4": 4, "R5": 5,
	"R6": 6, "R7": 7, "R8": 8, "R9": 9, "R10": 10, "R11": 11,
	"R12": 12, "R13": 13, "R14": 14, "R15": 15,
	"SCREEN": 16384, "KBD": 24576,
}

// firstVariableAddress is where lazily allocated variables start; 0-15 are
// reserved for the R0-R15 aliases.
const firstVariableAddress uint16 = 16

// ScanSymbols performs the first resolution pass: it walks the program
// once, recording every LabelDecl's address (the index, in the label-free
// instruction stream, of the instruction immediately following it) without
// yet touching A-instruction operands. Mirrors the original assembler's
// two-phase scan_symbols/assemble split, done once up front so the second
// pass can resolve forward references.
//
// Rejects a label that redeclares a name already bound — whether a
// reserved built-in (spec.md §7.1 "predefined-symbol redefinition") or an
// earlier label in the same program (§7.1 "duplicate label") — since
// either would silently discard the first binding's address.
func ScanSymbols(program Program) (SymbolTable, error) {
	table := make(SymbolTable, len(builtInTable))
	builtIn := make(map[string]bool, len(builtInTable))
	for k, v := range builtInTable {
		table[k] = v
		builtIn[k] = true
	}

	declared := make(map[string]bool)
	var pc uint16
	for _, stmt := range program {
		switch s := stmt.(type) {
		case LabelDecl:
			if builtIn[s.Name] {
				return nil, &RedefinedSymbolError{Name: s.Name}
			}
			if declared[s.Name] {
				return nil, &DuplicateLabelError{Name: s.Name}
			}
			declared[s.Name] = true
			table[s.Name] = pc
		default:
			pc++
		}
	}
	return table, nil
}

// Resolve performs the second pass: drops label declarations, resolves
// every A-instruction operand (raw literal, built-in/label via table, or a
// newly seen identifier lazily allocated the next free RAM slot starting at
// 16), and returns the flat, directly executable instruction stream.
func Resolve(program Program, table SymbolTable) ([]Resolved, error) {
	out := make([]Resolved, 0, len(program))
	nextVar := firstVariableAddress

	for _, stmt := range program {
		switch s := stmt.(type) {
		case LabelDecl:
			continue
		case AInstruction:
			addr, err := resolveAddress(s.Location, table, &nextVar)
			if err != nil {
				return nil, err
			}
			out = append(out, ResolvedA{Addr: addr})
		case CInstruction:
			out = append(out, ResolvedC{Comp: s.Comp, Dest: s.Dest, Jump: s.Jump})
		}
	}
	return out, nil
}

func resolveAddress(location string, table SymbolTable, nextVar *uint16) (uint16, error) {
	if n, ok := parseDecimal(location); ok {
		if n >= MaxAddressableMemory {
			return 0, newResolveError(location)
		}
		return n, nil
	}

	if addr, ok := table[location]; ok {
		return addr, nil
	}

	if *nextVar >= MaxAddressableMemory {
		return 0, &TooManyVariablesError{Location: location}
	}

	addr := *nextVar
	table[location] = addr
	*nextVar++
	return addr, nil
}

func parseDecimal(s string) (uint16, bool) {
	if s == "" {
		return 0, false
	}
	var n uint32
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + uint32(r-'0')
		if n > uint32(MaxAddressableMemory) {
			return MaxAddressableMemory, true // caller rejects out-of-range values
		}
	}
	return uint16(n), true
}

func newResolveError(location string) error {
	return &ResolveError{Location: location}
}

// ResolveError reports an A-instruction operand that resolved to an
// out-of-bound address.
type ResolveError struct {
	Location string
}

func (e *ResolveError) Error() string {
	return "hackasm: location '" + e.Location + "' resolved to an address out of bounds"
}

// TooManyVariablesError reports a lazily allocated variable that would
// exceed the 15-bit addressable range (spec.md §7.1 "too many variables").
type TooManyVariablesError struct {
	Location string
}

func (e *TooManyVariablesError) Error() string {
	return "hackasm: variable '" + e.Location + "' exceeds the addressable RAM range (>2^15 variables)"
}

// DuplicateLabelError reports a label declared more than once in the same
// program (spec.md §7.1 "duplicate label").
type DuplicateLabelError struct {
	Name string
}

func (e *DuplicateLabelError) Error() string {
	return "hackasm: label '" + e.Name + "' declared more than once"
}

// RedefinedSymbolError reports a label declaration that shadows a
// predefined symbol (spec.md §7.1 "predefined-symbol redefinition").
type RedefinedSymbolError struct {
	Name string
}

func (e *RedefinedSymbolError) Error() string {
	return "hackasm: label '" + e.Name + "' redefines a predefined symbol"
}

package hackasm

import "io"

// Assemble runs the full front end over r: parse, scan labels, resolve
// addresses. It is the single entry point package compiler needs.
func Assemble(r io.Reader) ([]Resolved, error) {
	parser := NewParser(r)
	program, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	table, err := ScanSymbols(program)
	if err != nil {
		return nil, err
	}
	return Resolve(program, table)
}

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/teris-io/cli"
	"go.hackasm.dev/tapec/pkg/compiler"
	"go.hackasm.dev/tapec/pkg/hackasm"
	"go.hackasm.dev/tapec/pkg/tape"
)

var Description = strings.ReplaceAll(`
tapec takes a HACK-ASM program and compiles it into a single TAPE program
that simulates the assembly program's execution, register for register and
memory cell for memory cell, on a plain eight-instruction tape machine. The
process runs the HACK-ASM front end (parse, scan labels, resolve symbols)
and then emits one guarded block of TAPE per instruction.
`, "\n", " ")

var Tapec = cli.New(Description).
	WithArg(cli.NewArg("input", "The HACK-ASM (.asm) file to be compiled")).
	WithArg(cli.NewArg("output", "The compiled TAPE output")).
	WithAction(Handler)

func Handler(args []string, options map[string]string) int {
	input, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("ERROR: Unable to open input file: %s\n", err)
		return -1
	}

	output, err := os.Create(args[1])
	if err != nil {
		fmt.Printf("ERROR: Unable to open output file: %s\n", err)
		return -1
	}
	defer output.Close()

	program, err := hackasm.Assemble(bytes.NewReader(input))
	if err != nil {
		fmt.Printf("ERROR: Unable to complete the hackasm front end: %s\n", err)
		return -1
	}

	emitter := tape.NewEmitter(output)
	if err := compiler.Compile(emitter, program); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return -1
	}

	return 0
}

func main() { os.Exit(Tapec.Run(os.Args, os.Stdout)) }

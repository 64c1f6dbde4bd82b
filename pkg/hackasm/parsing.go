package hackasm

import (
	"fmt"
	"io"
	"os"

	pc "github.com/prataprc/goparsec"
)

// ----------------------------------------------------------------------------
// Parser combinators

// Top level object, generates the traversable AST from the grammar below.
var ast = pc.NewAST("hackasm", 0)

var (
	pProgram = ast.ManyUntil("program", nil, ast.OrdChoice("item", nil, pComment, pInstruction), pc.End())

	pInstruction = ast.OrdChoice("instruction", nil, pAInst, pCInst, pLabelDecl)
	pComment     = ast.And("comment", nil, pc.Atom("//", "//"), pc.Token(`(?m).*$`, "COMMENT"))

	pAInst     = ast.And("a-inst", nil, pc.Atom("@", "@"), pLabel)
	pLabelDecl = ast.And("label-decl", nil, pc.Atom("(", "("), pLabel, pc.Atom(")", ")"))
	pCInst     = ast.And("c-inst", nil,
		ast.Maybe("maybe-assign", nil, ast.And("assign", nil, pDest, pc.Atom("=", "="))),
		pComp,
		ast.Maybe("maybe-goto", nil, ast.And("goto", nil, pc.Atom(";", ";"), pJump)),
	)
)

var (
	// A label is any sequence of letters, digits and _.$: not beginning
	// with a digit (a symbol may, though — it's then a raw literal).
	pLabel = ast.OrdChoice("label", nil, pc.Int(), pc.Token(`[A-Za-z_.$:][0-9a-zA-Z_.$:]*`, "SYMBOL"))

	// Longer destination mnemonics are listed first: OrdChoice is a BFS
	// match and a prefix like "A" would otherwise shadow "AM"/"AD".
	pDest = ast.OrdChoice("dest", nil,
		pc.Atom("AMD", "AMD"), pc.Atom("AM", "AM"), pc.Atom("AD", "AD"), pc.Atom("MD", "MD"),
		pc.Atom("D", "D"), pc.Atom("A", "A"), pc.Atom("M", "M"),
	)

	// Same BFS-ordering concern applies here: multi-char comp terms must
	// precede the bare register atoms they'd otherwise be shadowed by.
	pComp = ast.OrdChoice("comp", nil,
		pc.Atom("D&A", "D&A"), pc.Atom("D&M", "D&M"),
		pc.Atom("D|A", "D|A"), pc.Atom("D|M", "D|M"),
		pc.Atom("D+A", "D+A"), pc.Atom("D+M", "D+M"),
		pc.Atom("D-A", "D-A"), pc.Atom("D-M", "D-M"),
		pc.Atom("A-D", "A-D"), pc.Atom("M-D", "M-D"),
		pc.Atom("D+1", "D+1"), pc.Atom("A+1", "A+1"), pc.Atom("M+1", "M+1"),
		pc.Atom("D-1", "D-1"), pc.Atom("A-1", "A-1"), pc.Atom("M-1", "M-1"),
		pc.Atom("!D", "!D"), pc.Atom("!A", "!A"), pc.Atom("!M", "!M"),
		pc.Atom("-D", "-D"), pc.Atom("-A", "-A"), pc.Atom("-M", "-M"),
		pc.Atom("0", "0"), pc.Atom("1", "1"), pc.Atom("-1", "-1"),
		pc.Atom("D", "D"), pc.Atom("A", "A"), pc.Atom("M", "M"),
	)

	pJump = ast.OrdChoice("jump", nil,
		pc.Atom("JNE", "JNE"), pc.Atom("JEQ", "JEQ"),
		pc.Atom("JGT", "JGT"), pc.Atom("JGE", "JGE"),
		pc.Atom("JLT", "JLT"), pc.Atom("JLE", "JLE"),
		pc.Atom("JMP", "JMP"),
	)
)

// ----------------------------------------------------------------------------
// Parser

// Parser reads HACK-ASM source and produces a Program. Feature flags read
// from the environment mirror the front-end conventions of the rest of the
// toolchain: PARSEC_DEBUG, EXPORT_AST, PRINT_AST.
type Parser struct{ reader io.Reader }

func NewParser(r io.Reader) Parser { return Parser{reader: r} }

// Parse drives the two-phase pipeline: source bytes to a traversable AST,
// then the AST to a typed Program.
func (p *Parser) Parse() (Program, error) {
	content, err := io.ReadAll(p.reader)
	if err != nil {
		return nil, fmt.Errorf("hackasm: cannot read source: %s", err)
	}

	root, ok := p.FromSource(content)
	if !ok {
		return nil, fmt.Errorf("hackasm: failed to parse source into an AST")
	}

	return p.FromAST(root)
}

// FromSource scans source and returns the traversable AST.
func (p *Parser) FromSource(source []byte) (pc.Queryable, bool) {
	if os.Getenv("PARSEC_DEBUG") != "" {
		ast.SetDebug()
	}

	root, _ := ast.Parsewith(pProgram, pc.NewScanner(source))

	if dir := os.Getenv("EXPORT_AST"); dir != "" {
		if file, err := os.Create(fmt.Sprintf("%s/debug.ast.dot", dir)); err == nil {
			defer file.Close()
			file.Write([]byte(ast.Dotstring(`"HACK-ASM AST"`)))
		}
	}

	if os.Getenv("PRINT_AST") != "" {
		ast.Prettyprint()
	}

	return root, root != nil
}

// FromAST walks the AST's top-level children and assembles a Program.
func (p *Parser) FromAST(root pc.Queryable) (Program, error) {
	if root == nil || root.GetName() != "program" {
		return nil, fmt.Errorf("hackasm: expected node 'program'")
	}

	program := make(Program, 0, len(root.GetChildren()))
	for _, child := range root.GetChildren() {
		switch child.GetName() {
		case "a-inst":
			inst, err := p.handleAInst(child)
			if err != nil {
				return nil, err
			}
			program = append(program, inst)
		case "c-inst":
			inst, err := p.handleCInst(child)
			if err != nil {
				return nil, err
			}
			program = append(program, inst)
		case "label-decl":
			inst, err := p.handleLabelDecl(child)
			if err != nil {
				return nil, err
			}
			program = append(program, inst)
		case "comment":
			continue
		default:
			return nil, fmt.Errorf("hackasm: unrecognized node %q", child.GetName())
		}
	}

	return program, nil
}

func (Parser) handleAInst(node pc.Queryable) (Statement, error) {
	symbol := node.GetChildren()[1]
	if symbol.GetName() != "INT" && symbol.GetName() != "SYMBOL" {
		return nil, fmt.Errorf("hackasm: expected 'SYMBOL' or 'INT', got %s", symbol.GetName())
	}
	return AInstruction{Location: symbol.GetValue()}, nil
}

func (Parser) handleCInst(node pc.Queryable) (Statement, error) {
	dest, comp, jump := node.GetChildren()[0], node.GetChildren()[1], node.GetChildren()[2]

	out := CInstruction{Comp: comp.GetValue()}
	if dest.GetName() == "assign" && len(dest.GetChildren()) == 2 {
		out.Dest = dest.GetChildren()[0].GetValue()
	}
	if jump.GetName() == "goto" && len(jump.GetChildren()) == 2 {
		out.Jump = jump.GetChildren()[1].GetValue()
	}
	return out, nil
}

func (Parser) handleLabelDecl(node pc.Queryable) (Statement, error) {
	symbol := node.GetChildren()[1]
	if symbol.GetName() != "SYMBOL" {
		return nil, fmt.Errorf("hackasm: expected 'SYMBOL' in label declaration, got %s", symbol.GetName())
	}
	return LabelDecl{Name: symbol.GetValue()}, nil
}

package gen

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

const indentSize = 4

// Print renders fragments as member declarations, one blank line apart.
// The text is for display and golden tests; hosts consume the fragments.
func Print(fragments []Fragment) string {
	p := newPrinter()
	for i, f := range fragments {
		if i > 0 {
			p.writeln()
		}
		p.decl(f.Decl)
	}
	return p.String()
}

// PrintDecl renders one declaration.
func PrintDecl(d Decl) string {
	p := newPrinter()
	p.decl(d)
	return p.String()
}

// Printer handles indentation of generated members.
type Printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter() *Printer {
	return &Printer{output: &bytes.Buffer{}, atLineStart: true}
}

// String returns the formatted output.
func (p *Printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

// formatList prints count items separated by sep.
func (p *Printer) formatList(count int, format func(i int), sep string) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
		}
	}
}

func (p *Printer) modifiers(mods []string) {
	for _, m := range mods {
		p.write(m)
		p.write(" ")
	}
}

func (p *Printer) typeRef(t syntax.TypeRef) {
	p.write(t.String())
}

func (p *Printer) decl(d Decl) {
	switch d := d.(type) {
	case *Field:
		p.modifiers(d.Modifiers)
		p.typeRef(d.Type)
		p.write(" " + d.Name)
		if d.Init != nil {
			p.write(" = ")
			p.expr(d.Init)
		}
		p.write(";")
		p.writeln()

	case *Property:
		p.modifiers(d.Modifiers)
		p.typeRef(d.Type)
		p.write(" " + d.Name)
		if d.Getter != nil {
			p.write(" => ")
			p.expr(d.Getter)
			p.write(";")
			p.writeln()
			return
		}
		p.write(" { get; }")
		if d.Init != nil {
			p.write(" = ")
			p.expr(d.Init)
			p.write(";")
		}
		p.writeln()

	case *Method:
		p.modifiers(d.Modifiers)
		p.typeRef(d.Return)
		p.write(" " + d.Name)
		if len(d.TypeParams) > 0 {
			p.write("<" + strings.Join(d.TypeParams, ", ") + ">")
		}
		p.params(d.Params)
		switch {
		case d.Expr != nil:
			p.write(" => ")
			p.expr(d.Expr)
			p.write(";")
			p.writeln()
		case d.Body == nil:
			p.write(";")
			p.writeln()
		default:
			p.writeln()
			p.block(d.Body)
		}

	case *Constructor:
		p.modifiers(d.Modifiers)
		p.write(d.Name)
		p.params(d.Params)
		p.writeln()
		p.block(d.Body)
	}
}

func (p *Printer) params(params []Param) {
	p.write("(")
	p.formatList(len(params), func(i int) {
		prm := params[i]
		if prm.Modifier != "" {
			p.write(prm.Modifier + " ")
		}
		p.typeRef(prm.Type)
		p.write(" " + prm.Name)
		if prm.Default != nil {
			p.write(" = ")
			p.expr(prm.Default)
		}
	}, ", ")
	p.write(")")
}

func (p *Printer) block(stmts []Stmt) {
	p.write("{")
	p.writeln()
	p.indent()
	for _, s := range stmts {
		p.stmt(s)
	}
	p.dedent()
	p.write("}")
	p.writeln()
}

func (p *Printer) stmt(s Stmt) {
	switch s := s.(type) {
	case *Return:
		p.write("return")
		if s.Value != nil {
			p.write(" ")
			p.expr(s.Value)
		}
		p.write(";")
		p.writeln()

	case *If:
		p.write("if (")
		p.expr(s.Cond)
		p.write(")")
		p.writeln()
		p.block(s.Then)
		if len(s.Else) > 0 {
			p.write("else")
			p.writeln()
			p.block(s.Else)
		}

	case *Assign:
		p.expr(s.Target)
		p.write(" = ")
		p.expr(s.Value)
		p.write(";")
		p.writeln()

	case *Local:
		if s.Type.IsZero() {
			p.write("var")
		} else {
			p.typeRef(s.Type)
		}
		p.write(" " + s.Name)
		if s.Init != nil {
			p.write(" = ")
			p.expr(s.Init)
		}
		p.write(";")
		p.writeln()

	case *Throw:
		p.write("throw ")
		p.expr(s.Value)
		p.write(";")
		p.writeln()

	case *ExprStmt:
		p.expr(s.X)
		p.write(";")
		p.writeln()
	}
}

func (p *Printer) exprs(list []Expr) {
	p.formatList(len(list), func(i int) { p.expr(list[i]) }, ", ")
}

func (p *Printer) expr(e Expr) {
	switch e := e.(type) {
	case *Ident:
		p.write(e.Name)

	case *Lit:
		switch e.Kind {
		case LitString:
			p.write(strconv.Quote(e.Value))
		case LitNull:
			p.write("null")
		case LitDefault:
			p.write("default")
		default:
			p.write(e.Value)
		}

	case *Selector:
		p.expr(e.X)
		p.write("." + e.Name)

	case *Call:
		p.expr(e.Fn)
		if len(e.TypeArgs) > 0 {
			p.write("<")
			p.formatList(len(e.TypeArgs), func(i int) { p.typeRef(e.TypeArgs[i]) }, ", ")
			p.write(">")
		}
		p.write("(")
		p.exprs(e.Args)
		p.write(")")

	case *New:
		p.write("new ")
		p.typeRef(e.Type)
		p.write("(")
		p.exprs(e.Args)
		p.write(")")

	case *ArrayLit:
		p.write("new ")
		p.typeRef(e.Elem)
		p.write("[] { ")
		p.exprs(e.Elems)
		if len(e.Elems) > 0 {
			p.write(" ")
		}
		p.write("}")

	case *Binary:
		p.expr(e.Left)
		p.write(" " + e.Op + " ")
		p.expr(e.Right)

	case *Unary:
		p.write(e.Op)
		p.expr(e.X)

	case *ArgMod:
		p.write(e.Modifier + " ")
		p.expr(e.X)

	case *IsType:
		p.expr(e.X)
		p.write(" is ")
		p.typeRef(e.Type)
		if e.Name != "" {
			p.write(" " + e.Name)
		}

	case *IsNull:
		p.expr(e.X)
		if e.Not {
			p.write(" is not null")
		} else {
			p.write(" is null")
		}

	case *VarExpr:
		if e.Type.IsZero() {
			p.write("var")
		} else {
			p.typeRef(e.Type)
		}
		p.write(" " + e.Name)

	case *TypeOf:
		p.write("typeof(")
		p.typeRef(e.Type)
		p.write(")")

	case *ThrowExpr:
		p.write("throw ")
		p.expr(e.Value)
	}
}

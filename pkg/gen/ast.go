package gen

import "github.com/leapstack-labs/smartgen/pkg/syntax"

// Decl is a generated member declaration.
type Decl interface {
	DeclName() string
	declNode() // Marker method to distinguish declarations
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	stmtNode()
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	exprNode()
}

// ---------- Declarations ----------

// Field declares a field with an optional initializer.
type Field struct {
	Modifiers []string
	Type      syntax.TypeRef
	Name      string
	Init      Expr
}

// Property declares a property. Getter set means an expression body;
// otherwise the property is get-only with an optional initializer.
type Property struct {
	Modifiers []string
	Type      syntax.TypeRef
	Name      string
	Getter    Expr
	Init      Expr
}

// Param is a parameter of a generated method or constructor.
type Param struct {
	// Modifier is "out", "ref" or empty.
	Modifier string
	Type     syntax.TypeRef
	Name     string
	Default  Expr
}

// Method declares a method. A method with neither Body nor Expr is a
// declaration without implementation, e.g. a partial method.
type Method struct {
	Modifiers  []string
	Return     syntax.TypeRef
	Name       string
	TypeParams []string
	Params     []Param
	Body       []Stmt
	// Expr is an expression body; it takes precedence over Body.
	Expr Expr
}

// Constructor declares an instance constructor.
type Constructor struct {
	Modifiers []string
	Name      string
	Params    []Param
	Body      []Stmt
}

func (*Field) declNode()       {}
func (*Property) declNode()    {}
func (*Method) declNode()      {}
func (*Constructor) declNode() {}

// DeclName implements Decl.
func (f *Field) DeclName() string { return f.Name }

// DeclName implements Decl.
func (p *Property) DeclName() string { return p.Name }

// DeclName implements Decl.
func (m *Method) DeclName() string { return m.Name }

// DeclName implements Decl.
func (c *Constructor) DeclName() string { return c.Name }

// ---------- Statements ----------

// Return returns Value, or nothing when Value is nil.
type Return struct {
	Value Expr
}

// If is a conditional with optional else branch.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// Assign stores Value into Target.
type Assign struct {
	Target Expr
	Value  Expr
}

// Local declares a local variable.
type Local struct {
	Type syntax.TypeRef // zero means var
	Name string
	Init Expr
}

// Throw raises Value.
type Throw struct {
	Value Expr
}

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	X Expr
}

func (*Return) stmtNode()   {}
func (*If) stmtNode()       {}
func (*Assign) stmtNode()   {}
func (*Local) stmtNode()    {}
func (*Throw) stmtNode()    {}
func (*ExprStmt) stmtNode() {}

// ---------- Expressions ----------

// Ident is a bare identifier or type name.
type Ident struct {
	Name string
}

// LiteralKind is the kind of a literal.
type LiteralKind int

// Literal kinds.
const (
	LitString LiteralKind = iota
	LitBool
	LitNull
	LitDefault
	LitRaw
)

// Lit is a literal. String literals hold the unquoted text.
type Lit struct {
	Kind  LiteralKind
	Value string
}

// Selector is X.Name.
type Selector struct {
	X    Expr
	Name string
}

// Call is Fn<TypeArgs>(Args).
type Call struct {
	Fn       Expr
	TypeArgs []syntax.TypeRef
	Args     []Expr
}

// New constructs Type with Args.
type New struct {
	Type syntax.TypeRef
	Args []Expr
}

// ArrayLit is new Type[] { Elems }.
type ArrayLit struct {
	Elem  syntax.TypeRef
	Elems []Expr
}

// Binary is Left Op Right.
type Binary struct {
	Left  Expr
	Op    string
	Right Expr
}

// Unary is Op X, e.g. !x.
type Unary struct {
	Op string
	X  Expr
}

// ArgMod passes X with a ref or out modifier.
type ArgMod struct {
	Modifier string
	X        Expr
}

// IsType is X is Type Name. Name may be empty.
type IsType struct {
	X    Expr
	Type syntax.TypeRef
	Name string
}

// IsNull is X is null, or X is not null when Not is set.
type IsNull struct {
	X   Expr
	Not bool
}

// VarExpr declares a variable in expression position, e.g. out var key.
type VarExpr struct {
	Type syntax.TypeRef // zero means var
	Name string
}

// TypeOf is typeof(Type).
type TypeOf struct {
	Type syntax.TypeRef
}

// ThrowExpr is a throw in expression position.
type ThrowExpr struct {
	Value Expr
}

func (*Ident) exprNode()     {}
func (*Lit) exprNode()       {}
func (*Selector) exprNode()  {}
func (*Call) exprNode()      {}
func (*New) exprNode()       {}
func (*ArrayLit) exprNode()  {}
func (*Binary) exprNode()    {}
func (*Unary) exprNode()     {}
func (*ArgMod) exprNode()    {}
func (*IsType) exprNode()    {}
func (*IsNull) exprNode()    {}
func (*TypeOf) exprNode()    {}
func (*VarExpr) exprNode()   {}
func (*ThrowExpr) exprNode() {}

// ---------- Constructors ----------

func ident(name string) *Ident { return &Ident{Name: name} }

func this() *Ident { return ident("this") }

func sel(x Expr, names ...string) Expr {
	for _, n := range names {
		x = &Selector{X: x, Name: n}
	}
	return x
}

func call(fn Expr, args ...Expr) *Call { return &Call{Fn: fn, Args: args} }

func str(s string) *Lit { return &Lit{Kind: LitString, Value: s} }

func boolean(v bool) *Lit {
	if v {
		return &Lit{Kind: LitBool, Value: "true"}
	}
	return &Lit{Kind: LitBool, Value: "false"}
}

func null() *Lit { return &Lit{Kind: LitNull} }

func zero() *Lit { return &Lit{Kind: LitDefault} }

func out(x Expr) *ArgMod { return &ArgMod{Modifier: "out", X: x} }

func ref(x Expr) *ArgMod { return &ArgMod{Modifier: "ref", X: x} }

func ret(x Expr) *Return { return &Return{Value: x} }

func assign(target, value Expr) *Assign { return &Assign{Target: target, Value: value} }

func typ(name string, args ...syntax.TypeRef) syntax.TypeRef { return syntax.Named(name, args...) }

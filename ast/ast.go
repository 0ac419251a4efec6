// Package ast defines the abstract syntax tree for the Velt expression
// language.
//
// Nodes form a closed set of variant structs implementing Node. A node owns
// its children by containment: subtrees are never shared between parents,
// so structural traversal never revisits a node.
package ast

// Node is the interface implemented by every AST node. String renders the
// node's canonical S-expression form, e.g. `(seq (id a) (num 1))`.
type Node interface {
	node()
	String() string
}

// AssignOp selects the operator of an Assign node.
type AssignOp int

const (
	OpAssign AssignOp = iota
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
)

func (op AssignOp) String() string {
	switch op {
	case OpAssign:
		return "="
	case OpAddAssign:
		return "+="
	case OpSubAssign:
		return "-="
	case OpMulAssign:
		return "*="
	case OpDivAssign:
		return "/="
	case OpModAssign:
		return "%="
	}
	return "?"
}

// JumpOp selects the kind of a Jump node.
type JumpOp int

const (
	OpBreak JumpOp = iota
	OpContinue
)

func (op JumpOp) String() string {
	if op == OpBreak {
		return "break"
	}
	return "continue"
}

// UnaryOp selects the operator of a Unary node.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpPlus
	OpMinus
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "not"
	case OpPlus:
		return "plus"
	case OpMinus:
		return "minus"
	}
	return "?"
}

// LogicalOp selects the operator of a Logical node.
type LogicalOp int

const (
	OpOr LogicalOp = iota
	OpAnd
)

func (op LogicalOp) String() string {
	if op == OpOr {
		return "or"
	}
	return "and"
}

// ArithOp selects the operator of an Arith node.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

func (op ArithOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	}
	return "?"
}

// RelOp selects the operator of a Relational node.
type RelOp int

const (
	OpEq RelOp = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpIn
	OpNotIn
)

func (op RelOp) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpIn:
		return "in"
	case OpNotIn:
		return "notin"
	}
	return "?"
}

// Empty marks an absent expression or body. It is a valid parse result, not
// an error; callers decide whether an empty result is acceptable in context.
type Empty struct{}

// Sequence is an ordered list of statements.
type Sequence struct {
	Stmts []Node
}

// Assign is an assignment or compound assignment. The parser guarantees LHS
// is an *Ident.
type Assign struct {
	Op  AssignOp
	LHS Node
	RHS Node
}

// If is a conditional with one clause per if/elif and an optional else body.
type If struct {
	Clauses []*IfClause
	Alt     Node // nil when there is no else body
}

// IfClause is one predicate/body pair of an If.
type IfClause struct {
	Pred   Node
	Conseq Node
}

// Foreach is an iteration over Exp binding Ids in each round. Body may be
// Empty.
type Foreach struct {
	Ids  []*Ident
	Exp  Node
	Body Node
}

// Jump is a break or continue statement.
type Jump struct {
	Op JumpOp
}

// Unary is a prefix operator application.
type Unary struct {
	Op  UnaryOp
	Exp Node
}

// Logical is a binary `or`/`and`.
type Logical struct {
	Op  LogicalOp
	LHS Node
	RHS Node
}

// Ternary is the conditional operator `pred ? conseq : alt`.
type Ternary struct {
	Pred   Node
	Conseq Node
	Alt    Node
}

// Arith is a binary arithmetic operation.
type Arith struct {
	Op  ArithOp
	LHS Node
	RHS Node
}

// Relational is a binary equality or relational operation.
type Relational struct {
	Op  RelOp
	LHS Node
	RHS Node
}

// Member is a field access `obj.field`. Field is always a plain identifier.
type Member struct {
	Obj   Node
	Field *Ident
}

// Index is a subscript `ref[index]`.
type Index struct {
	Ref   Node
	Index Node
}

// Apply is a function application with positional and keyword arguments.
type Apply struct {
	Ref    Node
	Args   []Node
	KwArgs []*KwArg
}

// KwArg is one keyword argument `id: exp` of an Apply.
type KwArg struct {
	Id  *Ident
	Exp Node
}

// Ident is an identifier.
type Ident struct {
	Name string
}

// Boolean is a `true` or `false` literal.
type Boolean struct {
	Value bool
}

// Number is a signed 64-bit integer literal.
type Number struct {
	Value int64
}

// String is a string literal with delimiters stripped.
type String struct {
	Value string
}

// Array is an array literal.
type Array struct {
	Elems []Node
}

// Dict is a dictionary literal. Keys and values are arbitrary expressions.
type Dict struct {
	Entries []*KeyValue
}

// KeyValue is one key/value pair of a Dict.
type KeyValue struct {
	Key   Node
	Value Node
}

func (*Empty) node()      {}
func (*Sequence) node()   {}
func (*Assign) node()     {}
func (*If) node()         {}
func (*IfClause) node()   {}
func (*Foreach) node()    {}
func (*Jump) node()       {}
func (*Unary) node()      {}
func (*Logical) node()    {}
func (*Ternary) node()    {}
func (*Arith) node()      {}
func (*Relational) node() {}
func (*Member) node()     {}
func (*Index) node()      {}
func (*Apply) node()      {}
func (*KwArg) node()      {}
func (*Ident) node()      {}
func (*Boolean) node()    {}
func (*Number) node()     {}
func (*String) node()     {}
func (*Array) node()      {}
func (*Dict) node()       {}
func (*KeyValue) node()   {}

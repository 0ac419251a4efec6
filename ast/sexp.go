package ast

import (
	"fmt"
	"strings"
)

// The S-expression forms below are the canonical structural dump of a tree:
// two trees are structurally identical exactly when their renderings match.

func (n *Empty) String() string { return "(empty)" }

func (n *Sequence) String() string {
	var sb strings.Builder
	sb.WriteString("(seq")
	for _, stmt := range n.Stmts {
		sb.WriteByte(' ')
		sb.WriteString(stmt.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (n *Assign) String() string {
	var suffix string
	switch n.Op {
	case OpAddAssign:
		suffix = "+"
	case OpSubAssign:
		suffix = "-"
	case OpMulAssign:
		suffix = "*"
	case OpDivAssign:
		suffix = "/"
	case OpModAssign:
		suffix = "%"
	}
	return fmt.Sprintf("(assign%s %s %s)", suffix, n.LHS, n.RHS)
}

func (n *If) String() string {
	var sb strings.Builder
	sb.WriteString("(cond")
	for _, clause := range n.Clauses {
		sb.WriteByte(' ')
		sb.WriteString(clause.String())
	}
	if n.Alt != nil {
		fmt.Fprintf(&sb, " (else %s)", n.Alt)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (n *IfClause) String() string {
	return fmt.Sprintf("(%s %s)", n.Pred, n.Conseq)
}

func (n *Foreach) String() string {
	ids := make([]string, len(n.Ids))
	for i, id := range n.Ids {
		ids[i] = id.String()
	}
	return fmt.Sprintf("(foreach ids:(%s) %s %s)",
		strings.Join(ids, " "), n.Exp, n.Body)
}

func (n *Jump) String() string {
	return fmt.Sprintf("(%s)", n.Op)
}

func (n *Unary) String() string {
	return fmt.Sprintf("(unary %s %s)", n.Op, n.Exp)
}

func (n *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Op, n.LHS, n.RHS)
}

func (n *Ternary) String() string {
	return fmt.Sprintf("(ternary %s %s %s)", n.Pred, n.Conseq, n.Alt)
}

func (n *Arith) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Op, n.LHS, n.RHS)
}

func (n *Relational) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Op, n.LHS, n.RHS)
}

func (n *Member) String() string {
	return fmt.Sprintf("(member %s %s)", n.Obj, n.Field)
}

func (n *Index) String() string {
	return fmt.Sprintf("(index %s %s)", n.Ref, n.Index)
}

func (n *Apply) String() string {
	var sb strings.Builder
	sb.WriteString("(app ")
	sb.WriteString(n.Ref.String())
	if len(n.Args) > 0 {
		sb.WriteString(" args:(")
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(arg.String())
		}
		sb.WriteByte(')')
	}
	if len(n.KwArgs) > 0 {
		sb.WriteString(" kw-args:(")
		for i, kw := range n.KwArgs {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(kw.String())
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}

func (n *KwArg) String() string {
	return fmt.Sprintf("(%s %s)", n.Id, n.Exp)
}

func (n *Ident) String() string {
	return fmt.Sprintf("(id %s)", n.Name)
}

func (n *Boolean) String() string {
	return fmt.Sprintf("(bool %t)", n.Value)
}

func (n *Number) String() string {
	return fmt.Sprintf("(num %d)", n.Value)
}

func (n *String) String() string {
	return fmt.Sprintf("(str `%s`)", n.Value)
}

func (n *Array) String() string {
	var sb strings.Builder
	sb.WriteString("(array")
	for _, elem := range n.Elems {
		sb.WriteByte(' ')
		sb.WriteString(elem.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (n *Dict) String() string {
	var sb strings.Builder
	sb.WriteString("(dict")
	for _, kv := range n.Entries {
		sb.WriteByte(' ')
		sb.WriteString(kv.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (n *KeyValue) String() string {
	return fmt.Sprintf("(%s %s)", n.Key, n.Value)
}

// Package parser implements the Velt recursive descent parser.
//
// One parser routine per grammar production, lowest precedence first. Every
// routine either returns a node or a *ParseError naming the production and
// what it expected; the parser never recovers or resynchronizes, so the
// first failure aborts the whole parse.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/velt-lang/velt/ast"
	"github.com/velt-lang/velt/lexer"
)

// ParseError represents a parsing error. Message is the full diagnostic
// text; its wording is a compatibility contract and must not change.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// Parser represents the recursive descent parser. It keeps exactly one token
// of lookahead; accepting a token advances the stream.
type Parser struct {
	lexer *lexer.Lexer
	token lexer.Token
	ready bool
}

// New creates a new parser instance over l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{lexer: l}
}

// Parse parses source and returns the root AST node or a *ParseError. An
// empty source yields the Empty node. The parser holds no cross-call state:
// parsing identical source always yields a structurally identical tree.
func Parse(source string) (ast.Node, error) {
	return New(lexer.New(source)).Parse()
}

// Parse runs the statement-sequence grammar to completion.
func (p *Parser) Parse() (ast.Node, error) {
	return p.sequence()
}

// peek returns the type of the lookahead token, pulling one from the lexer
// when none is buffered.
func (p *Parser) peek() lexer.TokenType {
	if !p.ready {
		p.token = p.lexer.NextToken()
		p.ready = true
	}
	return p.token.Type
}

// accept consumes the lookahead token if it has the given type. The consumed
// token stays readable in p.token until the next peek.
func (p *Parser) accept(tt lexer.TokenType) bool {
	if p.peek() == tt {
		p.ready = false
		return true
	}
	return false
}

// expected builds the uniform "<rule>: expected <what>" diagnostic
func expected(rule, what string) error {
	return &ParseError{Message: fmt.Sprintf("%s: expected %s", rule, what)}
}

func isEmpty(n ast.Node) bool {
	_, ok := n.(*ast.Empty)
	return ok
}

// maybeIdentifier consumes an identifier token if present, returning an
// Ident node, or the Empty node when the lookahead is anything else.
func (p *Parser) maybeIdentifier() ast.Node {
	if p.accept(lexer.TokenIdentifier) {
		return &ast.Ident{Name: p.token.Literal}
	}
	return &ast.Empty{}
}

// dictionary parses `{ key : value , ... }`. Keys and values are arbitrary
// expressions; a trailing comma before the closing brace is permitted.
func (p *Parser) dictionary() (ast.Node, error) {
	if !p.accept(lexer.TokenLBrace) {
		return nil, expected("dictionary", "opening brace")
	}

	dict := &ast.Dict{}
	if p.accept(lexer.TokenRBrace) {
		return dict, nil
	}

	for {
		key, err := p.expression()
		if err != nil {
			return nil, err
		}
		if isEmpty(key) {
			return nil, expected("dictionary", "key")
		}

		if !p.accept(lexer.TokenColon) {
			return nil, expected("dictionary", "colon")
		}

		val, err := p.expression()
		if err != nil {
			return nil, err
		}
		if isEmpty(val) {
			return nil, expected("dictionary", "value")
		}

		dict.Entries = append(dict.Entries, &ast.KeyValue{Key: key, Value: val})

		if !p.accept(lexer.TokenComma) || p.peek() == lexer.TokenRBrace {
			break
		}
	}

	if !p.accept(lexer.TokenRBrace) {
		return nil, expected("dictionary", "closing brace")
	}
	return dict, nil
}

// array parses `[ expression , ... ]` with an optional trailing comma
func (p *Parser) array() (ast.Node, error) {
	if !p.accept(lexer.TokenLBracket) {
		return nil, expected("array", "opening bracket")
	}

	array := &ast.Array{}
	if p.accept(lexer.TokenRBracket) {
		return array, nil
	}

	for {
		exp, err := p.expression()
		if err != nil {
			return nil, err
		}
		if isEmpty(exp) {
			return nil, expected("array", "expression")
		}
		array.Elems = append(array.Elems, exp)

		if !p.accept(lexer.TokenComma) || p.peek() == lexer.TokenRBracket {
			break
		}
	}

	if !p.accept(lexer.TokenRBracket) {
		return nil, expected("array", "closing bracket")
	}
	return array, nil
}

func (p *Parser) stringLiteral() (ast.Node, error) {
	p.accept(p.peek())
	return &ast.String{Value: p.token.Literal}, nil
}

// number converts the accepted numeric token using the base its token type
// selected during lexing. Out-of-range literals saturate at the int64
// limits, matching strtoll semantics.
func (p *Parser) number() (ast.Node, error) {
	base := 10
	switch p.peek() {
	case lexer.TokenBinNumber:
		base = 2
	case lexer.TokenOctNumber:
		base = 8
	case lexer.TokenHexNumber:
		base = 16
	}
	p.accept(p.peek())

	lit := p.token.Literal
	value, err := strconv.ParseInt(lit, base, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &ParseError{Message: fmt.Sprintf("invalid number: `%s'", lit)}
	}
	return &ast.Number{Value: value}, nil
}

func (p *Parser) boolean() (ast.Node, error) {
	value := p.peek() == lexer.TokenTrue
	p.accept(p.peek())
	return &ast.Boolean{Value: value}, nil
}

// literal parses any literal form. An unrecognized lookahead yields the
// Empty node, not an error; callers decide whether that is acceptable.
func (p *Parser) literal() (ast.Node, error) {
	switch p.peek() {
	case lexer.TokenTrue, lexer.TokenFalse:
		return p.boolean()
	case lexer.TokenDecNumber, lexer.TokenBinNumber,
		lexer.TokenOctNumber, lexer.TokenHexNumber:
		return p.number()
	case lexer.TokenString, lexer.TokenMultilineString:
		return p.stringLiteral()
	case lexer.TokenLBracket:
		return p.array()
	case lexer.TokenLBrace:
		return p.dictionary()
	default:
		return &ast.Empty{}, nil
	}
}

// primary parses a parenthesized expression, a bare identifier, or a literal
func (p *Parser) primary() (ast.Node, error) {
	switch p.peek() {
	case lexer.TokenLParen:
		p.accept(lexer.TokenLParen)
		exp, err := p.expression()
		if err != nil {
			return nil, err
		}
		if isEmpty(exp) {
			return nil, &ParseError{Message: "invalid expression"}
		}
		if !p.accept(lexer.TokenRParen) {
			return nil, &ParseError{Message: "expected closing paren"}
		}
		return exp, nil
	case lexer.TokenIdentifier:
		return p.maybeIdentifier(), nil
	default:
		return p.literal()
	}
}

// subscript parses `[ expression ]` and returns the index expression; the
// caller wraps it into an Index node around the subscripted reference.
func (p *Parser) subscript() (ast.Node, error) {
	if !p.accept(lexer.TokenLBracket) {
		return nil, expected("subscript", "opening bracket")
	}

	index, err := p.expression()
	if err != nil {
		return nil, err
	}
	if isEmpty(index) {
		return nil, expected("subscript", "expression")
	}

	if !p.accept(lexer.TokenRBracket) {
		return nil, expected("subscript", "closing bracket")
	}
	return index, nil
}

// application parses an argument list. Positional arguments run until the
// first `identifier : expression` pair; after that every argument must be
// keyword form. The returned Apply has no callee yet; the caller fills Ref.
func (p *Parser) application() (*ast.Apply, error) {
	if !p.accept(lexer.TokenLParen) {
		return nil, expected("application", "opening paren")
	}

	app := &ast.Apply{}
	if p.accept(lexer.TokenRParen) {
		return app, nil
	}

	keywords := false
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		if isEmpty(arg) {
			return nil, expected("application", "argument")
		}

		colon := p.accept(lexer.TokenColon)
		keywords = keywords || colon

		if keywords && !colon {
			return nil, expected("application", "keyword")
		}
		if !keywords {
			app.Args = append(app.Args, arg)
		} else {
			id, ok := arg.(*ast.Ident)
			if !ok {
				return nil, expected("application", "kwarg name")
			}
			value, err := p.expression()
			if err != nil {
				return nil, err
			}
			if isEmpty(value) {
				return nil, expected("application", "kwarg value")
			}
			app.KwArgs = append(app.KwArgs, &ast.KwArg{Id: id, Exp: value})
		}

		if !p.accept(lexer.TokenComma) || p.peek() == lexer.TokenRParen {
			break
		}
	}

	if !p.accept(lexer.TokenRParen) {
		return nil, expected("application", "closing paren")
	}
	return app, nil
}

// postfix parses a primary expression and, only when that primary is a plain
// identifier, extends it with any chain of member accesses, applications and
// subscripts. Any other primary is returned as-is.
func (p *Parser) postfix() (ast.Node, error) {
	exp, err := p.primary()
	if err != nil {
		return nil, err
	}
	if _, ok := exp.(*ast.Ident); !ok {
		return exp, nil
	}

	for {
		switch p.peek() {
		case lexer.TokenDot:
			p.accept(lexer.TokenDot)
			right, err := p.primary()
			if err != nil {
				return nil, err
			}
			if isEmpty(right) {
				return nil, &ParseError{Message: "expected field name"}
			}
			field, ok := right.(*ast.Ident)
			if !ok {
				return nil, &ParseError{Message: "field name must be plain id"}
			}
			exp = &ast.Member{Obj: exp, Field: field}
		case lexer.TokenLParen:
			app, err := p.application()
			if err != nil {
				return nil, err
			}
			app.Ref = exp
			exp = app
		case lexer.TokenLBracket:
			index, err := p.subscript()
			if err != nil {
				return nil, err
			}
			exp = &ast.Index{Ref: exp, Index: index}
		default:
			return exp, nil
		}
	}
}

// unary parses at most one leading not/+/- prefix applied to a postfix
// expression.
func (p *Parser) unary() (ast.Node, error) {
	var op ast.UnaryOp
	hasOp := true
	switch p.peek() {
	case lexer.TokenNot:
		op = ast.OpNot
	case lexer.TokenPlus:
		op = ast.OpPlus
	case lexer.TokenMinus:
		op = ast.OpMinus
	default:
		hasOp = false
	}
	if hasOp {
		p.accept(p.peek())
	}

	exp, err := p.postfix()
	if err != nil {
		return nil, err
	}
	if isEmpty(exp) {
		if !hasOp {
			return exp, nil
		}
		return nil, expected("unary", "expression")
	}
	if hasOp {
		return &ast.Unary{Op: op, Exp: exp}, nil
	}
	return exp, nil
}

// multiplicative parses a left-associative chain of * / %
func (p *Parser) multiplicative() (ast.Node, error) {
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.ArithOp
		switch p.peek() {
		case lexer.TokenMul:
			op = ast.OpMul
		case lexer.TokenDiv:
			op = ast.OpDiv
		case lexer.TokenMod:
			op = ast.OpMod
		default:
			return exp, nil
		}
		p.accept(p.peek())

		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		if isEmpty(rhs) {
			return nil, expected("multiplicative", "expression")
		}
		exp = &ast.Arith{Op: op, LHS: exp, RHS: rhs}
	}
}

// additive parses a left-associative chain of + -
func (p *Parser) additive() (ast.Node, error) {
	exp, err := p.multiplicative()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.ArithOp
		switch p.peek() {
		case lexer.TokenPlus:
			op = ast.OpAdd
		case lexer.TokenMinus:
			op = ast.OpSub
		default:
			return exp, nil
		}
		p.accept(p.peek())

		rhs, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		if isEmpty(rhs) {
			return nil, expected("additive", "expression")
		}
		exp = &ast.Arith{Op: op, LHS: exp, RHS: rhs}
	}
}

// relational parses at most one of < <= > >= in, or `not in`. The operator
// does not chain.
func (p *Parser) relational() (ast.Node, error) {
	lhs, err := p.additive()
	if err != nil {
		return nil, err
	}

	var op ast.RelOp
	switch p.peek() {
	case lexer.TokenLt:
		op = ast.OpLt
	case lexer.TokenLe:
		op = ast.OpLe
	case lexer.TokenGt:
		op = ast.OpGt
	case lexer.TokenGe:
		op = ast.OpGe
	case lexer.TokenIn:
		op = ast.OpIn
	case lexer.TokenNot:
		op = ast.OpNotIn
	default:
		return lhs, nil
	}
	p.accept(p.peek())

	if op == ast.OpNotIn && !p.accept(lexer.TokenIn) {
		return nil, &ParseError{Message: "expected `in' after `not'"}
	}

	rhs, err := p.additive()
	if err != nil {
		return nil, err
	}
	if isEmpty(rhs) {
		return nil, expected("relational", "expression")
	}
	return &ast.Relational{Op: op, LHS: lhs, RHS: rhs}, nil
}

// equality parses at most one == or != over relational operands
func (p *Parser) equality() (ast.Node, error) {
	lhs, err := p.relational()
	if err != nil {
		return nil, err
	}

	var op ast.RelOp
	switch p.peek() {
	case lexer.TokenEq:
		op = ast.OpEq
	case lexer.TokenNe:
		op = ast.OpNe
	default:
		return lhs, nil
	}
	p.accept(p.peek())

	rhs, err := p.relational()
	if err != nil {
		return nil, err
	}
	if isEmpty(rhs) {
		return nil, expected("equality", "expression")
	}
	return &ast.Relational{Op: op, LHS: lhs, RHS: rhs}, nil
}

// logicalAnd parses a left-associative chain of `and`
func (p *Parser) logicalAnd() (ast.Node, error) {
	exp, err := p.equality()
	if err != nil {
		return nil, err
	}

	for p.accept(lexer.TokenAnd) {
		rhs, err := p.equality()
		if err != nil {
			return nil, err
		}
		if isEmpty(rhs) {
			return nil, expected("logical and", "expression")
		}
		exp = &ast.Logical{Op: ast.OpAnd, LHS: exp, RHS: rhs}
	}
	return exp, nil
}

// logicalOr parses a left-associative chain of `or`
func (p *Parser) logicalOr() (ast.Node, error) {
	exp, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}

	for p.accept(lexer.TokenOr) {
		rhs, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		if isEmpty(rhs) {
			return nil, expected("logical or", "expression")
		}
		exp = &ast.Logical{Op: ast.OpOr, LHS: exp, RHS: rhs}
	}
	return exp, nil
}

// conditional parses `pred ? conseq : alt`. Both branches re-enter the full
// expression grammar, which makes the operator right-associative.
func (p *Parser) conditional() (ast.Node, error) {
	exp, err := p.logicalOr()
	if err != nil {
		return nil, err
	}

	if !p.accept(lexer.TokenQuestion) {
		return exp, nil
	}

	conseq, err := p.expression()
	if err != nil {
		return nil, err
	}
	if isEmpty(conseq) {
		return nil, expected("ternary", "true clause")
	}

	if !p.accept(lexer.TokenColon) {
		return nil, expected("ternary", "colon")
	}

	alt, err := p.expression()
	if err != nil {
		return nil, err
	}
	if isEmpty(alt) {
		return nil, expected("ternary", "false clause")
	}
	return &ast.Ternary{Pred: exp, Conseq: conseq, Alt: alt}, nil
}

// assignment parses one optional, non-chaining assignment operator. The
// left-hand side must already have parsed to a plain identifier.
func (p *Parser) assignment() (ast.Node, error) {
	lhs, err := p.conditional()
	if err != nil {
		return nil, err
	}

	var op ast.AssignOp
	switch p.peek() {
	case lexer.TokenAssign:
		op = ast.OpAssign
	case lexer.TokenPlusAssign:
		op = ast.OpAddAssign
	case lexer.TokenMinusAssign:
		op = ast.OpSubAssign
	case lexer.TokenMulAssign:
		op = ast.OpMulAssign
	case lexer.TokenDivAssign:
		op = ast.OpDivAssign
	case lexer.TokenModAssign:
		op = ast.OpModAssign
	default:
		return lhs, nil
	}
	p.accept(p.peek())

	if _, ok := lhs.(*ast.Ident); !ok {
		return nil, &ParseError{Message: "assignment target must be an id"}
	}

	rhs, err := p.expression()
	if err != nil {
		return nil, err
	}
	if isEmpty(rhs) {
		return nil, expected("assignment", "expression")
	}
	return &ast.Assign{Op: op, LHS: lhs, RHS: rhs}, nil
}

func (p *Parser) expression() (ast.Node, error) {
	return p.assignment()
}

// iteration parses `foreach id, ... : exp body endforeach`
func (p *Parser) iteration() (ast.Node, error) {
	if !p.accept(lexer.TokenForeach) {
		return nil, expected("foreach", "`foreach' keyword")
	}

	foreach := &ast.Foreach{}
	for {
		ident, ok := p.maybeIdentifier().(*ast.Ident)
		if !ok {
			return nil, expected("foreach", "identifier")
		}
		foreach.Ids = append(foreach.Ids, ident)

		if !p.accept(lexer.TokenComma) {
			break
		}
	}

	if !p.accept(lexer.TokenColon) {
		return nil, expected("foreach", "colon")
	}

	exp, err := p.expression()
	if err != nil {
		return nil, err
	}
	if isEmpty(exp) {
		return nil, expected("foreach", "expression")
	}
	foreach.Exp = exp

	body, err := p.sequence()
	if err != nil {
		return nil, err
	}
	foreach.Body = body

	if !p.accept(lexer.TokenEndforeach) {
		return nil, expected("foreach", "endforeach")
	}
	return foreach, nil
}

// selection parses `if pred body {elif pred body} [else body] endif`
func (p *Parser) selection() (ast.Node, error) {
	if !p.accept(lexer.TokenIf) {
		return nil, expected("if", "`if' keyword")
	}

	cond := &ast.If{}
	for {
		pred, err := p.expression()
		if err != nil {
			return nil, err
		}
		if isEmpty(pred) {
			return nil, expected("if", "predicate")
		}

		conseq, err := p.sequence()
		if err != nil {
			return nil, err
		}
		cond.Clauses = append(cond.Clauses, &ast.IfClause{Pred: pred, Conseq: conseq})

		if !p.accept(lexer.TokenElif) {
			break
		}
	}

	if p.accept(lexer.TokenElse) {
		alt, err := p.sequence()
		if err != nil {
			return nil, err
		}
		cond.Alt = alt
	}

	if !p.accept(lexer.TokenEndif) {
		return nil, expected("if", "endif")
	}
	return cond, nil
}

// statement parses one statement. End of input yields the Empty node, as
// does any token no statement or expression rule recognizes; block
// terminators like elif/else/endif/endforeach end up here too, which is how
// a sequence detects the end of its block.
func (p *Parser) statement() (ast.Node, error) {
	switch p.peek() {
	case lexer.TokenEOF:
		return &ast.Empty{}, nil
	case lexer.TokenIf:
		return p.selection()
	case lexer.TokenForeach:
		return p.iteration()
	case lexer.TokenBreak:
		p.accept(lexer.TokenBreak)
		return &ast.Jump{Op: ast.OpBreak}, nil
	case lexer.TokenContinue:
		p.accept(lexer.TokenContinue)
		return &ast.Jump{Op: ast.OpContinue}, nil
	default:
		return p.expression()
	}
}

// sequence parses statements until one parses to Empty. An empty first
// statement degenerates the whole sequence to that Empty node; otherwise the
// trailing Empty is discarded and the collected statements form a Sequence.
func (p *Parser) sequence() (ast.Node, error) {
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	if isEmpty(stmt) {
		return stmt, nil
	}

	seq := &ast.Sequence{}
	for {
		seq.Stmts = append(seq.Stmts, stmt)

		stmt, err = p.statement()
		if err != nil {
			return nil, err
		}
		if isEmpty(stmt) {
			break
		}
	}
	return seq, nil
}

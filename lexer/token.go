package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token types
const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Keywords
	TokenAnd
	TokenBreak
	TokenContinue
	TokenElif
	TokenElse
	TokenEndforeach
	TokenEndif
	TokenFalse
	TokenForeach
	TokenIf
	TokenIn
	TokenNot
	TokenOr
	TokenTrue

	// Literals
	TokenIdentifier
	TokenBinNumber
	TokenDecNumber
	TokenOctNumber
	TokenHexNumber
	TokenString
	TokenMultilineString

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenDot
	TokenComma
	TokenColon
	TokenQuestion

	// Operators
	TokenAssign
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenMod
	TokenPlusAssign
	TokenMinusAssign
	TokenMulAssign
	TokenDivAssign
	TokenModAssign
	TokenEq
	TokenNe
	TokenLt
	TokenLe
	TokenGt
	TokenGe
)

// Token represents a lexical token. Literal is a substring of the lexer
// input with delimiters and base markers stripped; it stays valid for the
// lifetime of the input.
type Token struct {
	Type    TokenType
	Literal string
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q}", t.Type, t.Literal)
}

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenEOF:   "EOF",
	TokenError: "ERROR",

	TokenAnd:        "AND",
	TokenBreak:      "BREAK",
	TokenContinue:   "CONTINUE",
	TokenElif:       "ELIF",
	TokenElse:       "ELSE",
	TokenEndforeach: "ENDFOREACH",
	TokenEndif:      "ENDIF",
	TokenFalse:      "FALSE",
	TokenForeach:    "FOREACH",
	TokenIf:         "IF",
	TokenIn:         "IN",
	TokenNot:        "NOT",
	TokenOr:         "OR",
	TokenTrue:       "TRUE",

	TokenIdentifier:      "IDENTIFIER",
	TokenBinNumber:       "BIN_NUMBER",
	TokenDecNumber:       "DEC_NUMBER",
	TokenOctNumber:       "OCT_NUMBER",
	TokenHexNumber:       "HEX_NUMBER",
	TokenString:          "STRING",
	TokenMultilineString: "MULTILINE_STRING",

	TokenLParen:   "LPAREN",
	TokenRParen:   "RPAREN",
	TokenLBrace:   "LBRACE",
	TokenRBrace:   "RBRACE",
	TokenLBracket: "LBRACKET",
	TokenRBracket: "RBRACKET",
	TokenDot:      "DOT",
	TokenComma:    "COMMA",
	TokenColon:    "COLON",
	TokenQuestion: "QUESTION",

	TokenAssign:      "ASSIGN",
	TokenPlus:        "PLUS",
	TokenMinus:       "MINUS",
	TokenMul:         "MUL",
	TokenDiv:         "DIV",
	TokenMod:         "MOD",
	TokenPlusAssign:  "PLUS_ASSIGN",
	TokenMinusAssign: "MINUS_ASSIGN",
	TokenMulAssign:   "MUL_ASSIGN",
	TokenDivAssign:   "DIV_ASSIGN",
	TokenModAssign:   "MOD_ASSIGN",
	TokenEq:          "EQ",
	TokenNe:          "NE",
	TokenLt:          "LT",
	TokenLe:          "LE",
	TokenGt:          "GT",
	TokenGe:          "GE",
}

// keywords maps keyword spellings to their token types. A spelling counts as
// a keyword only when the keyword boundary rule holds (see Lexer.readSymbol).
var keywords = map[string]TokenType{
	"and":        TokenAnd,
	"break":      TokenBreak,
	"continue":   TokenContinue,
	"elif":       TokenElif,
	"else":       TokenElse,
	"endforeach": TokenEndforeach,
	"endif":      TokenEndif,
	"false":      TokenFalse,
	"foreach":    TokenForeach,
	"if":         TokenIf,
	"in":         TokenIn,
	"not":        TokenNot,
	"or":         TokenOr,
	"true":       TokenTrue,
}

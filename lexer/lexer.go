// Package lexer implements the Velt lexical analyzer.
//
// The scanner classifies single bytes only; the input is treated as an
// opaque byte sequence and no Unicode categories are consulted.
package lexer

// Lexer represents the lexical analyzer. It holds no state beyond the input
// and a cursor, so independent lexers over different inputs are safe to use
// concurrently.
type Lexer struct {
	input    string
	position int // current position in input (points to next unread byte)
}

// New creates a new lexer instance over input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// atEnd reports whether the cursor has consumed the whole input
func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// peek returns the current byte without advancing
func (l *Lexer) peek() byte {
	return l.input[l.position]
}

// advance moves the cursor past the current byte
func (l *Lexer) advance() {
	l.position++
}

// atBoundary reports whether the current position terminates a keyword or
// numeric literal: end of input, whitespace, or a punctuation/operator byte.
func (l *Lexer) atBoundary() bool {
	return l.atEnd() || isSpace(l.peek()) || isPunct(l.peek())
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' ||
		ch == '\v' || ch == '\f'
}

func isPunct(ch byte) bool {
	switch ch {
	case '(', ')', '{', '}', '[', ']',
		'.', ',', ':', '?',
		'+', '-', '*', '/', '%',
		'=', '<', '>', '!':
		return true
	}
	return false
}

// isLetter checks if character is ASCII letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if character is ASCII digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isBinDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

func isOctDigit(ch byte) bool {
	return '0' <= ch && ch <= '7'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

func isSymbolStart(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

func isSymbolChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

// NextToken scans the input and returns the next token. Tokens after the
// first TokenEOF keep returning TokenEOF; a TokenError consumes nothing
// useful and the lexer performs no recovery or skipping.
func (l *Lexer) NextToken() Token {
	// Skip phase: whitespace, '#' comments to end of line, and '\' which
	// restarts the skip (a line continuation that belongs to no token).
	for {
		for !l.atEnd() && isSpace(l.peek()) {
			l.advance()
		}
		if l.atEnd() {
			return Token{Type: TokenEOF}
		}
		if l.peek() == '\\' {
			l.advance()
			continue
		}
		if l.peek() != '#' {
			break
		}
		for !l.atEnd() && l.peek() != '\n' {
			l.advance()
		}
	}

	switch ch := l.peek(); {
	case isSymbolStart(ch):
		return l.readSymbol()
	case isDigit(ch):
		return l.readNumber()
	case ch == '\'':
		return l.readString()
	}

	switch l.peek() {
	case '(':
		return l.readSingle(TokenLParen)
	case ')':
		return l.readSingle(TokenRParen)
	case '{':
		return l.readSingle(TokenLBrace)
	case '}':
		return l.readSingle(TokenRBrace)
	case '[':
		return l.readSingle(TokenLBracket)
	case ']':
		return l.readSingle(TokenRBracket)
	case '.':
		return l.readSingle(TokenDot)
	case ',':
		return l.readSingle(TokenComma)
	case ':':
		return l.readSingle(TokenColon)
	case '?':
		return l.readSingle(TokenQuestion)

	case '+':
		return l.readMaybeEq(TokenPlusAssign, TokenPlus)
	case '-':
		return l.readMaybeEq(TokenMinusAssign, TokenMinus)
	case '*':
		return l.readMaybeEq(TokenMulAssign, TokenMul)
	case '/':
		return l.readMaybeEq(TokenDivAssign, TokenDiv)
	case '%':
		return l.readMaybeEq(TokenModAssign, TokenMod)
	case '<':
		return l.readMaybeEq(TokenLe, TokenLt)
	case '>':
		return l.readMaybeEq(TokenGe, TokenGt)
	case '=':
		return l.readMaybeEq(TokenEq, TokenAssign)
	case '!':
		// '!' is valid only as the start of '!='
		tok := l.readMaybeEq(TokenNe, TokenError)
		if tok.Type == TokenError {
			return Token{Type: TokenError}
		}
		return tok

	default:
		return Token{Type: TokenError}
	}
}

// readSingle consumes one byte and returns it as a token of type tt
func (l *Lexer) readSingle(tt TokenType) Token {
	start := l.position
	l.advance()
	return Token{Type: tt, Literal: l.input[start:l.position]}
}

// readMaybeEq consumes the current byte and an optional trailing '=',
// selecting ifEq or ifNotEq accordingly.
func (l *Lexer) readMaybeEq(ifEq, ifNotEq TokenType) Token {
	start := l.position
	l.advance()
	if !l.atEnd() && l.peek() == '=' {
		l.advance()
		return Token{Type: ifEq, Literal: l.input[start:l.position]}
	}
	return Token{Type: ifNotEq, Literal: l.input[start:l.position]}
}

// readSymbol scans a maximal run of letters, digits and underscores and
// classifies it. The run is a keyword only when its spelling is in the
// keyword table and the byte ending the run satisfies the boundary rule;
// otherwise the whole run is an identifier (so `if_` and `iffy` are
// identifiers, and so is `if` directly followed by a quote).
func (l *Lexer) readSymbol() Token {
	start := l.position
	for !l.atEnd() && isSymbolChar(l.peek()) {
		l.advance()
	}
	word := l.input[start:l.position]
	if tt, ok := keywords[word]; ok && l.atBoundary() {
		return Token{Type: tt, Literal: word}
	}
	return Token{Type: TokenIdentifier, Literal: word}
}

// readNumber scans a numeric literal. A leading 0 may select a base prefix
// (0b, 0o, 0x); the recorded literal excludes the prefix, while decimal
// literals keep every digit. The literal must stop at a boundary byte or the
// whole token is an error.
func (l *Lexer) readNumber() Token {
	start := l.position
	tt := TokenDecNumber
	cond := isDigit

	if l.peek() == '0' {
		l.advance()
		if !l.atEnd() {
			switch l.peek() {
			case 'b':
				tt, cond = TokenBinNumber, isBinDigit
			case 'o':
				tt, cond = TokenOctNumber, isOctDigit
			case 'x':
				tt, cond = TokenHexNumber, isHexDigit
			}
		}
		if tt != TokenDecNumber {
			l.advance()
			if l.atEnd() || !cond(l.peek()) {
				return Token{Type: TokenError}
			}
			start = l.position // drop the 0 and base marker
		}
	}

	for !l.atEnd() && cond(l.peek()) {
		l.advance()
	}
	if !l.atBoundary() {
		return Token{Type: TokenError}
	}
	return Token{Type: tt, Literal: l.input[start:l.position]}
}

// readString scans a single- or triple-quoted string. Delimiters are never
// part of the literal. Reaching end of input before the closing delimiter is
// an error.
func (l *Lexer) readString() Token {
	l.advance() // opening quote

	if !l.atEnd() && l.peek() == '\'' {
		l.advance()
		if !l.atEnd() && l.peek() == '\'' {
			l.advance()
			return l.readMultilineString()
		}
		// '' is the empty string
		return Token{Type: TokenString, Literal: ""}
	}

	start := l.position
	for !l.atEnd() && l.peek() != '\'' {
		l.advance()
	}
	if l.atEnd() {
		return Token{Type: TokenError}
	}
	lit := l.input[start:l.position]
	l.advance() // closing quote
	return Token{Type: TokenString, Literal: lit}
}

// readMultilineString scans the body of a triple-quoted string. Runs of one
// or two quotes are content; the first run of three quotes closes the
// literal and is excluded from it.
func (l *Lexer) readMultilineString() Token {
	start := l.position
	for !l.atEnd() {
		for !l.atEnd() && l.peek() != '\'' {
			l.advance()
		}
		run := 0
		for run < 3 && !l.atEnd() && l.peek() == '\'' {
			l.advance()
			run++
		}
		if run == 3 {
			return Token{Type: TokenMultilineString, Literal: l.input[start : l.position-3]}
		}
	}
	return Token{Type: TokenError}
}

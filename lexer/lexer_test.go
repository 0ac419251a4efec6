package lexer

import "testing"

// lexOne scans a single token from input
func lexOne(t *testing.T, input string) Token {
	t.Helper()
	return New(input).NextToken()
}

func checkToken(t *testing.T, input string, want TokenType, literal string) {
	t.Helper()
	tok := lexOne(t, input)
	if tok.Type != want {
		t.Fatalf("input %q - tokentype wrong. expected=%q, got=%q",
			input, want, tok.Type)
	}
	if tok.Literal != literal {
		t.Fatalf("input %q - literal wrong. expected=%q, got=%q",
			input, literal, tok.Literal)
	}
}

func checkError(t *testing.T, input string) {
	t.Helper()
	tok := lexOne(t, input)
	if tok.Type != TokenError {
		t.Fatalf("input %q - expected error token, got=%q (%q)",
			input, tok.Type, tok.Literal)
	}
}

func TestSpaces(t *testing.T) {
	checkToken(t, "", TokenEOF, "")
	checkToken(t, " ", TokenEOF, "")
	checkToken(t, "\t\r\n", TokenEOF, "")
	checkToken(t, "# comment", TokenEOF, "")
	checkToken(t, "# comment\n", TokenEOF, "")
	checkToken(t, "# one\n# two\n", TokenEOF, "")
}

func TestNumbers(t *testing.T) {
	checkToken(t, "0", TokenDecNumber, "0")
	checkToken(t, "0123456789", TokenDecNumber, "0123456789")
	checkError(t, "0_")

	checkToken(t, "0b01", TokenBinNumber, "01")
	checkError(t, "0b")
	checkError(t, "0b_")
	checkError(t, "0b2")

	checkError(t, "0o")
	checkToken(t, "0o1234567", TokenOctNumber, "1234567")
	checkError(t, "0o8")
	checkError(t, "0o_")

	checkError(t, "0x")
	checkToken(t, "0x123456789abcdef", TokenHexNumber, "123456789abcdef")
	checkToken(t, "0x123456789ABCDEF", TokenHexNumber, "123456789ABCDEF")
	checkError(t, "0x_")
}

func TestStrings(t *testing.T) {
	checkToken(t, "''", TokenString, "")
	checkToken(t, "'sample'", TokenString, "sample")
	checkToken(t, "''''''", TokenMultilineString, "")
	checkToken(t, "'''sample'''", TokenMultilineString, "sample")
	checkToken(t, "'''sam'ple'''", TokenMultilineString, "sam'ple")
	checkToken(t, "'''sam''ple'''", TokenMultilineString, "sam''ple")
	checkToken(t, "'''one\ntwo'''", TokenMultilineString, "one\ntwo")

	checkError(t, "'")
	checkError(t, "'''")
	checkError(t, "'''sam''")
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"and", TokenAnd},
		{"break", TokenBreak},
		{"continue", TokenContinue},
		{"elif", TokenElif},
		{"else", TokenElse},
		{"endforeach", TokenEndforeach},
		{"endif", TokenEndif},
		{"false", TokenFalse},
		{"foreach", TokenForeach},
		{"if", TokenIf},
		{"in", TokenIn},
		{"not", TokenNot},
		{"or", TokenOr},
		{"true", TokenTrue},
	}

	for i, tt := range tests {
		tok := lexOne(t, tt.input)
		if tok.Type != tt.want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.want, tok.Type)
		}
		if tok.Literal != tt.input {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.input, tok.Literal)
		}
	}
}

// Keywords followed by a symbol character fall back to identifiers: the
// boundary rule requires end of input, whitespace or punctuation after the
// keyword spelling.
func TestIdentifiers(t *testing.T) {
	checkToken(t, "sample", TokenIdentifier, "sample")
	checkToken(t, "sample123", TokenIdentifier, "sample123")
	checkToken(t, "_under", TokenIdentifier, "_under")

	for _, kw := range []string{
		"and", "break", "continue", "elif", "else", "endforeach",
		"endif", "false", "foreach", "if", "in", "not", "or", "true",
	} {
		checkToken(t, kw+"_", TokenIdentifier, kw+"_")
	}

	checkToken(t, "iffy", TokenIdentifier, "iffy")
	checkToken(t, "end", TokenIdentifier, "end")
	checkToken(t, "endforeachx", TokenIdentifier, "endforeachx")
}

func TestKeywordBoundary(t *testing.T) {
	// punctuation terminates a keyword
	checkToken(t, "if(", TokenIf, "if")
	checkToken(t, "in+", TokenIn, "in")
	// a quote is neither whitespace nor punctuation, so the spelling
	// degrades to an identifier
	checkToken(t, "if'x'", TokenIdentifier, "if")
}

func TestPunctuation(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"(", TokenLParen},
		{")", TokenRParen},
		{"{", TokenLBrace},
		{"}", TokenRBrace},
		{"[", TokenLBracket},
		{"]", TokenRBracket},
		{".", TokenDot},
		{",", TokenComma},
		{":", TokenColon},
		{"?", TokenQuestion},
	}

	for i, tt := range tests {
		tok := lexOne(t, tt.input)
		if tok.Type != tt.want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.want, tok.Type)
		}
		if tok.Literal != tt.input {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.input, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"+", TokenPlus},
		{"-", TokenMinus},
		{"*", TokenMul},
		{"/", TokenDiv},
		{"%", TokenMod},

		{"=", TokenAssign},
		{"+=", TokenPlusAssign},
		{"-=", TokenMinusAssign},
		{"*=", TokenMulAssign},
		{"/=", TokenDivAssign},
		{"%=", TokenModAssign},

		{"==", TokenEq},
		{"!=", TokenNe},

		{">", TokenGt},
		{">=", TokenGe},
		{"<", TokenLt},
		{"<=", TokenLe},
	}

	for i, tt := range tests {
		tok := lexOne(t, tt.input)
		if tok.Type != tt.want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.want, tok.Type)
		}
		if tok.Literal != tt.input {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.input, tok.Literal)
		}
	}

	// a bare '!' forms no token
	checkError(t, "!")
	checkError(t, "! =")
}

func TestBackslash(t *testing.T) {
	checkToken(t, "\\sample", TokenIdentifier, "sample")
	checkToken(t, "\\ \n sample", TokenIdentifier, "sample")
}

func TestInvalidCharacters(t *testing.T) {
	checkError(t, "$")
	checkError(t, "\"text\"")
	checkError(t, ";")
}

func TestTokenStream(t *testing.T) {
	input := `foreach x : xs # loop
	total += x * 0x10
endforeach`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenForeach, "foreach"},
		{TokenIdentifier, "x"},
		{TokenColon, ":"},
		{TokenIdentifier, "xs"},
		{TokenIdentifier, "total"},
		{TokenPlusAssign, "+="},
		{TokenIdentifier, "x"},
		{TokenMul, "*"},
		{TokenHexNumber, "10"},
		{TokenEndforeach, "endforeach"},
		{TokenEOF, ""},
		{TokenEOF, ""}, // stays EOF once the input is exhausted
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

/*
File   : golox/lexer/lexer_test.go
Author : ostin-r
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ScanTokens
// Input: source code
// ExpectedTokens: list of expected tokens (types and lexemes)
type TestScanTokens struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ScanTokens tests token types and lexemes over a variety
// of inputs. Line numbers and literal values are checked separately.
func TestNewLexer_ScanTokens(t *testing.T) {

	tests := []TestScanTokens{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
			},
		},
		{
			Input: ` { } ( ) , . ; * / `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(COMMA_DELIM, ","),
				NewToken(DOT_OP, "."),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(STAR_OP, "*"),
				NewToken(SLASH_OP, "/"),
			},
		},
		{
			Input: `! != = == < <= > >=`,
			ExpectedTokens: []Token{
				NewToken(BANG_OP, "!"),
				NewToken(BANG_EQ_OP, "!="),
				NewToken(ASSIGN_OP, "="),
				NewToken(EQ_OP, "=="),
				NewToken(LT_OP, "<"),
				NewToken(LE_OP, "<="),
				NewToken(GT_OP, ">"),
				NewToken(GE_OP, ">="),
			},
		},
		{
			Input: `abc _under __a19bcd_aa90 a12`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(IDENTIFIER_ID, "_under"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: `and class else false for fun if nil or print return super this true var while`,
			ExpectedTokens: []Token{
				NewToken(AND_KEY, "and"),
				NewToken(CLASS_KEY, "class"),
				NewToken(ELSE_KEY, "else"),
				NewToken(FALSE_KEY, "false"),
				NewToken(FOR_KEY, "for"),
				NewToken(FUN_KEY, "fun"),
				NewToken(IF_KEY, "if"),
				NewToken(NIL_LIT, "nil"),
				NewToken(OR_KEY, "or"),
				NewToken(PRINT_KEY, "print"),
				NewToken(RETURN_KEY, "return"),
				NewToken(SUPER_KEY, "super"),
				NewToken(THIS_KEY, "this"),
				NewToken(TRUE_KEY, "true"),
				NewToken(VAR_KEY, "var"),
				NewToken(WHILE_KEY, "while"),
			},
		},
		{
			// A comment is discarded to end of line; code resumes after.
			Input: "var x; // the rest is ignored != ==\nprint x;",
			ExpectedTokens: []Token{
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(PRINT_KEY, "print"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		tokens := lex.ScanTokens()

		assert.False(t, lex.HasErrors(), "input %q should lex cleanly", test.Input)
		assert.Equal(t, len(test.ExpectedTokens)+1, len(tokens), "input %q", test.Input)

		for i, expected := range test.ExpectedTokens {
			assert.Equal(t, expected.Type, tokens[i].Type, "input %q token %d", test.Input, i)
			assert.Equal(t, expected.Literal, tokens[i].Literal, "input %q token %d", test.Input, i)
		}

		// The final token is always the EOF sentinel.
		assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type)
	}
}

// TestNewLexer_LiteralValues tests the decoded values carried on number
// and string tokens.
func TestNewLexer_LiteralValues(t *testing.T) {
	lex := NewLexer(`123 45.5 "hello world" ""`)
	tokens := lex.ScanTokens()

	assert.False(t, lex.HasErrors())
	assert.Equal(t, float64(123), tokens[0].Value)
	assert.Equal(t, 45.5, tokens[1].Value)
	assert.Equal(t, "hello world", tokens[2].Value)
	assert.Equal(t, `"hello world"`, tokens[2].Literal)
	assert.Equal(t, "", tokens[3].Value)
}

// TestNewLexer_LineTracking tests 1-based line numbers, including
// newlines embedded in string literals.
func TestNewLexer_LineTracking(t *testing.T) {
	lex := NewLexer("var a;\nvar b;\n\"two\nlines\"\nvar c;")
	tokens := lex.ScanTokens()

	assert.False(t, lex.HasErrors())
	assert.Equal(t, 1, tokens[0].Line) // var
	assert.Equal(t, 2, tokens[3].Line) // var (second)
	assert.Equal(t, 4, tokens[6].Line) // string token carries the line it ends on
	assert.Equal(t, 5, tokens[7].Line) // var (third) after the 2-line string
	assert.Equal(t, 5, tokens[len(tokens)-1].Line)
	assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type)
}

// TestNewLexer_DotHandling tests that a trailing dot is not absorbed
// into a number literal (no fractional digits follow it).
func TestNewLexer_DotHandling(t *testing.T) {
	lex := NewLexer(`12.5 12. obj.field`)
	tokens := lex.ScanTokens()

	assert.False(t, lex.HasErrors())
	assert.Equal(t, NUMBER_LIT, tokens[0].Type)
	assert.Equal(t, "12.5", tokens[0].Literal)
	assert.Equal(t, NUMBER_LIT, tokens[1].Type)
	assert.Equal(t, "12", tokens[1].Literal)
	assert.Equal(t, DOT_OP, tokens[2].Type)
	assert.Equal(t, IDENTIFIER_ID, tokens[3].Type)
	assert.Equal(t, DOT_OP, tokens[4].Type)
	assert.Equal(t, IDENTIFIER_ID, tokens[5].Type)
}

// TestNewLexer_Errors tests that lexical errors are collected with their
// line numbers while scanning continues.
func TestNewLexer_Errors(t *testing.T) {
	lex := NewLexer("var a = 1;\n@\nvar b = 2;")
	tokens := lex.ScanTokens()

	assert.True(t, lex.HasErrors())
	assert.Len(t, lex.GetErrors(), 1)
	assert.Equal(t, "[line 2] Error: Unexpected character '@'.", lex.GetErrors()[0])

	// The stream stays usable: both declarations are fully tokenized.
	assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type)
	assert.Equal(t, 11, len(tokens))
}

// TestNewLexer_UnterminatedString tests the unterminated-string error.
func TestNewLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`var s = "never closed`)
	lex.ScanTokens()

	assert.True(t, lex.HasErrors())
	assert.Equal(t, "[line 1] Error: Unterminated string.", lex.GetErrors()[0])
}

// TestNewLexer_LexemeRoundTrip tests the property that the concatenated
// lexemes of a clean scan, ignoring whitespace and comments, equal the
// source.
func TestNewLexer_LexemeRoundTrip(t *testing.T) {
	source := "fun add(a,b){return a+b;}//tail\nprint add(1,2.5)>=3;"
	lex := NewLexer(source)
	tokens := lex.ScanTokens()

	assert.False(t, lex.HasErrors())

	var sb strings.Builder
	for _, token := range tokens {
		sb.WriteString(token.Literal)
	}

	stripped := "funadd(a,b){returna+b;}printadd(1,2.5)>=3;"
	assert.Equal(t, stripped, sb.String())
}

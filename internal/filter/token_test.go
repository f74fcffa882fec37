package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []token) []tokenType {
	out := make([]tokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.typ
	}
	return out
}

func TestLexer_Tokens(t *testing.T) {
	tokens := newLexer(`a.b = -1,2.50:Meter~3:Meter & c!=null&d>=e&f<="x\"y"&g>1&h<2`).tokenize()

	assert.Equal(t, []tokenType{
		tokenIdent, tokenEq, tokenInt, tokenComma, tokenNumber, tokenColon, tokenIdent,
		tokenTilde, tokenInt, tokenColon, tokenIdent, tokenAmp,
		tokenIdent, tokenNotEq, tokenNull, tokenAmp,
		tokenIdent, tokenGtEq, tokenIdent, tokenAmp,
		tokenIdent, tokenLtEq, tokenString, tokenAmp,
		tokenIdent, tokenGt, tokenInt, tokenAmp,
		tokenIdent, tokenLt, tokenInt,
		tokenEOF,
	}, tokenTypes(tokens))

	assert.Equal(t, "a.b", tokens[0].value)
	assert.Equal(t, 0, tokens[0].pos)
	assert.Equal(t, "-1", tokens[2].value)
	assert.Equal(t, 6, tokens[2].pos)
	assert.Equal(t, "2.50", tokens[4].value)
	assert.Equal(t, `x"y`, tokens[22].value)
}

func TestLexer_Whitespace(t *testing.T) {
	tokens := newLexer("  a\t=\n1  ").tokenize()
	require.Len(t, tokens, 4)
	assert.Equal(t, tokenEOF, tokens[3].typ)
	assert.Equal(t, 2, tokens[0].pos)
	assert.Equal(t, 6, tokens[2].pos)
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{"bare bang", "a!1", 1},
		{"unknown character", "a=1#", 3},
		{"unterminated text", `a="abc`, 2},
		{"bad escape", `a="a\tb"`, 4},
		{"sign without digits", "a=-x", 2},
		{"dangling decimal point", "a=1.", 2},
		{"empty segment", "a..b=1", 2},
		{"trailing dot", "a.=1", 1},
		{"digit segment", "a.1=1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := newLexer(tt.input).tokenize()
			last := tokens[len(tokens)-1]
			require.Equal(t, tokenError, last.typ, "tokens: %v", tokens)
			assert.Equal(t, tt.pos, last.pos)
			assert.NotEmpty(t, last.value)
		})
	}
}

func TestLexer_NullKeyword(t *testing.T) {
	tokens := newLexer("nullable=null").tokenize()
	assert.Equal(t, []tokenType{tokenIdent, tokenEq, tokenNull, tokenEOF}, tokenTypes(tokens))
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "'!='", tokenNotEq.String())
	assert.Equal(t, "end of filter", tokenEOF.String())
	assert.Equal(t, "unknown", tokenType(200).String())
}

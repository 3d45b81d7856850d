package csscolor

import (
	"fmt"
	"strconv"
	"strings"
)

// This file carries the tokenizer and component-value reader that feed the
// dispatcher. It follows CSS Syntax Module Level 3 §4, reduced to the token
// kinds that can appear inside a color value; anything outside that set
// surfaces as a delim token and degrades downstream.
// Reference: https://www.w3.org/TR/css-syntax-3/

// TokenType represents the type of a CSS token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenFunction
	TokenHash
	TokenString
	TokenDelim
	TokenNumber
	TokenPercentage
	TokenDimension
	TokenWhitespace
	TokenComma
	TokenOpenParen
	TokenCloseParen
)

// Token represents a single CSS token.
type Token struct {
	Type     TokenType
	Value    string  // string value for ident/function/hash/string tokens
	NumValue float64 // numeric value for number/percentage/dimension tokens
	Unit     string  // unit for dimension tokens
	Delim    rune    // the delimiter character for delim tokens
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "<EOF>"
	case TokenIdent:
		return fmt.Sprintf("<IDENT %q>", t.Value)
	case TokenFunction:
		return fmt.Sprintf("<FUNCTION %q>", t.Value)
	case TokenHash:
		return fmt.Sprintf("<HASH %q>", t.Value)
	case TokenString:
		return fmt.Sprintf("<STRING %q>", t.Value)
	case TokenDelim:
		return fmt.Sprintf("<DELIM %q>", string(t.Delim))
	case TokenNumber:
		return fmt.Sprintf("<NUMBER %v>", t.NumValue)
	case TokenPercentage:
		return fmt.Sprintf("<PERCENTAGE %v%%>", t.NumValue)
	case TokenDimension:
		return fmt.Sprintf("<DIMENSION %v%s>", t.NumValue, t.Unit)
	case TokenWhitespace:
		return "<WHITESPACE>"
	case TokenComma:
		return "<COMMA>"
	case TokenOpenParen:
		return "<(>"
	case TokenCloseParen:
		return "<)>"
	default:
		return fmt.Sprintf("<UNKNOWN %d>", t.Type)
	}
}

// Tokenizer tokenizes a CSS color value.
type Tokenizer struct {
	input []rune
	pos   int
}

// NewTokenizer creates a tokenizer over the given input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: []rune(preprocessInput(input))}
}

// preprocessInput normalizes line endings and NUL per CSS Syntax §3.3.
func preprocessInput(input string) string {
	if !strings.ContainsAny(input, "\r\f\x00") {
		return input
	}
	var sb strings.Builder
	sb.Grow(len(input))
	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			sb.WriteRune('\n')
		case '\f':
			sb.WriteRune('\n')
		case 0:
			sb.WriteRune('�')
		default:
			sb.WriteRune(runes[i])
		}
	}
	return sb.String()
}

// peek returns the current code point without consuming it.
func (t *Tokenizer) peek() rune {
	return t.peekN(0)
}

// peekN returns the code point at offset n from the current position.
func (t *Tokenizer) peekN(n int) rune {
	pos := t.pos + n
	if pos >= len(t.input) || pos < 0 {
		return -1 // EOF
	}
	return t.input[pos]
}

// consume consumes and returns the current code point.
func (t *Tokenizer) consume() rune {
	if t.pos >= len(t.input) {
		return -1
	}
	r := t.input[t.pos]
	t.pos++
	return r
}

// reconsume backs up one code point.
func (t *Tokenizer) reconsume() {
	if t.pos > 0 {
		t.pos--
	}
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigitRune(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameStartCodePoint(r rune) bool {
	return isLetter(r) || r >= 0x80 || r == '_'
}

func isNameCodePoint(r rune) bool {
	return isNameStartCodePoint(r) || isDigit(r) || r == '-'
}

// startsWithValidEscapeAt checks whether the code points at offset form a
// valid escape.
func (t *Tokenizer) startsWithValidEscapeAt(offset int) bool {
	return t.peekN(offset) == '\\' && t.peekN(offset+1) != '\n'
}

// startsIdentifier checks whether the next code points would start an
// identifier.
func (t *Tokenizer) startsIdentifier() bool {
	first := t.peek()
	if isNameStartCodePoint(first) {
		return true
	}
	if first == '-' {
		second := t.peekN(1)
		return isNameStartCodePoint(second) || second == '-' || t.startsWithValidEscapeAt(1)
	}
	if first == '\\' {
		return t.startsWithValidEscapeAt(0)
	}
	return false
}

// startsNumber checks whether the next code points would start a number.
func (t *Tokenizer) startsNumber() bool {
	first := t.peek()
	if isDigit(first) {
		return true
	}
	if first == '+' || first == '-' {
		second := t.peekN(1)
		return isDigit(second) || (second == '.' && isDigit(t.peekN(2)))
	}
	if first == '.' {
		return isDigit(t.peekN(1))
	}
	return false
}

// consumeEscape consumes an escape sequence and returns the code point.
// The backslash has already been consumed.
func (t *Tokenizer) consumeEscape() rune {
	r := t.consume()
	if r == -1 {
		return '�'
	}
	if isHexDigitRune(r) {
		hex := string(r)
		for i := 0; i < 5 && isHexDigitRune(t.peek()); i++ {
			hex += string(t.consume())
		}
		if isWhitespace(t.peek()) {
			t.consume()
		}
		val, _ := strconv.ParseInt(hex, 16, 32)
		if val == 0 || val > 0x10FFFF || (val >= 0xD800 && val <= 0xDFFF) {
			return '�'
		}
		return rune(val)
	}
	return r
}

// consumeName consumes an identifier and returns the string.
func (t *Tokenizer) consumeName() string {
	var result strings.Builder
	for {
		r := t.consume()
		if isNameCodePoint(r) {
			result.WriteRune(r)
		} else if r == '\\' && t.peek() != '\n' {
			result.WriteRune(t.consumeEscape())
		} else {
			if r != -1 {
				t.reconsume()
			}
			return result.String()
		}
	}
}

// consumeNumber consumes a numeric value.
func (t *Tokenizer) consumeNumber() float64 {
	var repr strings.Builder

	if t.peek() == '+' || t.peek() == '-' {
		repr.WriteRune(t.consume())
	}
	for isDigit(t.peek()) {
		repr.WriteRune(t.consume())
	}
	if t.peek() == '.' && isDigit(t.peekN(1)) {
		repr.WriteRune(t.consume())
		for isDigit(t.peek()) {
			repr.WriteRune(t.consume())
		}
	}
	if t.peek() == 'e' || t.peek() == 'E' {
		next := t.peekN(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(t.peekN(2))) {
			repr.WriteRune(t.consume())
			if t.peek() == '+' || t.peek() == '-' {
				repr.WriteRune(t.consume())
			}
			for isDigit(t.peek()) {
				repr.WriteRune(t.consume())
			}
		}
	}

	val, _ := strconv.ParseFloat(repr.String(), 64)
	return val
}

// consumeNumericToken consumes a number, percentage or dimension token.
func (t *Tokenizer) consumeNumericToken() Token {
	numVal := t.consumeNumber()

	if t.startsIdentifier() {
		return Token{Type: TokenDimension, NumValue: numVal, Unit: t.consumeName()}
	}
	if t.peek() == '%' {
		t.consume()
		return Token{Type: TokenPercentage, NumValue: numVal}
	}
	return Token{Type: TokenNumber, NumValue: numVal}
}

// consumeString consumes a string token. A bare newline or EOF ends the
// string early with whatever was collected.
func (t *Tokenizer) consumeString(endChar rune) Token {
	var result strings.Builder
	for {
		r := t.consume()
		switch {
		case r == endChar || r == -1:
			return Token{Type: TokenString, Value: result.String()}
		case r == '\n':
			t.reconsume()
			return Token{Type: TokenString, Value: result.String()}
		case r == '\\':
			next := t.peek()
			if next == -1 {
				continue
			}
			if next == '\n' {
				t.consume()
			} else {
				result.WriteRune(t.consumeEscape())
			}
		default:
			result.WriteRune(r)
		}
	}
}

// consumeIdentLikeToken consumes an identifier or function token.
func (t *Tokenizer) consumeIdentLikeToken() Token {
	name := t.consumeName()
	if t.peek() == '(' {
		t.consume()
		return Token{Type: TokenFunction, Value: name}
	}
	return Token{Type: TokenIdent, Value: name}
}

// consumeHashToken consumes a hash token, or a '#' delim when no name
// follows.
func (t *Tokenizer) consumeHashToken() Token {
	t.consume() // #
	if isNameCodePoint(t.peek()) || t.startsWithValidEscapeAt(0) {
		return Token{Type: TokenHash, Value: t.consumeName()}
	}
	return Token{Type: TokenDelim, Delim: '#'}
}

// NextToken returns the next token from the input.
func (t *Tokenizer) NextToken() Token {
	// Comments never produce tokens.
	for t.peek() == '/' && t.peekN(1) == '*' {
		t.consume()
		t.consume()
		for {
			r := t.consume()
			if r == -1 || (r == '*' && t.peek() == '/') {
				t.consume()
				break
			}
		}
	}

	r := t.consume()

	switch {
	case r == -1:
		return Token{Type: TokenEOF}

	case isWhitespace(r):
		for isWhitespace(t.peek()) {
			t.consume()
		}
		return Token{Type: TokenWhitespace}

	case r == '"' || r == '\'':
		return t.consumeString(r)

	case r == '#':
		t.reconsume()
		return t.consumeHashToken()

	case r == '(':
		return Token{Type: TokenOpenParen}

	case r == ')':
		return Token{Type: TokenCloseParen}

	case r == ',':
		return Token{Type: TokenComma}

	case r == '+' || r == '.':
		t.reconsume()
		if t.startsNumber() {
			return t.consumeNumericToken()
		}
		t.consume()
		return Token{Type: TokenDelim, Delim: r}

	case r == '-':
		t.reconsume()
		if t.startsNumber() {
			return t.consumeNumericToken()
		}
		if t.startsIdentifier() {
			return t.consumeIdentLikeToken()
		}
		t.consume()
		return Token{Type: TokenDelim, Delim: r}

	case isDigit(r):
		t.reconsume()
		return t.consumeNumericToken()

	case r == '\\':
		if t.peek() != '\n' {
			t.reconsume()
			return t.consumeIdentLikeToken()
		}
		return Token{Type: TokenDelim, Delim: r}

	case isNameStartCodePoint(r):
		t.reconsume()
		return t.consumeIdentLikeToken()

	default:
		return Token{Type: TokenDelim, Delim: r}
	}
}

// TokenizeAll tokenizes the entire input, including the closing EOF token.
func (t *Tokenizer) TokenizeAll() []Token {
	var tokens []Token
	for {
		tok := t.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// ComponentValue is one parsed value from a token stream: either a preserved
// token or a function with its argument values.
type ComponentValue interface {
	componentValue()
	String() string
}

// PreservedToken is a component value wrapping a single token.
type PreservedToken struct {
	Token Token
}

func (PreservedToken) componentValue() {}
func (p PreservedToken) String() string {
	return p.Token.String()
}

// Function is a function-call component value: a name plus the component
// values between its parentheses.
type Function struct {
	Name   string
	Values []ComponentValue
}

func (*Function) componentValue() {}
func (f *Function) String() string {
	var sb strings.Builder
	sb.WriteString(f.Name)
	sb.WriteString("(")
	for i, v := range f.Values {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// ReadComponentValue reads one component value from the tokenizer, skipping
// leading whitespace. Functions are consumed through their closing paren.
func ReadComponentValue(t *Tokenizer) ComponentValue {
	tok := t.NextToken()
	for tok.Type == TokenWhitespace {
		tok = t.NextToken()
	}
	if tok.Type == TokenFunction {
		return readFunction(t, tok.Value)
	}
	return PreservedToken{Token: tok}
}

func readFunction(t *Tokenizer, name string) *Function {
	fn := &Function{Name: name}
	for {
		tok := t.NextToken()
		switch tok.Type {
		case TokenEOF, TokenCloseParen:
			return fn
		case TokenWhitespace:
			// Whitespace only separates arguments.
		case TokenFunction:
			fn.Values = append(fn.Values, readFunction(t, tok.Value))
		default:
			fn.Values = append(fn.Values, PreservedToken{Token: tok})
		}
	}
}

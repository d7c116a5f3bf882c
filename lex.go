package exprtree

import (
	"math"
	"strconv"
)

// Token is a lexical unit of an expression. Tokens are produced by Tokenize
// and consumed by the tree builder; the command-line tool also prints them.
type Token struct {
	// Kind is the token's type.
	Kind TokenKind
	// Num is the literal value when Kind is TokenNum.
	Num int64
	// Name is the variable name when Kind is TokenVar.
	Name string
	// Pos is the 1-based column of the token's first character.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return strconv.FormatInt(t.Num, 10)
	case TokenVar:
		return t.Name
	default:
		return t.Kind.String()
	}
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is an integer literal.
	TokenNum
	// TokenVar is a variable name, a run of lowercase ASCII letters.
	TokenVar
	// TokenPlus, TokenMinus, TokenMul, and TokenDiv are binary operators.
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	// TokenLParen and TokenRParen are parentheses.
	TokenLParen
	TokenRParen
	// TokenEnd terminates every successfully scanned token sequence.
	TokenEnd
)

func (k TokenKind) String() string {
	switch k {
	case TokenNum:
		return "number"
	case TokenVar:
		return "variable"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenMul:
		return "*"
	case TokenDiv:
		return "/"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenEnd:
		return "end"
	default:
		return "none"
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }

// Tokenize scans an expression into a token sequence ending with a TokenEnd
// token. The scan tracks whether the next significant character must begin an
// operand; a minus sign in operand position is rewritten in place, either to
// a negative literal when digits follow or to the pair -1 * otherwise.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	operand := true
	seen := false
	for i := 0; i < len(src); {
		c := src[i]
		if isSpace(c) {
			i++
			continue
		}
		seen = true
		if operand {
			switch {
			case c == '-':
				var err error
				toks, i, err = lexNeg(src, i, toks)
				if err != nil {
					return nil, err
				}
				// A negative literal completes an operand; the -1 * rewrite
				// still needs one.
				operand = toks[len(toks)-1].Kind == TokenMul
			case isDigit(c):
				tok, rest, err := lexNumber(src, i, false)
				if err != nil {
					return nil, err
				}
				toks = append(toks, tok)
				i = rest
				operand = false
			case isLower(c):
				tok, rest := lexName(src, i)
				toks = append(toks, tok)
				i = rest
				operand = false
			case c == '(':
				toks = append(toks, Token{Kind: TokenLParen, Pos: i + 1})
				i++
			case c == ')':
				return nil, &MissingOperandError{Col: i + 1, Near: ")"}
			case c == '+', c == '*', c == '/':
				return nil, &MissingOperandError{Col: i + 1, Near: string(c)}
			default:
				return nil, &InvalidCharError{Col: i + 1, Char: rune(c)}
			}
			continue
		}
		switch c {
		case '+':
			toks = append(toks, Token{Kind: TokenPlus, Pos: i + 1})
			operand = true
		case '-':
			toks = append(toks, Token{Kind: TokenMinus, Pos: i + 1})
			operand = true
		case '*':
			toks = append(toks, Token{Kind: TokenMul, Pos: i + 1})
			operand = true
		case '/':
			toks = append(toks, Token{Kind: TokenDiv, Pos: i + 1})
			operand = true
		case ')':
			toks = append(toks, Token{Kind: TokenRParen, Pos: i + 1})
		default:
			if isDigit(c) || isLower(c) || c == '(' {
				return nil, &MissingOperatorError{Col: i + 1}
			}
			return nil, &InvalidCharError{Col: i + 1, Char: rune(c)}
		}
		i++
	}
	if !seen {
		return nil, &EmptyExpressionError{Col: len(src) + 1}
	}
	if operand {
		return nil, &TrailingOperatorError{Col: len(src) + 1}
	}
	toks = append(toks, Token{Kind: TokenEnd, Pos: len(src) + 1})
	return toks, nil
}

// minMagnitude is the magnitude of the most negative int64. It is one more
// than MaxInt64, so negative literals get one extra unit of headroom.
const minMagnitude = uint64(math.MaxInt64) + 1

// lexNumber scans a maximal run of digits starting at i as an int64
// magnitude. When neg is set, the magnitude may be up to minMagnitude and the
// token's value is negated.
func lexNumber(src string, i int, neg bool) (Token, int, error) {
	j := i
	for j < len(src) && isDigit(src[j]) {
		j++
	}
	text := src[i:j]
	if text == "" {
		return Token{}, 0, &NumberError{Col: i + 1, Text: text}
	}
	mag, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		if err.(*strconv.NumError).Err == strconv.ErrRange {
			return Token{}, 0, &LitOverflowError{Col: i + 1, Text: text}
		}
		return Token{}, 0, &NumberError{Col: i + 1, Text: text}
	}
	tok := Token{Kind: TokenNum, Pos: i + 1}
	switch {
	case !neg:
		if mag > uint64(math.MaxInt64) {
			return Token{}, 0, &LitOverflowError{Col: i + 1, Text: text}
		}
		tok.Num = int64(mag)
	case mag > minMagnitude:
		return Token{}, 0, &LitOverflowError{Col: i + 1, Text: text}
	case mag == minMagnitude:
		tok.Num = math.MinInt64
	default:
		tok.Num = -int64(mag)
	}
	return tok, j, nil
}

// lexName scans a maximal run of lowercase letters starting at i.
func lexName(src string, i int) (Token, int) {
	j := i
	for j < len(src) && isLower(src[j]) {
		j++
	}
	return Token{Kind: TokenVar, Name: src[i:j], Pos: i + 1}, j
}

// lexNeg handles a minus sign in operand position. It looks ahead past
// whitespace: digits become a single negative literal token, while a letter,
// open paren, or another minus rewrites this sign to -1 * and consumes only
// the sign itself.
func lexNeg(src string, i int, toks []Token) ([]Token, int, error) {
	j := i + 1
	for j < len(src) && isSpace(src[j]) {
		j++
	}
	if j >= len(src) {
		return nil, 0, &MissingOperandError{Col: i + 1, Near: "-"}
	}
	switch c := src[j]; {
	case isDigit(c):
		tok, rest, err := lexNumber(src, j, true)
		if err != nil {
			return nil, 0, err
		}
		tok.Pos = i + 1
		return append(toks, tok), rest, nil
	case isLower(c), c == '(', c == '-':
		toks = append(toks,
			Token{Kind: TokenNum, Num: -1, Pos: i + 1},
			Token{Kind: TokenMul, Pos: i + 1},
		)
		return toks, i + 1, nil
	default:
		return nil, 0, &MissingOperandError{Col: j + 1, Near: "-"}
	}
}

package exprtree

import (
	"sort"

	"github.com/edwingeng/deque"
)

// Expr  = Term { ('+' | '-') Term }
// Term  = Factor { ('*' | '/') Factor }
// Factor = INTEGER | VARIABLE | '(' Expr ')' | '-' Factor
// VARIABLE = [a-z]+
// INTEGER  = [0-9]+

// Expr is a parsed expression that can be evaluated with variable bindings or
// serialized to a preorder token stream.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the sorted list of variable names used in the expression.
	names []string
}

// Parse parses an infix expression into a tree.
func Parse(src string) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return build(toks)
}

// precedence reports the binding strength of a binary operator token. Higher
// is more binding; non-operator tokens get -1.
func precedence(k TokenKind) int {
	switch k {
	case TokenMul, TokenDiv:
		return 2
	case TokenPlus, TokenMinus:
		return 1
	default:
		return -1
	}
}

// opNode is the tree node kind produced by a binary operator token.
func opNode(k TokenKind) nodeKind {
	switch k {
	case TokenPlus:
		return nodeAdd
	case TokenMinus:
		return nodeSub
	case TokenMul:
		return nodeMul
	case TokenDiv:
		return nodeDiv
	default:
		return nodeNone
	}
}

// build runs the shunting-yard algorithm over a token sequence. Subtrees
// collect on the value stack while operators and open parens wait on the
// operator stack; each operator that pops combines the top two subtrees.
func build(toks []Token) (*Expr, error) {
	vals := deque.NewDeque()
	ops := deque.NewDeque()
	names := make(map[string]bool)
scan:
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			vals.PushBack(&node{kind: nodeNum, num: tok.Num})
		case TokenVar:
			names[tok.Name] = true
			vals.PushBack(&node{kind: nodeVar, name: tok.Name})
		case TokenLParen:
			ops.PushBack(tok)
		case TokenRParen:
			for {
				if ops.Len() == 0 {
					return nil, &BracketError{Col: tok.Pos, Right: ")"}
				}
				if ops.Back().(Token).Kind == TokenLParen {
					ops.PopBack()
					break
				}
				if err := applyTop(vals, ops); err != nil {
					return nil, err
				}
			}
		case TokenPlus, TokenMinus, TokenMul, TokenDiv:
			// Equal precedence pops before pushing, which makes the
			// operators left-associative.
			for ops.Len() > 0 {
				top := ops.Back().(Token)
				if top.Kind == TokenLParen || precedence(top.Kind) < precedence(tok.Kind) {
					break
				}
				if err := applyTop(vals, ops); err != nil {
					return nil, err
				}
			}
			ops.PushBack(tok)
		case TokenEnd:
			break scan
		default:
			return nil, &MalformedExpressionError{Col: tok.Pos}
		}
	}
	for ops.Len() > 0 {
		if top := ops.Back().(Token); top.Kind == TokenLParen {
			return nil, &BracketError{Col: top.Pos, Left: "("}
		}
		if err := applyTop(vals, ops); err != nil {
			return nil, err
		}
	}
	if vals.Len() != 1 {
		return nil, &MalformedExpressionError{}
	}
	ex := Expr{
		n:     vals.PopBack().(*node),
		names: make([]string, 0, len(names)),
	}
	for k := range names {
		ex.names = append(ex.names, k)
	}
	sort.Strings(ex.names)
	return &ex, nil
}

// applyTop pops the top operator and the top two subtrees and pushes the
// combined subtree. The second subtree popped is the left operand.
func applyTop(vals, ops deque.Deque) error {
	if ops.Len() == 0 {
		return &MissingOperatorError{}
	}
	op := ops.PopBack().(Token)
	if vals.Len() < 2 {
		return &MissingOperandError{Col: op.Pos, Near: op.Kind.String()}
	}
	right := vals.PopBack().(*node)
	left := vals.PopBack().(*node)
	vals.PushBack(&node{kind: opNode(op.Kind), left: left, right: right})
	return nil
}

// Vars returns the names of the variables used in the expression, sorted.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates an infix string representation of the parsed expression with
// every operation parenthesized.
func (e *Expr) String() string {
	return e.n.String()
}

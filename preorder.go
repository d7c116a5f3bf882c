package exprtree

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// The preorder wire format is
//
//	tree = leaf | op tree tree
//
// with all tokens whitespace-separated. A leaf is a decimal int64 literal or
// a variable name, and op is one of + - * /. Visiting the operator before its
// operands makes the format unambiguous without parentheses, so a stream can
// be evaluated by recursive descent without rebuilding the tree.

// Preorder serializes the expression to its preorder token stream.
func (e *Expr) Preorder() string {
	var b strings.Builder
	e.n.pre(&b)
	return b.String()
}

func (n *node) pre(b *strings.Builder) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatInt(n.num, 10))
	case nodeVar:
		b.WriteString(n.name)
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		b.WriteString(n.kind.opString())
		n.left.pre(b)
		n.right.pre(b)
	default:
		panic("exprtree: cannot serialize " + n.kind.String() + " node")
	}
}

// EvalPreorder evaluates a preorder token stream directly, without building a
// tree, using the same checked arithmetic as Expr.Eval. vars may be nil for a
// stream without variables. The stream must contain exactly one tree; tokens
// remaining after it are an error.
func EvalPreorder(r io.Reader, vars map[string]int64) (int64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	v, err := evalPre(sc, vars)
	if err != nil {
		return 0, err
	}
	if sc.Scan() {
		return 0, &TrailingTokenError{Tok: sc.Text()}
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return v, nil
}

// evalPre consumes exactly the tokens of one subtree and returns its value,
// leaving the scanner positioned immediately after the subtree.
func evalPre(sc *bufio.Scanner, vars map[string]int64) (int64, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, &PreorderError{}
	}
	tok := sc.Text()
	switch tok {
	case "+", "-", "*", "/":
		l, err := evalPre(sc, vars)
		if err != nil {
			return 0, err
		}
		r, err := evalPre(sc, vars)
		if err != nil {
			return 0, err
		}
		switch tok {
		case "+":
			return checkedAdd(l, r)
		case "-":
			return checkedSub(l, r)
		case "*":
			return checkedMul(l, r)
		default:
			return checkedDiv(l, r)
		}
	}
	if isVarToken(tok) {
		v, ok := vars[tok]
		if !ok {
			return 0, &NameError{Name: tok}
		}
		return v, nil
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &BadTokenError{Tok: tok}
	}
	return v, nil
}

// isVarToken reports whether tok is a nonempty run of lowercase letters.
func isVarToken(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if !isLower(tok[i]) {
			return false
		}
	}
	return true
}

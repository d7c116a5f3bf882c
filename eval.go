package exprtree

import (
	"math"

	"lukechampine.com/uint128"
)

// Eval evaluates the expression with the given variable bindings, which may
// be nil for an expression without variables. Children evaluate before their
// parent combines them, and every operation checks for overflow.
func (e *Expr) Eval(vars map[string]int64) (int64, error) {
	return e.n.eval(vars)
}

// Eval is a shortcut to parse an expression and evaluate it with the given
// variable bindings.
func Eval(src string, vars map[string]int64) (int64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(vars)
}

func (n *node) eval(vars map[string]int64) (int64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeVar:
		v, ok := vars[n.name]
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		if n.left == nil || n.right == nil {
			return 0, &MalformedTreeError{Kind: n.kind.String()}
		}
		l, err := n.left.eval(vars)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(vars)
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			return checkedAdd(l, r)
		case nodeSub:
			return checkedSub(l, r)
		case nodeMul:
			return checkedMul(l, r)
		default:
			return checkedDiv(l, r)
		}
	default:
		return 0, &MalformedTreeError{Kind: n.kind.String()}
	}
}

func checkedAdd(l, r int64) (int64, error) {
	if r > 0 && l > math.MaxInt64-r || r < 0 && l < math.MinInt64-r {
		return 0, &OverflowError{Op: "+"}
	}
	return l + r, nil
}

func checkedSub(l, r int64) (int64, error) {
	if r < 0 && l > math.MaxInt64+r || r > 0 && l < math.MinInt64+r {
		return 0, &OverflowError{Op: "-"}
	}
	return l - r, nil
}

// checkedMul multiplies by taking the full 128-bit product of the operand
// magnitudes and bounding it by the int64 range for the result's sign. A
// negative result has one extra unit of headroom.
func checkedMul(l, r int64) (int64, error) {
	neg := (l < 0) != (r < 0)
	p := uint128.From64(magnitude(l)).Mul(uint128.From64(magnitude(r)))
	limit := uint64(math.MaxInt64)
	if neg {
		limit = minMagnitude
	}
	if p.Hi != 0 || p.Lo > limit {
		return 0, &OverflowError{Op: "*"}
	}
	if neg {
		if p.Lo == minMagnitude {
			return math.MinInt64, nil
		}
		return -int64(p.Lo), nil
	}
	return int64(p.Lo), nil
}

func checkedDiv(l, r int64) (int64, error) {
	if r == 0 {
		return 0, &DivZeroError{}
	}
	if l == math.MinInt64 && r == -1 {
		return 0, &OverflowError{Op: "/"}
	}
	// Go's integer division truncates toward zero.
	return l / r, nil
}

// magnitude is the absolute value of v as a uint64, exact for MinInt64.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

package exprtree_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gislih24/exprtree"
)

func TestPreorder(t *testing.T) {
	cases := []struct {
		src string
		pre string
	}{
		{"1+1", "+ 1 1"},
		{"1+2*3", "+ 1 * 2 3"},
		{"(1+2)*3", "* + 1 2 3"},
		{"-5", "-5"},
		{"-x*y", "* * -1 x y"},
		{"a/b-c", "- / a b c"},
	}
	for _, c := range cases {
		e, err := exprtree.Parse(c.src)
		if err != nil {
			t.Fatalf("%q didn't parse: %v", c.src, err)
		}
		if got := e.Preorder(); got != c.pre {
			t.Errorf("%q serialized wrong: want %q, got %q", c.src, c.pre, got)
		}
	}
}

func TestEvalPreorder(t *testing.T) {
	cases := []struct {
		name string
		pre  string
		vars map[string]int64
		r    int64
	}{
		{"leaf", "42", nil, 42},
		{"neg-leaf", "-42", nil, -42},
		{"add", "+ 1 1", nil, 2},
		{"nested", "+ 1 * 2 3", nil, 7},
		{"sub-order", "- 10 4", nil, 6},
		{"div-order", "/ 7 2", nil, 3},
		{"var", "+ x 1", map[string]int64{"x": 41}, 42},
		{"var-leaf", "x", map[string]int64{"x": -9}, -9},
		{"extra-whitespace", "  +\t1\n 1 ", nil, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := exprtree.EvalPreorder(strings.NewReader(c.pre), c.vars)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.pre, err)
			}
			if r != c.r {
				t.Errorf("evaluating %q: want %d, got %d", c.pre, c.r, r)
			}
		})
	}
}

func TestEvalPreorderErrors(t *testing.T) {
	cases := []struct {
		name string
		pre  string
		as   interface{}
	}{
		{"empty", "", new(*exprtree.PreorderError)},
		{"truncated", "+ 1", new(*exprtree.PreorderError)},
		{"truncated-deep", "* + 1 2", new(*exprtree.PreorderError)},
		{"trailing", "+ 1 2 3", new(*exprtree.TrailingTokenError)},
		{"trailing-leaf", "1 2", new(*exprtree.TrailingTokenError)},
		{"bad-token", "+ 1 2x", new(*exprtree.BadTokenError)},
		{"bad-symbol", "@ 1 2", new(*exprtree.BadTokenError)},
		{"overflow-literal", "9223372036854775808", new(*exprtree.BadTokenError)},
		{"upper-name", "X", new(*exprtree.BadTokenError)},
		{"unbound", "+ x 1", new(*exprtree.NameError)},
		{"div-zero", "/ 1 0", new(*exprtree.DivZeroError)},
		{"overflow", "+ 9223372036854775807 1", new(*exprtree.OverflowError)},
		{"div-min", "/ -9223372036854775808 -1", new(*exprtree.OverflowError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := exprtree.EvalPreorder(strings.NewReader(c.pre), nil)
			if err == nil {
				t.Fatalf("evaluating %q gave %d, want error", c.pre, r)
			}
			if !errors.As(err, c.as) {
				t.Errorf("evaluating %q gave error %#v, want %T", c.pre, err, c.as)
			}
		})
	}
}

func TestPreorderRoundTrip(t *testing.T) {
	// For any expression, evaluating the tree and stream-evaluating its
	// serialization must agree.
	cases := []struct {
		src  string
		vars map[string]int64
	}{
		{"1", nil},
		{"1+2*3", nil},
		{"(4-5)*(6+7)", nil},
		{"--5", nil},
		{"-(2+3)", nil},
		{"7/2-9/4", nil},
		{"x*y+z", map[string]int64{"x": 3, "y": -4, "z": 5}},
		{"-x", map[string]int64{"x": 11}},
		{"-9223372036854775808/2", nil},
	}
	for _, c := range cases {
		e, err := exprtree.Parse(c.src)
		if err != nil {
			t.Fatalf("%q didn't parse: %v", c.src, err)
		}
		want, err := e.Eval(c.vars)
		if err != nil {
			t.Fatalf("%q didn't evaluate: %v", c.src, err)
		}
		got, err := exprtree.EvalPreorder(strings.NewReader(e.Preorder()), c.vars)
		if err != nil {
			t.Fatalf("%q: stream evaluation of %q failed: %v", c.src, e.Preorder(), err)
		}
		if got != want {
			t.Errorf("%q: tree gave %d but stream gave %d", c.src, want, got)
		}
	}
}

func TestEvalPreorderDeep(t *testing.T) {
	// A left-leaning comb of + nodes recurses to the tree's depth.
	const depth = 10000
	pre := strings.Repeat("+ ", depth) + "0 " + strings.Repeat("1 ", depth)
	r, err := exprtree.EvalPreorder(strings.NewReader(pre), nil)
	if err != nil {
		t.Fatalf("deep preorder eval failed: %v", err)
	}
	if r != depth {
		t.Errorf("deep preorder eval: want %d, got %d", depth, r)
	}
}

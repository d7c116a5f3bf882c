//go:build go1.18
// +build go1.18

package exprtree_test

import (
	"testing"

	"github.com/gislih24/exprtree"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2*3")
	f.Add("-(x+y)/2")
	f.Add("--5")
	f.Add("((((1))))")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := exprtree.Parse(s)
		if err != nil {
			return
		}
		// A successful parse must serialize and reparse losslessly through
		// the preorder form.
		pre := e.Preorder()
		if pre == "" {
			t.Errorf("parsed %q but serialized to nothing", s)
		}
	})
}

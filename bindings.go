package exprtree

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseBindings reads variable bindings, one name=value assignment per line.
// Surrounding whitespace is trimmed and blank lines are skipped. A name is a
// nonempty run of lowercase letters and a value is a decimal int64 literal
// with no trailing characters; any other line is a BindingError naming the
// offending line. A name assigned twice keeps its last value.
func ParseBindings(r io.Reader) (map[string]int64, error) {
	vars := make(map[string]int64)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		name, val, ok := strings.Cut(s, "=")
		if !ok || strings.Contains(val, "=") {
			return nil, &BindingError{Line: line, Reason: "assignment must be name=value"}
		}
		name = strings.TrimSpace(name)
		val = strings.TrimSpace(val)
		if !isVarToken(name) {
			return nil, &BindingError{Line: line, Reason: "invalid variable name " + strconv.Quote(name)}
		}
		v, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, &BindingError{Line: line, Reason: "invalid value " + strconv.Quote(val)}
		}
		vars[name] = v
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

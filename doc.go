// Package exprtree parses infix integer arithmetic into an AST, evaluates it
// with overflow-checked 64-bit arithmetic, and round-trips trees through a
// flat preorder token stream.
//
// Expressions use decimal integer literals, lowercase variable names, the
// binary operators + - * /, parentheses, and unary minus. Evaluation never
// wraps: any result outside the int64 range is reported as an error, as are
// division by zero and unbound variables.
//
// The preorder form is an unambiguous, parenthesis-free serialization of a
// tree. It can be evaluated directly from a stream without rebuilding the
// tree, which is how the eval side of the command-line tool works.
package exprtree

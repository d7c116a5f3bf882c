package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/gislih24/exprtree"
)

var errcolor = color.New(color.FgRed)

func fatal(err error) {
	errcolor.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  exprtree [-t] build <ast-output> <expr-input>")
	fmt.Fprintln(w, "  exprtree eval <ast-input> [bindings-file]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "build parses an infix expression file and writes its preorder token stream.")
	fmt.Fprintln(w, "eval evaluates a preorder file, with optional name=value bindings, and")
	fmt.Fprintln(w, "prints the result. A file argument of - means stdin or stdout.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  -t    in build mode, echo the token stream and parse tree to stderr")
	fmt.Fprintln(w, "  -h    show this help")
}

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "ht")
	if err != nil {
		errcolor.Fprintln(os.Stderr, "error:", err)
		usage(os.Stderr)
		os.Exit(1)
	}
	echo := false
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			usage(os.Stdout)
			return
		case 't':
			echo = true
		}
	}
	args := os.Args[optind:]
	if len(args) == 0 {
		usage(os.Stderr)
		os.Exit(1)
	}
	switch args[0] {
	case "build":
		runBuild(args[1:], echo)
	case "eval":
		runEval(args[1:])
	default:
		errcolor.Fprintf(os.Stderr, "error: unknown mode %q\n", args[0])
		usage(os.Stderr)
		os.Exit(1)
	}
}

func runBuild(args []string, echo bool) {
	if len(args) != 2 {
		usage(os.Stderr)
		os.Exit(1)
	}
	src, err := readFile(args[1])
	if err != nil {
		fatal(err)
	}
	if echo {
		toks, err := exprtree.Tokenize(src)
		if err != nil {
			fatal(err)
		}
		fmt.Fprintln(os.Stderr, "tokens:", toks)
	}
	e, err := exprtree.Parse(src)
	if err != nil {
		fatal(err)
	}
	if echo {
		fmt.Fprintln(os.Stderr, "tree:", e)
	}
	out, closeOut, err := createFile(args[0])
	if err != nil {
		fatal(err)
	}
	if _, err := fmt.Fprintln(out, e.Preorder()); err != nil {
		fatal(err)
	}
	if err := closeOut(); err != nil {
		fatal(err)
	}
}

func runEval(args []string) {
	if len(args) != 1 && len(args) != 2 {
		usage(os.Stderr)
		os.Exit(1)
	}
	var vars map[string]int64
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			fatal(err)
		}
		vars, err = exprtree.ParseBindings(f)
		f.Close()
		if err != nil {
			fatal(err)
		}
	}
	in, closeIn, err := openFile(args[0])
	if err != nil {
		fatal(err)
	}
	r, err := exprtree.EvalPreorder(in, vars)
	closeIn()
	if err != nil {
		fatal(err)
	}
	fmt.Println(r)
}

func readFile(name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

func openFile(name string) (io.Reader, func() error, error) {
	if name == "-" {
		return bufio.NewReader(os.Stdin), func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return bufio.NewReader(f), f.Close, nil
}

func createFile(name string) (io.Writer, func() error, error) {
	if name == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/agenthands/pylite/pkg/compiler/lexer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "    pylite <input.py>")
		return
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for _, tok := range lexer.Lex(string(src)) {
		if tok.Kind == lexer.KindError {
			failed = true
			fmt.Printf("error: %v: %v\n", tok.Err, tok.Span)
			continue
		}
		fmt.Printf("%v: %v\n", tok, tok.Span)
	}
	if failed {
		os.Exit(1)
	}
}

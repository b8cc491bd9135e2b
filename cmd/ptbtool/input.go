package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/treebank/config"
	"github.com/dhamidi/treebank/ptb"
)

// openInput resolves the optional file argument; no argument or "-"
// means stdin.
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "<stdin>", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return f, args[0], nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

// forEachTree parses trees one at a time and calls fn for each that
// parses. Malformed trees are reported on stderr and parsing resumes at
// the next top-level tree; fn never sees them. The number of failures
// is folded into the returned error.
func forEachTree(r io.Reader, file string, fn func(n int, tree *ptb.Node) error) error {
	p := ptb.NewParser(r, ptb.WithFile(file))
	n := 0
	failed := 0
	for {
		tree, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed++
			continue
		}
		if err := fn(n, tree); err != nil {
			return err
		}
		n++
	}
	if failed > 0 {
		return fmt.Errorf("%s: %d malformed tree(s)", file, failed)
	}
	return nil
}

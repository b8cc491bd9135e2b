// Package ptb reads and transforms parse trees in the Penn Treebank
// bracketed format.
//
// # Overview
//
// Input is linearized bracketed text, "(LABEL child child ...)" with
// leaves written as "(TAG WORD)". The pipeline is:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (reader)   │     │  (tokens)   │     │   (trees)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                          transforms, spans, sentences
//
// Trees come out of the parser one per balanced top-level bracket group
// and are fully independent of each other: no nodes are shared, so
// processing different trees on different goroutines needs no
// synchronization.
//
// # Labels
//
// Node labels carry structural annotations beyond the bare category:
// grammatical-function tags ("NP-SBJ"), coindexes linking traces to
// their antecedents ("NP-SBJ-1") and gap indexes ("WHNP-2=3").
// ParseSymbol decodes them into a Symbol; Symbol.String re-serializes
// canonically.
//
// # Transforms
//
// RemoveEmptyElements, SimplifyLabels and AddRoot rewrite a tree in
// place. All three, and the span query, are built on the single generic
// Traverse walker.
//
// # Example
//
//	p := ptb.NewParser(file, ptb.WithFile("wsj_0001.mrg"))
//	for {
//		tree, err := p.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			log.Println(err) // this tree is lost; the next one is fine
//			continue
//		}
//		for _, span := range ptb.AllSpans(tree) {
//			fmt.Println(span)
//		}
//	}
package ptb

// Yamldebug inspects how YAML documents are tokenized and parsed.
//
// Usage:
//
//	# Print the token stream of a file
//	yamldebug tokens config.yaml
//
//	# Print every document of a stream as a value tree
//	yamldebug parse --all stream.yaml
//
//	# Re-encode a document in canonical block style
//	yamldebug parse --format yaml config.yaml
//
//	# Check several files, failing if any does not parse
//	yamldebug check a.yaml b.yaml
//
// Input is read from standard input when no file or "-" is given.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

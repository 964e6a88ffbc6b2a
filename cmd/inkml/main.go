// Command inkml is a CLI wrapper around the codec: parse, canonicalize and
// re-emit InkML-dialect documents from the shell.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command bagcalc runs bag (multiset) operations over two sequences read from
// a YAML document.
package main

import (
	"fmt"
	"os"

	"github.com/hasbyte1/go-collection-utils/cmd/bagcalc/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

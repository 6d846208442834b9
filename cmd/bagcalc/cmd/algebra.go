package cmd

import (
	"fmt"

	"github.com/hasbyte1/go-collection-utils/cmd/bagcalc/internal/input"
	"github.com/hasbyte1/go-collection-utils/collections"
)

// algebraResult is printed by the binary bag operations.
type algebraResult struct {
	Operation string   `yaml:"operation" json:"operation"`
	Result    []string `yaml:"result" json:"result"`
}

type binaryOp func(a, b collections.Iterable[string]) *collections.List[string]

func init() {
	for _, op := range []struct {
		name, short, long string
		fn                binaryOp
	}{
		{
			name:  "union",
			short: "Elements of a or b, max(count) times each",
			long: `Print the union of a and b.

Each element appears as many times as its larger count in either bag.`,
			fn: collections.Union[string],
		},
		{
			name:  "intersection",
			short: "Elements of a and b, min(count) times each",
			long: `Print the intersection of a and b.

Each element appears as many times as its smaller count in either bag.`,
			fn: collections.Intersection[string],
		},
		{
			name:  "disjunction",
			short: "Symmetric difference of a and b",
			long: `Print the disjunction (symmetric difference) of a and b.

Each element appears max(count) - min(count) times.`,
			fn: collections.Disjunction[string],
		},
		{
			name:  "subtract",
			short: "a with one occurrence removed per element of b",
			long: `Print a minus b.

For every element of b, the first remaining occurrence in a is removed.`,
			fn: collections.Subtract[string],
		},
	} {
		RegisterCommand(&Command{
			Name:  op.name,
			Short: op.short,
			Long:  op.long,
			Usage: fmt.Sprintf("bagcalc %s [--format yaml|json] <input.yaml>", op.name),
			Run:   runAlgebra(op.name, op.fn),
		})
	}
}

func runAlgebra(name string, fn binaryOp) func(args []string) error {
	return func(args []string) error {
		doc, err := loadArg(args, 1)
		if err != nil {
			return err
		}
		out := fn(collections.From(doc.A), collections.From(doc.B))
		return writeResult(algebraResult{Operation: name, Result: out.ToSlice()})
	}
}

// loadArg loads the document named by the last of want positional args.
func loadArg(args []string, want int) (*input.Document, error) {
	if len(args) != want {
		return nil, fmt.Errorf("expected %d argument(s), got %d", want, len(args))
	}
	return input.Load(args[want-1])
}

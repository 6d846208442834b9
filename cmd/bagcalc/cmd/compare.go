package cmd

import (
	"github.com/hasbyte1/go-collection-utils/collections"
)

type compareResult struct {
	SubCollection       bool `yaml:"sub_collection" json:"sub_collection"`
	ProperSubCollection bool `yaml:"proper_sub_collection" json:"proper_sub_collection"`
	Equal               bool `yaml:"equal" json:"equal"`
}

type cardinalityResult struct {
	Element string `yaml:"element" json:"element"`
	A       int    `yaml:"a" json:"a"`
	B       int    `yaml:"b" json:"b"`
}

func init() {
	RegisterCommand(&Command{
		Name:  "compare",
		Short: "Report whether a is a (proper) sub-bag of, or equal to, b",
		Long: `Compare a with b.

sub_collection is true when no element occurs more often in a than in b.
proper_sub_collection additionally requires a to be smaller than b.
equal is true when every element occurs equally often in both.`,
		Usage: "bagcalc compare [--format yaml|json] <input.yaml>",
		Run:   runCompare,
	})
	RegisterCommand(&Command{
		Name:  "cardinality",
		Short: "Count one element in a and in b",
		Long: `Print how many times an element occurs in a and in b.

An element that does not occur has cardinality 0.`,
		Usage: "bagcalc cardinality [--format yaml|json] <element> <input.yaml>",
		Run:   runCardinality,
	})
}

func runCompare(args []string) error {
	doc, err := loadArg(args, 1)
	if err != nil {
		return err
	}
	a, b := collections.From(doc.A), collections.From(doc.B)
	return writeResult(compareResult{
		SubCollection:       collections.IsSubCollection[string](a, b),
		ProperSubCollection: collections.IsProperSubCollection[string](a, b),
		Equal:               collections.IsEqualCollection[string](a, b),
	})
}

func runCardinality(args []string) error {
	doc, err := loadArg(args, 2)
	if err != nil {
		return err
	}
	element := args[0]
	return writeResult(cardinalityResult{
		Element: element,
		A:       collections.Cardinality[string](element, collections.From(doc.A)),
		B:       collections.Cardinality[string](element, collections.From(doc.B)),
	})
}

// Package input loads the two bags bagcalc operates on.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML input of every bagcalc command:
//
//	a: [apple, apple, pear]
//	b: [apple, fig]
//
// Scalars of any type are kept as their literal text.
type Document struct {
	A []string `yaml:"a"`
	B []string `yaml:"b"`
}

// Load reads and parses the document at path. A path of "-" reads stdin.
func Load(path string) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes data. Unknown keys are rejected so that a misspelt
// sequence name is not silently read as an empty bag.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, err
	}
	return &doc, nil
}

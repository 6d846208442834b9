package cmd

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// format is the output encoding chosen by --format for the current run.
var format = formatYAML

func setFormat(value string) error {
	switch value {
	case formatYAML, formatJSON:
		format = value
		return nil
	}
	return fmt.Errorf("unknown format %q (want yaml or json)", value)
}

// writeResult encodes v to stdout in the selected format.
func writeResult(v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case formatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = stdout.Write(data)
	return err
}

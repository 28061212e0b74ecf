// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// GraphFile is the on-disk form of an explicit graph:
//
//	vertices: 4
//	edges: [[0, 1], [1, 2], [2, 3], [3, 0]]
//
// Endpoint ranges are checked when the graph is built.
type GraphFile struct {
	Vertices int     `yaml:"vertices" validate:"min=0"`
	Edges    [][]int `yaml:"edges" validate:"dive,len=2"`
}

// LoadGraphFile reads and validates a GraphFile from path.
func LoadGraphFile(path string) (GraphFile, error) {
	var gf GraphFile

	f, err := os.Open(path)
	if err != nil {
		return gf, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeGraphFile(f)
}

// DecodeGraphFile reads and validates a GraphFile from r.
func DecodeGraphFile(r io.Reader) (GraphFile, error) {
	var gf GraphFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&gf); err != nil {
		if errors.Is(err, io.EOF) {
			return gf, fmt.Errorf("%w: empty graph document", ErrInvalidConfig)
		}
		return gf, fmt.Errorf("%w: parse graph: %w", ErrInvalidConfig, err)
	}
	if err := validate.Struct(gf); err != nil {
		return gf, fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}

	return gf, nil
}

package harness

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/openpath/matrix"
)

// ReadMatrixYAML decodes a distance matrix given as a YAML sequence of rows,
// e.g.
//
//	- [0, 1, 4]
//	- [1, 0, 2]
//	- [4, 2, 0]
func ReadMatrixYAML(r io.Reader) (*matrix.Dense, error) {
	var rows [][]float64
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("build matrix: %w", err)
	}

	return m, nil
}

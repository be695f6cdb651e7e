package cover

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

type matrixFile struct {
	Faults int         `json:"faults"`
	Tests  []testEntry `json:"tests"`
}

type testEntry struct {
	Name   string `json:"name"`
	Covers string `json:"covers"`
}

// ReadMatrix parses a YAML coverage-matrix document of the form
//
//	faults: 4
//	tests:
//	  - name: T1
//	    covers: "1 0 1 1"
//	  - name: T2
//	    covers: "0101"
//
// Coverage vectors accept the same formats as ParseVector. Missing test
// names default to T1..Tt.
func ReadMatrix(data []byte) (*Matrix, error) {
	file := &matrixFile{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal coverage matrix: %v", err)
	}
	if file.Faults < 1 {
		return nil, fmt.Errorf("coverage matrix needs a positive fault count, got %d", file.Faults)
	}

	var names []string
	var rows [][]bool
	for i, entry := range file.Tests {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("T%d", i+1)
		}
		bits, err := ParseVector(entry.Covers, file.Faults)
		if err != nil {
			return nil, fmt.Errorf("coverage vector of test %q: %v", name, err)
		}
		names = append(names, name)
		rows = append(rows, bits)
	}
	return NewMatrix(names, rows)
}

// LoadMatrixFile reads a YAML coverage matrix from disk.
func LoadMatrixFile(path string) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage matrix file: %v", err)
	}
	return ReadMatrix(data)
}

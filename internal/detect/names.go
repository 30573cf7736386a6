package detect

import (
	"fmt"
	"os"
	"strings"
)

// LoadClassNames reads a model's label vocabulary from a names file, one
// class per line, keyed by line index. Blank lines are skipped at the tail
// only; interior order must match the model's class indices.
func LoadClassNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class names: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("class names file %s is empty", path)
	}

	names := make([]string, len(lines))
	for i, line := range lines {
		names[i] = strings.TrimSpace(line)
	}
	return names, nil
}

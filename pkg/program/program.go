// Package program loads stack-machine programs from disk. Plain sources
// (.rpn, .fh) are whitespace-separated words with # comments; markdown
// sources are literate programs whose fenced rpn/fuhen code blocks hold
// the words, with optional frontmatter for metadata.
package program

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Program is a parsed source ready for evaluation.
type Program struct {
	Name  string
	Path  string
	Words []string
	Meta  Meta
}

// Load reads and parses the program at path, choosing the format by
// extension.
func Load(path string) (*Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return parseLiterate(path, src)
	default:
		return parsePlain(path, src)
	}
}

func parsePlain(path string, src []byte) (*Program, error) {
	return &Program{
		Name:  baseName(path),
		Path:  path,
		Words: Tokenize(src),
	}, nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

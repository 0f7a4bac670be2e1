package program

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Meta is the frontmatter of a literate program. Stack lists the initial
// stack first-to-last as top-to-bottom, matching stack.New.
type Meta struct {
	Name      string             `toml:"name" yaml:"name" json:"name"`
	Stack     []float64          `toml:"stack" yaml:"stack" json:"stack"`
	Vars      map[string]float64 `toml:"vars" yaml:"vars" json:"vars"`
	Precision int                `toml:"precision" yaml:"precision" json:"precision"`
}

var (
	ErrUnknownFrontmatterType   = errors.New("unknown frontmatter type")
	ErrFailedToParseFrontmatter = errors.New("failed to parse frontmatter")
	ErrNoFrontmatter            = errors.New("no frontmatter")
)

// ExtractFrontmatter extracts the frontmatter from a document: a ---
// fence for YAML, a +++ fence for TOML, or a raw JSON object at the
// start. Returns the metadata and the remaining body.
func ExtractFrontmatter(doc []byte) (*Meta, []byte, error) {
	b := trimBOM(doc)

	kind, start, end, bodyStart := detectFrontmatterBlock(b)
	if kind == "" {
		return nil, nil, ErrNoFrontmatter
	}

	var (
		meta Meta
		err  error
	)
	switch kind {
	case "yaml":
		err = yaml.Unmarshal(b[start:end], &meta)
	case "toml":
		err = toml.Unmarshal(b[start:end], &meta)
	case "json":
		err = json.Unmarshal(b[start:end], &meta)
	default:
		return nil, nil, ErrUnknownFrontmatterType
	}
	if err != nil {
		return nil, doc, fmt.Errorf("%w: %w", ErrFailedToParseFrontmatter, err)
	}

	return &meta, b[bodyStart:], nil
}

// detectFrontmatterBlock returns (kind, start, end, bodyStart).
func detectFrontmatterBlock(b []byte) (string, int, int, int) {
	if len(b) == 0 {
		return "", 0, 0, 0
	}

	switch {
	case hasPrefixAtLineStart(b, []byte("---")):
		return scanFencedBlock(b, []byte("---"), "yaml")
	case hasPrefixAtLineStart(b, []byte("+++")):
		return scanFencedBlock(b, []byte("+++"), "toml")
	default:
		// JSON frontmatter is a raw object at the very start of the file.
		if kind, start, end, bodyStart := scanJSONObjectPrefix(b); kind != "" {
			return kind, start, end, bodyStart
		}
		return "", 0, 0, 0
	}
}

func scanFencedBlock(b []byte, fence []byte, kind string) (string, int, int, int) {
	openLineEnd := lineEnd(b, 0)
	line := bytes.TrimRight(b[0:openLineEnd], " \t\r\n")
	if !bytes.Equal(line, fence) {
		return "", 0, 0, 0
	}

	payloadStart := openLineEnd
	i := payloadStart

	for i < len(b) {
		nextEnd := lineEnd(b, i)
		stripped := bytes.TrimRight(b[i:nextEnd], " \t\r\n")
		if bytes.Equal(stripped, fence) {
			return kind, payloadStart, i, nextEnd
		}
		i = nextEnd
	}
	return "", 0, 0, 0
}

func scanJSONObjectPrefix(b []byte) (string, int, int, int) {
	if len(b) == 0 || b[0] != '{' {
		return "", 0, 0, 0
	}

	var (
		depth   = 0
		inStr   = false
		escaped = false
	)

	for i := range b {
		c := b[i]

		if inStr {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inStr = false
			}
			continue
		}

		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end := i + 1
				return "json", 0, end, skipSingleLineEnding(b, end)
			}
			if depth < 0 {
				return "", 0, 0, 0
			}
		}
	}

	return "", 0, 0, 0
}

func skipSingleLineEnding(b []byte, i int) int {
	if i < len(b) && b[i] == '\r' {
		i++
	}
	if i < len(b) && b[i] == '\n' {
		i++
	}
	return i
}

func hasPrefixAtLineStart(b, prefix []byte) bool {
	if !bytes.HasPrefix(b, prefix) {
		return false
	}
	end := lineEnd(b, 0)
	line := bytes.TrimRight(b[:end], " \t\r\n")
	return bytes.Equal(line, prefix)
}

func lineEnd(b []byte, start int) int {
	i := start
	for i < len(b) && b[i] != '\n' {
		i++
	}
	if i < len(b) && b[i] == '\n' {
		return i + 1
	}
	return i
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}

package program

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// parseLiterate extracts the words of a markdown program: optional
// frontmatter, then every fenced code block tagged rpn or fuhen, in
// document order. Prose and other code blocks are ignored.
func parseLiterate(path string, src []byte) (*Program, error) {
	meta, body, err := ExtractFrontmatter(src)
	switch {
	case errors.Is(err, ErrNoFrontmatter):
		meta, body = &Meta{}, src
	case err != nil:
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	words, err := extractCodeWords(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	name := meta.Name
	if name == "" {
		name = baseName(path)
	}

	return &Program{
		Name:  name,
		Path:  path,
		Words: words,
		Meta:  *meta,
	}, nil
}

func extractCodeWords(body []byte) ([]string, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(body))

	words := make([]string, 0)
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		switch string(fcb.Language(body)) {
		case "rpn", "fuhen":
		default:
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(body))
		}
		words = append(words, Tokenize(buf.Bytes())...)

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return words, nil
}

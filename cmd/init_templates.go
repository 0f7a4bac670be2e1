package cmd

import (
	"text/template"

	"github.com/olimci/fuhen/pkg/lazy"
)

var starterPlain = lazy.New(func() *template.Template {
	return template.Must(template.New("plain").Parse(starterPlainText))
})

var starterLiterate = lazy.New(func() *template.Template {
	return template.Must(template.New("literate").Parse(starterLiterateText))
})

const starterPlainText = `# {{.Name}}
# words are evaluated left to right; # starts a comment

2 3 +      # push 2, push 3, add
dup *      # square the result
`

const starterLiterateText = `---
name: {{.Name}}
stack: []
vars: {}
---

# {{.Name}}

Prose is ignored; only fenced ` + "`rpn`" + ` (or ` + "`fuhen`" + `) blocks are
evaluated, top to bottom.

` + "```rpn" + `
2 3 +      # push 2, push 3, add
` + "```" + `

Blocks continue on the same stack:

` + "```rpn" + `
dup *      # square the result
` + "```" + `
`

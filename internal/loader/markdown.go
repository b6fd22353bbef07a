package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/harrison/boostcfg/internal/diagnostic"
	"github.com/harrison/boostcfg/internal/params"
)

// blockLanguages are the fenced code block info strings read as parameters.
var blockLanguages = map[string]bool{
	"params": true,
	"conf":   true,
}

// MarkdownLoader reads parameters from fenced code blocks tagged "params" or
// "conf", so experiment notes can carry the parameters they were run with.
// Everything else in the document is ignored.
type MarkdownLoader struct {
	markdown goldmark.Markdown
}

func NewMarkdownLoader() *MarkdownLoader {
	return &MarkdownLoader{
		markdown: goldmark.New(),
	}
}

// Load implements Loader.
func (l *MarkdownLoader) Load(r io.Reader, raw *params.RawSet, rep *diagnostic.Reporter) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	doc := l.markdown.Parser().Parse(text.NewReader(content))

	blocks := 0
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if !blockLanguages[strings.ToLower(string(block.Language(content)))] {
			return ast.WalkSkipChildren, nil
		}

		blocks++
		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			addConfLine(string(segment.Value(content)), raw, rep)
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return err
	}

	if blocks == 0 {
		rep.Warn(CodeLoader, "no ```params or ```conf blocks found in Markdown parameter file")
	}
	return nil
}

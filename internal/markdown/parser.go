// Package markdown turns journal entries written as markdown into the HTML
// and plain text the store keeps for each day.
package markdown

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// Meta is the optional front matter of an entry file.
type Meta struct {
	Date string `yaml:"date"`
	Goal *int64 `yaml:"goal"`
}

// Document is a converted entry.
type Document struct {
	HTML      string
	Text      string
	WordCount int
	Meta      Meta
}

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
		),
	)

	return &Parser{
		md: md,
	}
}

func (p *Parser) Parse(source []byte) (*Document, error) {
	context := parser.NewContext()
	root := p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	var buf bytes.Buffer
	err := p.md.Renderer().Render(&buf, source, root)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		HTML: buf.String(),
		Text: plainText(root, source),
	}
	doc.WordCount = WordCount(doc.Text)

	data := frontmatter.Get(context)
	if data != nil {
		err = data.Decode(&doc.Meta)
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func (p *Parser) ParseReader(r io.Reader) (*Document, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return p.Parse(data)
}

func readAll(r io.Reader) ([]byte, error) {
	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WordCount counts whitespace-separated words, the way the editor does.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

func plainText(root ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			switch n.Kind() {
			case ast.KindDocument:
			case ast.KindParagraph, ast.KindHeading, ast.KindCodeBlock, ast.KindFencedCodeBlock:
				endWith(&sb, "\n\n")
			default:
				if n.Type() == ast.TypeBlock {
					endWith(&sb, "\n")
				}
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteString("\n")
			}
		case *ast.String:
			sb.Write(node.Value)
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				sb.Write(seg.Value(source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(sb.String())
}

// endWith pads sb with newlines until it ends in suffix.
func endWith(sb *strings.Builder, suffix string) {
	if sb.Len() == 0 {
		return
	}
	cur := sb.String()
	for i := len(suffix); i > 0; i-- {
		if strings.HasSuffix(cur, suffix[:i]) {
			sb.WriteString(suffix[i:])
			return
		}
	}
	sb.WriteString(suffix)
}

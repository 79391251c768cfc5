package wiki

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var mentionPattern = regexp.MustCompile(`@(\w+)`)

// ConvertStrict parses the document with a real Markdown parser (goldmark,
// GFM extensions) and renders the syntax tree to Jira markup. Unlike
// ConvertGitLabToJira it handles nested emphasis, arbitrary list depth, and
// tables structurally, so its output differs from the lexical pipeline. It is
// a separate, opt-in operation, not a replacement.
func ConvertStrict(input string) string {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	source := []byte(input)
	doc := md.Parser().Parse(text.NewReader(source))

	r := &strictRenderer{source: source}
	var buf strings.Builder
	// Walk cannot fail here: the renderer never returns an error.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return r.render(&buf, n, entering), nil
	})

	return cleanStrictOutput(buf.String())
}

// strictRenderer emits Jira markup while walking the goldmark AST. The list
// stack records each open list so item prefixes reflect nesting depth.
type strictRenderer struct {
	source    []byte
	listStack []*ast.List
}

func (r *strictRenderer) render(buf *strings.Builder, n ast.Node, entering bool) ast.WalkStatus {
	switch n := n.(type) {
	case *ast.Heading:
		if entering {
			buf.WriteString("h")
			buf.WriteByte(byte('0' + n.Level))
			buf.WriteString(". ")
		} else {
			buf.WriteString("\n\n")
		}

	case *ast.Paragraph:
		if !entering {
			if _, inItem := n.Parent().(*ast.ListItem); inItem {
				buf.WriteString("\n")
			} else {
				buf.WriteString("\n\n")
			}
		}

	case *ast.TextBlock:
		// Tight list items hold their text in a TextBlock.
		if !entering {
			buf.WriteString("\n")
		}

	case *ast.Text:
		if entering {
			seg := string(n.Segment.Value(r.source))
			buf.WriteString(mentionPattern.ReplaceAllString(seg, "[~$1]"))
			if n.HardLineBreak() {
				buf.WriteString("\\\\\n")
			} else if n.SoftLineBreak() {
				buf.WriteString("\n")
			}
		}

	case *ast.String:
		if entering {
			buf.Write(n.Value)
		}

	case *ast.Emphasis:
		if n.Level == 2 {
			buf.WriteString("*")
		} else {
			buf.WriteString("_")
		}

	case *east.Strikethrough:
		buf.WriteString("-")

	case *ast.CodeSpan:
		if entering {
			buf.WriteString("{{")
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					buf.Write(t.Segment.Value(r.source))
				}
			}
			buf.WriteString("}}")
		}
		return ast.WalkSkipChildren

	case *ast.FencedCodeBlock:
		if entering {
			lang := strings.TrimSpace(string(n.Language(r.source)))
			if lang != "" {
				buf.WriteString("{code:" + lang + "}\n")
			} else {
				buf.WriteString("{code}\n")
			}
			r.writeLines(buf, n)
			buf.WriteString("{code}\n\n")
		}
		return ast.WalkSkipChildren

	case *ast.CodeBlock:
		if entering {
			buf.WriteString("{code}\n")
			r.writeLines(buf, n)
			buf.WriteString("{code}\n\n")
		}
		return ast.WalkSkipChildren

	case *ast.Link:
		if entering {
			buf.WriteString("[")
		} else {
			buf.WriteString("|" + string(n.Destination) + "]")
		}

	case *ast.AutoLink:
		if entering {
			buf.WriteString("[" + string(n.URL(r.source)) + "]")
		}
		return ast.WalkSkipChildren

	case *ast.Image:
		if entering {
			alt := imageAlt(n, r.source)
			if alt != "" {
				buf.WriteString("!" + string(n.Destination) + "|alt=" + alt + "!")
			} else {
				buf.WriteString("!" + string(n.Destination) + "!")
			}
		}
		return ast.WalkSkipChildren

	case *ast.List:
		if entering {
			r.listStack = append(r.listStack, n)
		} else {
			r.listStack = r.listStack[:len(r.listStack)-1]
			if len(r.listStack) == 0 {
				buf.WriteString("\n")
			}
		}

	case *ast.ListItem:
		if entering {
			for _, list := range r.listStack {
				if list.IsOrdered() {
					buf.WriteString("#")
				} else {
					buf.WriteString("-")
				}
			}
			buf.WriteString(" ")
		}

	case *east.TaskCheckBox:
		if entering {
			if n.IsChecked {
				buf.WriteString("(/) ")
			} else {
				buf.WriteString("( ) ")
			}
		}

	case *ast.Blockquote:
		if entering {
			buf.WriteString("{quote}\n")
		} else {
			buf.WriteString("{quote}\n\n")
		}

	case *ast.ThematicBreak:
		if entering {
			buf.WriteString("----\n\n")
		}

	case *east.Table:
		if !entering {
			buf.WriteString("\n")
		}

	case *east.TableHeader, *east.TableRow:
		if !entering {
			buf.WriteString("\n")
		}

	case *east.TableCell:
		_, header := n.Parent().(*east.TableHeader)
		delim := "|"
		if header {
			delim = "||"
		}
		if entering {
			buf.WriteString(delim)
		} else if n.NextSibling() == nil {
			buf.WriteString(delim)
		}

	case *ast.HTMLBlock, *ast.RawHTML:
		// No HTML in the target dialect.
		return ast.WalkSkipChildren
	}

	return ast.WalkContinue
}

func (r *strictRenderer) writeLines(buf *strings.Builder, n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(r.source))
	}
}

func imageAlt(n *ast.Image, source []byte) string {
	var alt strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			alt.Write(t.Segment.Value(source))
		}
	}
	return alt.String()
}

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

func cleanStrictOutput(out string) string {
	out = excessBlankLines.ReplaceAllString(out, "\n\n")
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

package markdown

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/adrianliechti/wingman-research/pkg/theme"
)

var parser = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
).Parser()

// Render converts markdown to tview dynamic color text. Backend text is
// untrusted, so all literal content is escaped.
func Render(src string) string {
	source := []byte(src)

	doc := parser.Parse(text.NewReader(source))

	w := &writer{
		source: source,
		theme:  theme.Default,
	}

	if err := ast.Walk(doc, w.visit); err != nil {
		return tview.Escape(src)
	}

	return strings.TrimRight(w.buf.String(), "\n")
}

type writer struct {
	buf    strings.Builder
	source []byte
	theme  theme.Theme
}

func (w *writer) printf(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
}

func (w *writer) lines(n ast.Node) string {
	var sb strings.Builder

	lines := n.Lines()

	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(w.source))
	}

	return sb.String()
}

// plain collects the literal text below n.
func (w *writer) plain(n ast.Node) string {
	var sb strings.Builder

	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(w.source))
		case *ast.String:
			sb.Write(c.Value)
		}

		return ast.WalkContinue, nil
	})

	return sb.String()
}

// blockGap separates a block from its previous sibling.
func (w *writer) blockGap(n ast.Node) {
	if n.PreviousSibling() == nil {
		return
	}

	if _, nested := n.Parent().(*ast.ListItem); nested {
		return
	}

	w.buf.WriteString("\n")
}

func (w *writer) visit(node ast.Node, entering bool) (ast.WalkStatus, error) {
	t := w.theme

	switch n := node.(type) {
	case *ast.Document:

	case *ast.Heading:
		if entering {
			w.blockGap(n)

			color := t.Blue

			if n.Level > 1 {
				color = t.Magenta
			}

			w.printf("[%s::b]%s ", color, strings.Repeat("#", n.Level))
		} else {
			w.buf.WriteString("[-::-]\n")
		}

	case *ast.Paragraph:
		if entering {
			w.blockGap(n)
		} else {
			w.buf.WriteString("\n")
		}

	case *ast.TextBlock:
		if !entering && n.NextSibling() != nil {
			w.buf.WriteString("\n")
		}

	case *ast.Blockquote:
		if entering {
			w.blockGap(n)
			w.printf("[%s]> [-]", t.Muted)
		}

	case *ast.FencedCodeBlock:
		if !entering {
			break
		}

		w.blockGap(n)
		w.buf.WriteString(codeBlock(w.lines(n), string(n.Language(w.source))))

		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if !entering {
			break
		}

		w.blockGap(n)
		w.buf.WriteString(codeBlock(w.lines(n), ""))

		return ast.WalkSkipChildren, nil

	case *ast.HTMLBlock:
		if !entering {
			break
		}

		w.blockGap(n)
		w.printf("[%s]%s[-]", t.Muted, tview.Escape(w.lines(n)))

		return ast.WalkSkipChildren, nil

	case *ast.List:
		if entering {
			w.blockGap(n)
		}

	case *ast.ListItem:
		if !entering {
			if !strings.HasSuffix(w.buf.String(), "\n") {
				w.buf.WriteString("\n")
			}

			break
		}

		list := n.Parent().(*ast.List)

		depth := 0

		for p := list.Parent(); p != nil; p = p.Parent() {
			if _, ok := p.(*ast.ListItem); ok {
				depth++
			}
		}

		indent := strings.Repeat("  ", depth)

		if list.IsOrdered() {
			index := list.Start

			for c := list.FirstChild(); c != nil && c != node; c = c.NextSibling() {
				index++
			}

			w.printf("%s[%s]%d.[-] ", indent, t.Yellow, index)
		} else {
			w.printf("%s[%s]•[-] ", indent, t.Yellow)
		}

	case *ast.ThematicBreak:
		if entering {
			w.blockGap(n)
			w.printf("[%s]%s[-]\n", t.Muted, strings.Repeat("─", 40))
		}

	case *ast.Text, *ast.String:
		// brackets may be split over adjacent nodes, so a whole run is
		// escaped at once
		if !entering || isLiteral(n.PreviousSibling()) {
			break
		}

		var run strings.Builder

		for c := node; isLiteral(c); c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.Text:
				run.Write(c.Segment.Value(w.source))

				if c.HardLineBreak() || c.SoftLineBreak() {
					run.WriteString("\n")
				}

			case *ast.String:
				run.Write(c.Value)
			}
		}

		w.buf.WriteString(tview.Escape(run.String()))

	case *ast.CodeSpan:
		if entering {
			w.printf("[%s]", t.Cyan)
		} else {
			w.buf.WriteString("[-]")
		}

	case *ast.Emphasis:
		if !entering {
			w.buf.WriteString("[::-]")
		} else if n.Level == 2 {
			w.buf.WriteString("[::b]")
		} else {
			w.buf.WriteString("[::i]")
		}

	case *ast.Link:
		if entering {
			w.printf("[%s]", t.Cyan)
		} else {
			w.printf("[-] [%s](%s)[-]", t.Muted, tview.Escape(string(n.Destination)))
		}

	case *ast.AutoLink:
		if !entering {
			break
		}

		w.printf("[%s]%s[-]", t.Cyan, tview.Escape(string(n.URL(w.source))))

		return ast.WalkSkipChildren, nil

	case *ast.Image:
		if !entering {
			break
		}

		w.printf("[%s]%s[-]", t.Yellow, tview.Escape("[image: "+w.plain(n)+"]"))

		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		if !entering {
			break
		}

		segments := n.Segments

		for i := 0; i < segments.Len(); i++ {
			segment := segments.At(i)
			w.buf.WriteString(tview.Escape(string(segment.Value(w.source))))
		}

		return ast.WalkSkipChildren, nil

	case *east.Table:
		if !entering {
			break
		}

		w.blockGap(n)
		w.table(n)

		return ast.WalkSkipChildren, nil

	case *east.Strikethrough:
		if entering {
			w.printf("[%s::s]", t.Muted)
		} else {
			w.buf.WriteString("[-::-]")
		}

	case *east.TaskCheckBox:
		if !entering {
			break
		}

		if n.IsChecked {
			w.printf("[%s]%s[-] ", t.Green, tview.Escape("[x]"))
		} else {
			w.printf("[%s]%s[-] ", t.Muted, tview.Escape("[ ]"))
		}
	}

	return ast.WalkContinue, nil
}

func isLiteral(n ast.Node) bool {
	switch n.(type) {
	case *ast.Text, *ast.String:
		return true
	}

	return false
}

func (w *writer) table(n *east.Table) {
	var rows [][]string

	widths := make([]int, len(n.Alignments))

	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string

		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			value := strings.TrimSpace(w.plain(cell))

			if i := len(cells); i < len(widths) {
				widths[i] = max(widths[i], len([]rune(value)))
			}

			cells = append(cells, value)
		}

		rows = append(rows, cells)
	}

	for i, cells := range rows {
		for j, cell := range cells {
			if j > 0 {
				w.printf(" [%s]│[-] ", w.theme.Muted)
			}

			pad := 0

			if j < len(widths) {
				pad = widths[j] - len([]rune(cell))
			}

			if i == 0 {
				w.printf("[::b]%s[::-]", tview.Escape(cell))
			} else {
				w.buf.WriteString(tview.Escape(cell))
			}

			w.buf.WriteString(strings.Repeat(" ", pad))
		}

		w.buf.WriteString("\n")
	}
}

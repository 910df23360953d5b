package markdown

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"

	"github.com/adrianliechti/wingman-research/pkg/theme"
)

func highlight(code, lang string) string {
	lexer := lexers.Get(lang)

	if lexer == nil {
		lexer = lexers.Analyse(code)
	}

	if lexer == nil {
		lexer = lexers.Fallback
	}

	styleName := "github-dark"

	if theme.Default.IsLight {
		styleName = "github"
	}

	style := styles.Get(styleName)

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)

	if err != nil {
		return tview.Escape(code)
	}

	var result strings.Builder

	for _, token := range iterator.Tokens() {
		text := tview.Escape(token.Value)

		if entry := style.Get(token.Type); entry.Colour.IsSet() {
			fmt.Fprintf(&result, "[%s]%s[-]", entry.Colour.String(), text)
			continue
		}

		result.WriteString(text)
	}

	return result.String()
}

func codeBlock(code, lang string) string {
	t := theme.Default

	lines := strings.Split(strings.TrimSuffix(highlight(code, lang), "\n"), "\n")

	var result strings.Builder

	for _, line := range lines {
		fmt.Fprintf(&result, "[%s]│[-] %s\n", t.Muted, line)
	}

	return result.String()
}

package markdown

import (
	"strings"
	"sync"

	internalstrings "github.com/amonks/tiler/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text for terminal output.
func Render(width, indent int, input []byte) []byte {
	if len(input) == 0 {
		return nil
	}
	value := internalstrings.NormalizeNewlines(string(input))
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}
	if indent < 0 {
		indent = 0
	}
	renderWidth := width - indent
	if renderWidth < 1 {
		renderWidth = 1
	}

	rendered := value
	if r := markdownRenderer(renderWidth); r != nil {
		formatted, err := r.Render(value)
		if err == nil {
			rendered = formatted
		}
	}
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	if indent <= 0 {
		return []byte(rendered)
	}
	return []byte(IndentBlock(rendered, indent))
}

// SafeRender is Render that falls back to the input when the renderer
// panics.
func SafeRender(width, indent int, input []byte) (out []byte) {
	defer func() {
		if recover() != nil {
			value := internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(string(input)))
			out = []byte(IndentBlock(value, indent))
		}
	}()
	return Render(width, indent, input)
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

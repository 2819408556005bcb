package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown with glamour, reusing one renderer per
// wrap width.
type MarkdownRenderer struct {
	mu        sync.Mutex
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer using a glamour standard style such
// as "dark", "light" or "notty".
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &MarkdownRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Render renders md wrapped at width. On renderer failure the raw markdown
// is returned along with the error.
func (r *MarkdownRenderer) Render(md string, width int) (string, error) {
	width = max(width, 20)

	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.renderers[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md, err
		}
		r.renderers[width] = tr
	}

	out, err := tr.Render(md)
	if err != nil {
		return md, err
	}
	return strings.TrimRight(out, "\n"), nil
}

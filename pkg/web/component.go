package web

import (
	"context"
	"html/template"
	"strings"

	"github.com/a-h/templ"
)

// RenderComponent renders c with ctx to HTML that layouts embed unescaped,
// as in {{ .Data.Nav }}. A nil component renders nothing.
func RenderComponent(ctx context.Context, c templ.Component) (template.HTML, error) {
	if c == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return template.HTML(sb.String()), nil
}

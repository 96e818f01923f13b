package html

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template is the echo.Renderer for every page template.
type Template struct {
	Templates *template.Template
}

// NewTemplate parses the embedded page templates. Templates are addressed by
// file name, e.g. "product.html".
func NewTemplate() (*Template, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Template{Templates: t}, nil
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// ExecuteTemplate lets the Template stand in wherever a view needs a renderer.
func (t *Template) ExecuteTemplate(w io.Writer, name string, data interface{}) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"elevation_mentorship_go/middleware"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer implements echo.Renderer over a map of parsed page
// templates. Each page is parsed together with the shared layout and
// partials; pages render by file name ("landing.html" etc).
type TemplateRenderer struct {
	templates map[string]*template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"cssVersion":     middleware.CSSVersion,
		"appJSVersion":   middleware.AppJSVersion,
		"faviconVersion": middleware.FaviconVersion,
	}
}

// NewTemplateRenderer parses every page under dir/pages with the layout and
// all partials.
func NewTemplateRenderer(dir string) (*TemplateRenderer, error) {
	pages, err := filepath.Glob(filepath.Join(dir, "pages", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob page templates: %w", err)
	}
	partials, err := filepath.Glob(filepath.Join(dir, "partials", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob partial templates: %w", err)
	}
	layout := filepath.Join(dir, "layout.html")

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		files := append([]string{layout, page}, partials...)
		tmpl, err := template.New(filepath.Base(layout)).Funcs(templateFuncs()).ParseFiles(files...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[filepath.Base(page)] = tmpl
	}

	return &TemplateRenderer{templates: templates}, nil
}

// Render executes the named page template, buffering output so a template
// error never produces a half-written response.
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "layout.html", data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderPartial executes one named partial template directly, used by the
// htmx endpoints that swap a page fragment.
func (r *TemplateRenderer) RenderPartial(w io.Writer, page, partial string, data interface{}) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("template %s not found", page)
	}
	return tmpl.ExecuteTemplate(w, partial, data)
}

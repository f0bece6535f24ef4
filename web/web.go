// Package web holds the HTML templates of the booking directory.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"
)

//go:embed templates
var files embed.FS

const layout = "templates/layouts/main.html"

// Templates renders named pages inside the shared layout.
type Templates struct {
	pages map[string]*template.Template
}

// Load parses every page under templates/ together with the layout. Page names
// are their path below templates/ without extension, e.g. "pages/venues" or
// "errors/404".
func Load() (*Templates, error) {
	base, err := template.New("main.html").Funcs(Funcs()).ParseFS(files, layout)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	t := &Templates{pages: make(map[string]*template.Template)}
	err = fs.WalkDir(files, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || p == layout || path.Ext(p) != ".html" {
			return nil
		}

		page, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := page.ParseFS(files, p); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(p, "templates/"), ".html")
		t.pages[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Render executes the named page.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	page, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return page.ExecuteTemplate(w, "main.html", data)
}

// Funcs returns the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"datetime": FormatDatetime,
	}
}

// FormatDatetime formats t for display. "full" gives
// "Wednesday May, 21, 2025 at 9:30PM"; anything else the medium form
// "Wed 05, 21, 2025 9:30PM".
func FormatDatetime(t time.Time, format string) string {
	if format == "full" {
		return t.Format("Monday January, 2, 2006 at 3:04PM")
	}
	return t.Format("Mon 01, 02, 2006 3:04PM")
}

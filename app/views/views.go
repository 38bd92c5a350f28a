// Package views renders the HTML pages. Templates and static assets are
// embedded in the binary.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"blogpress/app/flash"
	"blogpress/app/models"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	//go:embed templates
	templatesFS embed.FS

	//go:embed static
	staticFS embed.FS
)

// Page names accepted by Render.
const (
	PageIndex    = "index"
	PageShow     = "show"
	PageNew      = "new"
	PageEdit     = "edit"
	PageNotFound = "404"
	PageError    = "500"
)

var pageFiles = map[string]string{
	PageIndex:    "templates/posts/index.html",
	PageShow:     "templates/posts/show.html",
	PageNew:      "templates/posts/new.html",
	PageEdit:     "templates/posts/edit.html",
	PageNotFound: "templates/errors/404.html",
	PageError:    "templates/errors/500.html",
}

// Page is the data every template receives.
type Page struct {
	Title     string
	Notices   flash.Notices
	CSRFField template.HTML
	Posts     []*models.Post
	Post      *models.Post
}

// Renderer executes the page templates inside the shared layout.
type Renderer struct {
	templates map[string]*template.Template
	markdown  goldmark.Markdown
}

// New parses every page. Raw HTML in post content is escaped by goldmark.
func New() (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template, len(pageFiles)),
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}

	funcs := template.FuncMap{"markdown": r.renderMarkdown}
	for name, file := range pageFiles {
		tpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.templates[name] = tpl
	}

	return r, nil
}

// Render writes the named page. Output is buffered so a failing template
// never leaves a half-written page behind.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Static returns the embedded assets rooted at the static directory.
func Static() fs.FS {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return static
}

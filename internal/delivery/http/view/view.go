// Package view renders the public HTML pages. Templates are embedded so the
// binary ships without a templates directory.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"clinic-booking/pkg/flash"
)

const (
	PageBookingForm      = "prendre_rdv"
	PageBookingConfirmed = "merci"
	PageInvalidLink      = "lien_invalide"
	PageCancelPrompt     = "annuler_rdv"
	PageCancelled        = "annulation_confirmee"
	PageNotFound         = "introuvable"
)

//go:embed templates
var templates embed.FS

// Page is what every template receives. Data holds the page specific DTO.
type Page struct {
	Title   string
	Flashes []flash.Message
	Data    interface{}
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templates, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		tmpl, err := template.New("layout.html").ParseFS(templates, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[strings.TrimSuffix(path.Base(file), ".html")] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render buffers the page so a template error never leaves a half written
// response behind.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

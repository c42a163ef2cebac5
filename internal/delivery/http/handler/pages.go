package handler

import (
	"net/http"

	"clinic-booking/internal/delivery/http/view"
	"clinic-booking/pkg/flash"

	"github.com/sirupsen/logrus"
)

const (
	msgGenericError = "Une erreur est survenue, veuillez réessayer."
	msgInternal     = "Erreur interne du serveur"
)

// Pages is the HTML side shared by the public handlers: rendering with the
// pending flashes, and flash-then-redirect.
type Pages struct {
	renderer *view.Renderer
	flash    *flash.Manager
	log      *logrus.Logger
}

func NewPages(renderer *view.Renderer, flash *flash.Manager, log *logrus.Logger) *Pages {
	return &Pages{
		renderer: renderer,
		flash:    flash,
		log:      log,
	}
}

func (p *Pages) Render(w http.ResponseWriter, r *http.Request, status int, name, title string, data interface{}) {
	flashes, err := p.flash.Pop(r)
	if err != nil {
		p.log.Warnf("Failed to read flash messages: %+v", err)
	}

	page := view.Page{Title: title, Flashes: flashes, Data: data}
	if err := p.renderer.Render(w, status, name, page); err != nil {
		p.log.Errorf("Failed to render page %s: %+v", name, err)
		http.Error(w, msgInternal, http.StatusInternalServerError)
	}
}

// Redirect stores msgs then sends the browser to target with 303 See Other.
func (p *Pages) Redirect(w http.ResponseWriter, r *http.Request, target string, msgs ...flash.Message) {
	if len(msgs) > 0 {
		if err := p.flash.Add(w, r, msgs...); err != nil {
			p.log.Warnf("Failed to store flash messages: %+v", err)
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.Render(w, r, http.StatusNotFound, view.PageNotFound, "Page introuvable", nil)
}

func (p *Pages) ServerError(w http.ResponseWriter) {
	http.Error(w, msgInternal, http.StatusInternalServerError)
}

package handler

import (
	"errors"
	"net/http"

	"clinic-booking/internal/delivery/http/view"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/flash"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const cancelledURL = "/annulation-confirmee"

type CancellationHandler struct {
	cancellationUsecase usecase.CancellationUsecase
	pages               *Pages
	log                 *logrus.Logger
}

func NewCancellationHandler(cancellationUsecase usecase.CancellationUsecase, pages *Pages, log *logrus.Logger) *CancellationHandler {
	return &CancellationHandler{
		cancellationUsecase: cancellationUsecase,
		pages:               pages,
		log:                 log,
	}
}

// ShowCancellation is the first step of the cancel link. An unknown token
// gets a regular page explaining the link is invalid.
func (h *CancellationHandler) ShowCancellation(w http.ResponseWriter, r *http.Request) {
	cancellation, err := h.cancellationUsecase.GetCancellation(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			h.pages.Render(w, r, http.StatusOK, view.PageInvalidLink, "Lien invalide", nil)
		case errors.Is(err, usecase.ErrAppointmentPast):
			h.pages.Redirect(w, r, cancelledURL, flash.Warning("Ce rendez-vous est déjà passé"))
		case errors.Is(err, usecase.ErrAppointmentAlreadyCancelled):
			h.pages.Redirect(w, r, cancelledURL, flash.Info("Ce rendez-vous a déjà été annulé"))
		default:
			h.pages.ServerError(w)
		}
		return
	}

	h.pages.Render(w, r, http.StatusOK, view.PageCancelPrompt, "Annuler le rendez-vous", cancellation)
}

func (h *CancellationHandler) ConfirmCancellation(w http.ResponseWriter, r *http.Request) {
	err := h.cancellationUsecase.ConfirmCancellation(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			h.pages.NotFound(w, r)
			return
		}
		h.log.Errorf("Cancellation failed: %+v", err)
		h.pages.Redirect(w, r, cancelledURL, flash.Error(msgGenericError))
		return
	}

	h.pages.Redirect(w, r, cancelledURL, flash.Success("Votre rendez-vous a bien été annulé"))
}

func (h *CancellationHandler) ShowCancelled(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, r, http.StatusOK, view.PageCancelled, "Annulation", nil)
}

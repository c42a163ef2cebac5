package handler

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/delivery/http/view"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/flash"
	"clinic-booking/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type BookingHandler struct {
	bookingUsecase usecase.PublicBookingUsecase
	validator      *validator.CustomValidator
	pages          *Pages
	log            *logrus.Logger
}

func NewBookingHandler(bookingUsecase usecase.PublicBookingUsecase, validator *validator.CustomValidator, pages *Pages, log *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
		pages:          pages,
		log:            log,
	}
}

func (h *BookingHandler) ShowBookingForm(w http.ResponseWriter, r *http.Request) {
	page, err := h.bookingUsecase.GetBookingPage(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, usecase.ErrClinicNotFound) {
			h.pages.NotFound(w, r)
			return
		}
		h.pages.ServerError(w)
		return
	}

	h.pages.Render(w, r, http.StatusOK, view.PageBookingForm, "Prendre rendez-vous", page)
}

// CreateBooking never answers with an error body: every outcome is a flash
// message plus a redirect, except an unknown clinic which is a 404.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	formURL := "/" + slug + "/prendre-rdv"

	// an unknown clinic is a 404 even when the form is invalid
	if _, err := h.bookingUsecase.GetClinic(r.Context(), slug); err != nil {
		if errors.Is(err, usecase.ErrClinicNotFound) {
			h.pages.NotFound(w, r)
			return
		}
		h.pages.Redirect(w, r, formURL, flash.Error(msgGenericError))
		return
	}

	if err := r.ParseForm(); err != nil {
		h.pages.Redirect(w, r, formURL, flash.Error("Formulaire invalide"))
		return
	}

	req := bookingFormFromRequest(r)
	if err := h.validator.Validate(&req); err != nil {
		h.pages.Redirect(w, r, formURL, validationFlashes(h.validator.FormatValidationErrors(err))...)
		return
	}

	_, err := h.bookingUsecase.CreateBooking(r.Context(), slug, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrClinicNotFound):
			h.pages.NotFound(w, r)
		case errors.Is(err, usecase.ErrInvalidDate):
			h.pages.Redirect(w, r, formURL, flash.Error("La date fournie est invalide"))
		case errors.Is(err, usecase.ErrInvalidTime):
			h.pages.Redirect(w, r, formURL, flash.Error("L'heure fournie est invalide"))
		case errors.Is(err, usecase.ErrDoctorNotFound):
			h.pages.Redirect(w, r, formURL, flash.Error("Ce médecin n'est pas disponible dans cette clinique"))
		case errors.Is(err, usecase.ErrSlotTaken):
			h.pages.Redirect(w, r, formURL, flash.Error("Ce créneau vient d'être réservé. Veuillez en choisir un autre."))
		default:
			h.log.Errorf("Booking failed for clinic %q: %+v", slug, err)
			h.pages.Redirect(w, r, formURL, flash.Error(msgGenericError))
		}
		return
	}

	h.pages.Redirect(w, r, "/"+slug+"/merci", flash.Success("Rendez-vous confirmé !"))
}

func (h *BookingHandler) ShowConfirmation(w http.ResponseWriter, r *http.Request) {
	clinic, err := h.bookingUsecase.GetClinic(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, usecase.ErrClinicNotFound) {
			h.pages.NotFound(w, r)
			return
		}
		h.pages.ServerError(w)
		return
	}

	h.pages.Render(w, r, http.StatusOK, view.PageBookingConfirmed, "Merci", clinic)
}

func bookingFormFromRequest(r *http.Request) dto.BookingForm {
	doctorID, _ := strconv.Atoi(strings.TrimSpace(r.PostFormValue("medecin_id")))

	return dto.BookingForm{
		DoctorID:     doctorID,
		PatientName:  strings.TrimSpace(r.PostFormValue("patient_nom")),
		PatientPhone: strings.TrimSpace(r.PostFormValue("patient_tel")),
		PatientEmail: strings.TrimSpace(r.PostFormValue("patient_email")),
		Date:         strings.TrimSpace(r.PostFormValue("date")),
		Time:         strings.TrimSpace(r.PostFormValue("heure")),
		Reason:       strings.TrimSpace(r.PostFormValue("motif")),
	}
}

// validationFlashes orders messages by field so the page is stable.
func validationFlashes(errs map[string]string) []flash.Message {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]flash.Message, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, flash.Error(errs[field]))
	}
	if len(msgs) == 0 {
		msgs = append(msgs, flash.Error("Tous les champs sont obligatoires"))
	}
	return msgs
}

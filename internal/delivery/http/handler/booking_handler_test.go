package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/flash"
	"clinic-booking/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var plateau = &dto.ClinicResponse{ID: 1, Name: "Clinique du Plateau", Slug: "plateau", Phone: "+221338201122"}

func newBookingHandler(t *testing.T) (*BookingHandler, *MockPublicBookingUsecase, *flash.Manager) {
	pages, manager := newTestPages(t)
	uc := new(MockPublicBookingUsecase)
	return NewBookingHandler(uc, validator.NewValidator(), pages, newTestLogger()), uc, manager
}

func bookingValues() url.Values {
	return url.Values{
		"medecin_id":    {"5"},
		"patient_nom":   {"Awa Diop"},
		"patient_tel":   {"77 123 45 67"},
		"patient_email": {""},
		"date":          {"2025-03-14"},
		"heure":         {"09:00"},
		"motif":         {"Contrôle"},
	}
}

func postBooking(h *BookingHandler, slug string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/"+slug+"/reserver", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = mux.SetURLVars(req, map[string]string{"slug": slug})

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)
	return rec
}

func TestShowBookingForm(t *testing.T) {
	h, uc, _ := newBookingHandler(t)
	uc.On("GetBookingPage", mock.Anything, "plateau").Return(&dto.BookingPageResponse{
		Clinic:  *plateau,
		Doctors: []dto.DoctorResponse{{ID: 5, Name: "Ndiaye", Specialty: "Cardiologie"}},
	}, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/plateau/prendre-rdv", nil), map[string]string{"slug": "plateau"})
	rec := httptest.NewRecorder()
	h.ShowBookingForm(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Clinique du Plateau")
	assert.Contains(t, body, `<option value="5">Dr Ndiaye (Cardiologie)</option>`)
	assert.Contains(t, body, `action="/plateau/reserver"`)
}

func TestShowBookingForm_UnknownClinic(t *testing.T) {
	h, uc, _ := newBookingHandler(t)
	uc.On("GetBookingPage", mock.Anything, "inconnue").Return(nil, usecase.ErrClinicNotFound)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/inconnue/prendre-rdv", nil), map[string]string{"slug": "inconnue"})
	rec := httptest.NewRecorder()
	h.ShowBookingForm(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBooking_Success(t *testing.T) {
	h, uc, manager := newBookingHandler(t)
	uc.On("GetClinic", mock.Anything, "plateau").Return(plateau, nil)
	uc.On("CreateBooking", mock.Anything, "plateau", mock.MatchedBy(func(req *dto.BookingForm) bool {
		return req.DoctorID == 5 && req.PatientPhone == "77 123 45 67" && req.Time == "09:00" && req.Reason == "Contrôle"
	})).Return(&dto.BookingResponse{ID: 1, Status: "confirmed"}, nil)

	rec := postBooking(h, "plateau", bookingValues())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/plateau/merci", rec.Header().Get("Location"))
	assert.Equal(t, []flash.Message{{Category: flash.CategorySuccess, Text: "Rendez-vous confirmé !"}}, followFlashes(t, manager, rec))
	uc.AssertExpectations(t)
}

func TestCreateBooking_MissingPhoneIsRejected(t *testing.T) {
	h, uc, manager := newBookingHandler(t)
	uc.On("GetClinic", mock.Anything, "plateau").Return(plateau, nil)

	values := bookingValues()
	values.Del("patient_tel")
	rec := postBooking(h, "plateau", values)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/plateau/prendre-rdv", rec.Header().Get("Location"))
	messages := followFlashes(t, manager, rec)
	require.Len(t, messages, 1)
	assert.Equal(t, flash.CategoryError, messages[0].Category)
	assert.Contains(t, messages[0].Text, "patient_tel")
	uc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_SeveralInvalidFields(t *testing.T) {
	h, uc, manager := newBookingHandler(t)
	uc.On("GetClinic", mock.Anything, "plateau").Return(plateau, nil)

	values := bookingValues()
	values.Set("medecin_id", "abc")
	values.Set("heure", "9h")
	values.Set("patient_email", "pas-un-email")
	rec := postBooking(h, "plateau", values)

	messages := followFlashes(t, manager, rec)
	require.Len(t, messages, 3)
	assert.Contains(t, messages[0].Text, "heure")
	assert.Contains(t, messages[1].Text, "medecin_id")
	assert.Contains(t, messages[2].Text, "patient_email")
	uc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_UsecaseOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "slot taken", err: usecase.ErrSlotTaken, message: "Ce créneau vient d'être réservé. Veuillez en choisir un autre."},
		{name: "invalid date", err: usecase.ErrInvalidDate, message: "La date fournie est invalide"},
		{name: "invalid time", err: usecase.ErrInvalidTime, message: "L'heure fournie est invalide"},
		{name: "doctor", err: usecase.ErrDoctorNotFound, message: "Ce médecin n'est pas disponible dans cette clinique"},
		{name: "unexpected", err: errors.New("connection refused"), message: msgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc, manager := newBookingHandler(t)
			uc.On("GetClinic", mock.Anything, "plateau").Return(plateau, nil)
			uc.On("CreateBooking", mock.Anything, "plateau", mock.Anything).Return(nil, tt.err)

			rec := postBooking(h, "plateau", bookingValues())

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/plateau/prendre-rdv", rec.Header().Get("Location"))
			assert.Equal(t, []flash.Message{{Category: flash.CategoryError, Text: tt.message}}, followFlashes(t, manager, rec))
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestCreateBooking_UnknownClinic(t *testing.T) {
	h, uc, _ := newBookingHandler(t)
	uc.On("GetClinic", mock.Anything, "inconnue").Return(nil, usecase.ErrClinicNotFound)

	rec := postBooking(h, "inconnue", bookingValues())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	uc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_UnknownClinicWinsOverInvalidForm(t *testing.T) {
	h, uc, _ := newBookingHandler(t)
	uc.On("GetClinic", mock.Anything, "inconnue").Return(nil, usecase.ErrClinicNotFound)

	rec := postBooking(h, "inconnue", url.Values{})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies())
	uc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestShowConfirmation_DisplaysFlash(t *testing.T) {
	h, uc, _ := newBookingHandler(t)
	uc.On("GetClinic", mock.Anything, "plateau").Return(plateau, nil)
	uc.On("CreateBooking", mock.Anything, "plateau", mock.Anything).Return(&dto.BookingResponse{ID: 1}, nil)

	post := postBooking(h, "plateau", bookingValues())

	req := httptest.NewRequest(http.MethodGet, "/plateau/merci", nil)
	for _, c := range post.Result().Cookies() {
		req.AddCookie(c)
	}
	req = mux.SetURLVars(req, map[string]string{"slug": "plateau"})
	rec := httptest.NewRecorder()
	h.ShowConfirmation(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rendez-vous confirmé !")
	assert.Contains(t, rec.Body.String(), "Clinique du Plateau")
}

func TestShowConfirmation_UnknownClinic(t *testing.T) {
	h, uc, _ := newBookingHandler(t)
	uc.On("GetClinic", mock.Anything, "inconnue").Return(nil, usecase.ErrClinicNotFound)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/inconnue/merci", nil), map[string]string{"slug": "inconnue"})
	rec := httptest.NewRecorder()
	h.ShowConfirmation(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

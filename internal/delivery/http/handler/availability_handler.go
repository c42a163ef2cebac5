package handler

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"

	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetSlots always answers with a creneaux array, empty on failure.
func (h *AvailabilityHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.Atoi(vars["doctorId"])
	if err != nil {
		response.JSON(w, http.StatusNotFound, dto.SlotListResponse{Slots: []string{}, Error: "Médecin introuvable"})
		return
	}

	slots, err := h.availabilityUsecase.GetAvailableSlots(r.Context(), doctorID, vars["date"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			response.JSON(w, http.StatusBadRequest, dto.SlotListResponse{Slots: []string{}, Error: "Date invalide, format attendu AAAA-MM-JJ"})
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.JSON(w, http.StatusNotFound, dto.SlotListResponse{Slots: []string{}, Error: "Médecin introuvable"})
		default:
			response.JSON(w, http.StatusInternalServerError, dto.SlotListResponse{Slots: []string{}, Error: "Impossible de charger les créneaux"})
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.SlotListResponse{Slots: slots})
}

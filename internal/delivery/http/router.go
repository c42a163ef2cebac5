package http

import (
	"net/http"

	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	bookingHandler      *handler.BookingHandler
	availabilityHandler *handler.AvailabilityHandler
	cancellationHandler *handler.CancellationHandler
	pages               *handler.Pages
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	recoveryMiddleware  *middleware.RecoveryMiddleware
}

func NewRouter(
	bookingHandler *handler.BookingHandler,
	availabilityHandler *handler.AvailabilityHandler,
	cancellationHandler *handler.CancellationHandler,
	pages *handler.Pages,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		bookingHandler:      bookingHandler,
		availabilityHandler: availabilityHandler,
		cancellationHandler: cancellationHandler,
		pages:               pages,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		recoveryMiddleware:  recoveryMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Slot listing (JSON)
	r.router.HandleFunc("/disponibilites/{doctorId:[0-9]+}/{date}", r.availabilityHandler.GetSlots).Methods(http.MethodGet, http.MethodOptions)

	// Cancellation links, registered before the clinic routes so the literal
	// prefix wins over {slug}
	r.router.HandleFunc("/annuler-rdv/{token}", r.cancellationHandler.ShowCancellation).Methods(http.MethodGet)
	r.router.HandleFunc("/annuler-rdv/{token}/confirmer", r.cancellationHandler.ConfirmCancellation).Methods(http.MethodPost)
	r.router.HandleFunc("/annulation-confirmee", r.cancellationHandler.ShowCancelled).Methods(http.MethodGet)

	// Clinic scoped booking
	r.router.HandleFunc("/{slug}/prendre-rdv", r.bookingHandler.ShowBookingForm).Methods(http.MethodGet)
	r.router.HandleFunc("/{slug}/reserver", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	r.router.HandleFunc("/{slug}/merci", r.bookingHandler.ShowConfirmation).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(r.pages.NotFound)

	r.router.Use(r.recoveryMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

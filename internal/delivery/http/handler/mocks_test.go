package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-booking/config"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/delivery/http/view"
	"clinic-booking/pkg/flash"
	"clinic-booking/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

func newTestPages(t *testing.T) (*Pages, *flash.Manager) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	signer := jwt.NewSessionSigner(config.SessionConfig{Secret: "test-secret", TTL: time.Minute})
	manager := flash.NewManager(flash.NewRedisStore(client, time.Minute), signer, "rdv_session", false)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	return NewPages(renderer, manager, newTestLogger()), manager
}

// followFlashes reads the flashes a redirect response left for the browser.
func followFlashes(t *testing.T, manager *flash.Manager, rec *httptest.ResponseRecorder) []flash.Message {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, rec.Header().Get("Location"), nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	messages, err := manager.Pop(req)
	require.NoError(t, err)
	return messages
}

type MockPublicBookingUsecase struct {
	mock.Mock
}

func (m *MockPublicBookingUsecase) GetBookingPage(ctx context.Context, slug string) (*dto.BookingPageResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingPageResponse), args.Error(1)
}

func (m *MockPublicBookingUsecase) GetClinic(ctx context.Context, slug string) (*dto.ClinicResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClinicResponse), args.Error(1)
}

func (m *MockPublicBookingUsecase) CreateBooking(ctx context.Context, slug string, req *dto.BookingForm) (*dto.BookingResponse, error) {
	args := m.Called(ctx, slug, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingResponse), args.Error(1)
}

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID int, date string) ([]string, error) {
	args := m.Called(ctx, doctorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCancellationUsecase struct {
	mock.Mock
}

func (m *MockCancellationUsecase) GetCancellation(ctx context.Context, token string) (*dto.CancellationResponse, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CancellationResponse), args.Error(1)
}

func (m *MockCancellationUsecase) ConfirmCancellation(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

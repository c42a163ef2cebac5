package service

import (
	"context"
	"strings"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/infrastructure/notification"
	"clinic-booking/pkg/phone"

	"github.com/sirupsen/logrus"
)

type EmailSender interface {
	SendEmail(ctx context.Context, email notification.Email) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// NotificationService is best effort: delivery failures are logged and never
// surface to the caller, whose database work is already committed.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, appointment *entity.Appointment)
	SendCancellationConfirmation(ctx context.Context, appointment *entity.Appointment)
}

type notificationService struct {
	log     *logrus.Logger
	email   EmailSender
	sms     SMSSender
	baseURL string
}

func NewNotificationService(log *logrus.Logger, email EmailSender, sms SMSSender, baseURL string) NotificationService {
	return &notificationService{
		log:     log,
		email:   email,
		sms:     sms,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// CancelURL is the public link that lets a patient cancel without an account.
func CancelURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/annuler-rdv/" + token
}

func (s *notificationService) SendBookingConfirmation(ctx context.Context, appointment *entity.Appointment) {
	patient := appointment.Patient
	if patient == nil {
		s.log.Warnf("Booking confirmation skipped, appointment %d has no patient loaded", appointment.ID)
		return
	}
	view := s.view(appointment)

	if patient.HasEmail() {
		body, err := render(bookingEmailTemplate, view)
		var htmlBody string
		if err == nil {
			htmlBody, err = render(bookingEmailHTMLTemplate, view)
		}
		if err == nil {
			err = s.email.SendEmail(ctx, notification.Email{
				To:       patient.Email,
				Subject:  "Confirmation de votre rendez-vous",
				TextBody: body,
				HTMLBody: htmlBody,
			})
		}
		if err != nil {
			s.log.WithField("appointment_id", appointment.ID).Warnf("Failed to send booking confirmation email: %+v", err)
		}
	}

	if patient.HasPhone() {
		number, err := phone.FormatSenegal(patient.Phone)
		if err != nil {
			s.log.WithField("appointment_id", appointment.ID).Warnf("Skipping booking SMS, unusable number %q: %+v", patient.Phone, err)
			return
		}

		body, err := render(bookingSMSTemplate, view)
		if err == nil {
			err = s.sms.SendSMS(ctx, number, body)
		}
		if err != nil {
			s.log.WithField("appointment_id", appointment.ID).Warnf("Failed to send booking confirmation SMS: %+v", err)
		}
	}
}

func (s *notificationService) SendCancellationConfirmation(ctx context.Context, appointment *entity.Appointment) {
	patient := appointment.Patient
	if patient == nil || !patient.HasEmail() {
		return
	}

	body, err := render(cancellationEmailTemplate, s.view(appointment))
	if err == nil {
		err = s.email.SendEmail(ctx, notification.Email{
			To:       patient.Email,
			Subject:  "Annulation de votre rendez-vous",
			TextBody: body,
		})
	}
	if err != nil {
		s.log.WithField("appointment_id", appointment.ID).Warnf("Failed to send cancellation email: %+v", err)
	}
}

func (s *notificationService) view(appointment *entity.Appointment) notificationView {
	view := notificationView{
		Date:      appointment.Date.Format(entity.DisplayDateLayout),
		Time:      appointment.Time,
		CancelURL: CancelURL(s.baseURL, appointment.CancelToken),
	}
	if appointment.Patient != nil {
		view.PatientName = appointment.Patient.Name
	}
	if appointment.Doctor != nil {
		view.DoctorName = appointment.Doctor.Name
	}
	if appointment.Clinic != nil {
		view.ClinicName = appointment.Clinic.Name
		view.ClinicAddress = appointment.Clinic.Address
	}
	return view
}

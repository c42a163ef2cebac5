package usecase

import (
	"errors"
	"strings"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrClinicNotFound = errors.New("clinic not found")
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidDate    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime    = errors.New("invalid time format, use HH:MM")
)

// parseDate reads a calendar date with no time zone attached.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(entity.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// parseSlotTime returns the zero-padded "HH:MM" form stored in slot_time, so
// "9:00" and "09:00" resolve to the same slot.
func parseSlotTime(value string) (string, error) {
	t, err := time.Parse(entity.TimeLayout, strings.TrimSpace(value))
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format(entity.TimeLayout), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

package entity

import (
	"fmt"
	"time"
)

const (
	// DefaultSlotDuration applies when an availability row has no duration.
	DefaultSlotDuration = 30

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// DisplayDateLayout is how dates are shown to patients.
	DisplayDateLayout = "02/01/2006"
)

// Availability is a doctor's declared working window for one calendar date.
// StartTime and EndTime are naive "HH:MM" clock strings.
type Availability struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID     int       `gorm:"not null;index:idx_availabilities_doctor_date" json:"doctor_id"`
	ClinicID     int       `gorm:"not null;index" json:"clinic_id"`
	Date         time.Time `gorm:"type:date;not null;index:idx_availabilities_doctor_date" json:"date"`
	StartTime    string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime      string    `gorm:"type:varchar(5);not null" json:"end_time"`
	SlotDuration int       `gorm:"not null;default:30" json:"slot_duration"`

	// Relationships
	Doctor *User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Availability) TableName() string {
	return "availabilities"
}

// Slots walks the window from StartTime in SlotDuration steps. A slot that
// would start at or after EndTime is not produced.
func (a *Availability) Slots() ([]string, error) {
	start, err := time.Parse(TimeLayout, a.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", a.StartTime, err)
	}
	end, err := time.Parse(TimeLayout, a.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q: %w", a.EndTime, err)
	}

	duration := a.SlotDuration
	if duration <= 0 {
		duration = DefaultSlotDuration
	}
	step := time.Duration(duration) * time.Minute

	slots := make([]string, 0)
	for current := start; current.Before(end); current = current.Add(step) {
		slots = append(slots, current.Format(TimeLayout))
	}
	return slots, nil
}

// FreeSlots returns Slots minus the taken start times, keeping order.
func (a *Availability) FreeSlots(taken []string) ([]string, error) {
	slots, err := a.Slots()
	if err != nil {
		return nil, err
	}

	takenSet := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}

	free := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := takenSet[slot]; !ok {
			free = append(free, slot)
		}
	}
	return free, nil
}

package entity

import "time"

// User covers doctors and clinic staff. ClinicID is nil only for super admins.
type User struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(200);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'doctor'" json:"role"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Specialty    string    `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	ClinicID     *int      `gorm:"index" json:"clinic_id,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Clinic *Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor reports whether the user can hold appointments.
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// BelongsTo reports whether the user is attached to the given clinic.
func (u *User) BelongsTo(clinicID int) bool {
	return u.ClinicID != nil && *u.ClinicID == clinicID
}

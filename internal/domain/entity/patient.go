package entity

import "time"

// Patient is identified in practice by its phone number.
type Patient struct {
	ID        int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Phone     string     `gorm:"type:varchar(20);not null;index" json:"phone"`
	Email     string     `gorm:"type:varchar(100)" json:"email,omitempty"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Address   string     `gorm:"type:varchar(200)" json:"address,omitempty"`
	ClinicID  int        `gorm:"not null;index" json:"clinic_id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) HasEmail() bool {
	return p.Email != ""
}

func (p *Patient) HasPhone() bool {
	return p.Phone != ""
}

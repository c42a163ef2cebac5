package entity

import "time"

// Clinic is the tenant boundary: every other record is scoped by ClinicID.
type Clinic struct {
	ID                 int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string     `gorm:"type:varchar(100);not null" json:"name"`
	Slug               string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug"`
	Address            string     `gorm:"type:varchar(200)" json:"address,omitempty"`
	Phone              string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email              string     `gorm:"type:varchar(100)" json:"email,omitempty"`
	SubscriptionActive bool       `gorm:"not null;default:true" json:"subscription_active"`
	SubscriptionStart  *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd    *time.Time `json:"subscription_end,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Clinic) TableName() string {
	return "clinics"
}

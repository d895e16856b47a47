package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID uint    `gorm:"index:idx_appt_service_date" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StylistID *uint    `json:"stylist_id"`
	Stylist   *Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist,omitempty"`

	// Calendar date "2006-01-02" and start time "15:04" in the salon's timezone
	Date      string `gorm:"size:10;index:idx_appt_service_date" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	DecidedAt *time.Time `json:"decided_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

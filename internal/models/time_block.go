package models

import (
	"encoding/json"
	"time"
)

// TimeBlock is one day of offered times for a service, optionally pinned
// to a stylist. A nil stylist means any stylist can take the slot.
type TimeBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint    `gorm:"index:idx_block_service_date" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StylistID *uint    `json:"stylist_id"`
	Stylist   *Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist,omitempty"`

	// Calendar date, "2006-01-02"
	Date string `gorm:"size:10;index:idx_block_service_date" json:"date"`

	// JSON-encoded []string of "HH:MM" times, kept as stored even when
	// some fall outside the displayable hour range
	Times string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (tb *TimeBlock) TimeList() []string {
	var out []string
	if tb.Times == "" {
		return out
	}
	_ = json.Unmarshal([]byte(tb.Times), &out)
	return out
}

func (tb *TimeBlock) SetTimeList(times []string) {
	b, _ := json.Marshal(times)
	tb.Times = string(b)
}

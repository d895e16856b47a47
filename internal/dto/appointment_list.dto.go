package dto

import (
	"time"

	"github.com/bellebook/salon-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	Status      string    `json:"status"`
	ServiceName string    `json:"service_name"`
	SalonName   string    `json:"salon_name"`
	StylistName string    `json:"stylist_name,omitempty"`
	ClientName  string    `json:"client_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromAppointments(appointments []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			StartTime:   ap.StartTime,
			Status:      ap.Status,
			ServiceName: ap.Service.Name,
			SalonName:   ap.Service.Salon.Name,
			ClientName:  ap.User.Name,
			CreatedAt:   ap.CreatedAt,
		}
		if ap.Stylist != nil {
			item.StylistName = ap.Stylist.Name
		}
		out = append(out, item)
	}
	return out
}

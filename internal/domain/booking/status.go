package booking

import (
	"time"

	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/models"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func InitialStatus() Status {
	return StatusPending
}

// Only pending appointments can be decided.
func CanDecide(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanDecide(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.DecidedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanDecide(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	ap.DecidedAt = &now
	return nil
}

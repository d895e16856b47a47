package booking

import (
	"context"
	"time"

	"github.com/bellebook/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// -------- Availability --------
	ListTimeBlocks(
		ctx context.Context,
		serviceID uint,
		date string,
	) ([]models.TimeBlock, error)

	ListActiveAppointments(
		ctx context.Context,
		serviceID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Appointment (create / conflict) --------
	// CreateAppointmentIfFree inserts atomically; a slot taken in the
	// meantime yields ErrBusiness("slot_already_booked").
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForOwner(
		ctx context.Context,
		appointmentID uint,
		ownerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListPendingForOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Appointment, error)
}

// Hold is a short-lived server-side reservation of one slot, created
// when the user enters the payment step and consumed on booking.
type Hold struct {
	ID        string `json:"id"`
	UserID    uint   `json:"user_id"`
	ServiceID uint   `json:"service_id"`
	StylistID *uint  `json:"stylist_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

type HoldStore interface {
	// Put stores the hold with the given TTL. A live hold on the same
	// slot yields ErrBusiness("slot_on_hold").
	Put(ctx context.Context, h Hold, ttl time.Duration) error

	// Consume removes and returns the hold; nil when absent or expired.
	Consume(ctx context.Context, id string) (*Hold, error)

	// HeldByOther reports whether a live hold by a different user pins
	// the slot described by in.
	HeldByOther(ctx context.Context, in SlotInput) (bool, error)
}

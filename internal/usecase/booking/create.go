package booking

import (
	"context"

	"github.com/bellebook/salon-scheduler/internal/audit"
	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID    uint
	ServiceID uint
	StylistID *uint

	Date      string
	StartTime string

	// Optional hold from the reserve step; consumed exactly once.
	HoldID string
}

// ======================================================
// USE CASE
// ======================================================

// AuditSink is the write side of the audit dispatcher.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

type CreateAppointment struct {
	repo  domain.Repository
	holds domain.HoldStore
	audit AuditSink
}

func NewCreateAppointment(
	repo domain.Repository,
	holds domain.HoldStore,
	auditDispatcher AuditSink,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		holds: holds,
		audit: auditDispatcher,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	slot := domain.SlotInput{
		UserID:    in.UserID,
		ServiceID: in.ServiceID,
		StylistID: in.StylistID,
		Date:      in.Date,
		StartTime: in.StartTime,
	}
	if err := validateSlotTimes(slot); err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// A presented hold must be live, owned by the caller and pin the
	// same slot. Consumption removes it, so a resubmission with the
	// same hold id fails instead of double-booking.
	if in.HoldID != "" {
		hold, err := uc.holds.Consume(ctx, in.HoldID)
		if err != nil {
			return nil, err
		}
		if hold == nil {
			return nil, httperr.ErrBusiness("hold_expired")
		}
		if hold.UserID != in.UserID ||
			hold.ServiceID != in.ServiceID ||
			hold.Date != in.Date ||
			hold.StartTime != in.StartTime ||
			!sameStylist(hold.StylistID, in.StylistID) {
			return nil, httperr.ErrBusiness("hold_mismatch")
		}
	} else {
		// No hold presented: a slot another user is holding in the
		// payment step is off limits until the hold expires.
		held, err := uc.holds.HeldByOther(ctx, slot)
		if err != nil {
			return nil, err
		}
		if held {
			return nil, httperr.ErrBusiness("slot_on_hold")
		}
	}

	blocks, err := uc.repo.ListTimeBlocks(ctx, in.ServiceID, in.Date)
	if err != nil {
		return nil, err
	}
	if !domain.SlotOffered(blocks, in.StylistID, in.StartTime) {
		return nil, httperr.ErrBusiness("slot_not_offered")
	}

	ap := &models.Appointment{
		UserID:    in.UserID,
		ServiceID: in.ServiceID,
		StylistID: in.StylistID,
		Date:      in.Date,
		StartTime: in.StartTime,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  service.SalonID,
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

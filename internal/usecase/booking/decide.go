package booking

import (
	"context"
	"fmt"

	"github.com/bellebook/salon-scheduler/internal/audit"
	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/models"
	"github.com/bellebook/salon-scheduler/internal/notify"
	"github.com/bellebook/salon-scheduler/internal/timezone"
)

const (
	DecisionConfirm = "confirm"
	DecisionCancel  = "cancel"
)

// NotifySink is the write side of the notification dispatcher.
type NotifySink interface {
	Dispatch(ev notify.Event)
}

type DecideAppointment struct {
	repo   domain.Repository
	audit  AuditSink
	notify NotifySink
}

func NewDecideAppointment(
	repo domain.Repository,
	auditDispatcher AuditSink,
	notifyDispatcher NotifySink,
) *DecideAppointment {
	return &DecideAppointment{
		repo:   repo,
		audit:  auditDispatcher,
		notify: notifyDispatcher,
	}
}

func (uc *DecideAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
	decision string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForOwner(ctx, appointmentID, ownerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	service, err := uc.repo.GetService(ctx, ap.ServiceID)
	if err != nil {
		return nil, err
	}

	salon, err := uc.repo.GetSalonByID(ctx, service.SalonID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)

	var action string
	switch decision {
	case DecisionConfirm:
		if err := domain.Confirm(ap, now); err != nil {
			return nil, err
		}
		action = "appointment_confirmed"
	case DecisionCancel:
		if err := domain.Cancel(ap, now); err != nil {
			return nil, err
		}
		action = "appointment_canceled"
	default:
		return nil, httperr.ErrBusiness("invalid_decision")
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		UserID: ap.UserID,
		Message: fmt.Sprintf(
			"Your %s appointment on %s at %s was %s.",
			service.Name, ap.Date, ap.StartTime, ap.Status,
		),
	})

	uc.audit.Dispatch(audit.Event{
		SalonID:  service.SalonID,
		UserID:   &ownerID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

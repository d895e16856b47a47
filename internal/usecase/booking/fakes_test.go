package booking

import (
	"context"
	"errors"
	"time"

	"github.com/bellebook/salon-scheduler/internal/audit"
	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/models"
	"github.com/bellebook/salon-scheduler/internal/notify"
)

// ======================================================
// REPOSITORY FAKE
// ======================================================

type fakeRepo struct {
	services     map[uint]*models.Service
	salons       map[uint]*models.Salon
	blocks       []models.TimeBlock
	appointments []models.Appointment

	created      []*models.Appointment
	createErr    error
	ownerAppt    *models.Appointment
	updatedAppts []*models.Appointment
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return svc, nil
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	salon, ok := f.salons[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return salon, nil
}

func (f *fakeRepo) ListTimeBlocks(_ context.Context, serviceID uint, date string) ([]models.TimeBlock, error) {
	var out []models.TimeBlock
	for _, b := range f.blocks {
		if b.ServiceID == serviceID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveAppointments(_ context.Context, serviceID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ServiceID == serviceID && ap.Date == date && ap.Status != "canceled" {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = uint(len(f.created) + 1)
	f.created = append(f.created, ap)
	return nil
}

func (f *fakeRepo) GetAppointmentForOwner(_ context.Context, _ uint, _ uint) (*models.Appointment, error) {
	if f.ownerAppt == nil {
		return nil, errors.New("record not found")
	}
	return f.ownerAppt, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updatedAppts = append(f.updatedAppts, ap)
	return nil
}

func (f *fakeRepo) ListAppointmentsForUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListPendingForOwner(_ context.Context, _ uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Status == "pending" {
			out = append(out, ap)
		}
	}
	return out, nil
}

// ======================================================
// HOLD STORE FAKE
// ======================================================

type fakeHolds struct {
	holds map[string]domain.Hold
	puts  []domain.Hold
}

var _ domain.HoldStore = (*fakeHolds)(nil)

func newFakeHolds() *fakeHolds {
	return &fakeHolds{holds: make(map[string]domain.Hold)}
}

func (f *fakeHolds) Put(_ context.Context, h domain.Hold, _ time.Duration) error {
	for _, live := range f.holds {
		if live.ServiceID == h.ServiceID &&
			live.Date == h.Date &&
			live.StartTime == h.StartTime &&
			sameStylist(live.StylistID, h.StylistID) {
			return httperr.ErrBusiness("slot_on_hold")
		}
	}
	f.holds[h.ID] = h
	f.puts = append(f.puts, h)
	return nil
}

func (f *fakeHolds) Consume(_ context.Context, id string) (*domain.Hold, error) {
	h, ok := f.holds[id]
	if !ok {
		return nil, nil
	}
	delete(f.holds, id)
	return &h, nil
}

func (f *fakeHolds) HeldByOther(_ context.Context, in domain.SlotInput) (bool, error) {
	for _, live := range f.holds {
		if live.ServiceID == in.ServiceID &&
			live.Date == in.Date &&
			live.StartTime == in.StartTime &&
			sameStylist(live.StylistID, in.StylistID) &&
			live.UserID != in.UserID {
			return true, nil
		}
	}
	return false, nil
}

// ======================================================
// DISPATCHER FAKES
// ======================================================

type fakeAudit struct {
	events []audit.Event
}

func (f *fakeAudit) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

type fakeNotify struct {
	events []notify.Event
}

func (f *fakeNotify) Dispatch(ev notify.Event) {
	f.events = append(f.events, ev)
}

// ======================================================
// FIXTURES
// ======================================================

func activeServiceRepo() *fakeRepo {
	block := models.TimeBlock{ServiceID: 1, Date: "2026-09-01"}
	block.SetTimeList([]string{"09:00", "13:30"})

	return &fakeRepo{
		services: map[uint]*models.Service{
			1: {ID: 1, SalonID: 5, Name: "Cut & Style", Active: true},
		},
		salons: map[uint]*models.Salon{
			5: {ID: 5, Name: "Belle", Timezone: "Asia/Seoul"},
		},
		blocks: []models.TimeBlock{block},
	}
}

package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bellebook/salon-scheduler/internal/audit"
	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/models"
	ucbooking "github.com/bellebook/salon-scheduler/internal/usecase/booking"
)

// memRepo is an in-memory booking repository backing the handler tests.
type memRepo struct {
	services     map[uint]*models.Service
	blocks       []models.TimeBlock
	appointments []models.Appointment
}

var _ domain.Repository = (*memRepo)(nil)

func (m *memRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := m.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return svc, nil
}

func (m *memRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	return &models.Salon{ID: id, Timezone: "Asia/Seoul"}, nil
}

func (m *memRepo) ListTimeBlocks(_ context.Context, serviceID uint, date string) ([]models.TimeBlock, error) {
	var out []models.TimeBlock
	for _, b := range m.blocks {
		if b.ServiceID == serviceID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memRepo) ListActiveAppointments(_ context.Context, serviceID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.ServiceID == serviceID && ap.Date == date && ap.Status != "canceled" {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (m *memRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	for _, live := range m.appointments {
		if live.Status == "canceled" {
			continue
		}
		if live.ServiceID == ap.ServiceID &&
			live.Date == ap.Date &&
			live.StartTime == ap.StartTime &&
			samePtr(live.StylistID, ap.StylistID) {
			return httperr.ErrBusiness("slot_already_booked")
		}
	}
	ap.ID = uint(len(m.appointments) + 1)
	m.appointments = append(m.appointments, *ap)
	return nil
}

func (m *memRepo) GetAppointmentForOwner(_ context.Context, _ uint, _ uint) (*models.Appointment, error) {
	return nil, errors.New("record not found")
}

func (m *memRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (m *memRepo) ListAppointmentsForUser(_ context.Context, _ uint) ([]models.Appointment, error) {
	return nil, nil
}

func (m *memRepo) ListPendingForOwner(_ context.Context, _ uint) ([]models.Appointment, error) {
	return nil, nil
}

func samePtr(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// memHolds keeps holds in a map; TTLs never expire within a test run.
type memHolds struct {
	holds map[string]domain.Hold
}

var _ domain.HoldStore = (*memHolds)(nil)

func (m *memHolds) Put(_ context.Context, h domain.Hold, _ time.Duration) error {
	for _, live := range m.holds {
		if live.ServiceID == h.ServiceID &&
			live.Date == h.Date &&
			live.StartTime == h.StartTime &&
			samePtr(live.StylistID, h.StylistID) {
			return httperr.ErrBusiness("slot_on_hold")
		}
	}
	m.holds[h.ID] = h
	return nil
}

func (m *memHolds) Consume(_ context.Context, id string) (*domain.Hold, error) {
	h, ok := m.holds[id]
	if !ok {
		return nil, nil
	}
	delete(m.holds, id)
	return &h, nil
}

func (m *memHolds) HeldByOther(_ context.Context, in domain.SlotInput) (bool, error) {
	for _, live := range m.holds {
		if live.ServiceID == in.ServiceID &&
			live.Date == in.Date &&
			live.StartTime == in.StartTime &&
			samePtr(live.StylistID, in.StylistID) &&
			live.UserID != in.UserID {
			return true, nil
		}
	}
	return false, nil
}

type nopAudit struct{}

func (nopAudit) Dispatch(audit.Event) {}

func newBookingFixture(t *testing.T) *AppointmentHandler {
	t.Helper()

	block := models.TimeBlock{ServiceID: 1, Date: "2026-09-01"}
	block.SetTimeList([]string{"09:00", "13:30"})

	repo := &memRepo{
		services: map[uint]*models.Service{
			1: {ID: 1, SalonID: 5, Name: "Cut & Style", Active: true},
		},
		blocks: []models.TimeBlock{block},
	}
	holds := &memHolds{holds: make(map[string]domain.Hold)}

	return NewAppointmentHandler(
		ucbooking.NewCreateAppointment(repo, holds, nopAudit{}),
		ucbooking.NewReserveSlot(repo, holds),
		nil, // decide is exercised at the usecase level
		nil,
		nil,
	)
}

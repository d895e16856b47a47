package booking

import (
	"context"

	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}

type ListPendingForStylist struct {
	repo domain.Repository
}

func NewListPendingForStylist(repo domain.Repository) *ListPendingForStylist {
	return &ListPendingForStylist{repo: repo}
}

func (uc *ListPendingForStylist) Execute(
	ctx context.Context,
	ownerID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListPendingForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}

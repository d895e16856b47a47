package booking

import (
	"context"
	"time"

	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Entry, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.Active {
		return []domain.Entry{}, nil
	}

	blocks, err := uc.repo.ListTimeBlocks(ctx, in.ServiceID, in.Date)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListActiveAppointments(ctx, in.ServiceID, in.Date)
	if err != nil {
		return nil, err
	}

	return domain.AvailableEntries(blocks, appointments), nil
}

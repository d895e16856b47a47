package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
)

// Holds live exactly as long as the payment-step countdown.
const HoldTTL = 300 * time.Second

type ReserveSlot struct {
	repo  domain.Repository
	holds domain.HoldStore
}

func NewReserveSlot(repo domain.Repository, holds domain.HoldStore) *ReserveSlot {
	return &ReserveSlot{repo: repo, holds: holds}
}

func (uc *ReserveSlot) Execute(
	ctx context.Context,
	in domain.SlotInput,
) (*domain.Hold, error) {

	if err := validateSlotTimes(in); err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	blocks, err := uc.repo.ListTimeBlocks(ctx, in.ServiceID, in.Date)
	if err != nil {
		return nil, err
	}
	if !domain.SlotOffered(blocks, in.StylistID, in.StartTime) {
		return nil, httperr.ErrBusiness("slot_not_offered")
	}

	appointments, err := uc.repo.ListActiveAppointments(ctx, in.ServiceID, in.Date)
	if err != nil {
		return nil, err
	}
	for _, ap := range appointments {
		if ap.StartTime == in.StartTime && sameStylist(ap.StylistID, in.StylistID) {
			return nil, httperr.ErrBusiness("slot_already_booked")
		}
	}

	hold := domain.Hold{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		ServiceID: in.ServiceID,
		StylistID: in.StylistID,
		Date:      in.Date,
		StartTime: in.StartTime,
	}

	if err := uc.holds.Put(ctx, hold, HoldTTL); err != nil {
		return nil, err
	}

	return &hold, nil
}

func validateSlotTimes(in domain.SlotInput) error {
	// canonical forms only, so slots compare as strings
	if len(in.Date) != 10 {
		return httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if len(in.StartTime) != 5 {
		return httperr.ErrBusiness("invalid_time")
	}
	if _, err := time.Parse("15:04", in.StartTime); err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}

func sameStylist(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

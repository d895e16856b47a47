package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/bellebook/salon-scheduler/internal/domain/booking"
	"github.com/bellebook/salon-scheduler/internal/httperr"
)

// RedisHoldStore keeps two keys per hold: the hold body under its id,
// and a slot marker that pins the (service, stylist, date, time) tuple
// so a second user cannot hold the same slot while the first one is in
// the payment step. Both expire together.
type RedisHoldStore struct {
	client *redis.Client
}

func NewRedisHoldStore(client *redis.Client) *RedisHoldStore {
	return &RedisHoldStore{client: client}
}

func holdKey(id string) string {
	return "hold:" + id
}

func slotKey(serviceID uint, stylistID *uint, date, startTime string) string {
	stylist := "any"
	if stylistID != nil {
		stylist = fmt.Sprintf("%d", *stylistID)
	}
	return fmt.Sprintf("holdslot:%d:%s:%s:%s", serviceID, stylist, date, startTime)
}

func (s *RedisHoldStore) Put(
	ctx context.Context,
	h domain.Hold,
	ttl time.Duration,
) error {

	body, err := json.Marshal(h)
	if err != nil {
		return err
	}

	sk := slotKey(h.ServiceID, h.StylistID, h.Date, h.StartTime)

	// the marker carries the holder so hold-less booking attempts can
	// tell a foreign hold from the caller's own
	ok, err := s.client.SetNX(ctx, sk, strconv.FormatUint(uint64(h.UserID), 10), ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("slot_on_hold")
	}

	if err := s.client.Set(ctx, holdKey(h.ID), body, ttl).Err(); err != nil {
		s.client.Del(ctx, sk)
		return err
	}

	return nil
}

func (s *RedisHoldStore) Consume(
	ctx context.Context,
	id string,
) (*domain.Hold, error) {

	body, err := s.client.GetDel(ctx, holdKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var h domain.Hold
	if err := json.Unmarshal([]byte(body), &h); err != nil {
		return nil, err
	}

	s.client.Del(ctx, slotKey(h.ServiceID, h.StylistID, h.Date, h.StartTime))

	return &h, nil
}

func (s *RedisHoldStore) HeldByOther(
	ctx context.Context,
	in domain.SlotInput,
) (bool, error) {

	holder, err := s.client.Get(ctx, slotKey(in.ServiceID, in.StylistID, in.Date, in.StartTime)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	id, err := strconv.ParseUint(holder, 10, 64)
	if err != nil {
		return true, nil
	}

	return uint(id) != in.UserID, nil
}

var _ domain.HoldStore = (*RedisHoldStore)(nil)

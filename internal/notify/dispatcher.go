package notify

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bellebook/salon-scheduler/internal/logging"
	"github.com/bellebook/salon-scheduler/internal/models"
)

type Event struct {
	UserID  uint
	Message string
}

// Dispatcher writes notifications off the request path, same shape as
// the audit dispatcher: buffered channel, single worker, drop on overflow.
type Dispatcher struct {
	db    *gorm.DB
	queue chan Event
}

func NewDispatcher(db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		n := models.Notification{
			UserID:  ev.UserID,
			Message: ev.Message,
		}
		if err := d.db.Create(&n).Error; err != nil {
			logging.L().Warn("notification write failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logging.L().Warn("notification queue full, dropping event",
			zap.Uint("user_id", ev.UserID))
	}
}

package email

import (
	"context"
	"time"

	"github.com/washify/booking/internal/kafka"
	"go.uber.org/zap"
)

// Dispatcher delivers confirmation emails for booking events with a bounded
// retry. Delivery failure never propagates: the booking is already durable,
// so a terminal failure is only recorded as a dead-letter log line.
type Dispatcher struct {
	sender   Sender
	attempts int
	log      *zap.SugaredLogger
}

func NewDispatcher(sender Sender, attempts int, log *zap.SugaredLogger) *Dispatcher {
	if attempts < 1 {
		attempts = 1
	}
	return &Dispatcher{sender: sender, attempts: attempts, log: log}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event kafka.BookingEvent) {
	msg, err := Confirmation(event)
	if err != nil {
		d.log.Errorw("dead-letter", "booking_number", event.BookingNumber, "err", err)
		return
	}

	var lastErr error
	for i := 0; i < d.attempts; i++ {
		id, err := d.sender.Send(ctx, msg)
		if err == nil {
			d.log.Infow("confirmation sent", "booking_number", event.BookingNumber, "provider_id", id)
			return
		}
		lastErr = err
		d.log.Warnw("confirmation send failed", "booking_number", event.BookingNumber, "attempt", i+1, "err", err)
		if i < d.attempts-1 {
			select {
			case <-ctx.Done():
				d.log.Errorw("dead-letter", "booking_number", event.BookingNumber, "err", ctx.Err())
				return
			case <-time.After(time.Duration(i+1) * 500 * time.Millisecond):
			}
		}
	}
	d.log.Errorw("dead-letter", "booking_number", event.BookingNumber, "err", lastErr)
}

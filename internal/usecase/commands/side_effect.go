package commands

import (
	"context"
	"fmt"

	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// notify runs a notification after commit. Errors and panics are logged at WARN and
// never reach the caller of the business operation.
func (uc *bookingUseCaseImpl) notify(ctx context.Context, event string, bookingID uuid.UUID, send func(ctx context.Context) error) {
	if uc.notifier == nil {
		return
	}
	err := runSafely(ctx, send)
	if err == nil {
		return
	}
	err = errs.Mark(err, errs.ErrNotificationFailure)
	uc.logger.WarnContext(ctx, "booking notification failed",
		"event", event,
		"booking_id", bookingID.String(),
		"error", err.Error())
}

func runSafely(ctx context.Context, send func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.Newf("notification panicked: %v", fmt.Sprint(r))
		}
	}()
	return send(ctx)
}

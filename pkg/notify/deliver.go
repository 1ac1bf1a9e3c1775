package notify

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
)

// Deliverer hands a fired notification to the outside world.
type Deliverer interface {
	Deliver(ctx context.Context, content Content) error
}

type DelivererFunc func(ctx context.Context, content Content) error

func (f DelivererFunc) Deliver(ctx context.Context, content Content) error {
	return f(ctx, content)
}

type LogDeliverer struct{}

func (LogDeliverer) Deliver(_ context.Context, content Content) error {
	common.GetCategoryLogger(common.LoggerNameNotify, common.LoggerCategoryDelivery).
		Info("Notification fired",
			zap.String("title", content.Title),
			zap.String("body", content.Body),
			zap.Any("data", content.Data))
	return nil
}

// MultiDeliverer fans out to every deliverer. Deliverers that have nobody to address the
// content to are skipped silently.
type MultiDeliverer []Deliverer

func (m MultiDeliverer) Deliver(ctx context.Context, content Content) error {
	var errs []error
	for _, d := range m {
		if err := d.Deliver(ctx, content); err != nil && !errors.Is(err, ErrNoRecipient) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

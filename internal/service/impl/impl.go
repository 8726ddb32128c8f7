// Package impl is implementation of service interfaces.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/acolhe/acolhe/internal/service"
	"github.com/acolhe/acolhe/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// nolint:gochecknoglobals
var (
	now   = time.Now
	newID = func() string { return uuid.New().String() }
)

func success(ctx context.Context, n service.Notifier, msg string) {
	n.Notify(ctx, service.Notification{Level: service.SuccessLevel, Message: msg})
}

func failure(ctx context.Context, n service.Notifier, msg string) {
	n.Notify(ctx, service.Notification{Level: service.ErrorLevel, Message: msg})
}

// fromStorage converts storage errors into service ones.
func fromStorage(err error, msg string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s: %w", msg, service.ErrNotFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		return fmt.Errorf("%s: %w", msg, service.ErrAlreadyExists)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", service.ErrValidation, msg)
}

// Package notify delivers user-facing notifications.
package notify

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/acolhe/acolhe/internal/service"
)

var log = logrus.WithField("package", "notify")

type collectorKey struct{}

type collector struct {
	mu sync.Mutex
	nn []service.Notification
}

type notifier struct{}

// New returns notifier which logs notifications and passes them to the request's collector, if any.
func New() service.Notifier {
	return notifier{}
}

// Notify ...
func (notifier) Notify(ctx context.Context, n service.Notification) {
	log.WithField("level", n.Level).Debug(n.Message)

	if c, ok := ctx.Value(collectorKey{}).(*collector); ok {
		c.mu.Lock()
		c.nn = append(c.nn, n)
		c.mu.Unlock()
	}
}

// WithCollector returns context which collects notifications.
func WithCollector(ctx context.Context) context.Context {
	return context.WithValue(ctx, collectorKey{}, &collector{})
}

// Collected returns notifications collected within ctx.
func Collected(ctx context.Context) []service.Notification {
	c, ok := ctx.Value(collectorKey{}).(*collector)
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]service.Notification, len(c.nn))
	copy(out, c.nn)

	return out
}

// Last returns the latest notification collected within ctx.
func Last(ctx context.Context) (service.Notification, bool) {
	nn := Collected(ctx)
	if len(nn) == 0 {
		return service.Notification{}, false
	}

	return nn[len(nn)-1], true
}

// Package health contains code for health checks.
package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/acolhe/acolhe/internal/api"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// Pinger checks a dependency of the service.
type Pinger interface {
	Ping(ctx context.Context) error
	Name() string
}

type subjectPinger struct {
	f func(ctx context.Context) error
	s string
}

func (p subjectPinger) Ping(ctx context.Context) error {
	return p.f(ctx)
}

func (p subjectPinger) Name() string {
	return p.s
}

// SubjectPinger wraps ping function, e.g. storage.Storage.Ping, with a name.
func SubjectPinger(s string, f func(ctx context.Context) error) Pinger {
	return subjectPinger{
		f: f,
		s: s,
	}
}

// Response ...
type Response struct {
	Version string            `json:"version"`
	Commit  string            `json:"commit"`
	Errors  map[string]string `json:"errors"`
}

// Handler pings every p concurrently. It responds 503 if any of them failed.
func Handler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		var (
			gr errgroup.Group
			mu sync.Mutex
		)

		resp := Response{
			Version: version,
			Commit:  commit,
			Errors:  map[string]string{},
		}

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				if err := v.Ping(ctx); err != nil {
					logrus.WithError(err).WithField("subject", v.Name()).Error("health check failed")

					mu.Lock()
					resp.Errors[v.Name()] = err.Error()
					mu.Unlock()
				}

				return nil
			})
		}

		_ = gr.Wait()

		status := http.StatusOK
		if len(resp.Errors) > 0 {
			status = http.StatusServiceUnavailable
		}

		api.WriteOK(w, status, resp)
	}
}

package impl

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/acolhe/acolhe/internal/service"
)

const testID = "7f9c24e8-3b12-4c8a-9a4f-2c4b6f1d0e11"

var timestamp = time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)

func TestMain(m *testing.M) {
	now = func() time.Time { return timestamp }
	newID = func() string { return testID }

	os.Exit(m.Run())
}

type notifications []service.Notification

func (n *notifications) Notify(_ context.Context, v service.Notification) {
	*n = append(*n, v)
}

func (n notifications) last() service.Notification {
	if len(n) == 0 {
		return service.Notification{}
	}
	return n[len(n)-1]
}

package monitor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"djwatch/internal/models"
)

func TestScheduler_RunsImmediateCycleAndStopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, supportPage("Ben Gold"))
	}))
	defer srv.Close()

	store := newFakeStore()
	target := models.NewTarget(srv.URL + "/campaigns/summer-tour")
	runner := newTestRunner(t, store, &captureNotifier{}, target)
	scheduler := NewScheduler(runner, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return store.saveCount() >= 1
	}, 2*time.Second, 10*time.Millisecond, "first cycle should run without waiting for the ticker")

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}

func TestScheduler_TicksRepeatedly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, supportPage("Ben Gold"))
	}))
	defer srv.Close()

	store := newFakeStore()
	target := models.NewTarget(srv.URL + "/campaigns/summer-tour")
	runner := newTestRunner(t, store, &captureNotifier{}, target)
	scheduler := NewScheduler(runner, 20*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return store.saveCount() >= 3
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

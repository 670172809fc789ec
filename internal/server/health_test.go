package server_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/Houeta/restobot/internal/metrics"
	"github.com/Houeta/restobot/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type failingPinger struct{}

func (failingPinger) Ping(_ context.Context) error { return errors.New("mock db error") }

func TestHealthz(t *testing.T) {
	t.Parallel()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	t.Run("database ok", func(t *testing.T) {
		t.Parallel()
		reg := prometheus.NewRegistry()
		srv := server.New(log, new(MockRepo), &fakeEnqueuer{}, metrics.NewMetrics(reg), reg, stubPinger{})

		rec := doJSON(t, srv.Router(), http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"database":"ok"}`, rec.Body.String())
	})

	t.Run("database unavailable", func(t *testing.T) {
		t.Parallel()
		reg := prometheus.NewRegistry()
		srv := server.New(log, new(MockRepo), &fakeEnqueuer{}, metrics.NewMetrics(reg), reg, failingPinger{})

		rec := doJSON(t, srv.Router(), http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"database":"unavailable"}`, rec.Body.String())
	})
}

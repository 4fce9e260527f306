package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ventas-api/internal/config"
)

type fakePinger struct {
	err   error
	stats sql.DBStats
	calls int
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls++
	return f.err
}

func (f *fakePinger) Stats() sql.DBStats {
	return f.stats
}

func TestDatabaseHealthService_Check(t *testing.T) {
	tests := []struct {
		name        string
		pinger      *fakePinger
		wantHealthy bool
		wantError   string
	}{
		{
			name:        "base disponible",
			pinger:      &fakePinger{stats: sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2}},
			wantHealthy: true,
		},
		{
			name:      "base caida",
			pinger:    &fakePinger{err: errors.New("connection refused")},
			wantError: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewDatabaseHealthService(tt.pinger, config.DBHealth{})

			_, ok := service.LastStatus()
			assert.False(t, ok)

			status := service.Check(context.Background())
			assert.Equal(t, tt.wantHealthy, status.Healthy)
			assert.Equal(t, tt.wantError, status.Error)
			assert.Equal(t, tt.pinger.stats.OpenConnections, status.OpenConnections)
			assert.Equal(t, 1, tt.pinger.calls)

			last, ok := service.LastStatus()
			require.True(t, ok)
			assert.Equal(t, status, last)
		})
	}
}

func TestDatabaseHealthService_Start(t *testing.T) {
	t.Run("deshabilitado no agenda nada", func(t *testing.T) {
		service := NewDatabaseHealthService(&fakePinger{}, config.DBHealth{Enabled: false, CronSchedule: "no es cron"})
		assert.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("cron invalido", func(t *testing.T) {
		service := NewDatabaseHealthService(&fakePinger{}, config.DBHealth{Enabled: true, CronSchedule: "no es cron"})
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("agenda el chequeo y se detiene con el contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := NewDatabaseHealthService(&fakePinger{}, config.DBHealth{Enabled: true, CronSchedule: "* * * * *"})
		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		assert.True(t, service.scheduler.IsRunning())
	})
}

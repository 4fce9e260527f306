package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ventas-api/internal/config"
)

const defaultPingTimeout = 3 * time.Second

// Pinger es la parte de la conexion que necesita el monitor
type Pinger interface {
	Ping(ctx context.Context) error
	Stats() sql.DBStats
}

// DatabaseStatus es el resultado de un chequeo de la base de datos
type DatabaseStatus struct {
	Healthy         bool      `json:"healthy"`
	CheckedAt       time.Time `json:"checked_at"`
	LatencyMs       int64     `json:"latency_ms"`
	OpenConnections int       `json:"open_connections"`
	InUse           int       `json:"in_use"`
	Idle            int       `json:"idle"`
	Error           string    `json:"error,omitempty"`
}

// DatabaseHealthService hace ping periodico a la base y guarda el ultimo resultado
type DatabaseHealthService struct {
	scheduler   *gocron.Scheduler
	config      config.DBHealth
	db          Pinger
	pingTimeout time.Duration

	mu   sync.RWMutex
	last *DatabaseStatus
}

func NewDatabaseHealthService(db Pinger, cfg config.DBHealth) *DatabaseHealthService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuracion del monitor de base de datos cargada")

	return &DatabaseHealthService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      cfg,
		db:          db,
		pingTimeout: defaultPingTimeout,
	}
}

// Start agenda el chequeo segun DB_HEALTH_CRON. El agendador se detiene al
// cancelarse ctx.
func (s *DatabaseHealthService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor de base de datos deshabilitado por configuracion")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Check(ctx)
	})
	if err != nil {
		return fmt.Errorf("error al agendar el monitor de base de datos: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("Monitor de base de datos iniciado")

	go func() {
		<-ctx.Done()
		logrus.Info("Deteniendo monitor de base de datos")
		s.scheduler.Stop()
	}()

	return nil
}

// Check hace ping a la base, registra las estadisticas del pool y guarda el resultado.
func (s *DatabaseHealthService) Check(ctx context.Context) DatabaseStatus {
	pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()

	start := time.Now()
	err := s.db.Ping(pingCtx)
	stats := s.db.Stats()

	status := DatabaseStatus{
		Healthy:         err == nil,
		CheckedAt:       start.UTC(),
		LatencyMs:       time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
	}

	logger := logrus.WithFields(logrus.Fields{
		"latency_ms":       status.LatencyMs,
		"open_connections": status.OpenConnections,
		"in_use":           status.InUse,
		"idle":             status.Idle,
	})

	if err != nil {
		status.Error = err.Error()
		logger.WithError(err).Error("La base de datos no responde")
	} else {
		logger.Debug("Base de datos disponible")
	}

	s.mu.Lock()
	s.last = &status
	s.mu.Unlock()

	return status
}

// LastStatus devuelve el ultimo chequeo registrado; false si todavia no hubo ninguno.
func (s *DatabaseHealthService) LastStatus() (DatabaseStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return DatabaseStatus{}, false
	}
	return *s.last, true
}

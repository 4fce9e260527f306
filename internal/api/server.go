package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ventas-api/internal/api/handler"
	"github.com/vfg2006/ventas-api/internal/api/handler/router"
	"github.com/vfg2006/ventas-api/internal/config"
	"github.com/vfg2006/ventas-api/internal/usecases/authenticating"
	"github.com/vfg2006/ventas-api/internal/usecases/selling"
	"github.com/vfg2006/ventas-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	seller selling.Seller,
	authenticator authenticating.Authenticator,
	healthChecker handler.HealthChecker,
) (*Server, error) {
	rt := router.New(
		router.WithJSONFallbacks(),
		router.WithRoutes(handler.Root(config.App.Name)...),
		router.WithRoutes(handler.Healthcheck(healthChecker, config.App.Version)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Ventas(seller, authenticator, config.Auth.ProtectWrites)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expone la cadena completa de middlewares y rutas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecucion del servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Senal de interrupcion recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de la aplicacion cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando apagado ordenado del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP detenido")
	return nil
}

package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ventas-api/infrastructure/database/postgres"
	"github.com/vfg2006/ventas-api/infrastructure/repository"
	"github.com/vfg2006/ventas-api/internal/api"
	"github.com/vfg2006/ventas-api/internal/config"
	"github.com/vfg2006/ventas-api/internal/scheduler"
	"github.com/vfg2006/ventas-api/internal/usecases/authenticating"
	"github.com/vfg2006/ventas-api/internal/usecases/selling"
	"github.com/vfg2006/ventas-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nivel de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := postgres.Migrate(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Error al crear el esquema de ventas")
	}

	ventaRepo := repository.NewVentaRepository(pgConn)
	operatorRepo := repository.NewOperatorRepository(cfg.Operator)

	authenticator, err := authenticating.NewService(operatorRepo, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Error al configurar la autenticacion")
	}

	sellingService := selling.NewService(ventaRepo)

	dbHealthService := scheduler.NewDatabaseHealthService(pgConn, cfg.DBHealth)
	if err := dbHealthService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el monitor de base de datos")
	}

	server, err := api.New(cfg, sellingService, authenticator, dbHealthService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	logrus.Info("Conexion con PostgreSQL establecida")
	return conn
}

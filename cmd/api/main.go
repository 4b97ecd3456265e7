package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pull-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads"
	"github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/adsclient"
	"github.com/vfg2006/ads-pull-api/infrastructure/repository"
	"github.com/vfg2006/ads-pull-api/internal/api"
	"github.com/vfg2006/ads-pull-api/internal/config"
	"github.com/vfg2006/ads-pull-api/internal/scheduler"
	"github.com/vfg2006/ads-pull-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-pull-api/internal/usecases/ingesting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	keywordFactRepo := repository.NewKeywordFactRepository(pgConn)
	searchTermFactRepo := repository.NewSearchTermFactRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := amazonads.New(cfg, adsClient)

	ingestService := ingesting.NewService(cfg, adsIntegrator, keywordFactRepo, searchTermFactRepo)

	reportSyncService := scheduler.NewReportSyncService(ingestService, cfg)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de relatórios")
	} else {
		logrus.Info("Agendador de sincronização de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ingestService,
		authenticator,
		reportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

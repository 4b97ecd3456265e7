package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pull-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads"
	"github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/adsclient"
	"github.com/vfg2006/ads-pull-api/infrastructure/repository"
	"github.com/vfg2006/ads-pull-api/internal/config"
	"github.com/vfg2006/ads-pull-api/internal/domain"
	"github.com/vfg2006/ads-pull-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-pull-api/pkg/utils"
)

// Modos de execução do worker, selecionados por JOB_MODE
const (
	jobModeDaily    = "daily"
	jobModeBackfill = "backfill"

	defaultChunkDays = 7
)

// Processo one-shot de ingestão: o modo daily ingere o dia de ontem e o
// modo backfill ingere um intervalo explícito em blocos de CHUNK_DAYS,
// ambos para os dois grãos de relatório. Pensado para rodar como cron
// job de plataforma (Render, k8s CronJob), não como daemon.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer pgConn.Close()

	if err := pgConn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	keywordFactRepo := repository.NewKeywordFactRepository(pgConn)
	searchTermFactRepo := repository.NewSearchTermFactRepository(pgConn)

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := amazonads.New(cfg, adsClient)

	ingestService := ingesting.NewService(cfg, adsIntegrator, keywordFactRepo, searchTermFactRepo)

	mode := os.Getenv("JOB_MODE")
	if mode == "" {
		mode = jobModeDaily
	}

	// Identificador curto da execução, para correlacionar os logs de um
	// mesmo run nos agregadores
	jobRunID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar identificador da execução")
	}
	logrus.WithFields(logrus.Fields{
		"job_run_id": jobRunID,
		"job_mode":   mode,
	}).Info("Worker iniciado")

	switch mode {
	case jobModeDaily:
		runDaily(ctx, ingestService)

	case jobModeBackfill:
		runBackfill(ctx, ingestService)

	default:
		logrus.Fatalf("JOB_MODE desconhecido: %q (valores aceitos: daily, backfill)", mode)
	}
}

// runDaily ingere o dia de ontem para os dois grãos de relatório
func runDaily(ctx context.Context, ingestService ingesting.Ingester) {
	day := utils.DateOnly(time.Now().UTC()).AddDate(0, 0, -1)

	logrus.WithField("date", day.Format(time.DateOnly)).Info("Worker em modo daily")

	failures := 0
	for _, entityType := range []domain.EntityType{domain.EntityTypeKeyword, domain.EntityTypeSearchTerm} {
		if !ingestChunk(ctx, ingestService, entityType, day, day) {
			failures++
		}
	}

	if failures > 0 {
		logrus.Fatalf("Worker em modo daily terminou com %d falha(s)", failures)
	}

	logrus.Info("Worker em modo daily concluído com sucesso")
}

// runBackfill ingere o intervalo BACKFILL_START..BACKFILL_END em blocos
// de CHUNK_DAYS, cada bloco executado de forma síncrona
func runBackfill(ctx context.Context, ingestService ingesting.Ingester) {
	startDate := requireDateEnv("BACKFILL_START")
	endDate := requireDateEnv("BACKFILL_END")
	if endDate.Before(startDate) {
		logrus.Fatal("BACKFILL_END anterior a BACKFILL_START")
	}

	chunkDays := defaultChunkDays
	if raw := os.Getenv("CHUNK_DAYS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			logrus.Fatalf("CHUNK_DAYS inválido: %q", raw)
		}
		chunkDays = parsed
	}

	logrus.WithFields(logrus.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
		"chunk_days": chunkDays,
	}).Info("Worker em modo backfill")

	failures := 0
	for _, entityType := range []domain.EntityType{domain.EntityTypeKeyword, domain.EntityTypeSearchTerm} {
		for chunkStart := startDate; !chunkStart.After(endDate); chunkStart = chunkStart.AddDate(0, 0, chunkDays) {
			chunkEnd := chunkStart.AddDate(0, 0, chunkDays-1)
			if chunkEnd.After(endDate) {
				chunkEnd = endDate
			}

			if !ingestChunk(ctx, ingestService, entityType, chunkStart, chunkEnd) {
				failures++
			}
		}
	}

	if failures > 0 {
		logrus.Fatalf("Worker em modo backfill terminou com %d bloco(s) em falha", failures)
	}

	logrus.Info("Worker em modo backfill concluído com sucesso")
}

// ingestChunk executa o pipeline síncrono para um bloco de datas; a
// falha de um bloco não impede os demais
func ingestChunk(ctx context.Context, ingestService ingesting.Ingester, entityType domain.EntityType, startDate, endDate time.Time) bool {
	logrus.WithFields(logrus.Fields{
		"entity_type": entityType,
		"start_date":  startDate.Format(time.DateOnly),
		"end_date":    endDate.Format(time.DateOnly),
	}).Info("Ingerindo bloco de datas")

	summary, err := ingestService.IngestRange(ctx, entityType, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_type": entityType,
			"start_date":  startDate.Format(time.DateOnly),
			"end_date":    endDate.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Falha na ingestão do bloco")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"entity_type": entityType,
		"processed":   summary.Processed,
		"inserted":    summary.Inserted,
		"updated":     summary.Updated,
		"skipped":     summary.Skipped,
	}).Info("Bloco ingerido com sucesso")
	return true
}

// requireDateEnv lê uma variável de ambiente obrigatória no formato
// YYYY-MM-DD
func requireDateEnv(name string) time.Time {
	raw := os.Getenv(name)
	if raw == "" {
		logrus.Fatalf("Variável obrigatória ausente: %s", name)
	}

	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		logrus.Fatalf("%s inválida: %q (use YYYY-MM-DD)", name, raw)
	}

	return utils.DateOnly(date)
}

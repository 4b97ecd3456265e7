package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pull-api/internal/config"
	"github.com/vfg2006/ads-pull-api/internal/domain"
	"github.com/vfg2006/ads-pull-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-pull-api/pkg/utils"
)

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportSyncService agenda a ingestão diária dos relatórios de keywords
// e termos de busca do dia anterior
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	appConfig           *config.Config
	ingester            ingesting.Ingester
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportSyncService cria uma nova instância do agendador de relatórios
func NewReportSyncService(ingester ingesting.Ingester, appConfig *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		appConfig: appConfig,
		ingester:  ingester,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllReports ingere os dois grãos de relatório para o dia anterior
// ao buffer de atribuição. Single-flight: uma sincronização em andamento
// faz a próxima ser ignorada, não enfileirada.
func (s *ReportSyncService) syncAllReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	day := utils.DateOnly(time.Now().UTC()).AddDate(0, 0, -s.appConfig.Amazon.BufferDays)

	logrus.WithField("date", day.Format(time.DateOnly)).Info("Iniciando sincronização diária de relatórios")

	for _, entityType := range []domain.EntityType{domain.EntityTypeKeyword, domain.EntityTypeSearchTerm} {
		s.syncEntityReport(entityType, day)
	}

	duration := time.Since(startTime)
	logrus.WithField("duration", duration.String()).Info("Sincronização diária de relatórios concluída")

	s.lastSyncCompletedAt = time.Now()
}

// syncEntityReport ingere um grão de relatório para um dia específico
func (s *ReportSyncService) syncEntityReport(entityType domain.EntityType, day time.Time) {
	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(s.appConfig.Amazon.BackgroundWaitSeconds)*time.Second+2*time.Minute,
	)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"entity_type": entityType,
		"date":        day.Format(time.DateOnly),
	}).Info("Ingerindo relatório diário")

	summary, err := s.ingester.IngestRange(ctx, entityType, day, day)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_type": entityType,
			"date":        day.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro na ingestão diária de relatório")
		return
	}

	logrus.WithFields(logrus.Fields{
		"entity_type": entityType,
		"date":        day.Format(time.DateOnly),
		"processed":   summary.Processed,
		"inserted":    summary.Inserted,
		"updated":     summary.Updated,
	}).Info("Relatório diário ingerido com sucesso")
}

// TriggerManualSync inicia manualmente uma sincronização de relatórios
func (s *ReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de relatórios")
	go s.syncAllReports()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"lookback_days":          s.appConfig.Amazon.LookbackDays,
		"buffer_days":            s.appConfig.Amazon.BufferDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

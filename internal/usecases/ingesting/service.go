package ingesting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads"
	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/ads-pull-api/infrastructure/repository"
	"github.com/vfg2006/ads-pull-api/internal/config"
	"github.com/vfg2006/ads-pull-api/internal/domain"
	"github.com/vfg2006/ads-pull-api/pkg/utils"
)

// Service orquestra o pipeline de ingestão: criação do job, polling,
// download, mapeamento e upsert. Os componentes a montante são
// transformadores sem estado; somente os repositórios tocam o banco.
type Service struct {
	cfg            *config.Config
	integrator     ReportIntegrator
	keywordRepo    repository.KeywordFactRepository
	searchTermRepo repository.SearchTermFactRepository
}

func NewService(
	cfg *config.Config,
	integrator ReportIntegrator,
	keywordRepo repository.KeywordFactRepository,
	searchTermRepo repository.SearchTermFactRepository,
) Ingester {
	return &Service{
		cfg:            cfg,
		integrator:     integrator,
		keywordRepo:    keywordRepo,
		searchTermRepo: searchTermRepo,
	}
}

// StartReport cria o job de relatório para a janela de lookback e retorna
// o id sem aguardar o processamento
func (s *Service) StartReport(ctx context.Context, entityType domain.EntityType, lookbackDays int) (*adsdomain.ReportJob, error) {
	req := s.buildRequest(entityType, lookbackDays)
	return s.integrator.CreateReport(ctx, req)
}

// RunReport cria o job e dispara o restante do pipeline como uma unidade
// de trabalho em background com sua própria fronteira de erro: falhas são
// logadas, nunca propagadas a um chamador que já foi embora.
func (s *Service) RunReport(ctx context.Context, entityType domain.EntityType, lookbackDays int) (*adsdomain.ReportJob, error) {
	job, err := s.StartReport(ctx, entityType, lookbackDays)
	if err != nil {
		return nil, err
	}

	go s.runBackground(job.ReportID, entityType)

	return job, nil
}

// runBackground executa polling, download e upsert desacoplado do request
// original. Usa os tetos de espera de background e um contexto próprio:
// a unidade de trabalho corre até o seu próprio prazo, independente da
// presença do chamador.
func (s *Service) runBackground(reportID string, entityType domain.EntityType) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"report_id": reportID,
				"panic":     r,
			}).Error("Panic na ingestão em background")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.backgroundWait()+2*time.Minute)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"report_id":   reportID,
		"entity_type": entityType,
	}).Info("Iniciando ingestão em background")

	summary, err := s.fetchAndUpsert(ctx, reportID, entityType, s.cfg.Amazon.RowCap, s.backgroundWait(), s.backgroundPoll())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"report_id":   reportID,
			"entity_type": entityType,
			"stage":       adsdomain.StageOf(err),
			"error":       err.Error(),
		}).Error("Ingestão em background falhou")
		return
	}

	logrus.WithFields(logrus.Fields{
		"report_id": reportID,
		"processed": summary.Processed,
		"inserted":  summary.Inserted,
		"updated":   summary.Updated,
		"skipped":   summary.Skipped,
	}).Info("Ingestão em background concluída")
}

// FetchReport espera o job concluir dentro do teto interativo e faz o
// upsert do payload. Timeout é retornado como classificação distinta de
// falha terminal, para o handler mapear em conflito retriável.
func (s *Service) FetchReport(ctx context.Context, reportID string, entityType domain.EntityType, rowCap int) (*domain.IngestSummary, error) {
	if rowCap <= 0 {
		rowCap = s.cfg.Amazon.RowCap
	}

	return s.fetchAndUpsert(ctx, reportID, entityType, rowCap, s.interactiveWait(), s.interactivePoll())
}

// IngestRange executa o pipeline completo para um intervalo explícito,
// usado pelo worker de backfill e pelo agendador diário
func (s *Service) IngestRange(ctx context.Context, entityType domain.EntityType, startDate, endDate time.Time) (*domain.IngestSummary, error) {
	req := &domain.ReportRequest{
		EntityType:   entityType,
		StartDate:    startDate,
		EndDate:      endDate,
		LookbackDays: s.cfg.Amazon.LookbackDays,
	}

	job, err := s.integrator.CreateReport(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.fetchAndUpsert(ctx, job.ReportID, entityType, s.cfg.Amazon.RowCap, s.backgroundWait(), s.backgroundPoll())
}

func (s *Service) QueryKeywordFacts(filters domain.FactFilters) ([]*domain.KeywordFact, error) {
	if filters.ProfileID == "" {
		filters.ProfileID = s.cfg.Amazon.ProfileID
	}
	return s.keywordRepo.ListByDateRange(filters)
}

func (s *Service) QuerySearchTermFacts(filters domain.FactFilters) ([]*domain.SearchTermFact, error) {
	if filters.ProfileID == "" {
		filters.ProfileID = s.cfg.Amazon.ProfileID
	}
	return s.searchTermRepo.ListByDateRange(filters)
}

// fetchAndUpsert é o tronco comum do pipeline: busca os registros do
// relatório e aplica o lote na ordem do payload, para que a última
// ocorrência de uma chave duplicada vença
func (s *Service) fetchAndUpsert(ctx context.Context, reportID string, entityType domain.EntityType, rowCap int, maxWait, pollInterval time.Duration) (*domain.IngestSummary, error) {
	records, err := s.integrator.FetchReportRecords(ctx, reportID, maxWait, pollInterval)
	if err != nil {
		return nil, err
	}

	rowCtx := amazonads.RowContext{
		ProfileID:    s.cfg.Amazon.ProfileID,
		RunID:        uuid.New().String(),
		Marketplace:  s.cfg.Amazon.Marketplace,
		LookbackDays: s.cfg.Amazon.LookbackDays,
		BufferDays:   s.cfg.Amazon.BufferDays,
		PulledAt:     time.Now().UTC(),
	}

	summary := &domain.IngestSummary{
		JobID: reportID,
		RunID: rowCtx.RunID,
	}

	for _, record := range records {
		if summary.Processed >= rowCap {
			logrus.WithFields(logrus.Fields{
				"report_id": reportID,
				"row_cap":   rowCap,
			}).Warn("Limite de linhas por ingestão atingido, descartando o restante do payload")
			break
		}

		inserted, ok, err := s.upsertRecord(record, entityType, rowCtx)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Registro sem data resolvível: excluído do lote, não é erro
			summary.Skipped++
			continue
		}

		summary.Processed++
		if inserted {
			summary.Inserted++
		} else {
			summary.Updated++
		}
	}

	return summary, nil
}

func (s *Service) upsertRecord(record map[string]any, entityType domain.EntityType, rowCtx amazonads.RowContext) (inserted, ok bool, err error) {
	switch entityType {
	case domain.EntityTypeSearchTerm:
		fact := amazonads.MapSearchTermRow(record, rowCtx)
		if fact == nil {
			return false, false, nil
		}
		inserted, err = s.searchTermRepo.Upsert(fact)
		return inserted, err == nil, err

	default:
		fact := amazonads.MapKeywordRow(record, rowCtx)
		if fact == nil {
			return false, false, nil
		}
		inserted, err = s.keywordRepo.Upsert(fact)
		return inserted, err == nil, err
	}
}

// buildRequest resolve a janela de lookback em datas concretas,
// aplicando os dias de buffer para a atribuição assentar
func (s *Service) buildRequest(entityType domain.EntityType, lookbackDays int) *domain.ReportRequest {
	if lookbackDays <= 0 {
		lookbackDays = s.cfg.Amazon.LookbackDays
	}

	endDate := utils.DateOnly(time.Now().UTC()).AddDate(0, 0, -s.cfg.Amazon.BufferDays)
	startDate := endDate.AddDate(0, 0, -lookbackDays+1)

	return &domain.ReportRequest{
		EntityType:   entityType,
		StartDate:    startDate,
		EndDate:      endDate,
		LookbackDays: lookbackDays,
	}
}

func (s *Service) interactiveWait() time.Duration {
	return time.Duration(s.cfg.Amazon.ReportWaitSeconds) * time.Second
}

func (s *Service) interactivePoll() time.Duration {
	return time.Duration(s.cfg.Amazon.ReportPollSeconds) * time.Second
}

func (s *Service) backgroundWait() time.Duration {
	return time.Duration(s.cfg.Amazon.BackgroundWaitSeconds) * time.Second
}

func (s *Service) backgroundPoll() time.Duration {
	return time.Duration(s.cfg.Amazon.BackgroundPollSeconds) * time.Second
}

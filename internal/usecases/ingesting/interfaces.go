package ingesting

import (
	"context"
	"time"

	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/ads-pull-api/internal/domain"
)

// ReportIntegrator é o contrato com o ciclo de vida de relatórios da
// plataforma de anúncios
type ReportIntegrator interface {
	CreateReport(ctx context.Context, req *domain.ReportRequest) (*adsdomain.ReportJob, error)
	FetchReportRecords(ctx context.Context, reportID string, maxWait, pollInterval time.Duration) ([]map[string]any, error)
}

// Ingester expõe as operações de ingestão e consulta de fatos
type Ingester interface {
	// StartReport cria o job de relatório e retorna sem fazer polling
	StartReport(ctx context.Context, entityType domain.EntityType, lookbackDays int) (*adsdomain.ReportJob, error)

	// RunReport cria o job e dispara o restante do pipeline em background
	// (fire-and-forget); falhas de background só aparecem em logs
	RunReport(ctx context.Context, entityType domain.EntityType, lookbackDays int) (*adsdomain.ReportJob, error)

	// FetchReport espera o job concluir dentro do teto interativo, baixa o
	// payload e faz o upsert das linhas até o limite informado
	FetchReport(ctx context.Context, reportID string, entityType domain.EntityType, rowCap int) (*domain.IngestSummary, error)

	// IngestRange executa o pipeline completo para um intervalo explícito
	// de datas, com os tetos de espera de background
	IngestRange(ctx context.Context, entityType domain.EntityType, startDate, endDate time.Time) (*domain.IngestSummary, error)

	QueryKeywordFacts(filters domain.FactFilters) ([]*domain.KeywordFact, error)
	QuerySearchTermFacts(filters domain.FactFilters) ([]*domain.SearchTermFact, error)
}

package amazonads

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/adsclient"
	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/ads-pull-api/internal/config"
	"github.com/vfg2006/ads-pull-api/internal/domain"
)

// AmazonIntegrator orquestra o ciclo de vida de um relatório na Ads API:
// criação do job, polling até estado terminal, download e extração.
// É um transformador sem estado; cada operação refaz a troca de token.
type AmazonIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *AmazonIntegrator {
	return &AmazonIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// CreateReport cria um job assíncrono de relatório para o tipo de
// entidade e o intervalo de datas informados
func (s *AmazonIntegrator) CreateReport(ctx context.Context, req *domain.ReportRequest) (*adsdomain.ReportJob, error) {
	accessToken, err := s.Client.RefreshAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	createReq := BuildReportRequest(req)

	job, err := s.Client.CreateReport(ctx, accessToken, createReq)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"report_id":   job.ReportID,
		"entity_type": req.EntityType,
		"start_date":  createReq.StartDate,
		"end_date":    createReq.EndDate,
		"duplicate":   job.Duplicate,
	}).Info("Job de relatório pronto para polling")

	return job, nil
}

// WaitForReport consulta o status do job em intervalo fixo até um estado
// terminal ou o esgotamento do prazo. Timeout é uma classificação
// distinta de falha terminal: o job ainda pode completar depois.
func (s *AmazonIntegrator) WaitForReport(ctx context.Context, reportID string, maxWait, pollInterval time.Duration) (string, error) {
	accessToken, err := s.Client.RefreshAccessToken(ctx)
	if err != nil {
		return "", err
	}

	deadline := time.Now().Add(maxWait)

	for {
		status, err := s.Client.GetReportStatus(ctx, accessToken, reportID)
		if err != nil {
			return "", err
		}

		if adsdomain.IsReportDone(status.Status) && status.URL != "" {
			logrus.WithFields(logrus.Fields{
				"report_id": reportID,
				"status":    status.Status,
			}).Info("Relatório concluído com URL de download")
			return status.URL, nil
		}

		if adsdomain.IsReportDead(status.Status) {
			return "", adsdomain.NewTerminalReportError(
				fmt.Sprintf("job terminou em %s: %s", status.Status, status.FailureReason),
			)
		}

		if time.Now().After(deadline) {
			return "", fmt.Errorf("%w: job %s ainda em %s", adsdomain.ErrReportTimeout, reportID, status.Status)
		}

		logrus.WithFields(logrus.Fields{
			"report_id": reportID,
			"status":    status.Status,
		}).Debug("Relatório ainda em processamento, aguardando próximo poll")

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// FetchReportRecords espera o job concluir, baixa o payload e o extrai
// como uma sequência plana de registros
func (s *AmazonIntegrator) FetchReportRecords(ctx context.Context, reportID string, maxWait, pollInterval time.Duration) ([]map[string]any, error) {
	url, err := s.WaitForReport(ctx, reportID, maxWait, pollInterval)
	if err != nil {
		return nil, err
	}

	payload, err := s.Client.DownloadReport(url)
	if err != nil {
		return nil, err
	}

	return ExtractRecords(payload)
}

// BuildReportRequest monta o corpo de criação de relatório para o tipo
// de entidade. O agrupamento é uma restrição da API externa: ad group
// para keywords, termo de busca para search terms.
func BuildReportRequest(req *domain.ReportRequest) *adsdomain.CreateReportRequest {
	start := req.StartDate.Format("2006-01-02")
	end := req.EndDate.Format("2006-01-02")

	salesColumn := fmt.Sprintf("sales%dd", req.LookbackDays)
	purchasesColumn := fmt.Sprintf("purchases%dd", req.LookbackDays)

	configuration := adsdomain.ReportConfiguration{
		AdProduct: "SPONSORED_PRODUCTS",
		TimeUnit:  "DAILY",
		Format:    "GZIP_JSON",
	}

	var name string
	switch req.EntityType {
	case domain.EntityTypeSearchTerm:
		name = fmt.Sprintf("sp-search-terms-%s-%s", start, end)
		configuration.ReportTypeID = "spSearchTerm"
		configuration.GroupBy = []string{"searchTerm"}
		configuration.Columns = []string{
			"date", "campaignId", "campaignName", "adGroupId", "adGroupName",
			"searchTerm", "keywordId", "keyword", "matchType",
			"impressions", "clicks", "cost", salesColumn, purchasesColumn,
		}
	default:
		name = fmt.Sprintf("sp-keywords-%s-%s", start, end)
		configuration.ReportTypeID = "spTargeting"
		configuration.GroupBy = []string{"adGroup"}
		configuration.Columns = []string{
			"date", "campaignId", "campaignName", "adGroupId", "adGroupName",
			"keywordId", "keyword", "matchType",
			"impressions", "clicks", "cost", salesColumn, purchasesColumn,
		}
	}

	return &adsdomain.CreateReportRequest{
		Name:          name,
		StartDate:     start,
		EndDate:       end,
		Configuration: configuration,
	}
}

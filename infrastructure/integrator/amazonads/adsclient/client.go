package adsclient

import (
	"context"
	"net/http"
	"time"

	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/ads-pull-api/internal/config"
)

type Client interface {
	RefreshAccessToken(ctx context.Context) (string, error)
	CreateReport(ctx context.Context, accessToken string, req *adsdomain.CreateReportRequest) (*adsdomain.ReportJob, error)
	GetReportStatus(ctx context.Context, accessToken, reportID string) (*adsdomain.ReportStatusResponse, error)
	DownloadReport(url string) (string, error)
}

type AdsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AdsClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// setAuthHeaders adiciona os headers de autenticação exigidos pela Ads API.
// Nunca deve ser usado no download de URLs pré-assinadas.
func (c *AdsClient) setAuthHeaders(req *http.Request, accessToken string) {
	req.Header.Set("Amazon-Advertising-API-ClientId", c.Cfg.Amazon.ClientID)
	req.Header.Set("Amazon-Advertising-API-Scope", c.Cfg.Amazon.ProfileID)
	req.Header.Set("Authorization", "Bearer "+accessToken)
}

package adsclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
)

// GetReportStatus consulta o estado atual de um job de relatório
func (c *AdsClient) GetReportStatus(ctx context.Context, accessToken, reportID string) (*adsdomain.ReportStatusResponse, error) {
	url := c.Cfg.Amazon.Endpoint + "/reporting/reports/" + reportID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, adsdomain.WrapPipelineError(adsdomain.StageCheckReport, err)
	}
	c.setAuthHeaders(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, adsdomain.WrapPipelineError(adsdomain.StageCheckReport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, adsdomain.WrapPipelineError(adsdomain.StageCheckReport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, adsdomain.NewPipelineError(adsdomain.StageCheckReport, resp.StatusCode, string(body))
	}

	var status adsdomain.ReportStatusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, adsdomain.WrapPipelineError(adsdomain.StageCheckReport, err)
	}

	return &status, nil
}

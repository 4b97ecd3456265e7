package adsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/ads-pull-api/pkg/utils"
)

const createReportContentType = "application/vnd.createasyncreportrequest.v3+json"

// CreateReport submete um job assíncrono de relatório.
// HTTP 425 significa que já existe um job idêntico em andamento; nesse
// caso o id do job existente é recuperado da mensagem de erro e a criação
// é tratada como sucesso com a flag de duplicata.
func (c *AdsClient) CreateReport(ctx context.Context, accessToken string, reportReq *adsdomain.CreateReportRequest) (*adsdomain.ReportJob, error) {
	payload, err := json.Marshal(reportReq)
	if err != nil {
		return nil, adsdomain.WrapPipelineError(adsdomain.StageCreateReport, err)
	}

	url := c.Cfg.Amazon.Endpoint + "/reporting/reports"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, adsdomain.WrapPipelineError(adsdomain.StageCreateReport, err)
	}
	req.Header.Set("Content-Type", createReportContentType)
	c.setAuthHeaders(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, adsdomain.WrapPipelineError(adsdomain.StageCreateReport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, adsdomain.WrapPipelineError(adsdomain.StageCreateReport, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		var created adsdomain.CreateReportResponse
		if err := json.Unmarshal(body, &created); err != nil {
			return nil, adsdomain.WrapPipelineError(adsdomain.StageCreateReport, err)
		}

		logrus.WithFields(logrus.Fields{
			"report_id": created.ReportID,
			"name":      reportReq.Name,
		}).Info("Job de relatório criado com sucesso")

		return &adsdomain.ReportJob{ReportID: created.ReportID}, nil
	}

	if resp.StatusCode == http.StatusTooEarly {
		return recoverDuplicateReport(resp.StatusCode, body)
	}

	return nil, adsdomain.NewPipelineError(adsdomain.StageCreateReport, resp.StatusCode, string(body))
}

// recoverDuplicateReport extrai o id do job duplicado da mensagem de erro
// do HTTP 425. A extração depende do texto do upstream e por isso fica
// isolada aqui: quando nenhum UUID é encontrado a falha é fatal, nunca
// silenciosa.
func recoverDuplicateReport(statusCode int, body []byte) (*adsdomain.ReportJob, error) {
	reportID, ok := utils.ExtractUUID(string(body))
	if !ok {
		logrus.WithField("body", string(body)).Error("Resposta 425 sem UUID recuperável")
		return nil, adsdomain.NewPipelineError(adsdomain.StageCreateReport, statusCode, string(body))
	}

	logrus.WithField("report_id", reportID).Info("Job duplicado em andamento recuperado da resposta 425")

	return &adsdomain.ReportJob{ReportID: reportID, Duplicate: true}, nil
}

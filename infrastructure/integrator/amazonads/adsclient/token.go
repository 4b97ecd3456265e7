package adsclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
)

// RefreshAccessToken troca o refresh token de longa duração por um access
// token de curta duração. Cada execução do pipeline refaz a troca; não há
// cache nem retry nesta camada.
func (c *AdsClient) RefreshAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", c.Cfg.Amazon.RefreshToken)
	form.Set("client_id", c.Cfg.Amazon.ClientID)
	form.Set("client_secret", c.Cfg.Amazon.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Cfg.Amazon.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", adsdomain.WrapPipelineError(adsdomain.StageTokenExchange, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", adsdomain.WrapPipelineError(adsdomain.StageTokenExchange, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", adsdomain.WrapPipelineError(adsdomain.StageTokenExchange, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
		}).Error("Erro na troca do refresh token")
		return "", adsdomain.NewPipelineError(adsdomain.StageTokenExchange, resp.StatusCode, string(body))
	}

	var tokenResp adsdomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", adsdomain.WrapPipelineError(adsdomain.StageTokenExchange, err)
	}

	if tokenResp.AccessToken == "" {
		return "", adsdomain.NewPipelineError(adsdomain.StageTokenExchange, resp.StatusCode, "access_token vazio na resposta")
	}

	return tokenResp.AccessToken, nil
}

package adsclient

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/ads-pull-api/internal/config"
)

func testConfig(endpoint, tokenURL string) *config.Config {
	return &config.Config{
		Amazon: config.Amazon{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RefreshToken: "refresh-token",
			ProfileID:    "123456789",
			Endpoint:     endpoint,
			TokenURL:     tokenURL,
		},
	}
}

func TestRefreshAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "refresh-token", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"token-abc","token_type":"bearer","expires_in":3600}`))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL))

	token, err := client.RefreshAccessToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}

func TestRefreshAccessToken_ErroDoUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL))

	_, err := client.RefreshAccessToken(context.Background())

	require.Error(t, err)

	var pipelineErr *adsdomain.PipelineError
	require.True(t, errors.As(err, &pipelineErr))
	assert.Equal(t, adsdomain.StageTokenExchange, pipelineErr.Stage)
	assert.Equal(t, http.StatusUnauthorized, pipelineErr.StatusCode)
	assert.Contains(t, pipelineErr.Body, "invalid_grant")
}

func TestRefreshAccessToken_TokenVazio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token_type":"bearer"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL))

	_, err := client.RefreshAccessToken(context.Background())

	require.Error(t, err)
	assert.Equal(t, adsdomain.StageTokenExchange, adsdomain.StageOf(err))
}

func TestCreateReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reporting/reports", r.URL.Path)
		assert.Equal(t, createReportContentType, r.Header.Get("Content-Type"))
		assert.Equal(t, "client-id", r.Header.Get("Amazon-Advertising-API-ClientId"))
		assert.Equal(t, "123456789", r.Header.Get("Amazon-Advertising-API-Scope"))
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reportId":"report-1","status":"PENDING"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, ""))

	job, err := client.CreateReport(context.Background(), "access-token", &adsdomain.CreateReportRequest{
		Name: "sp-keywords-2024-05-01-2024-05-07",
	})

	require.NoError(t, err)
	assert.Equal(t, "report-1", job.ReportID)
	assert.False(t, job.Duplicate)
}

func TestCreateReport_RecuperaDuplicataDo425(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooEarly)
		w.Write([]byte(`{"detail":"The Request is a duplicate of : 123e4567-e89b-12d3-a456-426614174000"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, ""))

	job, err := client.CreateReport(context.Background(), "access-token", &adsdomain.CreateReportRequest{})

	require.NoError(t, err)
	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", job.ReportID)
	assert.True(t, job.Duplicate)
}

func TestCreateReport_425SemUUIDEhFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooEarly)
		w.Write([]byte(`{"detail":"The Request is a duplicate"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, ""))

	_, err := client.CreateReport(context.Background(), "access-token", &adsdomain.CreateReportRequest{})

	require.Error(t, err)

	var pipelineErr *adsdomain.PipelineError
	require.True(t, errors.As(err, &pipelineErr))
	assert.Equal(t, adsdomain.StageCreateReport, pipelineErr.Stage)
	assert.Equal(t, http.StatusTooEarly, pipelineErr.StatusCode)
}

func TestCreateReport_ErroDoUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"invalid column"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, ""))

	_, err := client.CreateReport(context.Background(), "access-token", &adsdomain.CreateReportRequest{})

	require.Error(t, err)

	var pipelineErr *adsdomain.PipelineError
	require.True(t, errors.As(err, &pipelineErr))
	assert.Equal(t, http.StatusBadRequest, pipelineErr.StatusCode)
	assert.Contains(t, pipelineErr.Body, "invalid column")
}

func TestGetReportStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reporting/reports/report-1", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reportId":"report-1","status":"SUCCESS","url":"https://example.com/report.gz"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, ""))

	status, err := client.GetReportStatus(context.Background(), "access-token", "report-1")

	require.NoError(t, err)
	assert.Equal(t, "report-1", status.ReportID)
	assert.Equal(t, adsdomain.ReportStatusSuccess, status.Status)
	assert.Equal(t, "https://example.com/report.gz", status.URL)
}

func TestDownloadReport_Gzip(t *testing.T) {
	content := `{"date":"2024-05-01","clicks":1}`

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err := gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// URLs pré-assinadas rejeitam headers de autorização; o download
		// não pode enviá-los
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Amazon-Advertising-API-ClientId"))

		w.Write(compressed.Bytes())
	}))
	defer server.Close()

	client := NewClient(testConfig("", ""))

	payload, err := client.DownloadReport(server.URL)

	require.NoError(t, err)
	assert.Equal(t, content, payload)
}

func TestDownloadReport_TextoPuroSemGzip(t *testing.T) {
	content := `[{"date":"2024-05-01"}]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(content))
	}))
	defer server.Close()

	client := NewClient(testConfig("", ""))

	payload, err := client.DownloadReport(server.URL)

	require.NoError(t, err)
	assert.Equal(t, content, payload)
}

func TestDecodePayload_GzipCorrompidoUsaBytesCrus(t *testing.T) {
	content := `{"date":"2024-05-01"}`

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err := gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	// Mantém o header gzip válido mas trunca o corpo
	truncated := compressed.Bytes()[:len(compressed.Bytes())-8]

	payload := decodePayload(truncated)

	assert.NotEmpty(t, payload)
}

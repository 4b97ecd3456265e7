package ingesting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
	repomocks "github.com/vfg2006/ads-pull-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-pull-api/internal/config"
	"github.com/vfg2006/ads-pull-api/internal/domain"
	"github.com/vfg2006/ads-pull-api/internal/usecases/ingesting/mocks"
	"github.com/vfg2006/ads-pull-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Amazon: config.Amazon{
			ProfileID:             "123456789",
			Marketplace:           "BR",
			ReportWaitSeconds:     300,
			ReportPollSeconds:     3,
			BackgroundWaitSeconds: 900,
			BackgroundPollSeconds: 20,
			LookbackDays:          14,
			BufferDays:            1,
			RowCap:                5000,
		},
	}
}

func keywordRecord(date string) map[string]any {
	return map[string]any{
		"date":         date,
		"campaignId":   "111",
		"campaignName": "Campanha A",
		"adGroupId":    "222",
		"adGroupName":  "Grupo A",
		"keywordId":    "333",
		"keyword":      "tenis corrida",
		"matchType":    "broad",
		"impressions":  float64(100),
		"clicks":       float64(10),
		"cost":         float64(20),
		"sales14d":     float64(0),
		"purchases14d": float64(0),
	}
}

func TestFetchReport_IngestaoDeDoisDias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockReportIntegrator(ctrl)
	mockKeywordRepo := repomocks.NewMockKeywordFactRepository(ctrl)
	mockSearchTermRepo := repomocks.NewMockSearchTermFactRepository(ctrl)

	service := NewService(testConfig(), mockIntegrator, mockKeywordRepo, mockSearchTermRepo)

	records := []map[string]any{
		keywordRecord("2024-05-01"),
		keywordRecord("2024-05-02"),
	}

	mockIntegrator.EXPECT().
		FetchReportRecords(gomock.Any(), "report-1", 300*time.Second, 3*time.Second).
		Return(records, nil)

	upserted := make([]*domain.KeywordFact, 0, 2)
	mockKeywordRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(fact *domain.KeywordFact) (bool, error) {
			upserted = append(upserted, fact)
			return true, nil
		}).
		Times(2)

	summary, err := service.FetchReport(context.Background(), "report-1", domain.EntityTypeKeyword, 0)

	require.NoError(t, err)
	assert.Equal(t, "report-1", summary.JobID)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 0, summary.Skipped)

	require.Len(t, upserted, 2)
	// A ordem do payload é preservada
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), upserted[0].Date)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), upserted[1].Date)

	for _, fact := range upserted {
		assert.Equal(t, "123456789", fact.ProfileID)
		assert.Equal(t, summary.RunID, fact.RunID)
		assert.Equal(t, "0.1", fact.Metrics.CTR.StringFixed(1))
		assert.Equal(t, "2.00", fact.Metrics.CPC.StringFixed(2))
		assert.True(t, fact.Metrics.ACOS.IsZero())
		assert.True(t, fact.Metrics.ROAS.IsZero())
	}
}

func TestFetchReport_ReingestaoAtualizaEmVezDeInserir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockReportIntegrator(ctrl)
	mockKeywordRepo := repomocks.NewMockKeywordFactRepository(ctrl)
	mockSearchTermRepo := repomocks.NewMockSearchTermFactRepository(ctrl)

	service := NewService(testConfig(), mockIntegrator, mockKeywordRepo, mockSearchTermRepo)

	records := []map[string]any{
		keywordRecord("2024-05-01"),
		keywordRecord("2024-05-02"),
	}

	mockIntegrator.EXPECT().
		FetchReportRecords(gomock.Any(), "report-1", gomock.Any(), gomock.Any()).
		Return(records, nil)

	// Segunda ingestão do mesmo intervalo: o banco mescla pela chave
	// natural e reporta atualização, não inserção
	mockKeywordRepo.EXPECT().
		Upsert(gomock.Any()).
		Return(false, nil).
		Times(2)

	summary, err := service.FetchReport(context.Background(), "report-1", domain.EntityTypeKeyword, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 0, summary.Inserted)
	assert.Equal(t, 2, summary.Updated)
}

func TestFetchReport_RegistroSemDataEhExcluidoDoLote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockReportIntegrator(ctrl)
	mockKeywordRepo := repomocks.NewMockKeywordFactRepository(ctrl)
	mockSearchTermRepo := repomocks.NewMockSearchTermFactRepository(ctrl)

	service := NewService(testConfig(), mockIntegrator, mockKeywordRepo, mockSearchTermRepo)

	records := []map[string]any{
		keywordRecord("2024-05-01"),
		{"keywordId": "999", "clicks": float64(3)}, // sem data resolvível
	}

	mockIntegrator.EXPECT().
		FetchReportRecords(gomock.Any(), "report-1", gomock.Any(), gomock.Any()).
		Return(records, nil)

	mockKeywordRepo.EXPECT().
		Upsert(gomock.Any()).
		Return(true, nil)

	summary, err := service.FetchReport(context.Background(), "report-1", domain.EntityTypeKeyword, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 1, summary.Skipped)
}

func TestFetchReport_LimiteDeLinhasDescartaORestante(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockReportIntegrator(ctrl)
	mockKeywordRepo := repomocks.NewMockKeywordFactRepository(ctrl)
	mockSearchTermRepo := repomocks.NewMockSearchTermFactRepository(ctrl)

	service := NewService(testConfig(), mockIntegrator, mockKeywordRepo, mockSearchTermRepo)

	records := []map[string]any{
		keywordRecord("2024-05-01"),
		keywordRecord("2024-05-02"),
		keywordRecord("2024-05-03"),
	}

	mockIntegrator.EXPECT().
		FetchReportRecords(gomock.Any(), "report-1", gomock.Any(), gomock.Any()).
		Return(records, nil)

	mockKeywordRepo.EXPECT().
		Upsert(gomock.Any()).
		Return(true, nil).
		Times(2)

	summary, err := service.FetchReport(context.Background(), "report-1", domain.EntityTypeKeyword, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.Inserted)
}

func TestFetchReport_TermosDeBuscaUsamORepositorioProprio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockReportIntegrator(ctrl)
	mockKeywordRepo := repomocks.NewMockKeywordFactRepository(ctrl)
	mockSearchTermRepo := repomocks.NewMockSearchTermFactRepository(ctrl)

	service := NewService(testConfig(), mockIntegrator, mockKeywordRepo, mockSearchTermRepo)

	record := keywordRecord("2024-05-01")
	record["searchTerm"] = "tenis para correr"

	mockIntegrator.EXPECT().
		FetchReportRecords(gomock.Any(), "report-1", gomock.Any(), gomock.Any()).
		Return([]map[string]any{record}, nil)

	mockSearchTermRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(fact *domain.SearchTermFact) (bool, error) {
			assert.Equal(t, "tenis para correr", fact.SearchTerm)
			return true, nil
		})

	summary, err := service.FetchReport(context.Background(), "report-1", domain.EntityTypeSearchTerm, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Inserted)
}

func TestStartReport_JanelaDeLookback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockReportIntegrator(ctrl)
	mockKeywordRepo := repomocks.NewMockKeywordFactRepository(ctrl)
	mockSearchTermRepo := repomocks.NewMockSearchTermFactRepository(ctrl)

	service := NewService(testConfig(), mockIntegrator, mockKeywordRepo, mockSearchTermRepo)

	var captured *domain.ReportRequest
	mockIntegrator.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *domain.ReportRequest) (*adsdomain.ReportJob, error) {
			captured = req
			return &adsdomain.ReportJob{ReportID: "report-1"}, nil
		})

	job, err := service.StartReport(context.Background(), domain.EntityTypeKeyword, 0)

	require.NoError(t, err)
	assert.Equal(t, "report-1", job.ReportID)

	require.NotNil(t, captured)
	// Fim da janela: hoje menos os dias de buffer; início: fim menos a
	// janela de lookback mais um (intervalo inclusivo)
	expectedEnd := utils.DateOnly(time.Now().UTC()).AddDate(0, 0, -1)
	expectedStart := expectedEnd.AddDate(0, 0, -13)
	assert.Equal(t, expectedEnd, captured.EndDate)
	assert.Equal(t, expectedStart, captured.StartDate)
	assert.Equal(t, 14, captured.LookbackDays)
}

func TestIngestRange_UsaDatasExplicitas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockReportIntegrator(ctrl)
	mockKeywordRepo := repomocks.NewMockKeywordFactRepository(ctrl)
	mockSearchTermRepo := repomocks.NewMockSearchTermFactRepository(ctrl)

	service := NewService(testConfig(), mockIntegrator, mockKeywordRepo, mockSearchTermRepo)

	startDate := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 4, 7, 0, 0, 0, 0, time.UTC)

	mockIntegrator.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *domain.ReportRequest) (*adsdomain.ReportJob, error) {
			assert.Equal(t, startDate, req.StartDate)
			assert.Equal(t, endDate, req.EndDate)
			return &adsdomain.ReportJob{ReportID: "report-1"}, nil
		})

	// O intervalo explícito usa os tetos de espera de background
	mockIntegrator.EXPECT().
		FetchReportRecords(gomock.Any(), "report-1", 900*time.Second, 20*time.Second).
		Return([]map[string]any{keywordRecord("2024-04-01")}, nil)

	mockKeywordRepo.EXPECT().
		Upsert(gomock.Any()).
		Return(true, nil)

	summary, err := service.IngestRange(context.Background(), domain.EntityTypeKeyword, startDate, endDate)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
}

func TestFetchReport_PropagaErroDoPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockReportIntegrator(ctrl)
	mockKeywordRepo := repomocks.NewMockKeywordFactRepository(ctrl)
	mockSearchTermRepo := repomocks.NewMockSearchTermFactRepository(ctrl)

	service := NewService(testConfig(), mockIntegrator, mockKeywordRepo, mockSearchTermRepo)

	pipelineErr := adsdomain.NewTerminalReportError("job terminou em FAILURE: internal error")
	mockIntegrator.EXPECT().
		FetchReportRecords(gomock.Any(), "report-1", gomock.Any(), gomock.Any()).
		Return(nil, pipelineErr)

	_, err := service.FetchReport(context.Background(), "report-1", domain.EntityTypeKeyword, 0)

	require.Error(t, err)
	assert.True(t, adsdomain.IsTerminal(err))
	assert.Equal(t, adsdomain.StageCheckReport, adsdomain.StageOf(err))
}

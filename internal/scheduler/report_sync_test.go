package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-pull-api/internal/config"
	"github.com/vfg2006/ads-pull-api/internal/domain"
	"github.com/vfg2006/ads-pull-api/internal/usecases/ingesting/mocks"
	"github.com/vfg2006/ads-pull-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func testSchedulerConfig(enabled bool) *config.Config {
	return &config.Config{
		Amazon: config.Amazon{
			BackgroundWaitSeconds: 1,
			LookbackDays:          14,
			BufferDays:            1,
		},
		ReportSync: config.ReportSync{
			CronSchedule: "0 3 * * *",
			Enabled:      enabled,
		},
	}
}

func TestSyncAllReports_IngereOsDoisGraosDoDiaAnterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := mocks.NewMockIngester(ctrl)
	service := NewReportSyncService(mockIngester, testSchedulerConfig(true))

	expectedDay := utils.DateOnly(time.Now().UTC()).AddDate(0, 0, -1)

	mockIngester.EXPECT().
		IngestRange(gomock.Any(), domain.EntityTypeKeyword, expectedDay, expectedDay).
		Return(&domain.IngestSummary{Processed: 3, Inserted: 3}, nil)
	mockIngester.EXPECT().
		IngestRange(gomock.Any(), domain.EntityTypeSearchTerm, expectedDay, expectedDay).
		Return(&domain.IngestSummary{Processed: 5, Updated: 5}, nil)

	service.syncAllReports()

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSyncAllReports_FalhaDeUmGraoNaoImpedeOOutro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := mocks.NewMockIngester(ctrl)
	service := NewReportSyncService(mockIngester, testSchedulerConfig(true))

	mockIngester.EXPECT().
		IngestRange(gomock.Any(), domain.EntityTypeKeyword, gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)
	mockIngester.EXPECT().
		IngestRange(gomock.Any(), domain.EntityTypeSearchTerm, gomock.Any(), gomock.Any()).
		Return(&domain.IngestSummary{Processed: 1, Inserted: 1}, nil)

	service.syncAllReports()

	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestStart_DesabilitadoNaoAgendaNada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := mocks.NewMockIngester(ctrl)
	service := NewReportSyncService(mockIngester, testSchedulerConfig(false))

	err := service.Start(context.Background())

	require.NoError(t, err)
	assert.Zero(t, service.scheduler.Len())
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := mocks.NewMockIngester(ctrl)
	service := NewReportSyncService(mockIngester, testSchedulerConfig(true))

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 14, status["lookback_days"])
	assert.Equal(t, 1, status["buffer_days"])
}

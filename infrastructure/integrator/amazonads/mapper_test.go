package amazonads

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRowContext() RowContext {
	return RowContext{
		ProfileID:    "123456789",
		RunID:        "run-1",
		Marketplace:  "BR",
		LookbackDays: 14,
		BufferDays:   1,
		PulledAt:     time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func assertDecimalEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	expectedDec := decimal.RequireFromString(expected)
	assert.True(t, expectedDec.Equal(actual), "esperado %s, obtido %s", expected, actual)
}

func TestMapKeywordRow(t *testing.T) {
	record := map[string]any{
		"date":         "2024-05-01",
		"campaignId":   float64(111),
		"campaignName": "Campanha A",
		"adGroupId":    "222",
		"adGroupName":  "Grupo A",
		"keywordId":    float64(333),
		"keyword":      "tenis corrida",
		"matchType":    "broad",
		"impressions":  float64(100),
		"clicks":       float64(10),
		"cost":         float64(20),
		"sales14d":     float64(0),
		"purchases14d": float64(0),
	}

	fact := MapKeywordRow(record, testRowContext())

	require.NotNil(t, fact)
	assert.Equal(t, "123456789", fact.ProfileID)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), fact.Date)
	// Ids numéricos do JSON viram texto
	assert.Equal(t, "111", fact.CampaignID)
	assert.Equal(t, "333", fact.KeywordID)
	assert.Equal(t, "tenis corrida", fact.KeywordText)
	assert.Equal(t, "broad", fact.MatchType)
	assert.Equal(t, "BR", fact.Marketplace)
	assert.Equal(t, 14, fact.LookbackDays)
	assert.Equal(t, "run-1", fact.RunID)

	assert.Equal(t, int64(100), fact.Metrics.Impressions)
	assert.Equal(t, int64(10), fact.Metrics.Clicks)
	assertDecimalEqual(t, "0.1", fact.Metrics.CTR)
	assertDecimalEqual(t, "2", fact.Metrics.CPC)
	// Sem vendas: acos e roas degradam para zero, nunca para divisão por zero
	assertDecimalEqual(t, "0", fact.Metrics.ACOS)
	assertDecimalEqual(t, "0", fact.Metrics.ROAS)
}

func TestMapKeywordRow_Fallbacks(t *testing.T) {
	record := map[string]any{
		"startDate": "2024-05-02",
		"targetId":  "444",
		"targeting": "sapato social",
		"spend":     float64(5.5),
		"sales":     float64(11),
		"purchases": float64(2),
		"clicks":    float64(2),
	}

	fact := MapKeywordRow(record, testRowContext())

	require.NotNil(t, fact)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), fact.Date)
	assert.Equal(t, "444", fact.KeywordID)
	assert.Equal(t, "sapato social", fact.KeywordText)
	assertDecimalEqual(t, "5.5", fact.Metrics.Cost)
	assertDecimalEqual(t, "11", fact.Metrics.Sales)
	assert.Equal(t, int64(2), fact.Metrics.Orders)
	assertDecimalEqual(t, "2.75", fact.Metrics.CPC)
	assertDecimalEqual(t, "0.5", fact.Metrics.ACOS)
	assertDecimalEqual(t, "2", fact.Metrics.ROAS)
}

func TestMapKeywordRow_SemDataDescartaRegistro(t *testing.T) {
	record := map[string]any{
		"keywordId": "333",
		"clicks":    float64(10),
	}

	fact := MapKeywordRow(record, testRowContext())

	assert.Nil(t, fact)
}

func TestMapKeywordRow_DataEmFormatoAlternativo(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "Data simples", date: "2024-05-01"},
		{name: "RFC3339", date: "2024-05-01T00:00:00Z"},
		{name: "Data com hora", date: "2024-05-01 13:45:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := map[string]any{"date": tt.date}

			fact := MapKeywordRow(record, testRowContext())

			require.NotNil(t, fact)
			// Qualquer formato aceito é truncado para a meia-noite UTC
			assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), fact.Date)
		})
	}
}

func TestMapSearchTermRow(t *testing.T) {
	record := map[string]any{
		"date":        "2024-05-01",
		"searchTerm":  "tenis para correr",
		"keywordId":   "333",
		"keyword":     "tenis corrida",
		"matchType":   "phrase",
		"impressions": float64(50),
		"clicks":      float64(5),
		"cost":        float64(10),
		"sales14d":    float64(40),
	}

	fact := MapSearchTermRow(record, testRowContext())

	require.NotNil(t, fact)
	assert.Equal(t, "tenis para correr", fact.SearchTerm)
	assert.Equal(t, "phrase", fact.MatchType)
	assertDecimalEqual(t, "0.25", fact.Metrics.ACOS)
	assertDecimalEqual(t, "4", fact.Metrics.ROAS)
}

func TestMapSearchTermRow_SemDataDescartaRegistro(t *testing.T) {
	record := map[string]any{
		"searchTerm": "tenis",
		"date":       "não é uma data",
	}

	fact := MapSearchTermRow(record, testRowContext())

	assert.Nil(t, fact)
}

func TestMapMetrics_MetricasAusentesValemZero(t *testing.T) {
	metrics := mapMetrics(map[string]any{}, 14)

	assert.Equal(t, int64(0), metrics.Impressions)
	assert.Equal(t, int64(0), metrics.Clicks)
	assert.Equal(t, int64(0), metrics.Orders)
	assertDecimalEqual(t, "0", metrics.Cost)
	assertDecimalEqual(t, "0", metrics.Sales)
	assertDecimalEqual(t, "0", metrics.CPC)
	assertDecimalEqual(t, "0", metrics.CTR)
	assertDecimalEqual(t, "0", metrics.ACOS)
	assertDecimalEqual(t, "0", metrics.ROAS)
}

func TestMapMetrics_SufixoDaJanelaDeAtribuicao(t *testing.T) {
	// A janela de lookback seleciona a coluna sufixada correspondente
	record := map[string]any{
		"sales7d":     float64(70),
		"purchases7d": float64(7),
		"sales14d":    float64(140),
	}

	metrics := mapMetrics(record, 7)

	assertDecimalEqual(t, "70", metrics.Sales)
	assert.Equal(t, int64(7), metrics.Orders)
}

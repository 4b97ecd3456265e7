package amazonads

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ads-pull-api/internal/domain"
	"github.com/vfg2006/ads-pull-api/pkg/utils"
)

// RowContext carrega os dados de proveniência compartilhados por todas as
// linhas de uma mesma invocação de ingestão
type RowContext struct {
	ProfileID    string
	RunID        string
	Marketplace  string
	LookbackDays int
	BufferDays   int
	PulledAt     time.Time
}

// MapKeywordRow converte um registro bruto do relatório em um KeywordFact.
// Campos ausentes ou malformados degradam para zero/vazio; a única
// exclusão é um registro sem data resolvível, que é descartado em
// silêncio (retorna nil).
func MapKeywordRow(record map[string]any, rowCtx RowContext) *domain.KeywordFact {
	date, ok := getDate(record, "date", "startDate")
	if !ok {
		return nil
	}

	fact := &domain.KeywordFact{
		ProfileID:    rowCtx.ProfileID,
		Date:         date,
		CampaignID:   getString(record, "campaignId"),
		CampaignName: getString(record, "campaignName"),
		AdGroupID:    getString(record, "adGroupId"),
		AdGroupName:  getString(record, "adGroupName"),
		KeywordID:    getString(record, "keywordId", "targetId"),
		KeywordText:  getString(record, "keyword", "targeting"),
		MatchType:    getString(record, "matchType"),
		Bid:          getDecimal(record, "bid"), // Conhecidamente não populado em pulls ao vivo
		Marketplace:  rowCtx.Marketplace,
		LookbackDays: rowCtx.LookbackDays,
		BufferDays:   rowCtx.BufferDays,
		Metrics:      mapMetrics(record, rowCtx.LookbackDays),
		RunID:        rowCtx.RunID,
		PulledAt:     rowCtx.PulledAt,
	}

	return fact
}

// MapSearchTermRow converte um registro bruto em um SearchTermFact,
// com a mesma política de degradação do MapKeywordRow
func MapSearchTermRow(record map[string]any, rowCtx RowContext) *domain.SearchTermFact {
	date, ok := getDate(record, "date", "startDate")
	if !ok {
		return nil
	}

	fact := &domain.SearchTermFact{
		ProfileID:    rowCtx.ProfileID,
		Date:         date,
		CampaignID:   getString(record, "campaignId"),
		CampaignName: getString(record, "campaignName"),
		AdGroupID:    getString(record, "adGroupId"),
		AdGroupName:  getString(record, "adGroupName"),
		SearchTerm:   getString(record, "searchTerm", "query"),
		KeywordID:    getString(record, "keywordId", "targetId"),
		KeywordText:  getString(record, "keyword", "targeting"),
		MatchType:    getString(record, "matchType"),
		Bid:          getDecimal(record, "bid"),
		Marketplace:  rowCtx.Marketplace,
		LookbackDays: rowCtx.LookbackDays,
		BufferDays:   rowCtx.BufferDays,
		Metrics:      mapMetrics(record, rowCtx.LookbackDays),
		RunID:        rowCtx.RunID,
		PulledAt:     rowCtx.PulledAt,
	}

	return fact
}

// mapMetrics extrai as métricas brutas e calcula as derivadas.
// As colunas de vendas e pedidos vêm sufixadas pela janela de atribuição
// (ex: sales14d), com fallback para os nomes sem sufixo.
func mapMetrics(record map[string]any, lookbackDays int) domain.AdMetrics {
	impressions := getInt64(record, "impressions")
	clicks := getInt64(record, "clicks")
	cost := getDecimal(record, "cost", "spend")
	sales := getDecimal(record, fmt.Sprintf("sales%dd", lookbackDays), "sales", "attributedSales14d")
	orders := getInt64(record, fmt.Sprintf("purchases%dd", lookbackDays), "purchases", "orders")

	impressionsDec := decimal.NewFromInt(impressions)
	clicksDec := decimal.NewFromInt(clicks)

	return domain.AdMetrics{
		Impressions: impressions,
		Clicks:      clicks,
		Cost:        cost,
		Sales:       sales,
		Orders:      orders,
		CPC:         utils.SafeDivide(cost, clicksDec),
		CTR:         utils.SafeDivide(clicksDec, impressionsDec),
		ACOS:        utils.SafeDivide(cost, sales),
		ROAS:        utils.SafeDivide(sales, cost),
	}
}

// getString extrai o primeiro campo presente, coagindo números para texto
func getString(record map[string]any, keys ...string) string {
	for _, key := range keys {
		value, present := record[key]
		if !present || value == nil {
			continue
		}

		switch v := value.(type) {
		case string:
			return v
		case float64:
			// Ids numéricos do JSON viram texto sem casa decimal
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10)
			}
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return ""
}

// getInt64 extrai o primeiro campo numérico presente, com zero como padrão
func getInt64(record map[string]any, keys ...string) int64 {
	for _, key := range keys {
		value, present := record[key]
		if !present || value == nil {
			continue
		}

		switch v := value.(type) {
		case float64:
			return int64(v)
		case string:
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}

// getDecimal extrai o primeiro campo decimal presente, com zero como padrão
func getDecimal(record map[string]any, keys ...string) decimal.Decimal {
	for _, key := range keys {
		value, present := record[key]
		if !present || value == nil {
			continue
		}

		switch v := value.(type) {
		case float64:
			return decimal.NewFromFloat(v)
		case string:
			if d, err := decimal.NewFromString(v); err == nil {
				return d
			}
		}
	}
	return decimal.Zero
}

// getDate resolve a data do registro pela cadeia de fallback.
// Um registro sem data resolvível é excluído do lote pelo chamador.
func getDate(record map[string]any, keys ...string) (time.Time, bool) {
	for _, key := range keys {
		value, present := record[key]
		if !present || value == nil {
			continue
		}

		s, ok := value.(string)
		if !ok || s == "" {
			continue
		}

		formats := []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}
		for _, format := range formats {
			if t, err := time.Parse(format, s); err == nil {
				return utils.DateOnly(t), true
			}
		}
	}
	return time.Time{}, false
}

package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntityType identifica o grão do relatório de performance
type EntityType string

const (
	EntityTypeKeyword    EntityType = "keyword"
	EntityTypeSearchTerm EntityType = "search-term"
)

func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntityTypeKeyword:
		return EntityTypeKeyword, nil
	case EntityTypeSearchTerm:
		return EntityTypeSearchTerm, nil
	}
	return "", fmt.Errorf("tipo de entidade inválido: %q (valores aceitos: keyword, search-term)", s)
}

// AdMetrics agrupa as métricas de performance de um dia de uma entidade.
// CPC, CTR, ACOS e ROAS são derivadas, nunca vêm da API externa.
type AdMetrics struct {
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Cost        decimal.Decimal `json:"cost"`
	Sales       decimal.Decimal `json:"sales"`
	Orders      int64           `json:"orders"`
	CPC         decimal.Decimal `json:"cpc"`
	CTR         decimal.Decimal `json:"ctr"`
	ACOS        decimal.Decimal `json:"acos"`
	ROAS        decimal.Decimal `json:"roas"`
}

// KeywordFact representa a performance de uma keyword em um dia para um perfil.
// Chave natural: (profile_id, date, keyword_id).
type KeywordFact struct {
	ID           int64           `json:"id,omitempty"`
	ProfileID    string          `json:"profile_id"`
	Date         time.Time       `json:"date"`
	CampaignID   string          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	AdGroupID    string          `json:"ad_group_id"`
	AdGroupName  string          `json:"ad_group_name"`
	KeywordID    string          `json:"keyword_id"`
	KeywordText  string          `json:"keyword_text"`
	MatchType    string          `json:"match_type"`
	Bid          decimal.Decimal `json:"bid"`
	Marketplace  string          `json:"marketplace"`
	LookbackDays int             `json:"lookback_days"`
	BufferDays   int             `json:"buffer_days"`
	Metrics      AdMetrics       `json:"metrics"`
	RunID        string          `json:"run_id"`
	PulledAt     time.Time       `json:"pulled_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at,omitempty"`
}

// SearchTermFact representa a performance de um termo de busca em um dia
// para um perfil. Chave natural:
// (profile_id, date, ad_group_id, search_term, match_type).
type SearchTermFact struct {
	ID           int64           `json:"id,omitempty"`
	ProfileID    string          `json:"profile_id"`
	Date         time.Time       `json:"date"`
	CampaignID   string          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	AdGroupID    string          `json:"ad_group_id"`
	AdGroupName  string          `json:"ad_group_name"`
	SearchTerm   string          `json:"search_term"`
	KeywordID    string          `json:"keyword_id"`
	KeywordText  string          `json:"keyword_text"`
	MatchType    string          `json:"match_type"`
	Bid          decimal.Decimal `json:"bid"`
	Marketplace  string          `json:"marketplace"`
	LookbackDays int             `json:"lookback_days"`
	BufferDays   int             `json:"buffer_days"`
	Metrics      AdMetrics       `json:"metrics"`
	RunID        string          `json:"run_id"`
	PulledAt     time.Time       `json:"pulled_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at,omitempty"`
}

// FactFilters define o recorte da consulta de fatos persistidos
type FactFilters struct {
	ProfileID string
	StartDate time.Time
	EndDate   time.Time
	Limit     uint64
	Offset    uint64
}

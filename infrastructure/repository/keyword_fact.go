package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-pull-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-pull-api/internal/domain"
)

const (
	keywordFactsTable = "keyword_facts"

	keywordFactColumns = `profile_id, date, campaign_id, campaign_name, ad_group_id, ad_group_name,
		keyword_id, keyword_text, match_type, bid, marketplace, lookback_days, buffer_days,
		impressions, clicks, cost, sales, orders, cpc, ctr, acos, roas, run_id, pulled_at`
)

type KeywordFactRepository interface {
	Upsert(fact *domain.KeywordFact) (bool, error)
	ListByDateRange(filters domain.FactFilters) ([]*domain.KeywordFact, error)
	DeleteOlderThan(days int) (int64, error)
}

type keywordFactRepository struct {
	conn *postgres.Connection
}

func NewKeywordFactRepository(conn *postgres.Connection) KeywordFactRepository {
	return &keywordFactRepository{
		conn: conn,
	}
}

// Upsert insere ou mescla um fato pela chave natural
// (profile_id, date, keyword_id). Em conflito, todos os atributos
// não-chave e a proveniência são sobrescritos e updated_at é sempre
// renovado. Retorna true quando a linha foi inserida, false quando foi
// mesclada em uma existente.
func (r *keywordFactRepository) Upsert(fact *domain.KeywordFact) (bool, error) {
	query := squirrel.StatementBuilder.
		Insert(keywordFactsTable).
		Columns(
			"profile_id", "date", "campaign_id", "campaign_name", "ad_group_id", "ad_group_name",
			"keyword_id", "keyword_text", "match_type", "bid", "marketplace", "lookback_days", "buffer_days",
			"impressions", "clicks", "cost", "sales", "orders", "cpc", "ctr", "acos", "roas",
			"run_id", "pulled_at",
		).
		Values(
			fact.ProfileID,
			fact.Date.Format("2006-01-02"),
			fact.CampaignID,
			fact.CampaignName,
			fact.AdGroupID,
			fact.AdGroupName,
			fact.KeywordID,
			fact.KeywordText,
			fact.MatchType,
			fact.Bid,
			fact.Marketplace,
			fact.LookbackDays,
			fact.BufferDays,
			fact.Metrics.Impressions,
			fact.Metrics.Clicks,
			fact.Metrics.Cost,
			fact.Metrics.Sales,
			fact.Metrics.Orders,
			fact.Metrics.CPC,
			fact.Metrics.CTR,
			fact.Metrics.ACOS,
			fact.Metrics.ROAS,
			fact.RunID,
			fact.PulledAt,
		).
		Suffix(`
			ON CONFLICT (profile_id, date, keyword_id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				campaign_name = EXCLUDED.campaign_name,
				ad_group_id = EXCLUDED.ad_group_id,
				ad_group_name = EXCLUDED.ad_group_name,
				keyword_text = EXCLUDED.keyword_text,
				match_type = EXCLUDED.match_type,
				bid = EXCLUDED.bid,
				marketplace = EXCLUDED.marketplace,
				lookback_days = EXCLUDED.lookback_days,
				buffer_days = EXCLUDED.buffer_days,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				cost = EXCLUDED.cost,
				sales = EXCLUDED.sales,
				orders = EXCLUDED.orders,
				cpc = EXCLUDED.cpc,
				ctr = EXCLUDED.ctr,
				acos = EXCLUDED.acos,
				roas = EXCLUDED.roas,
				run_id = EXCLUDED.run_id,
				pulled_at = EXCLUDED.pulled_at,
				updated_at = NOW()
			RETURNING (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var inserted bool
	err = r.conn.QueryRow(sqlQuery, args...).Scan(&inserted)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return inserted, nil
}

// ListByDateRange retorna os fatos do perfil no intervalo, ordenados por
// data decrescente e keyword_id como desempate estável
func (r *keywordFactRepository) ListByDateRange(filters domain.FactFilters) ([]*domain.KeywordFact, error) {
	builder := squirrel.
		Select("id, " + keywordFactColumns + ", created_at, updated_at").
		From(keywordFactsTable).
		Where(squirrel.Eq{"profile_id": filters.ProfileID}).
		Where(squirrel.GtOrEq{"date": filters.StartDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": filters.EndDate.Format("2006-01-02")}).
		OrderBy("date DESC", "keyword_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Limit > 0 {
		builder = builder.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		builder = builder.Offset(filters.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	facts := make([]*domain.KeywordFact, 0)
	for rows.Next() {
		fact, err := scanKeywordFact(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear keyword fact: %w", err)
		}
		facts = append(facts, fact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return facts, nil
}

// DeleteOlderThan remove fatos mais antigos que o corte, em dias
func (r *keywordFactRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(keywordFactsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanKeywordFact(rows *sql.Rows) (*domain.KeywordFact, error) {
	fact := &domain.KeywordFact{}

	err := rows.Scan(
		&fact.ID,
		&fact.ProfileID,
		&fact.Date,
		&fact.CampaignID,
		&fact.CampaignName,
		&fact.AdGroupID,
		&fact.AdGroupName,
		&fact.KeywordID,
		&fact.KeywordText,
		&fact.MatchType,
		&fact.Bid,
		&fact.Marketplace,
		&fact.LookbackDays,
		&fact.BufferDays,
		&fact.Metrics.Impressions,
		&fact.Metrics.Clicks,
		&fact.Metrics.Cost,
		&fact.Metrics.Sales,
		&fact.Metrics.Orders,
		&fact.Metrics.CPC,
		&fact.Metrics.CTR,
		&fact.Metrics.ACOS,
		&fact.Metrics.ROAS,
		&fact.RunID,
		&fact.PulledAt,
		&fact.CreatedAt,
		&fact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fact, nil
}

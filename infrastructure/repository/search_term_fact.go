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
	searchTermFactsTable = "search_term_facts"

	searchTermFactColumns = `profile_id, date, campaign_id, campaign_name, ad_group_id, ad_group_name,
		search_term, keyword_id, keyword_text, match_type, bid, marketplace, lookback_days, buffer_days,
		impressions, clicks, cost, sales, orders, cpc, ctr, acos, roas, run_id, pulled_at`
)

type SearchTermFactRepository interface {
	Upsert(fact *domain.SearchTermFact) (bool, error)
	ListByDateRange(filters domain.FactFilters) ([]*domain.SearchTermFact, error)
	DeleteOlderThan(days int) (int64, error)
}

type searchTermFactRepository struct {
	conn *postgres.Connection
}

func NewSearchTermFactRepository(conn *postgres.Connection) SearchTermFactRepository {
	return &searchTermFactRepository{
		conn: conn,
	}
}

// Upsert insere ou mescla um fato pela chave natural
// (profile_id, date, ad_group_id, search_term, match_type).
// Retorna true quando a linha foi inserida, false quando mesclada.
func (r *searchTermFactRepository) Upsert(fact *domain.SearchTermFact) (bool, error) {
	query := squirrel.StatementBuilder.
		Insert(searchTermFactsTable).
		Columns(
			"profile_id", "date", "campaign_id", "campaign_name", "ad_group_id", "ad_group_name",
			"search_term", "keyword_id", "keyword_text", "match_type", "bid", "marketplace",
			"lookback_days", "buffer_days",
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
			fact.SearchTerm,
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
			ON CONFLICT (profile_id, date, ad_group_id, search_term, match_type) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				campaign_name = EXCLUDED.campaign_name,
				ad_group_name = EXCLUDED.ad_group_name,
				keyword_id = EXCLUDED.keyword_id,
				keyword_text = EXCLUDED.keyword_text,
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
// data decrescente e termo de busca como desempate estável
func (r *searchTermFactRepository) ListByDateRange(filters domain.FactFilters) ([]*domain.SearchTermFact, error) {
	builder := squirrel.
		Select("id, " + searchTermFactColumns + ", created_at, updated_at").
		From(searchTermFactsTable).
		Where(squirrel.Eq{"profile_id": filters.ProfileID}).
		Where(squirrel.GtOrEq{"date": filters.StartDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": filters.EndDate.Format("2006-01-02")}).
		OrderBy("date DESC", "search_term ASC").
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

	facts := make([]*domain.SearchTermFact, 0)
	for rows.Next() {
		fact, err := scanSearchTermFact(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear search term fact: %w", err)
		}
		facts = append(facts, fact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return facts, nil
}

// DeleteOlderThan remove fatos mais antigos que o corte, em dias
func (r *searchTermFactRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(searchTermFactsTable).
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

func scanSearchTermFact(rows *sql.Rows) (*domain.SearchTermFact, error) {
	fact := &domain.SearchTermFact{}

	err := rows.Scan(
		&fact.ID,
		&fact.ProfileID,
		&fact.Date,
		&fact.CampaignID,
		&fact.CampaignName,
		&fact.AdGroupID,
		&fact.AdGroupName,
		&fact.SearchTerm,
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

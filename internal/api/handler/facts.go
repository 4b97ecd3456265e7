package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/ads-pull-api/internal/domain"
	"github.com/vfg2006/ads-pull-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-pull-api/pkg/apiErrors"
	"github.com/vfg2006/ads-pull-api/pkg/log"
	"github.com/vfg2006/ads-pull-api/pkg/utils"
)

const defaultFactPageSize = 100

// GetKeywordFacts lista os fatos de keyword persistidos no recorte
// informado, ordenados por data decrescente
func GetKeywordFacts(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := factFiltersFromRequest(w, r)
		if !ok {
			return
		}

		facts, err := service.QueryKeywordFacts(filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("Erro ao consultar fatos de keyword")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar fatos de keyword", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(facts); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	})
}

// GetSearchTermFacts lista os fatos de termo de busca persistidos no
// recorte informado
func GetSearchTermFacts(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := factFiltersFromRequest(w, r)
		if !ok {
			return
		}

		facts, err := service.QuerySearchTermFacts(filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("Erro ao consultar fatos de termo de busca")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar fatos de termo de busca", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(facts); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	})
}

// factFiltersFromRequest monta os filtros de consulta a partir da query
// string; end_date ausente vale o dia de hoje e start_date ausente abre
// o limite inferior
func factFiltersFromRequest(w http.ResponseWriter, r *http.Request) (domain.FactFilters, bool) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido, use YYYY-MM-DD", nil)
		return domain.FactFilters{}, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido, use YYYY-MM-DD", nil)
		return domain.FactFilters{}, false
	}

	if endDate.IsZero() {
		*endDate = utils.DateOnly(time.Now().UTC())
	}

	filters := domain.FactFilters{
		ProfileID: r.URL.Query().Get("profile_id"),
		StartDate: *startDate,
		EndDate:   *endDate,
		Limit:     uintQueryParam(r, "limit", defaultFactPageSize),
		Offset:    uintQueryParam(r, "offset", 0),
	}

	if filters.EndDate.Before(filters.StartDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date anterior a start_date", nil)
		return domain.FactFilters{}, false
	}

	return filters, true
}

func uintQueryParam(r *http.Request, name string, fallback uint64) uint64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fallback
	}

	return value
}

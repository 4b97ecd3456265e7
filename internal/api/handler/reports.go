package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	adsdomain "github.com/vfg2006/ads-pull-api/infrastructure/integrator/amazonads/domain"
	"github.com/vfg2006/ads-pull-api/internal/domain"
	"github.com/vfg2006/ads-pull-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-pull-api/pkg/apiErrors"
	"github.com/vfg2006/ads-pull-api/pkg/log"
)

// StartReport cria o job de relatório e devolve o id sem aguardar
func StartReport(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entityType, ok := entityTypeFromRequest(w, r)
		if !ok {
			return
		}

		lookbackDays := intQueryParam(r, "lookback_days")

		job, err := service.StartReport(r.Context(), entityType, lookbackDays)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_type": entityType,
				"error":       err.Error(),
			}).Error("Erro ao criar job de relatório")

			writePipelineError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"entity_type": entityType,
			"report_id":   job.ReportID,
			"duplicate":   job.Duplicate,
		}).Info("Job de relatório criado")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"report_id": job.ReportID,
			"duplicate": job.Duplicate,
		})
	})
}

// RunReport cria o job e dispara o restante do pipeline em background.
// A resposta devolve o id imediatamente; o resultado da ingestão
// aparece apenas em logs.
func RunReport(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entityType, ok := entityTypeFromRequest(w, r)
		if !ok {
			return
		}

		lookbackDays := intQueryParam(r, "lookback_days")

		job, err := service.RunReport(r.Context(), entityType, lookbackDays)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_type": entityType,
				"error":       err.Error(),
			}).Error("Erro ao iniciar ingestão em background")

			writePipelineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"report_id": job.ReportID,
			"duplicate": job.Duplicate,
			"status":    "processing",
		})
	})
}

// FetchReport aguarda o job concluir dentro do teto interativo e faz o
// upsert do payload, devolvendo o resumo da ingestão
func FetchReport(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entityType, ok := entityTypeFromRequest(w, r)
		if !ok {
			return
		}

		reportID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if reportID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Id do relatório não informado", nil)
			return
		}

		rowCap := intQueryParam(r, "row_cap")

		summary, err := service.FetchReport(r.Context(), reportID, entityType, rowCap)
		if err != nil {
			logger.WithFields(log.Fields{
				"report_id":   reportID,
				"entity_type": entityType,
				"stage":       adsdomain.StageOf(err),
				"error":       err.Error(),
			}).Error("Erro ao buscar e ingerir relatório")

			writePipelineError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"report_id": reportID,
			"processed": summary.Processed,
			"inserted":  summary.Inserted,
			"updated":   summary.Updated,
			"skipped":   summary.Skipped,
		}).Info("Relatório ingerido com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	})
}

// entityTypeFromRequest resolve o parâmetro :entity da rota
func entityTypeFromRequest(w http.ResponseWriter, r *http.Request) (domain.EntityType, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("entity")

	entityType, err := domain.ParseEntityType(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de entidade inválido. Valores aceitos: keyword, search-term", nil)
		return "", false
	}

	return entityType, true
}

// intQueryParam devolve o parâmetro como inteiro, ou zero quando ausente
// ou inválido (o serviço aplica o default de configuração)
func intQueryParam(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}

	return value
}

// writePipelineError mapeia as classes de falha do pipeline para os
// códigos da API: timeout é retriável (conflito), falha terminal do job
// é bad gateway e exige um novo job, payload ininterpretável é
// unprocessable. Um erro na própria consulta de status não é terminal e
// cai no grupo de comunicação com o provedor.
func writePipelineError(w http.ResponseWriter, err error) {
	if adsdomain.IsTimeout(err) {
		apiErrors.WriteError(w, apiErrors.ErrReportTimeout, "Relatório ainda em processamento, tente novamente", nil)
		return
	}

	if adsdomain.IsTerminal(err) {
		apiErrors.WriteError(w, apiErrors.ErrReportFailed, "Relatório terminou em falha no provedor", nil)
		return
	}

	switch adsdomain.StageOf(err) {
	case adsdomain.StageParse:
		apiErrors.WriteError(w, apiErrors.ErrReportParse, "Payload do relatório não pôde ser interpretado", nil)

	case adsdomain.StageTokenExchange, adsdomain.StageCreateReport, adsdomain.StageCheckReport, adsdomain.StageDownload:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao comunicar com o provedor de anúncios", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar o relatório", nil)
	}
}

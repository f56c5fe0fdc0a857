package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/timesheeting"
	"github.com/vfg2006/invoice-manager-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-manager-api/pkg/log"
)

type applyTimesheetRequest struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Text  string `json:"text"`
}

// ApplyTimesheet substitui os apontamentos de um cliente no mês informado pelo
// texto em massa interpretado linha a linha
func ApplyTimesheet(service timesheeting.Timesheeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		var req applyTimesheetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Error("timesheet: erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Year < 1 || req.Month < 1 || req.Month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano ou mês inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id": customerID,
			"year":        req.Year,
			"month":       req.Month,
			"lines":       len(strings.Split(req.Text, "\n")),
		}).Info("timesheet: aplicando texto em massa")

		entries, err := service.ApplyBulkText(r.Context(), customerID, req.Year, time.Month(req.Month), req.Text)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"customer_id": customerID,
			}).Error("timesheet: erro ao aplicar apontamentos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao aplicar apontamentos", nil)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id":   customerID,
			"entries_saved": len(entries),
		}).Info("timesheet: apontamentos aplicados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithError(err).Error("timesheet: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

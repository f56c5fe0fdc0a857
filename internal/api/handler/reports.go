package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/invoice-manager-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-manager-api/pkg/log"
)

// GetTimeChart retorna a série de horas por cliente. O modo monthly gera as
// doze linhas do ano; o modo daily gera uma linha por dia do mês
func GetTimeChart(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		mode := domain.TimeChartMode(r.URL.Query().Get("mode"))
		if mode == "" {
			mode = domain.TimeChartModeMonthly
		}
		if mode != domain.TimeChartModeMonthly && mode != domain.TimeChartModeDaily {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Modo inválido. Use monthly ou daily", nil)
			return
		}

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		month := int(time.January)
		if mode == domain.TimeChartModeDaily {
			month, err = strconv.Atoi(r.URL.Query().Get("month"))
			if err != nil || month < 1 || month > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", nil)
				return
			}
		}

		chart, err := service.GetTimeChart(mode, year, time.Month(month))
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"mode": mode,
				"year": year,
			}).Error("time-chart: erro ao montar série de horas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar gráfico de horas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(chart); err != nil {
			logger.WithError(err).Error("time-chart: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetROIRanking retorna o ranking de retorno por hora dos clientes. Com o
// parâmetro year, cruza as horas com o faturamento do ano
func GetROIRanking(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var year *int
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			y, err := strconv.Atoi(yearStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			year = &y
		}

		ranking, err := service.GetROIRanking(year)
		if err != nil {
			logger.WithError(err).Error("roi-ranking: erro ao calcular ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular ranking", nil)
			return
		}

		logger.WithFields(log.Fields{
			"customers_ranked": len(ranking),
		}).Info("roi-ranking: ranking calculado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ranking); err != nil {
			logger.WithError(err).Error("roi-ranking: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetAvailablePeriods retorna os anos e meses com horas registradas
func GetAvailablePeriods(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("periods: erro ao buscar períodos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar períodos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("periods: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetRevenueMetrics retorna as métricas de faturamento do ano informado
func GetRevenueMetrics(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		metrics, err := service.GetRevenueMetrics(year)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"year": year,
			}).Error("revenue: erro ao calcular métricas de faturamento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("revenue: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

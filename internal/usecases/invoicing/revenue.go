package invoicing

import (
	"time"

	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"github.com/vfg2006/invoice-manager-api/pkg/utils"
)

// elapsedMonths retorna quantos meses do ano já transcorreram na data de
// referência: todos os 12 para anos passados, zero para anos futuros
func elapsedMonths(year int, now time.Time) int {
	switch {
	case year < now.Year():
		return 12
	case year > now.Year():
		return 0
	default:
		return int(now.Month())
	}
}

// ComputeRevenueMetrics agrega os totais faturados de um ano: acumulado até a
// data de referência, média mensal e projeção anual. Valores negativos são
// normalizados para zero
func ComputeRevenueMetrics(invoices []*domain.Invoice, year int, now time.Time) *domain.RevenueMetrics {
	totalYTD := 0.0
	for _, invoice := range invoices {
		if invoice.IssueDate.Year() != year || invoice.IssueDate.After(now) {
			continue
		}
		totalYTD += invoice.Total
	}

	if totalYTD < 0 {
		totalYTD = 0
	}

	averageMonthly := 0.0
	if elapsed := elapsedMonths(year, now); elapsed > 0 {
		averageMonthly = totalYTD / float64(elapsed)
	}

	return &domain.RevenueMetrics{
		Year:            year,
		TotalYTD:        utils.RoundWithTwoDecimalPlace(totalYTD),
		AverageMonthly:  utils.RoundWithTwoDecimalPlace(averageMonthly),
		ProjectedAnnual: utils.RoundWithTwoDecimalPlace(averageMonthly * 12),
	}
}

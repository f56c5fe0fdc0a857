package invoicing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

func invoiceOn(date time.Time, total float64) *domain.Invoice {
	return &domain.Invoice{IssueDate: date, Total: total, Status: domain.InvoiceStatusSent}
}

// TestComputeRevenueMetrics cobre a agregação anual de faturamento
func TestComputeRevenueMetrics(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("ano corrente usa os meses transcorridos", func(t *testing.T) {
		invoices := []*domain.Invoice{
			invoiceOn(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), 1000),
			invoiceOn(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), 2000),
			// Fatura futura não entra no acumulado
			invoiceOn(time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC), 9000),
		}

		metrics := ComputeRevenueMetrics(invoices, 2024, now)

		assert.Equal(t, 2024, metrics.Year)
		assert.Equal(t, 3000.0, metrics.TotalYTD)
		assert.Equal(t, 500.0, metrics.AverageMonthly)
		assert.Equal(t, 6000.0, metrics.ProjectedAnnual)
	})

	t.Run("ano passado divide por doze meses", func(t *testing.T) {
		invoices := []*domain.Invoice{
			invoiceOn(time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC), 2400),
		}

		metrics := ComputeRevenueMetrics(invoices, 2023, now)

		assert.Equal(t, 2400.0, metrics.TotalYTD)
		assert.Equal(t, 200.0, metrics.AverageMonthly)
		assert.Equal(t, 2400.0, metrics.ProjectedAnnual)
	})

	t.Run("ano futuro zera todas as métricas", func(t *testing.T) {
		invoices := []*domain.Invoice{
			invoiceOn(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 5000),
		}

		metrics := ComputeRevenueMetrics(invoices, 2025, now)

		assert.Equal(t, 0.0, metrics.TotalYTD)
		assert.Equal(t, 0.0, metrics.AverageMonthly)
		assert.Equal(t, 0.0, metrics.ProjectedAnnual)
	})

	t.Run("retificações podem zerar mas nunca negativar o acumulado", func(t *testing.T) {
		invoices := []*domain.Invoice{
			invoiceOn(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 500),
			invoiceOn(time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC), -800),
		}

		metrics := ComputeRevenueMetrics(invoices, 2024, now)

		assert.Equal(t, 0.0, metrics.TotalYTD)
		assert.Equal(t, 0.0, metrics.AverageMonthly)
		assert.Equal(t, 0.0, metrics.ProjectedAnnual)
	})

	t.Run("faturas de outros anos são ignoradas", func(t *testing.T) {
		invoices := []*domain.Invoice{
			invoiceOn(time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), 700),
			invoiceOn(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), 600),
		}

		metrics := ComputeRevenueMetrics(invoices, 2024, now)

		assert.Equal(t, 600.0, metrics.TotalYTD)
	})
}

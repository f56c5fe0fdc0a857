package domain

import "time"

// RevenueMetrics agrega os totais faturados de um ano: acumulado até a data,
// projeção anual e média mensal. Valores nunca negativos
type RevenueMetrics struct {
	Year            int     `json:"year"`
	TotalYTD        float64 `json:"total_ytd"`
	ProjectedAnnual float64 `json:"projected_annual"`
	AverageMonthly  float64 `json:"average_monthly"`
}

// RevenueSnapshot é a fotografia persistida das métricas de receita de um ano,
// atualizada pelo agendador de sincronização
type RevenueSnapshot struct {
	ID                int64              `json:"id"`
	Year              int                `json:"year"`
	Metrics           *RevenueMetrics    `json:"metrics"`
	PerCustomerTotals map[string]float64 `json:"per_customer_totals"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

package reporting

import (
	"time"

	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

// Reporter define a interface dos relatórios derivados dos apontamentos e do
// faturamento
type Reporter interface {
	// GetTimeChart monta a série de horas por cliente no modo mensal ou diário
	GetTimeChart(mode domain.TimeChartMode, year int, month time.Month) (*domain.TimeChartData, error)

	// GetROIRanking retorna o ranking de retorno por hora. Quando year é nil,
	// o ranking considera apenas horas, sem faturamento
	GetROIRanking(year *int) ([]*domain.RoiItem, error)

	// GetAvailablePeriods retorna os anos e meses com horas registradas
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}

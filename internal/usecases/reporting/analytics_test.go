package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

func index(name string, perMonth map[string]int) *domain.CustomerTimeIndex {
	return &domain.CustomerTimeIndex{
		CustomerName:    name,
		PerDayMinutes:   map[string]int{},
		PerMonthMinutes: perMonth,
	}
}

// TestPrepareTimeChartData_Mensal garante as 12 linhas do modo mensal
func TestPrepareTimeChartData_Mensal(t *testing.T) {
	indexes := []*domain.CustomerTimeIndex{
		index("Acme", map[string]int{"2024-03": 660, "2024-07": 90}),
		index("Beta", map[string]int{"2024-03": 30}),
	}

	chart := PrepareTimeChartData(indexes, domain.TimeChartModeMonthly, 2024, time.January)

	assert.Equal(t, domain.TimeChartModeMonthly, chart.Mode)
	assert.Equal(t, []string{"Acme", "Beta"}, chart.Customers)
	assert.Len(t, chart.Rows, 12)

	assert.Equal(t, "2024-01", chart.Rows[0].Label)
	assert.Equal(t, "2024-12", chart.Rows[11].Label)

	march := chart.Rows[2]
	assert.Equal(t, "2024-03", march.Label)
	assert.Equal(t, 11.0, march.Hours["Acme"])
	assert.Equal(t, 0.5, march.Hours["Beta"])

	july := chart.Rows[6]
	assert.Equal(t, 1.5, july.Hours["Acme"])
	assert.Equal(t, 0.0, july.Hours["Beta"])
}

// TestPrepareTimeChartData_MensalEsparso cobre índices sem nenhum registro
func TestPrepareTimeChartData_MensalEsparso(t *testing.T) {
	chart := PrepareTimeChartData(nil, domain.TimeChartModeMonthly, 2024, time.January)

	assert.Len(t, chart.Rows, 12)
	assert.Empty(t, chart.Customers)
}

// TestPrepareTimeChartData_Diario gera uma linha por dia do mês, ciente de
// anos bissextos
func TestPrepareTimeChartData_Diario(t *testing.T) {
	acme := &domain.CustomerTimeIndex{
		CustomerName: "Acme",
		PerDayMinutes: map[string]int{
			"2024-02-29": 480,
		},
		PerMonthMinutes: map[string]int{"2024-02": 480},
	}

	chart := PrepareTimeChartData([]*domain.CustomerTimeIndex{acme}, domain.TimeChartModeDaily, 2024, time.February)

	assert.Len(t, chart.Rows, 29)
	assert.Equal(t, "2024-02-01", chart.Rows[0].Label)
	assert.Equal(t, "2024-02-29", chart.Rows[28].Label)
	assert.Equal(t, 8.0, chart.Rows[28].Hours["Acme"])

	chart = PrepareTimeChartData([]*domain.CustomerTimeIndex{acme}, domain.TimeChartModeDaily, 2023, time.February)
	assert.Len(t, chart.Rows, 28)
}

// TestComputeInvoiceBasedROI cobre o cálculo de retorno por hora
func TestComputeInvoiceBasedROI(t *testing.T) {
	t.Run("receita dividida pelas horas do ano", func(t *testing.T) {
		indexes := []*domain.CustomerTimeIndex{
			index("Acme", map[string]int{"2024-01": 600, "2023-12": 6000}), // só 10h contam em 2024
		}
		totals := map[string]float64{"Acme": 1500}

		items := ComputeInvoiceBasedROI(totals, indexes, 2024)

		assert.Len(t, items, 1)
		assert.Equal(t, 10.0, items[0].TotalHours)
		assert.Equal(t, 1500.0, items[0].Revenue)
		assert.Equal(t, 150.0, items[0].RoiPerHour)
	})

	t.Run("total negativo vira receita zero", func(t *testing.T) {
		indexes := []*domain.CustomerTimeIndex{
			index("Acme", map[string]int{"2024-01": 120}),
		}
		totals := map[string]float64{"Acme": -50}

		items := ComputeInvoiceBasedROI(totals, indexes, 2024)

		assert.Equal(t, 0.0, items[0].Revenue)
		assert.Equal(t, 0.0, items[0].RoiPerHour)
	})

	t.Run("cliente sem horas no ano tem ROI zero", func(t *testing.T) {
		indexes := []*domain.CustomerTimeIndex{
			index("Acme", map[string]int{"2023-06": 600}),
		}
		totals := map[string]float64{"Acme": 900}

		items := ComputeInvoiceBasedROI(totals, indexes, 2024)

		assert.Equal(t, 0.0, items[0].TotalHours)
		assert.Equal(t, 900.0, items[0].Revenue)
		assert.Equal(t, 0.0, items[0].RoiPerHour)
	})

	t.Run("ordenação decrescente por ROI com desempate por receita", func(t *testing.T) {
		indexes := []*domain.CustomerTimeIndex{
			index("Baixo", map[string]int{"2024-01": 600}),
			index("Alto", map[string]int{"2024-01": 60}),
			index("Empate A", map[string]int{"2024-01": 60}),
			index("Empate B", map[string]int{"2024-01": 120}),
		}
		totals := map[string]float64{
			"Baixo":    100, // 10 por hora
			"Alto":     500, // 500 por hora
			"Empate A": 50,  // 50 por hora, receita 50
			"Empate B": 100, // 50 por hora, receita 100
		}

		items := ComputeInvoiceBasedROI(totals, indexes, 2024)

		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, item.CustomerName)
		}
		assert.Equal(t, []string{"Alto", "Empate B", "Empate A", "Baixo"}, names)
	})

	t.Run("chaves malformadas não contam horas", func(t *testing.T) {
		indexes := []*domain.CustomerTimeIndex{
			index("Acme", map[string]int{"2024-01": 60, "2024-13": 600, "abc-01": 600}),
		}

		items := ComputeInvoiceBasedROI(map[string]float64{"Acme": 100}, indexes, 2024)

		assert.Equal(t, 1.0, items[0].TotalHours)
	})
}

// TestComputeROI cobre o modo sem faturamento
func TestComputeROI(t *testing.T) {
	indexes := []*domain.CustomerTimeIndex{
		index("Acme", map[string]int{"2023-12": 90, "2024-01": 30}),
		index("Beta", map[string]int{"2024-01": 600}),
	}

	items := ComputeROI(indexes)

	assert.Len(t, items, 2)
	// Sem receita não há reordenação, a ordem de entrada é preservada
	assert.Equal(t, "Acme", items[0].CustomerName)
	assert.Equal(t, 2.0, items[0].TotalHours)
	assert.Equal(t, 0.0, items[0].Revenue)
	assert.Equal(t, 0.0, items[0].RoiPerHour)
	assert.Equal(t, 10.0, items[1].TotalHours)
}

// TestComputeAvailablePeriods cobre a enumeração de períodos
func TestComputeAvailablePeriods(t *testing.T) {
	t.Run("anos decrescentes e meses crescentes", func(t *testing.T) {
		indexes := []*domain.CustomerTimeIndex{
			index("Acme", map[string]int{"2023-11": 60, "2024-02": 60}),
			index("Beta", map[string]int{"2024-01": 60, "2023-03": 60}),
		}

		periods := ComputeAvailablePeriods(indexes)

		assert.Equal(t, []int{2024, 2023}, periods.Years)
		assert.Equal(t, []int{1, 2}, periods.MonthsByYear[2024])
		assert.Equal(t, []int{3, 11}, periods.MonthsByYear[2023])
	})

	t.Run("chaves malformadas são descartadas", func(t *testing.T) {
		indexes := []*domain.CustomerTimeIndex{
			index("Acme", map[string]int{"2024-13": 60, "abc-01": 60, "2024": 60, "2024-02": 60}),
		}

		periods := ComputeAvailablePeriods(indexes)

		assert.Equal(t, []int{2024}, periods.Years)
		assert.Equal(t, []int{2}, periods.MonthsByYear[2024])
	})

	t.Run("índices vazios produzem períodos vazios", func(t *testing.T) {
		periods := ComputeAvailablePeriods(nil)

		assert.Empty(t, periods.Years)
		assert.Empty(t, periods.MonthsByYear)
	})
}

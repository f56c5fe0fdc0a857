package reporting

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"github.com/vfg2006/invoice-manager-api/pkg/utils"
)

// parseMonthKey decompõe uma chave mensal "YYYY-MM". Chaves malformadas
// retornam false e são ignoradas pelos agregados
func parseMonthKey(key string) (int, int, bool) {
	yearPart, monthPart, found := strings.Cut(key, "-")
	if !found {
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}

	return year, month, true
}

// PrepareTimeChartData monta as séries do gráfico de horas. No modo mensal a
// saída tem sempre 12 linhas (janeiro a dezembro do ano); no modo diário, uma
// linha por dia do mês informado. As colunas seguem a ordem dos índices de
// entrada
func PrepareTimeChartData(indexes []*domain.CustomerTimeIndex, mode domain.TimeChartMode, year int, month time.Month) *domain.TimeChartData {
	customers := make([]string, 0, len(indexes))
	for _, index := range indexes {
		customers = append(customers, index.CustomerName)
	}

	chart := &domain.TimeChartData{
		Mode:      mode,
		Customers: customers,
		Rows:      make([]domain.TimeChartRow, 0, 12),
	}

	if mode == domain.TimeChartModeDaily {
		daysInMonth := utils.DaysInMonth(year, month)
		for day := 1; day <= daysInMonth; day++ {
			label := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
			row := domain.TimeChartRow{Label: label, Hours: make(map[string]float64, len(indexes))}
			for _, index := range indexes {
				row.Hours[index.CustomerName] = utils.MinutesToHours(index.PerDayMinutes[label])
			}
			chart.Rows = append(chart.Rows, row)
		}
		return chart
	}

	for m := 1; m <= 12; m++ {
		label := fmt.Sprintf("%04d-%02d", year, m)
		row := domain.TimeChartRow{Label: label, Hours: make(map[string]float64, len(indexes))}
		for _, index := range indexes {
			row.Hours[index.CustomerName] = utils.MinutesToHours(index.PerMonthMinutes[label])
		}
		chart.Rows = append(chart.Rows, row)
	}

	return chart
}

// ComputeROI calcula o ranking apenas por horas trabalhadas, sem faturamento.
// Receita e ROI ficam zerados
func ComputeROI(indexes []*domain.CustomerTimeIndex) []*domain.RoiItem {
	items := make([]*domain.RoiItem, 0, len(indexes))
	for _, index := range indexes {
		totalMinutes := 0
		for _, minutes := range index.PerMonthMinutes {
			totalMinutes += minutes
		}

		items = append(items, &domain.RoiItem{
			CustomerName: index.CustomerName,
			TotalHours:   utils.MinutesToHours(totalMinutes),
		})
	}

	sortRoiItems(items)

	return items
}

// ComputeInvoiceBasedROI cruza o faturamento anual por cliente com as horas
// trabalhadas no mesmo ano. Totais negativos (notas de crédito) são tratados
// como receita zero
func ComputeInvoiceBasedROI(perCustomerTotals map[string]float64, indexes []*domain.CustomerTimeIndex, year int) []*domain.RoiItem {
	items := make([]*domain.RoiItem, 0, len(indexes))
	for _, index := range indexes {
		totalMinutes := 0
		for key, minutes := range index.PerMonthMinutes {
			keyYear, _, ok := parseMonthKey(key)
			if !ok || keyYear != year {
				continue
			}
			totalMinutes += minutes
		}

		hours := utils.MinutesToHours(totalMinutes)

		revenue := perCustomerTotals[index.CustomerName]
		if revenue < 0 {
			revenue = 0
		}

		roiPerHour := 0.0
		if hours > 0 {
			roiPerHour = utils.RoundWithTwoDecimalPlace(revenue / hours)
		}

		items = append(items, &domain.RoiItem{
			CustomerName: index.CustomerName,
			TotalHours:   hours,
			Revenue:      revenue,
			RoiPerHour:   roiPerHour,
		})
	}

	sortRoiItems(items)

	return items
}

// Ordenação do ranking: ROI decrescente com desempate por receita decrescente
func sortRoiItems(items []*domain.RoiItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].RoiPerHour != items[j].RoiPerHour {
			return items[i].RoiPerHour > items[j].RoiPerHour
		}
		return items[i].Revenue > items[j].Revenue
	})
}

// ComputeAvailablePeriods enumera os anos e meses presentes nos índices.
// Anos em ordem decrescente, meses de cada ano em ordem crescente; chaves
// malformadas são descartadas
func ComputeAvailablePeriods(indexes []*domain.CustomerTimeIndex) *domain.AvailablePeriods {
	monthSets := make(map[int]map[int]struct{})
	for _, index := range indexes {
		for key := range index.PerMonthMinutes {
			year, month, ok := parseMonthKey(key)
			if !ok {
				continue
			}

			if monthSets[year] == nil {
				monthSets[year] = make(map[int]struct{})
			}
			monthSets[year][month] = struct{}{}
		}
	}

	periods := &domain.AvailablePeriods{
		Years:        make([]int, 0, len(monthSets)),
		MonthsByYear: make(map[int][]int, len(monthSets)),
	}

	for year, months := range monthSets {
		periods.Years = append(periods.Years, year)

		sorted := make([]int, 0, len(months))
		for month := range months {
			sorted = append(sorted, month)
		}
		sort.Ints(sorted)
		periods.MonthsByYear[year] = sorted
	}

	sort.Sort(sort.Reverse(sort.IntSlice(periods.Years)))

	return periods
}

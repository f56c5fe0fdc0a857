package timesheeting

import (
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

const dayKeyLayout = "2006-01-02"

// BuildCustomerTimeIndex agrega os minutos trabalhados de um cliente por dia
// e por mês. Dias sem início ou fim válidos são ignorados na agregação
func BuildCustomerTimeIndex(customerName string, entries []*domain.TimeEntry) *domain.CustomerTimeIndex {
	index := &domain.CustomerTimeIndex{
		CustomerName:    customerName,
		PerDayMinutes:   make(map[string]int),
		PerMonthMinutes: make(map[string]int),
	}

	for _, entry := range entries {
		minutes, ok := entry.WorkedMinutes()
		if !ok {
			continue
		}

		index.PerDayMinutes[entry.Date.Format(dayKeyLayout)] += minutes
		index.PerMonthMinutes[entry.MonthKey()] += minutes
	}

	return index
}

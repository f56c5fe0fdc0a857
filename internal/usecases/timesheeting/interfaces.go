package timesheeting

import (
	"context"
	"time"

	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

// Timesheeter define a interface para manutenção dos apontamentos de horas
type Timesheeter interface {
	// ApplyBulkText substitui os apontamentos de um mês pelo texto interpretado
	ApplyBulkText(ctx context.Context, customerID string, year int, month time.Month, text string) ([]*domain.TimeEntry, error)

	// ListEntries retorna todos os apontamentos de um cliente
	ListEntries(customerID string) ([]*domain.TimeEntry, error)

	// ListMonthEntries retorna os apontamentos de um cliente em um mês específico
	ListMonthEntries(customerID string, year int, month time.Month) ([]*domain.TimeEntry, error)
}

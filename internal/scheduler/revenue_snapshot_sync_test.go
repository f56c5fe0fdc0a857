package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/invoice-manager-api/internal/config"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestConfig(lookback int) *config.Config {
	return &config.Config{
		RevenueSnapshotSync: config.RevenueSnapshotSync{
			CronSchedule: "0 5 * * *",
			YearLookback: lookback,
			Enabled:      true,
		},
	}
}

// TestUpdateRevenueSnapshots valida a gravação dos snapshots por ano
func TestUpdateRevenueSnapshots(t *testing.T) {
	t.Run("grava o ano corrente e o anterior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		snapshotRepo := mocks.NewMockRevenueSnapshotRepository(ctrl)

		currentYear := time.Now().Year()
		years := []int{currentYear - 1, currentYear}

		for _, year := range years {
			y := year
			invoiceRepo.EXPECT().ListInvoices(gomock.Cond(func(x any) bool {
				arg, ok := x.(*int)
				return ok && arg != nil && *arg == y
			})).Return([]*domain.Invoice{
				{
					IssueDate: time.Date(y, time.January, 10, 0, 0, 0, 0, time.UTC),
					Total:     1200,
					Status:    domain.InvoiceStatusPaid,
				},
			}, nil)
			invoiceRepo.EXPECT().TotalsByCustomerForYear(y).Return(map[string]float64{"Acme": 1200}, nil)
			snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(snapshot *domain.RevenueSnapshot) error {
				assert.Equal(t, y, snapshot.Year)
				assert.NotNil(t, snapshot.Metrics)
				assert.Equal(t, 1200.0, snapshot.Metrics.TotalYTD)
				assert.Equal(t, map[string]float64{"Acme": 1200}, snapshot.PerCustomerTotals)
				return nil
			})
		}

		service := NewRevenueSnapshotSyncService(invoiceRepo, snapshotRepo, newTestConfig(1))
		err := service.UpdateRevenueSnapshots()

		assert.NoError(t, err)
	})

	t.Run("erro do repositório interrompe a sincronização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		snapshotRepo := mocks.NewMockRevenueSnapshotRepository(ctrl)

		invoiceRepo.EXPECT().ListInvoices(gomock.Any()).Return(nil, errors.New("conexão perdida"))

		service := NewRevenueSnapshotSyncService(invoiceRepo, snapshotRepo, newTestConfig(0))
		err := service.UpdateRevenueSnapshots()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "erro ao listar faturas do ano")
	})

	t.Run("status reflete a última execução", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		snapshotRepo := mocks.NewMockRevenueSnapshotRepository(ctrl)

		invoiceRepo.EXPECT().ListInvoices(gomock.Any()).Return(nil, nil)
		invoiceRepo.EXPECT().TotalsByCustomerForYear(gomock.Any()).Return(map[string]float64{}, nil)
		snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		service := NewRevenueSnapshotSyncService(invoiceRepo, snapshotRepo, newTestConfig(0))
		assert.NoError(t, service.UpdateRevenueSnapshots())

		status := service.GetStatus()
		assert.Equal(t, true, status["sync_enabled"])
		assert.Equal(t, "0 5 * * *", status["sync_cron"])
		assert.NotZero(t, status["last_sync_started_at"])
		assert.NotZero(t, status["last_sync_completed_at"])
	})
}

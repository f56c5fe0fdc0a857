package invoicing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-manager-api/infrastructure/repository"
	"github.com/vfg2006/invoice-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// TestMarkPaid cobre as guardas de estado do pagamento
func TestMarkPaid(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(invoiceRepo *mocks.MockInvoiceRepository)
		expectedErr error
	}{
		{
			name: "fatura enviada é marcada como paga",
			setup: func(invoiceRepo *mocks.MockInvoiceRepository) {
				invoiceRepo.EXPECT().GetInvoiceByID(int64(1)).Return(&domain.Invoice{
					ID:     1,
					Status: domain.InvoiceStatusSent,
				}, nil)
				invoiceRepo.EXPECT().MarkPaid(int64(1), gomock.Any()).Return(nil)
			},
		},
		{
			name: "fatura já paga é rejeitada",
			setup: func(invoiceRepo *mocks.MockInvoiceRepository) {
				invoiceRepo.EXPECT().GetInvoiceByID(int64(1)).Return(&domain.Invoice{
					ID:     1,
					Status: domain.InvoiceStatusPaid,
					IsPaid: true,
				}, nil)
			},
			expectedErr: ErrInvoiceNotPayable,
		},
		{
			name: "fatura retificada é rejeitada",
			setup: func(invoiceRepo *mocks.MockInvoiceRepository) {
				invoiceRepo.EXPECT().GetInvoiceByID(int64(1)).Return(&domain.Invoice{
					ID:          1,
					Status:      domain.InvoiceStatusRectified,
					IsRectified: true,
				}, nil)
			},
			expectedErr: ErrInvoiceNotPayable,
		},
		{
			name: "fatura inexistente",
			setup: func(invoiceRepo *mocks.MockInvoiceRepository) {
				invoiceRepo.EXPECT().GetInvoiceByID(int64(1)).Return(nil, nil)
			},
			expectedErr: ErrInvoiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
			tt.setup(invoiceRepo)

			service := NewService(invoiceRepo, mocks.NewMockRevenueSnapshotRepository(ctrl))
			view, err := service.MarkPaid(1)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, view)
				return
			}

			assert.NoError(t, err)
			assert.True(t, view.Invoice.IsPaid)
			assert.NotNil(t, view.Invoice.PaidAt)
			assert.Equal(t, domain.InvoiceStatusPaid, view.Invoice.Status)
			assert.False(t, view.Actions.CanMarkPaid)
		})
	}
}

// TestRectify valida a emissão da fatura de retificação
func TestRectify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	original := &domain.Invoice{
		ID:            7,
		InvoiceNumber: "2024-042",
		CustomerID:    "cus001",
		Total:         1250.50,
		Status:        domain.InvoiceStatusPaid,
		IsPaid:        true,
	}

	invoiceRepo.EXPECT().GetInvoiceByID(int64(7)).Return(original, nil)
	invoiceRepo.EXPECT().
		CreateRectification(gomock.Any(), original, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Invoice, rectification *domain.Invoice) (*domain.Invoice, error) {
			assert.Equal(t, "2024-042-R", rectification.InvoiceNumber)
			assert.Equal(t, -1250.50, rectification.Total)
			assert.Equal(t, domain.InvoiceStatusSent, rectification.Status)
			assert.Equal(t, int64(7), *rectification.Rectifies)

			rectification.ID = 8
			return rectification, nil
		})

	service := NewService(invoiceRepo, mocks.NewMockRevenueSnapshotRepository(ctrl))
	view, err := service.Rectify(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(8), view.Invoice.ID)
	// A retificação em si não admite pagamento nem nova retificação
	assert.False(t, view.Actions.CanMarkPaid)
	assert.False(t, view.Actions.CanRectify)
}

// TestRectify_JaRetificada rejeita retificar duas vezes
func TestRectify_JaRetificada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	invoiceRepo.EXPECT().GetInvoiceByID(int64(3)).Return(&domain.Invoice{
		ID:          3,
		Status:      domain.InvoiceStatusRectified,
		IsRectified: true,
	}, nil)

	service := NewService(invoiceRepo, mocks.NewMockRevenueSnapshotRepository(ctrl))
	view, err := service.Rectify(context.Background(), 3)

	assert.ErrorIs(t, err, ErrInvoiceNotRectifiable)
	assert.Nil(t, view)
}

// TestDelete cobre a exclusão e a guarda de dependência
func TestDelete(t *testing.T) {
	t.Run("fatura sem vínculos é excluída", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		invoiceRepo.EXPECT().GetInvoiceByID(int64(1)).Return(&domain.Invoice{
			ID:     1,
			Status: domain.InvoiceStatusDraft,
		}, nil)
		invoiceRepo.EXPECT().DeleteInvoice(int64(1)).Return(nil)

		service := NewService(invoiceRepo, mocks.NewMockRevenueSnapshotRepository(ctrl))
		assert.NoError(t, service.Delete(1))
	})

	t.Run("fatura retificada não pode ser excluída", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rectifiedBy := int64(9)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		invoiceRepo.EXPECT().GetInvoiceByID(int64(2)).Return(&domain.Invoice{
			ID:          2,
			Status:      domain.InvoiceStatusRectified,
			IsRectified: true,
			RectifiedBy: &rectifiedBy,
		}, nil)

		service := NewService(invoiceRepo, mocks.NewMockRevenueSnapshotRepository(ctrl))
		assert.ErrorIs(t, service.Delete(2), ErrInvoiceNotDeletable)
	})

	t.Run("guarda do repositório é traduzida para o erro do domínio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		invoiceRepo.EXPECT().GetInvoiceByID(int64(4)).Return(&domain.Invoice{
			ID:     4,
			Status: domain.InvoiceStatusSent,
		}, nil)
		invoiceRepo.EXPECT().DeleteInvoice(int64(4)).Return(repository.ErrHasDependentRectification)

		service := NewService(invoiceRepo, mocks.NewMockRevenueSnapshotRepository(ctrl))
		assert.ErrorIs(t, service.Delete(4), ErrHasRectification)
	})
}

// TestListInvoiceViews aplica a projeção sobre cada fatura listada
func TestListInvoiceViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rectifiedBy := int64(2)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	invoiceRepo.EXPECT().ListInvoices(nil).Return([]*domain.Invoice{
		{ID: 1, Status: domain.InvoiceStatusRectified, IsRectified: true, RectifiedBy: &rectifiedBy},
		{ID: 2, Status: domain.InvoiceStatusSent, Rectifies: &rectifiedBy},
	}, nil)

	service := NewService(invoiceRepo, mocks.NewMockRevenueSnapshotRepository(ctrl))
	views, err := service.ListInvoiceViews(nil)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "Rectified (by #2)", views[0].DisplayStatus)
	assert.Equal(t, "SENT", views[1].DisplayStatus)
}

// TestGetRevenueMetrics cobre a leitura da fotografia sincronizada e o
// cálculo direto quando ela não existe
func TestGetRevenueMetrics(t *testing.T) {
	t.Run("fotografia existente é servida sem consultar as faturas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		snapshotRepo := mocks.NewMockRevenueSnapshotRepository(ctrl)
		snapshotRepo.EXPECT().GetByYear(2024).Return(&domain.RevenueSnapshot{
			Year: 2024,
			Metrics: &domain.RevenueMetrics{
				Year:            2024,
				TotalYTD:        3000,
				AverageMonthly:  500,
				ProjectedAnnual: 6000,
			},
		}, nil)

		service := NewService(invoiceRepo, snapshotRepo)
		metrics, err := service.GetRevenueMetrics(2024)

		assert.NoError(t, err)
		assert.Equal(t, 3000.0, metrics.TotalYTD)
		assert.Equal(t, 6000.0, metrics.ProjectedAnnual)
	})

	t.Run("sem fotografia as métricas são calculadas das faturas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		year := 2020
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		snapshotRepo := mocks.NewMockRevenueSnapshotRepository(ctrl)
		snapshotRepo.EXPECT().GetByYear(year).Return(nil, nil)
		invoiceRepo.EXPECT().ListInvoices(&year).Return([]*domain.Invoice{
			{ID: 1, Total: 1200, IssueDate: time.Date(2020, time.March, 10, 0, 0, 0, 0, time.UTC)},
		}, nil)

		service := NewService(invoiceRepo, snapshotRepo)
		metrics, err := service.GetRevenueMetrics(year)

		assert.NoError(t, err)
		assert.Equal(t, 1200.0, metrics.TotalYTD)
		assert.Equal(t, 100.0, metrics.AverageMonthly)
	})

	t.Run("falha ao ler a fotografia cai para o cálculo direto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		year := 2020
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		snapshotRepo := mocks.NewMockRevenueSnapshotRepository(ctrl)
		snapshotRepo.EXPECT().GetByYear(year).Return(nil, errors.New("connection refused"))
		invoiceRepo.EXPECT().ListInvoices(&year).Return([]*domain.Invoice{}, nil)

		service := NewService(invoiceRepo, snapshotRepo)
		metrics, err := service.GetRevenueMetrics(year)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, metrics.TotalYTD)
	})
}

package invoicing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

func int64Ptr(i int64) *int64 {
	return &i
}

// TestProjectInvoice cobre a máquina de estados das ações por fatura
func TestProjectInvoice(t *testing.T) {
	tests := []struct {
		name            string
		invoice         *domain.Invoice
		expectedStatus  string
		expectedActions domain.InvoiceActions
	}{
		{
			name:           "fatura enviada permite pagar, retificar e excluir",
			invoice:        &domain.Invoice{ID: 1, Status: domain.InvoiceStatusSent},
			expectedStatus: "SENT",
			expectedActions: domain.InvoiceActions{
				CanMarkPaid: true,
				CanDownload: true,
				CanRectify:  true,
				CanDelete:   true,
			},
		},
		{
			name:           "fatura paga não pode ser paga de novo",
			invoice:        &domain.Invoice{ID: 2, Status: domain.InvoiceStatusPaid, IsPaid: true},
			expectedStatus: "PAID",
			expectedActions: domain.InvoiceActions{
				CanMarkPaid: false,
				CanDownload: true,
				CanRectify:  true,
				CanDelete:   true,
			},
		},
		{
			name: "fatura retificada é terminal para pagar e retificar",
			invoice: &domain.Invoice{
				ID:          3,
				Status:      domain.InvoiceStatusRectified,
				IsRectified: true,
				RectifiedBy: int64Ptr(9),
			},
			expectedStatus: "Rectified (by #9)",
			expectedActions: domain.InvoiceActions{
				CanMarkPaid: false,
				CanDownload: true,
				CanRectify:  false,
				CanDelete:   false,
			},
		},
		{
			name: "divergência entre flag e status ainda é tratada como retificada",
			invoice: &domain.Invoice{
				ID:          4,
				Status:      domain.InvoiceStatusSent,
				IsRectified: true,
				RectifiedBy: int64Ptr(5),
			},
			expectedStatus: "Rectified (by #5)",
			expectedActions: domain.InvoiceActions{
				CanMarkPaid: false,
				CanDownload: true,
				CanRectify:  false,
				CanDelete:   false,
			},
		},
		{
			name: "retificação não pode ser paga nem retificada, mas pode ser excluída",
			invoice: &domain.Invoice{
				ID:        5,
				Status:    domain.InvoiceStatusSent,
				Rectifies: int64Ptr(3),
			},
			expectedStatus: "SENT",
			expectedActions: domain.InvoiceActions{
				CanMarkPaid: false,
				CanDownload: true,
				CanRectify:  false,
				CanDelete:   true,
			},
		},
		{
			name:           "rascunho permite todas as ações mutáveis",
			invoice:        &domain.Invoice{ID: 6, Status: domain.InvoiceStatusDraft},
			expectedStatus: "DRAFT",
			expectedActions: domain.InvoiceActions{
				CanMarkPaid: true,
				CanDownload: true,
				CanRectify:  true,
				CanDelete:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ProjectInvoice(tt.invoice)

			assert.Equal(t, tt.expectedStatus, view.DisplayStatus)
			assert.Equal(t, tt.expectedActions, view.Actions)
			assert.Same(t, tt.invoice, view.Invoice)
		})
	}
}

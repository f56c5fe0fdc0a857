package invoicing

import (
	"context"

	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

// Invoicer define a interface do ciclo de vida das faturas
type Invoicer interface {
	// ListInvoiceViews retorna as faturas com status de exibição e ações
	// válidas, opcionalmente filtradas por ano
	ListInvoiceViews(year *int) ([]*domain.InvoiceView, error)

	// MarkPaid marca uma fatura como paga quando o estado atual permite
	MarkPaid(invoiceID int64) (*domain.InvoiceView, error)

	// Rectify emite a fatura de retificação e marca a original como retificada
	Rectify(ctx context.Context, invoiceID int64) (*domain.InvoiceView, error)

	// Delete exclui uma fatura sem retificação dependente
	Delete(invoiceID int64) error

	// GetRevenueMetrics retorna o faturamento do ano informado, servido da
	// fotografia sincronizada quando disponível
	GetRevenueMetrics(year int) (*domain.RevenueMetrics, error)
}

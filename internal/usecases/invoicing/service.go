package invoicing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-manager-api/infrastructure/repository"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

// Service implementa a interface Invoicer
type Service struct {
	invoiceRepository  repository.InvoiceRepository
	snapshotRepository repository.RevenueSnapshotRepository
	now                func() time.Time
}

// NewService cria uma nova instância do serviço de faturas
func NewService(
	invoiceRepo repository.InvoiceRepository,
	snapshotRepo repository.RevenueSnapshotRepository,
) Invoicer {
	return &Service{
		invoiceRepository:  invoiceRepo,
		snapshotRepository: snapshotRepo,
		now:                time.Now,
	}
}

// ListInvoiceViews retorna as faturas com a projeção de exibição aplicada
func (s *Service) ListInvoiceViews(year *int) ([]*domain.InvoiceView, error) {
	invoices, err := s.invoiceRepository.ListInvoices(year)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar faturas: %w", err)
	}

	views := make([]*domain.InvoiceView, 0, len(invoices))
	for _, invoice := range invoices {
		views = append(views, ProjectInvoice(invoice))
	}

	return views, nil
}

func (s *Service) getInvoice(invoiceID int64) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepository.GetInvoiceByID(invoiceID)
	if err != nil {
		logrus.WithError(err).WithField("invoice_id", invoiceID).Error("Erro ao buscar fatura no repositório")
		return nil, err
	}

	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return invoice, nil
}

// MarkPaid marca a fatura como paga. Faturas retificadas, retificações e
// faturas já pagas são rejeitadas
func (s *Service) MarkPaid(invoiceID int64) (*domain.InvoiceView, error) {
	invoice, err := s.getInvoice(invoiceID)
	if err != nil {
		return nil, err
	}

	if !ProjectInvoice(invoice).Actions.CanMarkPaid {
		return nil, ErrInvoiceNotPayable
	}

	paidAt := s.now()
	if err := s.invoiceRepository.MarkPaid(invoiceID, paidAt); err != nil {
		return nil, fmt.Errorf("erro ao marcar fatura como paga: %w", err)
	}

	invoice.IsPaid = true
	invoice.PaidAt = &paidAt
	invoice.Status = domain.InvoiceStatusPaid

	return ProjectInvoice(invoice), nil
}

// Rectify emite a fatura de retificação com o total invertido e marca a
// original como retificada
func (s *Service) Rectify(ctx context.Context, invoiceID int64) (*domain.InvoiceView, error) {
	original, err := s.getInvoice(invoiceID)
	if err != nil {
		return nil, err
	}

	if !ProjectInvoice(original).Actions.CanRectify {
		return nil, ErrInvoiceNotRectifiable
	}

	rectification := &domain.Invoice{
		InvoiceNumber: original.InvoiceNumber + "-R",
		CustomerID:    original.CustomerID,
		CustomerName:  original.CustomerName,
		IssueDate:     s.now(),
		Total:         -original.Total,
		Status:        domain.InvoiceStatusSent,
		Rectifies:     &original.ID,
	}

	rectification, err = s.invoiceRepository.CreateRectification(ctx, original, rectification)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar retificação: %w", err)
	}

	return ProjectInvoice(rectification), nil
}

// Delete exclui a fatura quando o estado atual permite
func (s *Service) Delete(invoiceID int64) error {
	invoice, err := s.getInvoice(invoiceID)
	if err != nil {
		return err
	}

	if !ProjectInvoice(invoice).Actions.CanDelete {
		return ErrInvoiceNotDeletable
	}

	if err := s.invoiceRepository.DeleteInvoice(invoiceID); err != nil {
		if errors.Is(err, repository.ErrHasDependentRectification) {
			return ErrHasRectification
		}
		return fmt.Errorf("erro ao excluir fatura: %w", err)
	}

	return nil
}

// GetRevenueMetrics retorna o faturamento do ano informado. A fotografia
// persistida pelo agendador de sincronização é usada quando existe; sem
// fotografia as métricas são calculadas diretamente das faturas
func (s *Service) GetRevenueMetrics(year int) (*domain.RevenueMetrics, error) {
	snapshot, err := s.snapshotRepository.GetByYear(year)
	if err != nil {
		logrus.WithError(err).WithField("year", year).Error("Erro ao buscar snapshot de faturamento")
	}

	if snapshot != nil && snapshot.Metrics != nil {
		return snapshot.Metrics, nil
	}

	invoices, err := s.invoiceRepository.ListInvoices(&year)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar faturas do ano: %w", err)
	}

	return ComputeRevenueMetrics(invoices, year, s.now()), nil
}

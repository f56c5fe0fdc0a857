package reporting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-manager-api/infrastructure/repository"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/timesheeting"
)

// Service implementa a interface Reporter
type Service struct {
	customerRepository  repository.CustomerRepository
	timeEntryRepository repository.TimeEntryRepository
	invoiceRepository   repository.InvoiceRepository
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	customerRepo repository.CustomerRepository,
	timeEntryRepo repository.TimeEntryRepository,
	invoiceRepo repository.InvoiceRepository,
) Reporter {
	return &Service{
		customerRepository:  customerRepo,
		timeEntryRepository: timeEntryRepo,
		invoiceRepository:   invoiceRepo,
	}
}

// loadIndexes reconstrói os índices de horas de todos os clientes ativos. A
// ordem dos clientes no repositório define a ordem das colunas dos relatórios
func (s *Service) loadIndexes() ([]*domain.CustomerTimeIndex, error) {
	customers, err := s.customerRepository.ListCustomers([]domain.CustomerStatus{domain.CustomerStatusActive})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}

	indexes := make([]*domain.CustomerTimeIndex, 0, len(customers))
	for _, customer := range customers {
		entries, err := s.timeEntryRepository.ListByCustomer(customer.ID)
		if err != nil {
			logrus.WithError(err).WithField("customer_id", customer.ID).Error("Erro ao listar apontamentos do cliente")
			return nil, err
		}

		indexes = append(indexes, timesheeting.BuildCustomerTimeIndex(customer.Name, entries))
	}

	return indexes, nil
}

// GetTimeChart monta a série de horas por cliente no modo mensal ou diário
func (s *Service) GetTimeChart(mode domain.TimeChartMode, year int, month time.Month) (*domain.TimeChartData, error) {
	indexes, err := s.loadIndexes()
	if err != nil {
		return nil, err
	}

	return PrepareTimeChartData(indexes, mode, year, month), nil
}

// GetROIRanking retorna o ranking de retorno por hora trabalhada
func (s *Service) GetROIRanking(year *int) ([]*domain.RoiItem, error) {
	indexes, err := s.loadIndexes()
	if err != nil {
		return nil, err
	}

	if year == nil {
		return ComputeROI(indexes), nil
	}

	totals, err := s.invoiceRepository.TotalsByCustomerForYear(*year)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar faturamento por cliente: %w", err)
	}

	return ComputeInvoiceBasedROI(totals, indexes, *year), nil
}

// GetAvailablePeriods retorna os anos e meses com horas registradas
func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	indexes, err := s.loadIndexes()
	if err != nil {
		return nil, err
	}

	return ComputeAvailablePeriods(indexes), nil
}

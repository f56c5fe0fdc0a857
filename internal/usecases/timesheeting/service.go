package timesheeting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-manager-api/infrastructure/repository"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"github.com/vfg2006/invoice-manager-api/pkg/utils"
)

// Service implementa a interface Timesheeter
type Service struct {
	customerRepository  repository.CustomerRepository
	timeEntryRepository repository.TimeEntryRepository
}

// NewService cria uma nova instância do serviço de apontamentos
func NewService(
	customerRepo repository.CustomerRepository,
	timeEntryRepo repository.TimeEntryRepository,
) Timesheeter {
	return &Service{
		customerRepository:  customerRepo,
		timeEntryRepository: timeEntryRepo,
	}
}

// ApplyBulkText interpreta o texto do mês e sincroniza os apontamentos do
// cliente: linhas vazias removem o registro do dia, as demais gravam ou
// atualizam
func (s *Service) ApplyBulkText(ctx context.Context, customerID string, year int, month time.Month, text string) ([]*domain.TimeEntry, error) {
	customer, err := s.customerRepository.GetCustomerByID(customerID)
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).Error("Erro ao buscar cliente no repositório")
		return nil, err
	}

	if customer == nil {
		return nil, fmt.Errorf("cliente não encontrado: %s", customerID)
	}

	results := ParseMonth(text, year, month)

	saved := make([]*domain.TimeEntry, 0, len(results))
	for _, result := range results {
		if result.Parsed.IsEmpty {
			if err := s.timeEntryRepository.DeleteByCustomerAndDate(customerID, result.Date); err != nil {
				return nil, fmt.Errorf("erro ao remover apontamento do dia %s: %w", result.Date.Format(dayKeyLayout), err)
			}
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do apontamento: %w", err)
		}

		entry := &domain.TimeEntry{
			ID:           id,
			CustomerID:   customerID,
			Date:         result.Date,
			Start:        result.Parsed.Start,
			End:          result.Parsed.End,
			PauseMinutes: result.Parsed.PauseMinutes,
			Notes:        result.Parsed.Notes,
		}

		if err := s.timeEntryRepository.Upsert(entry); err != nil {
			return nil, fmt.Errorf("erro ao gravar apontamento do dia %s: %w", result.Date.Format(dayKeyLayout), err)
		}

		saved = append(saved, entry)
	}

	return saved, nil
}

// ListEntries retorna todos os apontamentos de um cliente
func (s *Service) ListEntries(customerID string) ([]*domain.TimeEntry, error) {
	entries, err := s.timeEntryRepository.ListByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar apontamentos: %w", err)
	}

	return entries, nil
}

// ListMonthEntries retorna os apontamentos de um cliente em um mês específico
func (s *Service) ListMonthEntries(customerID string, year int, month time.Month) ([]*domain.TimeEntry, error) {
	entries, err := s.timeEntryRepository.ListByCustomerAndMonth(customerID, year, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar apontamentos do mês: %w", err)
	}

	return entries, nil
}

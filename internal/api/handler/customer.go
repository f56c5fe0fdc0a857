package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-manager-api/infrastructure/repository"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"github.com/vfg2006/invoice-manager-api/internal/usecases/timesheeting"
	"github.com/vfg2006/invoice-manager-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-manager-api/pkg/utils"
)

// ListCustomers lista os clientes cadastrados. O parâmetro status filtra por
// ACTIVE ou ARCHIVED; sem o parâmetro, retorna todos
func ListCustomers(customerRepo repository.CustomerRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var statuses []domain.CustomerStatus
		if status := r.URL.Query().Get("status"); status != "" {
			switch domain.CustomerStatus(status) {
			case domain.CustomerStatusActive, domain.CustomerStatusArchived:
				statuses = append(statuses, domain.CustomerStatus(status))
			default:
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de cliente inválido", nil)
				return
			}
		}

		customers, err := customerRepo.ListCustomers(statuses)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customers); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateCustomer cria um novo cliente
func CreateCustomer(customerRepo repository.CustomerRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório", nil)
			return
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador", nil)
			return
		}

		customer := &domain.Customer{
			ID:         id,
			Name:       req.Name,
			Email:      req.Email,
			HourlyRate: req.HourlyRate,
			Status:     domain.CustomerStatusActive,
		}

		if err := customerRepo.CreateCustomer(customer); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar cliente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(customer); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetCustomerEntries retorna os apontamentos de um cliente. Com os parâmetros
// year e month, retorna apenas o mês informado
func GetCustomerEntries(service timesheeting.Timesheeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		yearStr := r.URL.Query().Get("year")
		monthStr := r.URL.Query().Get("month")

		var entries []*domain.TimeEntry
		var err error

		if yearStr != "" || monthStr != "" {
			year, convErr := strconv.Atoi(yearStr)
			if convErr != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			month, convErr := strconv.Atoi(monthStr)
			if convErr != nil || month < 1 || month > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", nil)
				return
			}
			entries, err = service.ListMonthEntries(customerID, year, time.Month(month))
		} else {
			entries, err = service.ListEntries(customerID)
		}

		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar apontamentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

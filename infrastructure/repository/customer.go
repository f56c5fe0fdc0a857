package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/invoice-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

const (
	customersTable = "customers"
)

//go:generate mockgen -source=customer.go -destination=mocks/customer_mock.go -package=mocks

type CustomerRepository interface {
	ListCustomers(statuses []domain.CustomerStatus) ([]*domain.Customer, error)
	GetCustomerByID(customerID string) (*domain.Customer, error)
	CreateCustomer(customer *domain.Customer) error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

// ListCustomers retorna os clientes nos status informados, ordenados por nome.
// A ordenação define a ordem das colunas nos gráficos e relatórios
func (r *customerRepository) ListCustomers(statuses []domain.CustomerStatus) ([]*domain.Customer, error) {
	queryBuilder := squirrel.
		Select("id", "name", "email", "hourly_rate", "status", "created_at", "updated_at").
		From(customersTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer := &domain.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.HourlyRate,
			&customer.Status,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) GetCustomerByID(customerID string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "hourly_rate", "status", "created_at", "updated_at").
		From(customersTable).
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer := &domain.Customer{}
	err = r.conn.QueryRow(query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.HourlyRate,
		&customer.Status,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) CreateCustomer(customer *domain.Customer) error {
	query, args, err := squirrel.
		Insert(customersTable).
		Columns("id", "name", "email", "hourly_rate", "status").
		Values(customer.ID, customer.Name, customer.Email, customer.HourlyRate, customer.Status).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

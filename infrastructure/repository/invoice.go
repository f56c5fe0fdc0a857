package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/invoice-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

const (
	invoicesTable = "invoices i"
)

// ErrHasDependentRectification indica a tentativa de excluir uma fatura que é
// referenciada por uma retificação. Excluir a original deixaria a retificação
// órfã
var ErrHasDependentRectification = errors.New("fatura possui retificação dependente")

//go:generate mockgen -source=invoice.go -destination=mocks/invoice_mock.go -package=mocks

type InvoiceRepository interface {
	ListInvoices(year *int) ([]*domain.Invoice, error)
	GetInvoiceByID(invoiceID int64) (*domain.Invoice, error)
	TotalsByCustomerForYear(year int) (map[string]float64, error)
	MarkPaid(invoiceID int64, paidAt time.Time) error
	CreateRectification(ctx context.Context, original *domain.Invoice, rectification *domain.Invoice) (*domain.Invoice, error)
	DeleteInvoice(invoiceID int64) error
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) ListInvoices(year *int) ([]*domain.Invoice, error) {
	queryBuilder := squirrel.
		Select("i.id, i.invoice_number, i.customer_id, c.name, i.issue_date, i.total, i.status, i.is_paid, i.paid_at, i.is_rectified, i.rectified_by, i.rectifies, i.created_at, i.updated_at").
		From(invoicesTable).
		Join("customers c ON c.id = i.customer_id").
		OrderBy("i.issue_date ASC, i.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if year != nil {
		queryBuilder = queryBuilder.Where(squirrel.Expr("DATE_PART('year', i.issue_date) = ?", *year))
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

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		invoice, err := scanInvoiceRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) GetInvoiceByID(invoiceID int64) (*domain.Invoice, error) {
	query, args, err := squirrel.
		Select("i.id, i.invoice_number, i.customer_id, c.name, i.issue_date, i.total, i.status, i.is_paid, i.paid_at, i.is_rectified, i.rectified_by, i.rectifies, i.created_at, i.updated_at").
		From(invoicesTable).
		Join("customers c ON c.id = i.customer_id").
		Where(squirrel.Eq{"i.id": invoiceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	invoice := &domain.Invoice{}
	err = r.conn.QueryRow(query, args...).Scan(
		&invoice.ID,
		&invoice.InvoiceNumber,
		&invoice.CustomerID,
		&invoice.CustomerName,
		&invoice.IssueDate,
		&invoice.Total,
		&invoice.Status,
		&invoice.IsPaid,
		&invoice.PaidAt,
		&invoice.IsRectified,
		&invoice.RectifiedBy,
		&invoice.Rectifies,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
	}

	return invoice, nil
}

// TotalsByCustomerForYear soma os totais faturados por cliente em um ano,
// incluindo retificações (que podem ser negativas)
func (r *invoiceRepository) TotalsByCustomerForYear(year int) (map[string]float64, error) {
	query, args, err := squirrel.
		Select("c.name, COALESCE(SUM(i.total), 0)").
		From(invoicesTable).
		Join("customers c ON c.id = i.customer_id").
		Where(squirrel.Expr("DATE_PART('year', i.issue_date) = ?", year)).
		GroupBy("c.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var name string
		var total float64
		if err := rows.Scan(&name, &total); err != nil {
			return nil, fmt.Errorf("erro ao escanear total por cliente: %w", err)
		}
		totals[name] = total
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *invoiceRepository) MarkPaid(invoiceID int64, paidAt time.Time) error {
	query, args, err := squirrel.
		Update("invoices").
		Set("is_paid", true).
		Set("paid_at", paidAt).
		Set("status", domain.InvoiceStatusPaid).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": invoiceID}).
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

// CreateRectification insere a fatura de retificação e marca a original como
// retificada na mesma transação
func (r *invoiceRepository) CreateRectification(ctx context.Context, original *domain.Invoice, rectification *domain.Invoice) (*domain.Invoice, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		insertSQL, insertArgs, err := squirrel.
			Insert("invoices").
			Columns("invoice_number", "customer_id", "issue_date", "total", "status", "rectifies").
			Values(
				rectification.InvoiceNumber,
				rectification.CustomerID,
				rectification.IssueDate,
				rectification.Total,
				rectification.Status,
				rectification.Rectifies,
			).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRow(insertSQL, insertArgs...).Scan(&rectification.ID); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao inserir retificação: %w", err)
		}

		updateSQL, updateArgs, err := squirrel.
			Update("invoices").
			Set("status", domain.InvoiceStatusRectified).
			Set("is_rectified", true).
			Set("rectified_by", rectification.ID).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": original.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(updateSQL, updateArgs...); err != nil {
			return fmt.Errorf("erro ao marcar fatura original como retificada: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rectification, nil
}

// DeleteInvoice remove a fatura, rejeitando a operação quando existe uma
// retificação dependente
func (r *invoiceRepository) DeleteInvoice(invoiceID int64) error {
	// Verificar se alguma retificação referencia esta fatura
	checkSQL, checkArgs, err := squirrel.
		Select("COUNT(1)").
		From("invoices").
		Where(squirrel.Eq{"rectifies": invoiceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var dependents int
	if err := r.conn.QueryRow(checkSQL, checkArgs...).Scan(&dependents); err != nil {
		return fmt.Errorf("erro ao verificar retificações dependentes: %w", err)
	}

	if dependents > 0 {
		return ErrHasDependentRectification
	}

	deleteSQL, deleteArgs, err := squirrel.
		Delete("invoices").
		Where(squirrel.Eq{"id": invoiceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanInvoiceRows(rows *sql.Rows) (*domain.Invoice, error) {
	invoice := &domain.Invoice{}
	err := rows.Scan(
		&invoice.ID,
		&invoice.InvoiceNumber,
		&invoice.CustomerID,
		&invoice.CustomerName,
		&invoice.IssueDate,
		&invoice.Total,
		&invoice.Status,
		&invoice.IsPaid,
		&invoice.PaidAt,
		&invoice.IsRectified,
		&invoice.RectifiedBy,
		&invoice.Rectifies,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

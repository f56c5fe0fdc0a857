package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/invoice-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

const (
	timeEntriesTable = "time_entries"
)

//go:generate mockgen -source=time_entry.go -destination=mocks/time_entry_mock.go -package=mocks

type TimeEntryRepository interface {
	ListByCustomer(customerID string) ([]*domain.TimeEntry, error)
	ListByCustomerAndMonth(customerID string, year int, month time.Month) ([]*domain.TimeEntry, error)
	Upsert(entry *domain.TimeEntry) error
	DeleteByCustomerAndDate(customerID string, date time.Time) error
}

type timeEntryRepository struct {
	conn *postgres.Connection
}

func NewTimeEntryRepository(conn *postgres.Connection) TimeEntryRepository {
	return &timeEntryRepository{
		conn: conn,
	}
}

func (r *timeEntryRepository) ListByCustomer(customerID string) ([]*domain.TimeEntry, error) {
	queryBuilder := squirrel.
		Select("id", "customer_id", "entry_date", "start_time", "end_time", "pause_minutes", "notes", "created_at", "updated_at").
		From(timeEntriesTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("entry_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryEntries(queryBuilder)
}

func (r *timeEntryRepository) ListByCustomerAndMonth(customerID string, year int, month time.Month) ([]*domain.TimeEntry, error) {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := firstDay.AddDate(0, 1, 0)

	queryBuilder := squirrel.
		Select("id", "customer_id", "entry_date", "start_time", "end_time", "pause_minutes", "notes", "created_at", "updated_at").
		From(timeEntriesTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.GtOrEq{"entry_date": firstDay}).
		Where(squirrel.Lt{"entry_date": nextMonth}).
		OrderBy("entry_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryEntries(queryBuilder)
}

func (r *timeEntryRepository) queryEntries(queryBuilder squirrel.SelectBuilder) ([]*domain.TimeEntry, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.TimeEntry, 0)
	for rows.Next() {
		entry := &domain.TimeEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.CustomerID,
			&entry.Date,
			&entry.Start,
			&entry.End,
			&entry.PauseMinutes,
			&entry.Notes,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada de horas: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// Upsert insere ou atualiza a entrada do dia. Cada cliente tem no máximo uma
// entrada por data (constraint UNIQUE em customer_id + entry_date)
func (r *timeEntryRepository) Upsert(entry *domain.TimeEntry) error {
	query := squirrel.StatementBuilder.
		Insert(timeEntriesTable).
		Columns("id", "customer_id", "entry_date", "start_time", "end_time", "pause_minutes", "notes").
		Values(
			entry.ID,
			entry.CustomerID,
			entry.Date,
			entry.Start,
			entry.End,
			entry.PauseMinutes,
			entry.Notes,
		).
		Suffix(`
			ON CONFLICT (customer_id, entry_date) DO UPDATE SET
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				pause_minutes = EXCLUDED.pause_minutes,
				notes = EXCLUDED.notes,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *timeEntryRepository) DeleteByCustomerAndDate(customerID string, date time.Time) error {
	query := squirrel.Delete(timeEntriesTable).
		Where(squirrel.Eq{"customer_id": customerID, "entry_date": date}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

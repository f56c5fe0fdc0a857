package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/invoice-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

const (
	revenueSnapshotsTable = "revenue_snapshots rs"
)

//go:generate mockgen -source=revenue_snapshot.go -destination=mocks/revenue_snapshot_mock.go -package=mocks

type RevenueSnapshotRepository interface {
	GetByYear(year int) (*domain.RevenueSnapshot, error)
	SaveOrUpdate(snapshot *domain.RevenueSnapshot) error
}

type revenueSnapshotRepository struct {
	conn *postgres.Connection
}

func NewRevenueSnapshotRepository(conn *postgres.Connection) RevenueSnapshotRepository {
	return &revenueSnapshotRepository{
		conn: conn,
	}
}

func (r *revenueSnapshotRepository) GetByYear(year int) (*domain.RevenueSnapshot, error) {
	query, args, err := squirrel.
		Select("rs.id, rs.year, rs.metrics, rs.customer_totals, rs.created_at, rs.updated_at").
		From(revenueSnapshotsTable).
		Where(squirrel.Eq{"rs.year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.RevenueSnapshot{}
	var metricsJSON []byte
	var totalsJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.Year,
		&metricsJSON,
		&totalsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de faturamento: %w", err)
	}

	if metricsJSON != nil {
		metrics := &domain.RevenueMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
		snapshot.Metrics = metrics
	}

	if totalsJSON != nil {
		totals := make(map[string]float64)
		if err := json.Unmarshal(totalsJSON, &totals); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de customer_totals: %w", err)
		}
		snapshot.PerCustomerTotals = totals
	}

	return snapshot, nil
}

func (r *revenueSnapshotRepository) SaveOrUpdate(snapshot *domain.RevenueSnapshot) error {
	var metricsJSON []byte
	var totalsJSON []byte
	var err error

	if snapshot.Metrics != nil {
		metricsJSON, err = json.Marshal(snapshot.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar Metrics para JSON: %w", err)
		}
	}

	if snapshot.PerCustomerTotals != nil {
		totalsJSON, err = json.Marshal(snapshot.PerCustomerTotals)
		if err != nil {
			return fmt.Errorf("erro ao serializar PerCustomerTotals para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("revenue_snapshots").
		Columns("year", "metrics", "customer_totals").
		Values(
			snapshot.Year,
			metricsJSON,
			totalsJSON,
		).
		Suffix(`
			ON CONFLICT (year) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				customer_totals = EXCLUDED.customer_totals,
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

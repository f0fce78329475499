package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"laafitech/internal/domain"
	"laafitech/internal/infra"
	"laafitech/internal/sqlinline"
)

// ImpactMetricRepositoryPG implements domain.ImpactMetricRepository.
type ImpactMetricRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewImpactMetricRepository(sql infra.SQLExecutor) *ImpactMetricRepositoryPG {
	return &ImpactMetricRepositoryPG{sql: sql}
}

// Create stores a metric; domain.ErrNotFound means the campaign is missing.
func (r *ImpactMetricRepositoryPG) Create(ctx context.Context, input domain.ImpactMetricCreate) (*domain.ImpactMetric, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertImpactMetric,
		input.CampaignID,
		input.MetricType,
		input.Value,
		input.Unit,
		input.Verified,
		input.VerificationSource,
		input.RecordedDate,
	)
	return scanImpactMetric(row)
}

func (r *ImpactMetricRepositoryPG) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.ImpactMetric, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListImpactMetrics, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.ImpactMetric{}
	for rows.Next() {
		m, err := scanImpactMetric(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanImpactMetric(row pgx.Row) (*domain.ImpactMetric, error) {
	var m domain.ImpactMetric
	if err := row.Scan(
		&m.ID,
		&m.CampaignID,
		&m.MetricType,
		&m.Value,
		&m.Unit,
		&m.Verified,
		&m.VerificationSource,
		&m.RecordedDate,
		&m.CreatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

package repo

import (
	"context"

	"laafitech/internal/domain"
	"laafitech/internal/infra"
	"laafitech/internal/sqlinline"
)

// AnalyticsRepositoryPG implements domain.AnalyticsRepository using PostgreSQL.
// Each method issues one independent query so callers can run them concurrently.
type AnalyticsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewAnalyticsRepository constructs the repository.
func NewAnalyticsRepository(sql infra.SQLExecutor) *AnalyticsRepositoryPG {
	return &AnalyticsRepositoryPG{sql: sql}
}

func (r *AnalyticsRepositoryPG) CountCommunities(ctx context.Context) (int, error) {
	return r.scalarInt(ctx, sqlinline.QCountCommunities)
}

func (r *AnalyticsRepositoryPG) CountActiveCampaigns(ctx context.Context) (int, error) {
	return r.scalarInt(ctx, sqlinline.QCountActiveCampaigns)
}

// TotalFunding sums completed donations.
func (r *AnalyticsRepositoryPG) TotalFunding(ctx context.Context) (float64, error) {
	return r.scalarFloat(ctx, sqlinline.QTotalFunding)
}

// SumImpactMetric totals every recorded value of one metric type.
func (r *AnalyticsRepositoryPG) SumImpactMetric(ctx context.Context, metricType string) (float64, error) {
	return r.scalarFloat(ctx, sqlinline.QSumImpactMetric, metricType)
}

// AverageFundingRatio is the mean of current/goal over active and completed
// campaigns, each ratio capped at 1.
func (r *AnalyticsRepositoryPG) AverageFundingRatio(ctx context.Context) (float64, error) {
	return r.scalarFloat(ctx, sqlinline.QAverageFundingRatio)
}

func (r *AnalyticsRepositoryPG) TopDonors(ctx context.Context, limit int) ([]domain.DonorTotal, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QTopDonors, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.DonorTotal{}
	for rows.Next() {
		var d domain.DonorTotal
		if err := rows.Scan(&d.DonorID, &d.FullName, &d.Total, &d.Donations); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *AnalyticsRepositoryPG) TrendingCampaigns(ctx context.Context, limit int) ([]domain.TrendingCampaign, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QTrendingCampaigns, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.TrendingCampaign{}
	for rows.Next() {
		var c domain.TrendingCampaign
		if err := rows.Scan(&c.CampaignID, &c.Title, &c.Views, &c.Shares, &c.FundingRatio); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *AnalyticsRepositoryPG) scalarInt(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.sql.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *AnalyticsRepositoryPG) scalarFloat(ctx context.Context, query string, args ...any) (float64, error) {
	var f float64
	if err := r.sql.QueryRow(ctx, query, args...).Scan(&f); err != nil {
		return 0, err
	}
	return f, nil
}

var (
	_ domain.CampaignRepository     = (*CampaignRepositoryPG)(nil)
	_ domain.CommunityRepository    = (*CommunityRepositoryPG)(nil)
	_ domain.DonorRepository        = (*DonorRepositoryPG)(nil)
	_ domain.DonationRepository     = (*DonationRepositoryPG)(nil)
	_ domain.ImpactMetricRepository = (*ImpactMetricRepositoryPG)(nil)
	_ domain.AnalyticsRepository    = (*AnalyticsRepositoryPG)(nil)
)

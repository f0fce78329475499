package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"laafitech/internal/domain"
	"laafitech/internal/infra"
	"laafitech/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	sql   infra.SQLExecutor
	newID func() string
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql, newID: uuid.NewString}
}

// Record stores a completed donation, credits the campaign and updates the
// donor's giving aggregates atomically. A missing campaign yields
// domain.ErrNotFound.
func (r *DonationRepositoryPG) Record(ctx context.Context, input domain.DonationCreate) (*domain.Donation, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QRecordDonation,
		input.CampaignID,
		input.Amount,
		input.DonorID,
		input.Currency,
		r.newID(),
		input.DonorMessage,
		input.IsAnonymous,
	)
	return scanDonation(row)
}

// ListByCampaign returns the most recent donations for a campaign.
func (r *DonationRepositoryPG) ListByCampaign(ctx context.Context, campaignID int64, limit int) ([]domain.Donation, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListCampaignDonations, campaignID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Donation{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	if err := row.Scan(
		&d.ID,
		&d.CampaignID,
		&d.DonorID,
		&d.Amount,
		&d.Currency,
		&d.Status,
		&d.TransactionID,
		&d.DonorMessage,
		&d.IsAnonymous,
		&d.CreatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

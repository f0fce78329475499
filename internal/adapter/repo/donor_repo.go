package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"laafitech/internal/domain"
	"laafitech/internal/infra"
	"laafitech/internal/sqlinline"
)

// DonorRepositoryPG implements domain.DonorRepository backed by PostgreSQL.
// Donors are rows in users joined with their optional donor_profiles row.
type DonorRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonorRepository creates a new DonorRepositoryPG.
func NewDonorRepository(sql infra.SQLExecutor) *DonorRepositoryPG {
	return &DonorRepositoryPG{sql: sql}
}

func (r *DonorRepositoryPG) List(ctx context.Context, page domain.Page) ([]domain.Donor, error) {
	page = page.Normalize()
	rows, err := r.sql.Query(ctx, sqlinline.QListDonors, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Donor{}
	for rows.Next() {
		d, err := scanDonor(rows)
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

// GetByID returns the user with the given id and its profile, if any.
func (r *DonorRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Donor, error) {
	return scanDonor(r.sql.QueryRow(ctx, sqlinline.QSelectDonorByID, id))
}

func (r *DonorRepositoryPG) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.sql.QueryRow(ctx, sqlinline.QUserExists, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// GetProfile returns domain.ErrNotFound when the user has no donor profile.
func (r *DonorRepositoryPG) GetProfile(ctx context.Context, userID int64) (*domain.DonorProfile, error) {
	var (
		p       domain.DonorProfile
		causes  []byte
		regions []byte
	)
	err := r.sql.QueryRow(ctx, sqlinline.QSelectDonorProfile, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.TotalDonated,
		&p.DonationCount,
		&p.AverageDonation,
		&causes,
		&regions,
		&p.BudgetRange,
		&p.LastDonationDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	if err := decodePreferences(&p, causes, regions); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create registers a donor user together with an empty-history profile.
func (r *DonorRepositoryPG) Create(ctx context.Context, input domain.DonorCreate) (*domain.Donor, error) {
	causes, regions, err := preferenceParams(input.Causes, input.PreferredRegions)
	if err != nil {
		return nil, err
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonor,
		input.Email,
		input.FullName,
		causes,
		regions,
		input.BudgetRange,
	)
	return scanDonor(row)
}

// UpdateProfile upserts the donor's stated preferences and returns the donor.
func (r *DonorRepositoryPG) UpdateProfile(ctx context.Context, userID int64, update domain.DonorProfileUpdate) (*domain.Donor, error) {
	causes, regions, err := preferenceParams(update.Causes, update.PreferredRegions)
	if err != nil {
		return nil, err
	}
	if _, err := r.sql.Exec(ctx, sqlinline.QUpsertDonorProfile, userID, causes, regions, update.BudgetRange); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, userID)
}

func preferenceParams(causes, regions []string) (any, any, error) {
	c, err := jsonParam(causes, causes != nil)
	if err != nil {
		return nil, nil, fmt.Errorf("encode causes: %w", err)
	}
	rg, err := jsonParam(regions, regions != nil)
	if err != nil {
		return nil, nil, fmt.Errorf("encode preferred_regions: %w", err)
	}
	return c, rg, nil
}

func decodePreferences(p *domain.DonorProfile, causes, regions []byte) error {
	if err := decodeJSON(causes, &p.Causes); err != nil {
		return fmt.Errorf("decode causes: %w", err)
	}
	if err := decodeJSON(regions, &p.PreferredRegions); err != nil {
		return fmt.Errorf("decode preferred_regions: %w", err)
	}
	p.Causes = orEmpty(p.Causes)
	p.PreferredRegions = orEmpty(p.PreferredRegions)
	return nil
}

func scanDonor(row pgx.Row) (*domain.Donor, error) {
	var (
		d    domain.Donor
		role string

		profileID        *int64
		totalDonated     *float64
		donationCount    *int
		averageDonation  *float64
		causes           []byte
		regions          []byte
		budgetRange      *string
		lastDonationDate *time.Time
		profileCreatedAt *time.Time
		profileUpdatedAt *time.Time
	)
	if err := row.Scan(
		&d.ID,
		&d.Email,
		&d.FullName,
		&role,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
		&profileID,
		&totalDonated,
		&donationCount,
		&averageDonation,
		&causes,
		&regions,
		&budgetRange,
		&lastDonationDate,
		&profileCreatedAt,
		&profileUpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	d.Role = domain.UserRole(role)
	if profileID == nil {
		return &d, nil
	}

	p := &domain.DonorProfile{
		ID:               *profileID,
		UserID:           d.ID,
		BudgetRange:      budgetRange,
		LastDonationDate: lastDonationDate,
	}
	if totalDonated != nil {
		p.TotalDonated = *totalDonated
	}
	if donationCount != nil {
		p.DonationCount = *donationCount
	}
	if averageDonation != nil {
		p.AverageDonation = *averageDonation
	}
	if profileCreatedAt != nil {
		p.CreatedAt = *profileCreatedAt
	}
	if profileUpdatedAt != nil {
		p.UpdatedAt = *profileUpdatedAt
	}
	if err := decodePreferences(p, causes, regions); err != nil {
		return nil, err
	}
	d.Profile = p
	return &d, nil
}

package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"laafitech/internal/domain"
	"laafitech/internal/infra"
	"laafitech/internal/sqlinline"
)

// CommunityRepositoryPG implements domain.CommunityRepository backed by PostgreSQL.
type CommunityRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCommunityRepository creates a new CommunityRepositoryPG.
func NewCommunityRepository(sql infra.SQLExecutor) *CommunityRepositoryPG {
	return &CommunityRepositoryPG{sql: sql}
}

func (r *CommunityRepositoryPG) List(ctx context.Context, filter domain.CommunityFilter) ([]domain.Community, error) {
	page := filter.Page.Normalize()
	rows, err := r.sql.Query(ctx, sqlinline.QListCommunities, filter.Country, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Community{}
	for rows.Next() {
		c, err := scanCommunity(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CommunityRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Community, error) {
	return scanCommunity(r.sql.QueryRow(ctx, sqlinline.QSelectCommunityByID, id))
}

func (r *CommunityRepositoryPG) Create(ctx context.Context, input domain.CommunityCreate) (*domain.Community, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertCommunity,
		input.Name,
		input.Country,
		input.Region,
		input.District,
		input.Latitude,
		input.Longitude,
		input.Population,
		input.GirlsCount,
		input.PovertyIndex,
		input.MenstrualHealthScore,
		input.SchoolEnrollmentRate,
		input.Description,
	)
	return scanCommunity(row)
}

// Update refreshes the assessment figures of a community.
func (r *CommunityRepositoryPG) Update(ctx context.Context, id int64, update domain.CommunityUpdate) (*domain.Community, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateCommunity,
		id,
		update.PovertyIndex,
		update.MenstrualHealthScore,
		update.SchoolEnrollmentRate,
		update.LastAssessmentDate,
	)
	return scanCommunity(row)
}

func (r *CommunityRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteCommunity, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCommunity(row pgx.Row) (*domain.Community, error) {
	var c domain.Community
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Country,
		&c.Region,
		&c.District,
		&c.Latitude,
		&c.Longitude,
		&c.Population,
		&c.GirlsCount,
		&c.PovertyIndex,
		&c.MenstrualHealthScore,
		&c.SchoolEnrollmentRate,
		&c.HealthFacilities,
		&c.Description,
		&c.DataQualityScore,
		&c.LastAssessmentDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

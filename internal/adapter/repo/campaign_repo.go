package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"laafitech/internal/domain"
	"laafitech/internal/infra"
	"laafitech/internal/sqlinline"
)

// CampaignRepositoryPG implements domain.CampaignRepository backed by PostgreSQL.
type CampaignRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCampaignRepository creates a new CampaignRepositoryPG.
func NewCampaignRepository(sql infra.SQLExecutor) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{sql: sql}
}

// List returns campaigns ordered by id, optionally narrowed to one status.
func (r *CampaignRepositoryPG) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	page := filter.Page.Normalize()
	status := ""
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListCampaigns, status, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

// ListActive returns every campaign currently accepting donations.
func (r *CampaignRepositoryPG) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListActiveCampaigns)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	return scanCampaign(r.sql.QueryRow(ctx, sqlinline.QSelectCampaignByID, id))
}

// Create inserts a draft campaign.
func (r *CampaignRepositoryPG) Create(ctx context.Context, input domain.CampaignCreate) (*domain.Campaign, error) {
	items, err := jsonParam(input.ItemsNeeded, input.ItemsNeeded != nil)
	if err != nil {
		return nil, fmt.Errorf("encode items_needed: %w", err)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertCampaign,
		input.Title,
		input.Description,
		input.StoryTitle,
		input.StoryNarrative,
		input.GoalAmount,
		input.BeneficiaryCount,
		items,
		input.CommunityID,
		input.OrganizationID,
		input.StartDate,
		input.EndDate,
	)
	return scanCampaign(row)
}

// Update applies the allow-listed fields of update; nil fields keep their value.
func (r *CampaignRepositoryPG) Update(ctx context.Context, id int64, update domain.CampaignUpdate) (*domain.Campaign, error) {
	items, err := jsonParam(update.ItemsNeeded, update.ItemsNeeded != nil)
	if err != nil {
		return nil, fmt.Errorf("encode items_needed: %w", err)
	}
	var status *string
	if update.Status != nil {
		s := string(*update.Status)
		status = &s
	}
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateCampaign,
		id,
		update.Title,
		update.Description,
		status,
		update.StoryNarrative,
		update.GoalAmount,
		items,
	)
	return scanCampaign(row)
}

func (r *CampaignRepositoryPG) RecordView(ctx context.Context, id int64) (*domain.Campaign, error) {
	return scanCampaign(r.sql.QueryRow(ctx, sqlinline.QIncrementCampaignViews, id))
}

func (r *CampaignRepositoryPG) RecordShare(ctx context.Context, id int64) (*domain.Campaign, error) {
	return scanCampaign(r.sql.QueryRow(ctx, sqlinline.QIncrementCampaignShares, id))
}

// Publish moves a draft campaign to active. Campaigns in any other status
// yield domain.ErrInvalidState.
func (r *CampaignRepositoryPG) Publish(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.sql.QueryRow(ctx, sqlinline.QPublishCampaign, id))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: campaign is %s, only drafts can be published", domain.ErrInvalidState, existing.Status)
}

func (r *CampaignRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteCampaign, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectCampaigns(rows pgx.Rows) ([]domain.Campaign, error) {
	defer rows.Close()

	items := []domain.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
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

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
		items  []byte
		media  []byte
	)
	if err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.CommunityID,
		&c.OrganizationID,
		&status,
		&c.GoalAmount,
		&c.CurrentAmount,
		&c.BeneficiaryCount,
		&items,
		&c.StartDate,
		&c.EndDate,
		&c.StoryTitle,
		&c.StoryNarrative,
		&media,
		&c.Views,
		&c.Shares,
		&c.PredictedReach,
		&c.PredictedFunding,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	c.Status = domain.CampaignStatus(status)
	if err := decodeJSON(items, &c.ItemsNeeded); err != nil {
		return nil, fmt.Errorf("decode items_needed: %w", err)
	}
	if err := decodeJSON(media, &c.MediaAssets); err != nil {
		return nil, fmt.Errorf("decode media_assets: %w", err)
	}
	if c.ItemsNeeded == nil {
		c.ItemsNeeded = map[string]int{}
	}
	c.MediaAssets = orEmpty(c.MediaAssets)
	return &c, nil
}

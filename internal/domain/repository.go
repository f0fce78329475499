package domain

import "context"

// CampaignRepository defines persistence for campaigns.
type CampaignRepository interface {
	List(ctx context.Context, filter CampaignFilter) ([]Campaign, error)
	ListActive(ctx context.Context) ([]Campaign, error)
	GetByID(ctx context.Context, id int64) (*Campaign, error)
	Create(ctx context.Context, input CampaignCreate) (*Campaign, error)
	Update(ctx context.Context, id int64, update CampaignUpdate) (*Campaign, error)
	RecordView(ctx context.Context, id int64) (*Campaign, error)
	RecordShare(ctx context.Context, id int64) (*Campaign, error)
	Publish(ctx context.Context, id int64) (*Campaign, error)
	Delete(ctx context.Context, id int64) error
}

// CommunityRepository defines persistence for communities.
type CommunityRepository interface {
	List(ctx context.Context, filter CommunityFilter) ([]Community, error)
	GetByID(ctx context.Context, id int64) (*Community, error)
	Create(ctx context.Context, input CommunityCreate) (*Community, error)
	Update(ctx context.Context, id int64, update CommunityUpdate) (*Community, error)
	Delete(ctx context.Context, id int64) error
}

// DonorRepository handles donor accounts and their profiles.
type DonorRepository interface {
	List(ctx context.Context, page Page) ([]Donor, error)
	GetByID(ctx context.Context, id int64) (*Donor, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetProfile(ctx context.Context, userID int64) (*DonorProfile, error)
	Create(ctx context.Context, input DonorCreate) (*Donor, error)
	UpdateProfile(ctx context.Context, userID int64, update DonorProfileUpdate) (*Donor, error)
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	Record(ctx context.Context, input DonationCreate) (*Donation, error)
	ListByCampaign(ctx context.Context, campaignID int64, limit int) ([]Donation, error)
}

// ImpactMetricRepository stores observed campaign outcomes.
type ImpactMetricRepository interface {
	Create(ctx context.Context, input ImpactMetricCreate) (*ImpactMetric, error)
	ListByCampaign(ctx context.Context, campaignID int64) ([]ImpactMetric, error)
}

// AnalyticsRepository computes dashboard aggregates.
type AnalyticsRepository interface {
	CountCommunities(ctx context.Context) (int, error)
	CountActiveCampaigns(ctx context.Context) (int, error)
	TotalFunding(ctx context.Context) (float64, error)
	SumImpactMetric(ctx context.Context, metricType string) (float64, error)
	AverageFundingRatio(ctx context.Context) (float64, error)
	TopDonors(ctx context.Context, limit int) ([]DonorTotal, error)
	TrendingCampaigns(ctx context.Context, limit int) ([]TrendingCampaign, error)
}

package domain

// DashboardMetrics is the platform-wide KPI snapshot.
type DashboardMetrics struct {
	TotalCommunities       int                `json:"total_communities"`
	ActiveCampaigns        int                `json:"active_campaigns"`
	TotalFunding           float64            `json:"total_funding"`
	GirlsHelped            int                `json:"girls_helped"`
	PadsDistributed        int                `json:"pads_distributed"`
	AvgCampaignSuccessRate float64            `json:"avg_campaign_success_rate"`
	TopDonors              []DonorTotal       `json:"top_donors"`
	TrendingCampaigns      []TrendingCampaign `json:"trending_campaigns"`
}

// DonorTotal ranks donors by completed, non-anonymous giving.
type DonorTotal struct {
	DonorID   int64   `json:"donor_id"`
	FullName  string  `json:"full_name"`
	Total     float64 `json:"total"`
	Donations int     `json:"donations"`
}

// TrendingCampaign ranks active campaigns by engagement.
type TrendingCampaign struct {
	CampaignID   int64   `json:"campaign_id"`
	Title        string  `json:"title"`
	Views        int     `json:"views"`
	Shares       int     `json:"shares"`
	FundingRatio float64 `json:"funding_ratio"`
}

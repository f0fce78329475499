package handlers

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"laafitech/internal/domain"
	"laafitech/internal/predictor"
)

const (
	defaultMatchLimit   = 5
	defaultStoryTone    = "inspirational"
	dashboardListLimit  = 5
	dashboardQueryLimit = 4
)

type matchDonorsRequest struct {
	DonorID int64 `json:"donor_id"`
	Limit   *int  `json:"limit"`
}

type predictImpactRequest struct {
	CampaignID     int64   `json:"campaign_id"`
	CurrentFunding float64 `json:"current_funding"`
	DaysRemaining  int     `json:"days_remaining"`
}

type generateStoryRequest struct {
	CommunityID   int64   `json:"community_id"`
	CampaignTitle string  `json:"campaign_title"`
	GoalAmount    float64 `json:"goal_amount"`
	Tone          *string `json:"tone"`
}

// MatchDonors ranks active campaigns for a donor. Unknown donors get an
// empty list.
func (a *App) MatchDonors(w http.ResponseWriter, r *http.Request) {
	var req matchDonorsRequest
	if !a.decode(w, r, &req) {
		return
	}
	limit := defaultMatchLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	matches, err := a.Matcher.FindMatches(r.Context(), req.DonorID, limit)
	if err != nil {
		a.fail(w, r, err, "error in donor matching")
		return
	}
	a.json(w, http.StatusOK, matches)
}

func (a *App) PredictImpact(w http.ResponseWriter, r *http.Request) {
	var req predictImpactRequest
	if !a.decode(w, r, &req) {
		return
	}
	campaign, err := a.Campaigns.GetByID(r.Context(), req.CampaignID)
	if err != nil {
		a.fail(w, r, err, "error in impact prediction")
		return
	}
	community, err := a.optionalCommunity(r.Context(), campaign.CommunityID)
	if err != nil {
		a.fail(w, r, err, "error in impact prediction")
		return
	}
	a.json(w, http.StatusOK, predictor.Predict(campaign, community, req.CurrentFunding, req.DaysRemaining))
}

// GenerateStory composes a narrative; a missing community produces the
// generic fallback rather than an error.
func (a *App) GenerateStory(w http.ResponseWriter, r *http.Request) {
	var req generateStoryRequest
	if !a.decode(w, r, &req) {
		return
	}
	tone := defaultStoryTone
	if req.Tone != nil {
		tone = *req.Tone
	}
	community, err := a.optionalCommunity(r.Context(), &req.CommunityID)
	if err != nil {
		a.fail(w, r, err, "error in story generation")
		return
	}
	a.json(w, http.StatusOK, predictor.Generate(community, req.CampaignTitle, req.GoalAmount, tone))
}

// DashboardMetrics gathers the platform KPIs concurrently.
func (a *App) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	var (
		m           domain.DashboardMetrics
		girlsHelped float64
		pads        float64
	)
	group, gctx := errgroup.WithContext(r.Context())
	group.SetLimit(dashboardQueryLimit)

	group.Go(func() (err error) {
		m.TotalCommunities, err = a.Analytics.CountCommunities(gctx)
		return err
	})
	group.Go(func() (err error) {
		m.ActiveCampaigns, err = a.Analytics.CountActiveCampaigns(gctx)
		return err
	})
	group.Go(func() (err error) {
		m.TotalFunding, err = a.Analytics.TotalFunding(gctx)
		return err
	})
	group.Go(func() (err error) {
		girlsHelped, err = a.Analytics.SumImpactMetric(gctx, domain.MetricGirlsHelped)
		return err
	})
	group.Go(func() (err error) {
		pads, err = a.Analytics.SumImpactMetric(gctx, domain.MetricPadsDistributed)
		return err
	})
	group.Go(func() (err error) {
		m.AvgCampaignSuccessRate, err = a.Analytics.AverageFundingRatio(gctx)
		return err
	})
	group.Go(func() (err error) {
		m.TopDonors, err = a.Analytics.TopDonors(gctx, dashboardListLimit)
		return err
	})
	group.Go(func() (err error) {
		m.TrendingCampaigns, err = a.Analytics.TrendingCampaigns(gctx, dashboardListLimit)
		return err
	})

	if err := group.Wait(); err != nil {
		a.fail(w, r, err, "failed to load dashboard metrics")
		return
	}
	m.GirlsHelped = int(girlsHelped)
	m.PadsDistributed = int(pads)
	if m.TopDonors == nil {
		m.TopDonors = []domain.DonorTotal{}
	}
	if m.TrendingCampaigns == nil {
		m.TrendingCampaigns = []domain.TrendingCampaign{}
	}
	a.json(w, http.StatusOK, m)
}

func (a *App) optionalCommunity(ctx context.Context, id *int64) (*domain.Community, error) {
	if id == nil || *id <= 0 {
		return nil, nil
	}
	c, err := a.Communities.GetByID(ctx, *id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

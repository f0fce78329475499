package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"laafitech/internal/domain"
	"laafitech/internal/predictor"
)

func seedMatching(s *memStore) {
	community := int64(1)
	s.communities[1] = &domain.Community{ID: 1, Name: "Kaya", Region: "Centre-Nord", Country: "Burkina Faso", GirlsCount: intPtr(2000)}
	s.campaigns[1] = &domain.Campaign{ID: 1, Title: "Draft", Status: domain.CampaignStatusDraft, GoalAmount: 1000}
	s.campaigns[2] = &domain.Campaign{ID: 2, Title: "Pads for Kaya", Status: domain.CampaignStatusActive, GoalAmount: 1000, CommunityID: &community, Views: 200, Shares: 20}
	s.campaigns[3] = &domain.Campaign{ID: 3, Title: "Big goal", Status: domain.CampaignStatusActive, GoalAmount: 1_000_000}
	s.donors[7] = &domain.Donor{
		User: domain.User{ID: 7, Role: domain.UserRoleDonor},
		Profile: &domain.DonorProfile{
			UserID:          7,
			Causes:          []string{"health"},
			AverageDonation: 50,
			DonationCount:   10,
		},
	}
}

func TestMatchDonors_UnknownDonorReturnsEmptyList(t *testing.T) {
	s := newMemStore()
	seedMatching(s)
	app := newTestApp(s)

	rr := serve(t, app.MatchDonors, http.MethodPost, "/ml/match-donors", "", map[string]any{"donor_id": 999})
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Fatalf("expected empty list, got %s", got)
	}
}

func TestMatchDonors_RanksOnlyActiveCampaigns(t *testing.T) {
	s := newMemStore()
	seedMatching(s)
	app := newTestApp(s)

	rr := serve(t, app.MatchDonors, http.MethodPost, "/ml/match-donors", "", map[string]any{"donor_id": 7})
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var matches []predictor.Match
	decodeBody(t, rr, &matches)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].CampaignID != 2 {
		t.Fatalf("expected campaign 2 first, got %d", matches[0].CampaignID)
	}
	if matches[0].MatchScore < matches[1].MatchScore {
		t.Fatalf("matches not sorted: %v", matches)
	}
	for _, m := range matches {
		if m.MatchReason != predictor.ReasonCauseAlignment {
			t.Fatalf("expected cause alignment, got %q", m.MatchReason)
		}
	}
}

func TestMatchDonors_RespectsLimit(t *testing.T) {
	s := newMemStore()
	seedMatching(s)
	app := newTestApp(s)

	rr := serve(t, app.MatchDonors, http.MethodPost, "/ml/match-donors", "", map[string]any{"donor_id": 7, "limit": 1})
	var matches []predictor.Match
	decodeBody(t, rr, &matches)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}

func TestMatchDonors_BadPayload(t *testing.T) {
	app := newTestApp(newMemStore())
	rr := serve(t, app.MatchDonors, http.MethodPost, "/ml/match-donors", "", "{not json")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status code: got %d, want 400", rr.Code)
	}
}

func TestPredictImpact_MissingCampaign(t *testing.T) {
	app := newTestApp(newMemStore())
	rr := serve(t, app.PredictImpact, http.MethodPost, "/ml/predict-impact", "", map[string]any{
		"campaign_id": 42, "current_funding": 100, "days_remaining": 30,
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unexpected status code: got %d, want 404", rr.Code)
	}
	if code := errorCode(t, rr); code != "not_found" {
		t.Fatalf("unexpected error code %q", code)
	}
}

func TestPredictImpact_UsesCampaignCommunity(t *testing.T) {
	s := newMemStore()
	seedMatching(s)
	app := newTestApp(s)

	rr := serve(t, app.PredictImpact, http.MethodPost, "/ml/predict-impact", "", map[string]any{
		"campaign_id": 2, "current_funding": 500, "days_remaining": 30,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var got predictor.ImpactPrediction
	decodeBody(t, rr, &got)
	if got.PredictedGirlsHelped != 1000 {
		t.Fatalf("expected 1000 girls helped, got %d", got.PredictedGirlsHelped)
	}
	if got.PredictedItemsDistributed["pads"] != 6000 {
		t.Fatalf("expected 6000 pads, got %v", got.PredictedItemsDistributed)
	}
}

func TestGenerateStory_MissingCommunityFallsBack(t *testing.T) {
	app := newTestApp(newMemStore())
	rr := serve(t, app.GenerateStory, http.MethodPost, "/ml/generate-story", "", map[string]any{
		"community_id": 9, "campaign_title": "Pads", "goal_amount": 5000,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var story predictor.Story
	decodeBody(t, rr, &story)
	if story.Narrative != predictor.FallbackNarrative {
		t.Fatalf("expected fallback narrative, got %q", story.Narrative)
	}
	if len(story.SuggestedMedia) != 5 {
		t.Fatalf("expected 5 media suggestions, got %d", len(story.SuggestedMedia))
	}
}

func TestGenerateStory_DefaultsToInspirational(t *testing.T) {
	s := newMemStore()
	seedMatching(s)
	app := newTestApp(s)

	rr := serve(t, app.GenerateStory, http.MethodPost, "/ml/generate-story", "", map[string]any{
		"community_id": 1, "campaign_title": "Pads for Kaya", "goal_amount": 5000,
	})
	var story predictor.Story
	decodeBody(t, rr, &story)
	if !strings.HasPrefix(story.Narrative, "**Pads for Kaya**") {
		t.Fatalf("expected inspirational heading, got %q", story.Narrative)
	}
	if !strings.Contains(story.Narrative, "2000 girls") {
		t.Fatalf("expected girls count in narrative, got %q", story.Narrative)
	}
}

func TestGenerateStory_UrgentFormatsGoal(t *testing.T) {
	s := newMemStore()
	seedMatching(s)
	app := newTestApp(s)

	rr := serve(t, app.GenerateStory, http.MethodPost, "/ml/generate-story", "", map[string]any{
		"community_id": 1, "campaign_title": "Pads", "goal_amount": 25000, "tone": "urgent",
	})
	var story predictor.Story
	decodeBody(t, rr, &story)
	if !strings.Contains(story.Narrative, "$25,000") {
		t.Fatalf("expected formatted goal, got %q", story.Narrative)
	}
}

func TestDashboardMetrics(t *testing.T) {
	s := newMemStore()
	seedMatching(s)
	s.donations = []domain.Donation{{CampaignID: 2, Amount: 40}, {CampaignID: 2, Amount: 60}}
	s.metrics = []domain.ImpactMetric{
		{CampaignID: 2, MetricType: domain.MetricGirlsHelped, Value: 120},
		{CampaignID: 2, MetricType: domain.MetricPadsDistributed, Value: 720},
		{CampaignID: 3, MetricType: domain.MetricGirlsHelped, Value: 30},
	}
	app := newTestApp(s)

	rr := serve(t, app.DashboardMetrics, http.MethodGet, "/ml/dashboard-metrics", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var m domain.DashboardMetrics
	decodeBody(t, rr, &m)
	if m.TotalCommunities != 1 || m.ActiveCampaigns != 2 {
		t.Fatalf("unexpected counts: %+v", m)
	}
	if m.TotalFunding != 100 {
		t.Fatalf("expected funding 100, got %v", m.TotalFunding)
	}
	if m.GirlsHelped != 150 || m.PadsDistributed != 720 {
		t.Fatalf("unexpected impact totals: %+v", m)
	}
	if m.TopDonors == nil || len(m.TrendingCampaigns) != 1 {
		t.Fatalf("unexpected rankings: %+v", m)
	}
}

func TestDashboardMetrics_QueryFailure(t *testing.T) {
	s := newMemStore()
	s.failWith = errors.New("connection reset")
	app := newTestApp(s)

	rr := serve(t, app.DashboardMetrics, http.MethodGet, "/ml/dashboard-metrics", "", nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status code: got %d, want 500", rr.Code)
	}
	if code := errorCode(t, rr); code != "internal" {
		t.Fatalf("unexpected error code %q", code)
	}
}

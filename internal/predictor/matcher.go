// Package predictor holds the heuristic donor matching, impact estimation and
// narrative generation used by the ML endpoints. Every function here is total:
// absent inputs produce degenerate results, never errors.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"laafitech/internal/domain"
)

// Match reasons, in priority order.
const (
	ReasonCauseAlignment   = "cause_alignment"
	ReasonRegionPreference = "region_preference"
	ReasonCampaignQuality  = "campaign_quality"
)

const (
	causeWeight      = 0.4
	budgetWeight     = 0.3
	engagementWeight = 0.3

	// neutralScore is returned when no signal contributed any weight.
	neutralScore = 0.5
)

// Match pairs a campaign with how well it fits a donor.
type Match struct {
	CampaignID    int64   `json:"campaign_id"`
	CampaignTitle string  `json:"campaign_title"`
	MatchScore    float64 `json:"match_score"`
	MatchReason   string  `json:"match_reason"`
}

// Score rates how well campaign fits the donor's profile on a 0-1 scale and
// names the dominant reason. A nil profile is scored on the neutral branches.
func Score(profile *domain.DonorProfile, campaign domain.Campaign) (float64, string) {
	var score, weights float64

	// Every branch counts its weight, so the denominator is always the full
	// weight sum whether or not the donor has data for that signal.
	if profile != nil && (profile.HasCause("health") || profile.HasCause("education")) {
		score += causeWeight
	}
	weights += causeWeight

	if profile != nil && profile.AverageDonation > 0 {
		ratio := min(profile.AverageDonation/campaign.GoalAmount*1000, 1.0)
		score += budgetWeight * ratio
	}
	weights += budgetWeight

	if profile != nil && profile.DonationCount > 0 {
		ratio := min(float64(profile.DonationCount)/20.0, 1.0)
		score += engagementWeight * ratio
	}
	weights += engagementWeight

	if weights == 0 {
		return neutralScore, matchReason(profile, campaign)
	}
	return clamp(score/weights, 0, 1), matchReason(profile, campaign)
}

func matchReason(profile *domain.DonorProfile, campaign domain.Campaign) string {
	if profile == nil {
		return ReasonCampaignQuality
	}
	if profile.HasCause("health") {
		return ReasonCauseAlignment
	}
	if len(profile.PreferredRegions) > 0 && campaign.CommunityID != nil {
		return ReasonRegionPreference
	}
	return ReasonCampaignQuality
}

// RankCampaigns scores the active campaigns for profile, best first. Equal
// scores keep their input order. A non-positive limit yields no matches.
func RankCampaigns(profile *domain.DonorProfile, campaigns []domain.Campaign, limit int) []Match {
	if limit <= 0 {
		return []Match{}
	}
	matches := make([]Match, 0, len(campaigns))
	for _, c := range campaigns {
		if !c.IsActive() {
			continue
		}
		score, reason := Score(profile, c)
		matches = append(matches, Match{
			CampaignID:    c.ID,
			CampaignTitle: c.Title,
			MatchScore:    score,
			MatchReason:   reason,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// DonorDirectory is the donor lookup the matcher needs.
type DonorDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetProfile(ctx context.Context, userID int64) (*domain.DonorProfile, error)
}

// CampaignDirectory lists the campaigns open for matching.
type CampaignDirectory interface {
	ListActive(ctx context.Context) ([]domain.Campaign, error)
}

// Matcher finds campaigns for a donor using the directories.
type Matcher struct {
	donors    DonorDirectory
	campaigns CampaignDirectory
}

func NewMatcher(donors DonorDirectory, campaigns CampaignDirectory) *Matcher {
	return &Matcher{donors: donors, campaigns: campaigns}
}

// FindMatches returns up to limit campaigns ranked for donorID. An unknown
// donor yields an empty result; only directory failures are errors.
func (m *Matcher) FindMatches(ctx context.Context, donorID int64, limit int) ([]Match, error) {
	ok, err := m.donors.Exists(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("lookup donor: %w", err)
	}
	if !ok {
		return []Match{}, nil
	}

	profile, err := m.donors.GetProfile(ctx, donorID)
	if errors.Is(err, domain.ErrNotFound) {
		profile = nil
	} else if err != nil {
		return nil, fmt.Errorf("load donor profile: %w", err)
	}

	campaigns, err := m.campaigns.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}
	return RankCampaigns(profile, campaigns, limit), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

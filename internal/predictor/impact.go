package predictor

import (
	"math"

	"laafitech/internal/domain"
)

const (
	defaultGirlsCount       = 1000
	defaultBeneficiaryCount = 1000

	padsPerGirl        = 6
	medicationShare    = 0.2
	maxConfidence      = 0.95
	baseConfidence     = 0.5
	qualityConfidence  = 0.3
	viewsConfidence    = 0.1
	sharesConfidence   = 0.05
	maturityViews      = 100
	maturityShares     = 10
	reachPerView       = 10
	reachWindowDays    = 30.0
	minGrowthFactor    = 0.5
	shareEngagementMul = 5
)

// ImpactPrediction is the forecast outcome of a campaign.
type ImpactPrediction struct {
	PredictedReach            int            `json:"predicted_reach"`
	PredictedGirlsHelped      int            `json:"predicted_girls_helped"`
	PredictedItemsDistributed map[string]int `json:"predicted_items_distributed"`
	ConfidenceScore           float64        `json:"confidence_score"`
}

// Predict forecasts reach, girls helped and items distributed for campaign
// given its current funding and remaining days. A nil campaign yields a zero
// prediction with zero confidence.
func Predict(campaign *domain.Campaign, community *domain.Community, currentFunding float64, daysRemaining int) ImpactPrediction {
	if campaign == nil {
		return ImpactPrediction{PredictedItemsDistributed: map[string]int{}}
	}
	girls := predictGirlsHelped(*campaign, community, currentFunding)
	return ImpactPrediction{
		PredictedReach:            predictReach(*campaign, daysRemaining),
		PredictedGirlsHelped:      girls,
		PredictedItemsDistributed: predictItems(*campaign, girls),
		ConfidenceScore:           confidence(*campaign, community),
	}
}

func predictReach(c domain.Campaign, daysRemaining int) int {
	base := float64(c.Views * reachPerView)
	growth := math.Max(float64(daysRemaining)/reachWindowDays, minGrowthFactor)
	engagement := 1.0 + (float64(c.Shares)/float64(c.Views+1))*shareEngagementMul
	reach := int(math.Floor(base * growth * engagement))
	return max(reach, c.Views)
}

// predictGirlsHelped applies the cap after the raw product, so overfunding
// saturates at the community's need rather than being clamped beforehand.
func predictGirlsHelped(c domain.Campaign, community *domain.Community, currentFunding float64) int {
	if community == nil || c.GoalAmount <= 0 {
		return 0
	}
	ratio := currentFunding / c.GoalAmount
	base := defaultGirlsCount
	if community.GirlsCount != nil && *community.GirlsCount > 0 {
		base = *community.GirlsCount
	}
	helped := int(math.Floor(float64(base) * ratio))
	return max(min(helped, base), 0)
}

func predictItems(c domain.Campaign, girls int) map[string]int {
	if len(c.ItemsNeeded) == 0 {
		return map[string]int{
			"pads":        int(math.Floor(float64(girls) * padsPerGirl)),
			"medications": int(math.Floor(float64(girls) * medicationShare)),
		}
	}
	beneficiaries := defaultBeneficiaryCount
	if c.BeneficiaryCount != nil && *c.BeneficiaryCount > 0 {
		beneficiaries = *c.BeneficiaryCount
	}
	ratio := float64(girls) / float64(beneficiaries)
	items := make(map[string]int, len(c.ItemsNeeded))
	for item, qty := range c.ItemsNeeded {
		items[item] = int(math.Floor(float64(qty) * ratio))
	}
	return items
}

func confidence(c domain.Campaign, community *domain.Community) float64 {
	score := baseConfidence
	if community != nil && community.DataQualityScore != nil {
		score += clamp(*community.DataQualityScore, 0, 1) * qualityConfidence
	}
	if c.Views > maturityViews {
		score += viewsConfidence
	}
	if c.Shares > maturityShares {
		score += sharesConfidence
	}
	return math.Min(score, maxConfidence)
}

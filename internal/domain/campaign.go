package domain

import (
	"fmt"
	"strings"
	"time"
)

// CampaignStatus enumerates campaign lifecycle states.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusArchived  CampaignStatus = "archived"
)

// ParseCampaignStatus accepts any casing of a known status.
func ParseCampaignStatus(s string) (CampaignStatus, bool) {
	switch st := CampaignStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusArchived:
		return st, true
	default:
		return "", false
	}
}

// Campaign is a fundraising effort for a single community.
type Campaign struct {
	ID               int64          `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	CommunityID      *int64         `json:"community_id"`
	OrganizationID   *int64         `json:"organization_id"`
	Status           CampaignStatus `json:"status"`
	GoalAmount       float64        `json:"goal_amount"`
	CurrentAmount    float64        `json:"current_amount"`
	BeneficiaryCount *int           `json:"beneficiary_count"`
	ItemsNeeded      map[string]int `json:"items_needed"`
	StartDate        *time.Time     `json:"start_date"`
	EndDate          *time.Time     `json:"end_date"`
	StoryTitle       string         `json:"story_title"`
	StoryNarrative   string         `json:"story_narrative"`
	MediaAssets      []string       `json:"media_assets"`
	Views            int            `json:"views"`
	Shares           int            `json:"shares"`
	PredictedReach   *int           `json:"predicted_reach"`
	PredictedFunding *float64       `json:"predicted_funding"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// IsActive reports whether the campaign is accepting donations.
func (c Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// CampaignCreate carries the fields accepted when a campaign is created.
// New campaigns always start as drafts.
type CampaignCreate struct {
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	StoryTitle       string         `json:"story_title"`
	StoryNarrative   string         `json:"story_narrative"`
	GoalAmount       float64        `json:"goal_amount"`
	BeneficiaryCount *int           `json:"beneficiary_count"`
	ItemsNeeded      map[string]int `json:"items_needed"`
	CommunityID      int64          `json:"community_id"`
	OrganizationID   *int64         `json:"organization_id"`
	StartDate        *time.Time     `json:"start_date"`
	EndDate          *time.Time     `json:"end_date"`
}

func (c CampaignCreate) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if c.GoalAmount <= 0 {
		return fmt.Errorf("%w: goal_amount must be positive", ErrInvalidInput)
	}
	if c.CommunityID <= 0 {
		return fmt.Errorf("%w: community_id is required", ErrInvalidInput)
	}
	if c.BeneficiaryCount != nil && *c.BeneficiaryCount < 0 {
		return fmt.Errorf("%w: beneficiary_count must not be negative", ErrInvalidInput)
	}
	if err := validateItems(c.ItemsNeeded); err != nil {
		return err
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return fmt.Errorf("%w: end_date is before start_date", ErrInvalidInput)
	}
	return nil
}

// CampaignUpdate lists the only campaign fields a client may change.
// Nil fields are left untouched.
type CampaignUpdate struct {
	Title          *string         `json:"title"`
	Description    *string         `json:"description"`
	Status         *CampaignStatus `json:"status"`
	StoryNarrative *string         `json:"story_narrative"`
	GoalAmount     *float64        `json:"goal_amount"`
	ItemsNeeded    map[string]int  `json:"items_needed"`
}

func (u CampaignUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return fmt.Errorf("%w: title must not be blank", ErrInvalidInput)
	}
	if u.Status != nil {
		st, ok := ParseCampaignStatus(string(*u.Status))
		if !ok {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *u.Status)
		}
		*u.Status = st
	}
	if u.GoalAmount != nil && *u.GoalAmount <= 0 {
		return fmt.Errorf("%w: goal_amount must be positive", ErrInvalidInput)
	}
	return validateItems(u.ItemsNeeded)
}

// CampaignFilter narrows campaign listings.
type CampaignFilter struct {
	Page
	Status *CampaignStatus
}

func validateItems(items map[string]int) error {
	for name, qty := range items {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: items_needed contains a blank item name", ErrInvalidInput)
		}
		if qty < 0 {
			return fmt.Errorf("%w: items_needed[%s] must not be negative", ErrInvalidInput, name)
		}
	}
	return nil
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// DonationStatus values mirror what a payment processor would report.
const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
	DonationStatusRefunded  = "refunded"
)

// Donation represents a supporter contribution record.
type Donation struct {
	ID            int64     `json:"id"`
	CampaignID    int64     `json:"campaign_id"`
	DonorID       *int64    `json:"donor_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id"`
	DonorMessage  *string   `json:"donor_message"`
	IsAnonymous   bool      `json:"is_anonymous"`
	CreatedAt     time.Time `json:"created_at"`
}

// DonationCreate records a completed contribution.
type DonationCreate struct {
	CampaignID   int64   `json:"campaign_id"`
	DonorID      *int64  `json:"donor_id"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	DonorMessage *string `json:"donor_message"`
	IsAnonymous  bool    `json:"is_anonymous"`
}

func (d *DonationCreate) Validate() error {
	if d.CampaignID <= 0 {
		return fmt.Errorf("%w: campaign_id is required", ErrInvalidInput)
	}
	if d.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	d.Currency = strings.ToUpper(strings.TrimSpace(d.Currency))
	if d.Currency == "" {
		d.Currency = "USD"
	}
	if len(d.Currency) != 3 {
		return fmt.Errorf("%w: currency must be an ISO 4217 code", ErrInvalidInput)
	}
	return nil
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// Well-known metric types aggregated by the dashboard.
const (
	MetricGirlsHelped     = "girls_helped"
	MetricPadsDistributed = "pads_distributed"
)

// ImpactMetric is an observed outcome reported for a campaign.
type ImpactMetric struct {
	ID                 int64     `json:"id"`
	CampaignID         int64     `json:"campaign_id"`
	MetricType         string    `json:"metric_type"`
	Value              float64   `json:"value"`
	Unit               string    `json:"unit"`
	Verified           bool      `json:"verified"`
	VerificationSource *string   `json:"verification_source"`
	RecordedDate       time.Time `json:"recorded_date"`
	CreatedAt          time.Time `json:"created_at"`
}

type ImpactMetricCreate struct {
	CampaignID         int64      `json:"-"`
	MetricType         string     `json:"metric_type"`
	Value              float64    `json:"value"`
	Unit               string     `json:"unit"`
	Verified           bool       `json:"verified"`
	VerificationSource *string    `json:"verification_source"`
	RecordedDate       *time.Time `json:"recorded_date"`
}

func (m *ImpactMetricCreate) Validate() error {
	m.MetricType = strings.ToLower(strings.TrimSpace(m.MetricType))
	if m.MetricType == "" {
		return fmt.Errorf("%w: metric_type is required", ErrInvalidInput)
	}
	if m.Value < 0 {
		return fmt.Errorf("%w: value must not be negative", ErrInvalidInput)
	}
	if m.Unit == "" {
		m.Unit = "count"
	}
	if m.Verified && (m.VerificationSource == nil || strings.TrimSpace(*m.VerificationSource) == "") {
		return fmt.Errorf("%w: verified metrics need a verification_source", ErrInvalidInput)
	}
	return nil
}

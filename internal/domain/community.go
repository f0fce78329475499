package domain

import (
	"fmt"
	"strings"
	"time"
)

// Community is a place whose girls the platform raises support for.
type Community struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	Country              string     `json:"country"`
	Region               string     `json:"region"`
	District             *string    `json:"district"`
	Latitude             *float64   `json:"latitude"`
	Longitude            *float64   `json:"longitude"`
	Population           *int       `json:"population"`
	GirlsCount           *int       `json:"girls_count"` // estimated girls needing support
	PovertyIndex         *float64   `json:"poverty_index"`
	MenstrualHealthScore *float64   `json:"menstrual_health_score"`
	SchoolEnrollmentRate *float64   `json:"school_enrollment_rate"`
	HealthFacilities     int        `json:"health_facilities"`
	Description          *string    `json:"description"`
	DataQualityScore     *float64   `json:"data_quality_score"` // 0-1
	LastAssessmentDate   *time.Time `json:"last_assessment_date"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// CommunityCreate carries the fields accepted when a community is registered.
type CommunityCreate struct {
	Name                 string   `json:"name"`
	Country              string   `json:"country"`
	Region               string   `json:"region"`
	District             *string  `json:"district"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	Population           *int     `json:"population"`
	GirlsCount           *int     `json:"girls_count"`
	PovertyIndex         *float64 `json:"poverty_index"`
	MenstrualHealthScore *float64 `json:"menstrual_health_score"`
	SchoolEnrollmentRate *float64 `json:"school_enrollment_rate"`
	Description          *string  `json:"description"`
}

func (c CommunityCreate) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Country) == "" || strings.TrimSpace(c.Region) == "" {
		return fmt.Errorf("%w: country and region are required", ErrInvalidInput)
	}
	if c.Population != nil && *c.Population < 0 {
		return fmt.Errorf("%w: population must not be negative", ErrInvalidInput)
	}
	if c.GirlsCount != nil && *c.GirlsCount < 0 {
		return fmt.Errorf("%w: girls_count must not be negative", ErrInvalidInput)
	}
	if c.Latitude != nil && (*c.Latitude < -90 || *c.Latitude > 90) {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidInput)
	}
	if c.Longitude != nil && (*c.Longitude < -180 || *c.Longitude > 180) {
		return fmt.Errorf("%w: longitude out of range", ErrInvalidInput)
	}
	return validateUnit("poverty_index", c.PovertyIndex)
}

// CommunityUpdate lists the assessment fields that may change after registration.
type CommunityUpdate struct {
	PovertyIndex         *float64   `json:"poverty_index"`
	MenstrualHealthScore *float64   `json:"menstrual_health_score"`
	SchoolEnrollmentRate *float64   `json:"school_enrollment_rate"`
	LastAssessmentDate   *time.Time `json:"last_assessment_date"`
}

func (u CommunityUpdate) Validate() error {
	if err := validateUnit("poverty_index", u.PovertyIndex); err != nil {
		return err
	}
	if u.MenstrualHealthScore != nil && (*u.MenstrualHealthScore < 0 || *u.MenstrualHealthScore > 100) {
		return fmt.Errorf("%w: menstrual_health_score must be within 0-100", ErrInvalidInput)
	}
	return nil
}

// CommunityFilter narrows community listings.
type CommunityFilter struct {
	Page
	Country string
}

func validateUnit(field string, v *float64) error {
	if v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("%w: %s must be within 0-1", ErrInvalidInput, field)
	}
	return nil
}

package domain

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"
)

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleAdmin         UserRole = "admin"
	UserRoleNGO           UserRole = "ngo"
	UserRoleDonor         UserRole = "donor"
	UserRoleCommunityLead UserRole = "community_lead"
	UserRolePartner       UserRole = "partner"
)

// User represents an account within the platform.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DonorProfile holds a donor's giving history and stated preferences.
type DonorProfile struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	TotalDonated     float64    `json:"total_donated"`
	DonationCount    int        `json:"donation_count"`
	AverageDonation  float64    `json:"average_donation"`
	Causes           []string   `json:"causes"`
	PreferredRegions []string   `json:"preferred_regions"`
	BudgetRange      *string    `json:"budget_range"`
	LastDonationDate *time.Time `json:"last_donation_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// HasCause reports whether the profile lists cause exactly as written.
func (p DonorProfile) HasCause(cause string) bool {
	return slices.Contains(p.Causes, cause)
}

// Donor is a user together with an optional donor profile.
type Donor struct {
	User
	Profile *DonorProfile `json:"profile"`
}

// DonorCreate registers a donor account with its initial preferences.
type DonorCreate struct {
	Email            string   `json:"email"`
	FullName         string   `json:"full_name"`
	Causes           []string `json:"causes"`
	PreferredRegions []string `json:"preferred_regions"`
	BudgetRange      *string  `json:"budget_range"`
}

func (d DonorCreate) Validate() error {
	if _, err := mail.ParseAddress(d.Email); err != nil {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if strings.TrimSpace(d.FullName) == "" {
		return fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	}
	return validateBudgetRange(d.BudgetRange)
}

// DonorProfileUpdate lists the preference fields a donor may change. Giving
// statistics are derived from recorded donations and are never client-writable.
type DonorProfileUpdate struct {
	Causes           []string `json:"causes"`
	PreferredRegions []string `json:"preferred_regions"`
	BudgetRange      *string  `json:"budget_range"`
}

func (u DonorProfileUpdate) Validate() error {
	return validateBudgetRange(u.BudgetRange)
}

func validateBudgetRange(v *string) error {
	if v == nil {
		return nil
	}
	switch *v {
	case "small", "medium", "large":
		return nil
	}
	return fmt.Errorf("%w: budget_range must be small, medium or large", ErrInvalidInput)
}

package handlers

import (
	"net/http"

	"laafitech/internal/domain"
)

// DonationsCreate records a completed donation against an active campaign.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.DonationCreate
	if !a.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "failed to create donation")
		return
	}
	campaign, err := a.Campaigns.GetByID(r.Context(), req.CampaignID)
	if err != nil {
		a.fail(w, r, err, "failed to load campaign")
		return
	}
	if !campaign.IsActive() {
		a.error(w, http.StatusConflict, "campaign_not_active", "campaign is "+string(campaign.Status))
		return
	}
	if req.DonorID != nil {
		exists, err := a.Donors.Exists(r.Context(), *req.DonorID)
		if err != nil {
			a.fail(w, r, err, "failed to load donor")
			return
		}
		if !exists {
			a.error(w, http.StatusNotFound, "not_found", "donor not found")
			return
		}
	}
	donation, err := a.Donations.Record(r.Context(), req)
	if err != nil {
		a.fail(w, r, err, "failed to create donation")
		return
	}
	a.Logger.Info().
		Int64("campaign_id", donation.CampaignID).
		Float64("amount", donation.Amount).
		Str("transaction_id", donation.TransactionID).
		Msg("donation recorded")
	a.json(w, http.StatusCreated, donation)
}

// CampaignDonations lists recent donations; anonymous donors are not disclosed.
func (a *App) CampaignDonations(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	limit, ok := a.queryInt(w, r, "limit")
	if !ok {
		return
	}
	items, err := a.Donations.ListByCampaign(r.Context(), id, limit)
	if err != nil {
		a.fail(w, r, err, "failed to load donations")
		return
	}
	for i := range items {
		if items[i].IsAnonymous {
			items[i].DonorID = nil
		}
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

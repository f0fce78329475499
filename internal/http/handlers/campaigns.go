package handlers

import (
	"net/http"
	"strings"

	"laafitech/internal/domain"
)

func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	page, ok := a.page(w, r)
	if !ok {
		return
	}
	filter := domain.CampaignFilter{Page: page}
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status, ok := domain.ParseCampaignStatus(raw)
		if !ok {
			a.error(w, http.StatusBadRequest, "bad_request", "unknown status "+raw)
			return
		}
		filter.Status = &status
	}
	items, err := a.Campaigns.List(r.Context(), filter)
	if err != nil {
		a.fail(w, r, err, "failed to list campaigns")
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CampaignCreate
	if !a.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "failed to create campaign")
		return
	}
	if _, err := a.Communities.GetByID(r.Context(), req.CommunityID); err != nil {
		a.fail(w, r, err, "failed to load community")
		return
	}
	c, err := a.Campaigns.Create(r.Context(), req)
	if err != nil {
		a.fail(w, r, err, "failed to create campaign")
		return
	}
	a.json(w, http.StatusCreated, c)
}

// CampaignsGet returns a campaign and counts the read as a view.
func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	c, err := a.Campaigns.RecordView(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "failed to load campaign")
		return
	}
	a.json(w, http.StatusOK, c)
}

func (a *App) CampaignsUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req domain.CampaignUpdate
	if !a.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "failed to update campaign")
		return
	}
	c, err := a.Campaigns.Update(r.Context(), id, req)
	if err != nil {
		a.fail(w, r, err, "failed to update campaign")
		return
	}
	a.json(w, http.StatusOK, c)
}

func (a *App) CampaignsPublish(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	c, err := a.Campaigns.Publish(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "failed to publish campaign")
		return
	}
	a.Logger.Info().Int64("campaign_id", id).Msg("campaign published")
	a.json(w, http.StatusOK, map[string]any{
		"message":  "Campaign published successfully",
		"campaign": c,
	})
}

func (a *App) CampaignsShare(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	c, err := a.Campaigns.RecordShare(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "failed to share campaign")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"id": c.ID, "shares": c.Shares})
}

func (a *App) CampaignsDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if err := a.Campaigns.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, "failed to delete campaign")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

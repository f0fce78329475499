package handlers

import (
	"net/http"

	"laafitech/internal/domain"
)

func (a *App) ImpactMetricsCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req domain.ImpactMetricCreate
	if !a.decode(w, r, &req) {
		return
	}
	req.CampaignID = id
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "failed to record impact metric")
		return
	}
	m, err := a.Impact.Create(r.Context(), req)
	if err != nil {
		a.fail(w, r, err, "failed to record impact metric")
		return
	}
	a.json(w, http.StatusCreated, m)
}

func (a *App) ImpactMetricsList(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	items, err := a.Impact.ListByCampaign(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "failed to load impact metrics")
		return
	}
	a.json(w, http.StatusOK, items)
}

package handlers

import (
	"net/http"
	"strings"

	"laafitech/internal/domain"
)

func (a *App) CommunitiesList(w http.ResponseWriter, r *http.Request) {
	page, ok := a.page(w, r)
	if !ok {
		return
	}
	items, err := a.Communities.List(r.Context(), domain.CommunityFilter{
		Page:    page,
		Country: strings.TrimSpace(r.URL.Query().Get("country")),
	})
	if err != nil {
		a.fail(w, r, err, "failed to list communities")
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) CommunitiesCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CommunityCreate
	if !a.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "failed to create community")
		return
	}
	c, err := a.Communities.Create(r.Context(), req)
	if err != nil {
		a.fail(w, r, err, "failed to create community")
		return
	}
	a.json(w, http.StatusCreated, c)
}

func (a *App) CommunitiesGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	c, err := a.Communities.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "failed to load community")
		return
	}
	a.json(w, http.StatusOK, c)
}

func (a *App) CommunitiesUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req domain.CommunityUpdate
	if !a.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "failed to update community")
		return
	}
	c, err := a.Communities.Update(r.Context(), id, req)
	if err != nil {
		a.fail(w, r, err, "failed to update community")
		return
	}
	a.json(w, http.StatusOK, c)
}

func (a *App) CommunitiesDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if err := a.Communities.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, "failed to delete community")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

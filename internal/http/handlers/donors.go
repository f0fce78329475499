package handlers

import (
	"net/http"

	"laafitech/internal/domain"
)

func (a *App) DonorsList(w http.ResponseWriter, r *http.Request) {
	page, ok := a.page(w, r)
	if !ok {
		return
	}
	items, err := a.Donors.List(r.Context(), page)
	if err != nil {
		a.fail(w, r, err, "failed to list donors")
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) DonorsGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	d, err := a.Donors.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "failed to load donor")
		return
	}
	a.json(w, http.StatusOK, d)
}

func (a *App) DonorsCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.DonorCreate
	if !a.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "failed to create donor")
		return
	}
	d, err := a.Donors.Create(r.Context(), req)
	if err != nil {
		a.fail(w, r, err, "failed to create donor")
		return
	}
	a.json(w, http.StatusCreated, d)
}

// DonorsUpdateProfile changes a donor's stated preferences only.
func (a *App) DonorsUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req domain.DonorProfileUpdate
	if !a.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		a.fail(w, r, err, "failed to update donor")
		return
	}
	d, err := a.Donors.UpdateProfile(r.Context(), id, req)
	if err != nil {
		a.fail(w, r, err, "failed to update donor")
		return
	}
	a.json(w, http.StatusOK, d)
}

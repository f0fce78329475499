package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"laafitech/internal/adapter/repo"
	"laafitech/internal/domain"
	"laafitech/internal/infra"
	"laafitech/internal/predictor"
)

// App carries the dependencies shared by every HTTP handler.
type App struct {
	Config      infra.Config
	Logger      zerolog.Logger
	SQL         infra.SQLExecutor
	Campaigns   domain.CampaignRepository
	Communities domain.CommunityRepository
	Donors      domain.DonorRepository
	Donations   domain.DonationRepository
	Impact      domain.ImpactMetricRepository
	Analytics   domain.AnalyticsRepository
	Matcher     *predictor.Matcher
}

// NewApp wires the PostgreSQL repositories on top of sql.
func NewApp(cfg infra.Config, logger zerolog.Logger, sql infra.SQLExecutor) *App {
	campaigns := repo.NewCampaignRepository(sql)
	donors := repo.NewDonorRepository(sql)
	return &App{
		Config:      cfg,
		Logger:      logger,
		SQL:         sql,
		Campaigns:   campaigns,
		Communities: repo.NewCommunityRepository(sql),
		Donors:      donors,
		Donations:   repo.NewDonationRepository(sql),
		Impact:      repo.NewImpactMetricRepository(sql),
		Analytics:   repo.NewAnalyticsRepository(sql),
		Matcher:     predictor.NewMatcher(donors, campaigns),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{
			"code":    errCode,
			"message": message,
		},
	})
}

// fail maps domain errors onto HTTP responses. Anything unrecognised is
// logged and reported as a 500 with internalMsg.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		a.error(w, http.StatusBadRequest, "invalid_state", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrConflict):
		a.error(w, http.StatusConflict, "conflict", err.Error())
	default:
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg(internalMsg)
		a.error(w, http.StatusInternalServerError, "internal", internalMsg)
	}
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}

func (a *App) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid id %q", raw))
		return 0, false
	}
	return id, true
}

// page reads skip and limit from the query string.
func (a *App) page(w http.ResponseWriter, r *http.Request) (domain.Page, bool) {
	skip, ok := a.queryInt(w, r, "skip")
	if !ok {
		return domain.Page{}, false
	}
	limit, ok := a.queryInt(w, r, "limit")
	if !ok {
		return domain.Page{}, false
	}
	return domain.Page{Skip: skip, Limit: limit}.Normalize(), true
}

func (a *App) queryInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		a.error(w, http.StatusBadRequest, "bad_request", key+" must be a non-negative integer")
		return 0, false
	}
	return v, true
}

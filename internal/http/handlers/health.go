package handlers

import (
	"context"
	"net/http"
	"time"

	"laafitech/internal/sqlinline"
)

func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"message": "Welcome to " + a.Config.AppName,
		"version": a.Config.AppVersion,
		"docs":    "/api/docs",
	})
}

// Health reports liveness and whether the database answers.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var one int
	if err := a.SQL.QueryRow(ctx, sqlinline.QPing).Scan(&one); err != nil {
		a.Logger.Warn().Err(err).Msg("health: database unreachable")
		a.json(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "healthy", "database": "ok"})
}

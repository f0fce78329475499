package httpapi

import (
	"net/http"
	"time"

	"laafitech/internal/http/handlers"
	"laafitech/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		middleware.CORS(app.Config.CORSOrigins),
		middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute),
	)

	r.Get("/", app.Root)
	r.Get("/health", app.Health)
	r.Get("/api/openapi.json", app.OpenAPIJSON)
	r.Get("/api/docs", app.OpenAPIDocs)

	r.Route(app.Config.APIPrefix, func(r chi.Router) {
		r.Route("/communities", func(r chi.Router) {
			r.Get("/", app.CommunitiesList)
			r.Post("/", app.CommunitiesCreate)
			r.Get("/{id}", app.CommunitiesGet)
			r.Put("/{id}", app.CommunitiesUpdate)
			r.Delete("/{id}", app.CommunitiesDelete)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", app.CampaignsList)
			r.Post("/", app.CampaignsCreate)
			r.Get("/{id}", app.CampaignsGet)
			r.Put("/{id}", app.CampaignsUpdate)
			r.Delete("/{id}", app.CampaignsDelete)
			r.Post("/{id}/publish", app.CampaignsPublish)
			r.Post("/{id}/share", app.CampaignsShare)
			r.Get("/{id}/donations", app.CampaignDonations)
			r.Get("/{id}/impact-metrics", app.ImpactMetricsList)
			r.Post("/{id}/impact-metrics", app.ImpactMetricsCreate)
		})

		r.Route("/donors", func(r chi.Router) {
			r.Get("/", app.DonorsList)
			r.Post("/", app.DonorsCreate)
			r.Get("/{id}", app.DonorsGet)
			r.Put("/{id}", app.DonorsUpdateProfile)
		})

		r.Post("/donations", app.DonationsCreate)

		r.Route("/ml", func(r chi.Router) {
			r.Post("/match-donors", app.MatchDonors)
			r.Post("/predict-impact", app.PredictImpact)
			r.Post("/generate-story", app.GenerateStory)
			r.Get("/dashboard-metrics", app.DashboardMetrics)
		})
	})

	return r
}

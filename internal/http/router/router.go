package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/bakery-api/docs"
	"github.com/rogerio-castellano/bakery-api/internal/http/handlers"
	mw "github.com/rogerio-castellano/bakery-api/internal/http/middleware"
	rl "github.com/rogerio-castellano/bakery-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/bakery-api/internal/metrics"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Options switches optional middleware on. Zero values disable them.
type Options struct {
	Logger    logrus.FieldLogger
	Metrics   *metrics.Metrics
	Limiter   *rl.RateLimiter
	JWTSecret []byte

	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Only set it behind a proxy that overwrites those headers.
	TrustProxy bool
}

func NewRouter(h *handlers.Handler, opts Options) http.Handler {
	r := chi.NewRouter()
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(mw.RequestID)
	if opts.Logger != nil {
		r.Use(mw.Logger(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(mw.Metrics(opts.Metrics))
	}
	r.Use(chimw.Recoverer)

	r.Get("/", h.IndexHandler)
	r.Get("/healthz", h.HealthHandler)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(opts.Limiter.Middleware)
		}

		r.Get("/bakeries", h.GetBakeriesHandler)
		r.Get("/bakeries/{id}", h.GetBakeryByIDHandler)
		r.Get("/baked_goods/by_price", h.GetBakedGoodsByPriceHandler)
		r.Get("/baked_goods/most_expensive", h.GetMostExpensiveBakedGoodHandler)
		r.Get("/stats", h.GetStatsHandler)

		r.Group(func(r chi.Router) {
			if len(opts.JWTSecret) > 0 {
				r.Use(mw.RequireToken(opts.JWTSecret))
			}

			r.Patch("/bakeries/{id}", h.UpdateBakeryHandler)
			r.Post("/baked_goods", h.CreateBakedGoodHandler)
			r.Post("/baked_goods/import", h.ImportBakedGoodsHandler)
			r.Delete("/baked_goods/{id}", h.DeleteBakedGoodHandler)
		})
	})

	return r
}

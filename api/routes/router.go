package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/srmns/quotation-backend/api/controllers"
	"github.com/srmns/quotation-backend/api/middleware"
	"github.com/srmns/quotation-backend/internal/auth"
	"github.com/srmns/quotation-backend/internal/inventory"
	"github.com/srmns/quotation-backend/internal/quotations"
	"github.com/srmns/quotation-backend/pkg/config"
	"github.com/srmns/quotation-backend/pkg/logger"
	"github.com/srmns/quotation-backend/pkg/redis"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// NewRouter wires the legacy quotation API surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP dbPinger,
	redisClient *redis.Client,
	quotationService quotations.Service,
	inventoryService inventory.Service,
	authService auth.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	var limiterStore middleware.RateLimiterStore
	if redisClient != nil {
		limiterStore = redisClient
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.RateLimit.LoginWindow,
		cfg.RateLimit.LoginIPLimit,
		cfg.RateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.RateLimit.RegisterWindow,
		cfg.RateLimit.RegisterIPLimit,
		cfg.RateLimit.RegisterEmailLimit,
	)

	r.Get("/health", controllers.Health(dbP, logg))

	r.With(middleware.AuthRateLimit(registerPolicy, limiterStore, logg)).
		Post("/register", controllers.Register(authService, logg))
	r.With(middleware.AuthRateLimit(loginPolicy, limiterStore, logg)).
		Post("/login", controllers.Login(authService, logg))

	r.Route("/api", func(r chi.Router) {
		r.Route("/quotations", func(r chi.Router) {
			r.Get("/", controllers.ListQuotations(quotationService, logg))
			r.Post("/", controllers.CreateQuotation(quotationService, logg))
			r.Get("/{id}", controllers.GetQuotation(quotationService, logg))
			r.Put("/{id}", controllers.UpdateQuotation(quotationService, logg))
			r.Get("/number/{quotationNo}", controllers.GetQuotationByNumber(quotationService, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.ListInventory(inventoryService, logg))
			r.Post("/", controllers.SaveInventoryItem(inventoryService, logg))
			r.Post("/bulk", controllers.BulkSaveInventory(inventoryService, logg))
			r.Put("/{id}", controllers.UpdateInventoryItem(inventoryService, logg))
			r.Delete("/{id}", controllers.DeleteInventoryItem(inventoryService, logg))
		})

		r.Get("/company/info", controllers.CompanyInfo(cfg.Company))
	})

	return r
}

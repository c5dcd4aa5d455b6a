package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/giftdash/giftdash-backend/api/controllers"
	"github.com/giftdash/giftdash-backend/api/middleware"
	"github.com/giftdash/giftdash-backend/internal/branches"
	"github.com/giftdash/giftdash-backend/internal/cards"
	"github.com/giftdash/giftdash-backend/internal/documents"
	"github.com/giftdash/giftdash-backend/internal/identity"
	"github.com/giftdash/giftdash-backend/internal/onboarding"
	"github.com/giftdash/giftdash-backend/internal/profiles"
	"github.com/giftdash/giftdash-backend/internal/vendors"
	"github.com/giftdash/giftdash-backend/pkg/config"
	"github.com/giftdash/giftdash-backend/pkg/db"
	"github.com/giftdash/giftdash-backend/pkg/enums"
	"github.com/giftdash/giftdash-backend/pkg/logger"
	"github.com/giftdash/giftdash-backend/pkg/redis"
	"github.com/giftdash/giftdash-backend/pkg/storage/gcs"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	dbP db.Pinger,
	redisClient *redis.Client,
	gcsP gcs.Pinger,
	identityService *identity.Service,
	profileService *profiles.Service,
	onboardingService *onboarding.Service,
	vendorService *vendors.Service,
	branchService *branches.Service,
	cardService *cards.Service,
	documentService documents.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient, gcsP))
	})

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	vendorOperators := []enums.UserType{
		enums.UserTypeVendor,
		enums.UserTypeCorporate,
		enums.UserTypeCorporateVendor,
		enums.UserTypeCorporateAdmin,
		enums.UserTypeCorporateSuperAdmin,
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		if redisClient != nil {
			r.Use(middleware.Idempotency(redisClient, logg))
		}

		r.Get("/navigation", controllers.NavigationMenu(identityService, profileService, logg))
		r.Post("/profiles/switch", controllers.ProfileSwitch(profileService, logg))
		r.Put("/preferences/sidebar", controllers.SidebarPreference(profileService, logg))

		r.Route("/onboarding", func(r chi.Router) {
			r.Post("/advance", controllers.OnboardingAdvance(onboardingService, logg))
			r.Post("/submit", controllers.OnboardingSubmit(onboardingService, identityService, logg))
			r.Put("/draft", controllers.OnboardingDraftSave(onboardingService, logg))
			r.Get("/draft", controllers.OnboardingDraftLoad(onboardingService, logg))
			r.Delete("/draft", controllers.OnboardingDraftClear(onboardingService, logg))
		})

		r.Route("/documents", func(r chi.Router) {
			r.Post("/upload", controllers.DocumentUpload(documentService, cfg.Documents.MaxUploadBytes(), logg))
			r.Get("/display-url", controllers.DocumentDisplayURL(documentService, logg))
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", controllers.VendorList(vendorService, identityService, logg))
			r.Get("/{vendorId}", controllers.VendorGet(vendorService, logg))
			r.Get("/{vendorId}/branches", controllers.BranchList(branchService, logg))
			r.Get("/{vendorId}/cards", controllers.CardList(cardService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUserType(logg, vendorOperators...))

			r.Route("/branches", func(r chi.Router) {
				r.Post("/", controllers.BranchCreate(branchService, logg))
				r.Post("/{branchId}/manager", controllers.BranchAssignManager(branchService, logg))
				r.Delete("/{branchId}", controllers.BranchDeactivate(branchService, logg))
			})

			r.Route("/cards", func(r chi.Router) {
				r.Post("/", controllers.CardCreate(cardService, logg))
				r.Delete("/{cardId}", controllers.CardRetire(cardService, logg))
			})
		})
	})

	return r
}

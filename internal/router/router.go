package router

import (
	"net/http"
	"time"

	_ "pet-adoption/docs" // swagger
	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/domain/donations"
	"pet-adoption/internal/domain/matching"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/products"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcionales: si no vienen, in-memory.
	Pets        pets.Repository
	Preferences matching.PreferenceStore
	Products    products.Repository
	Donations   donations.Repository

	Logger         logger.Logger
	UploadsBaseURL string
	PreferenceTTL  time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	petRepo := opts.Pets
	if petRepo == nil {
		petRepo = mem.NewPetRepo()
	}
	prefs := opts.Preferences
	if prefs == nil {
		prefs = mem.NewPreferenceStore()
	}
	productRepo := opts.Products
	if productRepo == nil {
		productRepo = mem.NewProductRepo()
	}
	donationRepo := opts.Donations
	if donationRepo == nil {
		donationRepo = mem.NewDonationRepo()
	}
	uploads := opts.UploadsBaseURL
	if uploads == "" {
		uploads = "/static/uploads"
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	matchSvc := matching.NewService(petsSvc, prefs, opts.PreferenceTTL)
	productsSvc := products.NewService(productRepo)
	donationsSvc := donations.NewService(donationRepo)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	matching.RegisterRoutes(r, matchSvc, uploads)
	products.RegisterRoutes(r, productsSvc)
	donations.RegisterRoutes(r, donationsSvc)

	return r
}

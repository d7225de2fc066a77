package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	_ "petclinic-customers/docs"
	mem "petclinic-customers/internal/adapters/storage/memory"
	pg "petclinic-customers/internal/adapters/storage/postgres"
	"petclinic-customers/internal/domain/owners"
	"petclinic-customers/internal/domain/pets"
	"petclinic-customers/internal/middleware"
	"petclinic-customers/internal/platform/logger"
	"petclinic-customers/internal/platform/metrics"
	"petclinic-customers/internal/ports/visits"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
	// Solo aplica a in-memory: carga owners/mascotas de ejemplo.
	SeedData bool

	// Opcional: sin fetcher las visitas salen vacías.
	Visits visits.Fetcher

	// Opcional: sin provider no hay /metrics ni métricas de negocio.
	Metrics          *metrics.Provider
	MetricsNamespace string
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	bm := metrics.NopBusinessMetrics()
	if opts.Metrics != nil {
		ns := opts.MetricsNamespace
		if ns == "" {
			ns = "petclinic"
		}

		httpMetrics, err := middleware.HTTPMetrics(opts.Metrics.MeterProvider(), ns)
		if err != nil {
			return nil, fmt.Errorf("http metrics: %w", err)
		}
		r.Use(httpMetrics)

		bm, err = metrics.NewBusinessMetrics(opts.Metrics.MeterProvider(), ns)
		if err != nil {
			return nil, fmt.Errorf("business metrics: %w", err)
		}

		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		ownerRepo owners.Repository
		petRepo   pets.Repository
	)

	if opts.DB != nil {
		ownerRepo = pg.NewOwnersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
	} else {
		ownerRepo = mem.NewOwnerRepo()
		petRepo = mem.NewPetRepo(mem.DefaultPetTypes())
		if opts.SeedData {
			if err := mem.Seed(context.Background(), ownerRepo, petRepo); err != nil {
				return nil, fmt.Errorf("seed in-memory data: %w", err)
			}
		}
	}

	// Services por módulo. owners lista mascotas directo del repo;
	// pets valida el owner contra el service de owners.
	ownersSvc := owners.NewService(ownerRepo, petRepo, bm)
	petsSvc := pets.NewService(petRepo, ownersSvc, bm)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc, opts.Visits, log)
	pets.RegisterRoutes(r, petsSvc, opts.Visits, log)

	return r, nil
}

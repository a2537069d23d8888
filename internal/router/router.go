package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/crypto/bcrypt"

	sessmem "petcareplus/internal/adapters/session/memory"
	sessredis "petcareplus/internal/adapters/session/redis"
	mem "petcareplus/internal/adapters/storage/memory"
	pg "petcareplus/internal/adapters/storage/postgres"
	"petcareplus/internal/adapters/weather/openmeteo"
	"petcareplus/internal/config"
	"petcareplus/internal/domain/appointments"
	"petcareplus/internal/domain/auth"
	"petcareplus/internal/domain/owners"
	"petcareplus/internal/domain/pets"
	"petcareplus/internal/domain/weather"
	"petcareplus/internal/middleware"
	"petcareplus/internal/platform/logger"
	"petcareplus/internal/ports/session"
	weatherport "petcareplus/internal/ports/weather"
)

type Options struct {
	Config *config.Config // nil => config.Load()
	Log    logger.Logger  // nil => logger.NewFromEnv()

	// Opcionales: si vienen nil se resuelven acá.
	// DB nil y sin DSN configurado => repos in-memory (modo dev).
	DB       *sql.DB
	Sessions session.Store
	Weather  weatherport.Provider
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Load()
	}
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RecoverJSON(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	sessions := opts.Sessions
	if sessions == nil {
		sessions = newSessionStore(cfg, log)
	}
	r.Use(middleware.SessionContext(sessions, cfg.SessionSecret, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Si no te pasan DB explícita, intenta por config (dev/handoff).
	db := opts.DB
	if db == nil {
		if dsn := cfg.PostgresDSN(); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("postgres unavailable, using in-memory storage", map[string]any{"error": err.Error()})
			} else {
				db = opened
			}
		}
	}

	var (
		userStore       auth.UserStore
		ownerRepo       owners.Repository
		petRepo         pets.Repository
		appointmentRepo appointments.Repository
		weatherRepo     weather.Repository
	)

	if db != nil {
		userStore = pg.NewUsersRepo(db)
		ownerRepo = pg.NewOwnersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		appointmentRepo = pg.NewAppointmentsRepo(db)
		weatherRepo = pg.NewWeatherLogRepo(db)
	} else {
		users := mem.NewUsersRepo()
		seedDevUsers(users, cfg, log)

		userStore = users
		ownerRepo = mem.NewOwnersRepo()
		petRepo = mem.NewPetsRepo()
		appointmentRepo = mem.NewAppointmentsRepo()
		weatherRepo = mem.NewWeatherLogRepo()
	}

	provider := opts.Weather
	if provider == nil {
		provider = openmeteo.New()
	}

	// Services por módulo
	authSvc := auth.NewService(userStore)
	ownersSvc := owners.NewService(ownerRepo)
	petsSvc := pets.NewService(petRepo)
	appointmentsSvc := appointments.NewService(appointmentRepo)
	weatherSvc := weather.NewService(provider, weatherRepo)

	// Rutas por módulo
	auth.RegisterRoutes(r, authSvc, sessions, cfg.SessionSecret, log)
	owners.RegisterRoutes(r, ownersSvc, log)
	owners.RegisterExportRoutes(r, ownersSvc, log)
	pets.RegisterRoutes(r, petsSvc, log)
	appointments.RegisterRoutes(r, appointmentsSvc, log)
	weather.RegisterRoutes(r, weatherSvc, log)

	// Assets estáticos (sin sesión): solo si el directorio existe.
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return r
}

func newSessionStore(cfg *config.Config, log logger.Logger) session.Store {
	if cfg.RedisAddr != "" {
		rdb, err := sessredis.Dial(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
		if err == nil {
			return sessredis.New(rdb)
		}
		log.Warn("redis unavailable, using in-memory sessions", map[string]any{"error": err.Error()})
	}
	return sessmem.NewStore()
}

// seedDevUsers deja el API usable sin base: una cuenta admin y una de
// rol user. Solo corre en modo memoria.
func seedDevUsers(users *mem.UsersRepo, cfg *config.Config, log logger.Logger) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("seed admin hash failed", map[string]any{"error": err.Error()})
		return
	}
	users.Add(cfg.AdminEmail, string(adminHash), session.RoleAdmin)

	vetHash, err := bcrypt.GenerateFromPassword([]byte("vet123"), bcrypt.DefaultCost)
	if err != nil {
		log.Error("seed vet hash failed", map[string]any{"error": err.Error()})
		return
	}
	users.Add("vet@petcareplus.local", string(vetHash), session.RoleUser)

	log.Info("in-memory mode: seeded dev accounts", map[string]any{
		"admin": cfg.AdminEmail,
		"user":  "vet@petcareplus.local",
	})
}

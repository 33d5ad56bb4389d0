package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"carmarket-backend/internal/application/device"
	"carmarket-backend/internal/application/filters"
	"carmarket-backend/internal/application/forum"
	listsvc "carmarket-backend/internal/application/listings"
	"carmarket-backend/internal/application/savedsearches"
	"carmarket-backend/internal/config"
	"carmarket-backend/internal/infrastructure/catalog"
	"carmarket-backend/internal/infrastructure/database"
	"carmarket-backend/internal/infrastructure/snapshot"
	authhandler "carmarket-backend/internal/interfaces/handlers/auth"
	carthandler "carmarket-backend/internal/interfaces/handlers/cart"
	costhandler "carmarket-backend/internal/interfaces/handlers/costcalc"
	favhandler "carmarket-backend/internal/interfaces/handlers/favorites"
	filterhandler "carmarket-backend/internal/interfaces/handlers/filters"
	forumhandler "carmarket-backend/internal/interfaces/handlers/forum"
	healthhandler "carmarket-backend/internal/interfaces/handlers/health"
	listhandler "carmarket-backend/internal/interfaces/handlers/listings"
	msghandler "carmarket-backend/internal/interfaces/handlers/messages"
	profilehandler "carmarket-backend/internal/interfaces/handlers/profile"
	searchhandler "carmarket-backend/internal/interfaces/handlers/savedsearches"
	"carmarket-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return errors.New("database not configured")
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// App is the wired HTTP application and the resources it owns.
type App struct {
	Fiber   *fiber.App
	DB      *gorm.DB
	Rdb     *redis.Client // nil without REDIS_URL
	Writer  *snapshot.Writer
	Devices *device.Manager

	stopEviction context.CancelFunc
}

// evictionInterval is how often idle device state is looked for.
func evictionInterval(ttl time.Duration) time.Duration {
	if every := ttl / 4; every > time.Minute {
		return every
	}
	return time.Minute
}

// Close stops eviction, drains pending snapshot writes, then releases Redis and the database.
func (a *App) Close(ctx context.Context) error {
	if a.stopEviction != nil {
		a.stopEviction()
	}
	var errs []error
	if a.Writer != nil {
		if err := a.Writer.Flush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush snapshots: %w", err))
		}
	}
	if a.Rdb != nil {
		if err := a.Rdb.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func CreateApp(cfg *config.Config) (*App, error) {
	db, err := database.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb = redis.NewClient(opt)
	}

	policy, err := listsvc.ParsePolicy(cfg.AggregationPolicy)
	if err != nil {
		return nil, err
	}
	listings := &listsvc.Service{
		DB: db,
		External: []listsvc.Fetcher{
			catalog.MobileDe(cfg.FetchDelay),
			catalog.Kleinanzeigen(cfg.FetchDelay),
		},
		Timeout: cfg.FetchTimeout,
		Policy:  policy,
	}
	if cfg.SeedCatalog {
		if _, err := listings.Seed(context.Background(), catalog.InternalSeed()); err != nil {
			return nil, err
		}
	}

	writer := snapshot.NewWriter(&snapshot.GormStore{DB: db}, cfg.PersistWorkers)
	devices := device.NewManager(writer)
	board := forum.Open(context.Background(), writer, forum.SeedPosts())

	var criteriaStore filters.Store = filters.NewMemoryStore()
	if rdb != nil {
		criteriaStore = &filters.RedisStore{Rdb: rdb}
	}
	filterSvc := &filters.Service{Store: criteriaStore}
	searchSvc := &savedsearches.Service{Registries: devices, Filters: filterSvc}

	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.Tracing())
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	app.Use(middleware.RouteLogger())
	if rdb != nil {
		app.Use(middleware.HealthMarker(rdb))
	}
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error().
				Str("trace_id", middleware.GetTraceID(c)).
				Str("path", c.Path()).
				Interface("panic", e).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic")
		},
	}))

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		DB:             &gormDBPinger{db: db},
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/", hh.Index)
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)

	api := app.Group("/api/v1", middleware.Device(middleware.DeviceConfig{
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}))
	requireAuth := middleware.RequireAuth(devices)

	lh := &listhandler.Handlers{Service: listings, Filters: filterSvc}
	lg := api.Group("/listings")
	lg.Get("/search", lh.SearchActive)
	lg.Post("/search", lh.Search)
	lg.Get("/", lh.List)
	lg.Post("/", requireAuth, lh.Create)
	lg.Get("/:id", lh.Get)
	lg.Put("/:id", requireAuth, lh.Update)
	lg.Delete("/:id", requireAuth, lh.Delete)

	fh := &filterhandler.Handlers{Service: filterSvc}
	api.Get("/filters", fh.Get)
	api.Patch("/filters", fh.Patch)
	api.Put("/filters", fh.Replace)
	api.Delete("/filters", fh.Reset)

	sh := &searchhandler.Handlers{Service: searchSvc}
	sg := api.Group("/saved-searches")
	sg.Get("/", sh.List)
	sg.Post("/", sh.Create)
	sg.Get("/:id", sh.Get)
	sg.Put("/:id", sh.Update)
	sg.Delete("/:id", sh.Delete)
	sg.Post("/:id/apply", sh.Apply)

	favh := &favhandler.Handlers{Devices: devices}
	api.Get("/favorites", favh.List)
	api.Post("/favorites", favh.Add)
	api.Delete("/favorites/:id", favh.Remove)

	ch := &carthandler.Handlers{Devices: devices}
	api.Get("/cart", ch.Get)
	api.Delete("/cart", ch.Clear)
	api.Post("/cart/items", ch.AddItem)
	api.Patch("/cart/items/:id", ch.UpdateItem)
	api.Delete("/cart/items/:id", ch.RemoveItem)

	cc := &costhandler.Handlers{}
	api.Post("/cost-calculator", cc.Calculate)

	forh := &forumhandler.Handlers{Board: board}
	pg := api.Group("/forum/posts")
	pg.Get("/", forh.List)
	pg.Post("/", requireAuth, forh.Create)
	pg.Get("/:id", forh.Get)
	pg.Post("/:id/comments", requireAuth, forh.Comment)
	pg.Post("/:id/like", requireAuth, forh.Like)
	pg.Delete("/:id/like", requireAuth, forh.Unlike)

	mh := &msghandler.Handlers{Devices: devices}
	mg := api.Group("/messages")
	mg.Post("/", mh.Send)
	mg.Get("/unread", mh.Unread)
	mg.Get("/conversations", mh.Conversations)
	mg.Get("/conversations/:id", mh.Thread)
	mg.Post("/conversations/:id/read", mh.MarkRead)

	prh := &profilehandler.Handlers{Devices: devices}
	api.Get("/profile", prh.Get)
	api.Patch("/profile", prh.Update)
	api.Put("/profile/settings", prh.UpdateSettings)

	ah := &authhandler.Handlers{Devices: devices}
	ag := api.Group("/auth")
	ag.Post("/login", ah.Login)
	ag.Post("/register", ah.Register)
	ag.Get("/me", ah.Me)
	ag.Delete("/logout", ah.Logout)

	a := &App{Fiber: app, DB: db, Rdb: rdb, Writer: writer, Devices: devices}
	if cfg.DeviceIdleTTL > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		a.stopEviction = cancel
		go devices.RunEviction(ctx, evictionInterval(cfg.DeviceIdleTTL), cfg.DeviceIdleTTL)
	}

	log.Info().
		Str("env", cfg.Env).
		Bool("redis", rdb != nil).
		Str("policy", string(policy)).
		Dur("fetch_timeout", cfg.FetchTimeout).
		Dur("device_idle_ttl", cfg.DeviceIdleTTL).
		Msg("Application wired")

	return a, nil
}

func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}

package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"level_tracker_backend/internal/config"
	"level_tracker_backend/internal/controller"
	"level_tracker_backend/internal/middleware"
	"level_tracker_backend/internal/service"
	"level_tracker_backend/internal/source"
	"level_tracker_backend/internal/util"
	"level_tracker_backend/pkg/logger"
	"level_tracker_backend/pkg/monitoring"
	"level_tracker_backend/pkg/security"
	"level_tracker_backend/pkg/tracing"
	"level_tracker_backend/pkg/watcher"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const (
	initialLoadTimeout = 30 * time.Second
	watchDebounce      = 500 * time.Millisecond
	shutdownTimeout    = 5 * time.Second
)

type App struct {
	Config    *config.Config
	Router    *gin.Engine
	Loader    *source.CachedLoader
	Browse    *service.BrowseService
	Workspace *service.Workspace // nil in read-only mode

	tracer *sdktrace.TracerProvider
	stop   chan struct{}
}

type controllers struct {
	catalog   *controller.CatalogController
	health    *controller.HealthController
	moderator *controller.ModeratorController
	session   *controller.SessionController
}

// NewApp initializes logging and tracing, builds the configured catalog
// source and assembles the application.
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	loader, err := source.New(&cfg.Source)
	if err != nil {
		logger.Log.Fatal("Failed to initialize catalog source", zap.Error(err))
	}

	app := New(cfg, loader)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}
	return app
}

// New assembles the services and router around loader. The moderator
// workspace is loaded once here; a failed load is logged and leaves it empty.
func New(cfg *config.Config, loader source.Loader) *App {
	gin.SetMode(cfg.Server.Mode)
	monitoring.Init()

	cached := source.NewCachedLoader(loader, time.Duration(cfg.Source.CacheSeconds)*time.Second)
	app := &App{
		Config: cfg,
		Loader: cached,
		Browse: service.NewBrowseService(cached, service.SurfaceOptionsFrom(cfg.Public)),
		stop:   make(chan struct{}),
	}

	if !cfg.Server.ReadOnly {
		app.Workspace = service.NewWorkspace(cached, service.SurfaceOptionsFrom(cfg.Moderator))
		ctx, cancel := context.WithTimeout(context.Background(), initialLoadTimeout)
		_ = app.Workspace.Load(ctx)
		cancel()
	}

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, app.initControllers())
	return app
}

func (a *App) initControllers() *controllers {
	c := &controllers{
		catalog: controller.NewCatalogController(a.Browse),
		health:  controller.NewHealthController(a.Browse, a.Workspace),
	}
	if a.Workspace != nil {
		c.moderator = controller.NewModeratorController(a.Workspace, a.Browse)
		c.session = controller.NewSessionController(a.Workspace)
	}
	return c
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	limiter := security.NewLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	router.Use(security.RateLimiter(limiter, a.stop))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks watches a file source and drops the cached snapshot
// when it changes. The moderator workspace is not reloaded, so unsaved edits
// survive until the moderator reloads explicitly.
func (a *App) startBackgroundTasks(ctx context.Context) {
	src := a.Config.Source
	if src.Type != util.SourceFile || !src.Watch {
		return
	}
	go func() {
		err := watcher.WatchFile(ctx, src.Path, watchDebounce, a.Loader.Clear)
		if err != nil {
			logger.Log.Error("Catalog watcher stopped", zap.String("path", src.Path), zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.startBackgroundTasks(ctx)

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port), zap.Bool("read_only", a.Config.Server.ReadOnly))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	if a.Workspace != nil && a.Workspace.Status().Unsaved {
		logger.Log.Warn("Discarding unexported catalog changes")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.Close(shutdownCtx)

	logger.Log.Info("Server exiting")
}

// Close stops background work and flushes the tracer.
func (a *App) Close(ctx context.Context) {
	select {
	case <-a.stop:
	default:
		close(a.stop)
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	_ = logger.Log.Sync()
}

package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"notion-gcal-sync/internal/credential"
	"notion-gcal-sync/internal/middleware"
	"notion-gcal-sync/internal/sync"
	"notion-gcal-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage, pinged by the readiness check
	db *sql.DB

	// Domains
	syncUC     sync.UseCase
	credUC     credential.UseCase
	identity   string
	runTimeout time.Duration
	middleware middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	SyncUseCase       sync.UseCase
	CredentialUseCase credential.UseCase
	Identity          string
	RunTimeout        time.Duration
	Middleware        middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	srv := &HTTPServer{
		l:           logger,
		gin:         engine,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		syncUC:      cfg.SyncUseCase,
		credUC:      cfg.CredentialUseCase,
		identity:    cfg.Identity,
		runTimeout:  cfg.RunTimeout,
		middleware:  cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.syncUC == nil {
		return errors.New("sync use case is required")
	}
	if srv.credUC == nil {
		return errors.New("credential use case is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

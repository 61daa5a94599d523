package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/louisbranch/rowactions/internal/platform/config"
	"github.com/louisbranch/rowactions/internal/platform/timeouts"
	"github.com/louisbranch/rowactions/internal/rowactions"
	adminsqlite "github.com/louisbranch/rowactions/internal/services/admin/storage/sqlite"
)

// adminServerEnv captures startup defaults for the admin process.
type adminServerEnv struct {
	DBPath string `env:"ROWACTIONS_ADMIN_DB_PATH"`
}

func loadAdminServerEnv() adminServerEnv {
	var cfg adminServerEnv
	_ = config.ParseEnv(&cfg)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "admin.db")
	}
	return cfg
}

// Config defines the inputs for the admin operator process.
type Config struct {
	HTTPAddr string
	DBPath   string
	// TokenKey signs action security tokens. Required.
	TokenKey []byte
	// TokenTTL overrides the default token lifetime when positive.
	TokenTTL time.Duration
	// DefaultRole is assumed for requests without a role cookie.
	DefaultRole Role
}

// Server hosts the admin listing pages with row actions wired in.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	adminStore *adminsqlite.Store
	service    *rowactions.Service
}

// NewServer builds the admin server: it opens storage, registers the built-in
// row actions, and activates the hook points against the HTTP handler.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := cfg.HTTPAddr
	if httpAddr == "" {
		httpAddr = ":8082"
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = loadAdminServerEnv().DBPath
	}

	defaultRole := cfg.DefaultRole
	if defaultRole == "" {
		defaultRole = RoleViewer
	}
	if !ValidRole(string(defaultRole)) {
		return nil, fmt.Errorf("unknown default role %q", defaultRole)
	}

	tokens, err := rowactions.NewTokens(rowactions.TokenConfig{Key: cfg.TokenKey, TTL: cfg.TokenTTL})
	if err != nil {
		return nil, fmt.Errorf("init token service: %w", err)
	}

	adminStore, err := openAdminStore(dbPath)
	if err != nil {
		return nil, err
	}

	service := rowactions.NewService(rowactions.NewRegistry(), tokens)
	RegisterDefaultActions(service, adminStore)

	handler := NewHandler(adminStore, defaultRole)
	resolveChecker := func(r *http.Request) rowactions.CapabilityChecker {
		return CheckerForRequest(r, defaultRole)
	}
	if err := service.Activate(handler, resolveChecker); err != nil {
		_ = adminStore.Close()
		return nil, fmt.Errorf("activate row actions: %w", err)
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		adminStore: adminStore,
		service:    service,
	}, nil
}

// Service exposes the row action service, mainly so embedding processes can
// inspect the registry.
func (s *Server) Service() *rowactions.Service {
	if s == nil {
		return nil
	}
	return s.service
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases resources held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.adminStore != nil {
		if err := s.adminStore.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func openAdminStore(path string) (*adminsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin store: %w", err)
	}
	return store, nil
}

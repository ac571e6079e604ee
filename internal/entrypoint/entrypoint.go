package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/api"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/covers"
	"github.com/mrlokans/bookshelf/internal/crypto"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/demo"
	"github.com/mrlokans/bookshelf/internal/guard"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/preferences"
	"github.com/mrlokans/bookshelf/internal/scheduler"
	"github.com/mrlokans/bookshelf/internal/settingsstore"
	"github.com/mrlokans/bookshelf/internal/store"
	"github.com/mrlokans/bookshelf/internal/tracing"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// NewStateEncryptor picks the snapshot encryptor from config: an explicit key
// wins over a passphrase, and neither means plaintext.
func NewStateEncryptor(cfg config.State) (*crypto.Encryptor, error) {
	switch {
	case cfg.EncryptionKey != "":
		return crypto.NewEncryptorFromBase64(cfg.EncryptionKey)
	case cfg.Passphrase != "":
		return crypto.NewEncryptorFromPassphrase(cfg.Passphrase)
	default:
		return nil, nil
	}
}

// csrfSecret accepts a hex-encoded secret or falls back to the raw bytes.
func csrfSecret(value string) []byte {
	if value == "" {
		return nil
	}
	if secret, err := hex.DecodeString(value); err == nil {
		return secret
	}
	return []byte(value)
}

// NewSeeder builds the mock data generator. A zero seed picks one from the clock.
func NewSeeder(cfg config.Demo) *demo.Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return demo.NewGenerator(seed, demo.WithContent(cfg.IncludeContent))
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	ctx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName, version, cfg.Tracing.Insecure)
	if err != nil {
		log.Printf("WARNING: %v. Spans will not be exported.", err)
	}

	var demoMiddleware *demo.Middleware
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - write operations will be blocked")
		demoMiddleware = demo.NewMiddleware(true)
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	encryptor, err := NewStateEncryptor(cfg.State)
	if err != nil {
		log.Fatalf("Failed to initialize state encryption: %v", err)
	}
	if encryptor == nil {
		log.Printf("WARNING: STATE_ENCRYPTION_KEY and STATE_PASSPHRASE are not set. The session snapshot is stored in plaintext.")
	}

	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithRateLimit(cfg.API.RateLimit),
	)

	library := store.New(client, database.NewStateStore(db, encryptor))
	if err := library.Restore(); err != nil {
		log.Printf("WARNING: %v. Starting from an empty store.", err)
	}
	if cfg.Demo.SeedData {
		library.Initialize(NewSeeder(cfg.Demo))
	}

	prefs := preferences.New(db)
	if err := prefs.Load(); err != nil {
		log.Printf("WARNING: failed to load preferences: %v", err)
	}
	if cfg.Theme.FollowSystem {
		watcher := preferences.NewPollingWatcher(preferences.NewGSettings(), cfg.Theme.PollSchedule)
		if err := prefs.InitializeTheme(ctx, watcher); err != nil {
			log.Printf("WARNING: %v", err)
		}
	}

	var coverCache http_controllers.CoverCache
	if !cfg.Covers.Disabled {
		coverCacheDir := cfg.Covers.CacheDir
		if coverCacheDir == "" {
			coverCacheDir = filepath.Join(filepath.Dir(cfg.Database.Path), "covers")
		}
		cache, err := covers.NewCache(coverCacheDir)
		if err != nil {
			log.Printf("WARNING: Failed to initialize cover cache: %v", err)
		} else {
			log.Printf("Cover cache initialized at %s", coverCacheDir)
			coverCache = cache
		}
	}

	settings := settingsstore.New(db, cfg.UsersSync)
	usersSync := scheduler.NewUsersSyncScheduler(library, settings)
	if err := usersSync.Start(ctx); err != nil {
		log.Printf("WARNING: users sync scheduler not started: %v", err)
	}

	navigation := guard.NewNavigationTracker()

	routerCfg := http_controllers.RouterConfig{
		Store:             library,
		Preferences:       prefs,
		Guard:             guard.New(library, guard.Config{Delay: cfg.Navigation.Delay}, guard.WithLoadingIndicator(navigation)),
		Database:          db,
		Navigation:        navigation,
		LoginLimiter:      guard.NewLoginLimiter(guard.DefaultLoginLimitConfig()),
		CSRFSecret:        csrfSecret(cfg.HTTP.CSRFSecret),
		SecureCookies:     cfg.HTTP.SecureCookies,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		DemoMiddleware:    demoMiddleware,
		CoverCache:        coverCache,
		UsersSync:         usersSync,
		UsersSyncSettings: settings,
		Version:           version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		usersSync.Stop()
		stopBackground()
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("Error flushing spans: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gmaps-business-provider/internal/app"
	"github.com/gmaps-business-provider/internal/config"
	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/pkg/logger"
	"github.com/gmaps-business-provider/internal/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type (
	configLoader func() (*config.Config, error)
	appBuilder   func(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app.App, error)
)

// globalOptions - флаги, переопределяющие конфигурацию из окружения
type globalOptions struct {
	logLevel     string
	credentials  string
	cacheBackend string
	cacheDir     string
	baseURL      string
}

type environment struct {
	opts       globalOptions
	loadConfig configLoader
	build      appBuilder
}

// open загружает конфигурацию, применяет флаги и собирает приложение
func (e *environment) open(ctx context.Context) (*app.App, error) {
	cfg, err := e.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if e.opts.credentials != "" {
		cfg.Google.Credentials = e.opts.credentials
	}
	if e.opts.cacheBackend != "" {
		cfg.Cache.Backend = e.opts.cacheBackend
	}
	if e.opts.cacheDir != "" {
		cfg.Cache.FileDir = e.opts.cacheDir
	}
	if e.opts.baseURL != "" {
		cfg.Google.BaseURL = e.opts.baseURL
	}

	log, err := logger.NewCLI(e.opts.logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return e.build(ctx, cfg, log)
}

// NewRootCmd создает команду gmapsctl с конфигурацией из окружения
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.Load, app.New)
}

func newRootCmd(loadConfig configLoader, build appBuilder) *cobra.Command {
	env := &environment{loadConfig: loadConfig, build: build}

	rootCmd := &cobra.Command{
		Use:   "gmapsctl",
		Short: "Google Maps for Business tiles, geocoding and routing from the command line.",
		Long: `gmapsctl uses the same URL cache, request signing and tile assembly as the
HTTP API. Configuration is read from .env and the environment (GOOGLE_CREDENTIALS,
CACHE_BACKEND, ...); flags override it.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&env.opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&env.opts.credentials, "credentials", "", "credential string id=<client-id>;key=<private-key>")
	flags.StringVar(&env.opts.cacheBackend, "cache-backend", "", "URL cache backend: file, memory, redis, postgres, disabled")
	flags.StringVar(&env.opts.cacheDir, "cache-dir", "", "directory of the file URL cache")
	flags.StringVar(&env.opts.baseURL, "base-url", "", "Google Maps web services base URL")

	rootCmd.AddCommand(
		newProvidersCmd(env),
		newTileCmd(env),
		newGeocodeCmd(env),
		newReverseCmd(env),
		newRouteCmd(env),
		newPrefetchCmd(env),
	)

	return rootCmd
}

// Execute запускает gmapsctl, вызывается из main
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// withApp открывает приложение на время выполнения команды
func withApp(cmd *cobra.Command, env *environment, run func(a *app.App) error) error {
	a, err := env.open(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			a.Logger.Warn("Failed to close cache store", zap.Error(err))
		}
		_ = a.Logger.Sync()
	}()
	return run(a)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseLatLng разбирает "lat,lon"
func parseLatLng(s string) (domain.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Point{}, fmt.Errorf("expected lat,lon, got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	if !utils.ValidateCoordinates(lat, lon) {
		return domain.Point{}, fmt.Errorf("coordinates out of range: %s", s)
	}
	return domain.Point{Lat: lat, Lon: lon}, nil
}

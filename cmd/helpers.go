package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/iburimskiy/particle-header/internal/config"
	"github.com/iburimskiy/particle-header/internal/filter"
)

// setup loads and validates configuration, applies flag overrides and
// installs the default logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if reducedMotion {
		cfg.ReducedMotion = true
	}
	if cataloguePath != "" {
		cfg.Catalogue = cataloguePath
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	log := newLogger(os.Stderr, cfg)
	slog.SetDefault(log)
	return cfg, log, nil
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadBoard returns the configured catalogue, or the built-in one.
func loadBoard(cfg *config.Config, log *slog.Logger) (*filter.Board, error) {
	if cfg.Catalogue == "" {
		return filter.DefaultBoard(), nil
	}
	board, err := filter.LoadCatalogue(cfg.Catalogue)
	if err != nil {
		return nil, err
	}
	log.Info("catalogue loaded", "path", cfg.Catalogue, "items", len(board.Items), "filters", len(board.Controls))
	return board, nil
}

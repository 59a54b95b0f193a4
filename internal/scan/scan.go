package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"scriptscan/internal/assets"
	"scriptscan/internal/config"
	"scriptscan/internal/logging"
	"scriptscan/internal/meta"
)

// Run executes the full pipeline against cfg.Project: collect every
// sidecar GUID under the root, then check the assets subtree against
// the completed catalog. The collection pass always finishes before
// scanning starts; checking against a partial catalog would report
// references as missing that merely had not been collected yet.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	info, err := os.Stat(cfg.Project.Root)
	if err != nil {
		return nil, fmt.Errorf("project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %q is not a directory", cfg.Project.Root)
	}

	runID := uuid.NewString()
	logger = logger.With(logging.String(logging.FieldRunID, runID))
	start := time.Now()

	logger.Debug("collecting script sidecars",
		logging.Args(logging.String("root", cfg.Project.Root))...)
	catalog := meta.Collect(ctx, cfg.Project.Root, cfg.Project.MetaSuffix, logger)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Info("catalog built", logging.Args(logging.Int("script_guids", catalog.Len()))...)

	scanner := assets.NewScanner(cfg.Project.Root, cfg.Project.AssetExtensions, logger)
	report, err := scanner.Scan(ctx, cfg.AssetsRoot(), catalog)
	if err != nil {
		return nil, fmt.Errorf("scan assets: %w", err)
	}

	summary := &Summary{
		Root:      cfg.Project.Root,
		AssetsDir: cfg.Project.AssetsDir,
		RunID:     runID,
		Known:     catalog.Len(),
		Scanned:   report.Scanned,
		Missing:   sortedUnique(report.Missing),
		Elapsed:   time.Since(start),
	}

	logger.Info("scan complete", logging.Args(
		logging.Int("assets_scanned", summary.Scanned),
		logging.Int("missing", len(summary.Missing)),
		logging.Duration("elapsed", summary.Elapsed),
	)...)
	return summary, nil
}

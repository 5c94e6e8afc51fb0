package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"djwatch/internal/common"
	"djwatch/internal/config"
	"djwatch/internal/datastore"
	"djwatch/internal/differ"
	"djwatch/internal/extractor"
	"djwatch/internal/logger"
	"djwatch/internal/models"
	"djwatch/internal/monitor"
	"djwatch/internal/notifier"
	"djwatch/internal/server"
	"djwatch/internal/urlhandler"
)

// urlList collects repeatable --url flags, splitting comma-separated values
type urlList []string

func (ul *urlList) String() string {
	return strings.Join(*ul, ",")
}

func (ul *urlList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			*ul = append(*ul, trimmed)
		}
	}
	return nil
}

func main() {
	fmt.Println("Inflyte DJ Monitor starting...")

	// A .env file is optional; real environment variables win either way
	_ = godotenv.Load()

	// Flags
	var urls urlList
	flag.Var(&urls, "url", "Campaign URL to monitor (repeatable, comma-separated values allowed)")
	flag.Var(&urls, "u", "Alias for --url")

	urlFile := flag.String("file", "", "Path to a file containing campaign URLs, one per line ('#' starts a comment)")
	urlFileAlias := flag.String("f", "", "Alias for --file")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for --config")
	flag.Parse()

	// Consolidate alias flags
	if *urlFile == "" && *urlFileAlias != "" {
		*urlFile = *urlFileAlias
	}
	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load configuration: %v", err)
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	targets, err := resolveTargets(urls, *urlFile, cfg.MonitorConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not resolve monitoring targets")
	}

	// Keep the effective URL list in the config so validation covers it
	cfg.MonitorConfig.TargetURLs = make([]string, 0, len(targets))
	for _, target := range targets {
		cfg.MonitorConfig.TargetURLs = append(cfg.MonitorConfig.TargetURLs, target.SourceURL)
	}

	if err := config.ValidateConfig(cfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	zLogger.Info().Msg("🎵 Inflyte DJ Monitor Starting")
	zLogger.Info().
		Int("campaigns", len(targets)).
		Int("check_interval_minutes", cfg.MonitorConfig.CheckIntervalMinutes).
		Int("http_port", cfg.ServerConfig.Port).
		Msg("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		zLogger.Info().Str("signal", sig.String()).Msg("Received interrupt signal, initiating graceful shutdown...")
		cancel()
	}()

	store, err := datastore.NewSnapshotStore(ctx, cfg.StorageConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not initialize snapshot store")
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	alertNotifier := notifier.NewNotifier(cfg.NotificationConfig, zLogger)
	tracker := monitor.NewCycleTracker()

	runner := monitor.NewRunner(
		monitor.NewPageFetcher(cfg.MonitorConfig, zLogger),
		extractor.NewSupporterExtractor(zLogger),
		differ.NewSnapshotDiffer(zLogger),
		store,
		alertNotifier,
		tracker,
		targets,
		zLogger,
	)

	zLogger.Info().Msg("Fetching track information")
	runner.ResolveTitles(ctx)

	zLogger.Info().Msg("Campaigns:")
	for _, target := range runner.Targets() {
		zLogger.Info().Msgf("  • %s (%s)", target.DisplayName(), target.SourceURL)
		tracker.Register(target)
	}

	statusServer := server.NewStatusServer(cfg.ServerConfig, cfg.MonitorConfig, tracker, zLogger)
	go func() {
		if err := statusServer.Start(); err != nil {
			zLogger.Error().Err(err).Msg("Status server failed")
			cancel()
		}
	}()

	scheduler := monitor.NewScheduler(runner, cfg.MonitorConfig.CheckInterval(), zLogger)
	scheduler.Run(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := statusServer.Shutdown(shutdownCtx); err != nil {
		zLogger.Error().Err(err).Msg("Status server shutdown failed")
	}

	zLogger.Info().Msg("Shutdown complete")
}

// resolveTargets merges the URL sources: --url flags and --file contents
// extend each other; config-file or INFLYTE_URLS values apply only when
// both are absent. Duplicates are removed preserving first-seen order.
func resolveTargets(flagURLs []string, filePath string, monitorCfg config.MonitorConfig, zLogger zerolog.Logger) ([]models.Target, error) {
	collected := append([]string{}, flagURLs...)

	if filePath == "" {
		filePath = monitorCfg.TargetsFile
	}
	if filePath != "" {
		fileURLs, err := urlhandler.ReadTargetsFromFile(filePath, zLogger)
		if err != nil {
			return nil, err
		}
		collected = append(collected, fileURLs...)
	}

	if len(collected) == 0 {
		collected = append(collected, monitorCfg.TargetURLs...)
	}

	seen := make(map[string]struct{})
	targets := make([]models.Target, 0, len(collected))
	for _, raw := range collected {
		normalized, err := urlhandler.NormalizeURL(raw)
		if err != nil {
			return nil, common.WrapErrorf(err, "invalid target URL '%s'", raw)
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		targets = append(targets, models.NewTarget(normalized))
	}

	if len(targets) == 0 {
		return nil, common.NewConfigurationError("monitor", "urls", "at least one URL must be provided via --url, --file, or INFLYTE_URLS")
	}

	return targets, nil
}

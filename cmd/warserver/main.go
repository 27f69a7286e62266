package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wizardswar/wizards-war-go/internal/config"
	"github.com/wizardswar/wizards-war-go/internal/game"
	"github.com/wizardswar/wizards-war-go/internal/repository"
	"github.com/wizardswar/wizards-war-go/internal/server"
)

var (
	configPath = flag.String("config", "", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting wizards-war server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	store, err := repository.NewStore(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to open match history store", zap.Error(err))
	}
	defer store.Close()

	baseOpts, err := matchOptions(cfg.Game)
	if err != nil {
		logger.Fatal("invalid game configuration", zap.Error(err))
	}

	engine := game.NewEngine(logger)
	gateway := server.NewGateway(cfg.Server.WebSocket, engine, store, baseOpts, logger)

	if err := gateway.Start(ctx); err != nil {
		logger.Fatal("gateway failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

// matchOptions builds the default match options from configuration,
// loading deck files when configured.
func matchOptions(cfg config.GameConfig) (game.MatchOptions, error) {
	rules := game.Rules{
		SeedDistractionRounds: cfg.SeedDistractionRounds,
		ItemDistractionRounds: cfg.ItemDistractionRounds,
		TableItems:            cfg.TableItems,
		Strategy:              cfg.Strategy,
	}
	opts := game.MatchOptions{Rules: &rules}

	if cfg.PlayerDeckFile != "" || cfg.OpponentDeckFile != "" {
		playerDeck, err := loadDeck(cfg.PlayerDeckFile)
		if err != nil {
			return opts, err
		}
		oppoDeck, err := loadDeck(cfg.OpponentDeckFile)
		if err != nil {
			return opts, err
		}
		opts.PlayerDeck, opts.OppoDeck = playerDeck, oppoDeck
	}
	return opts, nil
}

func loadDeck(path string) ([]game.Card, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck file %s: %w", path, err)
	}
	deck, err := game.ParseDeck(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing deck file %s: %w", path, err)
	}
	return deck, nil
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

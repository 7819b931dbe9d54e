package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/monbattle/internal/ai"
	"github.com/udisondev/monbattle/internal/config"
	"github.com/udisondev/monbattle/internal/data"
	"github.com/udisondev/monbattle/internal/db"
	"github.com/udisondev/monbattle/internal/sim"
)

const ConfigPath = "config/battlesim.yaml"

// progressInterval is the period of the progress log line.
const progressInterval = 5 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := ConfigPath
	if p := os.Getenv("MONBATTLE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBattleSim(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("battlesim starting",
		"name", cfg.Name,
		"battles", cfg.Battles,
		"workers", cfg.Workers,
		"log_level", cfg.LogLevel)

	if err := loadData(cfg.MoveOverrides); err != nil {
		return err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var (
		done int64
		sink sim.Sink
		repo *db.BattleRepository
	)
	if cfg.Database.Enabled {
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")
		repo = database.Battles()
	}
	sink = func(ctx context.Context, res sim.Result) error {
		atomic.AddInt64(&done, 1)
		if repo == nil {
			return nil
		}
		return repo.Save(ctx, recordOf(cfg.Name, res))
	}

	setup := setupOf(cfg)
	finished := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	var results []sim.Result
	g.Go(func() error {
		defer close(finished)
		var err error
		results, err = sim.RunBatch(gctx, setup, sim.Batch{
			Battles:   cfg.Battles,
			FirstSeed: cfg.FirstSeed,
			Workers:   cfg.Workers,
		}, sink)
		if err != nil {
			return fmt.Errorf("batch %s: %w", cfg.Name, err)
		}
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-finished:
				return nil
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				slog.Info("progress", "done", atomic.LoadInt64(&done), "battles", cfg.Battles)
			}
		}
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s := sim.Summarize(results)
	slog.Info("battlesim finished",
		"battles", s.Battles,
		"wins_0", s.Wins[0],
		"wins_1", s.Wins[1],
		"draws", s.Draws,
		"fled", s.Fled,
		"avg_turns", s.AvgTurns(),
		"max_turns", s.MaxTurn)

	if repo != nil {
		stats, err := repo.Stats(ctx, cfg.Name)
		if err != nil {
			return fmt.Errorf("reading batch stats: %w", err)
		}
		slog.Info("stored records", "batch", cfg.Name, "battles", stats.Battles, "avg_turns", stats.AvgTurns)
	}
	return nil
}

func loadData(overrides string) error {
	if err := data.LoadAll(); err != nil {
		return fmt.Errorf("loading data: %w", err)
	}
	if overrides == "" {
		return nil
	}
	f, err := os.Open(overrides)
	if err != nil {
		return fmt.Errorf("opening move overrides: %w", err)
	}
	defer f.Close()
	if err := data.LoadMoveOverrides(f); err != nil {
		return fmt.Errorf("loading move overrides %s: %w", overrides, err)
	}
	slog.Info("move overrides loaded", "path", overrides)
	return nil
}

func setupOf(cfg config.BattleSim) sim.Setup {
	setup := sim.Setup{
		Name:     cfg.Name,
		Size:     cfg.Size,
		Roaming:  cfg.Roaming,
		MaxTurns: cfg.MaxTurns,
	}
	if cfg.LogLevel == "debug" {
		setup.Logger = slog.Default()
	}
	for i, team := range cfg.Teams {
		side := sim.Side{
			Level: ai.Level(team.AILevel),
			Noise: cfg.Noise(team.AILevel),
			Bag:   team.Bag,
		}
		for _, m := range team.Members {
			side.Members = append(side.Members, sim.Member{
				Species: m.Species,
				Name:    m.Name,
				Level:   m.Level,
				Ability: m.Ability,
				Item:    m.Item,
				Moves:   m.Moves,
			})
		}
		setup.Sides[i] = side
	}
	return setup
}

func recordOf(batch string, res sim.Result) db.BattleRecord {
	return db.BattleRecord{
		ID:        res.ID,
		Batch:     batch,
		Seed:      res.Seed,
		Winner:    res.Winner,
		Fled:      res.Fled,
		Turns:     res.Turns,
		Survivors: res.Survivors,
		RNGDraws:  res.Draws,
		StartedAt: res.StartedAt,
		Duration:  res.Duration,
	}
}

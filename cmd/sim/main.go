package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/quiver/internal/config"
	"github.com/tomz197/quiver/internal/level"
	"github.com/tomz197/quiver/internal/logging"
	"github.com/tomz197/quiver/internal/loop"
	"github.com/tomz197/quiver/internal/object"
	"github.com/tomz197/quiver/internal/physics"
)

const (
	defaultTicks      = 5000
	defaultThrowEvery = 60
)

type settings struct {
	ticks      int
	realtime   bool
	startLevel int
	aim        physics.Vec
	autoAim    bool // No QUIVER_AIM: search each level for a winning aim
	throwEvery int
}

func main() {
	logger := logging.Stderr(logging.Options{
		Level:  config.GetEnv("QUIVER_LOG_LEVEL", "info"),
		Format: logging.Format(config.GetEnv("QUIVER_LOG_FORMAT", "")),
		Prefix: "quiver",
	})

	cfg, err := loadSettings()
	if err != nil {
		logger.Fatal("bad configuration", "err", err)
	}
	logger.Info("sim config",
		"ticks", cfg.ticks,
		"realtime", cfg.realtime,
		"start", cfg.startLevel,
		"aim", cfg.aim,
		"auto", cfg.autoAim,
		"every", cfg.throwEvery,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := loop.NewSession(loop.Options{
		Source:     level.Builtin(),
		StartLevel: cfg.startLevel,
		Logger:     logger,
	})

	opts := loop.RunOptions{MaxTicks: cfg.ticks}
	if cfg.realtime {
		opts.FrameTime = config.TargetFrameTime
	}

	err = loop.Run(ctx, s, throwScript(cfg, logger), opts)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted", "tick", s.Ticks)
	case err != nil:
		logger.Fatal("simulation failed", "err", err)
	}

	logger.Info("done",
		"state", s.GameState,
		"level", s.LevelNumber,
		"score", s.Score,
		"throws", s.TotalThrows,
		"ticks", s.Ticks,
	)
}

func loadSettings() (settings, error) {
	var cfg settings
	var errs []error
	var err error

	cfg.ticks, err = config.GetEnvInt("QUIVER_TICKS", defaultTicks)
	errs = append(errs, err)
	cfg.realtime, err = config.GetEnvBool("QUIVER_REALTIME", false)
	errs = append(errs, err)
	cfg.startLevel, err = config.GetEnvInt("QUIVER_START_LEVEL", 1)
	errs = append(errs, err)
	cfg.throwEvery, err = config.GetEnvInt("QUIVER_THROW_EVERY", defaultThrowEvery)
	errs = append(errs, err)
	cfg.autoAim = config.GetEnv("QUIVER_AIM", "") == ""
	x, y, err := config.GetEnvPair("QUIVER_AIM", 0, 0)
	errs = append(errs, err)
	cfg.aim = physics.V(x, y)

	if cfg.throwEvery < 1 {
		cfg.throwEvery = 1
	}
	return cfg, errors.Join(errs...)
}

// throwScript confirms the start screen, then throws every few ticks, at the
// configured aim point or at one found by searching the current level.
func throwScript(cfg settings, logger *log.Logger) loop.Script {
	aims := make(map[int]physics.Vec)
	return loop.ScriptFunc(func(tick int, s *loop.Session) loop.Input {
		switch s.GameState {
		case loop.GameStateStart:
			return loop.Input{Confirm: true}
		case loop.GameStatePlaying:
			if tick%cfg.throwEvery != 0 {
				return loop.Input{}
			}
			aim := cfg.aim
			if cfg.autoAim {
				aim = levelAim(s, aims, logger)
			}
			path := object.Preview(s.UpdateContext(), aim, s.Level.Start, 0)
			if len(path) > 0 {
				logger.Debug("aim preview", "points", len(path), "end", path[len(path)-1])
			}
			return loop.Input{Aim: aim, Throw: true}
		}
		return loop.Input{}
	})
}

// levelAim returns a winning aim for the current level, searching once per
// level. When nothing on the field wins it falls back to the target itself.
func levelAim(s *loop.Session, cache map[int]physics.Vec, logger *log.Logger) physics.Vec {
	if aim, ok := cache[s.LevelNumber]; ok {
		return aim
	}
	aim, ok, err := object.FindAim(s.UpdateContext(), s.Level.Start, s.Level.IsWin, object.AimSearch{})
	switch {
	case err != nil:
		logger.Error("aim search failed", "level", s.LevelNumber, "err", err)
		aim = s.Level.Target
	case !ok:
		logger.Warn("no winning aim", "level", s.LevelNumber)
		aim = s.Level.Target
	default:
		logger.Info("aim found", "level", s.LevelNumber, "aim", aim)
	}
	cache[s.LevelNumber] = aim
	return aim
}

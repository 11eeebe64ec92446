// Package loop drives a play session: level loading, throws, simulation
// ticks, win detection and scoring.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/tomz197/quiver/internal/physics"
)

// Input is what the player did since the previous tick.
type Input struct {
	Aim     physics.Vec // Pointer position in field coordinates
	Throw   bool        // Release a projectile toward Aim
	Confirm bool        // Leave the start screen
	Quit    bool
}

// Script supplies the input for each tick of Run.
type Script interface {
	Next(tick int, s *Session) Input
}

// ScriptFunc adapts a function to Script.
type ScriptFunc func(tick int, s *Session) Input

func (f ScriptFunc) Next(tick int, s *Session) Input {
	return f(tick, s)
}

// RunOptions bound a Run.
type RunOptions struct {
	MaxTicks  int           // Stop after this many ticks, 0 for no limit
	FrameTime time.Duration // Pace ticks to real time, 0 to run flat out
}

// Tick advances the session by one frame.
func Tick(s *Session, in Input) error {
	if in.Quit {
		s.Running = false
		return nil
	}
	s.Ticks++

	switch s.GameState {
	case GameStateStart:
		if in.Confirm {
			return startGame(s)
		}
	case GameStatePlaying:
		return updatePlayingState(s, in)
	case GameStateFinished:
	}
	return nil
}

// Run ticks the session with input from script until it finishes, quits,
// reaches opts.MaxTicks or ctx is cancelled. With no tick limit the script
// is responsible for eventually finishing or quitting.
func Run(ctx context.Context, s *Session, script Script, opts RunOptions) error {
	for tick := 0; s.Running && s.GameState != GameStateFinished; tick++ {
		if opts.MaxTicks > 0 && tick >= opts.MaxTicks {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frameStart := time.Now()

		if err := Tick(s, script.Next(tick, s)); err != nil {
			return fmt.Errorf("tick %d: %w", tick, err)
		}

		// Frame timing
		if opts.FrameTime > 0 {
			elapsed := time.Since(frameStart)
			if elapsed < opts.FrameTime {
				time.Sleep(opts.FrameTime - elapsed)
			}
		}
	}
	return nil
}

// startGame leaves the start screen and loads the first level.
func startGame(s *Session) error {
	s.Score = 0
	s.TotalThrows = 0
	if err := loadLevel(s, s.StartLevel); err != nil {
		return err
	}
	s.GameState = GameStatePlaying
	return nil
}

// loadLevel replaces the current level and clears every projectile.
func loadLevel(s *Session, n int) error {
	l, err := s.source.Load(n)
	if err != nil {
		return fmt.Errorf("load level %d: %w", n, err)
	}
	s.Level = l
	s.LevelNumber = l.Number
	s.Pool.Reset()
	s.Throws = 0

	s.log.Info("level loaded",
		"level", l.Number,
		"objects", l.Len(),
		"wind", l.Wind,
		"gravity", l.Gravity,
	)
	return nil
}

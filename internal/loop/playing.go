package loop

import (
	"fmt"

	"github.com/tomz197/quiver/internal/object"
	"github.com/tomz197/quiver/internal/physics"
)

// updatePlayingState handles the playing game state.
func updatePlayingState(s *Session, in Input) error {
	if in.Throw {
		slot := s.Pool.Spawn(in.Aim, s.Level.Start)
		s.Throws++
		s.TotalThrows++
		pr := s.Pool.Slot(slot)
		s.log.Debug("throw", "slot", slot, "from", pr.Pos, "vel", pr.Vel, "throws", s.Throws)
	}

	if _, err := s.Pool.TickAll(s.UpdateContext()); err != nil {
		return fmt.Errorf("level %d: %w", s.LevelNumber, err)
	}
	logCollisions(s)

	if checkWin(s) {
		return completeLevel(s)
	}
	return nil
}

// logCollisions reports every projectile that hit something this tick.
func logCollisions(s *Session) {
	s.Pool.Each(func(slot int, pr *object.Projectile) {
		if pr.Last.Kind == physics.CollisionNone {
			return
		}
		s.log.Debug("collision",
			"slot", slot,
			"kind", pr.Last.String(),
			"steps", pr.Steps,
			"pos", pr.Pos,
		)
	})
}

// checkWin reports whether any active projectile is inside the target.
func checkWin(s *Session) bool {
	return s.Pool.Any(func(pr *object.Projectile) bool {
		return s.Level.IsWin(pr.Pos)
	})
}

// completeLevel scores the cleared level and moves on.
func completeLevel(s *Session) error {
	gained := LevelScore(s.Throws)
	s.Score += gained
	s.log.Info("level cleared",
		"level", s.LevelNumber,
		"throws", s.Throws,
		"gained", gained,
		"score", s.Score,
	)

	next := s.LevelNumber + 1
	if next > s.LastLevel {
		s.Pool.Reset()
		s.GameState = GameStateFinished
		s.log.Info("campaign finished", "score", s.Score, "throws", s.TotalThrows)
		return nil
	}
	return loadLevel(s, next)
}

package loop

import (
	"github.com/charmbracelet/log"
	"github.com/tomz197/quiver/internal/config"
	"github.com/tomz197/quiver/internal/level"
	"github.com/tomz197/quiver/internal/logging"
	"github.com/tomz197/quiver/internal/object"
	"github.com/tomz197/quiver/internal/physics"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen, waiting for confirm
	GameStatePlaying                   // A level is loaded and throws are simulated
	GameStateFinished                  // Every level cleared
)

func (g GameState) String() string {
	switch g {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session holds everything one playthrough needs. It is owned by whoever
// drives the loop and passed to Tick explicitly; the loop package keeps no
// state of its own.
type Session struct {
	GameState   GameState
	Running     bool
	Level       *level.Level // nil until the first level is loaded
	Pool        *object.Pool
	LevelNumber int
	LastLevel   int
	StartLevel  int
	Score       int
	Throws      int // Throws on the current level
	TotalThrows int
	Ticks       int

	source level.Source
	log    *log.Logger
}

// Options configures NewSession. Zero values pick sensible defaults.
type Options struct {
	Source     level.Source // Defaults to level.Builtin()
	StartLevel int          // Defaults to 1
	LastLevel  int          // Defaults to the source's Len, or config.LastLevel
	Logger     *log.Logger  // Defaults to a discarding logger
}

// NewSession creates a session on the start screen.
func NewSession(opts Options) *Session {
	if opts.Source == nil {
		opts.Source = level.Builtin()
	}
	if opts.StartLevel < 1 {
		opts.StartLevel = 1
	}
	if opts.LastLevel < 1 {
		opts.LastLevel = config.LastLevel
		if c, ok := opts.Source.(level.Counter); ok && c.Len() > 0 {
			opts.LastLevel = c.Len()
		}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Session{
		GameState:  GameStateStart,
		Running:    true,
		Pool:       object.NewPool(),
		StartLevel: opts.StartLevel,
		LastLevel:  opts.LastLevel,
		source:     opts.Source,
		log:        opts.Logger,
	}
}

// UpdateContext creates an UpdateContext for the current level.
func (s *Session) UpdateContext() object.UpdateContext {
	if s.Level == nil {
		return object.UpdateContext{Field: physics.DefaultField()}
	}
	return object.NewUpdateContext(s.Level)
}

package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/lavaballs/internal/loop/config"
	"github.com/tomz197/lavaballs/internal/object"
)

// Options configures a Session.
type Options struct {
	Screen object.Screen // Zero value selects the default view size
	Seed   int64         // 0 seeds from the clock

	// DynamicFireRate re-arms the fire timer with FireRate after every volley.
	// By default the cadence is fixed at FireRate(0).
	DynamicFireRate bool

	// RetainFallenPowerUps keeps power-ups that fall past the screen.
	RetainFallenPowerUps bool

	Logger *log.Logger
}

// FireRate returns the volley interval for the given number of balls.
func FireRate(balls int) time.Duration {
	return max(config.MinFireInterval, config.BaseFireInterval-time.Duration(balls)*config.FireIntervalPerBall)
}

// timer is a repeating interval driven by elapsed frame time.
type timer struct {
	period  time.Duration
	elapsed time.Duration
}

// advance adds dt and returns how many periods completed.
func (t *timer) advance(dt time.Duration) int {
	if t.period <= 0 {
		return 0
	}
	t.elapsed += dt
	n := 0
	for t.elapsed >= t.period {
		t.elapsed -= t.period
		n++
	}
	return n
}

func (t *timer) reset(period time.Duration) {
	t.period = period
	t.elapsed = 0
}

// Session is the frame orchestrator. It owns the world and the two timers
// (spawner and fire trigger) and runs them all from the caller's goroutine,
// so the world only ever has one writer.
type Session struct {
	World *WorldState

	spawn       timer
	fire        timer
	dynamicFire bool
	logger      *log.Logger
}

// NewSession creates a world and spawns the first wave immediately.
func NewSession(opts Options) *Session {
	screen := opts.Screen
	if screen.Width == 0 || screen.Height == 0 {
		screen = object.NewScreen(config.ViewWidth, config.ViewHeight)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world := NewWorldState(screen, rand.New(rand.NewSource(seed)))
	world.RetainFallenPowerUps = opts.RetainFallenPowerUps

	s := &Session{
		World:       world,
		dynamicFire: opts.DynamicFireRate,
		logger:      logger,
	}
	s.start()
	logger.Debug("session started", "seed", seed, "width", screen.Width, "height", screen.Height)
	return s
}

// start spawns the opening wave and arms both timers.
func (s *Session) start() {
	s.World.SpawnWave()
	s.spawn.reset(config.SpawnInterval)
	s.fire.reset(FireRate(0))
}

// State returns the current phase.
func (s *Session) State() GameState {
	return s.World.State()
}

// FireInterval returns the current volley period.
func (s *Session) FireInterval() time.Duration {
	return s.fire.period
}

// Advance runs the timers that fell due during dt and then one frame tick.
// Does nothing once the game is over.
func (s *Session) Advance(dt time.Duration) {
	if s.World.GameOver {
		return
	}
	for n := s.spawn.advance(dt); n > 0; n-- {
		s.World.SpawnWave()
	}
	for n := s.fire.advance(dt); n > 0; n-- {
		s.World.Fire()
		if s.dynamicFire {
			s.fire.period = FireRate(len(s.World.Balls))
		}
	}

	lives := s.World.Lives
	s.World.Tick()
	if s.World.Lives < lives {
		s.logger.Debug("life lost", "lives", s.World.Lives, "score", s.World.Score)
	}
	if s.World.GameOver {
		s.logger.Info("game over", "score", s.World.Score, "level", s.World.BallLevel())
	}
}

// PointerMoved centres the player on logical x.
func (s *Session) PointerMoved(x float64) {
	if s.World.GameOver {
		return
	}
	s.World.Player.CenterOn(x)
}

// Nudge moves the player horizontally by dx.
func (s *Session) Nudge(dx float64) {
	if s.World.GameOver {
		return
	}
	p := s.World.Player
	p.SetHorizontalPosition(p.X + dx)
}

// Restart resets the world and re-enters play. It only acts while the game
// is over and reports whether it did.
func (s *Session) Restart() bool {
	if !s.World.GameOver {
		return false
	}
	s.logger.Info("restart", "previous_score", s.World.Score)
	s.World.Reset()
	s.start()
	return true
}

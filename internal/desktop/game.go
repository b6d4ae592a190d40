// Package desktop hosts a Session in a window, drawing with ebiten and
// reading the mouse and keyboard.
package desktop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tomz197/lavaballs/internal/loop"
	"github.com/tomz197/lavaballs/internal/loop/config"
)

const (
	keyStep        = 10.0 // Units per tick while an arrow key is held
	bannerDuration = 1.2  // Seconds
	bannerStartY   = -60.0
)

// Options configures a windowed game.
type Options struct {
	loop.Options

	Music        loop.MusicPlayer // Optional
	MusicDelay   time.Duration
	PlayerSprite string // Image file; empty or unreadable falls back to a solid block
	BulletSprite string
}

// frameInput is one tick's worth of window input.
type frameInput struct {
	quit, left, right, restart bool
	anyKey                     bool
	cursorX                    int
	cursorMoved                bool
}

// Game implements ebiten.Game on top of a Session.
type Game struct {
	session *loop.Session
	logger  *log.Logger
	music   loop.MusicPlayer
	musicIn time.Duration // Remaining delay before the first autoplay attempt

	playerImg *ebiten.Image
	bulletImg *ebiten.Image

	banner  *gween.Tween
	bannerY float32

	cursorX     int
	cursorKnown bool

	mesh   meshBuffer
	labels map[string]*ebiten.Image
}

// New creates the game and loads sprites. Missing sprites are logged and
// replaced by solid shapes.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Logger = logger
	if opts.MusicDelay <= 0 {
		opts.MusicDelay = config.MusicDelay
	}

	return &Game{
		session:   loop.NewSession(opts.Options),
		logger:    logger,
		music:     opts.Music,
		musicIn:   opts.MusicDelay,
		playerImg: loadSprite(logger, opts.PlayerSprite),
		bulletImg: loadSprite(logger, opts.BulletSprite),
	}
}

func loadSprite(logger *log.Logger, path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Warn("sprite not loaded, using fallback", "path", path, "err", err)
		return nil
	}
	return img
}

// Session exposes the simulation being displayed.
func (g *Game) Session() *loop.Session {
	return g.session
}

// Update reads input and advances the simulation by one tick.
func (g *Game) Update() error {
	x, _ := ebiten.CursorPosition()
	in := frameInput{
		quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		anyKey:  len(inpututil.AppendJustPressedKeys(nil)) > 0,
		cursorX: x,
	}
	if g.cursorKnown && x != g.cursorX {
		in.cursorMoved = true
	}
	g.cursorX, g.cursorKnown = x, true

	return g.step(in, config.TargetFrameTime)
}

// step applies input and advances the world by dt.
func (g *Game) step(in frameInput, dt time.Duration) error {
	if in.quit {
		return ebiten.Termination
	}
	g.updateMusic(in.anyKey, dt)

	if in.cursorMoved {
		g.session.PointerMoved(float64(in.cursorX))
	}
	if in.left {
		g.session.Nudge(-keyStep)
	}
	if in.right {
		g.session.Nudge(keyStep)
	}
	if in.restart && g.session.Restart() {
		g.banner = nil
	}

	g.session.Advance(dt)

	if g.session.State() == loop.GameStateOver {
		if g.banner == nil {
			g.banner = gween.New(bannerStartY, float32(g.session.World.Screen.CenterY), bannerDuration, ease.OutBounce)
		}
		g.bannerY, _ = g.banner.Update(float32(dt.Seconds()))
	}
	return nil
}

// updateMusic makes the delayed autoplay attempt and retries on key presses.
func (g *Game) updateMusic(keyPressed bool, dt time.Duration) {
	if g.music == nil || g.music.Started() {
		return
	}
	due := false
	if g.musicIn > 0 {
		g.musicIn -= dt
		due = g.musicIn <= 0
	}
	if !due && !keyPressed {
		return
	}
	if err := g.music.Start(); err != nil {
		g.logger.Warn("background music could not start, waiting for a key press", "err", err)
	}
}

// Layout keeps the logical play area regardless of window size.
func (g *Game) Layout(_, _ int) (int, int) {
	s := g.session.World.Screen
	return s.Width, s.Height
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(opts Options) error {
	g := New(opts)
	s := g.session.World.Screen
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle("Lava Balls")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

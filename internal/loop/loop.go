// Package loop runs the simulation: world state, collision resolution, the
// frame orchestrator and the terminal driver that hosts it.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/lavaballs/internal/draw"
	"github.com/tomz197/lavaballs/internal/input"
	"github.com/tomz197/lavaballs/internal/loop/config"
	"github.com/tomz197/lavaballs/internal/object"
)

// MusicPlayer is the background-audio collaborator. Failures never reach the world.
type MusicPlayer interface {
	Start() error
	Started() bool
}

// TerminalOptions configures the terminal driver.
type TerminalOptions struct {
	Options

	TermSizeFunc draw.TermSizeFunc
	Music        MusicPlayer   // Optional
	MusicDelay   time.Duration // Delay before the first autoplay attempt
}

// terminal holds the per-connection rendering state.
type terminal struct {
	session      *Session
	opts         TerminalOptions
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Frame output, flushed to the terminal
	overlay      *draw.ChunkWriter // Text, flushed into chunkWriter after the canvas
	writer       io.Writer
	stream       *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
}

// Run plays one game on a terminal until the player quits, input ends or ctx
// is cancelled. The frame tick, the timers and input handling all run on
// this goroutine.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts TerminalOptions) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.MusicDelay <= 0 {
		opts.MusicDelay = config.MusicDelay
	}

	session := NewSession(opts.Options)
	t := &terminal{
		session:      session,
		opts:         opts,
		writer:       w,
		stream:       input.StartStream(r),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	screen := session.World.Screen
	t.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, float64(screen.Width), float64(screen.Height))
	t.canvas.SetOffset(offsetCol, offsetRow)
	t.chunkWriter = draw.NewChunkWriter(w, offsetCol, offsetRow)
	t.overlay = draw.NewChunkWriter(t.chunkWriter, offsetCol, offsetRow)

	draw.HideCursor(w)
	draw.EnableMouse(w)
	defer func() {
		draw.DisableMouse(w)
		draw.ShowCursor(w)
		draw.ClearScreen(w)
	}()
	draw.ClearScreen(w)

	ticker := time.NewTicker(config.TargetFrameTime)
	defer ticker.Stop()

	var musicDue <-chan time.Time
	if opts.Music != nil {
		musicTimer := time.NewTimer(opts.MusicDelay)
		defer musicTimer.Stop()
		musicDue = musicTimer.C
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-musicDue:
			musicDue = nil
			t.startMusic()
		case now := <-ticker.C:
			dt := min(now.Sub(last), config.MaxFrameDelta)
			last = now

			if !t.processInput(now) {
				return nil
			}
			session.Advance(dt)

			t.updateScreen()
			if err := t.drawFrame(); err != nil {
				return fmt.Errorf("draw frame: %w", err)
			}
		}
	}
}

// processInput applies this frame's input. Returns false when the game should end.
func (t *terminal) processInput(now time.Time) bool {
	in := input.ReadInput(t.stream)
	if in.Quit || t.stream.Closed() {
		return false
	}

	if in.KeyPressed() || in.PointerMoved {
		t.lastInput = now
	} else if now.Sub(t.lastInput) > config.InactivityDisconnect {
		t.session.logger.Info("disconnecting idle player")
		return false
	}

	if in.KeyPressed() && t.opts.Music != nil && !t.opts.Music.Started() {
		t.startMusic()
	}

	if in.PointerMoved {
		x, _ := t.canvas.TerminalToLogical(in.PointerCol, in.PointerRow)
		t.session.PointerMoved(x)
	}
	if in.Left {
		t.session.Nudge(-config.KeyboardStep)
	}
	if in.Right {
		t.session.Nudge(config.KeyboardStep)
	}
	if in.Restart {
		t.session.Restart()
	}
	return true
}

// startMusic makes one best-effort attempt to start the background track.
func (t *terminal) startMusic() {
	if t.opts.Music.Started() {
		return
	}
	if err := t.opts.Music.Start(); err != nil {
		t.session.logger.Warn("background music could not start, waiting for a key press", "err", err)
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// The logical play area never changes; only its mapping onto the terminal does.
func (t *terminal) updateScreen() {
	termWidth, termHeight, err := t.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != t.canvas.TerminalWidth() || renderHeight != t.canvas.TerminalHeight() ||
		offsetCol != t.canvas.OffsetCol() || offsetRow != t.canvas.OffsetRow() {
		draw.ClearScreen(t.writer)
	}

	t.canvas.Resize(renderWidth, renderHeight)
	t.canvas.SetOffset(offsetCol, offsetRow)
	t.chunkWriter.SetOffset(offsetCol, offsetRow)
	t.overlay.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame clears the screen and draws the world and HUD.
func (t *terminal) drawFrame() error {
	t.chunkWriter.WriteString("\033[H\033[2J")
	t.canvas.Clear()

	world := t.session.World
	world.Draw(object.DrawContext{Canvas: t.canvas, Text: t.overlay})
	drawHUD(world, t.canvas, t.overlay)

	// Shapes first so text lands on top.
	if err := t.canvas.Render(t.chunkWriter); err != nil {
		return err
	}
	if err := t.overlay.Flush(); err != nil {
		return err
	}
	return t.chunkWriter.Flush()
}

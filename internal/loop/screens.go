package loop

import (
	"fmt"

	"github.com/tomz197/lavaballs/internal/draw"
	"github.com/tomz197/lavaballs/internal/object"
)

// HUD layout in logical units.
const (
	healthBoxX, healthBoxY = 10.0, 10.0
	healthBoxW, healthBoxH = 200.0, 70.0
	lifeIconX, lifeIconY   = 20.0, 35.0
	lifeIconW, lifeIconH   = 32.0, 40.0
	lifeIconStep           = 40.0
	scoreMarginX           = 30.0
	scoreY                 = 40.0
)

// GameOverMessage is shown when the last life is lost.
const GameOverMessage = "You proved it."

// Draw renders the world in back-to-front order: lava, player, bullets,
// balls, power-ups, particles.
func (w *WorldState) Draw(ctx object.DrawContext) {
	ctx.Canvas.FillRect(0, w.Screen.FloorY(), float64(w.Screen.Width), object.LavaHeight, draw.ColorLava)
	w.Player.Draw(ctx)
	for _, b := range w.Player.Bullets {
		b.Draw(ctx)
	}
	for _, b := range w.Balls {
		b.Draw(ctx)
	}
	for _, p := range w.PowerUps {
		p.Draw(ctx)
	}
	for _, p := range w.Particles {
		p.Draw(ctx)
	}
}

// drawHUD draws the score, the lives box and, once over, the game-over message.
// Shapes go to the canvas; text goes to the chunk writer, drawn on top.
func drawHUD(w *WorldState, canvas *draw.Canvas, cw *draw.ChunkWriter) {
	canvas.FillRect(healthBoxX, healthBoxY, healthBoxW, healthBoxH, draw.ColorHUD)
	for i := 0; i < w.Lives; i++ {
		canvas.FillRect(lifeIconX+float64(i)*lifeIconStep, lifeIconY, lifeIconW, lifeIconH, draw.ColorLava)
	}

	col, row := canvas.LogicalToTerminal(healthBoxX+healthBoxW/2, healthBoxY)
	cw.WriteCenteredAt(col, row, draw.RGB(0, 0, 0), "HEALTH")

	score := fmt.Sprintf("Score: %d", w.Score)
	col, row = canvas.LogicalToTerminal(float64(w.Screen.Width)-scoreMarginX, scoreY)
	cw.WriteColorAt(col-len(score), row, draw.RGB(0xcc, 0xcc, 0xcc), score)

	if w.GameOver {
		drawGameOver(w, canvas, cw)
	}
}

func drawGameOver(w *WorldState, canvas *draw.Canvas, cw *draw.ChunkWriter) {
	col, row := canvas.LogicalToTerminal(float64(w.Screen.CenterX), float64(w.Screen.CenterY))
	cw.WriteCenteredAt(col, row, draw.ColorAlert, GameOverMessage)
	cw.WriteCenteredAt(col, row+2, draw.ColorHUD, fmt.Sprintf("Score: %d", w.Score))
	cw.WriteCenteredAt(col, row+4, draw.ColorHUD, "Press R to restart, Q to quit")
}

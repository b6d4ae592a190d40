package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/lavaballs/internal/draw"
	"github.com/tomz197/lavaballs/internal/loop"
	"github.com/tomz197/lavaballs/internal/object"
)

// HUD layout, matching the terminal screens.
const (
	healthBoxX, healthBoxY = 10, 10
	healthBoxW, healthBoxH = 200, 70
	lifeIconX, lifeIconY   = 20, 35
	lifeIconW, lifeIconH   = 32, 40
	lifeIconStep           = 40
	scoreMarginX           = 30
	scoreY                 = 40

	bulletW, bulletH = 8, 20
	particleRadius   = 3
	glyphW, glyphH   = 6, 16 // ebitenutil debug font cell
)

var whitePixel *ebiten.Image

// ensureWhitePixel returns the 1x1 source image used for untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// printTinted draws debug-font text in c. Rendered labels are cached.
func (g *Game) printTinted(screen *ebiten.Image, s string, x, y int, c color.Color) {
	img, ok := g.labels[s]
	if !ok {
		img = ebiten.NewImage(len(s)*glyphW, glyphH)
		ebitenutil.DebugPrint(img, s)
		if g.labels == nil {
			g.labels = make(map[string]*ebiten.Image)
		}
		g.labels[s] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(c)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

// rgba converts a palette colour to an opaque image colour.
func rgba(c draw.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// meshBuffer holds reusable vertex and index storage for polygon fills.
type meshBuffer struct {
	points   []draw.Point
	vertices []ebiten.Vertex
	indices  []uint16
}

// fan triangulates a convex polygon around its first vertex.
func (m *meshBuffer) fan(pts []draw.Point, c color.RGBA) ([]ebiten.Vertex, []uint16) {
	m.vertices = m.vertices[:0]
	m.indices = m.indices[:0]
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for _, p := range pts {
		m.vertices = append(m.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		m.indices = append(m.indices, 0, uint16(i), uint16(i+1))
	}
	return m.vertices, m.indices
}

// Draw renders the world back to front, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.session.World
	screen.Fill(color.Black)

	vector.DrawFilledRect(screen, 0, float32(w.Screen.FloorY()), float32(w.Screen.Width), object.LavaHeight, rgba(draw.ColorLava), false)

	g.drawPlayer(screen, w.Player)
	for _, b := range w.Player.Bullets {
		g.drawBullet(screen, b)
	}
	for _, b := range w.Balls {
		g.drawBall(screen, b)
	}
	for _, p := range w.PowerUps {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), rgba(draw.ColorPowerUp), true)
		ebitenutil.DebugPrintAt(screen, "*", int(p.X)-glyphW/2, int(p.Y)-glyphH/2)
	}
	for _, p := range w.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), particleRadius, rgba(draw.ColorSpark.Fade(p.Alpha)), true)
	}

	g.drawHUD(screen, w)
}

func (g *Game) drawPlayer(screen *ebiten.Image, p *object.Player) {
	if g.playerImg == nil {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), rgba(draw.ColorPlayer), false)
		return
	}
	drawSprite(screen, g.playerImg, p.X, p.Y, p.Width, p.Height)
}

func (g *Game) drawBullet(screen *ebiten.Image, b *object.Bullet) {
	x, y := b.X-bulletW/2, b.Y
	if g.bulletImg == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), bulletW, bulletH, rgba(draw.ColorBullet), false)
		return
	}
	drawSprite(screen, g.bulletImg, x, y, bulletW, bulletH)
}

// drawSprite scales img to fill the w by h box at (x, y).
func drawSprite(screen, img *ebiten.Image, x, y, w, h float64) {
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (g *Game) drawBall(screen *ebiten.Image, b *object.Ball) {
	g.mesh.points = draw.PolygonVertices(g.mesh.points, b.X, b.Y, b.Radius, object.BallSides)
	vs, is := g.mesh.fan(g.mesh.points, rgba(b.Color()))
	screen.DrawTriangles(vs, is, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})

	if !b.IsDying() {
		label := fmt.Sprint(b.Health)
		ebitenutil.DebugPrintAt(screen, label, int(b.X)-len(label)*glyphW/2, int(b.Y)-glyphH/2)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, w *loop.WorldState) {
	vector.DrawFilledRect(screen, healthBoxX, healthBoxY, healthBoxW, healthBoxH, rgba(draw.ColorHUD), false)
	for i := 0; i < w.Lives; i++ {
		vector.DrawFilledRect(screen, float32(lifeIconX+i*lifeIconStep), lifeIconY, lifeIconW, lifeIconH, rgba(draw.ColorLava), false)
	}
	g.printTinted(screen, "HEALTH", healthBoxX+healthBoxW/2-3*glyphW, healthBoxY+2, color.Black)

	score := fmt.Sprintf("Score: %d", w.Score)
	ebitenutil.DebugPrintAt(screen, score, w.Screen.Width-scoreMarginX-len(score)*glyphW, scoreY)

	if !w.GameOver {
		return
	}
	y := int(g.bannerY)
	for i, line := range []string{loop.GameOverMessage, score, "Press R to restart, Q to quit"} {
		ebitenutil.DebugPrintAt(screen, line, w.Screen.CenterX-len(line)*glyphW/2, y+i*2*glyphH)
	}
}

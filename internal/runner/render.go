package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	BodyChar   = '█'
	HeadChar   = '◆'
	DuckChar   = '▄'
	HazardChar = '▓'
	FlyerChar  = '▼'
	BonusChar  = '◆'
	GroundChar = '═'
)

// legFrames cycles with the snapshot animation frame.
var legFrames = [][2]rune{
	{'╱', '╲'},
	{'│', '╲'},
	{'╱', '│'},
}

// view maps playfield coordinates onto screen cells.
// Row 0 is the HUD and the ground line sits two rows above the bottom.
type view struct {
	sx, sy  float64
	groundY int
}

func newView(dst *core.Screen, s Snapshot) view {
	groundY := dst.Height() - 2
	v := view{groundY: groundY}
	if s.Width > 0 {
		v.sx = float64(dst.Width()) / s.Width
	}
	if s.Height > 0 {
		v.sy = float64(groundY) / s.Height
	}
	return v
}

// rect converts a playfield box to a cell rect at least one cell in size.
func (v view) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	if y1 > v.groundY {
		y1 = v.groundY
	}
	w := core.Max(x1-x0, 1)
	h := core.Max(y1-y0, 1)
	return core.NewRect(x0, y0, w, h)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	s := g.engine.Snapshot()
	RenderSnapshot(dst, s)
}

// RenderSnapshot draws a snapshot. It is shared by every host that shows the game.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	v := newView(dst, s)

	dst.DrawHLine(0, v.groundY, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range s.Obstacles {
		drawObstacle(dst, v, o)
	}
	drawBody(dst, v, s)

	// HUD
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorBrightWhite)
	hud := fmt.Sprintf(" Lives: %d  Spd: %.1f ", s.Lives, s.Speed)
	dst.DrawTextColor(dst.Width()-len([]rune(hud))-2, 0, hud, core.ColorCyan)

	if s.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if s.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	}
}

func drawObstacle(dst *core.Screen, v view, o ObstacleView) {
	r := v.rect(o.Hitbox)
	switch o.Kind {
	case Hazard:
		dst.DrawRect(r, HazardChar, core.ColorGreen)
	case Flyer:
		dst.DrawRect(r, FlyerChar, core.ColorRed)
	case Bonus:
		dst.DrawRect(r, BonusChar, core.ColorYellow)
	}
}

// drawBody renders the player: a block body with a head, and legs
// animated while running on the ground.
func drawBody(dst *core.Screen, v view, s Snapshot) {
	r := v.rect(s.Player)
	if s.Ducking {
		dst.DrawRect(r, DuckChar, core.ColorOrange)
		dst.SetColor(r.Right()-1, r.Y, HeadChar, core.ColorOrange)
		return
	}

	dst.DrawRect(r, BodyChar, core.ColorOrange)
	dst.SetColor(r.Right()-1, r.Y, HeadChar, core.ColorOrange)

	if r.H < 2 || r.W < 2 {
		return
	}
	legs := legFrames[0]
	if !s.Airborne && len(legFrames) > 0 {
		legs = legFrames[s.AnimFrame%len(legFrames)]
	}
	feet := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.SetColor(x, feet, ' ', core.ColorDefault)
	}
	dst.SetColor(r.X, feet, legs[0], core.ColorOrange)
	dst.SetColor(r.Right()-1, feet, legs[1], core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

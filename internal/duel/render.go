package duel

import (
	"fmt"

	"github.com/nmelnik/bayduel/internal/core"
)

// Visual characters for rendering.
const (
	WallChar       = '█'
	ObstacleChar   = '▒'
	ProjectileChar = '•'
)

// shipGlyphs label the two sides on the map.
var shipGlyphs = [2]rune{'A', 'B'}

// shipColors color each side's ship and projectiles.
var shipColors = [2]core.Color{core.ColorBrightRed, core.ColorBrightGreen}

// Render draws the current match state to the screen buffer: terrain,
// projectiles, ships, HP readouts, and the game-over banner. The map
// is centered on the screen with one HUD row above it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	offX := core.Max(0, (dst.Width()-MapWidth)/2)
	offY := core.Max(1, (dst.Height()-MapHeight)/2)

	// Terrain
	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			switch g.grid.Classify(x, y) {
			case CellWall:
				dst.SetCell(offX+x, offY+y, WallChar, core.ColorGray)
			case CellObstacle:
				dst.SetCell(offX+x, offY+y, ObstacleChar, core.ColorGray)
			}
		}
	}

	// Projectiles, colored by owning side
	for i := range g.ships {
		for j := range g.ships[i].Projectiles {
			p := g.ships[i].Projectiles[j]
			if p.Active {
				dst.SetCell(offX+p.X, offY+p.Y, ProjectileChar, shipColors[i])
			}
		}
	}

	// Ships; a destroyed ship disappears from the map but keeps its
	// HUD entry so the losing side is still readable
	for i := range g.ships {
		s := &g.ships[i]
		if s.Alive() {
			dst.SetCell(offX+s.X, offY+s.Y, shipGlyphs[i], shipColors[i])
		}
	}

	// HUD row above the map
	hudY := offY - 1
	dst.DrawTextColored(offX, hudY, fmt.Sprintf("A HP:%d", core.Max(0, g.ships[0].HP)), shipColors[0])
	p2HUD := fmt.Sprintf("B HP:%d", core.Max(0, g.ships[1].HP))
	dst.DrawTextColored(offX+MapWidth-len(p2HUD), hudY, p2HUD, shipColors[1])

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.over {
		if g.tie {
			drawCenteredMessage(dst, "TIE! Nobody survived!", "Press R to restart")
		} else {
			drawCenteredMessage(dst, fmt.Sprintf("GAME OVER! Winner: %s", g.winner), "Press R to restart")
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Box and text share the screen center, so centered text lands
	// inside the box.
	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

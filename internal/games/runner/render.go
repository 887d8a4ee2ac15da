package runner

import (
	"fmt"
	"strings"

	"github.com/lanerush/lanerush/internal/core"
	"github.com/lanerush/lanerush/internal/progress"
	"github.com/lanerush/lanerush/internal/sim"
)

// shopOrder fixes the slot-number-to-upgrade mapping shown in the shop.
var shopOrder = []progress.Upgrade{
	progress.UpgradeDamage,
	progress.UpgradeFireRate,
	progress.UpgradeSpread,
	progress.UpgradeMagnet,
}

// Corridor projection: the run is drawn top-down, horizon at the top of
// the playfield and the ship near the bottom. World X maps to columns,
// world Z to rows.
const (
	colsPerUnit = 3.0 // Screen columns per world unit laterally
	viewDepth   = 50.0
	playerInset = 3 // Ship rows above the playfield bottom
	hudRows     = 2
)

// Render draws one frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	v := g.viewport(dst)
	g.drawCorridor(dst, v)
	g.drawEntities(dst, v)
	g.drawParticles(dst, v)
	g.drawShip(dst, v)
	g.drawHUD(dst, v)

	switch {
	case g.tracker.GameOver() && g.tracker.Victory():
		g.drawOverlay(dst, "VICTORY",
			fmt.Sprintf("Final score: %d  |  Press R for another run", g.tracker.Score()))
	case g.tracker.GameOver():
		g.drawOverlay(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.tracker.Score()))
	case g.tracker.ShopOpen():
		g.drawShop(dst)
	case g.paused:
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// viewport precomputes the projection for the current screen size.
type viewport struct {
	centerX   int
	topRow    int
	playerRow int
	halfCols  int // Corridor half-width in columns
}

func (g *Game) viewport(dst *core.Screen) viewport {
	laneCount := g.tracker.LaneCount()
	halfUnits := float64(laneCount) * g.cfg.Corridor.LaneWidth / 2

	return viewport{
		centerX:   dst.Width() / 2,
		topRow:    hudRows,
		playerRow: dst.Height() - 1 - playerInset,
		halfCols:  int(halfUnits*colsPerUnit) + 1,
	}
}

// project maps a world position to a screen cell. ok is false for
// positions outside the drawn depth range.
func (v viewport) project(pos core.Vec3) (int, int, bool) {
	rows := float64(v.playerRow - v.topRow)
	row := v.playerRow + int(pos.Z*rows/viewDepth)
	if row < v.topRow || row > v.playerRow+playerInset {
		return 0, 0, false
	}
	col := v.centerX + int(pos.X*colsPerUnit)
	return col, row, true
}

func (g *Game) drawCorridor(dst *core.Screen, v viewport) {
	left := v.centerX - v.halfCols - 1
	right := v.centerX + v.halfCols + 1
	height := v.playerRow + playerInset - v.topRow + 1

	wallColor := core.ColorGray
	if g.flash > 0 {
		wallColor = core.ColorBrightRed
	}
	for y := v.topRow; y < v.topRow+height; y++ {
		dst.SetCell(left, y, '║', wallColor)
		dst.SetCell(right, y, '║', wallColor)
	}

	// Lane dividers, dotted so entities stay readable on top of them.
	laneCount := g.tracker.LaneCount()
	for i := 1; i < laneCount; i++ {
		offset := (float64(i) - float64(laneCount)/2) * g.cfg.Corridor.LaneWidth
		x := v.centerX + int(offset*colsPerUnit)
		for y := v.topRow; y < v.topRow+height; y += 2 {
			dst.SetCell(x, y, '┊', core.ColorGray)
		}
	}
}

func (g *Game) drawEntities(dst *core.Screen, v viewport) {
	for _, e := range g.world.Entities() {
		if !e.Active {
			continue
		}
		x, y, ok := v.project(e.Pos)
		if !ok {
			continue
		}

		if e.Kind == sim.KindShopPortal {
			// Portals span the corridor.
			for dx := -v.halfCols; dx <= v.halfCols; dx++ {
				dst.SetCell(v.centerX+dx, y, '═', core.ColorBrightGreen)
			}
			dst.DrawTextColored(v.centerX-2, y, " ⌂ ", core.ColorBrightGreen)
			continue
		}

		r, c := entityGlyph(e)
		dst.SetCell(x, y, r, c)
		if e.Kind == sim.KindHazard && e.Variant == sim.VariantTank {
			// Armored hazards read as wider blocks.
			dst.SetCell(x-1, y, '▓', c)
			dst.SetCell(x+1, y, '▓', c)
		}
	}
}

// entityGlyph picks the rune and color for a simulation entity.
func entityGlyph(e *sim.Entity) (rune, core.Color) {
	switch e.Kind {
	case sim.KindHazard:
		switch e.Variant {
		case sim.VariantRusher:
			return '◉', core.ColorBrightMagenta
		case sim.VariantTank:
			return '█', core.ColorBrightRed
		}
		return '▓', core.ColorRed
	case sim.KindFlyer:
		return '╦', core.ColorBrightBlue
	case sim.KindMissile:
		return '▼', core.ColorBrightRed
	case sim.KindBullet:
		return '╹', core.ColorBrightYellow
	case sim.KindEnemyBullet:
		return '✸', core.ColorBrightMagenta
	case sim.KindGem:
		return '◆', core.ColorBrightCyan
	case sim.KindLetter:
		return e.LetterGlyph, core.ColorBrightYellow
	}
	return '?', core.ColorDefault
}

func (g *Game) drawParticles(dst *core.Screen, v viewport) {
	for _, p := range g.particles.items {
		if x, y, ok := v.project(p.pos); ok {
			dst.SetCell(x, y, p.glyph(), p.color)
		}
	}
}

func (g *Game) drawShip(dst *core.Screen, v viewport) {
	x := v.centerX + int(g.world.Player().Pos().X*colsPerUnit)

	color := core.ColorBrightGreen
	if g.tracker.Invulnerable() && int(g.world.Clock()*8)%2 == 1 {
		color = core.ColorGray // Blink while immune
	}
	dst.SetCell(x, v.playerRow, '▲', color)
	dst.SetCell(x-1, v.playerRow+1, '╱', color)
	dst.SetCell(x+1, v.playerRow+1, '╲', color)
}

func (g *Game) drawHUD(dst *core.Screen, v viewport) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.tracker.Score()))
	dst.DrawText(2, 1, fmt.Sprintf(" Level: %d  Dist: %dm ",
		g.tracker.Level(), int(g.world.Distance())))

	lives := core.Max(g.tracker.Lives(), 0)
	hearts := "Lives: " + strings.Repeat("♥", lives)
	dst.DrawTextColored(dst.Width()-7-lives-2, 0, hearts, core.ColorBrightRed)

	// Letter word: collected slots lit, missing slots dimmed.
	word := []rune(g.cfg.Letters.Word)
	collected := g.tracker.CollectedLetters()
	startX := v.centerX - len(word)
	for i, r := range word {
		color := core.ColorGray
		if i < len(collected) && collected[i] {
			color = core.ColorBrightYellow
		}
		dst.SetCell(startX+i*2, 0, r, color)
	}

	if g.tracker.SlowMotion() {
		dst.DrawTextColored(2, dst.Height()-1, " SLOW-MO ", core.ColorBrightCyan)
	}
}

// drawShop renders the between-level upgrade overlay.
func (g *Game) drawShop(dst *core.Screen) {
	lines := []string{
		fmt.Sprintf("Score: %d", g.tracker.Score()),
		"",
	}
	for i, u := range shopOrder {
		owned := g.tracker.PurchaseCount(u)
		lines = append(lines, fmt.Sprintf("[%d] %-9s  %4d pts  (owned %d)",
			i+1, u.String(), g.tracker.UpgradeCost(u), owned))
	}
	lines = append(lines, "", "Enter to continue")

	g.drawPanel(dst, "UPGRADE SHOP", lines)
}

func (g *Game) drawOverlay(dst *core.Screen, title, subtitle string) {
	g.drawPanel(dst, title, []string{subtitle})
}

// drawPanel draws a bordered box with a title and body lines, centered.
func (g *Game) drawPanel(dst *core.Screen, title string, lines []string) {
	w := len(title)
	for _, l := range lines {
		w = core.Max(w, len(l))
	}
	boxW := w + 6
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+3, boxY+3+i, l)
	}
}

// Package runner implements Lane Rush, an endless three-lane corridor
// runner. The ship scrolls forward automatically; the player switches
// lanes, autofires at incoming hazards, collects gems and letters, and
// spends score on upgrades between levels.
package runner

import (
	"github.com/lanerush/lanerush/internal/config"
	"github.com/lanerush/lanerush/internal/core"
	"github.com/lanerush/lanerush/internal/progress"
	"github.com/lanerush/lanerush/internal/registry"
	"github.com/lanerush/lanerush/internal/sim"
)

// fireHoldWindow is how long after the last fire input autofire stays
// engaged. Terminals deliver key repeat as discrete events, so holding
// the key shows up as a burst of frames with gaps between them.
const fireHoldWindow = 0.3

// Game wires the pure simulation to the platform contract. It also acts
// as the simulation's effect sink, turning bursts into screen particles.
type Game struct {
	cfg     config.RunnerConfig
	world   *sim.World
	tracker *progress.Tracker

	runtime   core.RuntimeConfig
	dt        float64
	paused    bool
	lastFire  float64 // World clock of the most recent fire input
	flash     float64 // Screen-flash ticks remaining after a player hit
	particles particleField
}

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath points config loading at a custom file.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a difficulty preset applied on Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates an unstarted game; Reset must run before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the identifier used by the CLI and score storage.
func (g *Game) ID() string {
	return "lanerush"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lane Rush"
}

// Reset starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if preset := config.ParsePreset(difficultyPreset); preset != "" {
		config.ApplyRunnerPreset(&cfg, preset)
	}
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 30
	}
	g.dt = 1.0 / float64(tickRate)

	g.tracker = progress.NewTracker(&g.cfg)
	g.world = sim.NewWorld(g.cfg, g.tracker, g, runtime.Seed)

	g.paused = false
	g.lastFire = -fireHoldWindow
	g.flash = 0
	g.particles.reset()
}

// Step advances one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tracker.GameOver() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.tracker.ShopOpen() {
		g.stepShop(in)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionMoveLeft) {
		g.world.Apply(sim.CmdMoveLaneLeft)
	}
	if in.Has(core.ActionMoveRight) {
		g.world.Apply(sim.CmdMoveLaneRight)
	}
	if in.Has(core.ActionSlowMotion) {
		g.world.Apply(sim.CmdTriggerSlowMotion)
	}
	if in.Has(core.ActionFire) {
		g.lastFire = g.world.Clock()
	}
	g.world.SetFireHeld(g.world.Clock()-g.lastFire < fireHoldWindow)

	g.world.Tick(g.dt)

	g.particles.step()
	if g.flash > 0 {
		g.flash--
	}

	return core.StepResult{State: g.State()}
}

// stepShop routes input while the upgrade shop overlay is up. The
// simulation is frozen underneath it.
func (g *Game) stepShop(in core.InputFrame) {
	switch {
	case in.Has(core.ActionShopSlot1):
		g.tracker.Buy(progress.UpgradeDamage)
	case in.Has(core.ActionShopSlot2):
		g.tracker.Buy(progress.UpgradeFireRate)
	case in.Has(core.ActionShopSlot3):
		g.tracker.Buy(progress.UpgradeSpread)
	case in.Has(core.ActionShopSlot4):
		g.tracker.Buy(progress.UpgradeMagnet)
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
		g.tracker.CloseShop()
	}
}

// State returns the run snapshot for the platform HUD and storage.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.tracker.Score(),
		Level:    g.tracker.Level(),
		Lives:    g.tracker.Lives(),
		GameOver: g.tracker.GameOver(),
		Victory:  g.tracker.Victory(),
		Paused:   g.paused,
	}
}

// Tracker exposes run state to the platform for summaries. Read-only
// between Steps.
func (g *Game) Tracker() *progress.Tracker {
	return g.tracker
}

// World exposes the simulation for headless runs. Read-only between
// Steps.
func (g *Game) World() *sim.World {
	return g.world
}

// RunDistance returns the travel odometer for run summaries.
func (g *Game) RunDistance() float64 {
	return g.world.Distance()
}

// LettersCollected returns the run's total letter count.
func (g *Game) LettersCollected() int {
	return g.tracker.TotalLetters()
}

// Effect sink: the simulation reports presentation events here.

// Burst spawns a small particle splash at a world position.
func (g *Game) Burst(pos core.Vec3, color core.Color) {
	g.particles.burst(pos, color)
}

func (g *Game) PlayShoot()         {}
func (g *Game) PlayImpact()        {}
func (g *Game) PlayExplosion()     {}
func (g *Game) PlayGemCollect()    {}
func (g *Game) PlayLetterCollect() {}

// PlayerHit flashes the playfield border for a few frames.
func (g *Game) PlayerHit() {
	g.flash = 6
}

func init() {
	registry.Register("lanerush", func() registry.Game {
		return New()
	})
}

// Package progress implements the run-level state the simulation consumes
// through its progress gateway: score, lives, level, letter collection,
// shop upgrades, and timed states like slow motion.
package progress

import (
	"math"

	"github.com/lanerush/lanerush/internal/config"
)

// Upgrade identifies a purchasable shop upgrade.
type Upgrade int

const (
	UpgradeDamage   Upgrade = iota // +1 damage per shot
	UpgradeFireRate                // Faster autofire
	UpgradeSpread                  // Extra angled side shots
	UpgradeMagnet                  // Larger gem magnet radius
)

// String returns a human-readable name for the upgrade.
func (u Upgrade) String() string {
	switch u {
	case UpgradeDamage:
		return "Damage"
	case UpgradeFireRate:
		return "Fire Rate"
	case UpgradeSpread:
		return "Spread"
	case UpgradeMagnet:
		return "Magnet"
	}
	return "Unknown"
}

// Tracker is the default progress gateway implementation. It is mutated
// only through its interface methods; the simulation never reaches into
// its fields.
type Tracker struct {
	cfg *config.RunnerConfig

	score int
	lives int
	level int

	collected     []bool
	totalLetters  int // Letters collected across the whole run
	levelAdvanced bool
	victory       bool
	gameOver      bool

	now         float64 // Simulation clock mirrored in by Advance
	slowUntil   float64 // Slow-motion expiry deadline on the sim clock
	invulnUntil float64 // Post-hit immunity deadline

	shopOpen bool
	bought   [4]int // Purchase counts per upgrade
}

// NewTracker creates run-level state for a fresh run.
func NewTracker(cfg *config.RunnerConfig) *Tracker {
	t := &Tracker{cfg: cfg}
	t.Reset()
	return t
}

// Reset returns the tracker to run-start state. Deadlines are cleared, so
// timers armed in a previous run can never fire into the new one.
func (t *Tracker) Reset() {
	t.score = 0
	t.lives = t.cfg.Progress.Lives
	t.level = 1
	t.collected = make([]bool, len(t.cfg.Letters.Word))
	t.totalLetters = 0
	t.levelAdvanced = false
	t.victory = false
	t.gameOver = false
	t.now = 0
	t.slowUntil = 0
	t.invulnUntil = 0
	t.shopOpen = false
	t.bought = [4]int{}
}

// Advance mirrors the simulation clock; timed states are pure deadline
// comparisons against it.
func (t *Tracker) Advance(now float64) {
	t.now = now
}

// AddScore credits points.
func (t *Tracker) AddScore(amount int) {
	if t.gameOver {
		return
	}
	t.score += amount
}

// RegisterLetter records a collected letter slot. Idempotent per slot.
// Completing the set advances the level, or ends the run in victory when
// already at max level; either transition happens exactly once.
func (t *Tracker) RegisterLetter(index int) {
	if t.gameOver || index < 0 || index >= len(t.collected) || t.collected[index] {
		return
	}
	t.collected[index] = true
	t.totalLetters++

	for _, c := range t.collected {
		if !c {
			return
		}
	}

	if t.level >= t.cfg.Progress.MaxLevel {
		t.victory = true
		t.gameOver = true
		return
	}
	t.level++
	t.collected = make([]bool, len(t.collected))
	t.levelAdvanced = true
}

// UncollectedLetters returns the still-missing slots in ascending order.
func (t *Tracker) UncollectedLetters() []int {
	var out []int
	for i, c := range t.collected {
		if !c {
			out = append(out, i)
		}
	}
	return out
}

// CollectedLetters returns the per-slot collection state for display.
func (t *Tracker) CollectedLetters() []bool {
	out := make([]bool, len(t.collected))
	copy(out, t.collected)
	return out
}

// TotalLetters returns how many letters were collected over the whole
// run, across level resets.
func (t *Tracker) TotalLetters() int {
	return t.totalLetters
}

// TakeLevelAdvanced consumes the level-advance signal.
func (t *Tracker) TakeLevelAdvanced() bool {
	adv := t.levelAdvanced
	t.levelAdvanced = false
	return adv
}

// LoseLife deducts a life unless the post-hit immunity window is still
// open. The run ends when lives reach zero.
func (t *Tracker) LoseLife() {
	if t.gameOver || t.now < t.invulnUntil {
		return
	}
	t.lives--
	t.invulnUntil = t.now + t.cfg.Progress.InvulnWindow
	if t.lives <= 0 {
		t.gameOver = true
	}
}

// OpenShop flags the shop overlay for the presentation layer.
func (t *Tracker) OpenShop() {
	if t.gameOver {
		return
	}
	t.shopOpen = true
}

// CloseShop dismisses the shop overlay.
func (t *Tracker) CloseShop() {
	t.shopOpen = false
}

// ShopOpen reports whether the shop overlay is up.
func (t *Tracker) ShopOpen() bool {
	return t.shopOpen
}

// TriggerSlowMotion arms the timed slow-motion state.
func (t *Tracker) TriggerSlowMotion() {
	if t.gameOver {
		return
	}
	t.slowUntil = t.now + t.cfg.Progress.SlowMotionDuration
}

// SlowMotion reports whether the time-dilation state is active.
func (t *Tracker) SlowMotion() bool {
	return t.now < t.slowUntil
}

// Invulnerable reports whether the post-hit immunity window is open.
func (t *Tracker) Invulnerable() bool {
	return t.now < t.invulnUntil
}

// DamagePerShot returns bullet damage including upgrades.
func (t *Tracker) DamagePerShot() int {
	return 1 + t.bought[UpgradeDamage]
}

// FireInterval returns seconds between shots; each fire-rate purchase
// shaves 15 percent off.
func (t *Tracker) FireInterval() float64 {
	return t.cfg.Player.FireInterval * math.Pow(0.85, float64(t.bought[UpgradeFireRate]))
}

// SpreadShots returns the number of angled side shots per volley.
func (t *Tracker) SpreadShots() int {
	return t.bought[UpgradeSpread]
}

// MagnetRadiusSq returns the squared auto-collect radius including
// upgrades.
func (t *Tracker) MagnetRadiusSq() float64 {
	return t.cfg.Combat.MagnetRadiusSq * (1 + 0.5*float64(t.bought[UpgradeMagnet]))
}

// RunSpeed returns the forward scroll speed for the current level, halved
// while slow motion is active.
func (t *Tracker) RunSpeed() float64 {
	speed := t.cfg.Speeds.BaseRunSpeed +
		float64(t.level-1)*t.cfg.Speeds.RunSpeedPerLevel
	if t.SlowMotion() {
		speed /= 2
	}
	return speed
}

// Level returns the current level, 1-based.
func (t *Tracker) Level() int {
	return t.level
}

// LaneCount returns the configured corridor width in lanes.
func (t *Tracker) LaneCount() int {
	return t.cfg.Corridor.LaneCount
}

// Score returns the current score.
func (t *Tracker) Score() int {
	return t.score
}

// Lives returns the remaining lives.
func (t *Tracker) Lives() int {
	return t.lives
}

// GameOver reports whether the run has ended.
func (t *Tracker) GameOver() bool {
	return t.gameOver
}

// Victory reports whether the run ended by collecting the final letter
// set at max level.
func (t *Tracker) Victory() bool {
	return t.victory
}

// UpgradeCost returns the current price of an upgrade; prices grow
// geometrically with each purchase.
func (t *Tracker) UpgradeCost(u Upgrade) int {
	var base int
	switch u {
	case UpgradeDamage:
		base = t.cfg.Progress.DamageCost
	case UpgradeFireRate:
		base = t.cfg.Progress.FireRateCost
	case UpgradeSpread:
		base = t.cfg.Progress.SpreadCost
	case UpgradeMagnet:
		base = t.cfg.Progress.MagnetCost
	default:
		return 0
	}
	return int(float64(base) * math.Pow(t.cfg.Progress.CostGrowth, float64(t.bought[u])))
}

// Buy purchases an upgrade with score. Returns false if unaffordable.
func (t *Tracker) Buy(u Upgrade) bool {
	cost := t.UpgradeCost(u)
	if cost == 0 || t.score < cost {
		return false
	}
	t.score -= cost
	t.bought[u]++
	return true
}

// PurchaseCount returns how many times an upgrade was bought.
func (t *Tracker) PurchaseCount(u Upgrade) int {
	return t.bought[u]
}

package sim

import (
	"github.com/lanerush/lanerush/internal/config"
	"github.com/lanerush/lanerush/internal/core"
)

// Command is the abstract input intent set consumed by the simulation.
// Raw input handling lives in the platform layer; it translates key events
// into these intents.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLaneLeft
	CmdMoveLaneRight
	CmdTriggerSlowMotion
)

// Player is the run avatar: a lane index plus a tweened lateral position
// and the autofire state. The player does not live in the entity store;
// it is the reference point collisions resolve against.
type Player struct {
	cfg *config.RunnerConfig

	Lane int // Signed lane index, 0 is the center lane

	x            float64 // Tweened world X, chases the lane center
	fireHeld     bool
	fireCooldown float64
}

// NewPlayer creates a player centered in the middle lane.
func NewPlayer(cfg *config.RunnerConfig) *Player {
	return &Player{cfg: cfg}
}

// Pos returns the player's current world position.
func (p *Player) Pos() core.Vec3 {
	return core.Vec3{X: p.x, Y: 0, Z: 0}
}

// FireHeld reports whether autofire is engaged.
func (p *Player) FireHeld() bool {
	return p.fireHeld
}

// SetFireHeld engages or releases autofire.
func (p *Player) SetFireHeld(held bool) {
	p.fireHeld = held
}

// MoveLeft shifts one lane left, clamped to the corridor.
func (p *Player) MoveLeft(laneCount int) {
	p.Lane = core.Clamp(p.Lane-1, minLane(laneCount), maxLane(laneCount))
}

// MoveRight shifts one lane right, clamped to the corridor.
func (p *Player) MoveRight(laneCount int) {
	p.Lane = core.Clamp(p.Lane+1, minLane(laneCount), maxLane(laneCount))
}

// maxLane is floor(laneCount/2); lanes are indexed symmetrically around 0.
func maxLane(laneCount int) int {
	return laneCount / 2
}

func minLane(laneCount int) int {
	return -(laneCount - 1) / 2
}

// ClampLane re-clamps the lane after a lane-count change, e.g. when a
// config reload shrinks the corridor mid-run.
func (p *Player) ClampLane(laneCount int) {
	p.Lane = core.Clamp(p.Lane, minLane(laneCount), maxLane(laneCount))
}

// update advances the lateral tween and the autofire cadence, queueing new
// bullets on the world. Called once per tick before entity motion.
func (p *Player) update(dt float64, w *World) {
	// Chase the lane center at a fixed lateral speed.
	target := float64(p.Lane) * p.cfg.Corridor.LaneWidth
	maxStep := p.cfg.Player.LaneTweenSpeed * dt
	diff := target - p.x
	switch {
	case diff > maxStep:
		p.x += maxStep
	case diff < -maxStep:
		p.x -= maxStep
	default:
		p.x = target
	}

	p.fireCooldown -= dt
	if p.fireHeld && p.fireCooldown <= 0 {
		p.fire(w)
		p.fireCooldown = w.progress.FireInterval()
	}
}

// fire queues one volley: a straight shot plus any unlocked spread shots
// with a constant lateral velocity assigned at creation.
func (p *Player) fire(w *World) {
	speed := p.cfg.Speeds.BulletSpeed
	origin := p.Pos()
	origin.Y = p.cfg.Combat.PlayerBodyY

	w.queueBullet(origin, core.Vec3{Z: -speed})
	for i := 1; i <= w.progress.SpreadShots(); i++ {
		lateral := p.cfg.Player.SpreadLateral * float64(i)
		w.queueBullet(origin, core.Vec3{X: lateral, Z: -speed})
		w.queueBullet(origin, core.Vec3{X: -lateral, Z: -speed})
	}
	w.effects.PlayShoot()
}

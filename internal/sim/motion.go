package sim

import (
	"math"

	"github.com/lanerush/lanerush/internal/core"
)

// stepMotion advances every entity by its type-default movement rule, then
// evaluates AI behaviors layered on top. Reactive spawns (enemy fire,
// missile launches) are queued on the world and join the set before
// collision resolution; existing entities are never mutated twice.
func (w *World) stepMotion(dt float64) {
	runSpeed := w.progress.RunSpeed()

	for _, e := range w.store.Entities() {
		if !e.Active {
			continue
		}

		switch e.Kind {
		case KindBullet:
			// Fixed speed plus the lateral component assigned at
			// creation for spread shots.
			e.Pos = e.Pos.Add(e.Vel.Scale(dt))

		case KindEnemyBullet:
			if e.HasVel {
				// Homing shot: direction frozen at fire time, never
				// retargeted.
				e.Pos = e.Pos.Add(e.Vel.Scale(dt))
			} else {
				e.Pos.Z += w.cfg.Speeds.EnemyBulletSpeed * dt
			}

		case KindMissile:
			// Stationary relative to the ground scroll plus its own
			// thrust, stored in SpeedBonus at launch.
			e.Pos.Z += (runSpeed + e.SpeedBonus) * dt

		default:
			// Conveyor-belt motion shared by all non-projectile spawns.
			e.Pos.Z += (runSpeed + e.SpeedBonus) * dt
		}

		w.stepAI(e, dt)
	}
}

// stepAI runs the per-kind behavior script, at most once per tick per
// active entity.
func (w *World) stepAI(e *Entity, dt float64) {
	switch {
	case e.Kind == KindHazard && e.Variant == VariantDodger:
		w.strafeDodger(e, dt)
	case e.Kind == KindHazard && e.Variant == VariantRusher:
		w.fireRusher(e)
	case e.Kind == KindFlyer:
		w.launchFlyer(e)
	}
}

// strafeDodger perturbs the lateral position by a per-entity sine wave,
// clamped to the corridor. The phase offset is randomized once on first
// evaluation so each instance oscillates independently but stably.
func (w *World) strafeDodger(e *Entity, dt float64) {
	if !e.AIReady {
		e.StrafePhase = w.rng.Float64() * 2 * math.Pi
		e.AIReady = true
	}

	amp := w.cfg.Speeds.StrafeAmplitude
	freq := w.cfg.Speeds.StrafeFrequency
	e.Pos.X += math.Sin(w.clock*freq+e.StrafePhase) * amp * dt

	half := float64(maxLane(w.progress.LaneCount()))*w.cfg.Corridor.LaneWidth +
		w.cfg.Corridor.LaneWidth/2
	e.Pos.X = core.ClampF(e.Pos.X, -half, half)
}

// fireRusher fires a homing shot at the player every fixed interval. The
// first shot is scheduled at a random point within one interval so groups
// of saucers do not volley in sync.
func (w *World) fireRusher(e *Entity) {
	interval := w.cfg.Combat.RusherFireInterval
	if !e.AIReady {
		e.LastFiredAt = w.clock - w.rng.Float64()*interval
		e.AIReady = true
	}

	if w.clock-e.LastFiredAt < interval {
		return
	}
	e.LastFiredAt = w.clock

	speed := w.cfg.Speeds.EnemyBulletSpeed
	if w.progress.SlowMotion() {
		speed /= 2
	}

	origin := e.Pos
	dir := w.playerPos().Sub(origin).Normalized()
	if dir == (core.Vec3{}) {
		dir = core.Vec3{Z: 1} // Degenerate overlap: shoot straight back
	}

	w.queue(&Entity{
		Kind:   KindEnemyBullet,
		Pos:    origin,
		Vel:    dir.Scale(speed),
		HasVel: true,
		Active: true,
	})
}

// launchFlyer fires exactly one missile toward the player's lane the first
// tick the flyer crosses the trigger threshold.
func (w *World) launchFlyer(e *Entity) {
	if e.HasFired || e.Pos.Z < w.cfg.Combat.FlyerTriggerZ {
		return
	}
	e.HasFired = true

	thrust := w.cfg.Speeds.MissileThrust
	if w.progress.SlowMotion() {
		thrust /= 2
	}

	w.queue(&Entity{
		Kind:       KindMissile,
		Pos:        core.Vec3{X: w.playerPos().X, Y: 1, Z: e.Pos.Z},
		Active:     true,
		SpeedBonus: thrust,
	})
	w.effects.Burst(e.Pos, core.ColorOrange)
}

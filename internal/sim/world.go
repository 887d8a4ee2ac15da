package sim

import (
	"math/rand"

	"github.com/lanerush/lanerush/internal/config"
	"github.com/lanerush/lanerush/internal/core"
)

// MaxTickDelta caps the integration step to bound error during frame
// hitches. Larger real-time gaps simply advance the simulation less.
const MaxTickDelta = 0.05

// World owns one run's simulation state and advances it in discrete
// ticks. Execution is single-threaded: within a tick the order is
// strictly spawn, movement and reactive AI, collision and cull, store
// swap, with no interleaving.
type World struct {
	cfg      config.RunnerConfig
	store    *Store
	director *Director
	player   *Player
	progress ProgressGateway
	effects  EffectSink
	rng      *rand.Rand

	clock    float64 // Simulation time in seconds
	distance float64 // Travel odometer in world units
	nextID   uint64

	pending []*Entity // Reactive spawns queued during the current tick
}

// NewWorld creates a simulation run. A nil effects sink is replaced with
// a no-op sink so headless runs stay quiet.
func NewWorld(cfg config.RunnerConfig, progress ProgressGateway, effects EffectSink, seed int64) *World {
	if effects == nil {
		effects = NopSink{}
	}
	rng := rand.New(rand.NewSource(seed))

	w := &World{
		cfg:      cfg,
		store:    NewStore(),
		progress: progress,
		effects:  effects,
		rng:      rng,
	}
	w.director = NewDirector(&w.cfg, rng, progress)
	w.player = NewPlayer(&w.cfg)
	return w
}

// Player returns the run avatar.
func (w *World) Player() *Player {
	return w.player
}

// Entities exposes the live set for rendering and tests. Read-only
// between ticks.
func (w *World) Entities() []*Entity {
	return w.store.Entities()
}

// Clock returns the simulation time in seconds.
func (w *World) Clock() float64 {
	return w.clock
}

// Distance returns the travel odometer.
func (w *World) Distance() float64 {
	return w.distance
}

// Apply executes one abstract command intent.
func (w *World) Apply(cmd Command) {
	laneCount := w.progress.LaneCount()
	switch cmd {
	case CmdMoveLaneLeft:
		w.player.MoveLeft(laneCount)
	case CmdMoveLaneRight:
		w.player.MoveRight(laneCount)
	case CmdTriggerSlowMotion:
		w.progress.TriggerSlowMotion()
	}
}

// SetFireHeld engages or releases the player's autofire.
func (w *World) SetFireHeld(held bool) {
	w.player.SetFireHeld(held)
}

// Spawn inserts an externally built entity, assigning its ID. Used by
// tests and scenario setups; gameplay spawning goes through the director.
func (w *World) Spawn(e *Entity) *Entity {
	e.ID = w.allocID()
	e.Active = true
	w.store.Append(e)
	return e
}

// Tick advances the simulation by dt seconds (clamped to MaxTickDelta).
func (w *World) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > MaxTickDelta {
		dt = MaxTickDelta
	}

	w.clock += dt
	w.progress.Advance(w.clock)
	w.distance += w.progress.RunSpeed() * dt

	// A completed letter set opens the next level; greet it with a shop
	// portal at the horizon.
	if w.progress.TakeLevelAdvanced() {
		w.Spawn(w.director.NewShopPortal())
	}

	// Spawn director proposes new entities ahead of the player.
	for _, e := range w.director.Step(w.store.Entities(), w.distance) {
		e.ID = w.allocID()
		w.store.Append(e)
	}

	// Player movement and autofire; bullets join via the pending queue.
	w.player.update(dt, w)

	// Movement and AI; reactive spawns also land in the pending queue so
	// the motion loop never observes a partially updated set.
	w.stepMotion(dt)
	w.flushPending()

	w.resolveCollisions()

	// Build the next-tick set and swap. Deactivated entities never
	// survive into the next tick.
	w.store.Compact()
}

// playerPos returns the player's world position, defaulting to the origin
// if no player is attached (e.g. during scene setup).
func (w *World) playerPos() core.Vec3 {
	if w.player == nil {
		return core.Vec3{}
	}
	return w.player.Pos()
}

// queue holds a reactive spawn until the motion pass finishes.
func (w *World) queue(e *Entity) {
	e.ID = w.allocID()
	w.pending = append(w.pending, e)
}

// queueBullet queues a player bullet with an explicit velocity.
func (w *World) queueBullet(pos, vel core.Vec3) {
	w.queue(&Entity{
		Kind:   KindBullet,
		Pos:    pos,
		Vel:    vel,
		HasVel: true,
		Active: true,
	})
}

func (w *World) flushPending() {
	if len(w.pending) == 0 {
		return
	}
	w.store.Append(w.pending...)
	w.pending = w.pending[:0]
}

// allocID returns the next entity ID. Monotonic, never reused.
func (w *World) allocID() uint64 {
	w.nextID++
	return w.nextID
}

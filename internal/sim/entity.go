// Package sim implements the per-frame simulation core of the lane runner:
// entity storage, procedural spawning, movement and enemy AI, and collision
// resolution. It owns no rendering, audio, or input concerns; those arrive
// through the EffectSink and ProgressGateway interfaces.
package sim

import "github.com/lanerush/lanerush/internal/core"

// Kind enumerates the simulation object categories.
type Kind int

const (
	KindHazard Kind = iota
	KindFlyer
	KindMissile
	KindBullet
	KindEnemyBullet
	KindGem
	KindLetter
	KindShopPortal
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindHazard:
		return "Hazard"
	case KindFlyer:
		return "Flyer"
	case KindMissile:
		return "Missile"
	case KindBullet:
		return "Bullet"
	case KindEnemyBullet:
		return "EnemyBullet"
	case KindGem:
		return "Gem"
	case KindLetter:
		return "Letter"
	case KindShopPortal:
		return "ShopPortal"
	}
	return "Unknown"
}

// Projectile reports whether this kind is excluded from the spawn
// director's horizon computation.
func (k Kind) Projectile() bool {
	return k == KindBullet || k == KindEnemyBullet || k == KindMissile
}

// Damageable reports whether entities of this kind carry health and can be
// destroyed by player bullets.
func (k Kind) Damageable() bool {
	return k == KindHazard || k == KindFlyer || k == KindMissile
}

// Variant selects the behavior script for ground hazards.
type Variant int

const (
	VariantNone   Variant = iota
	VariantDodger         // Strafes laterally across the corridor
	VariantRusher         // Saucer: fires homing shots at the player
	VariantTank           // Armored: slow, triple health
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case VariantNone:
		return "None"
	case VariantDodger:
		return "Dodger"
	case VariantRusher:
		return "Rusher"
	case VariantTank:
		return "Tank"
	}
	return "Unknown"
}

// Entity is the single first-class simulation record. Every optional field
// is part of the declared schema and defaulted at creation; nothing is
// attached after construction.
type Entity struct {
	ID      uint64 // Unique for the simulation lifetime; render-side identity
	Kind    Kind
	Variant Variant

	Pos    core.Vec3
	Vel    core.Vec3 // Explicit velocity; integrated directly when HasVel
	HasVel bool      // Set for homing enemy bullets and player bullets

	Active bool // False marks "destroyed, pending removal this tick"

	Health    int
	MaxHealth int

	Scale      float64 // Size multiplier for hitbox and visuals; 0 means 1
	SpeedBonus float64 // Added to the type-default forward closing speed

	// AI scratch, lazily initialized the first tick the entity is
	// processed, then stable for its lifetime.
	AIReady     bool
	LastFiredAt float64
	StrafePhase float64
	HasFired    bool

	// Collectible payloads.
	PointValue  int  // Gem score value
	LetterGlyph rune // Letter display glyph
	LetterIndex int  // Target slot registered on pickup
}

// EffScale returns the scale multiplier, treating the zero value as 1.
func (e *Entity) EffScale() float64 {
	if e.Scale == 0 {
		return 1
	}
	return e.Scale
}

// Store holds the live entity set for one tick. It is single-writer: only
// the world tick mutates it, and the surviving set replaces the previous
// one atomically at the end of each tick.
type Store struct {
	entities []*Entity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entities: make([]*Entity, 0, 64)}
}

// Entities returns the current entity sequence for read iteration within a
// tick. Callers must not reorder or remove elements.
func (s *Store) Entities() []*Entity {
	return s.entities
}

// Len returns the number of entities, including ones already deactivated
// this tick.
func (s *Store) Len() int {
	return len(s.entities)
}

// Append adds entities to the current set.
func (s *Store) Append(es ...*Entity) {
	s.entities = append(s.entities, es...)
}

// Replace swaps in a new entity set wholesale.
func (s *Store) Replace(next []*Entity) {
	s.entities = next
}

// Compact builds the next-tick set from the surviving active entities and
// swaps it in. Deactivated entities never persist into the next tick.
func (s *Store) Compact() {
	next := s.entities[:0]
	for _, e := range s.entities {
		if e.Active {
			next = append(next, e)
		}
	}
	// Clear the tail so dropped entities can be collected.
	for i := len(next); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = next
}

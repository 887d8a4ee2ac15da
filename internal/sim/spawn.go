package sim

import (
	"math"
	"math/rand"

	"github.com/lanerush/lanerush/internal/config"
	"github.com/lanerush/lanerush/internal/core"
)

// Director decides what to create ahead of the player on each tick,
// respecting a minimum forward gap and a difficulty curve keyed on level.
// It never mutates existing entities; it only proposes new ones.
type Director struct {
	cfg      *config.RunnerConfig
	rng      *rand.Rand
	progress ProgressGateway

	nextLetterAt float64 // Travel distance threshold for the next letter
}

// NewDirector creates a spawn director sharing the world's RNG.
func NewDirector(cfg *config.RunnerConfig, rng *rand.Rand, progress ProgressGateway) *Director {
	return &Director{
		cfg:          cfg,
		rng:          rng,
		progress:     progress,
		nextLetterAt: cfg.Letters.BaseDistance,
	}
}

// Step examines the horizon and returns the entities to add this tick.
// Entities come back without IDs; the world assigns them on insert.
func (d *Director) Step(entities []*Entity, distance float64) []*Entity {
	horizon := d.cfg.Corridor.Horizon

	// Furthest forward coordinate among non-projectile entities. When the
	// corridor is empty (run start, post-reset) default to half horizon so
	// density ramps up gradually instead of instantly filling the view.
	furthest := -horizon / 2
	found := false
	for _, e := range entities {
		if !e.Active || e.Kind.Projectile() {
			continue
		}
		if !found || e.Pos.Z < furthest {
			furthest = e.Pos.Z
			found = true
		}
	}

	if furthest <= -horizon {
		return nil // Horizon fully populated
	}

	// Gap scales with run speed so spacing feels constant in time.
	speed := d.progress.RunSpeed()
	gap := d.cfg.Spawn.BaseGap + speed*d.cfg.Spawn.SpeedGapFactor
	spawnZ := math.Max(furthest-gap, -horizon)
	if spawnZ >= furthest {
		return nil // Would not advance past the current furthest entity
	}

	level := d.progress.Level()

	// Letter slots take priority once the travel odometer crosses the
	// threshold. If every letter is already collected this cycle the slot
	// becomes a gem instead of being wasted.
	if distance >= d.nextLetterAt {
		d.nextLetterAt += d.letterThreshold(level)
		if remaining := d.progress.UncollectedLetters(); len(remaining) > 0 {
			slot := remaining[d.rng.Intn(len(remaining))]
			return []*Entity{d.newLetter(spawnZ, slot)}
		}
		return []*Entity{d.newGem(spawnZ, d.randomLane())}
	}

	// Keep density below saturation.
	if d.rng.Float64() < d.cfg.Spawn.SkipChance {
		return nil
	}

	if d.rng.Float64() < d.cfg.Spawn.ObstacleWeight {
		return d.spawnObstacles(spawnZ, level)
	}
	return []*Entity{d.newGem(spawnZ, d.randomLane())}
}

// letterThreshold returns the travel distance between letters at a level.
// Grows geometrically so later levels stretch letters further apart.
func (d *Director) letterThreshold(level int) float64 {
	return d.cfg.Letters.BaseDistance *
		math.Pow(d.cfg.Letters.GrowthFactor, float64(level-1))
}

// spawnObstacles places either a single airborne flyer or a row of one or
// more ground hazards at the given forward coordinate.
func (d *Director) spawnObstacles(spawnZ float64, level int) []*Entity {
	sp := &d.cfg.Spawn

	if level >= sp.FlyerUnlockLevel && d.rng.Float64() < sp.FlyerChance {
		return []*Entity{d.newFlyer(spawnZ, level)}
	}

	count := 1
	if d.rng.Float64() < sp.GroupChance {
		count = 2
	}
	if d.rng.Float64() < sp.TripleChance {
		count = d.progress.LaneCount()
	}
	lanes := d.pickLanes(count)

	out := make([]*Entity, 0, count+1)
	for _, lane := range lanes {
		h := d.newHazard(spawnZ, lane, level)
		out = append(out, h)
		if d.rng.Float64() < sp.BonusGemChance {
			gem := d.newGem(spawnZ, lane)
			gem.Pos.Y = 2.5 // Hovers above the hazard
			out = append(out, gem)
		}
	}
	return out
}

// pickLanes chooses count distinct random lanes.
func (d *Director) pickLanes(count int) []int {
	laneCount := d.progress.LaneCount()
	if count > laneCount {
		count = laneCount
	}
	perm := d.rng.Perm(laneCount)
	lanes := make([]int, count)
	for i := 0; i < count; i++ {
		lanes[i] = perm[i] - (laneCount-1)/2
	}
	return lanes
}

func (d *Director) randomLane() int {
	laneCount := d.progress.LaneCount()
	return d.rng.Intn(laneCount) - (laneCount-1)/2
}

// laneX converts a lane index to its world X coordinate.
func (d *Director) laneX(lane int) float64 {
	return float64(lane) * d.cfg.Corridor.LaneWidth
}

// baseHP returns obstacle health for a level. Level 1 uses a flat starter
// value so the opening stretch stays clearable with the unupgraded blaster.
func (d *Director) baseHP(level int) int {
	if level <= 1 {
		return d.cfg.Spawn.FirstLevelHP
	}
	return level * d.cfg.Spawn.HPPerLevel
}

func (d *Director) newHazard(spawnZ float64, lane, level int) *Entity {
	sp := &d.cfg.Spawn

	variant := VariantDodger
	roll := d.rng.Float64()
	switch {
	case level >= sp.TankUnlockLevel && roll < sp.TankWeight:
		variant = VariantTank
	case level >= sp.RusherUnlockLevel && roll < sp.TankWeight+sp.RusherWeight:
		variant = VariantRusher
	}

	hp := d.baseHP(level)
	var bonus float64
	switch variant {
	case VariantTank:
		hp = int(float64(hp) * sp.TankHPMultiplier)
		bonus = d.cfg.Speeds.TankSpeedBonus
	case VariantRusher:
		hp = int(float64(hp) / sp.RusherHPDivisor)
		if hp < 1 {
			hp = 1
		}
		bonus = d.cfg.Speeds.RusherSpeedBonus
	}

	return &Entity{
		Kind:       KindHazard,
		Variant:    variant,
		Pos:        core.Vec3{X: d.laneX(lane), Y: 0, Z: spawnZ},
		Active:     true,
		Health:     hp,
		MaxHealth:  hp,
		SpeedBonus: bonus,
	}
}

func (d *Director) newFlyer(spawnZ float64, level int) *Entity {
	hp := level * 2
	return &Entity{
		Kind:      KindFlyer,
		Pos:       core.Vec3{X: d.laneX(d.randomLane()), Y: 2, Z: spawnZ},
		Active:    true,
		Health:    hp,
		MaxHealth: hp,
	}
}

func (d *Director) newGem(spawnZ float64, lane int) *Entity {
	return &Entity{
		Kind:       KindGem,
		Pos:        core.Vec3{X: d.laneX(lane), Y: 1, Z: spawnZ},
		Active:     true,
		PointValue: d.cfg.Combat.GemValue,
	}
}

func (d *Director) newLetter(spawnZ float64, slot int) *Entity {
	word := []rune(d.cfg.Letters.Word)
	glyph := '?'
	if slot >= 0 && slot < len(word) {
		glyph = word[slot]
	}
	return &Entity{
		Kind:        KindLetter,
		Pos:         core.Vec3{X: d.laneX(d.randomLane()), Y: 1, Z: spawnZ},
		Active:      true,
		LetterGlyph: glyph,
		LetterIndex: slot,
	}
}

// NewShopPortal builds a portal entity spanning the center lane at the far
// horizon. Spawned by the world when the level advances.
func (d *Director) NewShopPortal() *Entity {
	return &Entity{
		Kind:   KindShopPortal,
		Pos:    core.Vec3{X: 0, Y: 0, Z: -d.cfg.Corridor.Horizon},
		Active: true,
	}
}

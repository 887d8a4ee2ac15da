package sim

import (
	"math"

	"github.com/lanerush/lanerush/internal/config"
	"github.com/lanerush/lanerush/internal/core"
)

// resolveCollisions runs the fixed per-entity check order: pickup magnet,
// bullet-vs-target, player proximity, distance cull. Score and life
// mutations go through the progress gateway; the resolver holds no
// authoritative state.
func (w *World) resolveCollisions() {
	player := w.playerPos()
	entities := w.store.Entities()

	for _, e := range entities {
		if !e.Active {
			continue
		}

		// Gem magnet: auto-collect within the squared radius regardless
		// of the proximity gating used for other pickups.
		if e.Kind == KindGem && e.Pos.DistSq(player) <= w.progress.MagnetRadiusSq() {
			w.collectGem(e)
			continue
		}

		if e.Kind == KindBullet {
			w.resolveBullet(e, entities)
			continue
		}

		if math.Abs(e.Pos.Z-player.Z) <= w.cfg.Combat.ProximityWindow {
			if w.resolveProximity(e, player) {
				continue
			}
		}

		// Anything that scrolled past the player beyond the removal
		// threshold is gone, whatever state it was in.
		if e.Pos.Z-player.Z > w.cfg.Corridor.RemoveBehind {
			e.Active = false
		}
	}
}

// resolveBullet tests a bullet against every damageable target in store
// order. First match wins; a bullet never damages more than one target.
func (w *World) resolveBullet(b *Entity, entities []*Entity) {
	hitX := w.cfg.Combat.BulletHitX
	hitZ := w.cfg.Combat.BulletHitZ

	for _, t := range entities {
		if !t.Active || !t.Kind.Damageable() {
			continue
		}
		s := t.EffScale()
		if math.Abs(b.Pos.X-t.Pos.X) > hitX*s || math.Abs(b.Pos.Z-t.Pos.Z) > hitZ*s {
			continue
		}

		b.Active = false
		t.Health -= w.progress.DamagePerShot()
		w.effects.Burst(t.Pos, core.ColorBrightYellow)

		if t.Health <= 0 {
			t.Active = false
			w.progress.AddScore(w.cfg.Combat.KillBonus)
			w.effects.PlayExplosion()
			w.effects.Burst(t.Pos, core.ColorOrange)
		} else {
			w.effects.PlayImpact()
		}
		return
	}

	// Unconsumed bullets are culled at the end of their forward range,
	// independent of the general removal distance.
	if b.Pos.Z < -w.cfg.Speeds.BulletRange {
		b.Active = false
	}
}

// resolveProximity handles an entity inside the forward window around the
// player. Returns true if the entity was consumed.
func (w *World) resolveProximity(e *Entity, player core.Vec3) bool {
	cb := &w.cfg.Combat

	switch e.Kind {
	case KindShopPortal:
		if math.Abs(e.Pos.Z-player.Z) <= cb.PortalRange {
			e.Active = false
			w.progress.OpenShop()
			return true
		}

	case KindEnemyBullet:
		if math.Abs(e.Pos.X-player.X) <= cb.EnemyBulletHitX &&
			math.Abs(e.Pos.Y-cb.PlayerBodyY) <= cb.EnemyBulletHitY {
			e.Active = false
			w.effects.PlayerHit()
			w.effects.PlayExplosion()
			w.progress.LoseLife()
			return true
		}

	case KindHazard, KindFlyer, KindMissile:
		if math.Abs(e.Pos.X-player.X) > cb.HazardLateral*e.EffScale() {
			return false
		}
		band := w.verticalBand(e)
		if band.Bottom < cb.PlayerTop && band.Top > cb.PlayerBottom {
			e.Active = false
			w.effects.PlayerHit()
			w.effects.PlayExplosion()
			w.effects.Burst(e.Pos, core.ColorBrightRed)
			w.progress.LoseLife()
			return true
		}

	case KindGem, KindLetter:
		if math.Abs(e.Pos.X-player.X) > cb.PickupLateral ||
			math.Abs(e.Pos.Y) > cb.PickupVertical {
			return false
		}
		if e.Kind == KindGem {
			w.collectGem(e)
		} else {
			e.Active = false
			w.progress.RegisterLetter(e.LetterIndex)
			w.effects.PlayLetterCollect()
			w.effects.Burst(e.Pos, core.ColorBrightMagenta)
		}
		return true
	}

	return false
}

// verticalBand returns the occupation band for a damage source. Bands
// differ by kind and variant: saucers hover, armored hazards sit taller,
// missiles fly at body height.
func (w *World) verticalBand(e *Entity) config.Band {
	cb := &w.cfg.Combat
	switch e.Kind {
	case KindFlyer:
		return cb.FlyerBand
	case KindMissile:
		return cb.MissileBand
	}
	switch e.Variant {
	case VariantRusher:
		return cb.SaucerBand
	case VariantTank:
		return cb.ArmoredBand
	}
	return cb.HazardBand
}

// collectGem credits the gem's point value and retires it.
func (w *World) collectGem(e *Entity) {
	e.Active = false
	w.progress.AddScore(e.PointValue)
	w.effects.PlayGemCollect()
	w.effects.Burst(e.Pos, core.ColorBrightCyan)
}

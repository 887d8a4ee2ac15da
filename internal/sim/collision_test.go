package sim

import (
	"testing"

	"github.com/lanerush/lanerush/internal/config"
	"github.com/lanerush/lanerush/internal/core"
)

func TestBulletKillsHazard(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	fx := &Recorder{}
	w, cfg := newTestWorld(gw, fx, 1)

	h := w.Spawn(&Entity{Kind: KindHazard, Pos: vec(0, 0.8, -5), Health: 1})
	b := w.Spawn(&Entity{Kind: KindBullet, Pos: vec(0, 1, -4), Vel: core.Vec3{Z: -30}, HasVel: true})

	// One tick moves the bullet to Z=-5.5, inside the hit box around the
	// hazard at Z=-5.
	w.Tick(0.05)

	if h.Active {
		t.Error("hazard survived a lethal hit")
	}
	if b.Active {
		t.Error("bullet not consumed by the hit")
	}
	if gw.score != cfg.Combat.KillBonus {
		t.Errorf("score = %d, want kill bonus %d", gw.score, cfg.Combat.KillBonus)
	}
	if fx.Explosions != 1 {
		t.Errorf("explosions = %d, want 1", fx.Explosions)
	}
	for _, e := range w.Entities() {
		if e == h || e == b {
			t.Fatal("deactivated entity survived the store swap")
		}
	}
}

func TestNonLethalHitLeavesTargetActive(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	fx := &Recorder{}
	w, _ := newTestWorld(gw, fx, 1)

	h := w.Spawn(&Entity{Kind: KindHazard, Pos: vec(0, 0, -5), Health: 3})
	w.Spawn(&Entity{Kind: KindBullet, Pos: vec(0, 1, -4), Vel: core.Vec3{Z: -30}, HasVel: true})

	w.Tick(0.05)

	if !h.Active {
		t.Fatal("hazard retired by a non-lethal hit")
	}
	if h.Health != 2 {
		t.Errorf("health = %d, want 2", h.Health)
	}
	if fx.Impacts != 1 || fx.Explosions != 0 {
		t.Errorf("impacts = %d explosions = %d, want 1 and 0", fx.Impacts, fx.Explosions)
	}
	if gw.score != 0 {
		t.Errorf("score = %d on a non-kill", gw.score)
	}
}

func TestBulletDamagesAtMostOneTarget(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	w, _ := newTestWorld(gw, nil, 1)

	h1 := w.Spawn(&Entity{Kind: KindHazard, Pos: vec(0, 0, -5), Health: 5})
	h2 := w.Spawn(&Entity{Kind: KindHazard, Pos: vec(0, 0, -5.2), Health: 5})
	w.Spawn(&Entity{Kind: KindBullet, Pos: vec(0, 1, -4), Vel: core.Vec3{Z: -30}, HasVel: true})

	w.Tick(0.05)

	if h1.Health+h2.Health != 9 {
		t.Errorf("total damage dealt = %d, want exactly 1", 10-h1.Health-h2.Health)
	}
}

func TestBulletHitBoxScalesWithTarget(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0

	// Lateral offset misses a normal hit box but lands on a doubled one.
	cfg := config.DefaultRunnerConfig()
	offset := cfg.Combat.BulletHitX * 1.5

	w1, _ := newTestWorld(gw, nil, 1)
	small := w1.Spawn(&Entity{Kind: KindHazard, Pos: vec(0, 0, -5), Health: 5})
	w1.Spawn(&Entity{Kind: KindBullet, Pos: vec(offset, 1, -4), Vel: core.Vec3{Z: -30}, HasVel: true})
	w1.Tick(0.05)
	if small.Health != 5 {
		t.Error("bullet outside the unscaled hit box still landed")
	}

	w2, _ := newTestWorld(gw, nil, 1)
	big := w2.Spawn(&Entity{Kind: KindHazard, Pos: vec(0, 0, -5), Health: 5, Scale: 2})
	w2.Spawn(&Entity{Kind: KindBullet, Pos: vec(offset, 1, -4), Vel: core.Vec3{Z: -30}, HasVel: true})
	w2.Tick(0.05)
	if big.Health != 5-gw.damage {
		t.Error("bullet inside the scaled hit box missed")
	}
}

func TestBulletCulledAtRangeEnd(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	w, cfg := newTestWorld(gw, nil, 1)

	b := w.Spawn(&Entity{Kind: KindBullet,
		Pos: vec(0, 1, -cfg.Speeds.BulletRange + 0.1), Vel: core.Vec3{Z: -30}, HasVel: true})

	w.Tick(0.05)

	if b.Active {
		t.Error("bullet survived past its forward range")
	}
}

func TestGemMagnetCollectsNearby(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	fx := &Recorder{}
	w, _ := newTestWorld(gw, fx, 1)

	w.Spawn(&Entity{Kind: KindGem, Pos: vec(0, 1, -4), PointValue: 10})

	w.Tick(0.016)

	if gw.score != 10 {
		t.Errorf("score = %d, want gem value 10", gw.score)
	}
	if fx.Gems != 1 {
		t.Errorf("gem collect cues = %d, want 1", fx.Gems)
	}
}

func TestGemPickupOutsideMagnet(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	gw.magnetSq = 0.01 // Effectively disable the magnet
	w, _ := newTestWorld(gw, nil, 1)

	w.Spawn(&Entity{Kind: KindGem, Pos: vec(0.5, 1, -0.5), PointValue: 10})

	w.Tick(0.016)

	if gw.score != 10 {
		t.Errorf("score = %d, want direct pickup without the magnet", gw.score)
	}
}

func TestLetterPickupRegistersSlot(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	fx := &Recorder{}
	w, _ := newTestWorld(gw, fx, 1)

	w.Spawn(&Entity{Kind: KindLetter, Pos: vec(0, 1, -0.5), LetterGlyph: 'N', LetterIndex: 3})

	w.Tick(0.016)

	if len(gw.registered) != 1 || gw.registered[0] != 3 {
		t.Errorf("registered slots = %v, want [3]", gw.registered)
	}
	if fx.Letters != 1 {
		t.Errorf("letter cues = %d, want 1", fx.Letters)
	}
	if gw.score != 0 {
		t.Error("letters must not award points directly")
	}
}

func TestPortalOpensShop(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	w, _ := newTestWorld(gw, nil, 1)

	p := w.Spawn(&Entity{Kind: KindShopPortal, Pos: vec(0, 0, -1)})

	w.Tick(0.016)

	if gw.shopOpens != 1 {
		t.Errorf("shop opens = %d, want 1", gw.shopOpens)
	}
	if p.Active {
		t.Error("portal not consumed on entry")
	}
}

func TestEnemyBulletHitsPlayerBody(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	fx := &Recorder{}
	w, cfg := newTestWorld(gw, fx, 1)

	w.Spawn(&Entity{Kind: KindEnemyBullet, Pos: vec(0, cfg.Combat.PlayerBodyY, -0.5)})

	w.Tick(0.016)

	if gw.lostLives != 1 {
		t.Errorf("lives lost = %d, want 1", gw.lostLives)
	}
	if fx.PlayerHits != 1 {
		t.Errorf("player hit cues = %d, want 1", fx.PlayerHits)
	}
}

func TestEnemyBulletAboveBodyPassesThrough(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	w, cfg := newTestWorld(gw, nil, 1)

	y := cfg.Combat.PlayerBodyY + cfg.Combat.EnemyBulletHitY + 0.5
	b := w.Spawn(&Entity{Kind: KindEnemyBullet, Pos: vec(0, y, -0.5)})

	w.Tick(0.016)

	if !b.Active {
		t.Error("high shot should sail over the player")
	}
	if gw.lostLives != 0 {
		t.Error("high shot deducted a life")
	}
}

func TestHazardRamsPlayer(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	fx := &Recorder{}
	w, _ := newTestWorld(gw, fx, 1)

	h := w.Spawn(&Entity{Kind: KindHazard, Pos: vec(0, 0, -1), Health: 5})

	w.Tick(0.016)

	if gw.lostLives != 1 {
		t.Errorf("lives lost = %d, want 1", gw.lostLives)
	}
	if h.Active {
		t.Error("ramming hazard not consumed")
	}
	if fx.PlayerHits != 1 {
		t.Errorf("player hit cues = %d, want 1", fx.PlayerHits)
	}
}

func TestHazardMissesLaterally(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	w, cfg := newTestWorld(gw, nil, 1)

	x := cfg.Combat.HazardLateral + 0.5
	h := w.Spawn(&Entity{Kind: KindHazard, Pos: vec(x, 0, -1), Health: 5})

	w.Tick(0.016)

	if !h.Active {
		t.Error("adjacent-lane hazard consumed")
	}
	if gw.lostLives != 0 {
		t.Error("adjacent-lane hazard deducted a life")
	}
}

func TestFlyerBandClearsGroundedPlayer(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	w, cfg := newTestWorld(gw, nil, 1)

	// A flyer band starting above the player's head does not collide even
	// dead ahead in the same lane.
	cfg2 := cfg
	cfg2.Combat.FlyerBand.Bottom = cfg.Combat.PlayerTop + 0.2
	cfg2.Combat.FlyerBand.Top = cfg.Combat.PlayerTop + 1.5
	w = NewWorld(cfg2, gw, nil, 1)

	// HasFired is pre-latched so the flyer's own missile stays out of the
	// picture.
	f := w.Spawn(&Entity{Kind: KindFlyer, Pos: vec(0, 2.5, -1), Health: 3, HasFired: true})

	w.Tick(0.016)

	if !f.Active {
		t.Error("overhead flyer consumed")
	}
	if gw.lostLives != 0 {
		t.Error("overhead flyer deducted a life")
	}
}

func TestEntitiesCulledBehindPlayer(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	w, cfg := newTestWorld(gw, nil, 1)

	h := w.Spawn(&Entity{Kind: KindHazard, Pos: vec(0, 0, cfg.Corridor.RemoveBehind + 1), Health: 5})
	g := w.Spawn(&Entity{Kind: KindGem, Pos: vec(2, 20, cfg.Corridor.RemoveBehind + 1), PointValue: 10})

	w.Tick(0.016)

	if h.Active || g.Active {
		t.Error("entities past the removal distance kept alive")
	}
	if gw.score != 0 {
		t.Error("culled gem still scored")
	}
}

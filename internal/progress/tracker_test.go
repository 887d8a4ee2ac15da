package progress

import (
	"testing"

	"github.com/lanerush/lanerush/internal/config"
)

func newTestTracker() (*Tracker, *config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	return NewTracker(&cfg), &cfg
}

func TestRegisterLetterIdempotent(t *testing.T) {
	tr, _ := newTestTracker()

	tr.RegisterLetter(2)
	before := len(tr.UncollectedLetters())

	tr.RegisterLetter(2)
	if got := len(tr.UncollectedLetters()); got != before {
		t.Errorf("duplicate registration changed state: %d -> %d", before, got)
	}
	if tr.Level() != 1 {
		t.Errorf("level = %d after partial set, want 1", tr.Level())
	}
}

func TestFullLetterSetAdvancesLevelOnce(t *testing.T) {
	tr, cfg := newTestTracker()
	slots := len(cfg.Letters.Word)

	for i := 0; i < slots; i++ {
		tr.RegisterLetter(i)
	}

	if tr.Level() != 2 {
		t.Fatalf("level = %d, want 2", tr.Level())
	}
	if !tr.TakeLevelAdvanced() {
		t.Error("expected level-advance signal")
	}
	if tr.TakeLevelAdvanced() {
		t.Error("level-advance signal must be consumed exactly once")
	}
	if got := len(tr.UncollectedLetters()); got != slots {
		t.Errorf("letters not reset after advance: %d uncollected, want %d", got, slots)
	}
}

func TestVictoryAtMaxLevel(t *testing.T) {
	tr, cfg := newTestTracker()
	slots := len(cfg.Letters.Word)

	// Climb to max level.
	for tr.Level() < cfg.Progress.MaxLevel {
		for i := 0; i < slots; i++ {
			tr.RegisterLetter(i)
		}
		tr.TakeLevelAdvanced()
	}

	for i := 0; i < slots; i++ {
		tr.RegisterLetter(i)
	}

	if !tr.Victory() {
		t.Error("expected victory after final letter set")
	}
	if !tr.GameOver() {
		t.Error("victory must end the run")
	}
	if tr.TakeLevelAdvanced() {
		t.Error("victory must not also signal a level advance")
	}
}

func TestLoseLifeAndImmunityWindow(t *testing.T) {
	tr, cfg := newTestTracker()
	start := tr.Lives()

	tr.Advance(1.0)
	tr.LoseLife()
	if tr.Lives() != start-1 {
		t.Fatalf("lives = %d, want %d", tr.Lives(), start-1)
	}

	// Second hit inside the immunity window is ignored.
	tr.Advance(1.0 + cfg.Progress.InvulnWindow/2)
	tr.LoseLife()
	if tr.Lives() != start-1 {
		t.Errorf("hit during immunity deducted a life")
	}

	// After the window expires, hits land again.
	tr.Advance(1.0 + cfg.Progress.InvulnWindow + 0.01)
	tr.LoseLife()
	if tr.Lives() != start-2 {
		t.Errorf("lives = %d, want %d", tr.Lives(), start-2)
	}
}

func TestGameOverAtZeroLives(t *testing.T) {
	tr, cfg := newTestTracker()

	now := 0.0
	for i := 0; i < tr.Lives()+2; i++ {
		now += cfg.Progress.InvulnWindow + 1
		tr.Advance(now)
		tr.LoseLife()
	}

	if tr.Lives() > 0 {
		t.Errorf("lives = %d, want 0", tr.Lives())
	}
	if !tr.GameOver() {
		t.Error("expected game over at zero lives")
	}
}

func TestSlowMotionExpiry(t *testing.T) {
	tr, cfg := newTestTracker()

	tr.Advance(10)
	tr.TriggerSlowMotion()
	if !tr.SlowMotion() {
		t.Fatal("slow motion should be active right after trigger")
	}

	full := tr.RunSpeed() * 2
	want := cfg.Speeds.BaseRunSpeed
	if full != want {
		t.Errorf("slow-motion run speed = %v, want half of %v", full/2, want)
	}

	tr.Advance(10 + cfg.Progress.SlowMotionDuration + 0.01)
	if tr.SlowMotion() {
		t.Error("slow motion should have expired")
	}
}

func TestResetClearsStaleTimers(t *testing.T) {
	tr, _ := newTestTracker()

	tr.Advance(10)
	tr.TriggerSlowMotion()
	tr.Reset()

	// The new run starts at clock zero; the old deadline must not apply.
	tr.Advance(0.1)
	if tr.SlowMotion() {
		t.Error("stale slow-motion deadline survived a reset")
	}
	if tr.Invulnerable() {
		t.Error("stale immunity deadline survived a reset")
	}
}

func TestShopPurchases(t *testing.T) {
	tr, _ := newTestTracker()

	if tr.Buy(UpgradeDamage) {
		t.Error("purchase with zero score should fail")
	}

	tr.AddScore(10000)
	cost := tr.UpgradeCost(UpgradeDamage)
	before := tr.Score()

	if !tr.Buy(UpgradeDamage) {
		t.Fatal("affordable purchase failed")
	}
	if tr.Score() != before-cost {
		t.Errorf("score = %d, want %d", tr.Score(), before-cost)
	}
	if tr.DamagePerShot() != 2 {
		t.Errorf("DamagePerShot = %d, want 2", tr.DamagePerShot())
	}
	if tr.UpgradeCost(UpgradeDamage) <= cost {
		t.Error("upgrade price should grow after purchase")
	}

	base := tr.FireInterval()
	tr.Buy(UpgradeFireRate)
	if tr.FireInterval() >= base {
		t.Error("fire-rate purchase should shorten the interval")
	}

	magnet := tr.MagnetRadiusSq()
	tr.Buy(UpgradeMagnet)
	if tr.MagnetRadiusSq() <= magnet {
		t.Error("magnet purchase should grow the radius")
	}
}

func TestRunSpeedRampsWithLevel(t *testing.T) {
	tr, cfg := newTestTracker()
	slots := len(cfg.Letters.Word)

	l1 := tr.RunSpeed()
	for i := 0; i < slots; i++ {
		tr.RegisterLetter(i)
	}
	l2 := tr.RunSpeed()

	if l2 != l1+cfg.Speeds.RunSpeedPerLevel {
		t.Errorf("level 2 speed = %v, want %v", l2, l1+cfg.Speeds.RunSpeedPerLevel)
	}
}

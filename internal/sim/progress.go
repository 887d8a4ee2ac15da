package sim

// ProgressGateway is the simulation's window onto run-level state: score,
// lives, level, letters, and upgrades. The simulation reads and mutates
// progress only through this interface and never holds authoritative
// score or life state itself.
type ProgressGateway interface {
	// Advance is called once at the start of every tick with the current
	// simulation clock. Implementations expire timed states (slow motion,
	// post-hit immunity) here; deadlines are compared against this clock,
	// so a reset simulation cannot resurrect stale timers.
	Advance(now float64)

	// AddScore credits points for gems and kills.
	AddScore(amount int)

	// RegisterLetter records collection of one target letter slot.
	// Registering an already-collected slot has no effect. Collecting the
	// full set advances the level, or ends the run in victory at max level.
	RegisterLetter(index int)

	// UncollectedLetters returns the target slots still missing this
	// level-cycle, in ascending order.
	UncollectedLetters() []int

	// TakeLevelAdvanced reports whether the level advanced since the last
	// call, consuming the signal.
	TakeLevelAdvanced() bool

	// LoseLife deducts a life, ending the run at zero. Implementations may
	// ignore hits during a post-hit immunity window.
	LoseLife()

	// OpenShop signals that the player entered a shop portal.
	OpenShop()

	// TriggerSlowMotion requests the timed slow-motion state.
	TriggerSlowMotion()

	// DamagePerShot returns the current bullet damage upgrade value.
	DamagePerShot() int

	// FireInterval returns seconds between shots while fire is held.
	FireInterval() float64

	// SpreadShots returns the number of angled side shots per volley.
	SpreadShots() int

	// MagnetRadiusSq returns the squared gem auto-collect radius.
	MagnetRadiusSq() float64

	// RunSpeed returns the current forward scroll speed, already halved
	// when slow motion is active.
	RunSpeed() float64

	// Level returns the current level, 1-based.
	Level() int

	// LaneCount returns the number of corridor lanes.
	LaneCount() int

	// SlowMotion reports whether the time-dilation state is active.
	SlowMotion() bool
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner. Every spawn probability and tuning
// weight lives here rather than in code: density tuning changed many times
// during development and is expected to keep changing.
package config

// RunnerConfig contains all tunables for the lane runner simulation.
type RunnerConfig struct {
	Corridor CorridorConfig `yaml:"corridor"`
	Speeds   SpeedConfig    `yaml:"speeds"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Combat   CombatConfig   `yaml:"combat"`
	Letters  LetterConfig   `yaml:"letters"`
	Player   PlayerConfig   `yaml:"player"`
	Progress ProgressConfig `yaml:"progress"`
}

// CorridorConfig defines the shape of the play corridor.
type CorridorConfig struct {
	LaneCount    int     `yaml:"lane_count"`    // Number of discrete lanes
	LaneWidth    float64 `yaml:"lane_width"`    // World units between lane centers
	Horizon      float64 `yaml:"horizon"`       // Max spawn distance ahead of the player
	RemoveBehind float64 `yaml:"remove_behind"` // Cull distance once past the player
}

// SpeedConfig defines movement speeds in world units per second.
type SpeedConfig struct {
	BaseRunSpeed     float64 `yaml:"base_run_speed"`     // Conveyor speed at level 1
	RunSpeedPerLevel float64 `yaml:"run_speed_per_level"` // Added per level above 1
	BulletSpeed      float64 `yaml:"bullet_speed"`
	BulletRange      float64 `yaml:"bullet_range"` // Forward travel before a bullet is culled
	EnemyBulletSpeed float64 `yaml:"enemy_bullet_speed"`
	MissileThrust    float64 `yaml:"missile_thrust"` // Added on top of run speed
	StrafeAmplitude  float64 `yaml:"strafe_amplitude"`
	StrafeFrequency  float64 `yaml:"strafe_frequency"`
	RusherSpeedBonus float64 `yaml:"rusher_speed_bonus"`
	TankSpeedBonus   float64 `yaml:"tank_speed_bonus"`
}

// SpawnConfig governs the spawn director's procedural generation.
type SpawnConfig struct {
	BaseGap        float64 `yaml:"base_gap"`         // Minimum forward gap between spawns
	SpeedGapFactor float64 `yaml:"speed_gap_factor"` // Gap grows with run speed
	SkipChance     float64 `yaml:"skip_chance"`      // Chance to leave a slot empty
	ObstacleWeight float64 `yaml:"obstacle_weight"`  // Obstacle vs. gem coin weight

	FlyerChance      float64 `yaml:"flyer_chance"`
	FlyerUnlockLevel int     `yaml:"flyer_unlock_level"`

	GroupChance  float64 `yaml:"group_chance"`  // Chance a hazard row has two hazards
	TripleChance float64 `yaml:"triple_chance"` // Chance the row fills all lanes

	RusherWeight      float64 `yaml:"rusher_weight"`
	RusherUnlockLevel int     `yaml:"rusher_unlock_level"`
	TankWeight        float64 `yaml:"tank_weight"`
	TankUnlockLevel   int     `yaml:"tank_unlock_level"`

	BonusGemChance float64 `yaml:"bonus_gem_chance"` // Gem hovering above a hazard

	FirstLevelHP     int     `yaml:"first_level_hp"` // HP policy: level 1 uses this flat value
	HPPerLevel       int     `yaml:"hp_per_level"`   // Levels above 1 use level * this
	TankHPMultiplier float64 `yaml:"tank_hp_multiplier"`
	RusherHPDivisor  float64 `yaml:"rusher_hp_divisor"`
}

// Band is a vertical occupation range used for player overlap tests.
type Band struct {
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

// CombatConfig defines hitboxes and collision outcomes.
type CombatConfig struct {
	MagnetRadiusSq  float64 `yaml:"magnet_radius_sq"` // Squared gem auto-collect radius
	ProximityWindow float64 `yaml:"proximity_window"` // Forward window for player checks

	BulletHitX float64 `yaml:"bullet_hit_x"` // Lateral half-extent, scaled by target
	BulletHitZ float64 `yaml:"bullet_hit_z"` // Forward half-extent, scaled by target

	HazardLateral  float64 `yaml:"hazard_lateral"`  // Lateral threshold vs the player
	PickupLateral  float64 `yaml:"pickup_lateral"`
	PickupVertical float64 `yaml:"pickup_vertical"` // Looser than hazard bands

	PlayerBottom float64 `yaml:"player_bottom"`
	PlayerTop    float64 `yaml:"player_top"`
	PlayerBodyY  float64 `yaml:"player_body_y"` // Body center for enemy bullet hits

	EnemyBulletHitX float64 `yaml:"enemy_bullet_hit_x"`
	EnemyBulletHitY float64 `yaml:"enemy_bullet_hit_y"`

	PortalRange float64 `yaml:"portal_range"` // Forward distance to trigger the shop

	GemValue  int `yaml:"gem_value"`  // Score per gem
	KillBonus int `yaml:"kill_bonus"` // Score per destroyed target

	// Per-kind/per-variant vertical bands. Saucers hover, tanks hug the
	// ground, missiles fly at player height.
	HazardBand  Band `yaml:"hazard_band"`
	SaucerBand  Band `yaml:"saucer_band"`
	ArmoredBand Band `yaml:"armored_band"`
	MissileBand Band `yaml:"missile_band"`
	FlyerBand   Band `yaml:"flyer_band"`

	RusherFireInterval float64 `yaml:"rusher_fire_interval"` // Seconds between saucer volleys
	FlyerTriggerZ      float64 `yaml:"flyer_trigger_z"`      // Missile launch threshold
}

// LetterConfig governs the bonus letter progression.
type LetterConfig struct {
	Word         string  `yaml:"word"`          // Target glyph set, one slot per rune
	BaseDistance float64 `yaml:"base_distance"` // Travel distance to the first letter
	GrowthFactor float64 `yaml:"growth_factor"` // Geometric per-level threshold growth
}

// PlayerConfig defines player movement and firing.
type PlayerConfig struct {
	FireInterval   float64 `yaml:"fire_interval"`    // Seconds between shots while held
	SpreadLateral  float64 `yaml:"spread_lateral"`   // Lateral speed of angled spread shots
	LaneTweenSpeed float64 `yaml:"lane_tween_speed"` // Lateral units/sec when changing lanes
}

// ProgressConfig defines run-level progression and shop pricing.
type ProgressConfig struct {
	Lives              int     `yaml:"lives"`
	MaxLevel           int     `yaml:"max_level"`
	SlowMotionDuration float64 `yaml:"slow_motion_duration"` // Seconds per trigger
	InvulnWindow       float64 `yaml:"invuln_window"`        // Seconds of post-hit immunity

	DamageCost   int `yaml:"damage_cost"`    // Shop: +1 damage per shot
	FireRateCost int `yaml:"fire_rate_cost"` // Shop: faster autofire
	SpreadCost   int `yaml:"spread_cost"`    // Shop: angled side shots
	MagnetCost   int `yaml:"magnet_cost"`    // Shop: larger magnet radius
	CostGrowth   float64 `yaml:"cost_growth"` // Price multiplier per purchase
}

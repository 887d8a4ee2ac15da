package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Kept in sync with defaults/runner.yaml; used as the last-resort fallback
// if the embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Corridor: CorridorConfig{
			LaneCount:    3,
			LaneWidth:    2.0,
			Horizon:      100,
			RemoveBehind: 6,
		},
		Speeds: SpeedConfig{
			BaseRunSpeed:     10,
			RunSpeedPerLevel: 1.5,
			BulletSpeed:      30,
			BulletRange:      110,
			EnemyBulletSpeed: 20,
			MissileThrust:    14,
			StrafeAmplitude:  8,
			StrafeFrequency:  3,
			RusherSpeedBonus: 2,
			TankSpeedBonus:   -1.5,
		},
		Spawn: SpawnConfig{
			BaseGap:           6,
			SpeedGapFactor:    0.35,
			SkipChance:        0.25,
			ObstacleWeight:    0.65,
			FlyerChance:       0.08,
			FlyerUnlockLevel:  2,
			GroupChance:       0.3,
			TripleChance:      0.08,
			RusherWeight:      0.25,
			RusherUnlockLevel: 2,
			TankWeight:        0.15,
			TankUnlockLevel:   3,
			BonusGemChance:    0.1,
			FirstLevelHP:      1,
			HPPerLevel:        2,
			TankHPMultiplier:  3,
			RusherHPDivisor:   2,
		},
		Combat: CombatConfig{
			MagnetRadiusSq:  25,
			ProximityWindow: 1.2,
			BulletHitX:      0.8,
			BulletHitZ:      1.0,
			HazardLateral:   0.9,
			PickupLateral:   1.0,
			PickupVertical:  2.0,
			PlayerBottom:    0,
			PlayerTop:       1.8,
			PlayerBodyY:     1.0,
			EnemyBulletHitX: 0.6,
			EnemyBulletHitY: 0.9,
			PortalRange:     2.0,
			GemValue:        10,
			KillBonus:       10,
			HazardBand:      Band{Bottom: 0, Top: 1.6},
			SaucerBand:      Band{Bottom: 0.6, Top: 2.2},
			ArmoredBand:     Band{Bottom: 0, Top: 2.0},
			MissileBand:     Band{Bottom: 0.5, Top: 1.5},
			FlyerBand:       Band{Bottom: 1.2, Top: 2.8},
			RusherFireInterval: 2.5,
			FlyerTriggerZ:      -30,
		},
		Letters: LetterConfig{
			Word:         "RUNNER",
			BaseDistance: 250,
			GrowthFactor: 1.4,
		},
		Player: PlayerConfig{
			FireInterval:   0.25,
			SpreadLateral:  6,
			LaneTweenSpeed: 12,
		},
		Progress: ProgressConfig{
			Lives:              3,
			MaxLevel:           9,
			SlowMotionDuration: 4,
			InvulnWindow:       1.5,
			DamageCost:         150,
			FireRateCost:       120,
			SpreadCost:         200,
			MagnetCost:         100,
			CostGrowth:         1.6,
		},
	}
}

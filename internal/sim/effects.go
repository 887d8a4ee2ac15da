package sim

import "github.com/lanerush/lanerush/internal/core"

// EffectSink receives fire-and-forget presentation events from the
// simulation: particle bursts and sound cues. The core never waits for or
// depends on their completion, and a nil-safe no-op sink keeps headless
// runs and tests quiet.
type EffectSink interface {
	Burst(pos core.Vec3, color core.Color)
	PlayShoot()
	PlayImpact()
	PlayExplosion()
	PlayGemCollect()
	PlayLetterCollect()
	PlayerHit()
}

// NopSink discards all effects.
type NopSink struct{}

func (NopSink) Burst(core.Vec3, core.Color) {}
func (NopSink) PlayShoot()                  {}
func (NopSink) PlayImpact()                 {}
func (NopSink) PlayExplosion()              {}
func (NopSink) PlayGemCollect()             {}
func (NopSink) PlayLetterCollect()          {}
func (NopSink) PlayerHit()                  {}

// BurstEvent is one recorded particle burst.
type BurstEvent struct {
	Pos   core.Vec3
	Color core.Color
}

// Recorder captures effects for assertions in tests and for the renderer's
// particle layer.
type Recorder struct {
	Bursts     []BurstEvent
	Shoots     int
	Impacts    int
	Explosions int
	Gems       int
	Letters    int
	PlayerHits int
}

func (r *Recorder) Burst(pos core.Vec3, color core.Color) {
	r.Bursts = append(r.Bursts, BurstEvent{Pos: pos, Color: color})
}
func (r *Recorder) PlayShoot()         { r.Shoots++ }
func (r *Recorder) PlayImpact()        { r.Impacts++ }
func (r *Recorder) PlayExplosion()     { r.Explosions++ }
func (r *Recorder) PlayGemCollect()    { r.Gems++ }
func (r *Recorder) PlayLetterCollect() { r.Letters++ }
func (r *Recorder) PlayerHit()         { r.PlayerHits++ }

// Reset clears all recorded effects.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

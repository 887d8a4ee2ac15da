package sim

import (
	"math"
	"testing"
)

func TestLaneClampThreeLanes(t *testing.T) {
	gw := newStubGateway()
	w, _ := newTestWorld(gw, nil, 1)

	for i := 0; i < 3; i++ {
		w.Apply(CmdMoveLaneLeft)
	}
	if w.Player().Lane != -1 {
		t.Errorf("lane = %d after repeated left, want -1", w.Player().Lane)
	}

	for i := 0; i < 5; i++ {
		w.Apply(CmdMoveLaneRight)
	}
	if w.Player().Lane != 1 {
		t.Errorf("lane = %d after repeated right, want 1", w.Player().Lane)
	}
}

func TestLaneBoundsAsymmetricForEvenCounts(t *testing.T) {
	gw := newStubGateway()
	gw.laneCount = 4
	w, _ := newTestWorld(gw, nil, 1)

	for i := 0; i < 5; i++ {
		w.Apply(CmdMoveLaneLeft)
	}
	if w.Player().Lane != -1 {
		t.Errorf("left bound = %d for 4 lanes, want -1", w.Player().Lane)
	}

	for i := 0; i < 5; i++ {
		w.Apply(CmdMoveLaneRight)
	}
	if w.Player().Lane != 2 {
		t.Errorf("right bound = %d for 4 lanes, want 2", w.Player().Lane)
	}
}

func TestClampLaneAfterCorridorShrink(t *testing.T) {
	gw := newStubGateway()
	w, _ := newTestWorld(gw, nil, 1)

	w.Apply(CmdMoveLaneRight)
	if w.Player().Lane != 1 {
		t.Fatalf("lane = %d, want 1", w.Player().Lane)
	}

	w.Player().ClampLane(1)
	if w.Player().Lane != 0 {
		t.Errorf("lane = %d after shrink to one lane, want 0", w.Player().Lane)
	}
}

func TestLateralTweenChasesLaneCenter(t *testing.T) {
	gw := newStubGateway()
	w, cfg := newTestWorld(gw, nil, 1)

	w.Apply(CmdMoveLaneLeft)
	w.Tick(0.05)

	want := -cfg.Player.LaneTweenSpeed * 0.05
	if x := w.Player().Pos().X; math.Abs(x-want) > 1e-9 {
		t.Errorf("player X = %v after one tick, want %v", x, want)
	}

	// Enough ticks to settle exactly on the lane center.
	for i := 0; i < 20; i++ {
		w.Tick(0.05)
	}
	if x := w.Player().Pos().X; x != -cfg.Corridor.LaneWidth {
		t.Errorf("player X = %v settled, want lane center %v", x, -cfg.Corridor.LaneWidth)
	}
}

func TestAutofireCadence(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	fx := &Recorder{}
	w, _ := newTestWorld(gw, fx, 1)

	w.SetFireHeld(true)
	// 0.3 seconds at a 0.25s interval: the immediate volley plus one more.
	for i := 0; i < 6; i++ {
		w.Tick(0.05)
	}

	if fx.Shoots != 2 {
		t.Errorf("volleys = %d over 0.3s, want 2", fx.Shoots)
	}

	w.SetFireHeld(false)
	before := fx.Shoots
	for i := 0; i < 20; i++ {
		w.Tick(0.05)
	}
	if fx.Shoots != before {
		t.Error("released trigger kept firing")
	}
}

func TestSpreadAddsSideShots(t *testing.T) {
	gw := newStubGateway()
	gw.runSpeed = 0
	gw.spread = 1
	w, _ := newTestWorld(gw, nil, 1)

	w.SetFireHeld(true)
	w.Tick(0.016)

	var straight, angled int
	for _, e := range w.Entities() {
		if e.Kind != KindBullet {
			continue
		}
		if e.Vel.X == 0 {
			straight++
		} else {
			angled++
		}
	}

	if straight != 1 || angled != 2 {
		t.Errorf("volley = %d straight + %d angled, want 1 + 2", straight, angled)
	}
}

func TestSlowMotionCommandRoutesToGateway(t *testing.T) {
	gw := newStubGateway()
	w, _ := newTestWorld(gw, nil, 1)

	w.Apply(CmdTriggerSlowMotion)
	if gw.slowTriggers != 1 {
		t.Errorf("slow-motion triggers = %d, want 1", gw.slowTriggers)
	}
}

package geometry

import (
	"math"
	"testing"
)

func defaultGeometry() Geometry {
	return ForWheel(50, 180)
}

func pointAt(deg, radius float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return math.Cos(rad) * radius, math.Sin(rad) * radius
}

func TestHitTestDeadZone(t *testing.T) {
	geo := defaultGeometry()
	for _, radius := range []float64{0, 10, 49.9} {
		dx, dy := pointAt(30, radius)
		if got := HitTest(dx, dy, geo); got.Kind != TargetNone {
			t.Fatalf("expected dead zone at radius %.1f, got %+v", radius, got)
		}
	}
}

func TestHitTestOutsideWheel(t *testing.T) {
	geo := defaultGeometry()
	dx, dy := pointAt(200, 180.1)
	if got := HitTest(dx, dy, geo); got.Kind != TargetNone {
		t.Fatalf("expected no target outside the ring, got %+v", got)
	}
}

func TestHitTestPartitionsRingIntoEightSegments(t *testing.T) {
	geo := defaultGeometry()
	for i := 0; i < 8; i++ {
		deg := float64(i) * SegmentAngle
		dx, dy := pointAt(deg, 115)
		got := HitTest(dx, dy, geo)
		if got.Kind != TargetSlot || got.Slot != i {
			t.Fatalf("expected slot %d at %.1f degrees, got %+v", i, deg, got)
		}
	}
}

func TestHitTestSegmentBoundaries(t *testing.T) {
	geo := defaultGeometry()
	cases := []struct {
		deg  float64
		slot int
	}{
		{-22.4, 0},
		{22.4, 0},
		{22.6, 1},
		{-22.6, 7},
		{-45, 7},
		{180, 4},
	}
	for _, tc := range cases {
		dx, dy := pointAt(tc.deg, 115)
		got := HitTest(dx, dy, geo)
		if got.Kind != TargetSlot || got.Slot != tc.slot {
			t.Fatalf("expected slot %d at %.1f degrees, got %+v", tc.slot, tc.deg, got)
		}
	}
}

func TestHitTestSlotCenterAngleRoundTrips(t *testing.T) {
	geo := defaultGeometry()
	for i := 0; i < 8; i++ {
		angle := SlotCenterAngle(i)
		dx := math.Cos(angle) * 115
		dy := math.Sin(angle) * 115
		got := HitTest(dx, dy, geo)
		if got.Kind != TargetSlot || got.Slot != i {
			t.Fatalf("slot center %d resolved to %+v", i, got)
		}
	}
}

func TestHitTestSettingsButtonWinsOverRing(t *testing.T) {
	geo := defaultGeometry()
	got := HitTest(geo.SettingsCenter.X, geo.SettingsCenter.Y, geo)
	if got.Kind != TargetSettings {
		t.Fatalf("expected settings target at button center, got %+v", got)
	}
	// Just past the button edge the point is outside the ring entirely.
	dx := geo.SettingsCenter.X + geo.SettingsRadius + 1
	if got := HitTest(dx, geo.SettingsCenter.Y, geo); got.Kind != TargetNone {
		t.Fatalf("expected no target just outside the button, got %+v", got)
	}
}

func TestHitTestWithoutSettingsButton(t *testing.T) {
	geo := Geometry{InnerRadius: 50, OuterRadius: 180}
	dx, dy := pointAt(0, 115)
	if got := HitTest(dx, dy, geo); got.Kind != TargetSlot || got.Slot != 0 {
		t.Fatalf("expected slot 0, got %+v", got)
	}
}

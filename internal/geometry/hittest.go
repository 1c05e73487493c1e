// Package geometry maps cursor offsets to logical wheel targets. Everything
// here is pure: the poll loop re-evaluates it every tick because a borderless
// overlay gets no discrete events for pointer motion.
package geometry

import "math"

// TargetKind classifies what sits under the cursor.
type TargetKind int

const (
	// TargetNone covers the dead zone inside the inner radius and anything
	// outside the wheel ring.
	TargetNone TargetKind = iota
	// TargetSlot is one of the eight segments; Target.Slot holds the index.
	TargetSlot
	// TargetSettings is the settings button sitting just outside the ring.
	TargetSettings
)

// Target is the result of a hit test.
type Target struct {
	Kind TargetKind
	Slot int
}

// None is the empty target.
var None = Target{Kind: TargetNone, Slot: -1}

// Point is an offset in pixels relative to the wheel center.
type Point struct {
	X float64
	Y float64
}

// Geometry describes the wheel shape for one evaluation.
type Geometry struct {
	InnerRadius    float64
	OuterRadius    float64
	SettingsCenter Point
	SettingsRadius float64
}

const (
	// SegmentAngle is the arc covered by each of the eight slots.
	SegmentAngle = 360.0 / 8
	// AngleOffset centers slot 0 on the 0° axis pointing right, so segment
	// boundaries fall exactly between slot centers and no ties are possible.
	AngleOffset = -SegmentAngle / 2

	// SettingsButtonRadius is the fixed hit radius of the settings button.
	SettingsButtonRadius = 14.0
	settingsButtonGap    = 4.0
)

// ForWheel builds the geometry for a wheel of the given radii, placing the
// settings button on the upper-right diagonal just outside the ring.
func ForWheel(innerRadius, wheelRadius float64) Geometry {
	reach := wheelRadius + SettingsButtonRadius + settingsButtonGap
	diag := math.Sqrt2 / 2
	return Geometry{
		InnerRadius:    innerRadius,
		OuterRadius:    wheelRadius,
		SettingsCenter: Point{X: reach * diag, Y: -reach * diag},
		SettingsRadius: SettingsButtonRadius,
	}
}

// HitTest resolves a cursor offset to a target. The settings button wins over
// slot hit-testing even where the regions overlap.
func HitTest(dx, dy float64, geo Geometry) Target {
	if geo.SettingsRadius > 0 {
		sx := dx - geo.SettingsCenter.X
		sy := dy - geo.SettingsCenter.Y
		if math.Hypot(sx, sy) <= geo.SettingsRadius {
			return Target{Kind: TargetSettings, Slot: -1}
		}
	}
	dist := math.Hypot(dx, dy)
	if dist < geo.InnerRadius || dist > geo.OuterRadius {
		return None
	}
	angle := math.Atan2(dy, dx)*180/math.Pi - AngleOffset
	for angle < 0 {
		angle += 360
	}
	for angle >= 360 {
		angle -= 360
	}
	return Target{Kind: TargetSlot, Slot: int(angle/SegmentAngle) % 8}
}

// SlotCenterAngle returns the angle, in radians, of a slot's center. Renderers
// use it to place labels along the ring.
func SlotCenterAngle(index int) float64 {
	deg := AngleOffset + float64(index)*SegmentAngle + SegmentAngle/2
	return deg * math.Pi / 180
}

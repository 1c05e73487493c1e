package app

import (
	"testing"

	"github.com/quickwheel/quickwheel/internal/wheel"
)

func TestApplyOverridesSessionOnly(t *testing.T) {
	s := wheel.DefaultSettings()
	applyOverrides(&s, Config{DwellMs: 250, WheelRadius: 220, AutoContinueExtraMs: -1})
	if s.DwellMs != 250 || s.WheelRadius != 220 {
		t.Fatalf("overrides not applied: %+v", s)
	}
	if s.AutoContinueExtraMs != wheel.DefaultSettings().AutoContinueExtraMs {
		t.Fatalf("-1 must keep the stored extra delay, got %d", s.AutoContinueExtraMs)
	}
	if s.InnerRadius != wheel.DefaultSettings().InnerRadius {
		t.Fatalf("zero override must keep the stored inner radius")
	}
}

func TestApplyOverridesExplicitZeroExtra(t *testing.T) {
	s := wheel.DefaultSettings()
	applyOverrides(&s, Config{AutoContinueExtraMs: 0})
	if s.AutoContinueExtraMs != 0 {
		t.Fatalf("explicit 0 should disable the extra delay, got %d", s.AutoContinueExtraMs)
	}
}

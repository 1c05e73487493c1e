package events

import "github.com/quickwheel/quickwheel/internal/logging"

type WheelTracer struct{}

type NavTracer struct{}

type SessionTracer struct{}

type ActionTracer struct{}

var (
	Wheel   = WheelTracer{}
	Nav     = NavTracer{}
	Session = SessionTracer{}
	Action  = ActionTracer{}
)

func (WheelTracer) Hover(index int, settings bool) {
	logging.Trace("wheel.hover", map[string]interface{}{"slot": index, "settings": settings})
}

func (WheelTracer) DwellArmed(index int, durationMs int) {
	logging.Trace("wheel.dwell-armed", map[string]interface{}{"slot": index, "ms": durationMs})
}

func (WheelTracer) DwellSuppressed(index int, action string) {
	logging.Trace("wheel.dwell-suppressed", map[string]interface{}{"slot": index, "action": action})
}

func (WheelTracer) DwellFired(index int, action string) {
	logging.Trace("wheel.dwell-fired", map[string]interface{}{"slot": index, "action": action})
}

func (NavTracer) Push(id string, depth int) {
	logging.Trace("nav.push", map[string]interface{}{"folder": id, "depth": depth})
}

func (NavTracer) Pop(depth int) {
	logging.Trace("nav.pop", map[string]interface{}{"depth": depth})
}

func (NavTracer) Reset(reason string) {
	logging.Trace("nav.reset", map[string]interface{}{"reason": reason})
}

func (SessionTracer) Activated() {
	logging.Trace("session.activated", nil)
}

func (SessionTracer) Deactivated(hovered int, settings bool) {
	logging.Trace("session.deactivated", map[string]interface{}{"slot": hovered, "settings": settings})
}

func (ActionTracer) Dispatch(kind, value string) {
	logging.Trace("action.dispatch", map[string]interface{}{"type": kind, "value": value})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

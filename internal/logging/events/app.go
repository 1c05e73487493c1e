package events

import "github.com/quickwheel/quickwheel/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) GraphLoaded(folders int, fallback bool) {
	logging.Trace("app.graph-loaded", map[string]interface{}{
		"folders":  folders,
		"fallback": fallback,
	})
}

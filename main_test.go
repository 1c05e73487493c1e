package main

import (
	"testing"

	"github.com/quickwheel/quickwheel/internal/app"
	"github.com/quickwheel/quickwheel/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			ConfigPath: "wheel.json",
			DwellMs:    400,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"config":   "wheel.json",
			"dwell-ms": "400",
		},
		Args: []string{"-config", "wheel.json"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["config"] != "wheel.json" {
		t.Fatalf("expected config flag %q, got %v", "wheel.json", flagsValue["config"])
	}
	if flagsValue["dwell-ms"] != "400" {
		t.Fatalf("expected dwell-ms 400, got %v", flagsValue["dwell-ms"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected logFile trace.log, got %v", flagsValue["logFile"])
	}
	argv, ok := payload["argv"].([]string)
	if !ok || len(argv) != 2 {
		t.Fatalf("expected argv with 2 entries, got %v", payload["argv"])
	}
}

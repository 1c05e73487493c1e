package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quickwheel/quickwheel/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigPath  = "QUICKWHEEL_CONFIG"
	envDwellMs     = "QUICKWHEEL_DWELL_MS"
	envExtraMs     = "QUICKWHEEL_AUTO_CONTINUE_MS"
	envRadius      = "QUICKWHEEL_RADIUS"
	envInnerRadius = "QUICKWHEEL_INNER_RADIUS"
	envSuppression = "QUICKWHEEL_SUPPRESSION_CLEAR"
	envTrace       = "QUICKWHEEL_TRACE"
	envLogFile     = "QUICKWHEEL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("quickwheel", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfigPath, ""), "path to the wheel config file (defaults to the user config dir)")
	dwell := fs.Int("dwell-ms", envOrInt(env, envDwellMs, 0), "folder/back hover delay in ms for this session (0 uses the stored setting)")
	extra := fs.Int("auto-continue-ms", envOrInt(env, envExtraMs, -1), "extra delay in ms before auto-continuing into nested folders (-1 uses the stored setting)")
	radius := fs.Int("radius", envOrInt(env, envRadius, 0), "wheel radius in px for this session (0 uses the stored setting)")
	inner := fs.Int("inner-radius", envOrInt(env, envInnerRadius, 0), "dead-zone radius in px for this session (0 uses the stored setting)")
	suppression := fs.String("suppression-clear", envOrDefault(env, envSuppression, "slot-change"), "when post-navigation dwell suppression clears: slot-change or observe")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			ConfigPath:          *configPath,
			DwellMs:             *dwell,
			AutoContinueExtraMs: *extra,
			WheelRadius:         *radius,
			InnerRadius:         *inner,
			SuppressionClear:    *suppression,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":            *configPath,
			"dwell-ms":          strconv.Itoa(*dwell),
			"auto-continue-ms":  strconv.Itoa(*extra),
			"radius":            strconv.Itoa(*radius),
			"inner-radius":      strconv.Itoa(*inner),
			"suppression-clear": *suppression,
			"trace":             strconv.FormatBool(*trace),
			"logFile":           *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// Validate ensures overrides stay within the ranges the settings dialog
// enforces.
func Validate(cfg Config) error {
	a := cfg.App
	if a.DwellMs != 0 && (a.DwellMs < 100 || a.DwellMs > 2000) {
		return fmt.Errorf("dwell-ms must be within 100..2000 (got %d)", a.DwellMs)
	}
	if a.AutoContinueExtraMs > 2000 {
		return fmt.Errorf("auto-continue-ms must be within 0..2000 (got %d)", a.AutoContinueExtraMs)
	}
	if a.WheelRadius != 0 && (a.WheelRadius < 100 || a.WheelRadius > 400) {
		return fmt.Errorf("radius must be within 100..400 (got %d)", a.WheelRadius)
	}
	if a.InnerRadius != 0 && (a.InnerRadius < 20 || a.InnerRadius > 150) {
		return fmt.Errorf("inner-radius must be within 20..150 (got %d)", a.InnerRadius)
	}
	switch a.SuppressionClear {
	case "", "slot-change", "observe":
	default:
		return fmt.Errorf("suppression-clear must be slot-change or observe (got %q)", a.SuppressionClear)
	}
	return nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"silicogenesis/pkg/hexmap"
)

// Environment variables read by FromEnv.
const (
	EnvRuntimeEnvironment = "RUNTIME_ENVIRONMENT"
	EnvLogLevel           = "SILICOGENESIS_LOG_LEVEL"
	EnvFontPath           = "SILICOGENESIS_FONT_PATH"
	EnvPlayers            = "SILICOGENESIS_PLAYERS"
	EnvResourceLayout     = "SILICOGENESIS_RESOURCE_LAYOUT"
	EnvSeed               = "SILICOGENESIS_SEED"
	EnvDebugLabels        = "SILICOGENESIS_DEBUG_LABELS"
)

// RuntimeEnvironment is the deployment the client runs in.
type RuntimeEnvironment string

const (
	Local      RuntimeEnvironment = "local"
	Stage      RuntimeEnvironment = "stage"
	Production RuntimeEnvironment = "production"
)

// Resource layouts selectable with EnvResourceLayout.
const (
	LayoutPlaceholder = "placeholder"
	LayoutNoise       = "noise"
)

const maxPlayers = hexmap.HexCountSqrt

// Settings are the values that may change between runs.
type Settings struct {
	Environment    RuntimeEnvironment
	LogLevel       slog.Level
	FontPath       string
	Players        int
	ResourceLayout string
	Seed           int64
	DebugLabels    bool
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Environment:    Local,
		LogLevel:       slog.LevelDebug,
		Players:        4,
		ResourceLayout: LayoutPlaceholder,
		Seed:           1,
		DebugLabels:    true,
	}
}

// Load reads the given dotenv files (".env" when none is named) into the
// process environment and then parses the settings from it. Missing files
// are ignored. The returned settings are always usable; the error lists
// every value that was rejected and replaced by its default.
func Load(files ...string) (Settings, error) {
	var errs []error
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		errs = append(errs, fmt.Errorf("loading dotenv: %w", err))
	}
	s, err := FromEnv(os.LookupEnv)
	if err != nil {
		errs = append(errs, err)
	}
	return s, errors.Join(errs...)
}

// FromEnv parses settings through lookup, usually os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	s := Default()
	var errs []error
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvRuntimeEnvironment); ok {
		switch env := RuntimeEnvironment(strings.ToLower(v)); env {
		case Local, Stage, Production:
			s.Environment = env
		default:
			errs = append(errs, fmt.Errorf("%s: unknown environment %q", EnvRuntimeEnvironment, v))
		}
	}
	s.DebugLabels = s.Environment == Local

	if v, ok := get(EnvLogLevel); ok {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvLogLevel, err))
		} else {
			s.LogLevel = level
		}
	}

	if v, ok := get(EnvFontPath); ok {
		s.FontPath = v
	}

	if v, ok := get(EnvPlayers); ok {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", EnvPlayers, err))
		case n < 1 || n > maxPlayers:
			errs = append(errs, fmt.Errorf("%s: %d outside 1..%d", EnvPlayers, n, maxPlayers))
		default:
			s.Players = n
		}
	}

	if v, ok := get(EnvResourceLayout); ok {
		switch l := strings.ToLower(v); l {
		case LayoutPlaceholder, LayoutNoise:
			s.ResourceLayout = l
		default:
			errs = append(errs, fmt.Errorf("%s: unknown layout %q", EnvResourceLayout, v))
		}
	}

	if v, ok := get(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			s.Seed = seed
		}
	}

	if v, ok := get(EnvDebugLabels); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDebugLabels, err))
		} else {
			s.DebugLabels = b
		}
	}

	return s, errors.Join(errs...)
}

// Layout returns the resource layout the settings select.
func (s Settings) Layout() hexmap.ResourceLayout {
	if s.ResourceLayout == LayoutNoise {
		return hexmap.NewNoiseLayout(s.Seed)
	}
	return hexmap.PlaceholderLayout{}
}

// Logger returns a text logger on w at the configured level.
func (s Settings) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: s.LogLevel,
	})).With("app", ApplicationName, "environment", string(s.Environment))
}

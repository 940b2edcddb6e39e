package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"silicogenesis/pkg/hexmap"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	s, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if s != Default() {
		t.Fatalf("FromEnv() = %+v, want %+v", s, Default())
	}
}

func TestFromEnv(t *testing.T) {
	tests := map[string]struct {
		env     map[string]string
		check   func(Settings) bool
		wantErr bool
	}{
		"production hides debug labels": {
			env:   map[string]string{EnvRuntimeEnvironment: "production"},
			check: func(s Settings) bool { return s.Environment == Production && !s.DebugLabels },
		},
		"explicit debug labels win": {
			env:   map[string]string{EnvRuntimeEnvironment: "stage", EnvDebugLabels: "true"},
			check: func(s Settings) bool { return s.Environment == Stage && s.DebugLabels },
		},
		"log level": {
			env:   map[string]string{EnvLogLevel: "warn"},
			check: func(s Settings) bool { return s.LogLevel == slog.LevelWarn },
		},
		"players and layout": {
			env:   map[string]string{EnvPlayers: "8", EnvResourceLayout: "NOISE", EnvSeed: "-9"},
			check: func(s Settings) bool { return s.Players == 8 && s.ResourceLayout == LayoutNoise && s.Seed == -9 },
		},
		"font path": {
			env:   map[string]string{EnvFontPath: " /tmp/font.ttf "},
			check: func(s Settings) bool { return s.FontPath == "/tmp/font.ttf" },
		},
		"blank values are ignored": {
			env:   map[string]string{EnvPlayers: "  "},
			check: func(s Settings) bool { return s.Players == 4 },
		},
		"unknown environment": {
			env:     map[string]string{EnvRuntimeEnvironment: "moon"},
			check:   func(s Settings) bool { return s.Environment == Local },
			wantErr: true,
		},
		"too many players": {
			env:     map[string]string{EnvPlayers: "65"},
			check:   func(s Settings) bool { return s.Players == 4 },
			wantErr: true,
		},
		"bad seed keeps the rest": {
			env:     map[string]string{EnvSeed: "x", EnvPlayers: "2"},
			check:   func(s Settings) bool { return s.Seed == 1 && s.Players == 2 },
			wantErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := FromEnv(lookupFrom(tt.env))
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromEnv error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.check(s) {
				t.Fatalf("unexpected settings %+v", s)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	s := Default()
	if _, ok := s.Layout().(hexmap.PlaceholderLayout); !ok {
		t.Fatalf("default layout = %T", s.Layout())
	}
	s.ResourceLayout = LayoutNoise
	if _, ok := s.Layout().(*hexmap.NoiseLayout); !ok {
		t.Fatalf("noise layout = %T", s.Layout())
	}
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvPlayers+"=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv(EnvPlayers)
	t.Cleanup(func() { os.Unsetenv(EnvPlayers) })

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Players != 3 {
		t.Fatalf("players = %d, want 3", s.Players)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("Load of a missing file: %v", err)
	}
}

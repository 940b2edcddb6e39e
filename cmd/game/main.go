// cmd/game/main.go
package main

import (
	"log/slog"
	"os"

	"silicogenesis/internal/app"
	"silicogenesis/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	settings, settingsErr := config.Load()

	a := app.New(settings)
	if err := a.Init(); err != nil {
		slog.Error("init failed", "error", err)
		return 1
	}
	if settingsErr != nil {
		slog.Warn("ignoring invalid settings", "error", settingsErr)
	}

	runErr := a.Run()
	if err := a.Destroy(); err != nil {
		slog.Error("destroy failed", "error", err)
		return 1
	}
	if runErr != nil {
		slog.Error("run failed", "error", runErr)
		return 1
	}
	return 0
}

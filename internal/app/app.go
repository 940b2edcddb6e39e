// Package app owns the client lifecycle: Init, Run and Destroy around the
// ebiten loop.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"silicogenesis/internal/config"
	"silicogenesis/internal/event"
	"silicogenesis/internal/state"
	"silicogenesis/pkg/render"
)

// ErrWindowInit is wrapped by every error caused by the window or the
// graphics driver.
var ErrWindowInit = errors.New("window initialisation failed")

// App is one run of the client.
type App struct {
	settings config.Settings
	ctx      *state.Context
	game     *Game
}

func New(settings config.Settings) *App {
	return &App{settings: settings}
}

// Init configures logging and the window, loads fonts and starts the
// loading stage. A font problem is not fatal; it is shown once the game
// stage opens.
func (a *App) Init() error {
	if a.game != nil {
		return errors.New("app already initialised")
	}
	SetupLogging(os.Stderr, a.settings)

	ebiten.SetTPS(config.TargetFPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.ApplicationName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	fonts, fontErr := render.LoadFonts(a.settings.FontPath)
	if fontErr != nil {
		slog.Warn("falling back to the embedded font", "path", a.settings.FontPath, "error", fontErr)
	}

	a.ctx = state.NewContext(a.settings, fonts, fontErr)
	sm := state.NewStateMachine()
	sm.Bind(a.ctx.Events, func(s event.Stage) state.State {
		return state.NewStage(s, a.ctx)
	})
	sm.SetState(state.NewLoadingState(a.ctx))
	a.game = newGame(sm, a.ctx)

	slog.Info("initialised",
		"environment", a.settings.Environment,
		"width", config.ScreenWidth,
		"height", config.ScreenHeight,
		"tps", config.TargetFPS,
	)
	return nil
}

// Run blocks until the window is closed.
func (a *App) Run() error {
	if a.game == nil {
		return errors.New("app not initialised")
	}
	if err := ebiten.RunGame(a.game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("%w: %w", ErrWindowInit, err)
	}
	return nil
}

// Destroy releases the world and the fonts.
func (a *App) Destroy() error {
	if a.ctx == nil {
		return nil
	}
	a.ctx.World = nil
	err := a.ctx.Fonts.Close()
	a.ctx = nil
	a.game = nil
	if err != nil {
		return fmt.Errorf("releasing fonts: %w", err)
	}
	slog.Info("shut down")
	return nil
}

// SetupLogging installs the settings' logger on w as the default logger.
func SetupLogging(w io.Writer, settings config.Settings) {
	slog.SetDefault(settings.Logger(w))
}

package state

import (
	"log/slog"

	"silicogenesis/internal/config"
	"silicogenesis/internal/event"
	"silicogenesis/internal/ui"
	"silicogenesis/internal/world"
	"silicogenesis/pkg/render"
)

// Context is what the stages share. World is nil until the loading stage
// has built it.
type Context struct {
	Settings config.Settings
	Fonts    *render.Fonts
	Map      *render.HexRenderer
	UI       *render.UIRenderer
	Events   *event.Dispatcher
	World    *world.World
	Screen   ui.Size

	// FontErr is shown in the error window once the game stage opens.
	FontErr error
}

// NewContext wires the renderers around fonts.
func NewContext(settings config.Settings, fonts *render.Fonts, fontErr error) *Context {
	return &Context{
		Settings: settings,
		Fonts:    fonts,
		Map:      render.NewHexRenderer(fonts, settings.DebugLabels),
		UI:       render.NewUIRenderer(fonts),
		Events:   event.NewDispatcher(),
		Screen:   ui.Size{W: config.ScreenWidth, H: config.ScreenHeight},
		FontErr:  fontErr,
	}
}

// RequestStage asks the state machine bound to Events to switch stage.
func (c *Context) RequestStage(s event.Stage) {
	slog.Debug("stage change requested", "stage", s)
	c.Events.Dispatch(event.Event{Type: event.StageChangeRequested, Data: s})
}

// NewStage builds the state for s.
func NewStage(s event.Stage, ctx *Context) State {
	switch s {
	case event.StageLoading:
		return NewLoadingState(ctx)
	case event.StageTitle:
		return NewTitleState(ctx)
	case event.StageGame:
		return NewGameState(ctx)
	default:
		slog.Warn("unknown stage", "stage", s)
		return nil
	}
}

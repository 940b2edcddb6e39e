package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"silicogenesis/internal/config"
	"silicogenesis/internal/event"
	"silicogenesis/internal/world"
	"silicogenesis/pkg/hexmap"
)

var _ State = (*LoadingState)(nil)

// LoadingState shows "Loading..." for one frame, builds the world and
// moves on to the title stage.
type LoadingState struct {
	ctx   *Context
	shown bool
	done  bool
}

func NewLoadingState(ctx *Context) *LoadingState {
	return &LoadingState{ctx: ctx}
}

func (s *LoadingState) Enter() {}

func (s *LoadingState) Update(deltaTime float64) {
	// Wait until the loading text has been on screen once.
	if !s.shown || s.done {
		return
	}
	s.done = true
	if s.ctx.World == nil {
		s.ctx.World = BuildWorld(s.ctx.Settings)
	}
	s.ctx.RequestStage(event.StageTitle)
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MapBackgroundColor)
	s.ctx.UI.DrawLoading(screen)
	s.shown = true
}

func (s *LoadingState) Exit() {}

// BuildWorld creates the map and players from settings and tags the default
// logger with the new session.
func BuildWorld(settings config.Settings) *world.World {
	w := world.New(world.Options{
		Players: settings.Players,
		Layout:  settings.Layout(),
	})
	slog.SetDefault(slog.Default().With("session", w.ID.String()))

	counts := w.Map.ResourceCounts()
	slog.Info("world ready",
		"players", len(w.Players),
		"layout", settings.ResourceLayout,
		"metal", counts[hexmap.ResourceMetal],
		"oil", counts[hexmap.ResourceOil],
	)
	return w
}

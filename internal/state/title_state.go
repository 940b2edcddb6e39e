// internal/state/title_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"silicogenesis/internal/config"
	"silicogenesis/internal/event"
	"silicogenesis/internal/ui"
)

var _ State = (*TitleState)(nil)

// TitleState is the landing screen.
type TitleState struct {
	ctx    *Context
	screen *ui.TitleScreen
}

func NewTitleState(ctx *Context) *TitleState {
	return &TitleState{ctx: ctx}
}

func (s *TitleState) Enter() {
	s.layout()
}

func (s *TitleState) layout() {
	s.screen = ui.NewTitleScreen(
		config.ApplicationTitle,
		s.ctx.Screen,
		s.ctx.Fonts,
		s.ctx.Settings.Environment == config.Local,
		ui.TitleActions{
			Play: func() { s.ctx.RequestStage(event.StageGame) },
			Account: func() {
				slog.Info("account screen is not available yet")
			},
		},
	)
}

func (s *TitleState) Update(deltaTime float64) {
	if s.screen == nil || s.ctx.Screen != s.screen.Screen() {
		s.layout()
	}
	s.screen.HandleInput(PollInput())
}

func (s *TitleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MapBackgroundColor)
	s.ctx.UI.DrawTitle(screen, s.screen)
}

func (s *TitleState) Exit() {}

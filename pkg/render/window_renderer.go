package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"silicogenesis/internal/config"
	"silicogenesis/internal/ui"
)

// UIRenderer draws the stage screens and popup windows from internal/ui.
type UIRenderer struct {
	fonts *Fonts
}

func NewUIRenderer(fonts *Fonts) *UIRenderer {
	return &UIRenderer{fonts: fonts}
}

// DrawLoading draws the loading text in the bottom-left corner.
func (u *UIRenderer) DrawLoading(screen *ebiten.Image) {
	h := float64(screen.Bounds().Dy())
	u.fonts.DrawText(screen, "Loading...", config.LoadingFontSize,
		config.LoadingOffsetX, h-config.LoadingOffsetY, config.TextColor)
}

// DrawTitle draws the title text and its buttons.
func (u *UIRenderer) DrawTitle(screen *ebiten.Image, t *ui.TitleScreen) {
	c := t.TitleCenter()
	u.fonts.DrawTextCentered(screen, t.Title, ui.TitleFontSize, c.X, c.Y, config.TextColor)
	for _, b := range t.AllButtons() {
		u.drawButton(screen, b, ui.TitleButtonFontSize)
	}
}

// DrawWindows draws the open popups of g, the highest layer last.
func (u *UIRenderer) DrawWindows(screen *ebiten.Image, g *ui.GameScreen) {
	if f := g.Hex.Frame(); f.IsOpen() {
		u.drawFrame(screen, f, g.Hex.Title())
		r := f.Rect()
		w, h := u.fonts.MeasureText(g.Hex.Footer(), config.WindowFooterSize)
		u.fonts.DrawText(screen, g.Hex.Footer(), config.WindowFooterSize,
			contentRight(f)-w, r.Y+r.H-ui.BorderGap-h, config.TextColor)
	}
	if f := g.Pause.Frame(); f.IsOpen() {
		b := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.PauseOverlayColor, false)
		u.drawFrame(screen, f, ui.PauseWindowTitle)
		if exit := g.Pause.ExitButton(); exit != nil {
			u.drawSideButton(screen, exit)
			drawExitArrow(screen, exit.Rect)
		}
	}
	if f := g.Error.Frame(); f.IsOpen() {
		u.drawFrame(screen, f, ui.ErrorWindowTitle)
		r := f.Rect()
		_, th := u.fonts.MeasureText(ui.ErrorWindowTitle, config.WindowFontSize)
		u.fonts.DrawText(screen, g.Error.Message(), config.WindowFooterSize,
			r.X+ui.BorderGap*2, r.Y+ui.BorderGap*3+th, config.TextColor)
	}
}

// drawFrame draws the parts every window shares: background, border, the
// divider left of the side buttons, the close button and the title.
func (u *UIRenderer) drawFrame(screen *ebiten.Image, f *ui.Frame, title string) {
	r := f.Rect()
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.DrawFilledRect(screen, x, y, w, h, config.WindowBackgroundColor, false)
	vector.StrokeRect(screen, x, y, w, h, config.WindowBorderWidth, config.WindowBorderColor, false)

	divider := float32(contentRight(f) + ui.BorderGap/2)
	vector.StrokeLine(screen, divider, y+ui.BorderGap, divider, y+h-ui.BorderGap,
		ui.BorderThickness, config.WindowInteriorBorderColor, false)

	if b := f.CloseButton(); b != nil {
		u.drawSideButton(screen, b)
		cr := b.Rect
		const inset = 12
		x0, y0 := float32(cr.X+inset), float32(cr.Y+inset)
		x1, y1 := float32(cr.X+cr.W-inset), float32(cr.Y+cr.H-inset)
		vector.StrokeLine(screen, x0, y0, x1, y1, config.WindowBorderWidth, config.TextColor, true)
		vector.StrokeLine(screen, x0, y1, x1, y0, config.WindowBorderWidth, config.TextColor, true)
	}

	u.fonts.DrawText(screen, title, config.WindowFontSize, r.X+ui.BorderGap*2, r.Y+ui.BorderGap*2, config.TextColor)
}

func (u *UIRenderer) drawSideButton(screen *ebiten.Image, b *ui.RectButton) {
	r := b.Rect
	if b.Hovered() {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.ButtonHoverColor, false)
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		ui.BorderThickness, config.WindowInteriorBorderColor, false)
}

func (u *UIRenderer) drawButton(screen *ebiten.Image, b *ui.RectButton, size float64) {
	r := b.Rect
	var bg color.Color = config.WindowBackgroundColor
	if b.Hovered() {
		bg = config.ButtonHoverColor
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		ui.BorderThickness, config.WindowBorderColor, false)
	c := r.Center()
	u.fonts.DrawTextCentered(screen, b.Text, size, c.X, c.Y, config.TextColor)
}

// drawExitArrow draws a left-pointing arrow inside r.
func drawExitArrow(screen *ebiten.Image, r ui.Rect) {
	const inset = 10
	left, right := float32(r.X+inset), float32(r.X+r.W-inset)
	mid := float32(r.Y + r.H/2)
	head := float32(r.H/2 - inset)
	vector.StrokeLine(screen, left, mid, right, mid, config.WindowBorderWidth, config.TextColor, true)
	vector.StrokeLine(screen, left, mid, left+head, mid-head, config.WindowBorderWidth, config.TextColor, true)
	vector.StrokeLine(screen, left, mid, left+head, mid+head, config.WindowBorderWidth, config.TextColor, true)
}

// contentRight is the right edge of the area left of the side buttons.
func contentRight(f *ui.Frame) float64 {
	return f.SideButtonRect(0).X - ui.BorderGap
}

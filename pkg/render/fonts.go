package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts parses one font file and hands out faces of it, one per size.
type Fonts struct {
	tt    *opentype.Font
	faces map[float64]font.Face
}

// LoadFonts loads the font at path, or the embedded Go Regular font when
// path is empty. If the file cannot be used, the embedded font is loaded
// instead and the returned error says why; the Fonts are usable either way.
func LoadFonts(path string) (*Fonts, error) {
	f := &Fonts{faces: map[float64]font.Face{}}
	var loadErr error
	if path != "" {
		tt, err := parseFontFile(path)
		if err == nil {
			f.tt = tt
			return f, nil
		}
		loadErr = err
	}
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return f, errors.Join(loadErr, fmt.Errorf("parsing embedded font: %w", err))
	}
	f.tt = tt
	return f, loadErr
}

func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return tt, nil
}

// Face returns the face for size, creating it on first use. It falls back
// to a fixed bitmap face when no outline font is available.
func (f *Fonts) Face(size float64) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	var face font.Face = basicfont.Face7x13
	if f.tt != nil {
		ff, err := opentype.NewFace(f.tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			face = ff
		}
	}
	f.faces[size] = face
	return face
}

// MeasureText returns the pixel extent of s drawn at size.
func (f *Fonts) MeasureText(s string, size float64) (w, h float64) {
	b := text.BoundString(f.Face(size), s)
	return float64(b.Dx()), float64(b.Dy())
}

// DrawText draws s with its first line's top-left corner at (x, y).
func (f *Fonts) DrawText(dst *ebiten.Image, s string, size, x, y float64, clr color.Color) {
	face := f.Face(size)
	text.Draw(dst, s, face, int(x), int(y)+face.Metrics().Ascent.Ceil(), clr)
}

// DrawTextCentered draws s so its bounding box is centred on (cx, cy).
func (f *Fonts) DrawTextCentered(dst *ebiten.Image, s string, size, cx, cy float64, clr color.Color) {
	face := f.Face(size)
	b := text.BoundString(face, s)
	x := int(cx) - b.Dx()/2 - b.Min.X
	y := int(cy) - b.Dy()/2 - b.Min.Y
	text.Draw(dst, s, face, x, y, clr)
}

// Close releases every face created so far.
func (f *Fonts) Close() error {
	for size, face := range f.faces {
		if face == basicfont.Face7x13 {
			continue
		}
		if err := face.Close(); err != nil {
			return fmt.Errorf("closing %v pt face: %w", size, err)
		}
	}
	f.faces = map[float64]font.Face{}
	return nil
}

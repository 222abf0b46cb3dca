package game

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// baseFontSize is the size text is measured at before being scaled to fit.
const baseFontSize = 10

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error
)

// uiFontSource returns the shared Go Regular face source. It is parsed once.
func uiFontSource() (*text.GoTextFaceSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	return fontSource, fontErr
}

// drawCenteredText draws s centred on (cx, cy), scaled to fit a maxW x maxH box.
// Falls back to the debug font when the face source is unavailable.
func drawCenteredText(screen *ebiten.Image, s string, cx, cy, maxW, maxH float64, clr color.Color) {
	src, err := uiFontSource()
	if err != nil {
		debugPrintCentered(screen, s, cx, cy)
		return
	}
	face := &text.GoTextFace{Source: src, Size: baseFontSize}
	w, h := text.Measure(s, face, 0)
	if w <= 0 || h <= 0 {
		return
	}
	face.Size = baseFontSize * min(maxW/w, maxH/h)
	w, h = text.Measure(s, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// debugPrintCentered centres s using the fixed 6x16 debug font.
func debugPrintCentered(screen *ebiten.Image, s string, cx, cy float64) {
	ebitenutil.DebugPrintAt(screen, s, int(cx)-3*len(s), int(cy)-8)
}

package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Label is the two-letter text drawn in the center of every icon
const Label = "Ar"

// DefaultFontPath is the preferred bold font; absence triggers the
// built-in bitmap fallback
const DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

const (
	marginDivisor   = 8  // circle margin = size / 8
	fontSizeDivisor = 3  // font point size = size / 3
	textYOffset     = -2 // cosmetic vertical correction, tuned for DejaVuSans-Bold
)

var (
	backgroundColor = color.RGBA{R: 79, G: 70, B: 229, A: 255}   // индиго
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255} // белый
)

// Generator produces square extension icons: a filled circle on a
// transparent background with a centered label
type Generator struct {
	// FontPath is the TTF file tried first; any load failure silently
	// falls back to basicfont.Face7x13
	FontPath string
}

// NewGenerator creates a Generator with the default font path
func NewGenerator() *Generator {
	return &Generator{
		FontPath: DefaultFontPath,
	}
}

// Generate renders an icon of the given size and writes it as PNG to
// outputPath, overwriting any existing file
func (g *Generator) Generate(size int, outputPath string) error {
	img := g.Render(size)

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("ошибка создания файла %s: %v", outputPath, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("ошибка кодирования PNG %s: %v", outputPath, err)
	}

	return nil
}

// Render draws the icon onto a fresh transparent canvas without
// encoding it
func (g *Generator) Render(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	drawCircle(img, size)

	face := g.loadFace(size)
	defer face.Close()

	drawLabel(img, size, face)

	return img
}

// loadFace tries the preferred font at the requested size; every
// failure path returns the built-in bitmap face instead of an error
func (g *Generator) loadFace(size int) font.Face {
	data, err := os.ReadFile(g.FontPath)
	if err != nil {
		return basicfont.Face7x13
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size / fontSizeDivisor),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}

	return face
}

// drawCircle fills the circle inscribed in the margin box
// [margin, margin]..[size-margin, size-margin]. The integer inclusion
// test keeps the boundary exact: for size 16 the circle spans
// rows/cols [2, 14], for size 128 it spans [16, 112].
func drawCircle(img *image.RGBA, size int) {
	margin := size / marginDivisor
	center := size / 2
	radius := (size - 2*margin) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := x - center
			dy := y - center
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, backgroundColor)
			}
		}
	}
}

// drawLabel measures the label under the given face and draws it
// centered, with a fixed vertical correction
func drawLabel(img *image.RGBA, size int, face font.Face) {
	bounds, _ := font.BoundString(face, Label)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x := (size-textWidth)/2 - bounds.Min.X.Floor()
	y := (size-textHeight)/2 - bounds.Min.Y.Floor() + textYOffset

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(Label)
}

// Package fontpack provides the embedded font used for sigil labels.
//
// The renderer draws single-token Latin labels only, so we ship Go Bold from
// golang.org/x/image rather than loading fonts from disk.
package fontpack

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

var (
	labelOnce sync.Once
	labelFont *ScalableFont
	labelErr  error
)

// LabelFont returns the embedded label font, parsed once per process.
func LabelFont() (*ScalableFont, error) {
	labelOnce.Do(func() {
		labelFont, labelErr = ParseOpenTypeFont(gobold.TTF)
	})
	return labelFont, labelErr
}

// ParseOpenTypeFont parses an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}

// LabelFace creates a font face of the embedded label font at the given point
// size. Faces are not safe for concurrent use; callers create one per render.
func LabelFace(size float64) (font.Face, error) {
	f, err := LabelFont()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f.SFNT, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone, // supersampling smooths the output instead
	})
}

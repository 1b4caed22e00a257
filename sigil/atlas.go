package sigil

import (
	"image/color"
	"strings"
)

// Entry is the atlas value for a letter or letter combination: the canonical
// display symbol and the color it is drawn in.
type Entry struct {
	Symbol string
	Color  color.RGBA
}

// Colors of the alchemelodic alphabet. Several letters share a color because
// they share a planetary or elemental attribution.
var (
	yellow      = color.RGBA{0xFF, 0xFF, 0x00, 0xFF} // #FFFF00
	blue        = color.RGBA{0x00, 0x00, 0xFF, 0xFF} // #0000FF
	gold        = color.RGBA{0xFF, 0xD7, 0x00, 0xFF} // #FFD700
	red         = color.RGBA{0xFF, 0x00, 0x00, 0xFF} // #FF0000
	green       = color.RGBA{0x00, 0x80, 0x00, 0xFF} // #008000
	orangeRed   = color.RGBA{0xFF, 0x45, 0x00, 0xFF} // #FF4500
	indigo      = color.RGBA{0x4B, 0x00, 0x82, 0xFF} // #4B0082
	orange      = color.RGBA{0xFF, 0xA5, 0x00, 0xFF} // #FFA500
	yellowGreen = color.RGBA{0x9A, 0xCD, 0x32, 0xFF} // #9ACD32
	purple      = color.RGBA{0x80, 0x00, 0x80, 0xFF} // #800080
	darkViolet  = color.RGBA{0x94, 0x00, 0xD3, 0xFF} // #9400D3
	seaGreen    = color.RGBA{0x20, 0xB2, 0xAA, 0xFF} // #20B2AA
)

// atlas is the static letter atlas. Keys are uppercase letters or two-letter
// combinations. Note the intentional aliases: E shares A's symbol, U and W
// share V's, J and Y share I's, C shares G's, and TZ shares X's.
var atlas = map[string]Entry{
	"A":  {"A", yellow},
	"E":  {"A", yellow},
	"B":  {"B", yellow},
	"C":  {"G", blue},
	"CH": {"Ch", gold},
	"H":  {"H", red},
	"G":  {"G", blue},
	"GH": {"GH", blue},
	"D":  {"D", green},
	"DH": {"DH", green},
	"V":  {"V", orangeRed},
	"U":  {"V", orangeRed},
	"W":  {"V", orangeRed},
	"O":  {"O", indigo},
	"Z":  {"Z", orange},
	"T":  {"T", yellow},
	"TH": {"TH", indigo},
	"I":  {"I", yellowGreen},
	"J":  {"I", yellowGreen},
	"Y":  {"I", yellowGreen},
	"K":  {"K", purple},
	"KH": {"KH", darkViolet},
	"L":  {"L", green},
	"M":  {"M", blue},
	"N":  {"N", seaGreen},
	"S":  {"S", orangeRed},
	"SH": {"Sh", red},
	"P":  {"P", red},
	"PH": {"PH", orange},
	"F":  {"F", red},
	"X":  {"X", purple},
	"TZ": {"X", purple},
	"Q":  {"Q", darkViolet},
	"R":  {"R", orange},
	"RH": {"RH", gold},
}

// Lookup finds the atlas entry for a letter or letter combination.
// Lookup is case-insensitive. An unmapped key is not an error; callers treat
// absence as "this character contributes nothing".
func Lookup(key string) (Entry, bool) {
	e, ok := atlas[strings.ToUpper(key)]
	return e, ok
}

// Symbols returns the distinct canonical symbols the atlas can produce.
// Order is unspecified.
func Symbols() []string {
	seen := make(map[string]bool, len(atlas))
	var symbols []string
	for _, e := range atlas {
		if !seen[e.Symbol] {
			seen[e.Symbol] = true
			symbols = append(symbols, e.Symbol)
		}
	}
	return symbols
}

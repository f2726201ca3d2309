package condition

import (
	"strconv"
	"strings"

	"github.com/xuri/nfp"
)

// Color is an index into the 56-entry legacy workbook palette.  The zero
// value means no color.
type Color uint8

// The eight named colors and their palette indexes.
const (
	NoColor Color = iota
	Black
	White
	Red
	Green
	Blue
	Yellow
	Magenta
	Cyan
)

// MaxColorIndex is the last [ColorN] clause a pattern may name.
const MaxColorIndex = 56

var colorNames = map[string]Color{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"magenta": Magenta,
	"cyan":    Cyan,
	"黒":       Black,
	"白":       White,
	"赤":       Red,
	"緑":       Green,
	"青":       Blue,
	"黄":       Yellow,
	"紫":       Magenta,
	"水":       Cyan,
}

func init() {
	// Every name nfp recognises must map to a palette entry.
	for _, n := range nfp.ColorNames {
		if _, ok := colorNames[n]; !ok {
			panic("condition: no palette entry for color " + n)
		}
	}
}

// ParseColor resolves a color clause body: an English name in any case, a
// Japanese name, or ColorN with N in 1..56.
func ParseColor(name string) (Color, bool) {
	if c, ok := colorNames[strings.ToLower(name)]; ok {
		return c, true
	}
	if len(name) > 5 && strings.EqualFold(name[:5], "color") {
		n, err := strconv.Atoi(name[5:])
		if err == nil && n >= 1 && n <= MaxColorIndex {
			return Color(n), true
		}
	}
	return NoColor, false
}

func (c Color) String() string {
	switch c {
	case NoColor:
		return ""
	case Black:
		return "Black"
	case White:
		return "White"
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	case Magenta:
		return "Magenta"
	case Cyan:
		return "Cyan"
	}
	return "Color" + strconv.Itoa(int(c))
}

package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns an ANSI true-colour block for hex, labelled with text
// drawn in the colour's contrast text.
func Swatch(hex, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := mustRGB(hex)
	fg := mustRGB(ContrastColor(hex))

	display := text
	if len(display) > width {
		display = display[:width]
	} else if len(display) < width {
		pad := (width - len(display)) / 2
		display = strings.Repeat(" ", pad) + display + strings.Repeat(" ", width-len(display)-pad)
	}

	return fmt.Sprintf("%s%d;%d;%d%s%s%d;%d;%d%s%s%s",
		ansiBgPrefix, bg.R, bg.G, bg.B, ansiSuffix,
		ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix,
		display, ansiReset)
}

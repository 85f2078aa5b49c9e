package window

import (
	"image/color"

	"github.com/vovakirdan/blockfall/internal/core"
)

var (
	background = color.RGBA{18, 18, 24, 255}
	wellColor  = color.RGBA{30, 30, 40, 255}
	gridColor  = color.RGBA{44, 44, 56, 255}
)

// palette maps core.Color to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {200, 200, 200, 255},
	core.ColorYellow:      {240, 220, 60, 255},
	core.ColorMagenta:     {170, 80, 210, 255},
	core.ColorOrange:      {240, 150, 40, 255},
	core.ColorBlue:        {60, 100, 230, 255},
	core.ColorGreen:       {80, 200, 90, 255},
	core.ColorRed:         {220, 60, 60, 255},
	core.ColorCyan:        {70, 210, 230, 255},
	core.ColorGray:        {110, 110, 120, 255},
	core.ColorGhost:       {150, 150, 170, 255},
	core.ColorBrightWhite: {250, 250, 250, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

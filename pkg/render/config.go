package render

import (
	"image/color"

	"github.com/phasemap/phasemap/pkg/roadmap"
)

// ColorPair holds the fill and border colors mapped to a color key.
type ColorPair struct {
	Fill   color.RGBA
	Border color.RGBA
}

// Config carries every canvas dimension, color, and layout constant the
// composer uses. It is an immutable value: build one with
// DefaultConfig, adjust fields, and pass it in. The renderer never
// mutates it.
type Config struct {
	Width  int
	Height int

	Background    color.RGBA
	TitleColor    color.RGBA
	SubtitleColor color.RGBA

	// Palette maps each color key to its fill/border pair. Every key a
	// plan uses must be present; a missing key is a caller bug.
	Palette map[roadmap.ColorKey]ColorPair

	TitleY    float64 // top of the page title
	SubtitleY float64 // top of the page subtitle

	StartX      float64   // left margin of the first box in each row
	RowYs       []float64 // top Y per row; rows beyond the slice continue at the last spacing
	RowWidths   []float64 // phase box width per row; clamped to the last entry
	PhaseHeight float64
	PhaseGap    float64 // horizontal gap between boxes in a row

	CornerRadius float64 // phase container corner radius
	HeaderRadius float64
	ItemRadius   float64
	BorderWidth  float64
	HeaderHeight float64

	ItemTopMargin    float64 // gap between header and first item box
	ItemBaseHeight   float64
	ItemPerMethod    float64
	ItemPadding      float64
	ItemGap          float64 // vertical gap between item boxes
	MethodLineHeight float64

	ItemFill       color.RGBA
	ItemTitleColor color.RGBA
	MethodColor    color.RGBA
	HeaderText     color.RGBA

	LegendWidth    float64
	LegendGap      float64 // gap between the last row-2 box and the legend
	LegendBorder   color.RGBA
	StatsColor     color.RGBA
	SeparatorColor color.RGBA

	NotesY      float64
	NotesHeight float64
	NotesFill   color.RGBA
	NotesBorder color.RGBA
	NotesHeader color.RGBA
	NotesText   color.RGBA

	ArrowColor color.RGBA
	ArrowSize  float64
	LineWidth  float64
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// DefaultConfig returns the stock 1600x1200 roadmap configuration.
func DefaultConfig() Config {
	return Config{
		Width:  1600,
		Height: 1200,

		Background:    rgb(255, 255, 255),
		TitleColor:    rgb(26, 26, 46),
		SubtitleColor: rgb(102, 102, 102),

		Palette: map[roadmap.ColorKey]ColorPair{
			roadmap.ColorCompleted:    {Fill: rgb(213, 232, 212), Border: rgb(130, 179, 102)},
			roadmap.ColorHigh:         {Fill: rgb(255, 242, 204), Border: rgb(214, 182, 86)},
			roadmap.ColorMediumBlue:   {Fill: rgb(218, 232, 252), Border: rgb(108, 142, 191)},
			roadmap.ColorMediumPurple: {Fill: rgb(225, 213, 231), Border: rgb(150, 115, 166)},
			roadmap.ColorMediumRed:    {Fill: rgb(248, 206, 204), Border: rgb(184, 84, 80)},
			roadmap.ColorLowOrange:    {Fill: rgb(255, 230, 204), Border: rgb(215, 155, 0)},
			roadmap.ColorLowGreen:     {Fill: rgb(213, 232, 212), Border: rgb(86, 167, 100)},
			roadmap.ColorOptional:     {Fill: rgb(245, 245, 245), Border: rgb(102, 102, 102)},
		},

		TitleY:    15,
		SubtitleY: 42,

		StartX:      30,
		RowYs:       []float64{75, 380},
		RowWidths:   []float64{245, 330},
		PhaseHeight: 280,
		PhaseGap:    15,

		CornerRadius: 10,
		HeaderRadius: 8,
		ItemRadius:   5,
		BorderWidth:  2,
		HeaderHeight: 35,

		ItemTopMargin:    15,
		ItemBaseHeight:   15,
		ItemPerMethod:    12,
		ItemPadding:      8,
		ItemGap:          5,
		MethodLineHeight: 12,

		ItemFill:       rgb(255, 255, 255),
		ItemTitleColor: rgb(0, 0, 0),
		MethodColor:    rgb(80, 80, 80),
		HeaderText:     rgb(255, 255, 255),

		LegendWidth:    240,
		LegendGap:      10,
		LegendBorder:   rgb(51, 51, 51),
		StatsColor:     rgb(60, 60, 60),
		SeparatorColor: rgb(180, 180, 180),

		NotesY:      690,
		NotesHeight: 100,
		NotesFill:   rgb(240, 240, 240),
		NotesBorder: rgb(153, 153, 153),
		NotesHeader: rgb(51, 51, 51),
		NotesText:   rgb(100, 100, 100),

		ArrowColor: rgb(100, 100, 100),
		ArrowSize:  8,
		LineWidth:  2,
	}
}

// RowY returns the top Y coordinate of row i. Rows past the configured
// slice continue downward with the spacing of the last two entries.
func (c Config) RowY(i int) float64 {
	if i < len(c.RowYs) {
		return c.RowYs[i]
	}
	n := len(c.RowYs)
	if n == 0 {
		return 0
	}
	step := c.PhaseHeight + c.PhaseGap
	if n >= 2 {
		step = c.RowYs[n-1] - c.RowYs[n-2]
	}
	return c.RowYs[n-1] + float64(i-n+1)*step
}

// PhaseWidth returns the box width for row i, clamped to the last
// configured width.
func (c Config) PhaseWidth(i int) float64 {
	if len(c.RowWidths) == 0 {
		return 0
	}
	if i < len(c.RowWidths) {
		return c.RowWidths[i]
	}
	return c.RowWidths[len(c.RowWidths)-1]
}

// ItemBoxHeight is the height of an item box holding n method lines:
// base + perMethod*n + padding.
func (c Config) ItemBoxHeight(n int) float64 {
	return c.ItemBaseHeight + c.ItemPerMethod*float64(n) + c.ItemPadding
}

// Scaled returns a copy of the config with every dimension multiplied
// by s. Colors and the palette are shared. Used for supersampled
// rendering.
func (c Config) Scaled(s float64) Config {
	out := c
	out.Width = int(float64(c.Width) * s)
	out.Height = int(float64(c.Height) * s)

	out.TitleY, out.SubtitleY = c.TitleY*s, c.SubtitleY*s
	out.StartX = c.StartX * s
	out.RowYs = make([]float64, len(c.RowYs))
	for i, y := range c.RowYs {
		out.RowYs[i] = y * s
	}
	out.RowWidths = make([]float64, len(c.RowWidths))
	for i, w := range c.RowWidths {
		out.RowWidths[i] = w * s
	}
	out.PhaseHeight = c.PhaseHeight * s
	out.PhaseGap = c.PhaseGap * s

	out.CornerRadius = c.CornerRadius * s
	out.HeaderRadius = c.HeaderRadius * s
	out.ItemRadius = c.ItemRadius * s
	out.BorderWidth = c.BorderWidth * s
	out.HeaderHeight = c.HeaderHeight * s

	out.ItemTopMargin = c.ItemTopMargin * s
	out.ItemBaseHeight = c.ItemBaseHeight * s
	out.ItemPerMethod = c.ItemPerMethod * s
	out.ItemPadding = c.ItemPadding * s
	out.ItemGap = c.ItemGap * s
	out.MethodLineHeight = c.MethodLineHeight * s

	out.LegendWidth = c.LegendWidth * s
	out.LegendGap = c.LegendGap * s

	out.NotesY = c.NotesY * s
	out.NotesHeight = c.NotesHeight * s

	out.ArrowSize = c.ArrowSize * s
	out.LineWidth = c.LineWidth * s
	return out
}

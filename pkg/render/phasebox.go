package render

import (
	"github.com/fogleman/gg"

	"github.com/phasemap/phasemap/pkg/roadmap"
)

// drawPhaseBox renders one phase: the colored container, the header
// band with centered title and optional subtitle, and the stacked item
// boxes with their method bullet lists. It returns the cumulative
// vertical offset reached after the last item box (informational; box
// heights are fixed by the config, not by content).
//
// The phase's color key must exist in cfg.Palette; that is a caller
// precondition, not a runtime case.
func drawPhaseBox(dc *gg.Context, fonts *FontSet, cfg Config, r Rect, ph roadmap.Phase) float64 {
	pair := cfg.Palette[ph.Color]

	roundedRect(dc, r.X, r.Y, r.W, r.H, cfg.CornerRadius, pair.Fill, pair.Border, cfg.BorderWidth)

	// Header band, inset 5px, filled with the border color.
	roundedRect(dc, r.X+5, r.Y+5, r.W-10, cfg.HeaderHeight, cfg.HeaderRadius, pair.Border, pair.Border, 1)

	drawTextCentered(dc, fonts, FontBold12, ph.Title, r.X, r.W, r.Y+8, cfg.HeaderText)
	if ph.Subtitle != "" {
		drawTextCentered(dc, fonts, FontNormal10, ph.Subtitle, r.X, r.W, r.Y+22, cfg.HeaderText)
	}

	itemY := r.Y + cfg.HeaderHeight + cfg.ItemTopMargin
	for _, it := range ph.Items {
		itemH := cfg.ItemBoxHeight(len(it.Methods))
		roundedRect(dc, r.X+10, itemY, r.W-20, itemH, cfg.ItemRadius, cfg.ItemFill, pair.Border, 1)

		drawText(dc, fonts, FontBold10, it.Title, r.X+15, itemY+3, cfg.ItemTitleColor)

		methodY := itemY + 16
		for _, m := range it.Methods {
			drawText(dc, fonts, FontNormal9, "- "+m, r.X+15, methodY, cfg.MethodColor)
			methodY += cfg.MethodLineHeight
		}

		itemY += itemH + cfg.ItemGap
	}

	return itemY
}

package render

import (
	"github.com/fogleman/gg"

	"github.com/phasemap/phasemap/pkg/roadmap"
)

// drawLegend renders the legend box: header band, one swatch/label row
// per legend entry, a separator, then the statistics block (first line
// bold).
func drawLegend(dc *gg.Context, fonts *FontSet, cfg Config, r Rect, p roadmap.Plan) {
	roundedRect(dc, r.X, r.Y, r.W, r.H, cfg.CornerRadius, cfg.ItemFill, cfg.LegendBorder, 1)
	roundedRect(dc, r.X+5, r.Y+5, r.W-10, 25, cfg.ItemRadius, cfg.LegendBorder, cfg.LegendBorder, 1)
	drawText(dc, fonts, FontBold10, "LEGEND & STATISTICS", r.X+40, r.Y+10, cfg.HeaderText)

	rowY := r.Y + 40
	for _, le := range p.Legend {
		pair := cfg.Palette[le.Color]
		dc.DrawRectangle(r.X+15, rowY, 15, 15)
		dc.SetColor(pair.Fill)
		dc.FillPreserve()
		dc.SetColor(pair.Border)
		dc.SetLineWidth(1)
		dc.Stroke()

		drawText(dc, fonts, FontNormal10, le.Label, r.X+40, rowY, cfg.ItemTitleColor)
		rowY += 22
	}

	rowY += 10
	dc.SetColor(cfg.SeparatorColor)
	dc.SetLineWidth(1)
	dc.DrawLine(r.X+15, rowY, r.X+r.W-15, rowY)
	dc.Stroke()
	rowY += 10

	for i, stat := range p.StatLines {
		role := FontNormal9
		if i == 0 {
			role = FontBold10
		}
		drawText(dc, fonts, role, stat, r.X+15, rowY, cfg.StatsColor)
		rowY += 14
	}
}

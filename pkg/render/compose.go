package render

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/phasemap/phasemap/pkg/roadmap"
)

// Compose draws the full roadmap page and returns the image. Draw order
// is fixed: title and subtitle, phase boxes row by row with the arrows
// between them, the legend, the notes box, and finally the row-wrap
// connector. The same plan, config, and fonts always produce the same
// pixels.
func Compose(p roadmap.Plan, cfg Config, fonts *FontSet) image.Image {
	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.SetColor(cfg.Background)
	dc.Clear()

	drawTextCentered(dc, fonts, FontTitle, p.Title, 0, float64(cfg.Width), cfg.TitleY, cfg.TitleColor)
	if p.Subtitle != "" {
		drawTextCentered(dc, fonts, FontSubtitle, p.Subtitle, 0, float64(cfg.Width), cfg.SubtitleY, cfg.SubtitleColor)
	}

	l := ComputeLayout(p, cfg)
	phases := p.Phases()
	for i, pb := range l.Phases {
		drawPhaseBox(dc, fonts, cfg, pb.Rect, phases[i])
	}
	for _, a := range l.Arrows {
		drawArrow(dc, cfg, a.X1, a.Y1, a.X2, a.Y2)
	}

	drawLegend(dc, fonts, cfg, l.Legend, p)
	drawNotes(dc, fonts, cfg, l.Notes, p)

	for _, a := range l.Connector {
		drawArrow(dc, cfg, a.X1, a.Y1, a.X2, a.Y2)
	}

	return dc.Image()
}

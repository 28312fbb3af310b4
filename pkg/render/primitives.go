package render

import (
	"image/color"

	"github.com/fogleman/gg"
)

// roundedRect fills and strokes a rounded rectangle. Pure parameter
// passthrough to the drawing context; callers own all geometry.
func roundedRect(dc *gg.Context, x, y, w, h, r float64, fill, border color.Color, lineWidth float64) {
	dc.DrawRoundedRectangle(x, y, w, h, r)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(border)
	dc.SetLineWidth(lineWidth)
	dc.Stroke()
}

// ArrowHead returns the three vertices of the arrowhead triangle for a
// line from (x1,y1) to (x2,y2): right-pointing when the line runs
// strictly left-to-right, down-pointing when it runs strictly
// top-to-bottom. Any other direction returns nil and gets no head;
// the fixed layouts only ever draw those two directions.
func ArrowHead(x1, y1, x2, y2, size float64) []gg.Point {
	switch {
	case x2 > x1 && y2 == y1:
		return []gg.Point{
			{X: x2, Y: y2},
			{X: x2 - size, Y: y2 - size/2},
			{X: x2 - size, Y: y2 + size/2},
		}
	case y2 > y1 && x2 == x1:
		return []gg.Point{
			{X: x2, Y: y2},
			{X: x2 - size/2, Y: y2 - size},
			{X: x2 + size/2, Y: y2 - size},
		}
	default:
		return nil
	}
}

// drawArrow strokes a line and attaches the arrowhead when the
// direction supports one.
func drawArrow(dc *gg.Context, cfg Config, x1, y1, x2, y2 float64) {
	dc.SetColor(cfg.ArrowColor)
	dc.SetLineWidth(cfg.LineWidth)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()

	pts := ArrowHead(x1, y1, x2, y2, cfg.ArrowSize)
	if pts == nil {
		return
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	dc.LineTo(pts[1].X, pts[1].Y)
	dc.LineTo(pts[2].X, pts[2].Y)
	dc.ClosePath()
	dc.Fill()
}

// drawText draws s with its top edge at y (the drawing context wants a
// baseline, so the role's point size is added).
func drawText(dc *gg.Context, fonts *FontSet, role FontRole, s string, x, y float64, col color.Color) {
	dc.SetFontFace(fonts.Face(role))
	dc.SetColor(col)
	dc.DrawString(s, x, y+fonts.Size(role))
}

// textWidth measures s in the given role's face.
func textWidth(dc *gg.Context, fonts *FontSet, role FontRole, s string) float64 {
	dc.SetFontFace(fonts.Face(role))
	w, _ := dc.MeasureString(s)
	return w
}

// drawTextCentered centers s horizontally within [x, x+w].
func drawTextCentered(dc *gg.Context, fonts *FontSet, role FontRole, s string, x, w, y float64, col color.Color) {
	tw := textWidth(dc, fonts, role, s)
	drawText(dc, fonts, role, s, x+(w-tw)/2, y, col)
}

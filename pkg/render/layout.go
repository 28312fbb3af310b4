package render

import (
	"encoding/json"

	"github.com/phasemap/phasemap/pkg/roadmap"
)

// Rect is an axis-aligned box in canvas coordinates.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// PhaseBox is the computed placement of one phase.
type PhaseBox struct {
	Title string           `json:"title"`
	Color roadmap.ColorKey `json:"color"`
	Row   int              `json:"row"`
	Col   int              `json:"col"`
	Rect  Rect             `json:"rect"`
}

// Arrow is a directed segment. Whether it carries an arrowhead is
// decided by ArrowHead from its direction.
type Arrow struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Layout is the full computed geometry of a roadmap page: everything
// the composer draws, minus the pixels. It doubles as the json output
// format so geometry can be inspected or diffed without decoding PNGs.
type Layout struct {
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Phases    []PhaseBox `json:"phases"`
	Arrows    []Arrow    `json:"arrows"`
	Connector []Arrow    `json:"connector,omitempty"`
	Legend    Rect       `json:"legend"`
	Notes     Rect       `json:"notes"`
}

// ComputeLayout places every phase box, inter-phase arrow, the
// row-wrap connector, the legend, and the notes box. Phases appear in
// plan order (rows top to bottom, left to right), matching
// roadmap.Plan.Phases. A plan with no rows (which Validate rejects)
// yields just the canvas dimensions.
func ComputeLayout(p roadmap.Plan, cfg Config) Layout {
	l := Layout{Width: cfg.Width, Height: cfg.Height}
	if len(p.Rows) == 0 {
		return l
	}

	var legendX float64
	for ri, row := range p.Rows {
		y := cfg.RowY(ri)
		w := cfg.PhaseWidth(ri)
		x := cfg.StartX

		for ci, ph := range row.Phases {
			l.Phases = append(l.Phases, PhaseBox{
				Title: ph.Title,
				Color: ph.Color,
				Row:   ri,
				Col:   ci,
				Rect:  Rect{X: x, Y: y, W: w, H: cfg.PhaseHeight},
			})

			if ci < len(row.Phases)-1 {
				arrowY := y + cfg.PhaseHeight/2
				l.Arrows = append(l.Arrows, Arrow{
					X1: x + w + 2, Y1: arrowY,
					X2: x + w + cfg.PhaseGap - 2, Y2: arrowY,
				})
			}

			x += w + cfg.PhaseGap
		}

		if ri == len(p.Rows)-1 {
			legendX = x + cfg.LegendGap
		}
	}

	lastRow := len(p.Rows) - 1
	l.Legend = Rect{
		X: legendX,
		Y: cfg.RowY(lastRow),
		W: cfg.LegendWidth,
		H: cfg.PhaseHeight,
	}

	l.Notes = Rect{
		X: cfg.StartX,
		Y: cfg.NotesY,
		W: float64(cfg.Width) - 2*cfg.StartX,
		H: cfg.NotesHeight,
	}

	if len(p.Rows) >= 2 {
		l.Connector = rowWrapConnector(p, cfg)
	}

	return l
}

// rowWrapConnector joins the last box of row 1 to the first box of
// row 2: down from below the box center, across to the left, and down
// into the box. The middle segment runs right-to-left and therefore
// renders without an arrowhead.
func rowWrapConnector(p roadmap.Plan, cfg Config) []Arrow {
	n := len(p.Rows[0].Phases)
	w0 := cfg.PhaseWidth(0)
	w1 := cfg.PhaseWidth(1)
	row1Y := cfg.RowY(0)
	row2Y := cfg.RowY(1)

	fromX := cfg.StartX + float64(n-1)*(w0+cfg.PhaseGap) + w0/2
	toX := cfg.StartX + w1/2

	return []Arrow{
		{X1: fromX, Y1: row1Y + cfg.PhaseHeight + 5, X2: fromX, Y2: row2Y - 10},
		{X1: fromX, Y1: row2Y - 10, X2: toX, Y2: row2Y - 10},
		{X1: toX, Y1: row2Y - 10, X2: toX, Y2: row2Y - 2},
	}
}

// RenderJSON serializes the layout as a pretty-printed JSON document.
func RenderJSON(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

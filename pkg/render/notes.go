package render

import (
	"github.com/fogleman/gg"

	"github.com/phasemap/phasemap/pkg/roadmap"
)

// drawNotes renders the technical-notes box at the bottom of the page.
func drawNotes(dc *gg.Context, fonts *FontSet, cfg Config, r Rect, p roadmap.Plan) {
	if len(p.Notes) == 0 {
		return
	}

	roundedRect(dc, r.X, r.Y, r.W, r.H, cfg.HeaderRadius, cfg.NotesFill, cfg.NotesBorder, 1)
	drawText(dc, fonts, FontBold12, "TECHNICAL IMPLEMENTATION NOTES", r.X+15, r.Y+8, cfg.NotesHeader)

	noteY := r.Y + 30
	for _, note := range p.Notes {
		drawText(dc, fonts, FontNormal10, note, r.X+15, noteY, cfg.NotesText)
		noteY += 18
	}
}

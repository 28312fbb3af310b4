// Package roadmap defines the declarative plan model consumed by the
// renderer: a page title, rows of phases, a legend, statistics lines,
// and technical notes.
//
// A plan is an immutable description value. It can come from the
// builtin literal (see [Builtin]) or from a TOML file (see [Load]),
// and is consumed once per render.
package roadmap

import (
	"github.com/phasemap/phasemap/pkg/errors"
)

// ColorKey is an enumerated priority/status label. The renderer maps
// each key to a fixed fill/border color pair.
type ColorKey string

// The closed set of color keys understood by the renderer palette.
const (
	ColorCompleted    ColorKey = "completed"
	ColorHigh         ColorKey = "high"
	ColorMediumBlue   ColorKey = "medium_blue"
	ColorMediumPurple ColorKey = "medium_purple"
	ColorMediumRed    ColorKey = "medium_red"
	ColorLowOrange    ColorKey = "low_orange"
	ColorLowGreen     ColorKey = "low_green"
	ColorOptional     ColorKey = "optional"
)

// knownColors is the set of valid color keys for plan validation.
var knownColors = map[ColorKey]bool{
	ColorCompleted:    true,
	ColorHigh:         true,
	ColorMediumBlue:   true,
	ColorMediumPurple: true,
	ColorMediumRed:    true,
	ColorLowOrange:    true,
	ColorLowGreen:     true,
	ColorOptional:     true,
}

// Valid reports whether k is one of the known color keys.
func (k ColorKey) Valid() bool { return knownColors[k] }

// Item is one functional area within a phase: a title plus the method
// names listed beneath it.
type Item struct {
	Title   string   `toml:"title" json:"title"`
	Methods []string `toml:"methods" json:"methods"`
}

// Phase is one stage of the roadmap: a colored box with a header and a
// vertical stack of items.
type Phase struct {
	Title    string   `toml:"title" json:"title"`
	Subtitle string   `toml:"subtitle" json:"subtitle"`
	Color    ColorKey `toml:"color" json:"color"`
	Items    []Item   `toml:"item" json:"items"`
}

// Row is one horizontal row of phase boxes.
type Row struct {
	Phases []Phase `toml:"phase" json:"phases"`
}

// LegendEntry is one swatch/label pair in the legend box.
type LegendEntry struct {
	Color ColorKey `toml:"color" json:"color"`
	Label string   `toml:"label" json:"label"`
}

// Plan is the full declarative description of a roadmap page.
type Plan struct {
	Title     string        `toml:"title" json:"title"`
	Subtitle  string        `toml:"subtitle" json:"subtitle"`
	Rows      []Row         `toml:"row" json:"rows"`
	Legend    []LegendEntry `toml:"legend" json:"legend"`
	StatLines []string      `toml:"stats" json:"stats"`
	Notes     []string      `toml:"notes" json:"notes"`
}

// Validate checks structural invariants: at least one row, every row
// non-empty, every phase titled with a known color and at least one
// item, and every legend entry using a known color.
func (p Plan) Validate() error {
	if p.Title == "" {
		return errors.New(errors.ErrCodeInvalidPlan, "plan has no title")
	}
	if len(p.Rows) == 0 {
		return errors.New(errors.ErrCodeInvalidPlan, "plan has no rows")
	}
	for i, row := range p.Rows {
		if len(row.Phases) == 0 {
			return errors.New(errors.ErrCodeInvalidPlan, "row %d has no phases", i+1)
		}
		for _, ph := range row.Phases {
			if ph.Title == "" {
				return errors.New(errors.ErrCodeInvalidPlan, "row %d contains an untitled phase", i+1)
			}
			if !ph.Color.Valid() {
				return errors.New(errors.ErrCodeInvalidPlan, "phase %q: unknown color key %q", ph.Title, ph.Color)
			}
			if len(ph.Items) == 0 {
				return errors.New(errors.ErrCodeInvalidPlan, "phase %q has no items", ph.Title)
			}
		}
	}
	for _, le := range p.Legend {
		if !le.Color.Valid() {
			return errors.New(errors.ErrCodeInvalidPlan, "legend entry %q: unknown color key %q", le.Label, le.Color)
		}
	}
	return nil
}

// Summary holds aggregate counts over a plan, displayed by the CLI.
type Summary struct {
	Phases  int
	Items   int
	Methods int
}

// Stats returns phase/item/method counts for the plan.
func (p Plan) Stats() Summary {
	var s Summary
	for _, row := range p.Rows {
		for _, ph := range row.Phases {
			s.Phases++
			s.Items += len(ph.Items)
			for _, it := range ph.Items {
				s.Methods += len(it.Methods)
			}
		}
	}
	return s
}

// Phases returns all phases in row order, left to right.
func (p Plan) Phases() []Phase {
	var out []Phase
	for _, row := range p.Rows {
		out = append(out, row.Phases...)
	}
	return out
}

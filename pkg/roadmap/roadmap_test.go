package roadmap

import (
	"path/filepath"
	"testing"
)

func TestBuiltinShape(t *testing.T) {
	p := Builtin()

	if err := p.Validate(); err != nil {
		t.Fatalf("Builtin().Validate() = %v, want nil", err)
	}

	if len(p.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(p.Rows))
	}
	if got := len(p.Rows[0].Phases); got != 5 {
		t.Errorf("row 1 phases = %d, want 5", got)
	}
	if got := len(p.Rows[1].Phases); got != 3 {
		t.Errorf("row 2 phases = %d, want 3", got)
	}
	if got := len(p.Legend); got != 5 {
		t.Errorf("legend entries = %d, want 5", got)
	}
	if got := len(p.Notes); got != 3 {
		t.Errorf("notes = %d, want 3", got)
	}
	if got := len(p.StatLines); got != 11 {
		t.Errorf("stats lines = %d, want 11", got)
	}
}

func TestBuiltinStats(t *testing.T) {
	s := Builtin().Stats()

	if s.Phases != 8 {
		t.Errorf("Phases = %d, want 8", s.Phases)
	}
	if s.Items != 24 {
		t.Errorf("Items = %d, want 24", s.Items)
	}
	if s.Methods != 57 {
		t.Errorf("Methods = %d, want 57", s.Methods)
	}
}

func TestValidate(t *testing.T) {
	valid := Plan{
		Title: "Test Roadmap",
		Rows: []Row{{Phases: []Phase{{
			Title: "PHASE 1",
			Color: ColorHigh,
			Items: []Item{{Title: "Ops", Methods: []string{"DoThing"}}},
		}}}},
	}

	tests := []struct {
		name    string
		mutate  func(p *Plan)
		wantErr bool
	}{
		{"valid plan", func(p *Plan) {}, false},
		{"missing title", func(p *Plan) { p.Title = "" }, true},
		{"no rows", func(p *Plan) { p.Rows = nil }, true},
		{"empty row", func(p *Plan) { p.Rows = []Row{{}} }, true},
		{"untitled phase", func(p *Plan) { p.Rows[0].Phases[0].Title = "" }, true},
		{"unknown color", func(p *Plan) { p.Rows[0].Phases[0].Color = "magenta" }, true},
		{"phase without items", func(p *Plan) { p.Rows[0].Phases[0].Items = nil }, true},
		{"bad legend color", func(p *Plan) {
			p.Legend = []LegendEntry{{Color: "nope", Label: "x"}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			p.Rows = []Row{{Phases: []Phase{valid.Rows[0].Phases[0]}}}
			p.Rows[0].Phases[0].Items = append([]Item(nil), valid.Rows[0].Phases[0].Items...)
			tt.mutate(&p)

			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestColorKeyValid(t *testing.T) {
	for _, k := range []ColorKey{
		ColorCompleted, ColorHigh, ColorMediumBlue, ColorMediumPurple,
		ColorMediumRed, ColorLowOrange, ColorLowGreen, ColorOptional,
	} {
		if !k.Valid() {
			t.Errorf("ColorKey(%q).Valid() = false, want true", k)
		}
	}
	if ColorKey("chartreuse").Valid() {
		t.Error(`ColorKey("chartreuse").Valid() = true, want false`)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")

	want := Builtin()
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if got.Title != want.Title {
		t.Errorf("Title = %q, want %q", got.Title, want.Title)
	}
	if len(got.Rows) != len(want.Rows) {
		t.Fatalf("rows = %d, want %d", len(got.Rows), len(want.Rows))
	}
	gs, ws := got.Stats(), want.Stats()
	if gs != ws {
		t.Errorf("Stats() = %+v, want %+v", gs, ws)
	}
	if got.Rows[1].Phases[2].Title != "PHASE 8: ADVANCED" {
		t.Errorf("last phase title = %q, want %q", got.Rows[1].Phases[2].Title, "PHASE 8: ADVANCED")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("Load() of missing file should fail")
	}
}

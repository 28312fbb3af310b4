package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/phasemap/phasemap/pkg/roadmap"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to png", "", []string{"png"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "png,json", []string{"png", "json"}},
		{"json only", "json", []string{"json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid png", []string{"png"}, false},
		{"valid json", []string{"json"}, false},
		{"valid multiple", []string{"png", "json"}, false},
		{"invalid format", []string{"svg"}, true},
		{"mixed valid invalid", []string{"png", "bmp"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"builtin plan no output", "", "", "roadmap"},
		{"derive from input", "", "my_plan.toml", "my_plan"},
		{"explicit output", "out", "plan.toml", "out"},
		{"strip png extension", "out.png", "plan.toml", "out"},
		{"strip json extension", "out.json", "plan.toml", "out"},
		{"keep unknown extension", "out.toml", "plan.toml", "out.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadPlanBuiltin(t *testing.T) {
	p, err := loadPlan("")
	if err != nil {
		t.Fatalf("loadPlan(\"\") = %v", err)
	}
	if got := p.Stats().Phases; got != 8 {
		t.Errorf("builtin phases = %d, want 8", got)
	}
}

func TestRunRenderWritesFiles(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.toml")
	if err := roadmap.Save(planPath, roadmap.Builtin()); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	opts := &renderOpts{
		formats: []string{"png", "json"},
		width:   1600,
		height:  1200,
		scale:   1, // native resolution keeps the test fast
	}
	if err := runRender(context.Background(), planPath, opts); err != nil {
		t.Fatalf("runRender() = %v", err)
	}

	pngData, err := os.ReadFile(filepath.Join(dir, "plan.png"))
	if err != nil {
		t.Fatalf("PNG output missing: %v", err)
	}
	if len(pngData) == 0 {
		t.Error("PNG output is empty")
	}
	if pngData[0] != 0x89 || string(pngData[1:4]) != "PNG" {
		t.Error("PNG output lacks the PNG signature")
	}

	jsonData, err := os.ReadFile(filepath.Join(dir, "plan.json"))
	if err != nil {
		t.Fatalf("JSON output missing: %v", err)
	}
	if len(jsonData) == 0 {
		t.Error("JSON output is empty")
	}
}

func TestRunRenderInvalidPlanPath(t *testing.T) {
	opts := &renderOpts{
		formats: []string{"png"},
		width:   1600,
		height:  1200,
		scale:   1,
	}
	err := runRender(context.Background(), filepath.Join(t.TempDir(), "absent.toml"), opts)
	if err == nil {
		t.Fatal("runRender() with missing plan should fail")
	}
}

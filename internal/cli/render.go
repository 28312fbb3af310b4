package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phasemap/phasemap/pkg/errors"
	"github.com/phasemap/phasemap/pkg/render"
	"github.com/phasemap/phasemap/pkg/roadmap"
)

const (
	defaultScale = 2.0       // supersampling factor for smoother text and corners
	defaultBase  = "roadmap" // output base name when no plan file is given
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "png", "json"
	width    int      // canvas width in pixels
	height   int      // canvas height in pixels
	scale    float64  // supersampling factor (1 disables)
	fontDirs []string // extra directories searched for TTF fonts
}

// newRenderCmd creates the render command for generating roadmap diagrams.
// With no plan file argument the builtin roadmap is rendered.
//
// Default settings:
//   - format: png (json exports the computed geometry instead of pixels)
//   - canvas: 1600x1200
//   - scale: 2 (render at 2x and downscale)
func newRenderCmd() *cobra.Command {
	var formatsStr string
	cfg := render.DefaultConfig()
	opts := renderOpts{
		width:  cfg.Width,
		height: cfg.Height,
		scale:  defaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [plan.toml]",
		Short: "Render a roadmap plan to a PNG diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), json (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "canvas height in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "supersampling factor (1 disables)")
	cmd.Flags().StringSliceVar(&opts.fontDirs, "font-dir", nil, "extra directories searched for TTF fonts")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["png"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"png"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"png": true, "json": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png' or 'json')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input, falling back
// to "roadmap" for the builtin plan. If output ends in a known format
// extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return defaultBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// loadPlan loads a plan from the given path, or returns the builtin
// roadmap when the path is empty.
func loadPlan(input string) (roadmap.Plan, error) {
	if input == "" {
		return roadmap.Builtin(), nil
	}
	return roadmap.Load(input)
}

// runRender loads the plan and renders it to every requested format.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	p, err := loadPlan(input)
	if err != nil {
		return err
	}
	s := p.Stats()
	logger.Infof("Loaded plan: %d phases, %d items, %d methods", s.Phases, s.Items, s.Methods)

	cfg := render.DefaultConfig()
	cfg.Width = opts.width
	cfg.Height = opts.height

	fonts := render.ResolveFonts(opts.fontDirs...)
	logger.Debugf("Fonts: regular=%s bold=%s", fonts.Source, fonts.BoldSource)

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		if err := renderAndWrite(ctx, p, cfg, fonts, format, path, opts.scale); err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.formats)))
	printSuccess("Roadmap generated")
	printDetail("Image size: %dx%d", cfg.Width, cfg.Height)
	return nil
}

// renderAndWrite renders one format and writes it to path.
func renderAndWrite(ctx context.Context, p roadmap.Plan, cfg render.Config, fonts *render.FontSet, format, path string, scale float64) error {
	logger := loggerFromContext(ctx)

	var data []byte
	var err error
	switch format {
	case "png":
		logger.Infof("Rendering PNG (scale %.1fx)", scale)
		data, err = render.Render(p, cfg, fonts, render.Options{Scale: scale})
	case "json":
		logger.Info("Exporting layout geometry as JSON")
		data, err = render.RenderJSON(render.ComputeLayout(p, cfg))
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}

	printFile(path)
	return nil
}

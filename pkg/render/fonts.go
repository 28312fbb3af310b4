package render

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontRole names a font slot used by the composer.
type FontRole string

// Font roles and their point sizes.
const (
	FontTitle    FontRole = "title"     // 22pt bold, page title
	FontSubtitle FontRole = "subtitle"  // 13pt, page subtitle
	FontBold12   FontRole = "bold_12"   // 11pt bold, phase titles and notes header
	FontBold10   FontRole = "bold_10"   // 10pt bold, item titles and legend header
	FontNormal10 FontRole = "normal_10" // 9pt, subtitles, legend labels, notes
	FontNormal9  FontRole = "normal_9"  // 8pt, method lines and stats
	FontNormal8  FontRole = "normal_8"  // 7pt, reserved for dense annotations
)

type roleSpec struct {
	size float64
	bold bool
}

var roleSpecs = map[FontRole]roleSpec{
	FontTitle:    {size: 22, bold: true},
	FontSubtitle: {size: 13},
	FontBold12:   {size: 11, bold: true},
	FontBold10:   {size: 10, bold: true},
	FontNormal10: {size: 9},
	FontNormal9:  {size: 8},
	FontNormal8:  {size: 7},
}

// BuiltinSource is the Source value reported when the embedded Go
// fonts are in use.
const BuiltinSource = "builtin"

// FontSet maps font roles to loaded faces. Source and BoldSource
// record where the regular and bold fonts came from (a file path or
// BuiltinSource), so layout-sensitive tests can assert against known
// metrics instead of whatever the host happens to have installed.
type FontSet struct {
	Source     string
	BoldSource string

	scale         float64
	regular, bold *truetype.Font
	faces         map[FontRole]font.Face
}

// ResolveFonts loads the regular and bold fonts, trying in order: TTF
// files in the given directories, well-known system font paths, a
// go-findfont lookup, and finally the embedded Go fonts. It never
// fails; callers must tolerate the builtin faces having different
// metrics than a system font.
func ResolveFonts(dirs ...string) *FontSet {
	r := fontResolver{dirs: dirs, find: findfont.Find}
	return r.resolve(1)
}

// Candidate TTF file names per weight, preferred first.
var (
	regularFiles = []string{"DejaVuSans.ttf", "LiberationSans-Regular.ttf"}
	boldFiles    = []string{"DejaVuSans-Bold.ttf", "LiberationSans-Bold.ttf"}
)

// systemFontDirs are the well-known installation prefixes checked
// after any caller-supplied directories.
var systemFontDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/truetype/liberation",
	"/usr/share/fonts/TTF",
}

// fontResolver performs the candidate search. The find hook exists so
// tests can force the builtin fallback deterministically.
type fontResolver struct {
	dirs       []string
	systemDirs []string
	find       func(name string) (string, error)
}

func (r fontResolver) resolve(scale float64) *FontSet {
	fs := &FontSet{scale: scale}
	fs.regular, fs.Source = r.load(false)
	fs.bold, fs.BoldSource = r.load(true)
	fs.buildFaces()
	return fs
}

// load returns the parsed font and its source for one weight, walking
// the fallback chain. Unreadable or corrupt candidates are skipped
// silently; the chain ends at the embedded Go fonts, which always
// parse.
func (r fontResolver) load(bold bool) (*truetype.Font, string) {
	files := regularFiles
	if bold {
		files = boldFiles
	}

	sysDirs := r.systemDirs
	if sysDirs == nil {
		sysDirs = systemFontDirs
	}

	for _, dir := range append(append([]string{}, r.dirs...), sysDirs...) {
		for _, name := range files {
			path := dir + "/" + name
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if f := parseFontFile(path); f != nil {
				return f, path
			}
		}
	}

	if r.find != nil {
		for _, name := range files {
			path, err := r.find(name)
			if err != nil {
				continue
			}
			if f := parseFontFile(path); f != nil {
				return f, path
			}
		}
	}

	data := goregular.TTF
	if bold {
		data = gobold.TTF
	}
	f, err := truetype.Parse(data)
	if err != nil {
		panic(err) // embedded fonts always parse
	}
	return f, BuiltinSource
}

func parseFontFile(path string) *truetype.Font {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil
	}
	return f
}

func (fs *FontSet) buildFaces() {
	fs.faces = make(map[FontRole]font.Face, len(roleSpecs))
	for role, spec := range roleSpecs {
		f := fs.regular
		if spec.bold {
			f = fs.bold
		}
		fs.faces[role] = truetype.NewFace(f, &truetype.Options{
			Size:    spec.size * fs.scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
}

// Face returns the loaded face for a role.
func (fs *FontSet) Face(role FontRole) font.Face { return fs.faces[role] }

// Size returns the effective point size for a role, including any
// rescale factor.
func (fs *FontSet) Size(role FontRole) float64 { return roleSpecs[role].size * fs.scale }

// Rescale returns a FontSet with the same resolved fonts but all faces
// rebuilt at size*s. Used for supersampled rendering.
func (fs *FontSet) Rescale(s float64) *FontSet {
	out := &FontSet{
		Source:     fs.Source,
		BoldSource: fs.BoldSource,
		scale:      fs.scale * s,
		regular:    fs.regular,
		bold:       fs.bold,
	}
	out.buildFaces()
	return out
}

// Package artifact renders the analytical charts of protokoll as PNG files.
package artifact

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Chart colours.
var (
	baseColor      = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	highlightColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	historyColor   = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

const (
	chartWidth    = 10 * vg.Inch
	chartHeight   = 6 * vg.Inch
	maxCauseLabel = 30
)

// Renderer writes one PNG per artifact kind into a single directory.
// File names are fixed per kind, so a later run overwrites the earlier chart.
type Renderer struct {
	dir string
}

var _ contract.ArtifactRenderer = &Renderer{} // Compile-time check

// NewRenderer returns a renderer for dir. The directory is created on first write.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Dir returns the output directory.
func (r *Renderer) Dir() string {
	return r.dir
}

// Path returns the file path of the artifact of the given kind.
func (r *Renderer) Path(kind schema.ArtifactKind) string {
	return filepath.Join(r.dir, schema.ArtifactFileNames[kind])
}

// save writes the plot to the path of kind, replacing any earlier file.
func (r *Renderer) save(p *plot.Plot, kind schema.ArtifactKind) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", r.dir, err)
	}
	path := r.Path(kind)
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// List returns the artifact kinds whose files exist in dir, in pipeline order.
// A missing directory simply has no artifacts.
func List(dir string) ([]schema.ArtifactKind, error) {
	var kinds []schema.ArtifactKind
	for _, kind := range schema.AllArtifactKinds {
		info, err := os.Stat(filepath.Join(dir, schema.ArtifactFileNames[kind]))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to inspect artifact %s: %w", kind, err)
		}
		if info.Mode().IsRegular() {
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

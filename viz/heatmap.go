// Package viz renders matrix values for human inspection. It has no
// numeric contract; the kernel in package dense stays the single source
// of truth for computation.
package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matgo-dev/matgo/dense"
	"github.com/matgo-dev/matgo/pkg/errors"
)

// matrixGrid adapts a dense.Matrix to plotter.GridXYZ. Row 0 of the
// matrix is drawn at the top, matching the textual rendering.
type matrixGrid struct {
	m dense.Matrix
}

func (g matrixGrid) Dims() (c, r int) {
	return g.m.Cols(), g.m.Rows()
}

func (g matrixGrid) Z(c, r int) float64 {
	return g.m[g.m.Rows()-1-r][c]
}

func (g matrixGrid) X(c int) float64 {
	return float64(c)
}

func (g matrixGrid) Y(r int) float64 {
	return float64(r)
}

// Heatmap renders m as a heat map and saves it as a PNG at path. The
// matrix must be non-empty and rectangular.
func Heatmap(m dense.Matrix, title, path string) error {
	const op = "viz.Heatmap"
	if m.Rows() == 0 || m.Cols() == 0 {
		return errors.NewEmptyDataError(op)
	}
	cols := m.Cols()
	for _, row := range m {
		if len(row) != cols {
			return errors.NewValueError(op, "ragged matrix")
		}
	}

	h := plotter.NewHeatMap(matrixGrid{m: m}, palette.Heat(12, 1))

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(h)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "%s: saving %q", op, path)
	}
	return nil
}

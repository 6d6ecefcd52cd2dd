// Package render lays out sealed PDF417 and MicroPDF417 codewords as a
// matrix of dark and light modules.
//
// Init, Render and RenderBitmap write into caller-provided memory and do
// not allocate, so one Renderer can draw the same symbol repeatedly.
//
// The cluster and row address pattern tables are enumerated from the
// structural rules for bar and space widths rather than copied from ISO/IEC
// 15438 and ISO/IEC 24728. Symbols are laid out correctly but are not yet
// readable by standard scanners.
package render

import (
	"fmt"

	"github.com/ericlevine/pdf417"
)

// Renderer draws one symbol.
type Renderer struct {
	codewords []uint16
	spec      pdf417.Spec
	micro     pdf417.MicroSize
	scaleX    int
	scaleY    int
	inverted  bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScale sets the width and height in pixels of one module. The
// defaults are given by pdf417.DefaultScale.
func WithScale(x, y int) Option {
	return func(r *Renderer) {
		r.scaleX, r.scaleY = x, y
	}
}

// WithInverted swaps dark and light modules.
func WithInverted(inverted bool) Option {
	return func(r *Renderer) {
		r.inverted = inverted
	}
}

// New returns a Renderer for the sealed codewords of a symbol of shape
// spec. len(codewords) must be spec.Rows*spec.Cols.
func New(codewords []uint16, spec pdf417.Spec, opts ...Option) (*Renderer, error) {
	r := new(Renderer)
	if err := r.Init(codewords, spec, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Init is New for a Renderer the caller owns, such as one on the stack.
// It does not allocate unless it fails.
func (r *Renderer) Init(codewords []uint16, spec pdf417.Spec, opts ...Option) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	*r = Renderer{codewords: codewords, spec: spec}
	if spec.Variant == pdf417.Micro {
		r.micro, _ = pdf417.LookupMicro(spec.Rows, spec.Cols)
	}
	r.scaleX, r.scaleY = pdf417.DefaultScale(spec.Variant)
	for _, opt := range opts {
		opt(r)
	}
	if r.scaleX < 1 || r.scaleY < 1 {
		return fmt.Errorf("scale %dx%d: %w", r.scaleX, r.scaleY, pdf417.ErrDimensionMismatch)
	}
	if len(codewords) != spec.Codewords() {
		return fmt.Errorf("%d codewords for %dx%d symbol: %w",
			len(codewords), spec.Rows, spec.Cols, pdf417.ErrDimensionMismatch)
	}
	for i, cw := range codewords {
		if cw >= pdf417.NumberOfCodewords {
			return fmt.Errorf("codeword %d at #%d: %w", cw, i, pdf417.ErrNotEncodable)
		}
	}
	return nil
}

// Rows returns the number of symbol rows.
func (r *Renderer) Rows() int { return r.spec.Rows }

// Modules returns the width of one symbol row in modules.
func (r *Renderer) Modules() int { return pdf417.RowModules(r.spec.Cols, r.spec.Variant) }

// Width returns the width of the rendered symbol in pixels.
func (r *Renderer) Width() int { return pdf417.Width(r.spec.Cols, r.scaleX, r.spec.Variant) }

// Height returns the height of the rendered symbol in pixels.
func (r *Renderer) Height() int { return pdf417.Height(r.spec.Rows, r.scaleY) }

// Stride returns the number of bytes per row of RenderBitmap output.
func (r *Renderer) Stride() int { return (r.Width() + 7) / 8 }

// Render writes the symbol to out, row-major, true for dark. len(out) must
// be Width()*Height().
func (r *Renderer) Render(out []bool) error {
	width, height := r.Width(), r.Height()
	if len(out) != width*height {
		return fmt.Errorf("output of %d pixels for %dx%d symbol: %w",
			len(out), width, height, pdf417.ErrDimensionMismatch)
	}
	var br barcodeRow
	for y := 0; y < r.spec.Rows; y++ {
		r.buildRow(y, &br)
		line := out[y*r.scaleY*width : (y*r.scaleY+1)*width]
		for x, dark := range br.modules() {
			v := dark != r.inverted
			for i := 0; i < r.scaleX; i++ {
				line[x*r.scaleX+i] = v
			}
		}
		for i := 1; i < r.scaleY; i++ {
			copy(out[(y*r.scaleY+i)*width:(y*r.scaleY+i+1)*width], line)
		}
	}
	return nil
}

// RenderBitmap writes the symbol to out as packed rows of Stride() bytes,
// most significant bit first, a set bit for dark. Padding bits at the end
// of each row are zero. len(out) must be Stride()*Height().
func (r *Renderer) RenderBitmap(out []byte) error {
	stride, height := r.Stride(), r.Height()
	if len(out) != stride*height {
		return fmt.Errorf("output of %d bytes for %d rows of %d: %w",
			len(out), height, stride, pdf417.ErrDimensionMismatch)
	}
	var br barcodeRow
	for y := 0; y < r.spec.Rows; y++ {
		r.buildRow(y, &br)
		line := out[y*r.scaleY*stride : (y*r.scaleY+1)*stride]
		for i := range line {
			line[i] = 0
		}
		px := 0
		for _, dark := range br.modules() {
			for i := 0; i < r.scaleX; i++ {
				if dark != r.inverted {
					line[px>>3] |= 0x80 >> uint(px&7)
				}
				px++
			}
		}
		for i := 1; i < r.scaleY; i++ {
			copy(out[(y*r.scaleY+i)*stride:(y*r.scaleY+i+1)*stride], line)
		}
	}
	return nil
}

func (r *Renderer) buildRow(y int, br *barcodeRow) {
	br.reset()
	if r.spec.Variant == pdf417.Micro {
		r.buildMicroRow(y, br)
		return
	}
	cols := r.spec.Cols
	patterns := &clusterPatterns[y%3]
	br.addPattern(startPattern, pdf417.ModulesInStartPattern)
	br.addPattern(patterns[r.leftIndicator(y)], pdf417.ModulesInCodeword)
	for _, cw := range r.codewords[y*cols : (y+1)*cols] {
		br.addPattern(patterns[cw], pdf417.ModulesInCodeword)
	}
	if r.spec.Variant == pdf417.Truncated {
		br.addBar(true, 1)
		return
	}
	br.addPattern(patterns[r.rightIndicator(y)], pdf417.ModulesInCodeword)
	br.addPattern(stopPattern, pdf417.ModulesInStopPattern)
}

// indicatorParts returns the row count, error correction level and column
// count components of the row indicators.
func (r *Renderer) indicatorParts() (rows, level, cols int) {
	rows = (r.spec.Rows - 1) / 3
	level = 3*r.spec.Level + (r.spec.Rows-1)%3
	cols = r.spec.Cols - 1
	return rows, level, cols
}

func (r *Renderer) leftIndicator(y int) int {
	rows, level, cols := r.indicatorParts()
	v := 30 * (y / 3)
	switch y % 3 {
	case 0:
		return v + rows
	case 1:
		return v + level
	default:
		return v + cols
	}
}

func (r *Renderer) rightIndicator(y int) int {
	rows, level, cols := r.indicatorParts()
	v := 30 * (y / 3)
	switch y % 3 {
	case 0:
		return v + cols
	case 1:
		return v + rows
	default:
		return v + level
	}
}

// buildMicroRow lays out a MicroPDF417 row: left row address pattern, the
// codewords with a centre row address pattern in 3 and 4 column symbols,
// right row address pattern and a one-module stop bar.
func (r *Renderer) buildMicroRow(y int, br *barcodeRow) {
	m := r.micro
	patterns := &clusterPatterns[(m.Cluster/3+y)%3]
	br.addPattern(uint32(sideRAPs[(m.LeftRAP-1+y)%rapCount]), pdf417.ModulesInRAP)
	for c, cw := range r.codewords[y*m.Cols : (y+1)*m.Cols] {
		br.addPattern(patterns[cw], pdf417.ModulesInCodeword)
		if m.HasCentreRAP() && c == m.Cols/2-1 {
			br.addPattern(uint32(centreRAPs[(m.CentreRAP-1+y)%rapCount]), pdf417.ModulesInRAP)
		}
	}
	br.addPattern(uint32(sideRAPs[(m.RightRAP-1+y)%rapCount]), pdf417.ModulesInRAP)
	br.addBar(true, 1)
}

// Package bitutil provides the bit matrix returned by the writer package.
package bitutil

import "strings"

// BitMatrix represents a 2D matrix of bits; a set bit is a dark pixel.
// x is the column position, y is the row position. The origin is at the top-left.
//
// Rows are packed most significant bit first and padded to a whole byte,
// the layout of render.Renderer.RenderBitmap and of PBM files.
type BitMatrix struct {
	width  int
	height int
	stride int
	data   []byte
}

// NewBitMatrixWithSize creates a new BitMatrix with the given width and height.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	stride := (width + 7) / 8
	return &BitMatrix{
		width:  width,
		height: height,
		stride: stride,
		data:   make([]byte, stride*height),
	}
}

// FromModules creates a BitMatrix from row-major modules of the given width,
// as written by render.Renderer.Render, surrounded by margin unset pixels
// on every side.
func FromModules(modules []bool, width, margin int) *BitMatrix {
	if width < 1 || len(modules)%width != 0 {
		panic("bitmatrix: module count is not a multiple of the width")
	}
	height := len(modules) / width
	bm := NewBitMatrixWithSize(width+2*margin, height+2*margin)
	for y := 0; y < height; y++ {
		for x, dark := range modules[y*width : (y+1)*width] {
			if dark {
				bm.Set(x+margin, y+margin)
			}
		}
	}
	return bm
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	return bm.data[y*bm.stride+x>>3]&(0x80>>(x&7)) != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	bm.data[y*bm.stride+x>>3] |= 0x80 >> (x & 7)
}

// Row returns the packed bits of row y. The padding bits are zero. The
// slice aliases the matrix.
func (bm *BitMatrix) Row(y int) []byte {
	return bm.data[y*bm.stride : (y+1)*bm.stride]
}

// Invert flips every pixel.
func (bm *BitMatrix) Invert() {
	pad := byte(0xff) << ((8 - bm.width&7) & 7)
	for y := 0; y < bm.height; y++ {
		row := bm.Row(y)
		for i := range row {
			row[i] = ^row[i]
		}
		row[len(row)-1] &= pad
	}
}

// Rotate90 rotates the matrix 90 degrees counterclockwise.
func (bm *BitMatrix) Rotate90() {
	r := NewBitMatrixWithSize(bm.height, bm.width)
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				r.Set(y, bm.width-1-x)
			}
		}
	}
	*bm = *r
}

// Mirror reflects the matrix about its vertical axis.
func (bm *BitMatrix) Mirror() {
	for y := 0; y < bm.height; y++ {
		for l, r := 0, bm.width-1; l < r; l, r = l+1, r-1 {
			a, b := bm.Get(l, y), bm.Get(r, y)
			if a != b {
				bm.toggle(l, y)
				bm.toggle(r, y)
			}
		}
	}
}

func (bm *BitMatrix) toggle(x, y int) {
	bm.data[y*bm.stride+x>>3] ^= 0x80 >> (x & 7)
}

// Width returns the width.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height.
func (bm *BitMatrix) Height() int { return bm.height }

// String returns a string representation using "X " for set and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*max(len(setString), len(unsetString)) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package reedsolomon

import (
	"fmt"

	"github.com/ericlevine/pdf417"
)

// generators maps an error correction codeword count k to the coefficients
// a[0..k-1] of g(x) = (x-3)(x-3^2)...(x-3^k) = x^k + a[k-1]x^(k-1) + ... + a[0].
// It holds every count used by PDF417 levels 0..8 and by the MicroPDF417
// sizes and is never written after initialization.
var generators = buildGenerators(PDF417GF)

func buildGenerators(gf *ModulusGF) map[int][]uint16 {
	m := make(map[int][]uint16)
	for level := 0; level <= pdf417.MaxLevel; level++ {
		k := pdf417.ECCount(level)
		m[k] = buildGenerator(gf, k)
	}
	for i := 0; i < pdf417.MicroCount; i++ {
		k := pdf417.MicroAt(i).EC
		if _, ok := m[k]; !ok {
			m[k] = buildGenerator(gf, k)
		}
	}
	return m
}

func buildGenerator(gf *ModulusGF, degree int) []uint16 {
	// g holds the coefficients highest degree first, g[0] == 1.
	g := make([]int, 1, degree+1)
	g[0] = 1
	for d := 1; d <= degree; d++ {
		root := gf.Exp(d)
		g = append(g, 0)
		for j := len(g) - 1; j > 0; j-- {
			g[j] = gf.Subtract(g[j], gf.Multiply(root, g[j-1]))
		}
	}
	a := make([]uint16, degree)
	for i := range a {
		a[i] = uint16(g[degree-i])
	}
	return a
}

// Generator returns the coefficients a[0..k-1] of the generator polynomial
// for k error correction codewords, or nil if k is not used by any PDF417
// or MicroPDF417 symbol. The returned slice must not be modified.
func Generator(k int) []uint16 {
	return generators[k]
}

// Encoder computes error correction codewords over one field. Its
// generator polynomials have roots field.Exp(1) ... field.Exp(k).
type Encoder struct {
	field *ModulusGF
	gens  map[int][]uint16
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *ModulusGF) *Encoder {
	return &Encoder{field: field, gens: buildGenerators(field)}
}

// Default is the encoder over PDF417GF.
var Default = &Encoder{field: PDF417GF, gens: generators}

// Encode overwrites the last k codewords of toEncode with the error
// correction codewords of the codewords preceding them.
func (e *Encoder) Encode(toEncode []uint16, k int) error {
	a := e.gens[k]
	if a == nil {
		return fmt.Errorf("reedsolomon: no generator for %d codewords: %w", k, pdf417.ErrInvalidLevel)
	}
	if len(toEncode) <= k {
		return fmt.Errorf("reedsolomon: %d codewords cannot hold %d error correction codewords: %w",
			len(toEncode), k, pdf417.ErrDimensionMismatch)
	}
	n := len(toEncode) - k
	remainder(toEncode[:n], a, toEncode[n:])
	return nil
}

// ComputeEC writes the 2^(level+1) error correction codewords of data to ec.
func (e *Encoder) ComputeEC(data []uint16, level int, ec []uint16) error {
	k := pdf417.ECCount(level)
	if k == 0 {
		return fmt.Errorf("reedsolomon: level %d: %w", level, pdf417.ErrInvalidLevel)
	}
	if len(ec) != k {
		return fmt.Errorf("reedsolomon: level %d needs %d codewords, got %d: %w",
			level, k, len(ec), pdf417.ErrDimensionMismatch)
	}
	remainder(data, e.gens[k], ec)
	return nil
}

// remainder computes the negated remainder of data(x)*x^k divided by g(x),
// following the shift register of ISO/IEC 15438 Annex F. ec[0] receives
// the coefficient of highest degree.
func remainder(data []uint16, a []uint16, ec []uint16) {
	k := len(a)
	for i := range ec {
		ec[i] = 0
	}
	for _, cw := range data {
		t := (uint32(cw) + uint32(ec[0])) % modulus
		for i := k - 1; i >= 0; i-- {
			f := t * uint32(a[i]) % modulus
			var d uint32
			if i > 0 {
				d = uint32(ec[k-i])
			}
			ec[k-1-i] = uint16((d + modulus - f) % modulus)
		}
	}
	for i, v := range ec {
		if v != 0 {
			ec[i] = modulus - v
		}
	}
}

// Check reports whether codewords, whose last k codewords are error
// correction codewords, form a valid PDF417 code word: the codeword
// polynomial must vanish at 3^1 ... 3^k.
func Check(codewords []uint16, k int) bool {
	return Default.Check(codewords, k)
}

// Check is like the package Check, with roots taken from the field of e.
func (e *Encoder) Check(codewords []uint16, k int) bool {
	if k <= 0 || len(codewords) <= k {
		return false
	}
	gf := e.field
	for i := 1; i <= k; i++ {
		x := uint32(gf.Exp(i))
		var y uint32
		for _, cw := range codewords {
			y = (y*x + uint32(cw)) % modulus
		}
		if y != 0 {
			return false
		}
	}
	return true
}

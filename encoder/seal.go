package encoder

import (
	"fmt"

	"github.com/ericlevine/pdf417"
	"github.com/ericlevine/pdf417/reedsolomon"
)

// Fit is the outcome of a fitting seal.
type Fit struct {
	Level int
	Rows  int
	Cols  int
}

// fits reports whether the data written so far, the length descriptor
// included, plus the error correction codewords of level fit a rows x cols
// symbol. The length descriptor itself must stay a valid codeword.
func (e *Encoder) fits(rows, cols, level int) bool {
	total := rows * cols
	k := pdf417.ECCount(level)
	return total <= e.buf.Cap() && e.Len()+k <= total && total-k <= pdf417.MaxCodewordsInBarcode
}

// seal flushes pending text, pads the data area with 900, writes the length
// descriptor and appends k error correction codewords.
func (e *Encoder) seal(rows, cols, k int, descriptor bool) error {
	total := rows * cols
	s := sink{buf: e.buf.cw, pos: e.buf.n}
	s.flush(&e.state)
	for s.pos < total-k {
		s.put(padCodeword)
	}
	if descriptor {
		e.buf.cw[0] = uint16(total - k)
	}
	if err := reedsolomon.Default.Encode(e.buf.cw[:total], k); err != nil {
		return err
	}
	e.buf.n = total
	e.rows, e.cols = rows, cols
	e.sealed = true
	return nil
}

func (e *Encoder) checkStandard() error {
	if e.sealed {
		return pdf417.ErrSealed
	}
	if e.micro {
		return fmt.Errorf("MicroPDF417 encoder sealed as PDF417: %w", pdf417.ErrDimensionMismatch)
	}
	return nil
}

// Seal appends the error correction codewords of level to the symbol. It
// fails with ErrNotEnoughCapacity when the data and 2^(level+1) error
// correction codewords do not fit. A failed Seal leaves the encoder usable.
func (e *Encoder) Seal(level int) error {
	if err := e.checkStandard(); err != nil {
		return err
	}
	if level < 0 || level > pdf417.MaxLevel {
		return fmt.Errorf("level %d: %w", level, pdf417.ErrInvalidLevel)
	}
	if !e.fits(e.rows, e.cols, level) {
		return fmt.Errorf("%d data codewords at level %d in %dx%d: %w",
			e.DataLen(), level, e.rows, e.cols, pdf417.ErrNotEnoughCapacity)
	}
	e.level = level
	return e.seal(e.rows, e.cols, pdf417.ECCount(level), true)
}

// FitSeal seals the symbol with the lowest error correction level that
// fits. With maxRows and maxCols both <= 0 the symbol keeps the shape given
// to New. Otherwise the smallest shape with at most maxRows rows and maxCols
// columns (a non-positive bound means the format maximum) that fits at some
// level is chosen, preferring fewer rows between shapes of the same area,
// and the symbol occupies the start of the buffer.
func (e *Encoder) FitSeal(maxRows, maxCols int) (Fit, error) {
	if err := e.checkStandard(); err != nil {
		return Fit{}, err
	}
	if maxRows <= 0 && maxCols <= 0 {
		for level := 0; level <= pdf417.MaxLevel; level++ {
			if e.fits(e.rows, e.cols, level) {
				return e.sealFit(Fit{Level: level, Rows: e.rows, Cols: e.cols})
			}
		}
		return Fit{}, fmt.Errorf("%d data codewords in %dx%d: %w",
			e.DataLen(), e.rows, e.cols, pdf417.ErrNotEnoughCapacity)
	}
	return e.FitSealLevel(-1, maxRows, maxCols)
}

// FitSealLevel is FitSeal with a fixed error correction level; a negative
// level tries every level from 0 up for each shape.
func (e *Encoder) FitSealLevel(level, maxRows, maxCols int) (Fit, error) {
	if err := e.checkStandard(); err != nil {
		return Fit{}, err
	}
	if level > pdf417.MaxLevel {
		return Fit{}, fmt.Errorf("level %d: %w", level, pdf417.ErrInvalidLevel)
	}
	if maxRows <= 0 || maxRows > pdf417.MaxRows {
		maxRows = pdf417.MaxRows
	}
	if maxCols <= 0 || maxCols > pdf417.MaxCols {
		maxCols = pdf417.MaxCols
	}
	minLevel, maxLevel := 0, pdf417.MaxLevel
	if level >= 0 {
		minLevel, maxLevel = level, level
	}
	limit := maxRows * maxCols
	if c := e.buf.Cap(); c < limit {
		limit = c
	}
	// Visit shapes by area, then by rows.
	for area := pdf417.MinRows * pdf417.MinCols; area <= limit; area++ {
		for rows := pdf417.MinRows; rows <= maxRows && rows <= area; rows++ {
			if area%rows != 0 {
				continue
			}
			cols := area / rows
			if cols > maxCols {
				continue
			}
			for l := minLevel; l <= maxLevel; l++ {
				if e.fits(rows, cols, l) {
					return e.sealFit(Fit{Level: l, Rows: rows, Cols: cols})
				}
			}
		}
	}
	return Fit{}, fmt.Errorf("%d data codewords in at most %dx%d: %w",
		e.DataLen(), maxRows, maxCols, pdf417.ErrNotEnoughCapacity)
}

// FitSealStrongest seals the symbol in its constructed shape with the
// highest error correction level that fits.
func (e *Encoder) FitSealStrongest() (Fit, error) {
	if err := e.checkStandard(); err != nil {
		return Fit{}, err
	}
	for level := pdf417.MaxLevel; level >= 0; level-- {
		if e.fits(e.rows, e.cols, level) {
			return e.sealFit(Fit{Level: level, Rows: e.rows, Cols: e.cols})
		}
	}
	return Fit{}, fmt.Errorf("%d data codewords in %dx%d: %w",
		e.DataLen(), e.rows, e.cols, pdf417.ErrNotEnoughCapacity)
}

func (e *Encoder) sealFit(f Fit) (Fit, error) {
	e.level = f.Level
	if err := e.seal(f.Rows, f.Cols, pdf417.ECCount(f.Level), true); err != nil {
		return Fit{}, err
	}
	return f, nil
}

// SealMicro seals a MicroPDF417 symbol of size m. MicroPDF417 symbols have
// no length descriptor and a fixed number of error correction codewords per
// size.
func (e *Encoder) SealMicro(m pdf417.MicroSize) error {
	if e.sealed {
		return pdf417.ErrSealed
	}
	if !e.micro {
		return fmt.Errorf("PDF417 encoder sealed as MicroPDF417: %w", pdf417.ErrDimensionMismatch)
	}
	if _, ok := pdf417.LookupMicro(m.Rows, m.Cols); !ok {
		return fmt.Errorf("%dx%d is not a MicroPDF417 size: %w", m.Rows, m.Cols, pdf417.ErrDimensionMismatch)
	}
	if !e.fitsMicro(m) {
		return fmt.Errorf("%d data codewords in %dx%d MicroPDF417: %w",
			e.DataLen(), m.Rows, m.Cols, pdf417.ErrNotEnoughCapacity)
	}
	return e.seal(m.Rows, m.Cols, m.EC, false)
}

func (e *Encoder) fitsMicro(m pdf417.MicroSize) bool {
	return m.Codewords() <= e.buf.Cap() && e.Len() <= m.DataCodewords()
}

// FitSealMicro seals the smallest MicroPDF417 symbol with cols columns that
// holds the data. With cols <= 0 any column count is allowed and the size
// with the fewest codewords wins, narrower first.
func (e *Encoder) FitSealMicro(cols int) (pdf417.MicroSize, error) {
	if e.sealed {
		return pdf417.MicroSize{}, pdf417.ErrSealed
	}
	if !e.micro {
		return pdf417.MicroSize{}, fmt.Errorf("PDF417 encoder sealed as MicroPDF417: %w", pdf417.ErrDimensionMismatch)
	}
	best := -1
	for i := 0; i < pdf417.MicroCount; i++ {
		m := pdf417.MicroAt(i)
		if cols > 0 && m.Cols != cols {
			continue
		}
		if !e.fitsMicro(m) {
			continue
		}
		if best < 0 || m.Codewords() < pdf417.MicroAt(best).Codewords() {
			best = i
		}
	}
	if best < 0 {
		return pdf417.MicroSize{}, fmt.Errorf("%d data codewords in MicroPDF417 with %d columns: %w",
			e.DataLen(), cols, pdf417.ErrNotEnoughCapacity)
	}
	m := pdf417.MicroAt(best)
	if err := e.seal(m.Rows, m.Cols, m.EC, false); err != nil {
		return pdf417.MicroSize{}, err
	}
	return m, nil
}

// RecommendedLevel returns the minimum error correction level recommended
// by ISO/IEC 15438 for a symbol with the given number of data codewords.
func RecommendedLevel(dataCodewords int) int {
	switch {
	case dataCodewords <= 40:
		return 2
	case dataCodewords <= 160:
		return 3
	case dataCodewords <= 320:
		return 4
	default:
		return 5
	}
}

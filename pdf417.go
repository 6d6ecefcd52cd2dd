// Package pdf417 holds the types shared by the PDF417 encoder, the error
// correction engine and the symbol renderer.
//
// The encoding pipeline is split over several packages:
//
//	encoder     compaction of user data into codewords, sealing
//	reedsolomon error correction codewords over GF(929)
//	render      codewords to a matrix of dark and light modules
//	writer      one-call string to bitutil.BitMatrix convenience
//
// The encoder and renderer work on caller-owned buffers and do not allocate.
package pdf417

import "fmt"

const (
	NumberOfCodewords     = 929
	MaxCodewordsInBarcode = 928
	MinRows               = 3
	MaxRows               = 90
	MinCols               = 1
	MaxCols               = 30
	MaxLevel              = 8
	ModulesInCodeword     = 17
	ModulesInStartPattern = 17
	ModulesInStopPattern  = 18
	ModulesInRAP          = 10
	BarsInModule          = 8
)

// Variant selects the symbol layout.
type Variant int

const (
	// Standard is the full PDF417 symbol with left and right row indicators
	// and start and stop patterns.
	Standard Variant = iota
	// Truncated drops the right row indicator and the stop pattern.
	Truncated
	// Micro is MicroPDF417 (ISO/IEC 24728).
	Micro
)

// String returns the name of the variant.
func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Truncated:
		return "truncated"
	case Micro:
		return "micro"
	default:
		return "unknown"
	}
}

// ParseVariant parses the name returned by Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "standard", "":
		return Standard, nil
	case "truncated", "compact":
		return Truncated, nil
	case "micro":
		return Micro, nil
	}
	return Standard, fmt.Errorf("unknown variant %q", s)
}

// Spec describes the shape of a symbol.
type Spec struct {
	Rows    int
	Cols    int
	Level   int
	Variant Variant
}

// Validate checks the ranges of s. For Micro symbols the shape must be one
// of the MicroPDF417 sizes and Level is ignored.
func (s Spec) Validate() error {
	if s.Level < 0 || s.Level > MaxLevel {
		return fmt.Errorf("level %d: %w", s.Level, ErrInvalidLevel)
	}
	if s.Variant == Micro {
		if _, ok := LookupMicro(s.Rows, s.Cols); !ok {
			return fmt.Errorf("%dx%d is not a MicroPDF417 size: %w", s.Rows, s.Cols, ErrDimensionMismatch)
		}
		return nil
	}
	if s.Rows < MinRows || s.Rows > MaxRows {
		return fmt.Errorf("rows %d not in [%d,%d]: %w", s.Rows, MinRows, MaxRows, ErrDimensionMismatch)
	}
	if s.Cols < MinCols || s.Cols > MaxCols {
		return fmt.Errorf("cols %d not in [%d,%d]: %w", s.Cols, MinCols, MaxCols, ErrDimensionMismatch)
	}
	return nil
}

// Codewords returns rows*cols.
func (s Spec) Codewords() int {
	return s.Rows * s.Cols
}

// ECCount returns the number of error correction codewords for an error
// correction level (2, 4, ... 512). It returns 0 for levels outside 0..8.
func ECCount(level int) int {
	if level < 0 || level > MaxLevel {
		return 0
	}
	return 1 << (level + 1)
}

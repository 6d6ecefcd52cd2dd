// Package writer encodes a string into a PDF417 or MicroPDF417 symbol in
// one call, choosing compaction, character set, error correction level and
// symbol size.
package writer

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ericlevine/pdf417"
	"github.com/ericlevine/pdf417/bitutil"
	"github.com/ericlevine/pdf417/charset"
	"github.com/ericlevine/pdf417/encoder"
	"github.com/ericlevine/pdf417/render"
)

const (
	// AutoLevel selects the recommended error correction level for the
	// data, or a lower one when the recommended level does not fit.
	AutoLevel = -1

	// defaultQuietZone is the quiet zone width in modules.
	defaultQuietZone = 2

	maxMicroCodewords = 4 * 44
)

// Compaction selects how contents are packed into codewords.
type Compaction int

const (
	// Auto uses text compaction for ASCII and byte compaction with an ECI
	// designator for anything else.
	Auto Compaction = iota
	Text
	Byte
	Numeric
)

// String returns the name of the compaction.
func (c Compaction) String() string {
	switch c {
	case Auto:
		return "auto"
	case Text:
		return "text"
	case Byte:
		return "byte"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// ParseCompaction parses the name returned by Compaction.String.
func ParseCompaction(s string) (Compaction, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "text":
		return Text, nil
	case "byte", "binary":
		return Byte, nil
	case "numeric":
		return Numeric, nil
	}
	return Auto, fmt.Errorf("unknown compaction %q", s)
}

// Writer encodes strings into symbols.
type Writer struct {
	level      int
	compaction Compaction
	charset    string
	variant    pdf417.Variant
	maxRows    int
	maxCols    int
	scaleX     int
	scaleY     int
	margin     int
	inverted   bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithLevel sets the error correction level, or AutoLevel. MicroPDF417
// symbols ignore it.
func WithLevel(level int) Option {
	return func(w *Writer) { w.level = level }
}

// WithCompaction sets the compaction mode.
func WithCompaction(c Compaction) Option {
	return func(w *Writer) { w.compaction = c }
}

// WithCharset sets the character set contents are converted to before byte
// compaction, by one of the names known to charset.GetECIByName. An ECI
// designator is always emitted for an explicit character set.
func WithCharset(name string) Option {
	return func(w *Writer) { w.charset = name }
}

// WithVariant sets the symbol variant.
func WithVariant(v pdf417.Variant) Option {
	return func(w *Writer) { w.variant = v }
}

// WithMaxDimensions bounds the number of rows and data columns. A
// non-positive bound means the format maximum. For MicroPDF417 symbols only
// a column count of 1 to 4 is honored.
func WithMaxDimensions(rows, cols int) Option {
	return func(w *Writer) { w.maxRows, w.maxCols = rows, cols }
}

// WithScale sets the size in pixels of one module.
func WithScale(x, y int) Option {
	return func(w *Writer) { w.scaleX, w.scaleY = x, y }
}

// WithMargin sets the quiet zone around the symbol in pixels.
func WithMargin(margin int) Option {
	return func(w *Writer) { w.margin = margin }
}

// WithInverted swaps dark and light modules of the symbol. The quiet zone
// stays light.
func WithInverted(inverted bool) Option {
	return func(w *Writer) { w.inverted = inverted }
}

// New creates a Writer.
func New(opts ...Option) *Writer {
	w := &Writer{level: AutoLevel, margin: -1}
	for _, opt := range opts {
		opt(w)
	}
	if w.scaleX <= 0 || w.scaleY <= 0 {
		w.scaleX, w.scaleY = pdf417.DefaultScale(w.variant)
	}
	if w.margin < 0 {
		w.margin = defaultQuietZone * w.scaleX
	}
	return w
}

// Codewords encodes contents and returns the sealed codewords and the shape
// of the symbol.
func (w *Writer) Codewords(contents string) ([]uint16, pdf417.Spec, error) {
	var e *encoder.Encoder
	if w.variant == pdf417.Micro {
		e = encoder.NewMicro(make([]uint16, maxMicroCodewords))
	} else {
		var err error
		e, err = encoder.New(make([]uint16, pdf417.MaxRows*pdf417.MaxCols), pdf417.MaxRows, pdf417.MaxCols)
		if err != nil {
			return nil, pdf417.Spec{}, err
		}
	}
	if err := w.appendContents(e, contents); err != nil {
		return nil, pdf417.Spec{}, err
	}
	if err := w.seal(e); err != nil {
		return nil, pdf417.Spec{}, err
	}
	spec := e.Spec()
	if w.variant == pdf417.Truncated {
		spec.Variant = pdf417.Truncated
	}
	Logger().Debug("sealed symbol",
		zap.Stringer("variant", spec.Variant),
		zap.Int("rows", spec.Rows),
		zap.Int("cols", spec.Cols),
		zap.Int("level", spec.Level))
	return e.Codewords(), spec, nil
}

func (w *Writer) appendContents(e *encoder.Encoder, contents string) error {
	var eci *charset.ECI
	if w.charset != "" {
		eci = charset.GetECIByName(w.charset)
		if eci == nil {
			return fmt.Errorf("unknown character set %q: %w", w.charset, pdf417.ErrNotEncodable)
		}
	} else if w.compaction == Auto {
		if !utf8.ValidString(contents) {
			Logger().Debug("binary contents", zap.Int("bytes", len(contents)))
			return e.AppendBytes([]byte(contents))
		}
		eci = charset.Guess(contents)
	}

	data := contents
	if eci != nil {
		b, err := charset.Encode(contents, eci)
		if err != nil {
			return err
		}
		data = string(b)
		Logger().Debug("character set",
			zap.String("name", eci.Name),
			zap.Int("eci", eci.Value),
			zap.Int("bytes", len(b)))
	}

	if eci != nil && w.compaction == Auto {
		return e.AppendUTF8(data, eci.Value)
	}
	if eci != nil {
		if err := e.AppendECI(eci.Value); err != nil {
			return err
		}
	}
	Logger().Debug("compaction", zap.Stringer("mode", w.compaction), zap.Int("length", len(data)))
	switch w.compaction {
	case Byte:
		return e.AppendBytes([]byte(data))
	case Numeric:
		return e.AppendNumeric(data)
	default:
		return e.AppendASCII(data)
	}
}

func (w *Writer) seal(e *encoder.Encoder) error {
	if w.variant == pdf417.Micro {
		cols := w.maxCols
		if cols < 0 || cols > 4 {
			cols = 0
		}
		m, err := e.FitSealMicro(cols)
		if err != nil {
			return err
		}
		Logger().Debug("micro size", zap.Int("rows", m.Rows), zap.Int("cols", m.Cols), zap.Int("ec", m.EC))
		return nil
	}

	if w.level != AutoLevel {
		_, err := e.FitSealLevel(w.level, w.maxRows, w.maxCols)
		return err
	}
	level := encoder.RecommendedLevel(e.DataLen())
	if _, err := e.FitSealLevel(level, w.maxRows, w.maxCols); err == nil {
		return nil
	}
	Logger().Debug("recommended level does not fit", zap.Int("level", level), zap.Int("data", e.DataLen()))
	_, err := e.FitSealLevel(AutoLevel, w.maxRows, w.maxCols)
	return err
}

// Encode encodes contents and returns the symbol as a bit matrix, a set bit
// for a dark pixel, surrounded by the quiet zone.
func (w *Writer) Encode(contents string) (*bitutil.BitMatrix, error) {
	codewords, spec, err := w.Codewords(contents)
	if err != nil {
		return nil, err
	}
	r, err := render.New(codewords, spec, render.WithScale(w.scaleX, w.scaleY), render.WithInverted(w.inverted))
	if err != nil {
		return nil, err
	}
	modules := make([]bool, r.Width()*r.Height())
	if err := r.Render(modules); err != nil {
		return nil, err
	}
	return bitutil.FromModules(modules, r.Width(), w.margin), nil
}

// Package encoder packs user data into PDF417 codewords and seals them with
// error correction.
//
// An Encoder is bound to one caller-owned codeword array for one
// encode-and-seal cycle. Append calls may be mixed freely; each one either
// writes all of its codewords or, on ErrCapacityExceeded, none of them.
// Nothing on the append, seal or fit paths allocates.
package encoder

import (
	"fmt"
	"strconv"

	"github.com/ericlevine/pdf417"
)

// Encoder writes compacted data into a codeword buffer.
type Encoder struct {
	buf    Buffer
	rows   int
	cols   int
	level  int
	micro  bool
	sealed bool
	state  state
}

// New returns an Encoder writing a rows x cols PDF417 symbol into buf.
// len(buf) must equal rows*cols. The first codeword is reserved for the
// symbol length descriptor.
func New(buf []uint16, rows, cols int) (*Encoder, error) {
	e := &Encoder{}
	if err := e.Init(buf, rows, cols); err != nil {
		return nil, err
	}
	return e, nil
}

// Init prepares e like New without allocating the Encoder.
func (e *Encoder) Init(buf []uint16, rows, cols int) error {
	spec := pdf417.Spec{Rows: rows, Cols: cols}
	if err := spec.Validate(); err != nil {
		return err
	}
	if len(buf) != rows*cols {
		return fmt.Errorf("buffer of %d codewords for %dx%d symbol: %w",
			len(buf), rows, cols, pdf417.ErrDimensionMismatch)
	}
	*e = Encoder{buf: NewBuffer(buf), rows: rows, cols: cols, state: initialState()}
	buf[0] = 0
	e.buf.n = 1
	return nil
}

// NewMicro returns an Encoder writing a MicroPDF417 symbol into buf. The
// symbol size is chosen when sealing; buf must be large enough for it.
func NewMicro(buf []uint16) *Encoder {
	e := &Encoder{}
	e.InitMicro(buf)
	return e
}

// InitMicro prepares e like NewMicro without allocating the Encoder.
func (e *Encoder) InitMicro(buf []uint16) {
	*e = Encoder{buf: NewBuffer(buf), micro: true, state: initialState()}
}

// Rows returns the number of rows of the symbol. After a successful fit it
// is the chosen number of rows.
func (e *Encoder) Rows() int { return e.rows }

// Cols returns the number of data columns of the symbol.
func (e *Encoder) Cols() int { return e.cols }

// Micro reports whether e encodes a MicroPDF417 symbol.
func (e *Encoder) Micro() bool { return e.micro }

// Sealed reports whether error correction has been appended.
func (e *Encoder) Sealed() bool { return e.sealed }

// Len returns the number of codeword slots in use, including the length
// descriptor and a pending half text codeword.
func (e *Encoder) Len() int { return e.buf.Len() + e.state.pending() }

// DataLen returns the number of data codewords appended so far, excluding
// the length descriptor.
func (e *Encoder) DataLen() int {
	if e.micro {
		return e.Len()
	}
	return e.Len() - 1
}

// Capacity returns the size of the codeword buffer.
func (e *Encoder) Capacity() int { return e.buf.Cap() }

// Codewords returns the codewords of the symbol: after sealing, exactly
// rows*cols codewords; before, the ones written so far.
func (e *Encoder) Codewords() []uint16 {
	if e.sealed {
		return e.buf.cw[:e.rows*e.cols]
	}
	return e.buf.Codewords()
}

// Level returns the error correction level chosen when sealing. It is 0
// for MicroPDF417 symbols.
func (e *Encoder) Level() int { return e.level }

// Spec returns the shape of the sealed symbol, ready to be passed to the
// renderer. Truncated symbols share the codewords of Standard ones; callers
// set the Variant themselves.
func (e *Encoder) Spec() pdf417.Spec {
	v := pdf417.Standard
	if e.micro {
		v = pdf417.Micro
	}
	return pdf417.Spec{Rows: e.rows, Cols: e.cols, Level: e.level, Variant: v}
}

// opKind selects the compaction routine of an append.
type opKind uint8

const (
	opText opKind = iota
	opNumeric
	opNumericBytes
	opBytes
	opECI
	opECIBytes
)

// op is one append call. Dispatching on a value instead of calling a
// closure keeps the sinks on the stack.
type op struct {
	kind opKind
	str  string
	data []byte
	eci  int
}

func (o *op) apply(s *sink, st *state) {
	switch o.kind {
	case opText:
		encodeText(s, st, o.str)
	case opNumeric:
		encodeNumeric(s, st, o.str)
	case opNumericBytes:
		encodeNumeric(s, st, o.data)
	case opBytes:
		encodeBinary(s, st, o.data)
	case opECI:
		encodeECI(s, st, o.eci)
	case opECIBytes:
		encodeECI(s, st, o.eci)
		if len(o.str) == 0 {
			return
		}
		encodeBinary(s, st, o.str)
		if st.mode == modeByte {
			st.mode = modeECIByte
		}
	}
}

// run measures o on a copy of the state, then replays it into the buffer
// if the output fits.
func (e *Encoder) run(o op) error {
	if e.sealed {
		return pdf417.ErrSealed
	}
	st := e.state
	dry := sink{pos: e.buf.n}
	o.apply(&dry, &st)
	if need := dry.pos + st.pending(); need > e.buf.Cap() {
		return fmt.Errorf("need %d codewords, have %d: %w", need, e.buf.Cap(), pdf417.ErrCapacityExceeded)
	}
	s := sink{buf: e.buf.cw, pos: e.buf.n}
	o.apply(&s, &e.state)
	e.buf.n = s.pos
	return nil
}

// AppendNumeric appends a string of decimal digits using numeric compaction.
func (e *Encoder) AppendNumeric(digits string) error {
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return fmt.Errorf("non-digit %q at position #%d: %w", digits[i], i, pdf417.ErrNotEncodable)
		}
	}
	return e.run(op{kind: opNumeric, str: digits})
}

// AppendUint64 appends the decimal representation of n using numeric
// compaction.
func (e *Encoder) AppendUint64(n uint64) error {
	var b [20]byte
	return e.run(op{kind: opNumericBytes, data: strconv.AppendUint(b[:0], n, 10)})
}

// AppendASCII appends text using text compaction. Digit runs longer than
// 13 are numeric compacted; bytes without a text representation are shifted
// to byte compaction one at a time, or latched when they come in runs.
func (e *Encoder) AppendASCII(text string) error {
	return e.run(op{kind: opText, str: text})
}

// AppendBytes appends raw bytes using byte compaction.
func (e *Encoder) AppendBytes(data []byte) error {
	return e.run(op{kind: opBytes, data: data})
}

// AppendECI appends an Extended Channel Interpretation designator.
func (e *Encoder) AppendECI(eci int) error {
	if eci < 0 || eci > MaxECI {
		return fmt.Errorf("ECI %d out of range: %w", eci, pdf417.ErrNotEncodable)
	}
	return e.run(op{kind: opECI, eci: eci})
}

// AppendUTF8 appends an ECI designator followed by the bytes of str in byte
// compaction. It costs more per character than AppendASCII and should be
// used only when the reader must interpret the bytes in a given character
// set; 26 designates UTF-8.
func (e *Encoder) AppendUTF8(str string, eci int) error {
	if eci < 0 || eci > MaxECI {
		return fmt.Errorf("ECI %d out of range: %w", eci, pdf417.ErrNotEncodable)
	}
	return e.run(op{kind: opECIBytes, str: str, eci: eci})
}

// Chain wraps an Encoder for chained appends. The first error stops all
// following calls and is returned by Err.
type Chain struct {
	e   *Encoder
	err error
}

// Chain starts a chain of appends.
func (e *Encoder) Chain() Chain {
	return Chain{e: e}
}

// Numeric calls AppendNumeric.
func (c Chain) Numeric(digits string) Chain {
	if c.err == nil {
		c.err = c.e.AppendNumeric(digits)
	}
	return c
}

// Uint64 calls AppendUint64.
func (c Chain) Uint64(n uint64) Chain {
	if c.err == nil {
		c.err = c.e.AppendUint64(n)
	}
	return c
}

// ASCII calls AppendASCII.
func (c Chain) ASCII(text string) Chain {
	if c.err == nil {
		c.err = c.e.AppendASCII(text)
	}
	return c
}

// Bytes calls AppendBytes.
func (c Chain) Bytes(data []byte) Chain {
	if c.err == nil {
		c.err = c.e.AppendBytes(data)
	}
	return c
}

// ECI calls AppendECI.
func (c Chain) ECI(eci int) Chain {
	if c.err == nil {
		c.err = c.e.AppendECI(eci)
	}
	return c
}

// UTF8 calls AppendUTF8.
func (c Chain) UTF8(str string, eci int) Chain {
	if c.err == nil {
		c.err = c.e.AppendUTF8(str, eci)
	}
	return c
}

// Err returns the first error of the chain.
func (c Chain) Err() error {
	return c.err
}

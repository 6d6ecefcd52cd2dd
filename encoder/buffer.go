package encoder

// Buffer is a fixed-capacity view over a caller-owned codeword array. It
// never grows: the capacity is the length of the array it was created on.
type Buffer struct {
	cw []uint16
	n  int
}

// NewBuffer returns a Buffer writing into cw from index 0.
func NewBuffer(cw []uint16) Buffer {
	return Buffer{cw: cw}
}

// Len returns the number of codewords written so far.
func (b *Buffer) Len() int { return b.n }

// Cap returns the number of codewords the buffer can hold.
func (b *Buffer) Cap() int { return len(b.cw) }

// Remaining returns Cap() - Len().
func (b *Buffer) Remaining() int { return len(b.cw) - b.n }

// Codewords returns the written part of the buffer. The slice aliases the
// caller's array.
func (b *Buffer) Codewords() []uint16 { return b.cw[:b.n] }

// sink receives the codewords produced by a compaction routine. A sink with
// a nil buf only counts, which lets an append measure its output before
// touching the buffer.
type sink struct {
	buf []uint16
	pos int
}

func (s *sink) put(cw uint16) {
	if s.buf != nil {
		s.buf[s.pos] = cw
	}
	s.pos++
}

// text adds a text compaction value (0..29); two values make a codeword.
func (s *sink) text(st *state, v byte) {
	if st.half < 0 {
		st.half = int16(v)
		return
	}
	s.put(uint16(st.half)*30 + uint16(v))
	st.half = -1
}

// flush completes a pending half codeword with 29. In punctuation 29 is
// PAL, so the sub-mode returns to alpha.
func (s *sink) flush(st *state) {
	if st.half >= 0 {
		s.put(uint16(st.half)*30 + 29)
		st.half = -1
		if st.sub == submodePunctuation {
			st.sub = submodeAlpha
		}
	}
}

// raw writes a full codeword, closing any pending half codeword first.
func (s *sink) raw(st *state, cw uint16) {
	s.flush(st)
	s.put(cw)
}

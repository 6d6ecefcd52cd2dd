// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// Mode latch and shift constants
const (
	latchToText       = 900
	latchToBytePadded = 901
	latchToNumeric    = 902
	shiftToByte       = 913
	latchToByte       = 924
	eciUserDefined    = 925
	eciGeneralPurpose = 926
	eciCharset        = 927
	padCodeword       = 900
)

// Text compaction sub-mode switch values
const (
	textSpace = 26
	textLL    = 27 // latch to lower (alpha, mixed); shift to alpha (lower)
	textML    = 28 // latch to mixed (alpha, lower); latch to alpha (mixed)
	textPS    = 29 // shift to punctuation; latch to alpha (punctuation)
	textPL    = 25 // latch to punctuation (mixed)
)

const (
	numericGroupDigits = 44
	// maxNumericGroupCodewords is the output of a full 44 digit group.
	maxNumericGroupCodewords = 15
	// numericTextThreshold is the longest digit run that stays in text
	// compaction inside AppendASCII.
	numericTextThreshold = 13
)

// mode is the active compaction mode of an encoder.
type mode uint8

const (
	modeText mode = iota
	modeByte
	modeNumeric
	modeECIByte
)

func (m mode) String() string {
	switch m {
	case modeText:
		return "text"
	case modeByte:
		return "byte"
	case modeNumeric:
		return "numeric"
	case modeECIByte:
		return "eci-byte"
	}
	return "unknown"
}

// submode is the text compaction sub-alphabet.
type submode uint8

const (
	submodeAlpha submode = iota
	submodeLower
	submodeMixed
	submodePunctuation
)

// state is the compaction state machine. The zero value is not valid; use
// initialState.
type state struct {
	mode mode
	sub  submode
	// half is the first value of an incomplete text codeword, or -1.
	half int16
	// numShort is set when the last numeric group had fewer than 44 digits.
	// Such a group must be closed by a latch before more numeric data.
	numShort bool
}

func initialState() state {
	return state{mode: modeText, sub: submodeAlpha, half: -1}
}

// pending returns the number of buffer slots reserved by an incomplete
// text codeword.
func (st *state) pending() int {
	if st.half >= 0 {
		return 1
	}
	return 0
}

// textMixedRaw is the raw code table for text compaction Mixed sub-mode.
var textMixedRaw = []byte{
	48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 38, 13, 9, 44, 58,
	35, 45, 46, 36, 47, 43, 37, 42, 61, 94, 0, 32, 0, 0, 0,
}

// textPunctuationRaw is the raw code table for text compaction Punctuation sub-mode.
var textPunctuationRaw = []byte{
	59, 60, 62, 64, 91, 92, 93, 95, 96, 126, 33, 13, 9, 44, 58,
	10, 45, 46, 36, 47, 34, 124, 42, 40, 41, 63, 123, 125, 39, 0,
}

// mixed and punctuation are the inverse lookups of the raw tables; -1 marks
// bytes outside the sub-mode.
var (
	mixed       [256]int8
	punctuation [256]int8
)

func init() {
	for i := range mixed {
		mixed[i] = -1
		punctuation[i] = -1
	}
	for i, b := range textMixedRaw {
		if b > 0 {
			mixed[b] = int8(i)
		}
	}
	for i, b := range textPunctuationRaw {
		if b > 0 {
			punctuation[b] = int8(i)
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphaUpper(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isAlphaLower(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

func isMixed(ch byte) bool {
	return mixed[ch] != -1
}

func isPunctuation(ch byte) bool {
	return punctuation[ch] != -1
}

// isText reports whether ch has a text compaction representation.
func isText(ch byte) bool {
	return isAlphaUpper(ch) || isAlphaLower(ch) || isMixed(ch) || isPunctuation(ch)
}

type digits interface {
	~string | ~[]byte
}

// toText latches back to text compaction. The sub-mode after a latch is
// always alpha.
func toText(s *sink, st *state) {
	if st.mode != modeText {
		s.put(latchToText)
		st.mode = modeText
		st.sub = submodeAlpha
	}
}

// encodeText encodes msg with text compaction as described in ISO/IEC
// 15438:2015, 5.4.1. Long digit runs are numeric compacted and bytes without
// a text representation are shifted or latched to byte compaction.
func encodeText(s *sink, st *state, msg string) {
	for k := 0; k < len(msg); {
		ch := msg[k]
		switch {
		case isAlphaUpper(ch):
			toText(s, st)
			switch st.sub {
			case submodeLower:
				if k+1 < len(msg) && (isAlphaLower(msg[k+1]) || msg[k+1] == ' ') {
					s.text(st, textLL) // as
				} else {
					s.text(st, textML) // ml
					s.text(st, textML) // al
					st.sub = submodeAlpha
				}
			case submodeMixed:
				s.text(st, textML) // al
				st.sub = submodeAlpha
			case submodePunctuation:
				s.text(st, textPS) // al
				st.sub = submodeAlpha
			}
			s.text(st, ch-'A')
			k++

		case isAlphaLower(ch):
			toText(s, st)
			switch st.sub {
			case submodeAlpha, submodeMixed:
				s.text(st, textLL) // ll
			case submodePunctuation:
				s.text(st, textPS) // al
				s.text(st, textLL) // ll
			}
			st.sub = submodeLower
			s.text(st, ch-'a')
			k++

		case isDigit(ch) && st.mode == modeText && st.sub == submodeMixed:
			s.text(st, ch-'0')
			k++

		case isDigit(ch):
			end := k + 1
			for end < len(msg) && end-k < numericGroupDigits && isDigit(msg[end]) {
				end++
			}
			if end-k <= numericTextThreshold && (st.mode != modeNumeric || st.numShort) {
				toText(s, st)
				switch st.sub {
				case submodeAlpha, submodeLower:
					s.text(st, textML) // ml
				case submodePunctuation:
					s.text(st, textPS) // al
					s.text(st, textML) // ml
				}
				st.sub = submodeMixed
				for ; k < end; k++ {
					s.text(st, msg[k]-'0')
				}
				continue
			}
			encodeNumeric(s, st, msg[k:end])
			k = end

		case ch == ' ':
			toText(s, st)
			if st.sub == submodePunctuation {
				s.text(st, textPS) // al
				st.sub = submodeAlpha
			}
			s.text(st, textSpace)
			k++

		case isMixed(ch):
			toText(s, st)
			switch st.sub {
			case submodeAlpha, submodeLower:
				s.text(st, textML) // ml
				st.sub = submodeMixed
			case submodePunctuation:
				// Characters with the same value in both tables need no switch.
				if punctuation[ch] != mixed[ch] {
					s.text(st, textPS) // al
					s.text(st, textML) // ml
					st.sub = submodeMixed
				}
			}
			s.text(st, byte(mixed[ch]))
			k++

		case isPunctuation(ch):
			toText(s, st)
			if st.sub != submodePunctuation {
				end := k + 1
				for end < len(msg) && end-k < 3 && isPunctuation(msg[end]) {
					end++
				}
				if end-k >= 3 {
					if st.sub != submodeMixed {
						s.text(st, textML) // ml
					}
					s.text(st, textPL) // pl
					st.sub = submodePunctuation
				} else {
					s.text(st, textPS) // ps
				}
			}
			s.text(st, byte(punctuation[ch]))
			k++

		default:
			end := k + 1
			for end < len(msg) && !isText(msg[end]) && !isDigit(msg[end]) && msg[end] != ' ' {
				end++
			}
			encodeBinary(s, st, msg[k:end])
			k = end
		}
	}
}

// encodeNumeric encodes a run of digits with numeric compaction as
// described in ISO/IEC 15438:2015, 5.4.4, latching first if needed.
func encodeNumeric[T digits](s *sink, st *state, msg T) {
	if len(msg) == 0 {
		return
	}
	if st.mode != modeNumeric || st.numShort {
		s.raw(st, latchToNumeric)
		st.mode = modeNumeric
	}
	for idx := 0; idx < len(msg); {
		length := numericGroupDigits
		if len(msg)-idx < length {
			length = len(msg) - idx
		}
		encodeNumericGroup(s, msg[idx:idx+length])
		st.numShort = length < numericGroupDigits
		idx += length
	}
}

// encodeNumericGroup converts "1" followed by up to 44 digits to base 900,
// most significant codeword first. The decimal number is kept in a fixed
// array and divided by 900 in place.
func encodeNumericGroup[T digits](s *sink, group T) {
	var num [numericGroupDigits + 1]byte
	num[0] = 1
	for i := 0; i < len(group); i++ {
		num[i+1] = group[i] - '0'
	}
	n := len(group) + 1

	var out [maxNumericGroupCodewords]uint16
	count := 0
	for start := 0; start < n; {
		rem := 0
		for i := start; i < n; i++ {
			cur := rem*10 + int(num[i])
			num[i] = byte(cur / 900)
			rem = cur % 900
		}
		out[count] = uint16(rem)
		count++
		for start < n && num[start] == 0 {
			start++
		}
	}
	for i := count - 1; i >= 0; i-- {
		s.put(out[i])
	}
}

// encodeBinary encodes bytes using Byte Compaction as described in ISO/IEC
// 15438:2015, 5.4.3. A single byte inside text compaction is escaped with a
// shift and the text sub-mode is kept.
func encodeBinary[T digits](s *sink, st *state, data T) {
	count := len(data)
	if count == 0 {
		return
	}
	if count == 1 && st.mode == modeText {
		s.raw(st, shiftToByte)
		s.put(uint16(data[0]))
		return
	}
	if count%6 == 0 {
		s.raw(st, latchToByte)
	} else {
		s.raw(st, latchToBytePadded)
	}
	st.mode = modeByte

	idx := 0
	// Encode sixpacks
	for count-idx >= 6 {
		var t uint64
		for i := 0; i < 6; i++ {
			t = t<<8 | uint64(data[idx+i])
		}
		var chars [5]uint16
		for i := 4; i >= 0; i-- {
			chars[i] = uint16(t % 900)
			t /= 900
		}
		for _, c := range chars {
			s.put(c)
		}
		idx += 6
	}
	// Encode rest (remaining n<6 bytes if any)
	for ; idx < count; idx++ {
		s.put(uint16(data[idx]))
	}
}

// encodeECI writes an ECI designator, choosing the codeword form by range.
func encodeECI(s *sink, st *state, eci int) {
	switch {
	case eci < 900:
		s.raw(st, eciCharset)
		s.put(uint16(eci))
	case eci < 810900:
		s.raw(st, eciGeneralPurpose)
		s.put(uint16(eci/900 - 1))
		s.put(uint16(eci % 900))
	default:
		s.raw(st, eciUserDefined)
		s.put(uint16(eci - 810900))
	}
}

// MaxECI is the largest ECI designator that can be encoded.
const MaxECI = 811799

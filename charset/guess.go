package charset

import "unicode/utf8"

// singleByte lists the one byte per character sets tried by Guess, most
// common first.
var singleByte = []*ECI{
	ECIISO8859_1, ECIISO8859_15, ECIISO8859_2, ECICp1252, ECICp1250,
	ECICp1251, ECIISO8859_5, ECIISO8859_7, ECIISO8859_9, ECIISO8859_8,
	ECICp1256, ECIISO8859_6, ECIISO8859_11, ECIISO8859_13, ECIISO8859_4,
	ECIISO8859_3, ECIISO8859_10, ECIISO8859_14, ECIISO8859_16, ECICp437,
}

// multiByte lists the double byte sets tried after the single byte ones.
var multiByte = []*ECI{ECISJIS, ECIGB18030, ECIEUC_KR, ECIBig5}

// Guess returns the character set giving the shortest byte sequence for s.
// It returns nil when s is plain ASCII and needs no designator or when s is
// not valid UTF-8 and so names no characters, and ECIUTF8 when no other
// known set can represent s.
func Guess(s string) *ECI {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return nil
	}
	if !utf8.ValidString(s) {
		return nil
	}
	for _, eci := range singleByte {
		if _, err := eci.Encoding.NewEncoder().String(s); err == nil {
			return eci
		}
	}
	best, bestLen := ECIUTF8, len(s)
	for _, eci := range multiByte {
		if b, err := eci.Encoding.NewEncoder().String(s); err == nil && len(b) < bestLen {
			best, bestLen = eci, len(b)
		}
	}
	return best
}

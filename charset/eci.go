// Package charset maps character sets to their ECI designators and converts
// text into the byte sequences the designators announce.
package charset

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"

	"github.com/ericlevine/pdf417"
)

// ErrFormatECI indicates an invalid ECI value.
var ErrFormatECI = errors.New("charset: invalid ECI value")

// ECI represents a Character Set Extended Channel Interpretation.
type ECI struct {
	Value    int
	Name     string
	Encoding encoding.Encoding // nil for US-ASCII
	Aliases  []string
}

// pre-defined ECIs
var (
	ECICp437      = &ECI{2, "Cp437", charmap.CodePage437, []string{"IBM437"}}
	ECIISO8859_1  = &ECI{3, "ISO8859_1", charmap.ISO8859_1, []string{"ISO-8859-1", "latin1"}}
	ECIISO8859_2  = &ECI{4, "ISO8859_2", charmap.ISO8859_2, []string{"ISO-8859-2"}}
	ECIISO8859_3  = &ECI{5, "ISO8859_3", charmap.ISO8859_3, []string{"ISO-8859-3"}}
	ECIISO8859_4  = &ECI{6, "ISO8859_4", charmap.ISO8859_4, []string{"ISO-8859-4"}}
	ECIISO8859_5  = &ECI{7, "ISO8859_5", charmap.ISO8859_5, []string{"ISO-8859-5"}}
	ECIISO8859_6  = &ECI{8, "ISO8859_6", charmap.ISO8859_6, []string{"ISO-8859-6"}}
	ECIISO8859_7  = &ECI{9, "ISO8859_7", charmap.ISO8859_7, []string{"ISO-8859-7"}}
	ECIISO8859_8  = &ECI{10, "ISO8859_8", charmap.ISO8859_8, []string{"ISO-8859-8"}}
	ECIISO8859_9  = &ECI{11, "ISO8859_9", charmap.ISO8859_9, []string{"ISO-8859-9"}}
	ECIISO8859_10 = &ECI{12, "ISO8859_10", charmap.ISO8859_10, []string{"ISO-8859-10"}}
	ECIISO8859_11 = &ECI{13, "ISO8859_11", charmap.Windows874, []string{"ISO-8859-11"}}
	ECIISO8859_13 = &ECI{15, "ISO8859_13", charmap.ISO8859_13, []string{"ISO-8859-13"}}
	ECIISO8859_14 = &ECI{16, "ISO8859_14", charmap.ISO8859_14, []string{"ISO-8859-14"}}
	ECIISO8859_15 = &ECI{17, "ISO8859_15", charmap.ISO8859_15, []string{"ISO-8859-15"}}
	ECIISO8859_16 = &ECI{18, "ISO8859_16", charmap.ISO8859_16, []string{"ISO-8859-16"}}
	ECISJIS       = &ECI{20, "SJIS", japanese.ShiftJIS, []string{"Shift_JIS"}}
	ECICp1250     = &ECI{21, "Cp1250", charmap.Windows1250, []string{"windows-1250"}}
	ECICp1251     = &ECI{22, "Cp1251", charmap.Windows1251, []string{"windows-1251"}}
	ECICp1252     = &ECI{23, "Cp1252", charmap.Windows1252, []string{"windows-1252"}}
	ECICp1256     = &ECI{24, "Cp1256", charmap.Windows1256, []string{"windows-1256"}}
	ECIUTF16BE    = &ECI{25, "UnicodeBigUnmarked", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), []string{"UTF-16BE", "UnicodeBig"}}
	ECIUTF8       = &ECI{26, "UTF8", unicode.UTF8, []string{"UTF-8", "utf8"}}
	ECIASCII      = &ECI{27, "ASCII", nil, []string{"US-ASCII"}}
	ECIBig5       = &ECI{28, "Big5", traditionalchinese.Big5, nil}
	ECIGB18030    = &ECI{29, "GB18030", simplifiedchinese.GB18030, []string{"GB2312", "EUC_CN", "GBK"}}
	ECIEUC_KR     = &ECI{30, "EUC_KR", korean.EUCKR, []string{"EUC-KR"}}
)

var (
	valueToECI map[int]*ECI
	nameToECI  map[string]*ECI
)

func init() {
	valueToECI = make(map[int]*ECI)
	nameToECI = make(map[string]*ECI)

	allECIs := []*ECI{
		ECICp437, ECIISO8859_1, ECIISO8859_2, ECIISO8859_3, ECIISO8859_4,
		ECIISO8859_5, ECIISO8859_6, ECIISO8859_7, ECIISO8859_8, ECIISO8859_9,
		ECIISO8859_10, ECIISO8859_11, ECIISO8859_13, ECIISO8859_14,
		ECIISO8859_15, ECIISO8859_16, ECISJIS, ECICp1250, ECICp1251,
		ECICp1252, ECICp1256, ECIUTF16BE, ECIUTF8, ECIASCII, ECIBig5,
		ECIGB18030, ECIEUC_KR,
	}

	// Legacy designators share a character set with a current one.
	extraValues := map[*ECI][]int{
		ECICp437:     {0, 2},
		ECIISO8859_1: {1, 3},
		ECIASCII:     {27, 170},
	}

	for _, eci := range allECIs {
		if vals, ok := extraValues[eci]; ok {
			for _, v := range vals {
				valueToECI[v] = eci
			}
		} else {
			valueToECI[eci.Value] = eci
		}
		nameToECI[eci.Name] = eci
		for _, alias := range eci.Aliases {
			nameToECI[alias] = eci
		}
	}
}

// GetECIByValue returns the ECI for the given value, or an error if invalid.
// It returns nil without an error for valid designators of no known
// character set.
func GetECIByValue(value int) (*ECI, error) {
	if value < 0 || value >= 900 {
		return nil, ErrFormatECI
	}
	return valueToECI[value], nil
}

// GetECIByName returns the ECI for the given encoding name.
func GetECIByName(name string) *ECI {
	return nameToECI[name]
}

// Encode converts s to the byte sequence of the character set of eci. It
// fails with pdf417.ErrNotEncodable when s has a character the set cannot
// represent.
func Encode(s string, eci *ECI) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("charset: invalid UTF-8: %w", pdf417.ErrNotEncodable)
	}
	if eci.Encoding == nil {
		for i, r := range s {
			if r >= utf8.RuneSelf {
				return nil, fmt.Errorf("charset: %s cannot encode %q at #%d: %w", eci.Name, r, i, pdf417.ErrNotEncodable)
			}
		}
		return []byte(s), nil
	}
	b, err := eci.Encoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("charset: %s: %v: %w", eci.Name, err, pdf417.ErrNotEncodable)
	}
	return b, nil
}

// Decode converts data in the character set of eci to UTF-8.
func Decode(data []byte, eci *ECI) (string, error) {
	if eci.Encoding == nil {
		return string(data), nil
	}
	b, err := eci.Encoding.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("charset: %s: %w", eci.Name, err)
	}
	return string(b), nil
}

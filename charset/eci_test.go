package charset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ericlevine/pdf417"
)

func TestGetECIByValue(t *testing.T) {
	tests := []struct {
		value int
		want  *ECI
	}{
		{0, ECICp437},
		{2, ECICp437},
		{1, ECIISO8859_1},
		{3, ECIISO8859_1},
		{20, ECISJIS},
		{26, ECIUTF8},
		{170, ECIASCII},
		{899, nil},
	}
	for _, tc := range tests {
		got, err := GetECIByValue(tc.value)
		if err != nil {
			t.Fatalf("GetECIByValue(%d): %v", tc.value, err)
		}
		if got != tc.want {
			t.Errorf("GetECIByValue(%d) = %v, want %v", tc.value, got, tc.want)
		}
	}
	for _, v := range []int{-1, 900} {
		if _, err := GetECIByValue(v); !errors.Is(err, ErrFormatECI) {
			t.Errorf("GetECIByValue(%d) err = %v, want ErrFormatECI", v, err)
		}
	}
}

func TestGetECIByName(t *testing.T) {
	for name, want := range map[string]*ECI{
		"UTF-8":     ECIUTF8,
		"UTF8":      ECIUTF8,
		"Shift_JIS": ECISJIS,
		"GBK":       ECIGB18030,
		"latin1":    ECIISO8859_1,
		"nope":      nil,
	} {
		if got := GetECIByName(name); got != want {
			t.Errorf("GetECIByName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		s    string
		eci  *ECI
		want []byte
	}{
		{"café", ECIISO8859_1, []byte{'c', 'a', 'f', 0xe9}},
		{"café", ECIUTF8, []byte("café")},
		{"€", ECIISO8859_15, []byte{0xa4}},
		{"Ж", ECICp1251, []byte{0xc6}},
		{"A", ECIUTF16BE, []byte{0, 'A'}},
		{"ｱ", ECISJIS, []byte{0xb1}},
		{"plain", ECIASCII, []byte("plain")},
	}
	for _, tc := range tests {
		got, err := Encode(tc.s, tc.eci)
		if err != nil {
			t.Errorf("Encode(%q, %s): %v", tc.s, tc.eci.Name, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Encode(%q, %s) mismatch (-want +got):\n%s", tc.s, tc.eci.Name, diff)
		}
		back, err := Decode(got, tc.eci)
		if err != nil || back != tc.s {
			t.Errorf("Decode(Encode(%q)) = %q, %v", tc.s, back, err)
		}
	}
}

func TestEncodeUnsupported(t *testing.T) {
	for _, tc := range []struct {
		s   string
		eci *ECI
	}{
		{"日本", ECIISO8859_1},
		{"é", ECIASCII},
		{"\xff", ECIUTF8},
	} {
		if _, err := Encode(tc.s, tc.eci); !errors.Is(err, pdf417.ErrNotEncodable) {
			t.Errorf("Encode(%q, %s) err = %v, want ErrNotEncodable", tc.s, tc.eci.Name, err)
		}
	}
}

func TestGuess(t *testing.T) {
	tests := []struct {
		s    string
		want *ECI
	}{
		{"hello", nil},
		{"café", ECIISO8859_1},
		{"€100", ECIISO8859_15},
		{"Привет", ECICp1251},
		{"\U0001F600", ECIUTF8},
		{"\xff\xfe\x00", nil},
	}
	for _, tc := range tests {
		if got := Guess(tc.s); got != tc.want {
			t.Errorf("Guess(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
}

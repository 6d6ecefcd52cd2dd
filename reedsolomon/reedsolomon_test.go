package reedsolomon

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ericlevine/pdf417"
)

var inputData = []uint16{16, 902, 1, 278, 827, 900, 295, 902, 2, 326, 823, 544, 900, 149, 900, 900}

func TestGeneratorCoefficients(t *testing.T) {
	tests := []struct {
		level int
		want  []uint16
	}{
		{0, []uint16{27, 917}},
		{1, []uint16{522, 568, 723, 809}},
		{2, []uint16{237, 308, 436, 284, 646, 653, 428, 379}},
	}
	for _, tc := range tests {
		got := Generator(pdf417.ECCount(tc.level))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("level %d generator mismatch (-want +got):\n%s", tc.level, diff)
		}
	}
}

func TestGeneratorsCoverAllLevels(t *testing.T) {
	for level := 0; level <= pdf417.MaxLevel; level++ {
		k := pdf417.ECCount(level)
		if k != 1<<(level+1) {
			t.Errorf("ECCount(%d) = %d, want %d", level, k, 1<<(level+1))
		}
		if got := len(Generator(k)); got != k {
			t.Errorf("len(Generator(%d)) = %d", k, got)
		}
	}
	for i := 0; i < pdf417.MicroCount; i++ {
		k := pdf417.MicroAt(i).EC
		if Generator(k) == nil {
			t.Errorf("no generator for micro EC count %d", k)
		}
	}
}

func TestEncodeGolden(t *testing.T) {
	tests := []struct {
		level int
		want  []uint16
	}{
		{0, []uint16{156, 765}},
		{1, []uint16{168, 875, 63, 355}},
		{2, []uint16{628, 715, 393, 299, 863, 601, 169, 708}},
		{3, []uint16{232, 176, 793, 616, 476, 406, 855, 445, 84, 518, 522, 721, 607, 2, 42, 578}},
		{4, []uint16{281, 156, 276, 668, 44, 252, 877, 30, 549, 856, 773, 639, 420, 330, 693, 329,
			283, 723, 480, 482, 102, 925, 535, 892, 374, 472, 837, 331, 343, 608, 390, 364}},
		{5, []uint16{31, 850, 18, 870, 53, 477, 837, 130, 533, 186, 266, 450, 39, 492, 542, 653,
			499, 887, 618, 103, 364, 313, 906, 396, 270, 735, 593, 81, 557, 712, 810, 48,
			167, 533, 205, 577, 503, 126, 449, 189, 859, 471, 493, 849, 554, 76, 878, 893,
			168, 497, 251, 704, 311, 650, 283, 268, 462, 223, 659, 763, 176, 34, 544, 304}},
	}
	for _, tc := range tests {
		k := pdf417.ECCount(tc.level)
		buf := make([]uint16, len(inputData)+k)
		copy(buf, inputData)
		if err := Default.Encode(buf, k); err != nil {
			t.Fatalf("level %d: Encode: %v", tc.level, err)
		}
		if diff := cmp.Diff(tc.want, buf[len(inputData):]); diff != "" {
			t.Errorf("level %d mismatch (-want +got):\n%s", tc.level, diff)
		}
		if diff := cmp.Diff(inputData, buf[:len(inputData)]); diff != "" {
			t.Errorf("level %d: data modified (-want +got):\n%s", tc.level, diff)
		}
	}
}

func TestEncodeLevel8Ends(t *testing.T) {
	k := pdf417.ECCount(8)
	buf := make([]uint16, len(inputData)+k)
	copy(buf, inputData)
	if err := Default.Encode(buf, k); err != nil {
		t.Fatal(err)
	}
	ec := buf[len(inputData):]
	if diff := cmp.Diff([]uint16{538, 446, 840, 510, 163}, ec[:5]); diff != "" {
		t.Errorf("head mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint16{595, 430, 88}, ec[k-3:]); diff != "" {
		t.Errorf("tail mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeECMatchesEncode(t *testing.T) {
	for level := 0; level <= pdf417.MaxLevel; level++ {
		k := pdf417.ECCount(level)
		buf := make([]uint16, len(inputData)+k)
		copy(buf, inputData)
		if err := Default.Encode(buf, k); err != nil {
			t.Fatal(err)
		}
		ec := make([]uint16, k)
		if err := Default.ComputeEC(inputData, level, ec); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(buf[len(inputData):], ec); diff != "" {
			t.Errorf("level %d mismatch (-encode +compute):\n%s", level, diff)
		}
	}
}

func TestCheck(t *testing.T) {
	for level := 0; level <= pdf417.MaxLevel; level++ {
		k := pdf417.ECCount(level)
		buf := make([]uint16, len(inputData)+k)
		copy(buf, inputData)
		if err := Default.Encode(buf, k); err != nil {
			t.Fatal(err)
		}
		if !Check(buf, k) {
			t.Errorf("level %d: Check failed on encoded data", level)
		}
		buf[3] = (buf[3] + 1) % 929
		if Check(buf, k) {
			t.Errorf("level %d: Check passed on corrupted data", level)
		}
	}
}

func TestEncoderUsesItsField(t *testing.T) {
	// 27 = 3^3 also generates GF(929), giving different roots.
	other := NewEncoder(NewModulusGF(27))
	k := pdf417.ECCount(2)
	a := make([]uint16, len(inputData)+k)
	b := make([]uint16, len(inputData)+k)
	copy(a, inputData)
	copy(b, inputData)
	if err := Default.Encode(a, k); err != nil {
		t.Fatal(err)
	}
	if err := other.Encode(b, k); err != nil {
		t.Fatal(err)
	}
	if cmp.Equal(a, b) {
		t.Error("error correction does not depend on the field")
	}
	if !other.Check(b, k) {
		t.Error("codeword polynomial does not vanish at 27^1 ... 27^k")
	}
	if Check(b, k) {
		t.Error("codewords for another field pass the PDF417 check")
	}
}

func TestEncodeErrors(t *testing.T) {
	if err := Default.Encode(make([]uint16, 10), 3); !errors.Is(err, pdf417.ErrInvalidLevel) {
		t.Errorf("Encode with k=3: err = %v, want ErrInvalidLevel", err)
	}
	if err := Default.Encode(make([]uint16, 2), 2); !errors.Is(err, pdf417.ErrDimensionMismatch) {
		t.Errorf("Encode without data: err = %v, want ErrDimensionMismatch", err)
	}
	if err := Default.ComputeEC(inputData, 9, make([]uint16, 1024)); !errors.Is(err, pdf417.ErrInvalidLevel) {
		t.Errorf("ComputeEC level 9: err = %v, want ErrInvalidLevel", err)
	}
	if err := Default.ComputeEC(inputData, 1, make([]uint16, 3)); !errors.Is(err, pdf417.ErrDimensionMismatch) {
		t.Errorf("ComputeEC short output: err = %v, want ErrDimensionMismatch", err)
	}
}

func TestFieldInverse(t *testing.T) {
	gf := PDF417GF
	for a := 1; a < gf.Size(); a++ {
		if got := gf.Multiply(a, gf.Inverse(a)); got != 1 {
			t.Fatalf("%d * inverse(%d) = %d", a, a, got)
		}
	}
	if gf.Exp(1) != 3 || gf.Log(3) != 1 {
		t.Errorf("generator is not 3")
	}
}

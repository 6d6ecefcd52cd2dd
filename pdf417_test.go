package pdf417

import (
	"errors"
	"testing"
)

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		spec Spec
		want error
	}{
		{Spec{Rows: 3, Cols: 1}, nil},
		{Spec{Rows: 90, Cols: 30, Level: 8}, nil},
		{Spec{Rows: 2, Cols: 1}, ErrDimensionMismatch},
		{Spec{Rows: 91, Cols: 1}, ErrDimensionMismatch},
		{Spec{Rows: 3, Cols: 0}, ErrDimensionMismatch},
		{Spec{Rows: 3, Cols: 31}, ErrDimensionMismatch},
		{Spec{Rows: 3, Cols: 1, Level: 9}, ErrInvalidLevel},
		{Spec{Rows: 3, Cols: 1, Level: -1}, ErrInvalidLevel},
		{Spec{Rows: 11, Cols: 1, Variant: Micro}, nil},
		{Spec{Rows: 4, Cols: 4, Variant: Micro}, nil},
		{Spec{Rows: 12, Cols: 1, Variant: Micro}, ErrDimensionMismatch},
	}
	for _, tc := range tests {
		err := tc.spec.Validate()
		if tc.want == nil && err != nil || !errors.Is(err, tc.want) {
			t.Errorf("%+v: Validate() = %v, want %v", tc.spec, err, tc.want)
		}
	}
}

func TestECCount(t *testing.T) {
	for level, want := range map[int]int{-1: 0, 0: 2, 1: 4, 5: 64, 8: 512, 9: 0} {
		if got := ECCount(level); got != want {
			t.Errorf("ECCount(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestRowModules(t *testing.T) {
	tests := []struct {
		cols int
		v    Variant
		want int
	}{
		{1, Standard, 86},
		{30, Standard, 17*34 + 1},
		{1, Truncated, 52},
		{4, Truncated, 17*6 + 1},
		{1, Micro, 38},
		{2, Micro, 55},
		{3, Micro, 82},
		{4, Micro, 99},
	}
	for _, tc := range tests {
		if got := RowModules(tc.cols, tc.v); got != tc.want {
			t.Errorf("RowModules(%d, %s) = %d, want %d", tc.cols, tc.v, got, tc.want)
		}
	}
	if got := Width(2, 3, Standard); got != 3*RowModules(2, Standard) {
		t.Errorf("Width(2, 3) = %d", got)
	}
	if got := Height(5, 3); got != 15 {
		t.Errorf("Height(5, 3) = %d, want 15", got)
	}
	if x, y := DefaultScale(Micro); x != 1 || y != 2 {
		t.Errorf("DefaultScale(Micro) = %d, %d", x, y)
	}
	if x, y := DefaultScale(Truncated); x != 1 || y != 3 {
		t.Errorf("DefaultScale(Truncated) = %d, %d", x, y)
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{Standard, Truncated, Micro} {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
	if _, err := ParseVariant("macro"); err == nil {
		t.Error("ParseVariant(\"macro\") should fail")
	}
}

func TestMicroSizes(t *testing.T) {
	if MicroCount != 34 {
		t.Fatalf("MicroCount = %d, want 34", MicroCount)
	}
	for i := 0; i < MicroCount; i++ {
		m := MicroAt(i)
		if got, ok := LookupMicro(m.Rows, m.Cols); !ok || got != m {
			t.Errorf("LookupMicro(%d, %d) = %+v, %v", m.Rows, m.Cols, got, ok)
		}
		if m.DataCodewords() <= 0 {
			t.Errorf("%dx%d: no room for data", m.Rows, m.Cols)
		}
		if m.Cluster != 0 && m.Cluster != 3 && m.Cluster != 6 {
			t.Errorf("%dx%d: cluster %d", m.Rows, m.Cols, m.Cluster)
		}
		for _, rap := range []int{m.LeftRAP, m.RightRAP} {
			if rap < 1 || rap > 52 {
				t.Errorf("%dx%d: row address pattern %d", m.Rows, m.Cols, rap)
			}
		}
		if m.HasCentreRAP() != (m.CentreRAP != 0) {
			t.Errorf("%dx%d: centre row address pattern %d", m.Rows, m.Cols, m.CentreRAP)
		}
		if i > 0 {
			p := MicroAt(i - 1)
			if p.Cols > m.Cols || p.Cols == m.Cols && p.Rows >= m.Rows {
				t.Errorf("sizes out of order at #%d", i)
			}
		}
	}
}

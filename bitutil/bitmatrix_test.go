package bitutil

import (
	"bytes"
	"testing"
)

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(40, 10)
	bm.Set(3, 5)
	bm.Set(35, 9)
	if !bm.Get(3, 5) || !bm.Get(35, 9) {
		t.Error("set bits should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
	if got := bm.Row(5); !bytes.Equal(got, []byte{0x10, 0, 0, 0, 0}) {
		t.Errorf("Row(5) = %x", got)
	}
}

func TestFromModules(t *testing.T) {
	modules := []bool{
		true, false, true,
		false, true, false,
	}
	bm := FromModules(modules, 3, 2)
	if bm.Width() != 7 || bm.Height() != 6 {
		t.Fatalf("size %dx%d, want 7x6", bm.Width(), bm.Height())
	}
	want := "" +
		".......\n" +
		".......\n" +
		"..X.X..\n" +
		"...X...\n" +
		".......\n" +
		".......\n"
	if got := bm.StringWithChars("X", "."); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestBitMatrixInvert(t *testing.T) {
	bm := NewBitMatrixWithSize(5, 2)
	bm.Set(1, 1)
	bm.Invert()
	if bm.Get(1, 1) || !bm.Get(0, 0) || !bm.Get(4, 1) {
		t.Error("Invert should flip every bit")
	}
	if got := bm.Row(1); !bytes.Equal(got, []byte{0xb8}) {
		t.Errorf("padding bits leaked: Row(1) = %08b", got)
	}
}

func TestBitMatrixRotate90(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 3)
	bm.Set(3, 0) // top-right
	bm.Rotate90()
	// After 90 CCW: (3,0) -> (0,0) for a 3x4 matrix
	if bm.Width() != 3 || bm.Height() != 4 {
		t.Errorf("dimensions after 90 rotation: %dx%d, want 3x4", bm.Width(), bm.Height())
	}
	if !bm.Get(0, 0) {
		t.Error("(0,0) should be set after 90 rotation")
	}

	bm.Set(2, 3)
	want := bm.String()
	for i := 0; i < 4; i++ {
		bm.Rotate90()
	}
	if got := bm.String(); got != want {
		t.Errorf("four rotations changed the matrix:\n%s", got)
	}
}

func TestBitMatrixMirror(t *testing.T) {
	bm := FromModules([]bool{
		true, true, false, false, false,
		false, false, true, false, true,
	}, 5, 0)
	bm.Mirror()
	want := "" +
		"...XX\n" +
		"X.X..\n"
	if got := bm.StringWithChars("X", "."); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

package main

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/ericlevine/pdf417/bitutil"
)

func testMatrix() *bitutil.BitMatrix {
	m := bitutil.NewBitMatrixWithSize(3, 3)
	m.Set(0, 0)
	m.Set(2, 1)
	return m
}

func TestPBM(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, pbm(testMatrix(), &b))
	require.Equal(t, "P4\n3 3\n\x80\x20\x00", b.String())

	b.Reset()
	m := testMatrix()
	m.Invert()
	require.NoError(t, pbm(m, &b))
	require.Equal(t, "P4\n3 3\n\x60\xc0\xe0", b.String())
}

func TestASCII(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, encoders[4](testMatrix(), &b))
	require.Equal(t, "##    \n    ##\n      \n", b.String())
}

func TestUTF8Blocks(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, utf8Blocks(testMatrix(), &b))
	require.Equal(t, "▄█▀\n▀▀▀\n", b.String())
}

func TestImages(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, encoders[0](testMatrix(), &b))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	r, _, _, _ := img.At(0, 0).RGBA()
	require.Zero(t, r)
	r, _, _, _ = img.At(1, 0).RGBA()
	require.Equal(t, uint32(0xffff), r)

	b.Reset()
	m := testMatrix()
	m.Invert()
	require.NoError(t, encoders[1](m, &b))
	img, err = bmp.Decode(&b)
	require.NoError(t, err)
	require.Equal(t, 3, img.Bounds().Dx())
	r, _, _, _ = img.At(0, 0).RGBA()
	require.Equal(t, uint32(0xffff), r)
	r, _, _, _ = img.At(2, 1).RGBA()
	require.Zero(t, r)
}

func TestTextColumns(t *testing.T) {
	m := testMatrix()
	require.Equal(t, 3, textColumns(m, 3))
	require.Equal(t, 6, textColumns(m, 4))
}

func TestUsageMentionsScanners(t *testing.T) {
	var b bytes.Buffer
	printUsage(&b)
	require.Contains(t, b.String(), "not yet readable by standard scanners")
}

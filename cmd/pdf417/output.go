package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/ericlevine/pdf417/bitutil"
)

var formats = []string{
	"png", "pngi", "bmp", "bmpi", "pbm", "pbmi", "utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*bitutil.BitMatrix, io.Writer) error{
	func(m *bitutil.BitMatrix, w io.Writer) error { return png.Encode(w, grayImage(m)) },
	func(m *bitutil.BitMatrix, w io.Writer) error { return bmp.Encode(w, palettedImage(m)) },
	pbm,
	utf8Blocks,
	func(m *bitutil.BitMatrix, w io.Writer) error {
		_, err := io.WriteString(w, m.StringWithChars("##", "  "))
		return err
	},
}

func grayImage(m *bitutil.BitMatrix) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+m.Width()]
		for x := range row {
			if !m.Get(x, y) {
				row[x] = 0xff
			}
		}
	}
	return img
}

var palette = color.Palette{color.Gray{0xff}, color.Gray{0x00}}

// palettedImage is written by bmp.Encode as an 8-bit indexed image.
func palettedImage(m *bitutil.BitMatrix) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, m.Width(), m.Height()), palette)
	for y := 0; y < m.Height(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+m.Width()]
		for x := range row {
			if m.Get(x, y) {
				row[x] = 1
			}
		}
	}
	return img
}

// pbm writes a binary portable bitmap, where a set bit is black.
func pbm(m *bitutil.BitMatrix, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P4\n%d %d\n", m.Width(), m.Height())
	for y := 0; y < m.Height(); y++ {
		bw.Write(m.Row(y))
	}
	return bw.Flush()
}

// utf8Blocks prints two pixel rows per line using half block characters.
// Terminals draw text light on dark, so dark pixels are printed as blanks.
func utf8Blocks(m *bitutil.BitMatrix, w io.Writer) error {
	blocks := [4]string{"█", "▀", "▄", " "}
	bw := bufio.NewWriter(w)
	for y := 0; y < m.Height(); y += 2 {
		for x := 0; x < m.Width(); x++ {
			var i int
			if m.Get(x, y) {
				i |= 2
			}
			if y+1 == m.Height() || m.Get(x, y+1) {
				i |= 1
			}
			bw.WriteString(blocks[i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// textColumns returns the terminal columns a text format needs.
func textColumns(m *bitutil.BitMatrix, format int) int {
	if formats[format<<1] == "ascii" {
		return 2 * m.Width()
	}
	return m.Width()
}

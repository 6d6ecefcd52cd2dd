// Copyright 2011 ZXing authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package render

import "github.com/ericlevine/pdf417"

// maxRowModules is the width of the widest row: a standard symbol with the
// maximum number of data columns.
const maxRowModules = pdf417.ModulesInStartPattern + pdf417.ModulesInCodeword*(pdf417.MaxCols+2) + pdf417.ModulesInStopPattern

// barcodeRow holds the modules of a single symbol row. It lives on the
// stack of a render call.
type barcodeRow struct {
	row             [maxRowModules]bool
	currentLocation int
}

func (br *barcodeRow) reset() {
	br.currentLocation = 0
}

// addBar adds a bar (black or white) of the given width at the current
// location.
func (br *barcodeRow) addBar(black bool, width int) {
	for i := 0; i < width; i++ {
		br.row[br.currentLocation] = black
		br.currentLocation++
	}
}

// addPattern adds the low width bits of pattern, most significant first.
func (br *barcodeRow) addPattern(pattern uint32, width int) {
	for i := width - 1; i >= 0; i-- {
		br.row[br.currentLocation] = pattern>>uint(i)&1 == 1
		br.currentLocation++
	}
}

// modules returns the modules added since the last reset.
func (br *barcodeRow) modules() []bool {
	return br.row[:br.currentLocation]
}

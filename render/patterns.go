package render

import "github.com/ericlevine/pdf417"

const (
	// startPattern and stopPattern are read most significant bit first; a
	// set bit is a dark module.
	startPattern = 0b11111111010101000
	stopPattern  = 0b111111101000101001

	barsInRAP     = 6
	maxRAPElement = 5
	// rapCount is the number of row address patterns in each MicroPDF417
	// row address pattern set.
	rapCount = 52
)

// clusterPatterns[i][cw] is the 17-module pattern of codeword cw in cluster
// 3*i. A pattern has four bars and four spaces of width 1 to 6, starts with
// a bar and its cluster is (e1 - e3 + e5 - e7) mod 9 over its element widths.
//
// Values are assigned to patterns in lexicographic order of the element
// widths within each cluster.
var clusterPatterns [3][pdf417.NumberOfCodewords]uint32

// sideRAPs are the left and right MicroPDF417 row address patterns and
// centreRAPs the centre ones; six elements over 10 modules, bar first.
var (
	sideRAPs   [rapCount]uint16
	centreRAPs [rapCount]uint16
)

func init() {
	var filled [3]int
	var elems [pdf417.BarsInModule]int
	eachWidths(elems[:], 0, pdf417.ModulesInCodeword, 6, func(e []int) {
		c := clusterOf(e)
		if c%3 != 0 {
			return
		}
		i := c / 3
		if filled[i] < pdf417.NumberOfCodewords {
			clusterPatterns[i][filled[i]] = uint32(widthsToBits(e))
			filled[i]++
		}
	})

	var rap [barsInRAP]int
	n := 0
	eachWidths(rap[:], 0, pdf417.ModulesInRAP, maxRAPElement, func(e []int) {
		switch {
		case n < rapCount:
			sideRAPs[n] = uint16(widthsToBits(e))
		case n < 2*rapCount:
			centreRAPs[n-rapCount] = uint16(widthsToBits(e))
		}
		n++
	})
}

// eachWidths calls emit for every sequence of element widths in [1,
// maxWidth] filling elems[i:] and summing to remaining.
func eachWidths(elems []int, i, remaining, maxWidth int, emit func([]int)) {
	if i == len(elems) {
		if remaining == 0 {
			emit(elems)
		}
		return
	}
	for w := 1; w <= maxWidth && w <= remaining; w++ {
		elems[i] = w
		eachWidths(elems, i+1, remaining-w, maxWidth, emit)
	}
}

// clusterOf returns the cluster number of a codeword pattern given as its
// eight element widths.
func clusterOf(e []int) int {
	return ((e[0]-e[2]+e[4]-e[6])%9 + 9) % 9
}

func widthsToBits(e []int) uint64 {
	var bits uint64
	dark := uint64(1)
	for _, w := range e {
		for j := 0; j < w; j++ {
			bits = bits<<1 | dark
		}
		dark ^= 1
	}
	return bits
}

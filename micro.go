package pdf417

// MicroSize is one of the 34 MicroPDF417 symbol sizes.
//
// LeftRAP, CentreRAP and RightRAP are the 1-based row address patterns of
// the first row; Cluster is the cluster (0, 3 or 6) of the first row. Each
// following row advances the row address patterns by one (modulo 52) and
// the cluster by one cluster step.
type MicroSize struct {
	Cols      int
	Rows      int
	EC        int
	LeftRAP   int
	CentreRAP int
	RightRAP  int
	Cluster   int
}

// Codewords returns the total number of codewords of the symbol.
func (m MicroSize) Codewords() int { return m.Rows * m.Cols }

// DataCodewords returns the number of codewords available for data.
func (m MicroSize) DataCodewords() int { return m.Rows*m.Cols - m.EC }

// HasCentreRAP reports whether rows carry a centre row address pattern.
func (m MicroSize) HasCentreRAP() bool { return m.Cols >= 3 }

// MicroCount is the number of MicroPDF417 sizes.
const MicroCount = len(microSizes)

var microSizes = [...]MicroSize{
	{1, 11, 7, 1, 0, 9, 0},
	{1, 14, 7, 8, 0, 8, 3},
	{1, 17, 7, 36, 0, 36, 6},
	{1, 20, 8, 19, 0, 19, 0},
	{1, 24, 8, 9, 0, 17, 6},
	{1, 28, 8, 25, 0, 33, 0},

	{2, 8, 8, 1, 0, 1, 0},
	{2, 11, 9, 1, 0, 9, 0},
	{2, 14, 9, 8, 0, 8, 3},
	{2, 17, 10, 36, 0, 36, 6},
	{2, 20, 11, 19, 0, 19, 0},
	{2, 23, 13, 9, 0, 17, 6},
	{2, 26, 15, 27, 0, 35, 6},

	{3, 6, 12, 1, 1, 1, 0},
	{3, 8, 14, 7, 7, 7, 0},
	{3, 10, 16, 15, 15, 15, 6},
	{3, 12, 18, 25, 25, 25, 0},
	{3, 15, 21, 37, 37, 37, 0},
	{3, 20, 26, 1, 17, 33, 0},
	{3, 26, 32, 1, 9, 17, 0},
	{3, 32, 38, 21, 29, 37, 6},
	{3, 38, 44, 15, 31, 47, 6},
	{3, 44, 50, 1, 25, 49, 0},

	{4, 4, 8, 47, 19, 43, 3},
	{4, 6, 12, 1, 1, 1, 0},
	{4, 8, 14, 7, 7, 7, 0},
	{4, 10, 16, 15, 15, 15, 6},
	{4, 12, 18, 25, 25, 25, 0},
	{4, 15, 21, 37, 37, 37, 0},
	{4, 20, 26, 1, 17, 33, 0},
	{4, 26, 32, 1, 9, 17, 0},
	{4, 32, 38, 21, 29, 37, 6},
	{4, 38, 44, 15, 31, 47, 6},
	{4, 44, 50, 1, 25, 49, 0},
}

// MicroAt returns the i-th MicroPDF417 size, ordered by columns then rows.
func MicroAt(i int) MicroSize {
	return microSizes[i]
}

// LookupMicro returns the MicroPDF417 size with the given shape.
func LookupMicro(rows, cols int) (MicroSize, bool) {
	for _, m := range microSizes {
		if m.Rows == rows && m.Cols == cols {
			return m, true
		}
	}
	return MicroSize{}, false
}

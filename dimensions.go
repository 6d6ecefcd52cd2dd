package pdf417

// RowModules returns the width in modules of one row of a symbol with cols
// data columns.
func RowModules(cols int, v Variant) int {
	switch v {
	case Truncated:
		// start, left indicator, data, one-module stop bar
		return ModulesInStartPattern + ModulesInCodeword*(cols+1) + 1
	case Micro:
		w := 2*ModulesInRAP + ModulesInCodeword*cols + 1
		if cols >= 3 {
			w += ModulesInRAP
		}
		return w
	default:
		return ModulesInStartPattern + ModulesInCodeword*(cols+2) + ModulesInStopPattern
	}
}

// Width returns the width of the rendered symbol in pixels.
func Width(cols, scaleX int, v Variant) int {
	return RowModules(cols, v) * scaleX
}

// Height returns the height of the rendered symbol in pixels.
func Height(rows, scaleY int) int {
	return rows * scaleY
}

// DefaultScale returns the module width and height multipliers used when
// none are given. MicroPDF417 rows are two modules high.
func DefaultScale(v Variant) (x, y int) {
	if v == Micro {
		return 1, 2
	}
	return 1, 3
}

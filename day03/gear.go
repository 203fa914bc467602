package day03

// A Gear is a '*' symbol that touches exactly two numbers.
type Gear struct {
	Row, Col int
	Parts    [2]Number
}

func (g Gear) Ratio() uint64 {
	return g.Parts[0].Value * g.Parts[1].Value
}

// Gears returns the gears of g in row-major order. numbers must be the
// result of FindNumbers(g).
func Gears(g Grid, numbers []Number) []Gear {
	var gears []Gear
	for r, row := range g {
		for c, slot := range row {
			if !slot.IsSymbol() || slot.Rune() != '*' {
				continue
			}
			adj := adjacentNumbers(g, numbers, r, c)
			if len(adj) != 2 {
				continue
			}
			gears = append(gears, Gear{Row: r, Col: c, Parts: [2]Number{adj[0], adj[1]}})
		}
	}
	return gears
}

// adjacentNumbers returns the numbers touching the cell at (row, col).
func adjacentNumbers(g Grid, numbers []Number, row, col int) []Number {
	r0, r1 := clampRows(g, row)
	c0, c1 := clampCols(g[row], col, col)
	var adj []Number
	for _, n := range numbers {
		if n.Span.Row < r0 || n.Span.Row > r1 {
			continue
		}
		if n.Span.Overlaps(c0, c1) {
			adj = append(adj, n)
		}
	}
	return adj
}

package day03

// A Span locates a run of digits within a single row. End is inclusive.
type Span struct {
	Row   int
	Start int
	End   int
}

// Overlaps reports whether the inclusive column ranges [s.Start, s.End]
// and [start, end] share at least one column.
func (s Span) Overlaps(start, end int) bool {
	return s.Start <= end && start <= s.End
}

type Number struct {
	Value uint64
	Span  Span
}

// numberBuilder accumulates the digits of one row into Numbers.
// It is idle until the first digit is pushed and accumulating afterwards;
// flush emits the pending Number (if any) and returns to idle.
type numberBuilder struct {
	row          int
	value        uint64
	start, end   int
	accumulating bool
}

func (b *numberBuilder) push(col int, digit uint64) {
	if !b.accumulating {
		b.accumulating = true
		b.start = col
	}
	b.end = col
	b.value = b.value*10 + digit
}

func (b *numberBuilder) flush(numbers []Number) []Number {
	if !b.accumulating {
		return numbers
	}
	numbers = append(numbers, Number{
		Value: b.value,
		Span:  Span{Row: b.row, Start: b.start, End: b.end},
	})
	b.reset(b.row)
	return numbers
}

func (b *numberBuilder) reset(row int) {
	*b = numberBuilder{row: row}
}

// FindNumbers returns every maximal horizontal run of digits in g, in
// row-major order. Runs never continue across rows.
func FindNumbers(g Grid) []Number {
	var numbers []Number
	var b numberBuilder
	for r, row := range g {
		b.reset(r)
		for c, slot := range row {
			if slot.Kind() == Digit {
				b.push(c, slot.Value())
				continue
			}
			numbers = b.flush(numbers)
		}
		numbers = b.flush(numbers)
	}
	return numbers
}

// AdjacentToSymbol reports whether any slot touching n, diagonals
// included, is a Symbol.
func (n Number) AdjacentToSymbol(g Grid) bool {
	r0, r1 := clampRows(g, n.Span.Row)
	for r := r0; r <= r1; r++ {
		row := g[r]
		c0, c1 := clampCols(row, n.Span.Start, n.Span.End)
		for c := c0; c <= c1; c++ {
			if row[c].IsSymbol() {
				return true
			}
		}
	}
	return false
}

// clampRows returns the inclusive row range [row-1, row+1] limited to g.
func clampRows(g Grid, row int) (lo, hi int) {
	return max(row-1, 0), min(row+1, len(g)-1)
}

// clampCols returns the inclusive column range [start-1, end+1] limited
// to row. If row is empty, hi < lo.
func clampCols(row []Slot, start, end int) (lo, hi int) {
	return max(start-1, 0), min(end+1, len(row)-1)
}

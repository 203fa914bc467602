package day03

import (
	"testing"

	"github.com/kr/pretty"
)

const sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func TestPart1(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  uint64
	}{
		{sample, 4361},
		{sample + "\n", 4361},
		{"", 0},
		{"12\n..#", 12},
		{"1\n...#", 0},
		{"#1..2", 1},
		{"5\n\n#", 0},
		{"..\n.7\n", 0},
		{"9\n$", 9},
	} {
		got, err := Part1(tt.input)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Part1(%q): got %d; want %d", tt.input, got, tt.want)
		}
	}
}

func TestPart2(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  uint64
	}{
		{sample, 467835},
		{"", 0},
		{"*2\n3.", 6},
		{"12345\n..*..\n...6.", 74070},
		{"1.1\n.*.\n1.1", 0},
		{"2*3*4", 18},
		{"10..\n..*.\n...", 0},
	} {
		got, err := Part2(tt.input)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Part2(%q): got %d; want %d", tt.input, got, tt.want)
		}
	}
}

func TestIdempotent(t *testing.T) {
	for _, part := range []func(string) (uint64, error){Part1, Part2} {
		first, err := part(sample)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 3; i++ {
			got, err := part(sample)
			if err != nil {
				t.Fatal(err)
			}
			if got != first {
				t.Fatalf("run %d: got %d; want %d", i, got, first)
			}
		}
	}
}

func TestFindNumbers(t *testing.T) {
	g := ParseGrid("467..114..\n...*......\n..35..633.\n12\n34")
	got := FindNumbers(g)
	want := []Number{
		{467, Span{Row: 0, Start: 0, End: 2}},
		{114, Span{Row: 0, Start: 5, End: 7}},
		{35, Span{Row: 2, Start: 2, End: 3}},
		{633, Span{Row: 2, Start: 6, End: 8}},
		{12, Span{Row: 3, Start: 0, End: 1}},
		{34, Span{Row: 4, Start: 0, End: 1}},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("FindNumbers: got/want diff:\n%s", diff)
	}
}

func TestFindNumbersPartition(t *testing.T) {
	for _, input := range []string{
		sample,
		"1234567890",
		"1.2.3\n45#67\n.....\n8",
		"*\n\n99\n0",
		"..\n..",
	} {
		g := ParseGrid(input)
		covered := make([][]int, len(g))
		for r, row := range g {
			covered[r] = make([]int, len(row))
		}
		for _, n := range FindNumbers(g) {
			s := n.Span
			if s.Start > s.End {
				t.Errorf("%q: span %+v has start > end", input, s)
				continue
			}
			if s.Row < 0 || s.Row >= len(g) || s.Start < 0 || s.End >= len(g[s.Row]) {
				t.Errorf("%q: span %+v out of bounds", input, s)
				continue
			}
			var v uint64
			for c := s.Start; c <= s.End; c++ {
				covered[s.Row][c]++
				v = v*10 + g[s.Row][c].Value()
			}
			if v != n.Value {
				t.Errorf("%q: number at %+v has value %d; digits say %d", input, s, n.Value, v)
			}
		}
		for r, row := range g {
			for c, slot := range row {
				want := 0
				if slot.Kind() == Digit {
					want = 1
				}
				if got := covered[r][c]; got != want {
					t.Errorf("%q: cell (%d, %d) is in %d numbers; want %d", input, r, c, got, want)
				}
			}
		}
	}
}

func TestSpanOverlaps(t *testing.T) {
	s := Span{Row: 0, Start: 2, End: 4}
	for _, tt := range []struct {
		start, end int
		want       bool
	}{
		{0, 1, false},
		{0, 2, true},  // touches start
		{4, 6, true},  // touches end
		{3, 3, true},  // inside
		{1, 5, true},  // contains
		{2, 4, true},  // equal
		{5, 7, false}, // after
	} {
		if got := s.Overlaps(tt.start, tt.end); got != tt.want {
			t.Errorf("%+v.Overlaps(%d, %d): got %t; want %t", s, tt.start, tt.end, got, tt.want)
		}
		// Overlap is symmetric.
		other := Span{Start: tt.start, End: tt.end}
		if got := other.Overlaps(s.Start, s.End); got != tt.want {
			t.Errorf("%+v.Overlaps(%d, %d): got %t; want %t", other, s.Start, s.End, got, tt.want)
		}
	}
}

func TestGears(t *testing.T) {
	g := ParseGrid(sample)
	got := Gears(g, FindNumbers(g))
	want := []Gear{
		{Row: 1, Col: 3, Parts: [2]Number{
			{467, Span{Row: 0, Start: 0, End: 2}},
			{35, Span{Row: 2, Start: 2, End: 3}},
		}},
		{Row: 8, Col: 5, Parts: [2]Number{
			{755, Span{Row: 7, Start: 6, End: 8}},
			{598, Span{Row: 9, Start: 5, End: 7}},
		}},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("Gears: got/want diff:\n%s", diff)
	}
	if got, want := want[0].Ratio(), uint64(16345); got != want {
		t.Errorf("Ratio: got %d; want %d", got, want)
	}
}

func TestParseGrid(t *testing.T) {
	g := ParseGrid("4.*\r\n#9")
	want := [][]SlotKind{{Digit, Empty, Symbol}, {Symbol, Digit}}
	if len(g) != len(want) {
		t.Fatalf("got %d rows; want %d", len(g), len(want))
	}
	for r := range want {
		if len(g[r]) != len(want[r]) {
			t.Fatalf("row %d: got %d slots; want %d", r, len(g[r]), len(want[r]))
		}
		for c, k := range want[r] {
			if got := g[r][c].Kind(); got != k {
				t.Errorf("(%d, %d): got %s; want %s", r, c, got, k)
			}
		}
	}
	if got := g[1][1].Value(); got != 9 {
		t.Errorf("got %d; want 9", got)
	}
	if got := g[0][2].Rune(); got != '*' {
		t.Errorf("got %q; want '*'", got)
	}
	if got, want := g.String(), "4.*\n#9"; got != want {
		t.Errorf("String: got %q; want %q", got, want)
	}
}

package day03

// Part1 returns the sum of all numbers adjacent to a symbol.
func Part1(input string) (uint64, error) {
	g := ParseGrid(input)
	var sum uint64
	for _, n := range FindNumbers(g) {
		if n.AdjacentToSymbol(g) {
			sum += n.Value
		}
	}
	return sum, nil
}

// Part2 returns the sum of all gear ratios.
func Part2(input string) (uint64, error) {
	g := ParseGrid(input)
	var sum uint64
	for _, gear := range Gears(g, FindNumbers(g)) {
		sum += gear.Ratio()
	}
	return sum, nil
}

// Schematic is the parsed form of an input, for debugging.
type Schematic struct {
	Numbers []Number
	Gears   []Gear
}

func Parse(input string) (any, error) {
	g := ParseGrid(input)
	numbers := FindNumbers(g)
	return Schematic{Numbers: numbers, Gears: Gears(g, numbers)}, nil
}

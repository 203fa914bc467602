package day02

// Part1 returns the sum of the IDs of the games that are possible with
// DefaultLimit.
func Part1(input string) (uint64, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}
	var sum uint64
	for _, g := range games {
		if g.Possible(DefaultLimit) {
			sum += g.ID
		}
	}
	return sum, nil
}

// Part2 returns the sum of the powers of each game's minimum bag.
func Part2(input string) (uint64, error) {
	games, err := ParseGames(input)
	if err != nil {
		return 0, err
	}
	var sum uint64
	for _, g := range games {
		sum += g.MinimumBag().Power()
	}
	return sum, nil
}

func Parse(input string) (any, error) {
	return ParseGames(input)
}

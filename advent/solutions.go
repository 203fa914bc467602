package main

import (
	"github.com/cespare/aoc2023/day01"
	"github.com/cespare/aoc2023/day02"
	"github.com/cespare/aoc2023/day03"
)

func init() {
	registerDay(1, day01.Part1, day01.Part2, day01.Parse)
	registerDay(2, day02.Part1, day02.Part2, day02.Parse)
	registerDay(3, day03.Part1, day03.Part2, day03.Parse)
}

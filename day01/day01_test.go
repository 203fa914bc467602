package day01

import (
	"errors"
	"testing"
)

const sample1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`

const sample2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen`

func TestPart1(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  uint64
	}{
		{sample1, 142},
		{sample1 + "\n", 142},
		{"", 0},
		{"7", 77},
		{"a9b\r\nc1d", 99 + 11},
	} {
		got, err := Part1(tt.input)
		if err != nil {
			t.Fatalf("Part1(%q): %s", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Part1(%q): got %d; want %d", tt.input, got, tt.want)
		}
	}
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample2)
	if err != nil {
		t.Fatal(err)
	}
	if want := uint64(281); got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestLineValue(t *testing.T) {
	for _, tt := range []struct {
		line string
		want uint64
	}{
		{"two1nine", 29},
		{"eightwothree", 83},
		{"abcone2threexyz", 13},
		{"xtwone3four", 24},
		{"4nineeightseven2", 42},
		{"zoneight234", 14},
		{"7pqrstsixteen", 76},
		// Overlapping words both count.
		{"twone", 21},
		{"oneight", 18},
		{"nine", 99},
		{"fivezero", 55},
	} {
		got, err := digitsAndWords.value(tt.line)
		if err != nil {
			t.Fatalf("%q: %s", tt.line, err)
		}
		if got != tt.want {
			t.Errorf("%q: got %d; want %d", tt.line, got, tt.want)
		}
	}
}

func TestNoDigit(t *testing.T) {
	for _, tt := range []struct {
		part  func(string) (uint64, error)
		input string
	}{
		{Part1, "1abc2\nabc"},
		{Part1, "one"},
		{Part2, "zero"},
	} {
		_, err := tt.part(tt.input)
		if !errors.Is(err, ErrNoDigit) {
			t.Errorf("%q: got err %v; want ErrNoDigit", tt.input, err)
		}
	}
}

func TestParse(t *testing.T) {
	v, err := Parse(sample2)
	if err != nil {
		t.Fatal(err)
	}
	values := v.([]uint64)
	want := []uint64{29, 83, 13, 24, 42, 14, 76}
	if len(values) != len(want) {
		t.Fatalf("got %d values; want %d", len(values), len(want))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("line %d: got %d; want %d", i+1, values[i], want[i])
		}
	}
}

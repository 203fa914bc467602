// Package day01 recovers calibration values from lines of text.
package day01

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDigit is returned (wrapped) for a line without any digit.
var ErrNoDigit = errors.New("no digit found")

// Part1 sums the two-digit numbers formed by the first and last ASCII
// digit of every line.
func Part1(input string) (uint64, error) {
	return sumLines(input, digitsOnly)
}

// Part2 is like Part1 but also recognizes digits spelled out as words.
// Words may overlap: "twone" yields 2 and then 1.
func Part2(input string) (uint64, error) {
	return sumLines(input, digitsAndWords)
}

type scanner struct {
	first func(string) (uint64, bool)
	last  func(string) (uint64, bool)
}

var (
	digitsOnly     = scanner{first: firstDigit, last: lastDigit}
	digitsAndWords = scanner{first: firstDigitOrWord, last: lastDigitOrWord}
)

func sumLines(input string, s scanner) (uint64, error) {
	values, err := s.values(input)
	if err != nil {
		return 0, err
	}
	var sum uint64
	for _, v := range values {
		sum += v
	}
	return sum, nil
}

// values returns the calibration value of each non-blank line.
func (s scanner) values(input string) ([]uint64, error) {
	var values []uint64
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		v, err := s.value(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func (s scanner) value(line string) (uint64, error) {
	first, ok := s.first(line)
	if !ok {
		return 0, fmt.Errorf("%w in %q", ErrNoDigit, line)
	}
	last, _ := s.last(line)
	return first*10 + last, nil
}

func digitVal(c byte) (uint64, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return uint64(c - '0'), true
}

func firstDigit(line string) (uint64, bool) {
	for i := 0; i < len(line); i++ {
		if d, ok := digitVal(line[i]); ok {
			return d, true
		}
	}
	return 0, false
}

func lastDigit(line string) (uint64, bool) {
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitVal(line[i]); ok {
			return d, true
		}
	}
	return 0, false
}

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// firstDigitOrWord grows a prefix of line one byte at a time and stops at
// the first prefix that ends in a digit or a digit word.
func firstDigitOrWord(line string) (uint64, bool) {
	for n := 1; n <= len(line); n++ {
		if d, ok := digitVal(line[n-1]); ok {
			return d, true
		}
		prefix := line[:n]
		for i, w := range words {
			if strings.HasSuffix(prefix, w) {
				return uint64(i + 1), true
			}
		}
	}
	return 0, false
}

// lastDigitOrWord is the mirror image of firstDigitOrWord: it grows a
// suffix of line and checks whether it starts with a digit or digit word.
func lastDigitOrWord(line string) (uint64, bool) {
	for n := 1; n <= len(line); n++ {
		if d, ok := digitVal(line[len(line)-n]); ok {
			return d, true
		}
		suffix := line[len(line)-n:]
		for i, w := range words {
			if strings.HasPrefix(suffix, w) {
				return uint64(i + 1), true
			}
		}
	}
	return 0, false
}

// Parse returns the part 2 calibration value of every line, for
// debugging.
func Parse(input string) (any, error) {
	return digitsAndWords.values(input)
}

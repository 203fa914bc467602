// Package day03 solves the engine schematic puzzle: finding numbers in a
// character grid and checking what symbols they touch.
package day03

import (
	"fmt"
	"strings"
)

type SlotKind uint8

const (
	Empty SlotKind = iota
	Symbol
	Digit
)

func (k SlotKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Symbol:
		return "symbol"
	case Digit:
		return "digit"
	default:
		return fmt.Sprintf("SlotKind(%d)", uint8(k))
	}
}

// A Slot is a single cell of a Grid. The zero Slot is Empty.
type Slot struct {
	kind SlotKind
	c    rune
}

func EmptySlot() Slot { return Slot{} }
func SymbolSlot(c rune) Slot { return Slot{kind: Symbol, c: c} }

// DigitSlot returns a Digit slot for d, which must be in [0, 9].
func DigitSlot(d uint64) Slot {
	if d > 9 {
		panic(fmt.Sprintf("day03: bad digit %d", d))
	}
	return Slot{kind: Digit, c: '0' + rune(d)}
}

func (s Slot) Kind() SlotKind { return s.kind }
func (s Slot) IsSymbol() bool { return s.kind == Symbol }

// Rune returns the character the slot was parsed from.
func (s Slot) Rune() rune {
	if s.kind == Empty {
		return '.'
	}
	return s.c
}

// Value returns the digit value of a Digit slot and 0 otherwise.
func (s Slot) Value() uint64 {
	if s.kind != Digit {
		return 0
	}
	return uint64(s.c - '0')
}

func (s Slot) String() string {
	return string(s.Rune())
}

// A Grid is a row-major schematic. Rows need not have equal length.
type Grid [][]Slot

// ParseGrid converts text into a Grid. Every character that is neither an
// ASCII digit nor '.' becomes a Symbol, so parsing never fails.
func ParseGrid(input string) Grid {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	g := make(Grid, len(lines))
	for i, line := range lines {
		g[i] = parseRow(strings.TrimSuffix(line, "\r"))
	}
	return g
}

func parseRow(line string) []Slot {
	row := make([]Slot, 0, len(line))
	for _, c := range line {
		switch {
		case c >= '0' && c <= '9':
			row = append(row, DigitSlot(uint64(c-'0')))
		case c == '.':
			row = append(row, EmptySlot())
		default:
			row = append(row, SymbolSlot(c))
		}
	}
	return row
}

func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, s := range row {
			b.WriteString(s.String())
		}
	}
	return b.String()
}

// Package day02 parses cube game records and checks them against bag
// limits.
package day02

import (
	"fmt"
	"strconv"
	"strings"
)

// A Bag holds a count of cubes per color. It describes both one revealed
// handful (a clause of a game record) and a bag's capacity.
type Bag struct {
	Red   uint64
	Green uint64
	Blue  uint64
}

// DefaultLimit is the bag the elf proposes in part 1.
var DefaultLimit = Bag{Red: 12, Green: 13, Blue: 14}

// Within reports whether every count of b is at most the count in limit.
func (b Bag) Within(limit Bag) bool {
	return b.Red <= limit.Red && b.Green <= limit.Green && b.Blue <= limit.Blue
}

func (b Bag) Power() uint64 {
	return b.Red * b.Green * b.Blue
}

type Game struct {
	ID   uint64
	Bags []Bag
}

// Possible reports whether all of g's handfuls fit in limit.
func (g Game) Possible(limit Bag) bool {
	for _, b := range g.Bags {
		if !b.Within(limit) {
			return false
		}
	}
	return true
}

// MinimumBag returns the smallest bag that makes g possible.
func (g Game) MinimumBag() Bag {
	var m Bag
	for _, b := range g.Bags {
		m.Red = max(m.Red, b.Red)
		m.Green = max(m.Green, b.Green)
		m.Blue = max(m.Blue, b.Blue)
	}
	return m
}

// A ParseError describes a malformed game record. Line and Col are
// 1-based; Line is 0 when the record was parsed on its own.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("col %d: %s", e.Col, e.Msg)
	}
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

// ParseGame parses one record of the form
//
//	Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red
//
// Counts of a color repeated within one handful are added together.
func ParseGame(line string) (Game, error) {
	p := &parser{s: line}
	g, err := p.game()
	if err != nil {
		return Game{}, err
	}
	return g, nil
}

// ParseGames parses every non-blank line of input.
func ParseGames(input string) ([]Game, error) {
	var games []Game
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Line = i + 1
			}
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Col: p.pos + 1, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) game() (Game, error) {
	var g Game
	if err := p.expect("Game "); err != nil {
		return g, err
	}
	id, err := p.number()
	if err != nil {
		return g, err
	}
	g.ID = id
	if err := p.expect(": "); err != nil {
		return g, err
	}
	if p.pos == len(p.s) {
		return g, nil
	}
	for {
		b, err := p.bag()
		if err != nil {
			return g, err
		}
		g.Bags = append(g.Bags, b)
		if !p.accept("; ") {
			break
		}
	}
	if p.pos != len(p.s) {
		return g, p.errorf("unexpected %q", p.s[p.pos:])
	}
	return g, nil
}

func (p *parser) bag() (Bag, error) {
	var b Bag
	for {
		n, err := p.number()
		if err != nil {
			return b, err
		}
		if err := p.expect(" "); err != nil {
			return b, err
		}
		switch {
		case p.accept("red"):
			b.Red += n
		case p.accept("green"):
			b.Green += n
		case p.accept("blue"):
			b.Blue += n
		default:
			return b, p.errorf("expected color")
		}
		if !p.accept(", ") {
			return b, nil
		}
	}
}

func (p *parser) number() (uint64, error) {
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected number")
	}
	n, err := strconv.ParseUint(p.s[start:p.pos], 10, 64)
	if err != nil {
		p.pos = start
		return 0, p.errorf("bad number: %s", err)
	}
	return n, nil
}

func (p *parser) accept(tok string) bool {
	if !strings.HasPrefix(p.s[p.pos:], tok) {
		return false
	}
	p.pos += len(tok)
	return true
}

func (p *parser) expect(tok string) error {
	if !p.accept(tok) {
		return p.errorf("expected %q", tok)
	}
	return nil
}

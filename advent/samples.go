package main

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed samples.md
var samplesSource []byte

type sample struct {
	name  string // solution name, like "3b"
	want  string
	input string
	line  int // line of the opening fence in the markdown source
}

// parseSamples extracts every fenced code block whose info string is of
// the form "<solution> want=<answer>". Other code blocks are ignored.
func parseSamples(source []byte) ([]sample, error) {
	var samples []sample
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok || block.Info == nil {
			return ast.WalkContinue, nil
		}
		info := block.Info.Segment
		s, ok, err := parseSampleInfo(string(info.Value(source)))
		if err != nil {
			line, _ := lineColFromOffset(source, info.Start)
			return ast.WalkStop, fmt.Errorf("samples:%d: %s", line, err)
		}
		if !ok {
			return ast.WalkContinue, nil
		}
		s.line, _ = lineColFromOffset(source, info.Start)
		var b strings.Builder
		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(source))
		}
		s.input = b.String()
		samples = append(samples, s)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func parseSampleInfo(info string) (s sample, ok bool, err error) {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return s, false, nil
	}
	if _, registered := solutions[fields[0]]; !registered {
		return s, false, nil
	}
	s.name = fields[0]
	for _, f := range fields[1:] {
		k, v, found := strings.Cut(f, "=")
		if !found || k != "want" {
			return s, false, fmt.Errorf("bad attribute %q for %s", f, s.name)
		}
		if _, err := strconv.ParseUint(v, 10, 64); err != nil {
			return s, false, fmt.Errorf("bad want value %q for %s", v, s.name)
		}
		s.want = v
	}
	if s.want == "" {
		return s, false, fmt.Errorf("sample for %s has no want=", s.name)
	}
	return s, true, nil
}

// lineColFromOffset converts a byte offset in source into a 1-based line
// and column.
func lineColFromOffset(source []byte, offset int) (line, col int) {
	line = 1
	col = 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// check runs every embedded sample and reports the ones that give the
// wrong answer.
func (r *runner) check() error {
	samples, err := parseSamples(samplesSource)
	if err != nil {
		return err
	}
	return r.checkSamples(samples)
}

func (r *runner) checkSamples(samples []sample) error {
	var failed int
	for _, s := range samples {
		v, err := solutions[s.name](s.input)
		var got string
		if err != nil {
			got = "error: " + err.Error()
		} else {
			got = strconv.FormatUint(v, 10)
		}
		if got != s.want {
			failed++
			fmt.Fprintf(r.stdout, "FAIL %s (samples.md:%d): got %s; want %s\n", s.name, s.line, got, s.want)
			continue
		}
		fmt.Fprintf(r.stdout, "ok   %s (samples.md:%d)\n", s.name, s.line)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d samples failed", failed, len(samples))
	}
	return nil
}

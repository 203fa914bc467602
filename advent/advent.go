package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

func main() {
	log.SetFlags(0)
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		configPath = flag.String("config", defaultConfigPath(), "Path to INI config file")
		inputFlag  = flag.String("input", "", "Input file (- for stdin); default is <input_dir>/<day>.txt")
		inputDir   = flag.String("dir", "", "Directory holding puzzle inputs (overrides config)")
		human      = flag.Bool("human", false, "Print answers with thousands separators")
		profile    = flag.String("profile", "", "Write a wall-clock profile (pprof format) to this file")
	)
	flag.Usage = usage
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.inputDir = *inputDir
		case "human":
			cfg.human = *human
		}
	})

	r := &runner{
		inputDir: cfg.inputDir,
		input:    *inputFlag,
		human:    cfg.human,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}
	args := flag.Args()
	if len(args) == 0 {
		if !isTerminal(os.Stdin) {
			flag.Usage()
			os.Exit(1)
		}
		args = []string{"repl"}
	}

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			return err
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Println("Error writing profile:", err)
			}
		}()
	}

	switch args[0] {
	case "all":
		return r.runAll()
	case "check":
		return r.check()
	case "repl":
		return r.repl(cfg.history)
	case "dump":
		if len(args) != 2 {
			return errors.New("usage: advent dump <day>")
		}
		return r.dump(args[1])
	case "add":
		if len(args) != 3 {
			return errors.New("usage: advent add <day> <file>")
		}
		return r.add(args[1], args[2])
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments after %q", args[0])
	}
	return r.solve(args[0])
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution | all | check | repl | dump <day> | add <day> <file>]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// A solution computes one puzzle answer from the full input text.
type solution func(input string) (uint64, error)

var (
	solutions = make(map[string]solution)
	parsers   = make(map[int]func(string) (any, error))
)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// registerDay registers both parts of a day as "<n>a" and "<n>b", along
// with the parser used by dump.
func registerDay(n int, part1, part2 solution, parse func(string) (any, error)) {
	register(strconv.Itoa(n)+"a", part1)
	register(strconv.Itoa(n)+"b", part2)
	if _, ok := parsers[n]; ok {
		panic(fmt.Sprintf("duplicate parsers registered for day %d", n))
	}
	parsers[n] = parse
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

type runner struct {
	inputDir string
	input    string // explicit input file; overrides inputDir
	human    bool
	stdin    io.Reader
	stdout   io.Writer
}

func (r *runner) solve(name string) error {
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	day, _ := splitName(name)
	input, err := r.readInput(day)
	if err != nil {
		return err
	}
	v, err := fn(input)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Fprintf(r.stdout, "answer = %s\n", r.format(v))
	return nil
}

func (r *runner) format(v uint64) string {
	if r.human && v <= 1<<63-1 {
		return humanize.Comma(int64(v))
	}
	return strconv.FormatUint(v, 10)
}

func (r *runner) dump(arg string) error {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("bad day %q", arg)
	}
	parse, ok := parsers[day]
	if !ok {
		return fmt.Errorf("no parser for day %d", day)
	}
	input, err := r.readInput(day)
	if err != nil {
		return err
	}
	v, err := parse(input)
	if err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}
	_, err = pretty.Fprintf(r.stdout, "%# v\n", v)
	return err
}

func (r *runner) readInput(day int) (string, error) {
	switch r.input {
	case "-":
		b, err := io.ReadAll(r.stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %s", err)
		}
		return string(b), nil
	case "":
		return readFile(inputPath(r.inputDir, day))
	default:
		return readFile(r.input)
	}
}

func inputPath(dir string, day int) string {
	return filepath.Join(dir, strconv.Itoa(day)+".txt")
}

func readFile(name string) (string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

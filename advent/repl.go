package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"
)

func (r *runner) repl(historyFile string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "advent> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		quit, err := r.replCommand(line)
		if err != nil {
			log.Println(err)
		}
		if quit {
			return nil
		}
	}
}

// replCommand runs one line typed at the prompt:
//
//	<solution> [input file]
//	all | check | list | dump <day> | quit
func (r *runner) replCommand(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "list":
		fmt.Fprintln(r.stdout, strings.Join(solutionNames(), " "))
		return false, nil
	case "all":
		return false, r.runAll()
	case "check":
		return false, r.check()
	case "dump":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: dump <day>")
		}
		return false, r.dump(fields[1])
	}
	if len(fields) > 2 {
		return false, fmt.Errorf("usage: <solution> [input file]")
	}
	r1 := *r
	if len(fields) == 2 {
		r1.input = fields[1]
	}
	return false, r1.solve(fields[0])
}

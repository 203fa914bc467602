package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/cespare/wait"
)

// runAll solves every registered solution that has an input file in the
// input directory. Solutions run concurrently; results print in order.
func (r *runner) runAll() error {
	names := solutionNames()
	results := make([]string, len(names))
	var wg wait.Group
	for i, name := range names {
		i, name := i, name // per-iteration copies (go 1.21 loop semantics)
		wg.Go(func(quit <-chan struct{}) error {
			day, _ := splitName(name)
			input, err := readFile(inputPath(r.inputDir, day))
			if errors.Is(err, fs.ErrNotExist) {
				results[i] = "(no input)"
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case <-quit:
				return nil
			default:
			}
			v, err := solutions[name](input)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = "answer = " + r.format(v)
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}
	for i, name := range names {
		i, name := i, name // per-iteration copies (go 1.21 loop semantics)
		fmt.Fprintf(r.stdout, "%s: %s\n", name, results[i])
	}
	return nil
}

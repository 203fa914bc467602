package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cespare/cp"
)

// add copies a downloaded puzzle input into the input directory as
// <day>.txt, replacing any existing file.
func (r *runner) add(arg, src string) error {
	day, err := strconv.Atoi(arg)
	if err != nil || day < 1 || day > 25 {
		return fmt.Errorf("bad day %q", arg)
	}
	if err := os.MkdirAll(r.inputDir, 0o755); err != nil {
		return err
	}
	dst := inputPath(r.inputDir, day)
	if err := cp.CopyFile(dst, src); err != nil {
		return fmt.Errorf("error copying input for day %d: %s", day, err)
	}
	fmt.Fprintf(r.stdout, "copied %s to %s\n", src, dst)
	return nil
}

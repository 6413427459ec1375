package main

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// EXEC_CMD builds the process for a Command extractor. Tests replace
// it to avoid depending on real analysis programs.
var EXEC_CMD = exec.Command

// Command runs an external analysis program inside the directory and
// takes its standard output as the value. {dir} in Args is replaced by
// the base name of the directory. With Field >= 0, only that
// whitespace field of the last non-empty output line is kept.
type Command struct {
	Name  string
	Args  []string
	Field int
}

func (c Command) Extract(dir string) (string, error) {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = strings.ReplaceAll(a, "{dir}", filepath.Base(dir))
	}
	cmd := EXEC_CMD(c.Name, args...)
	cmd.Dir = dir
	byts, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: %q failed: %v",
			ErrValueNotFound, cmd.String(), err,
		)
	}
	out := strings.TrimSpace(string(byts))
	if out == "" {
		return "", ErrValueNotFound
	}
	if c.Field < 0 {
		return out, nil
	}
	lines := strings.Split(out, "\n")
	fields := strings.Fields(lines[len(lines)-1])
	if c.Field >= len(fields) {
		return "", ErrValueNotFound
	}
	return fields[c.Field], nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Errors
var (
	ErrFileNotFound  = errors.New("output file not found")
	ErrValueNotFound = errors.New("value not found in output")
)

// Extractor reads a single scalar property out of the output files in
// a functionalization's directory. A missing file or value is
// reported with ErrFileNotFound or ErrValueNotFound.
type Extractor interface {
	Extract(dir string) (string, error)
}

// ExtractorFunc lets an ordinary function serve as an Extractor
type ExtractorFunc func(dir string) (string, error)

func (f ExtractorFunc) Extract(dir string) (string, error) {
	return f(dir)
}

// Grep takes Field (0-based, whitespace separated) from the last line
// containing Keyword in the first file in the directory matching File
type Grep struct {
	File    string
	Keyword string
	Field   int
}

func (g Grep) Extract(dir string) (string, error) {
	filename, err := FindFile(dir, g.File)
	if err != nil {
		return "", err
	}
	f, err := os.Open(filename)
	if err != nil {
		return "", ErrFileNotFound
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	var (
		line  string
		found bool
	)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), g.Keyword) {
			line = scanner.Text()
			found = true
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	if !found {
		return "", ErrValueNotFound
	}
	fields := strings.Fields(line)
	if g.Field < 0 || g.Field >= len(fields) {
		return "", ErrValueNotFound
	}
	return fields[g.Field], nil
}

// FindFile returns the first file in dir, in lexical order, whose name
// matches pattern
func FindFile(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("bad file pattern %q: %w", pattern, err)
	}
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
			return m, nil
		}
	}
	return "", ErrFileNotFound
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const mullikenHeader = "Mulliken charges and spin densities:"

// GaussianEnergy returns a Grep for the SCF energy in a Gaussian log,
// which looks like
//
//	SCF Done:  E(UB3LYP) =  -155.034567891     A.U. after   14 cycles
func GaussianEnergy(file string) Grep {
	return Grep{
		File:    file,
		Keyword: "SCF Done",
		Field:   4,
	}
}

// Spin reads the Mulliken spin density of Atom (1-based) from the last
// "Mulliken charges and spin densities" block of a Gaussian log
type Spin struct {
	File string
	Atom int
}

func (s Spin) Extract(dir string) (ret string, err error) {
	filename, err := FindFile(dir, s.File)
	if err != nil {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		return "", ErrFileNotFound
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	var (
		line    string
		fields  []string
		inblock bool
		colhead bool
		current string
		label   = strconv.Itoa(s.Atom)
	)
	for scanner.Scan() {
		line = strings.TrimSpace(scanner.Text())
		switch {
		case line == mullikenHeader:
			inblock = true
			colhead = true
			current = ""
		case inblock && colhead:
			// column numbers above the table
			colhead = false
		case inblock && strings.HasPrefix(line, "Sum of Mulliken"):
			inblock = false
			if current != "" {
				ret = current
			}
		case inblock:
			fields = strings.Fields(line)
			if len(fields) >= 4 && fields[0] == label {
				current = fields[3]
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	if ret == "" {
		return "", ErrValueNotFound
	}
	return ret, nil
}

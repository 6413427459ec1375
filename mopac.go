package main

import (
	"bufio"
	"errors"
	"os"
	"strconv"
	"strings"
)

var ErrFileContainsError = errors.New("file contains error")

// Mopac reads the heat of formation in kcal/mol from the MOPAC .aux
// file matching File. If the .out file next to it reports an error
// the value is not trusted.
type Mopac struct {
	File string
}

func (m Mopac) Extract(dir string) (ret string, err error) {
	auxfile, err := FindFile(dir, m.File)
	if err != nil {
		return
	}
	if err = checkOut(TrimExt(auxfile) + ".out"); err != nil {
		return
	}
	f, err := os.Open(auxfile)
	if err != nil {
		return "", ErrFileNotFound
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	err = ErrValueNotFound
	var (
		line   string
		fields []string
		energy float64
	)
	for scanner.Scan() {
		line = scanner.Text()
		if strings.Contains(line, "HEAT_OF_FORMATION") {
			fields = strings.Split(line, "=")
			if len(fields) < 2 {
				continue
			}
			energy, err = strconv.ParseFloat(
				strings.Replace(strings.TrimSpace(fields[1]), "D", "E", -1),
				64,
			)
			if err != nil {
				return "", ErrValueNotFound
			}
			ret = strconv.FormatFloat(energy, 'f', -1, 64)
		}
	}
	return
}

// checkOut looks for an error reported in a MOPAC output file. A
// missing output file is fine, only the .aux file is required.
func checkOut(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.Contains(strings.ToUpper(scanner.Text()), "ERROR") {
			return ErrFileContainsError
		}
	}
	return nil
}

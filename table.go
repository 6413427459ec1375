package main

import (
	"bytes"
	"errors"
	"strings"
)

const SEP = ","

var ErrNoHeader = errors.New("table has no header")

// Table is a comma-separated functionalization map. Rows are stored
// as split fields so updates are addressed by index rather than by
// matching the text of a line.
type Table struct {
	Header []string
	Rows   [][]string

	newline  string
	trailing bool
}

// ParseTable splits data into a header and data rows. Fields are not
// quoted, so a comma always separates two fields.
func ParseTable(data []byte) (*Table, error) {
	if len(data) == 0 {
		return nil, ErrNoHeader
	}
	t := &Table{newline: "\n"}
	s := string(data)
	if i := strings.IndexByte(s, '\n'); i > 0 && s[i-1] == '\r' {
		t.newline = "\r\n"
	}
	if strings.HasSuffix(s, "\n") {
		t.trailing = true
		s = strings.TrimSuffix(s, "\n")
		s = strings.TrimSuffix(s, "\r")
	}
	lines := strings.Split(s, t.newline)
	t.Header = strings.Split(lines[0], SEP)
	for _, line := range lines[1:] {
		t.Rows = append(t.Rows, strings.Split(line, SEP))
	}
	return t, nil
}

// Key returns the first field of data row i
func (t *Table) Key(i int) string {
	return t.Rows[i][0]
}

func (t *Table) AppendHeader(name string) {
	t.Header = append(t.Header, name)
}

// AppendField adds value as the last field of data row i, leaving
// every other field alone
func (t *Table) AppendField(i int, value string) {
	t.Rows[i] = append(t.Rows[i], value)
}

// Bytes serializes t with the line endings it was read with. An
// unmodified table reproduces its input exactly.
func (t *Table) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(t.Header, SEP))
	for _, row := range t.Rows {
		buf.WriteString(t.newline)
		buf.WriteString(strings.Join(row, SEP))
	}
	if t.trailing {
		buf.WriteString(t.newline)
	}
	return buf.Bytes()
}

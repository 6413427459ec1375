package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// UsageError reports a bad command line. It is the only error that
// stops a run before any file is touched.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

var ErrNoColumn = &UsageError{Msg: "a column name is required"}

// Appender adds one column to functionalization maps. The key of each
// row names a directory under Root, and Extractor supplies the value
// from the files in that directory.
type Appender struct {
	Root      string
	Extractor Extractor
	Logger    *log.Logger
}

// Report summarizes the changes made to one table
type Report struct {
	Path     string
	Backup   string
	Rows     int
	Appended int
	// keys whose directory does not exist; those rows were not changed
	Skipped []string
	// keys whose directory held no value; they got an empty field
	Misses  []string
	Summary Summary
}

func (a *Appender) logger() *log.Logger {
	if a.Logger == nil {
		return log.Default()
	}
	return a.Logger
}

// AppendColumn backs up the table at path, appends column to its
// header and the extracted value to each row whose key is a
// directory, and writes the table back
func (a *Appender) AppendColumn(path, column string) (rep Report, err error) {
	if column == "" {
		return rep, ErrNoColumn
	}
	logger := a.logger()
	rep.Path = path
	data, err := os.ReadFile(path)
	if err != nil {
		return rep, err
	}
	table, err := ParseTable(data)
	if err != nil {
		return rep, fmt.Errorf("%s: %w", path, err)
	}
	rep.Backup, err = Backup(path, data)
	if err != nil {
		return rep, err
	}
	table.AppendHeader(column)
	rep.Rows = len(table.Rows)
	values := make([]string, 0, rep.Rows)
	for i := range table.Rows {
		key := table.Key(i)
		dir := filepath.Join(a.Root, key)
		if key == "" || !IsDir(dir) {
			logger.Warn(fmt.Sprintf("%s is not a directory", key),
				"file", path, "row", i+1)
			rep.Skipped = append(rep.Skipped, key)
			continue
		}
		value, err := a.Extractor.Extract(dir)
		if err != nil {
			logger.Debug("no value", "key", key, "err", err)
			rep.Misses = append(rep.Misses, key)
			value = ""
		}
		logger.Debug("extracted", "key", key, "column", column, "value", value)
		table.AppendField(i, value)
		values = append(values, value)
		rep.Appended++
	}
	if err = writeTable(path, table); err != nil {
		return rep, err
	}
	rep.Summary = Summarize(values)
	return rep, nil
}

func writeTable(path string, t *Table) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, t.Bytes(), info.Mode().Perm())
}

// Run appends column to every table in paths. Problems with a single
// table are logged and the rest are still processed; only a
// UsageError stops the run.
func (a *Appender) Run(paths []string, column string) ([]Report, error) {
	if column == "" {
		return nil, ErrNoColumn
	}
	logger := a.logger()
	reports := make([]Report, 0, len(paths))
	for _, path := range paths {
		rep, err := a.AppendColumn(path, column)
		var uerr *UsageError
		if errors.As(err, &uerr) {
			return reports, err
		} else if err != nil {
			logger.Error("skipping table", "file", path, "err", err)
			continue
		}
		logger.Info("appended column",
			"file", path,
			"column", column,
			"rows", rep.Rows,
			"appended", rep.Appended,
			"skipped", len(rep.Skipped),
			"empty", len(rep.Misses),
		)
		if rep.Summary.N > 0 {
			logger.Info("summary",
				"file", path,
				"n", rep.Summary.N,
				"mean", rep.Summary.Mean,
				"std", rep.Summary.StdDev,
				"min", rep.Summary.Min,
				"max", rep.Summary.Max,
			)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

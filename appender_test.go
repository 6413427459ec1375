package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mapCSV = "name,substituent\nmolA,OH\nmolB,NH2\n"

// setupMap writes map.csv into a fresh directory along with a molA
// directory, and returns the directory
func setupMap(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "map.csv"), []byte(content), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "molA"), 0755))
	return dir
}

// fixed is an extractor returning the same value for every directory
func fixed(v string) Extractor {
	return ExtractorFunc(func(string) (string, error) {
		return v, nil
	})
}

func newTestAppender(root string, ex Extractor) (*Appender, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Appender{
		Root:      root,
		Extractor: ex,
		Logger:    newLogger(&buf, true),
	}, &buf
}

func TestAppendColumn(t *testing.T) {
	dir := setupMap(t, mapCSV)
	path := filepath.Join(dir, "map.csv")
	app, logs := newTestAppender(dir, fixed("0.42"))

	rep, err := app.AppendColumn(path, "spin")
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,substituent,spin\nmolA,OH,0.42\nmolB,NH2\n", string(got))
	assert.Contains(t, logs.String(), "molB is not a directory")

	bak, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, mapCSV, string(bak))

	assert.Equal(t, path+".bak", rep.Backup)
	assert.Equal(t, 2, rep.Rows)
	assert.Equal(t, 1, rep.Appended)
	assert.Equal(t, []string{"molB"}, rep.Skipped)
	assert.Empty(t, rep.Misses)
	assert.Equal(t, 1, rep.Summary.N)
	assert.Equal(t, 0.42, rep.Summary.Mean)
}

func TestAppendColumnSpinFromLog(t *testing.T) {
	dir := setupMap(t, mapCSV)
	data, err := os.ReadFile("testfiles/gaussian/radical.log")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "molA", "molA.log"), data, 0644))
	app, _ := newTestAppender(dir, Spin{File: "*.log", Atom: 1})

	_, err = app.AppendColumn(filepath.Join(dir, "map.csv"), "spin")
	require.NoError(t, err)

	got, _ := os.ReadFile(filepath.Join(dir, "map.csv"))
	assert.Equal(t, "name,substituent,spin\nmolA,OH,1.024567\nmolB,NH2\n", string(got))
}

func TestAppendColumnMiss(t *testing.T) {
	dir := setupMap(t, mapCSV)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "molB"), 0755))
	// neither directory holds a log
	app, _ := newTestAppender(dir, Spin{File: "*.log", Atom: 1})

	rep, err := app.AppendColumn(filepath.Join(dir, "map.csv"), "spin")
	require.NoError(t, err)

	got, _ := os.ReadFile(filepath.Join(dir, "map.csv"))
	assert.Equal(t, "name,substituent,spin\nmolA,OH,\nmolB,NH2,\n", string(got))
	assert.Equal(t, []string{"molA", "molB"}, rep.Misses)
	assert.Equal(t, 2, rep.Appended)
	assert.Zero(t, rep.Summary.N)
}

func TestAppendColumnTwice(t *testing.T) {
	dir := setupMap(t, mapCSV)
	path := filepath.Join(dir, "map.csv")
	app, _ := newTestAppender(dir, fixed("0.42"))

	_, err := app.AppendColumn(path, "spin")
	require.NoError(t, err)
	_, err = app.AppendColumn(path, "spin")
	require.NoError(t, err)

	got, _ := os.ReadFile(path)
	assert.Equal(t,
		"name,substituent,spin,spin\nmolA,OH,0.42,0.42\nmolB,NH2\n",
		string(got))
	// the backup holds the table as it was before the second run
	bak, _ := os.ReadFile(path + ".bak")
	assert.Equal(t, "name,substituent,spin\nmolA,OH,0.42\nmolB,NH2\n", string(bak))
}

func TestAppendColumnIdenticalRows(t *testing.T) {
	dir := setupMap(t, "name,x\nmolA,1\nmolB,1\nmolA,1\n")
	path := filepath.Join(dir, "map.csv")
	var calls int
	app, _ := newTestAppender(dir, ExtractorFunc(func(string) (string, error) {
		calls++
		if calls == 1 {
			return "first", nil
		}
		return "second", nil
	}))

	_, err := app.AppendColumn(path, "v")
	require.NoError(t, err)

	got, _ := os.ReadFile(path)
	assert.Equal(t, "name,x,v\nmolA,1,first\nmolB,1\nmolA,1,second\n", string(got))
}

func TestAppendColumnEmptyKey(t *testing.T) {
	dir := setupMap(t, "name,x\n,1\nmolA,2\n")
	path := filepath.Join(dir, "map.csv")
	app, _ := newTestAppender(dir, fixed("v"))

	rep, err := app.AppendColumn(path, "c")
	require.NoError(t, err)
	got, _ := os.ReadFile(path)
	assert.Equal(t, "name,x,c\n,1\nmolA,2,v\n", string(got))
	assert.Equal(t, []string{""}, rep.Skipped)
}

func TestAppendColumnNoName(t *testing.T) {
	dir := setupMap(t, mapCSV)
	path := filepath.Join(dir, "map.csv")
	app, _ := newTestAppender(dir, fixed("0.42"))

	_, err := app.AppendColumn(path, "")
	var uerr *UsageError
	assert.True(t, errors.As(err, &uerr))
	assert.NoFileExists(t, path+".bak")
	got, _ := os.ReadFile(path)
	assert.Equal(t, mapCSV, string(got))
}

func TestRun(t *testing.T) {
	dir := setupMap(t, mapCSV)
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	other := filepath.Join(dir, "other.csv")
	require.NoError(t, os.WriteFile(other, []byte("name\nmolA\n"), 0644))
	app, logs := newTestAppender(dir, fixed("7"))

	reps, err := app.Run([]string{
		empty,
		filepath.Join(dir, "missing.csv"),
		filepath.Join(dir, "map.csv"),
		other,
	}, "n")
	require.NoError(t, err)
	require.Len(t, reps, 2)
	assert.Equal(t, filepath.Join(dir, "map.csv"), reps[0].Path)
	assert.Equal(t, other, reps[1].Path)
	assert.Contains(t, logs.String(), ErrNoHeader.Error())
	assert.NoFileExists(t, empty+".bak")

	got, _ := os.ReadFile(other)
	assert.Equal(t, "name,n\nmolA,7\n", string(got))

	_, err = app.Run([]string{other}, "")
	assert.ErrorIs(t, err, ErrNoColumn)
}

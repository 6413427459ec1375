package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTrimExt(t *testing.T) {
	got := TrimExt("inp/job.0000000001.aux")
	want := "inp/job.0000000001"
	if got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"b_functionalization_map.csv",
		"a_functionalization_map.csv",
		"a_functionalization_map.csv.bak",
		"notes.txt",
	} {
		os.WriteFile(filepath.Join(dir, name), []byte("name\n"), 0644)
	}
	os.Mkdir(filepath.Join(dir, "c_functionalization_map.csv"), 0755)
	got, err := Discover(dir, DEFAULT_PATTERN)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a_functionalization_map.csv"),
		filepath.Join(dir, "b_functionalization_map.csv"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if _, err := Discover(dir, "["); err == nil {
		t.Error("expected a pattern error")
	}
}

func TestBackup(t *testing.T) {
	name := filepath.Join(t.TempDir(), "map.csv")
	os.WriteFile(name, []byte("new"), 0600)
	os.WriteFile(name+".bak", []byte("stale"), 0600)
	bak, err := Backup(name, []byte("old"))
	if err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(bak)
	if string(got) != "old" {
		t.Errorf("got %q, wanted %q\n", got, "old")
	}
}

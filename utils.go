package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TrimExt removes the extension from filename
func TrimExt(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// IsDir reports whether path names an existing directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Discover returns the tables in dir whose names match pattern, in
// lexical order
func Discover(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad table pattern %q: %w", pattern, err)
	}
	ret := make([]string, 0, len(matches))
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
			ret = append(ret, m)
		}
	}
	return ret, nil
}

// Backup copies the contents of filename into filename.bak,
// replacing any earlier backup
func Backup(filename string, data []byte) (string, error) {
	bak := filename + ".bak"
	perm := os.FileMode(0644)
	if info, err := os.Stat(filename); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(bak, data, perm); err != nil {
		return "", fmt.Errorf("backing up %s: %w", filename, err)
	}
	return bak, nil
}

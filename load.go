package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	DEFAULT_PATTERN = "*functionalization_map.csv"
	DEFAULT_CONFIG  = "addcol.toml"
)

type RawExtract struct {
	Kind    string
	File    string
	Keyword string
	Field   int
	Atom    int
	Command string
	Args    []string
}

type RawConf struct {
	Pattern string
	// directory holding the per-functionalization directories,
	// defaults to the directory holding the tables
	Root    string
	Extract RawExtract
}

// DefaultRawConf is the configuration used when no file is given:
// spin density of the first atom from the Gaussian log
func DefaultRawConf() RawConf {
	return RawConf{
		Pattern: DEFAULT_PATTERN,
		Extract: RawExtract{
			Kind:  "spin",
			File:  "*.log",
			Field: -1,
			Atom:  1,
		},
	}
}

type Config struct {
	Pattern   string
	Root      string
	Extractor Extractor
}

func (rc RawConf) ToConfig() (conf Config, err error) {
	conf.Pattern = rc.Pattern
	conf.Root = rc.Root
	conf.Extractor, err = rc.Extract.ToExtractor()
	return
}

// ToExtractor selects the Extractor named by Kind
func (re RawExtract) ToExtractor() (Extractor, error) {
	switch re.Kind {
	case "grep":
		if re.Keyword == "" {
			return nil, fmt.Errorf("extract kind %q requires a keyword", re.Kind)
		}
		if re.Field < 0 {
			return nil, fmt.Errorf("extract kind %q requires a field", re.Kind)
		}
		return Grep{File: re.File, Keyword: re.Keyword, Field: re.Field}, nil
	case "gaussian":
		return GaussianEnergy(re.File), nil
	case "spin":
		if re.Atom < 1 {
			return nil, fmt.Errorf("spin atom must be at least 1, got %d", re.Atom)
		}
		return Spin{File: re.File, Atom: re.Atom}, nil
	case "mopac":
		file := re.File
		if file == "" || file == "*.log" {
			file = "*.aux"
		}
		return Mopac{File: file}, nil
	case "command":
		if re.Command == "" {
			return nil, fmt.Errorf("extract kind %q requires a command", re.Kind)
		}
		return Command{Name: re.Command, Args: re.Args, Field: re.Field}, nil
	default:
		return nil, fmt.Errorf("unknown extract kind %q", re.Kind)
	}
}

// LoadConfig reads a TOML configuration from filename on top of the
// defaults
func LoadConfig(filename string) (Config, error) {
	cont, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	rc := DefaultRawConf()
	if err := toml.Unmarshal(cont, &rc); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return rc.ToConfig()
}

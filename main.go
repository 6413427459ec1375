package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// set during build
var (
	version = "dev"
	commit  = "none"
)

type options struct {
	config string
	dir    string
	debug  bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "addcol [flags] <column>",
		Short: "Append an extracted value as a new column of functionalization maps",
		Long: `addcol appends a column to every functionalization map in the
working directory. The first field of each row names a directory; the
configured extraction step reads a value from the files in that
directory and the value is appended to the row. A backup of each map
is written to <map>.bak before it is changed.`,
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || args[0] == "" {
				return ErrNoColumn
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppend(cmd, opts, args[0])
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "",
		"TOML file configuring discovery and extraction (default "+DEFAULT_CONFIG+" if present)")
	cmd.Flags().StringVarP(&opts.dir, "dir", "C", ".",
		"directory containing the functionalization maps")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log every extracted value")
	return cmd
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "addcol",
		Level:  level,
	})
}

// loadConfig reads the configuration named on the command line, or
// the default file in dir if there is one
func loadConfig(opts options) (Config, error) {
	if opts.config != "" {
		return LoadConfig(opts.config)
	}
	def := filepath.Join(opts.dir, DEFAULT_CONFIG)
	if _, err := os.Stat(def); err == nil {
		return LoadConfig(def)
	}
	return DefaultRawConf().ToConfig()
}

func runAppend(cmd *cobra.Command, opts options, column string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.debug)
	conf, err := loadConfig(opts)
	if err != nil {
		return err
	}
	root := conf.Root
	switch {
	case root == "":
		root = opts.dir
	case !filepath.IsAbs(root):
		root = filepath.Join(opts.dir, root)
	}
	paths, err := Discover(opts.dir, conf.Pattern)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		logger.Warn("no functionalization maps found",
			"dir", opts.dir, "pattern", conf.Pattern)
		return nil
	}
	app := Appender{
		Root:      root,
		Extractor: conf.Extractor,
		Logger:    logger,
	}
	_, err = app.Run(paths, column)
	return err
}

// run executes the command line in args and returns the exit status
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var uerr *UsageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "Error: %v\n%s", err, cmd.UsageString())
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

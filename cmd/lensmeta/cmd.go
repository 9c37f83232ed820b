package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/echa/config"
	logpkg "github.com/echa/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/i18n"
	"github.com/reoring/lensmeta/source"
)

var rootCmd = &cobra.Command{
	Use:           APP_NAME + " [OPTIONS] [COMMANDS]",
	Short:         "Validate and process versioned metadata documents",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	// configuration handling
	conf string

	// verbosity levels
	verbose bool
	vdebug  bool
	vtrace  bool

	// output
	nocolor bool
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&conf, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	rootCmd.PersistentFlags().BoolVar(&verbose, "v", false, "be verbose")
	rootCmd.PersistentFlags().BoolVar(&vdebug, "vv", false, "debug mode")
	rootCmd.PersistentFlags().BoolVar(&vtrace, "vvv", false, "trace mode")
}

// Run executes the root command. Per-file errors have been reported by
// the command itself.
func Run() error {
	err := rootCmd.Execute()
	var fe *fileError
	if err != nil && !errors.As(err, &fe) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func initConfig() {
	config.SetEnvPrefix(ENV_PREFIX)
	if conf != "" {
		config.SetConfigName(conf)
	}
	realconf := config.ConfigName()
	haveConf := false
	if _, err := os.Stat(realconf); err == nil {
		if err := config.ReadConfigFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Could not read config %s: %v\n", realconf, err)
			os.Exit(1)
		}
		haveConf = true
	}
	initLogging()

	// overwrite all subsystem levels
	switch true {
	case vtrace:
		setLogLevels(logpkg.LevelTrace)
	case vdebug:
		setLogLevels(logpkg.LevelDebug)
	case verbose:
		setLogLevels(logpkg.LevelInfo)
	}
	if haveConf {
		log.Infof("Using configuration file %s", realconf)
	} else {
		log.Debug("Missing config file, using default values.")
	}

	i18n.SetLanguage(config.GetString("output.lang"))
	color.NoColor = color.NoColor || nocolor || !config.GetBool("output.color")
}

// parseOpt reads the decoding and validation options from config.
func parseOpt() lensmeta.ParseOpt {
	opt := lensmeta.DefaultParseOpt()
	opt.Strictness.OnDuplicateKey = lensmeta.ParseSeverity(config.GetString("parse.duplicate_keys"))
	opt.MaxDepth = config.GetInt("parse.max_depth")
	opt.MaxBytes = config.GetInt64("parse.max_bytes")
	opt.FailFast = config.GetBool("parse.fail_fast")
	return opt
}

func parseContext(opt lensmeta.ParseOpt) context.Context {
	return lensmeta.WithFailFast(context.Background(), opt.FailFast)
}

// readInput reads a file, or stdin for "-".
func readInput(name string, limit int64) ([]byte, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if limit > 0 {
		// one extra byte lets the decoder report the overflow
		r = io.LimitReader(r, limit+1)
	}
	return io.ReadAll(r)
}

// decodeFile reads and decodes one input, reporting decoding warnings.
func decodeFile(name string, opt lensmeta.ParseOpt) ([]byte, any, error) {
	data, err := readInput(name, opt.MaxBytes)
	if err != nil {
		return nil, nil, err
	}
	doc, err := source.Decode(data, source.FromParseOpt(opt))
	if err != nil {
		return data, nil, err
	}
	if len(doc.Warnings) > 0 {
		printWarnings(name, doc.Warnings)
	}
	return data, doc.Value, nil
}

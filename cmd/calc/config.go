package main

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

type cliConfig struct {
	Stdin     bool
	SuitePath string
	Output    string
	Verbose   bool
	Raw       bool
	LogLevel  string
	Inputs    []string
}

var errNoInput = errors.New("no input: pass inputs as arguments, --stdin or --suite")

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := pflag.NewFlagSet("calc", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.Stdin, "stdin", false, "Read a single input from stdin")
	fs.StringVarP(&cfg.SuitePath, "suite", "s", "", "Path to a YAML suite of cases (batch mode)")
	fs.StringVarP(&cfg.Output, "output", "o", "", "Write the suite report as JSON to this path")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print numbers, ignored values and delimiters")
	fs.BoolVar(&cfg.Raw, "raw", false, `Do not decode \n escapes in argument inputs`)
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Inputs = fs.Args()
	if !cfg.Raw {
		for i, in := range cfg.Inputs {
			cfg.Inputs[i] = decodeEscapes(in)
		}
	}

	if cfg.SuitePath == "" && !cfg.Stdin && len(cfg.Inputs) == 0 {
		return cfg, errNoInput
	}
	if cfg.Output != "" && cfg.SuitePath == "" {
		return cfg, errors.New("--output requires --suite")
	}

	return cfg, nil
}

var escapeReplacer = strings.NewReplacer(`\n`, "\n", `\r`, "\r", `\t`, "\t")

// decodeEscapes lets shells pass headers such as '//;\n1;2' without $'..' quoting.
func decodeEscapes(s string) string {
	return escapeReplacer.Replace(s)
}

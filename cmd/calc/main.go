package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/strcalc/internal/calculator"
	"github.com/DjordjeVuckovic/strcalc/internal/suite"
	"github.com/DjordjeVuckovic/strcalc/internal/suite/report"
	"github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		fmt.Fprintf(stderr, "error: invalid --log-level %q\n", cfg.LogLevel)
		return exitUsage
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl})))

	calc := calculator.New()

	if cfg.SuitePath != "" {
		return runSuite(cfg, calc, stdout, stderr)
	}

	inputs := cfg.Inputs
	if cfg.Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "error: read stdin: %v\n", err)
			return exitError
		}
		inputs = append(inputs, strings.TrimSuffix(string(data), "\n"))
	}

	code := exitOK
	for _, in := range inputs {
		if !evaluate(calc, in, cfg.Verbose, stdout, stderr) {
			code = exitError
		}
	}
	return code
}

func evaluate(calc calculator.Adder, input string, verbose bool, stdout, stderr io.Writer) bool {
	res, err := calc.Calculate(input)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return false
	}

	if !verbose {
		fmt.Fprintln(stdout, res.Sum)
		return true
	}

	fmt.Fprintf(stdout, "input:      %s\n", strconv.Quote(input))
	fmt.Fprintf(stdout, "delimiters: %s\n", quoteAll(res.Delimiters))
	fmt.Fprintf(stdout, "numbers:    %v\n", res.Numbers)
	fmt.Fprintf(stdout, "ignored:    %v\n", res.Ignored)
	fmt.Fprintf(stdout, "sum:        %d\n", res.Sum)
	return true
}

func runSuite(cfg cliConfig, calc calculator.Adder, stdout, stderr io.Writer) int {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	result := suite.NewRunner(calc).Run(s)
	report.WriteTable(result, stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(result, cfg.Output); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if !result.OK() {
		return exitError
	}
	return exitOK
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, " ")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/cosmic/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, done, err := parseFlags(args, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "cosmic: %v\n", err)
		return 1
	}
	if done {
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(stderr, "cosmic: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags builds app options from the command line. done reports that
// help or version output was printed and the program should exit.
func parseFlags(args []string, stdout io.Writer) (opts app.Options, done bool, err error) {
	flagSet := pflag.NewFlagSet("cosmic", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	flagSet.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/cosmic/config.toml)")
	flagSet.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/cosmic/prefs.toml)")
	flagSet.DurationVar(&opts.Debounce, "debounce", 0, "search debounce, e.g. 300ms (overrides config)")
	flagSet.StringVar(&opts.LogFile, "log-file", "", "log file path (overrides config)")
	flagSet.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	showVersion := flagSet.Bool("version", false, "print version and exit")
	showHelp := flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return opts, true, nil
		}
		return opts, false, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return opts, false, fmt.Errorf("unexpected arguments: %v", rest)
	}

	switch {
	case *showHelp:
		printHelp(stdout, flagSet)
		return opts, true, nil
	case *showVersion:
		fmt.Fprintf(stdout, "cosmic %s\n", version)
		return opts, true, nil
	}

	opts.Version = version
	return opts, false, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintln(w, "Cosmic Converter: search, queue and buy songs from the terminal.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: cosmic [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flagSet.FlagUsages())
}

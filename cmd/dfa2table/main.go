package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/geange/minidfa"
)

// dfa2table compiles a hand-written DFA spec to the machine-parsable
// table format the checker consumes. The alphabet is given on the
// command line as the k symbols concatenated with no separators.

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <alphabet_string> <user_spec.txt> <out.dfa>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("MINIDFA_LOG_LEVEL", "warn")),
	}))
	slog.SetDefault(logger)

	ab, err := minidfa.ParseAlphabetString(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	fin, err := os.Open(flag.Arg(1))
	if err != nil {
		fatal(fmt.Errorf("cannot open user_spec.txt: %w", err))
	}
	defer fin.Close()

	d, err := minidfa.ParseDFASpec(fin, ab)
	if err != nil {
		fatal(err)
	}
	logger.Debug("spec compiled", "states", d.NumStates, "start", d.Start)

	fout, err := os.Create(flag.Arg(2))
	if err != nil {
		fatal(fmt.Errorf("cannot open output file: %w", err))
	}
	if err := d.WriteTable(fout); err != nil {
		fout.Close()
		fatal(err)
	}
	if err := fout.Close(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

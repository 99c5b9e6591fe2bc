package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/geange/minidfa"
)

// dfa_checker runs a reference and a user DFA table over a shared test
// set and reports the first behavioral divergence. Exit codes: 0 all
// tests matched, 2 mismatch or incompatible alphabets, 1 parse or
// usage error.

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <ref.dfa> <user.dfa> <tests.txt>\n", os.Args[0])
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

	ref := readTable(flag.Arg(0))
	user := readTable(flag.Arg(1))
	logger.Debug("tables loaded", "ref_states", ref.NumStates, "user_states", user.NumStates)

	ft, err := os.Open(flag.Arg(2))
	if err != nil {
		fatal(fmt.Errorf("cannot open tests file: %w", err))
	}
	defer ft.Close()

	warn := func(line, label int, refAccept bool) {
		fmt.Fprintf(os.Stderr, "WARNING: test label mismatch vs reference at line %d (label=%d, ref=%d)\n",
			line, label, b2i(refAccept))
	}

	res, err := minidfa.CheckEquivalence(ref, user, ft, warn)
	if err != nil {
		if minidfa.Kind(err) == minidfa.KindCompatibility {
			fmt.Fprintf(os.Stderr, "FAIL: alphabets differ between reference and user DFA.\n")
			fmt.Fprintf(os.Stderr, "ref: %s\nuser:%s\n", ref.Alphabet, user.Alphabet)
			os.Exit(2)
		}
		fatal(err)
	}

	if mm := res.Mismatch; mm != nil {
		fmt.Fprintf(os.Stderr, "FAIL at test line %d\n", mm.Line)
		fmt.Fprintf(os.Stderr, "  w = %s\n", mm.Word)
		fmt.Fprintf(os.Stderr, "  ref_accept = %d, user_accept = %d\n", b2i(mm.RefAccept), b2i(mm.UserAccept))
		fmt.Fprintf(os.Stderr, "  label = %d\n", mm.Label)
		os.Exit(2)
	}

	fmt.Printf("PASS: %d tests matched (user DFA behavior == reference DFA behavior).\n", res.Total)
}

func readTable(path string) *minidfa.DFA {
	f, err := os.Open(path)
	if err != nil {
		fatal(fmt.Errorf("cannot open DFA file: %w", err))
	}
	defer f.Close()
	d, err := minidfa.ReadTable(f)
	if err != nil {
		fatal(fmt.Errorf("%s: %w", path, err))
	}
	return d
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/geange/minidfa"
)

// regex2mindfa compiles a regex input file to its minimized DFA table.
// The input file has two lines: the regex, then the alphabet.

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <input_file> <output_dfa_file>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("MINIDFA_LOG_LEVEL", "warn")),
	}))
	slog.SetDefault(logger)

	inPath := flag.Arg(0)
	outPath := flag.Arg(1)

	fin, err := os.Open(inPath)
	if err != nil {
		fatal(fmt.Errorf("cannot open input file: %w", err))
	}
	defer fin.Close()

	regexLine, alphaLine, err := readTwoLines(fin)
	if err != nil {
		fatal(err)
	}

	ab, err := minidfa.ParseAlphabetLine(alphaLine)
	if err != nil {
		fatal(err)
	}
	logger.Debug("alphabet parsed", "k", ab.Len(), "symbols", ab.String())

	d, err := minidfa.CompileRegexp(regexLine, ab)
	if err != nil {
		fatal(err)
	}
	logger.Debug("regex compiled", "states", d.NumStates, "start", d.Start)

	fout, err := os.Create(outPath)
	if err != nil {
		fatal(fmt.Errorf("cannot open output file for writing: %w", err))
	}
	if err := d.WriteTable(fout); err != nil {
		fout.Close()
		fatal(err)
	}
	if err := fout.Close(); err != nil {
		fatal(err)
	}
}

func readTwoLines(f *os.File) (string, string, error) {
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var lines []string
	for len(lines) < 2 && sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", "", err
	}
	if len(lines) < 2 {
		return "", "", fmt.Errorf("input must have 2 lines: regex then alphabet")
	}
	return lines[0], lines[1], nil
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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"genre-lab/inference"
	"genre-lab/internal"
	"genre-lab/textnorm"

	"github.com/abadojack/whatlanggo"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the caller.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

var samplePlots = []string{
	"this is the plot of a romantic comedy movie",
	"this is the plot of an action movie",
}

func main() {
	code, err := run(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genre terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run loads the model once, then prints one genre list per plot.
// Plots come from the arguments, from stdin with -stdin (one per line), or
// default to two sample plots.
func run(args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	flags := flag.NewFlagSet("genre", flag.ContinueOnError)
	fromStdin := flags.Bool("stdin", false, "read one plot per line from stdin")
	if err := flags.Parse(args); err != nil {
		return exitConfig, err
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	stopwords, err := internal.LoadStopwords(config)
	if err != nil {
		return exitConfig, err
	}

	// 2. Artifacts, loaded once for the whole process
	bundle, err := internal.LoadModel(log, config)
	if err != nil {
		return exitRuntime, err
	}
	pipeline := inference.NewPipeline(log, textnorm.NewNormalizer(stopwords),
		bundle.Vectorizer, bundle.Classifier, bundle.Binarizer, bundle.Decoder)

	// 3. Plots
	plots := flags.Args()
	if *fromStdin {
		plots, err = readLines(stdin)
		if err != nil {
			return exitRuntime, err
		}
	}
	if len(plots) == 0 {
		plots = samplePlots
	}

	for _, plot := range plots {
		if config.LanguageCheck {
			warnIfNotEnglish(log, plot)
		}
		genres, err := pipeline.InferGenres(plot)
		if err != nil {
			return exitRuntime, err
		}
		fmt.Fprintf(stdout, "[%s]\n", strings.Join(genres, " "))
	}
	return exitOK, nil
}

// warnIfNotEnglish flags plots the English stopwords and vocabulary will not fit.
func warnIfNotEnglish(log *slog.Logger, plot string) {
	info := whatlanggo.Detect(plot)
	if info.IsReliable() && info.Lang != whatlanggo.Eng {
		log.Warn("Plot does not look English",
			"lang", info.Lang.Iso6391(),
			"confidence", info.Confidence)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

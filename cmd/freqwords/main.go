package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"genre-lab/freqdist"
	"genre-lab/textnorm"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

type Config struct {
	Corpus        string `envconfig:"FREQ_CORPUS" required:"true"`
	Terms         int    `envconfig:"FREQ_TERMS" default:"30"`
	Title         string `envconfig:"FREQ_TITLE" default:"Most Frequent Words"`
	Largest       bool   `envconfig:"FREQ_LARGEST" default:"true"`
	Color         string `envconfig:"FREQ_COLOR" default:"blue"`
	Output        string `envconfig:"FREQ_OUTPUT"`
	Stopwords     string `envconfig:"STOPWORDS" default:"nltk"`
	StopwordsFile string `envconfig:"STOPWORDS_FILE"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"INFO"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func main() {
	_ = godotenv.Load()
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "freqwords terminated with error: %v\n", err)
		os.Exit(1)
	}
}

// run cleans every plot of the corpus and charts its word frequencies,
// to the terminal or to FREQ_OUTPUT as a PDF.
func run(stdout io.Writer) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	stopwords, err := textnorm.ByName(cfg.Stopwords, cfg.StopwordsFile)
	if err != nil {
		return err
	}

	plots, err := readCorpus(cfg.Corpus, stopwords)
	if err != nil {
		return err
	}
	fd := freqdist.FromTexts(plots)
	log.Info("Corpus counted", "plots", len(plots), "words", fd.Total(), "distinct", fd.Len())

	report := freqdist.Config{
		Terms:   cfg.Terms,
		Title:   cfg.Title,
		Largest: cfg.Largest,
		Color:   cfg.Color,
	}
	if cfg.Output == "" {
		return freqdist.Report(stdout, fd, report, freqdist.TerminalRenderer{})
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := freqdist.Report(f, fd, report, freqdist.PDFRenderer{}); err != nil {
		_ = f.Close()
		return err
	}
	log.Info("Chart written", "path", cfg.Output)
	return f.Close()
}

func readCorpus(path string, stopwords textnorm.StopwordSet) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var plots []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		plots = append(plots, textnorm.FullClean(scanner.Text(), stopwords))
	}
	return plots, scanner.Err()
}

package main

import (
	"flag"
	"fmt"
	"os"

	"genre-lab/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	dbPath := flag.String("db", "data/bundles", "Path to badger DB")
	dir := flag.String("dir", "outputs/clf_logistic", "Directory holding the model artifacts")
	logLevel := flag.String("log", "INFO", "Log level")
	flag.Parse()

	if err := run(*dbPath, *dir, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Bundle import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, dir, logLevel string) error {
	log := logs.GetLoggerFromString(logLevel)

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	version, err := storage.NewArtifactRepository(db, log).ImportDir(dir)
	if err != nil {
		return err
	}
	fmt.Println(version)
	return nil
}

package internal

import (
	"fmt"
	"log/slog"

	"genre-lab/errors"
	"genre-lab/model"
	"genre-lab/storage"
	"genre-lab/textnorm"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// LoadModel loads the artifacts named by the configuration once, from a directory or a badger bundle.
func LoadModel(log *slog.Logger, config Config) (model.Bundle, error) {
	if config.ArtifactSource != SourceBadger {
		return model.LoadBundle(log, config.ArtifactDir)
	}

	// BypassLockGuard lets a running importer keep the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return model.Bundle{}, fmt.Errorf("%w: opening %s: %v", errors.ErrArtifactLoad, config.BadgerFilepath, err)
	}
	defer func() {
		_ = db.Close()
	}()

	repo := storage.NewArtifactRepository(db, log)
	version, err := bundleVersion(repo, config.BundleVersion)
	if err != nil {
		return model.Bundle{}, fmt.Errorf("%w: %w", errors.ErrArtifactLoad, err)
	}
	files, err := repo.Files(version)
	if err != nil {
		return model.Bundle{}, fmt.Errorf("%w: %w", errors.ErrArtifactLoad, err)
	}
	log.Info("Artifact bundle selected", "version", version)
	return model.LoadBundleFromFiles(log, files)
}

func bundleVersion(repo storage.ArtifactRepository, configured string) (uuid.UUID, error) {
	if configured == "" {
		return repo.Latest()
	}
	return uuid.Parse(configured)
}

// LoadStopwords builds the stopword set named by the configuration.
func LoadStopwords(config Config) (textnorm.StopwordSet, error) {
	return textnorm.ByName(config.Stopwords, config.StopwordsFile)
}

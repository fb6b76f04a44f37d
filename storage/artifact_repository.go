package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"genre-lab/errors"
	"genre-lab/model"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	bundlePrefix   = "bundle:"
	artifactPrefix = "artifact:"
)

type IArtifactRepository interface {
	ImportDir(dir string) (uuid.UUID, error)
	Import(files map[string][]byte) (uuid.UUID, error)
	Latest() (uuid.UUID, error)
	Versions() ([]BundleInfo, error)
	Files(version uuid.UUID) (map[string][]byte, error)
}

// BundleInfo describes one stored set of model artifacts.
type BundleInfo struct {
	Version   uuid.UUID `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Files     []string  `json:"files"`
	Bytes     int       `json:"bytes"`
}

type ArtifactRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewArtifactRepository(db *badger.DB, log *slog.Logger) ArtifactRepository {
	return ArtifactRepository{db: db, log: log, now: time.Now}
}

// ImportDir stores the artifacts of a model directory as a new bundle.
func (r ArtifactRepository) ImportDir(dir string) (uuid.UUID, error) {
	files := make(map[string][]byte, len(model.ArtifactFiles))
	for _, name := range model.ArtifactFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %v", errors.ErrArtifactLoad, err)
		}
		files[name] = data
	}
	return r.Import(files)
}

// Import stores a new bundle after checking it loads.
// Manifests are keyed "bundle:{created_at_padded}:{version}" so a reverse prefix
// scan yields the newest bundle first.
func (r ArtifactRepository) Import(files map[string][]byte) (uuid.UUID, error) {
	if _, err := model.LoadBundleFromFiles(r.log, files); err != nil {
		return uuid.Nil, err
	}

	info := BundleInfo{
		Version:   uuid.New(),
		CreatedAt: r.now().UTC(),
		Files:     model.ArtifactFiles,
	}
	for _, name := range model.ArtifactFiles {
		info.Bytes += len(files[name])
	}
	manifest, err := json.Marshal(info)
	if err != nil {
		return uuid.Nil, err
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		for _, name := range model.ArtifactFiles {
			if err := txn.Set(artifactKey(info.Version, name), files[name]); err != nil {
				return err
			}
		}
		return txn.Set(bundleKey(info), manifest)
	})
	if err != nil {
		return uuid.Nil, err
	}
	r.log.Info("Artifact bundle stored", "version", info.Version, "bytes", info.Bytes)
	return info.Version, nil
}

// Versions lists bundles, newest first.
func (r ArtifactRepository) Versions() ([]BundleInfo, error) {
	var bundles []BundleInfo
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(bundlePrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past every padded timestamp, then walk backwards
		for it.Seek(append(prefix, 0xff)); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var info BundleInfo
				if err := json.Unmarshal(value, &info); err != nil {
					return err
				}
				bundles = append(bundles, info)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return bundles, err
}

func (r ArtifactRepository) Latest() (uuid.UUID, error) {
	bundles, err := r.Versions()
	if err != nil {
		return uuid.Nil, err
	}
	if len(bundles) == 0 {
		return uuid.Nil, errors.ErrBundleNotFound
	}
	return bundles[0].Version, nil
}

// Files returns the raw artifacts of a bundle keyed by file name.
func (r ArtifactRepository) Files(version uuid.UUID) (map[string][]byte, error) {
	files := make(map[string][]byte, len(model.ArtifactFiles))
	err := r.db.View(func(txn *badger.Txn) error {
		for _, name := range model.ArtifactFiles {
			item, err := txn.Get(artifactKey(version, name))
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: %s has no %s", errors.ErrBundleNotFound, version, name)
			}
			if err != nil {
				return err
			}
			data, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			files[name] = data
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func bundleKey(info BundleInfo) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", bundlePrefix, info.CreatedAt.UnixNano(), info.Version))
}

func artifactKey(version uuid.UUID, name string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", artifactPrefix, version, name))
}

package storage

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"genre-lab/errors"
	"genre-lab/model"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const demoDir = "../model/testdata/demo"

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func TestArtifactRepository_ImportAndLoad(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo := NewArtifactRepository(db, log)

	// Given the demo model is imported
	version, err := repo.ImportDir(demoDir)
	req.NoError(err)
	req.NotEqual(uuid.Nil, version)

	// When the bundle files are read back
	files, err := repo.Files(version)
	req.NoError(err)
	for _, name := range model.ArtifactFiles {
		original, err := os.ReadFile(filepath.Join(demoDir, name))
		req.NoError(err)
		req.Equal(original, files[name])
	}

	// Then they load into a working model
	bundle, err := model.LoadBundleFromFiles(log, files)
	req.NoError(err)
	req.Equal(6, bundle.Vectorizer.Dimension())
}

func TestArtifactRepository_VersionsNewestFirst(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewArtifactRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))

	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 1, 1, 11, 0, 0, 0, time.UTC)

	// Given the newer bundle is imported before the older one
	repo.now = func() time.Time { return t2 }
	newer, err := repo.ImportDir(demoDir)
	req.NoError(err)
	repo.now = func() time.Time { return t1 }
	older, err := repo.ImportDir(demoDir)
	req.NoError(err)

	versions, err := repo.Versions()
	req.NoError(err)
	req.Len(versions, 2)
	req.Equal(newer, versions[0].Version)
	req.Equal(older, versions[1].Version)
	req.True(t2.Equal(versions[0].CreatedAt))
	req.Equal(model.ArtifactFiles, versions[0].Files)
	req.Positive(versions[0].Bytes)

	latest, err := repo.Latest()
	req.NoError(err)
	req.Equal(newer, latest)
}

func TestArtifactRepository_NotFound(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewArtifactRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))

	_, err := repo.Latest()
	req.ErrorIs(err, errors.ErrBundleNotFound)

	_, err = repo.Files(uuid.New())
	req.ErrorIs(err, errors.ErrBundleNotFound)

	versions, err := repo.Versions()
	req.NoError(err)
	req.Empty(versions)
}

func TestArtifactRepository_RefusesBrokenBundle(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewArtifactRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))

	files := map[string][]byte{
		model.VectorizerFile: []byte(`{"kind": "hashing", "n_features": 4}`),
		model.ClassifierFile: []byte(`{"kind": "one_vs_rest_logistic", "coef": [[1, 1]], "intercept": [0]}`),
		model.BinarizerFile:  []byte(`{"classes": ["0"]}`),
		model.DecoderFile:    []byte(`{"labels": {"0": "drama"}}`),
	}
	_, err := repo.Import(files)
	req.ErrorIs(err, errors.ErrArtifactLoad)

	_, err = repo.ImportDir(t.TempDir())
	req.ErrorIs(err, errors.ErrArtifactLoad)

	versions, err := repo.Versions()
	req.NoError(err)
	req.Empty(versions)
}
